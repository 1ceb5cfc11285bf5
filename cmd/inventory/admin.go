package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stockroom/inventory-api/internal/core/domain"
	"github.com/stockroom/inventory-api/internal/core/service"
	"github.com/stockroom/inventory-api/internal/infrastructure/auth"
	"github.com/stockroom/inventory-api/internal/infrastructure/db/mongo"
)

func newAdminCmd(a *app) *cobra.Command {
	admin := &cobra.Command{
		Use:   "admin",
		Short: "Account administration",
	}
	admin.AddCommand(newPromoteCmd(a))
	return admin
}

// newPromoteCmd grants the admin role to an existing account. It is the only
// way to create the first admin, since role changes over HTTP need one.
func newPromoteCmd(a *app) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Grants the admin role to an existing account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(email) == "" {
				return errors.New("--email is required")
			}

			client, db, err := mongo.Connect(cmd.Context(), mongo.Config{URI: a.cfg.Mongo.URI, Database: a.cfg.Mongo.Database})
			if err != nil {
				return a.fail("connect: %w", err)
			}
			defer func() { _ = client.Disconnect(cmd.Context()) }()

			accounts := service.NewAccountService(
				domain.ScopeUsers,
				mongo.NewAccountRepository(db, domain.ScopeUsers),
				auth.NewBcryptHasher(a.cfg.BcryptCost),
				auth.NewJWTService(a.cfg.JWTSecret, a.cfg.TokenTTL),
				a.log,
			)

			account, err := accounts.FindByEmail(cmd.Context(), email)
			if err != nil {
				return a.fail("find %s: %w", email, err)
			}
			if err := accounts.SetRole(cmd.Context(), account.ID, string(domain.RoleAdmin)); err != nil {
				return a.fail("promote %s: %w", email, err)
			}

			a.log.Info().Str("email", account.Email).Str("id", account.ID).Msg("account promoted to admin")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email of the account to promote")
	return cmd
}
