package main

import (
	"github.com/spf13/cobra"

	"github.com/stockroom/inventory-api/internal/infrastructure/db/mongo"
)

func newIndexesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "indexes",
		Short: "Creates the MongoDB indexes and exits",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, db, err := mongo.Connect(cmd.Context(), mongo.Config{URI: a.cfg.Mongo.URI, Database: a.cfg.Mongo.Database})
			if err != nil {
				return a.fail("connect: %w", err)
			}
			defer func() { _ = client.Disconnect(cmd.Context()) }()

			if err := mongo.EnsureIndexes(cmd.Context(), db); err != nil {
				return a.fail("indexes: %w", err)
			}
			a.log.Info().Str("database", a.cfg.Mongo.Database).Msg("indexes ensured")
			return nil
		},
	}
}
