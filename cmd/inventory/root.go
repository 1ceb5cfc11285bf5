package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/stockroom/inventory-api/internal/pkg/config"
	"github.com/stockroom/inventory-api/pkg/logger"
)

// app carries what every subcommand needs once the root has run.
type app struct {
	cfg *config.Config
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "inventory",
		Short:         "Inventory, catalog and order API",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// .env is a development convenience only.
			if env := os.Getenv("ENV"); env == "" || env == "development" {
				_ = godotenv.Load()
			}

			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logger.Init(logger.Options{
				Level:   cfg.LogLevel,
				Pretty:  cfg.IsDevelopment(),
				Service: "inventory-api",
			})
			return nil
		},
	}

	root.AddCommand(newServerCmd(a), newIndexesCmd(a), newAdminCmd(a))
	return root
}

func (a *app) fail(format string, args ...any) error {
	err := fmt.Errorf(format, args...)
	a.log.Error().Err(err).Msg("command failed")
	return err
}
