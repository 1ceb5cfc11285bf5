package main

import (
	"github.com/spf13/cobra"

	"github.com/stockroom/inventory-api/internal/server"
)

func newServerCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "Starts the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv, err := server.New(cmd.Context(), a.cfg, a.log)
			if err != nil {
				return a.fail("start server: %w", err)
			}
			return srv.Run(cmd.Context())
		},
	}
}
