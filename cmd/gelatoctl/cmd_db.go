package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/gelato-api/internal/infrastructure/postgres"
	"github.com/jhoicas/gelato-api/pkg/config"
)

// gelatoctl migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Aplica las migraciones pendientes en PostgreSQL",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		pool, err := postgres.NewPool(cmd.Context(), cfg.DB)
		if err != nil {
			return err
		}
		defer pool.Close()

		applied, err := postgres.Migrate(cmd.Context(), pool)
		if err != nil {
			return err
		}
		if len(applied) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No hay migraciones pendientes.")
			return nil
		}
		for _, v := range applied {
			fmt.Fprintf(cmd.OutOrStdout(), "Aplicada %s\n", v)
		}
		return nil
	},
}
