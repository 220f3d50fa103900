package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "gelatoctl",
	Short:         "Tareas administrativas de gelato-api",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Base de datos
	rootCmd.AddCommand(migrateCmd)

	// Usuarios
	rootCmd.AddCommand(createSuperuserCmd)
	rootCmd.AddCommand(hashPasswordCmd)
}
