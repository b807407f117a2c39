package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import migrations so their init() funcs run and register themselves.
	_ "github.com/vitralapp/vitral/database/migrations"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "vitral",
	Short:         "Vitral — catalog and quoting backend for window, door and glass makers",
	Long:          "Vitral manages the product catalog behind window, door and glass quotes.\nUse this CLI to migrate the schema and seed catalog data from presets.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Database
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(migrateRollbackCmd)
	rootCmd.AddCommand(migrateStatusCmd)

	// Seeding
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(presetsCmd)
}
