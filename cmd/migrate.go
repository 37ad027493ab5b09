package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mft.GO/config"
	"mft.GO/migration"
)

var migrateUpCmd = &cobra.Command{
	Use:   "migrate:up",
	Short: "Apply all pending schema migrations",
	Run: func(cmd *cobra.Command, args []string) {
		url := config.DatabaseURL()
		if err := migration.Up(url); err != nil {
			color.Red("Migration failed: %v", err)
			os.Exit(1)
		}
		color.Green("Schema is up to date.")
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "migrate:down",
	Short: "Roll back the most recent migration",
	Run: func(cmd *cobra.Command, args []string) {
		url := config.DatabaseURL()
		if err := migration.Down(url); err != nil {
			color.Red("Rollback failed: %v", err)
			os.Exit(1)
		}
		color.Yellow("Rolled back one migration.")
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "migrate:status",
	Short: "Show current schema version",
	Run: func(cmd *cobra.Command, args []string) {
		url := config.DatabaseURL()
		version, dirty, err := migration.Status(url)
		if err != nil {
			color.Red("Status check failed: %v", err)
			os.Exit(1)
		}
		if version == 0 {
			color.Yellow("No migrations applied yet.")
			return
		}
		state := color.GreenString("clean")
		if dirty {
			state = color.RedString("dirty")
		}
		fmt.Printf("Schema version: %d (%s)\n", version, state)
	},
}

func init() {
	rootCmd.AddCommand(migrateUpCmd)
	rootCmd.AddCommand(migrateDownCmd)
	rootCmd.AddCommand(migrateStatusCmd)
}
