package cmd

import (
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mft",
	Short: "Manufacturing logistics database tooling",
	Run: func(c *cobra.Command, args []string) {
		figure.NewFigure("mft", "", true).Print()
		_ = c.Help()
	},
}

// Execute runs the root command after applying registered extensions.
func Execute() {
	Apply()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
