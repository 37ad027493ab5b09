package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mft.GO/config"
	"mft.GO/service/catalog"
)

var catalogFile string

var catalogSeedCmd = &cobra.Command{
	Use:   "catalog:seed",
	Short: "Seed the vehicle model and workshop reference catalogs",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			cat *catalog.Catalog
			err error
		)
		if catalogFile != "" {
			f, ferr := os.Open(catalogFile)
			if ferr != nil {
				color.Red("Failed to open catalog file: %v", ferr)
				os.Exit(1)
			}
			defer f.Close()
			cat, err = catalog.Load(f)
		} else {
			cat, err = catalog.Default()
		}
		if err != nil {
			color.Red("Failed to parse catalog: %v", err)
			os.Exit(1)
		}

		db, err := config.NewDB()
		if err != nil {
			color.Red("Database connection failed: %v", err)
			os.Exit(1)
		}
		res, err := catalog.Seed(db, cat)
		if err != nil {
			color.Red("Seed failed: %v", err)
			os.Exit(1)
		}
		color.Green("Catalog seeded: %d models, %d workshops created, %d skipped.",
			res.ModelsCreated, res.WorkshopsCreated, res.Skipped)
	},
}

func init() {
	catalogSeedCmd.Flags().StringVarP(&catalogFile, "file", "f", "", "Catalog YAML file (defaults to the embedded catalog)")
	rootCmd.AddCommand(catalogSeedCmd)
}
