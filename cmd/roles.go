package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mft.GO/config"
	"mft.GO/service/roles"
)

var (
	roleTier string
	roleUser string
)

var rolesProvisionCmd = &cobra.Command{
	Use:   "roles:provision",
	Short: "Create a database role (admin, editor or viewer)",
	Long:  "Creates a PostgreSQL login role with the tier's privilege set. The role password is read from ROLE_PASSWORD.",
	Run: func(cmd *cobra.Command, args []string) {
		password := os.Getenv("ROLE_PASSWORD")
		if password == "" {
			color.Red("ROLE_PASSWORD is not set")
			os.Exit(1)
		}

		db, err := config.NewDB()
		if err != nil {
			color.Red("Database connection failed: %v", err)
			os.Exit(1)
		}
		config.LoadAppConfig()
		p := roles.NewProvisioner(db, config.AppConfig.DBName)
		if err := p.Provision(roles.Role(roleTier), roleUser, password); err != nil {
			color.Red("Provisioning failed: %v", err)
			os.Exit(1)
		}
		color.Green("Role %q provisioned with %s privileges.", roleUser, roleTier)
	},
}

func init() {
	rolesProvisionCmd.Flags().StringVarP(&roleTier, "role", "r", "viewer", "Privilege tier: admin, editor or viewer")
	rolesProvisionCmd.Flags().StringVarP(&roleUser, "user", "u", "", "Role (login) name to create")
	_ = rolesProvisionCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(rolesProvisionCmd)
}
