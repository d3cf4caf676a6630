// @title LicenseHub Admin API
// @version 1.0
// @description Accounts, products, subscriptions and license assignments.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"os"

	"github.com/spf13/cobra"

	"licensehub/internal/interfaces/cli/admin"
	"licensehub/internal/interfaces/cli/migrate"
	"licensehub/internal/interfaces/cli/seed"
	"licensehub/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "licensehub",
		Short:        "LicenseHub - software license administration",
		Long:         `LicenseHub manages customer accounts, their product subscriptions and the license seats assigned to their users.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
		admin.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
