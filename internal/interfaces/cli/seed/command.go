package seed

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"licensehub/internal/infrastructure/database"
	"licensehub/internal/infrastructure/migration"
	seeddata "licensehub/internal/infrastructure/seed"
	"licensehub/internal/interfaces/cli/bootstrap"
	httpRouter "licensehub/internal/interfaces/http"
)

var (
	opts    bootstrap.Options
	file    string
	migrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load demo products, accounts, users and license assignments",
		Long: `Seed the database with demo data. Without --file the bundled data set is used.
Running the command twice only fills in what is missing.`,
		RunE: run,
	}

	opts.Bind(cmd)
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML seed file")
	cmd.Flags().BoolVar(&migrate, "migrate", false, "Apply pending migrations before seeding")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	data, err := loadData()
	if err != nil {
		return err
	}

	cfg, log, err := opts.LoadWithDatabase()
	if err != nil {
		return err
	}
	defer database.Close()

	if migrate {
		if err := migration.NewGooseStrategy(cfg.Database.Driver).Migrate(database.Get()); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	summary, err := httpRouter.NewSeeder(database.Get(), log).Run(cmd.Context(), data)
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %d products, %d accounts, %d users, %d subscriptions, %d assignments\n",
		summary.Products, summary.Accounts, summary.Users, summary.Subscriptions, summary.Assignments)
	if len(summary.Skipped) > 0 {
		fmt.Fprintf(out, "Skipped %d assignments:\n  %s\n", len(summary.Skipped), strings.Join(summary.Skipped, "\n  "))
	}
	return nil
}

func loadData() (*seeddata.Data, error) {
	if file == "" {
		return seeddata.Default()
	}
	return seeddata.Load(file)
}
