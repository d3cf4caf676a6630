package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"licensehub/internal/infrastructure/database"
	"licensehub/internal/infrastructure/migration"
	"licensehub/internal/interfaces/cli/bootstrap"
)

const scriptsRoot = "./internal/infrastructure/migration/scripts"

var (
	opts  bootstrap.Options
	name  string
	steps int
	auto  bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	opts.Bind(cmd)

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending versioned migrations. With --auto the schema is derived from the models instead.`,
		RunE:  runUp,
	}

	cmd.Flags().BoolVar(&auto, "auto", false, "Use GORM AutoMigrate instead of the versioned scripts")

	return cmd
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create an empty timestamped SQL migration for the configured database driver.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, log, err := opts.LoadWithDatabase()
	if err != nil {
		return err
	}
	defer database.Close()

	var strategy migration.Strategy = migration.NewGooseStrategy(cfg.Database.Driver)
	if auto {
		strategy = migration.NewAutoMigrateStrategy()
	}

	log.Infow("running up migrations", "strategy", strategy.GetName(), "driver", cfg.Database.Driver)

	if err := strategy.Migrate(database.Get()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	cfg, log, err := opts.LoadWithDatabase()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running down migrations", "driver", cfg.Database.Driver, "steps", steps)

	if err := migration.NewGooseStrategy(cfg.Database.Driver).MigrateDown(database.Get(), steps); err != nil {
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, _, err := opts.LoadWithDatabase()
	if err != nil {
		return err
	}
	defer database.Close()

	strategy := migration.NewGooseStrategy(cfg.Database.Driver)

	version, err := strategy.Version(database.Get())
	if err != nil {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nMigration Status:\n")
	fmt.Fprintf(out, "  Environment:     %s\n", opts.Environment())
	fmt.Fprintf(out, "  Driver:          %s\n", cfg.Database.Driver)
	fmt.Fprintf(out, "  Current Version: %d\n", version)

	if err := strategy.Status(database.Get()); err != nil {
		return fmt.Errorf("failed to get detailed status: %w", err)
	}
	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, _, err := opts.Load()
	if err != nil {
		return err
	}

	root, err := filepath.Abs(scriptsRoot)
	if err != nil {
		return fmt.Errorf("failed to get scripts path: %w", err)
	}

	dir, err := migration.NewGenerator(root).CreateMigration(cfg.Database.Driver, name)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Migration '%s' created in %s\n", name, dir)
	return nil
}
