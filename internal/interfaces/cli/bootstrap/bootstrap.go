// Package bootstrap holds the config, logger and database setup shared by the
// CLI commands.
package bootstrap

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"licensehub/internal/infrastructure/config"
	"licensehub/internal/infrastructure/database"
	"licensehub/internal/shared/logger"
)

type Options struct {
	Env        string
	ConfigPath string
}

// Bind registers --env and --config as persistent flags of cmd.
func (o *Options) Bind(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&o.Env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&o.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
}

// Environment returns the LICENSEHUB_ENV override when set, else the flag.
func (o *Options) Environment() string {
	if envVar := os.Getenv("LICENSEHUB_ENV"); envVar != "" {
		return envVar
	}
	return o.Env
}

// Load reads the configuration and initializes the process logger.
func (o *Options) Load() (*config.Config, logger.Interface, error) {
	ginMode := MapEnvToGinMode(o.Environment())

	cfg, err := config.Load(o.ConfigPath, ginMode)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}

// LoadWithDatabase is Load followed by database.Init. Callers close the
// connection with database.Close.
func (o *Options) LoadWithDatabase() (*config.Config, logger.Interface, error) {
	cfg, log, err := o.Load()
	if err != nil {
		return nil, nil, err
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg, log, nil
}

func MapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
