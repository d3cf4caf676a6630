package migration

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pressly/goose/v3"

	"licensehub/internal/shared/logger"
)

// Generator writes new timestamped goose scripts into the source tree.
type Generator struct {
	scriptsRoot string
	logger      logger.Interface
}

func NewGenerator(scriptsRoot string) *Generator {
	return &Generator{
		scriptsRoot: scriptsRoot,
		logger:      logger.NewLogger().With("component", "migration.generator"),
	}
}

// CreateMigration creates an empty script named name for driver.
func (g *Generator) CreateMigration(driver, name string) (string, error) {
	if _, err := gooseDialect(driver); err != nil {
		return "", err
	}

	dir := filepath.Join(g.scriptsRoot, driver)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create scripts directory: %w", err)
	}

	// Creation works on the real filesystem, not the embedded scripts.
	goose.SetBaseFS(nil)
	goose.SetSequential(false)
	if err := goose.Create(nil, dir, name, "sql"); err != nil {
		g.logger.Errorw("failed to create migration", "name", name, "error", err)
		return "", fmt.Errorf("failed to create migration: %w", err)
	}

	g.logger.Infow("migration created", "driver", driver, "dir", dir, "name", name)
	return dir, nil
}
