package main

import (
	"context"
	"fmt"
	"os"

	"github.com/lilithwittmann/voicepitch/internal/repositories"
	"github.com/lilithwittmann/voicepitch/internal/shared"
	"github.com/urfave/cli/v3"
)

// loadOrCreateConfig reads the config at path, writing the example config there first if it is missing.
func (r *Runner) loadOrCreateConfig(path string) *shared.Config {
	if _, err := os.Stat(path); err != nil {
		r.logger.Info("config file not found, creating from template", "path", path)
		if err := shared.CreateConfigFile(path); err != nil {
			r.logger.Warn("failed to create config file, using defaults", "error", err)
			return shared.DefaultConfig()
		}
		r.logger.Info("config file created", "path", path)
	}

	config, err := shared.LoadConfig(path)
	if err != nil {
		r.logger.Warn("failed to load config, using defaults", "error", err)
		return shared.DefaultConfig()
	}
	return config
}

// SetupDatabase opens the recording store, which creates, resets or upgrades its schema as needed.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")
	if configPath != "" && configPath != r.configPath {
		r.config = r.loadOrCreateConfig(configPath)
		r.configPath = configPath
	}

	r.logger.Info("initializing database", "path", r.config.Database.Path)

	db, err := shared.OpenStore(r.config.Database, r.logger)
	if err != nil {
		return err
	}
	defer db.Close()

	version, err := shared.SchemaVersion(db)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	r.logger.Infof("setup complete for database: %v", r.config.Database.Path)
	r.writePlain("✓ Database ready: %s (schema version %d)\n", r.config.Database.Path, version)

	if !cmd.Bool("check") {
		return nil
	}

	orphans, err := repositories.NewPitchRepository(db).CountOrphans(ctx)
	if err != nil {
		return fmt.Errorf("failed to check pitch samples: %w", err)
	}

	if orphans == 0 {
		return r.writePlain("✓ No orphaned pitch samples\n")
	}

	r.logger.Warn("orphaned pitch samples found", "count", orphans)
	return r.writePlain("! %d pitch samples reference deleted recordings\n", orphans)
}
