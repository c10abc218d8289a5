package main

import (
	"context"
	"errors"
	"os"

	"github.com/lilithwittmann/voicepitch/internal/shared"
	"github.com/urfave/cli/v3"
)

const defaultConfigPath = "config.toml"

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	configPath := ""
	if _, err := os.Stat(defaultConfigPath); err == nil {
		if loadedConfig, err := shared.LoadConfig(defaultConfigPath); err == nil {
			config = loadedConfig
			configPath = defaultConfigPath
		} else {
			logger.Warn("failed to load config, using defaults", "error", err)
		}
	}

	if level, err := shared.ParseLogLevel(config.Log.Level); err == nil {
		shared.SetLogLevel(logger, level)
	}

	runner := NewRunner(RunnerOpts{
		Config:     config,
		ConfigPath: configPath,
		Logger:     logger,
	})
	defer runner.Close()

	app := &cli.Command{
		Name:     "vpa",
		Usage:    "Store and inspect voice recordings and their pitch",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		runner.Close()
		switch {
		case errors.Is(err, shared.ErrRecordingNotFound),
			errors.Is(err, shared.ErrMissingArgument),
			errors.Is(err, shared.ErrInvalidArgument):
			logger.Error(err.Error())
			os.Exit(1)
		default:
			logger.Fatalf("application error: %v", err)
		}
	}
}
