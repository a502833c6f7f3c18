package main

import (
	"context"
	"os"

	"github.com/bandolabs/bando/internal/services"
	"github.com/bandolabs/bando/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	archive := services.NewArchiveClient(config.API.BaseURL, nil, config.API.RequestsPerSecond)

	runner := NewRunner(RunnerOpts{
		Config:  config,
		Archive: archive,
		Logger:  logger,
	})

	app := &cli.Command{
		Name:     "bando",
		Usage:    "Browse, upload & play the march and music archive",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
