package app

import (
	"context"
	"fmt"
	"os"

	"statusboard/internal/api"
	"statusboard/internal/config"
	"statusboard/pkg/logging"
)

// Application is the main application structure that bootstraps and runs statusboard
type Application struct {
	config   *Config
	services *Services
}

// NewApplication loads configuration, sets up CLI logging and creates the API client.
func NewApplication(cfg *Config) (*Application, error) {
	// CLI logging until the TUI takes over the log stream
	logging.InitForCLI(logging.ParseLevel(cfg.EffectiveLogLevel()), os.Stderr)

	var boardCfg config.StatusboardConfig
	var err error

	if cfg.ConfigPath != "" {
		boardCfg, err = config.LoadConfigFromPath(cfg.ConfigPath)
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load configuration from path: %s", cfg.ConfigPath)
			return nil, fmt.Errorf("failed to load configuration from path %s: %w", cfg.ConfigPath, err)
		}
		logging.Debug("Bootstrap", "Loaded configuration from custom path: %s", cfg.ConfigPath)
	} else {
		boardCfg, err = config.LoadConfig()
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load configuration")
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		logging.Debug("Bootstrap", "Loaded configuration using layered approach")
	}

	cfg.Board = &boardCfg

	// The configured level only applies when no flag set one.
	logging.InitForCLI(logging.ParseLevel(cfg.EffectiveLogLevel()), os.Stderr)

	services, err := InitializeServices(cfg)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &Application{
		config:   cfg,
		services: services,
	}, nil
}

// API returns the backend client for one-shot CLI commands.
func (a *Application) API() api.BoardAPI {
	return a.services.API
}

// Config returns the resolved application configuration.
func (a *Application) Config() *Config {
	return a.config
}

// Run starts the interactive dashboard and blocks until the user exits.
func (a *Application) Run(ctx context.Context) error {
	return runTUIMode(ctx, a.config, a.services)
}
