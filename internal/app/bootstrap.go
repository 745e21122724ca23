package app

import (
	"context"
	"fmt"
	"os"
	"swarm/pkg/logging"
)

// Application is the main application structure that bootstraps and runs
// the data chooser.
type Application struct {
	config   *Config
	services *Services
}

// NewApplication loads configuration and initializes the services.
func NewApplication(cfg *Config) (*Application, error) {
	logging.InitForCLI(cfg.LogLevel(), os.Stderr)

	if err := cfg.Load(); err != nil {
		logging.Error("Bootstrap", err, "Failed to load swarm configuration")
		return nil, fmt.Errorf("failed to load swarm configuration: %w", err)
	}
	// The configured level is only known after loading.
	logging.InitForCLI(cfg.LogLevel(), os.Stderr)
	if cfg.ConfigPath != "" {
		logging.Info("Bootstrap", "Loaded configuration from custom path: %s", cfg.ConfigPath)
	} else {
		logging.Debug("Bootstrap", "Loaded configuration using layered approach")
	}

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

// Config returns the application configuration.
func (a *Application) Config() *Config {
	return a.config
}

// Services returns the initialized services.
func (a *Application) Services() *Services {
	return a.services
}

// Run executes the application in the appropriate mode
func (a *Application) Run(ctx context.Context) error {
	if a.config.NoTUI {
		return runCLIMode(ctx, os.Stdout, a.services)
	}
	return runTUIMode(ctx, a.config, a.services)
}
