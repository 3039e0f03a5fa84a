package app

import (
	"context"
	"fmt"
	"os"

	"fisheye/internal/config"
	"fisheye/pkg/logging"
)

// Application is the main application structure that bootstraps and runs fisheye
type Application struct {
	config   *Config
	services *Services
}

// NewApplication creates and initializes a new application instance
func NewApplication(cfg *Config) (*Application, error) {
	// Configure logging based on debug flag
	appLogLevel := logging.LevelInfo
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}

	// Initialize logging for CLI output (will be replaced for TUI mode).
	// Stdout is reserved for rendered docks.
	logging.InitForCLI(appLogLevel, os.Stderr)

	// Load fisheye configuration
	var fisheyeCfg config.FisheyeConfig
	var err error

	if cfg.ConfigPath != "" {
		fisheyeCfg, err = loadConfigFile(cfg.ConfigPath)
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load fisheye configuration from path: %s", cfg.ConfigPath)
			return nil, fmt.Errorf("failed to load fisheye configuration from path %s: %w", cfg.ConfigPath, err)
		}
		logging.Debug("Bootstrap", "Loaded configuration from custom path: %s", cfg.ConfigPath)
	} else {
		fisheyeCfg, err = loadLayeredConfig()
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load fisheye configuration")
			return nil, fmt.Errorf("failed to load fisheye configuration: %w", err)
		}
		logging.Debug("Bootstrap", "Loaded configuration using layered approach")
	}

	if cfg.StoreBackend != "" {
		fisheyeCfg.Store.Backend = cfg.StoreBackend
	}
	cfg.FisheyeConfig = &fisheyeCfg
	if !cfg.Debug {
		logging.InitForCLI(LogLevel(cfg), os.Stderr)
	}

	if _, ok := fisheyeCfg.Dock(cfg.DockID); !ok {
		return nil, fmt.Errorf("dock %q is not configured", cfg.DockID)
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

// LogLevel returns the effective log level: debug when requested on the
// command line, the configured level otherwise.
func LogLevel(cfg *Config) logging.LogLevel {
	if cfg.Debug {
		return logging.LevelDebug
	}
	if cfg.FisheyeConfig != nil {
		return logging.ParseLevel(cfg.FisheyeConfig.GlobalSettings.LogLevel)
	}
	return logging.LevelInfo
}

// Services returns the initialized collaborators.
func (a *Application) Services() *Services {
	return a.services
}

// Close releases the resources held by the application.
func (a *Application) Close() error {
	return a.services.Close()
}

// Run executes the application in the appropriate mode
func (a *Application) Run(ctx context.Context) error {
	if a.config.NoTUI {
		return runStaticMode(ctx, a.config, a.services)
	}
	return runTUIMode(ctx, a.config, a.services)
}
