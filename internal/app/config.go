package app

import (
	"io"

	"fisheye/internal/config"
)

// Config holds the application configuration
type Config struct {
	// UI mode. NoTUI renders the dock once instead of running the
	// interactive program.
	NoTUI bool

	// Debug settings
	Debug bool

	// Dock selection
	DockID     string
	ActiveItem string

	// ConfigPath, when set, replaces the layered configuration lookup.
	ConfigPath string

	// StoreBackend, when set, overrides the configured store backend.
	StoreBackend string

	// Output receives the static render. Defaults to stdout.
	Output io.Writer

	// Fisheye configuration, filled in by NewApplication
	FisheyeConfig *config.FisheyeConfig
}

// NewConfig creates a new application configuration
func NewConfig(noTUI, debug bool, dockID, activeItem, configPath string) *Config {
	return &Config{
		NoTUI:      noTUI,
		Debug:      debug,
		DockID:     dockID,
		ActiveItem: activeItem,
		ConfigPath: configPath,
	}
}
