package app

import (
	"testing"

	"fisheye/internal/config"
	"fisheye/pkg/logging"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name       string
		noTUI      bool
		debug      bool
		dockID     string
		activeItem string
		configPath string
	}{
		{
			name:       "full configuration",
			noTUI:      true,
			debug:      true,
			dockID:     "side",
			activeItem: "mail",
			configPath: "/tmp/fisheye.yaml",
		},
		{
			name: "minimal configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig(tt.noTUI, tt.debug, tt.dockID, tt.activeItem, tt.configPath)

			assert.Equal(t, tt.noTUI, cfg.NoTUI)
			assert.Equal(t, tt.debug, cfg.Debug)
			assert.Equal(t, tt.dockID, cfg.DockID)
			assert.Equal(t, tt.activeItem, cfg.ActiveItem)
			assert.Equal(t, tt.configPath, cfg.ConfigPath)
			assert.Nil(t, cfg.FisheyeConfig, "FisheyeConfig should be nil before loading")
		})
	}
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, logging.LevelInfo, LogLevel(&Config{}))
	assert.Equal(t, logging.LevelDebug, LogLevel(&Config{Debug: true}))

	cfg := config.GetDefaultConfig()
	cfg.GlobalSettings.LogLevel = "warn"
	assert.Equal(t, logging.LevelWarn, LogLevel(&Config{FisheyeConfig: &cfg}))
	assert.Equal(t, logging.LevelDebug, LogLevel(&Config{Debug: true, FisheyeConfig: &cfg}))
}
