package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/fisheye"
	projectConfigDir = ".fisheye"
	configFileName   = "config.yaml"
)

// LoadConfig loads the fisheye configuration by layering default, user, and project settings.
func LoadConfig() (FisheyeConfig, error) {
	// 1. Start with the default configuration
	config := GetDefaultConfig()

	// 2. Determine user-specific configuration path
	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// Log this error but don't fail; user config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else {
		if _, err := os.Stat(userConfigPath); !os.IsNotExist(err) {
			userConfig, err := loadConfigFromFile(userConfigPath)
			if err != nil {
				return FisheyeConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
			}
			config = mergeConfigs(config, userConfig)
		}
	}

	// 3. Determine project-specific configuration path
	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else {
		if _, err := os.Stat(projectConfigPath); !os.IsNotExist(err) {
			projectConfig, err := loadConfigFromFile(projectConfigPath)
			if err != nil {
				return FisheyeConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
			}
			config = mergeConfigs(config, projectConfig)
		}
	}

	if err := config.Validate(); err != nil {
		return FisheyeConfig{}, err
	}
	return config, nil
}

// LoadConfigFromPath loads a single configuration file layered over the
// defaults, skipping the user and project layers.
func LoadConfigFromPath(path string) (FisheyeConfig, error) {
	fileConfig, err := loadConfigFromFile(path)
	if err != nil {
		return FisheyeConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	config := mergeConfigs(GetDefaultConfig(), fileConfig)
	if err := config.Validate(); err != nil {
		return FisheyeConfig{}, err
	}
	return config, nil
}

// ActiveConfigPaths returns the existing files LoadConfig would read, in
// layering order.
func ActiveConfigPaths() []string {
	var paths []string
	for _, get := range []func() (string, error){getUserConfigPath, getProjectConfigPath} {
		p, err := get()
		if err != nil {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			paths = append(paths, p)
		}
	}
	return paths
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a FisheyeConfig from a YAML file.
func loadConfigFromFile(filePath string) (FisheyeConfig, error) {
	var config FisheyeConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return FisheyeConfig{}, err
	}
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return FisheyeConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config.
func mergeConfigs(base, overlay FisheyeConfig) FisheyeConfig {
	merged := base

	// GlobalSettings (overlay overrides base)
	if overlay.GlobalSettings.LogLevel != "" {
		merged.GlobalSettings.LogLevel = overlay.GlobalSettings.LogLevel
	}
	if overlay.GlobalSettings.ColorMode != "" {
		merged.GlobalSettings.ColorMode = overlay.GlobalSettings.ColorMode
	}

	// Widget scalars: only explicitly set (non-zero) values override
	w, o := &merged.Widget, overlay.Widget
	if o.MinSize != 0 {
		w.MinSize = o.MinSize
	}
	if o.MaxSize != 0 {
		w.MaxSize = o.MaxSize
	}
	if o.FocusedItems != 0 {
		w.FocusedItems = o.FocusedItems
	}
	if o.VerticalMargin != 0 {
		w.VerticalMargin = o.VerticalMargin
	}
	if o.LabelHeight != 0 {
		w.LabelHeight = o.LabelHeight
	}
	if o.DecayStep != 0 {
		w.DecayStep = o.DecayStep
	}
	if o.DecayInterval != 0 {
		w.DecayInterval = o.DecayInterval
	}
	if o.CellWidth != 0 {
		w.CellWidth = o.CellWidth
	}
	if o.CellHeight != 0 {
		w.CellHeight = o.CellHeight
	}

	// Store
	if overlay.Store.Backend != "" {
		merged.Store.Backend = overlay.Store.Backend
	}
	if overlay.Store.Path != "" {
		merged.Store.Path = overlay.Store.Path
	}

	// Docks: replace by id, keep declaration order
	merged.Docks = nil
	index := make(map[string]int)
	for _, d := range base.Docks {
		index[d.ID] = len(merged.Docks)
		merged.Docks = append(merged.Docks, d)
	}
	for _, d := range overlay.Docks {
		if i, ok := index[d.ID]; ok {
			merged.Docks[i] = d
			continue
		}
		index[d.ID] = len(merged.Docks)
		merged.Docks = append(merged.Docks, d)
	}

	return merged
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
