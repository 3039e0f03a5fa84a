package app

import (
	"fmt"
	"sync"

	"fisheye/internal/config"
	"fisheye/internal/fisheye"
	"fisheye/internal/store"
	"fisheye/pkg/logging"
)

// ConfigAdapter turns the loaded configuration into fisheye menus. It is the
// dock source of the TUI and of the headless commands.
type ConfigAdapter struct {
	config     *config.FisheyeConfig
	configPath string
	dockID     string
	store      store.Store
	mu         sync.RWMutex
}

// For mocking in tests
var (
	loadLayeredConfig = config.LoadConfig
	loadConfigFile    = config.LoadConfigFromPath
	activeConfigPaths = config.ActiveConfigPaths
)

// NewConfigAdapter creates a new configuration adapter. An empty dockID
// selects the first dock.
func NewConfigAdapter(cfg *config.FisheyeConfig, configPath, dockID string, kv store.Store) *ConfigAdapter {
	return &ConfigAdapter{
		config:     cfg,
		configPath: configPath,
		dockID:     dockID,
		store:      kv,
	}
}

// GetConfig returns the current configuration
func (a *ConfigAdapter) GetConfig() config.FisheyeConfig {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return *a.config
}

// Widget returns the current widget settings.
func (a *ConfigAdapter) Widget() config.WidgetSettings {
	return a.GetConfig().Widget
}

// Dock returns the selected dock definition.
func (a *ConfigAdapter) Dock() (config.DockDefinition, error) {
	cfg := a.GetConfig()
	def, ok := cfg.Dock(a.dockID)
	if !ok {
		return config.DockDefinition{}, fmt.Errorf("dock %q is not configured", a.dockID)
	}
	return def, nil
}

// BuildMenu creates a menu for the selected dock over the adapter's store.
// opts are applied after the configured widget settings.
func (a *ConfigAdapter) BuildMenu(opts ...fisheye.Option) (*fisheye.Menu, error) {
	def, err := a.Dock()
	if err != nil {
		return nil, err
	}
	c, err := ContainerFromDock(def)
	if err != nil {
		return nil, err
	}
	all := append(MenuOptions(a.Widget()), opts...)
	return fisheye.New(c, a.store, all...)
}

// Reload re-reads the configuration the adapter was created from. On error
// the previous configuration stays in place.
func (a *ConfigAdapter) Reload() error {
	var (
		cfg config.FisheyeConfig
		err error
	)
	if a.configPath != "" {
		cfg, err = loadConfigFile(a.configPath)
	} else {
		cfg, err = loadLayeredConfig()
	}
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.config = &cfg
	a.mu.Unlock()
	logging.Info("Config", "Configuration reloaded")
	return nil
}

// WatchPaths returns the files a reload would read.
func (a *ConfigAdapter) WatchPaths() []string {
	if a.configPath != "" {
		return []string{a.configPath}
	}
	return activeConfigPaths()
}

// ContainerFromDock converts a dock definition into a container. Every call
// returns a new, uninitialized container.
func ContainerFromDock(def config.DockDefinition) (*fisheye.Container, error) {
	orientation, err := fisheye.ParseOrientation(def.Orientation)
	if err != nil {
		return nil, fmt.Errorf("dock %q: %w", def.ID, err)
	}
	c := &fisheye.Container{ID: def.ID, Orientation: orientation}
	for _, it := range def.Items {
		c.Elements = append(c.Elements, fisheye.Element{
			ID:        it.ID,
			Label:     it.Label,
			Icon:      it.Icon,
			IconLarge: it.IconLarge,
			IconSmall: it.IconSmall,
			Active:    it.Active,
		})
	}
	return c, nil
}

// MenuOptions converts widget settings into menu options. Zero values keep
// the menu defaults.
func MenuOptions(w config.WidgetSettings) []fisheye.Option {
	var opts []fisheye.Option
	if w.MinSize > 0 {
		opts = append(opts, fisheye.WithMinSize(w.MinSize))
	}
	if w.MaxSize > 0 {
		opts = append(opts, fisheye.WithMaxSize(w.MaxSize))
	}
	if w.FocusedItems > 0 {
		opts = append(opts, fisheye.WithFocusedItems(w.FocusedItems))
	}
	if w.VerticalMargin > 0 {
		opts = append(opts, fisheye.WithVerticalMargin(w.VerticalMargin))
	}
	if w.LabelHeight > 0 {
		opts = append(opts, fisheye.WithLabelHeight(w.LabelHeight))
	}
	if w.DecayStep > 0 {
		opts = append(opts, fisheye.WithDecayStep(w.DecayStep))
	}
	if w.DecayInterval > 0 {
		opts = append(opts, fisheye.WithDecayInterval(w.DecayInterval))
	}
	return opts
}
