package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"fisheye/internal/config"
	"fisheye/internal/store"
	"fisheye/pkg/logging"
)

// Services holds the collaborators the modes run against.
type Services struct {
	Store     store.Store
	StorePath string
	Docks     *ConfigAdapter
}

// InitializeServices opens the state store and binds the configuration to
// it.
func InitializeServices(cfg *Config) (*Services, error) {
	settings := cfg.FisheyeConfig.Store
	path, err := ResolveStorePath(settings)
	if err != nil {
		return nil, err
	}

	kv, err := store.Open(settings.Backend, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", backendName(settings.Backend), err)
	}
	logging.Debug("Store", "Opened %s store at %q", backendName(settings.Backend), path)

	return &Services{
		Store:     kv,
		StorePath: path,
		Docks:     NewConfigAdapter(cfg.FisheyeConfig, cfg.ConfigPath, cfg.DockID, kv),
	}, nil
}

// Close releases the store.
func (s *Services) Close() error {
	if s == nil || s.Store == nil {
		return nil
	}
	return s.Store.Close()
}

// ResolveStorePath returns the configured store path, or the default file
// in the user config directory for the backend. The memory backend has no
// path.
func ResolveStorePath(settings config.StoreSettings) (string, error) {
	backend := backendName(settings.Backend)
	if backend == store.BackendMemory {
		return "", nil
	}
	if settings.Path != "" {
		return settings.Path, nil
	}
	dir, err := config.GetUserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine state directory: %w", err)
	}
	if backend == store.BackendSQLite {
		return filepath.Join(dir, "state.db"), nil
	}
	return filepath.Join(dir, "state.yaml"), nil
}

func backendName(backend string) string {
	b := strings.ToLower(strings.TrimSpace(backend))
	if b == "" {
		return store.BackendFile
	}
	return b
}
