package app

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"fisheye/internal/config"
	"fisheye/internal/fisheye"
	"fisheye/internal/store"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStaticMode(t *testing.T) {
	cfg := testConfig()
	var out bytes.Buffer
	appCfg := &Config{NoTUI: true, ActiveItem: "mail", Output: &out, FisheyeConfig: cfg}
	kv := store.NewMemory()
	services := &Services{Store: kv, Docks: NewConfigAdapter(cfg, "", "", kv)}

	require.NoError(t, runStaticMode(context.Background(), appCfg, services))

	rendered := strings.TrimRight(out.String(), "\n")
	assert.Contains(t, rendered, "Mail")
	// two gutters and five items at rest, mail magnified
	assert.Equal(t, 6, lipgloss.Height(rendered))

	v, ok, err := kv.Get(fisheye.ActiveKey("main"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "mail", v)
}

func TestRunStaticMode_CancelledContext(t *testing.T) {
	cfg := testConfig()
	kv := store.NewMemory()
	services := &Services{Store: kv, Docks: NewConfigAdapter(cfg, "", "", kv)}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runStaticMode(ctx, &Config{Output: &bytes.Buffer{}, FisheyeConfig: cfg}, services)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewApplication(t *testing.T) {
	dir := t.TempDir()
	origFile := loadConfigFile
	t.Cleanup(func() { loadConfigFile = origFile })

	loadConfigFile = func(string) (config.FisheyeConfig, error) {
		cfg := *testConfig()
		cfg.Store = config.StoreSettings{Backend: "sqlite", Path: filepath.Join(dir, "state.db")}
		return cfg, nil
	}

	a, err := NewApplication(NewConfig(true, false, "side", "", "/unused.yaml"))
	require.NoError(t, err)
	defer a.Close()
	assert.IsType(t, &store.SQLite{}, a.Services().Store)
	assert.Equal(t, filepath.Join(dir, "state.db"), a.Services().StorePath)

	_, err = NewApplication(NewConfig(true, false, "missing", "", "/unused.yaml"))
	assert.Error(t, err)
}

func TestResolveStorePath(t *testing.T) {
	p, err := ResolveStorePath(config.StoreSettings{Backend: "memory", Path: "/ignored"})
	require.NoError(t, err)
	assert.Empty(t, p)

	p, err = ResolveStorePath(config.StoreSettings{Backend: "file", Path: "/tmp/x.yaml"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.yaml", p)

	p, err = ResolveStorePath(config.StoreSettings{})
	require.NoError(t, err)
	assert.Equal(t, "state.yaml", filepath.Base(p))

	p, err = ResolveStorePath(config.StoreSettings{Backend: "SQLite"})
	require.NoError(t, err)
	assert.Equal(t, "state.db", filepath.Base(p))
}
