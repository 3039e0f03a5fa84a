package app

import (
	"errors"
	"testing"
	"time"

	"fisheye/internal/config"
	"fisheye/internal/fisheye"
	"fisheye/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.FisheyeConfig {
	cfg := config.GetDefaultConfig()
	cfg.Docks = append(cfg.Docks, config.DockDefinition{
		ID:          "side",
		Orientation: "vertical",
		Items: []config.ItemDefinition{
			{ID: "x", Label: "X", Icon: "x"},
			{ID: "y", Label: "Y", Icon: "y", Active: true},
		},
	})
	return &cfg
}

func TestContainerFromDock(t *testing.T) {
	def, ok := testConfig().Dock("side")
	require.True(t, ok)

	c, err := ContainerFromDock(def)
	require.NoError(t, err)
	assert.Equal(t, "side", c.ID)
	assert.Equal(t, fisheye.Vertical, c.Orientation)
	require.Len(t, c.Elements, 2)
	assert.True(t, c.Elements[1].Active)
	assert.False(t, c.Initialized())

	_, err = ContainerFromDock(config.DockDefinition{ID: "bad", Orientation: "diagonal"})
	assert.Error(t, err)
}

func TestMenuOptions(t *testing.T) {
	w := config.WidgetSettings{MinSize: 32, MaxSize: 64, DecayInterval: time.Second}
	c := &fisheye.Container{ID: "d", Elements: []fisheye.Element{{ID: "a"}}}

	m, err := fisheye.New(c, nil, MenuOptions(w)...)
	require.NoError(t, err)
	o := m.Options()
	assert.Equal(t, 32.0, o.MinSize)
	assert.Equal(t, 64.0, o.MaxSize)
	assert.Equal(t, time.Second, o.DecayInterval)
	assert.Equal(t, fisheye.DefaultDecayStep, o.DecayStep, "zero settings keep defaults")

	assert.Empty(t, MenuOptions(config.WidgetSettings{}))
}

func TestConfigAdapter_BuildMenu(t *testing.T) {
	kv := store.NewMemory()

	a := NewConfigAdapter(testConfig(), "", "", kv)
	m, err := a.BuildMenu()
	require.NoError(t, err)
	assert.Equal(t, "main", m.ID(), "empty dock id selects the first dock")

	a = NewConfigAdapter(testConfig(), "", "side", kv)
	m, err = a.BuildMenu(fisheye.WithMaxSize(96))
	require.NoError(t, err)
	id, ok := m.ActiveItemID()
	assert.True(t, ok)
	assert.Equal(t, "y", id, "markup active item")
	assert.Equal(t, 96.0, m.Options().MaxSize, "explicit options win")

	again, err := a.BuildMenu()
	require.NoError(t, err)
	assert.NotSame(t, m, again, "each build gets a fresh container")

	_, err = NewConfigAdapter(testConfig(), "", "nope", kv).BuildMenu()
	assert.Error(t, err)
}

func TestConfigAdapter_Reload(t *testing.T) {
	origFile, origLayered, origPaths := loadConfigFile, loadLayeredConfig, activeConfigPaths
	t.Cleanup(func() {
		loadConfigFile, loadLayeredConfig, activeConfigPaths = origFile, origLayered, origPaths
	})

	reloaded := config.GetDefaultConfig()
	reloaded.Widget.MaxSize = 100
	var loadedFrom string
	loadConfigFile = func(path string) (config.FisheyeConfig, error) {
		loadedFrom = path
		return reloaded, nil
	}
	loadLayeredConfig = func() (config.FisheyeConfig, error) {
		return config.FisheyeConfig{}, errors.New("broken yaml")
	}
	activeConfigPaths = func() []string { return []string{"/home/u/.config/fisheye/config.yaml"} }

	a := NewConfigAdapter(testConfig(), "/tmp/dock.yaml", "", store.NewMemory())
	assert.Equal(t, []string{"/tmp/dock.yaml"}, a.WatchPaths())
	require.NoError(t, a.Reload())
	assert.Equal(t, "/tmp/dock.yaml", loadedFrom)
	assert.Equal(t, 100.0, a.Widget().MaxSize)

	layered := NewConfigAdapter(testConfig(), "", "", store.NewMemory())
	assert.Equal(t, []string{"/home/u/.config/fisheye/config.yaml"}, layered.WatchPaths())
	assert.Error(t, layered.Reload())
	assert.Equal(t, float64(config.DefaultMaxSize), layered.Widget().MaxSize, "previous config kept")
}
