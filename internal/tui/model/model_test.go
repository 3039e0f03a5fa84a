package model

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fisheye/internal/config"
	"fisheye/internal/fisheye"
	"fisheye/internal/store"
	"fisheye/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	kv       *store.Memory
	vertical bool
	buildErr error
}

func (s *stubSource) BuildMenu(opts ...fisheye.Option) (*fisheye.Menu, error) {
	if s.buildErr != nil {
		return nil, s.buildErr
	}
	c := &fisheye.Container{ID: "dock"}
	if s.vertical {
		c.Orientation = fisheye.Vertical
	}
	for _, id := range []string{"a", "b", "c"} {
		c.Elements = append(c.Elements, fisheye.Element{ID: id, Label: id, Icon: id})
	}
	return fisheye.New(c, s.kv, opts...)
}

func (s *stubSource) Reload() error { return nil }

func (s *stubSource) Widget() config.WidgetSettings {
	return config.GetDefaultConfig().Widget
}

func (s *stubSource) WatchPaths() []string { return nil }

func TestInitializeModel(t *testing.T) {
	src := &stubSource{kv: store.NewMemory()}
	m, err := InitializeModel(TUIConfig{ActiveItem: "b"}, nil)
	assert.Error(t, err)
	assert.Nil(t, m)

	m, err = InitializeModel(TUIConfig{Source: src, ActiveItem: "b"}, nil)
	require.NoError(t, err)

	id, ok := m.Menu.ActiveItemID()
	assert.True(t, ok)
	assert.Equal(t, "b", id)
	assert.Equal(t, -1, m.Focus)
	assert.Equal(t, Geometry{CellWidth: 8, CellHeight: 16}, m.Geometry())
	assert.Contains(t, m.Keys.Next.Keys(), "right")

	src.vertical = true
	require.NoError(t, m.LoadMenu(""))
	assert.Contains(t, m.Keys.Next.Keys(), "down")
	id, _ = m.Menu.ActiveItemID()
	assert.Equal(t, "b", id, "active item restored from the store")
}

func TestLoadMenu_KeepsPreviousMenuOnError(t *testing.T) {
	src := &stubSource{kv: store.NewMemory()}
	m, err := InitializeModel(TUIConfig{Source: src}, nil)
	require.NoError(t, err)
	prev := m.Menu

	src.buildErr = errors.New("bad dock")
	assert.Error(t, m.LoadMenu(""))
	assert.Same(t, prev, m.Menu)
}

func TestFocusedItem(t *testing.T) {
	m, err := InitializeModel(TUIConfig{Source: &stubSource{kv: store.NewMemory()}}, nil)
	require.NoError(t, err)

	_, ok := m.FocusedItem()
	assert.False(t, ok)

	m.Focus = 2
	it, ok := m.FocusedItem()
	assert.True(t, ok)
	assert.Equal(t, "b", it.ID)

	m.Focus = 99
	_, ok = m.FocusedItem()
	assert.False(t, ok)
}

func TestActivityLog_IsBounded(t *testing.T) {
	m := &Model{}
	for i := 0; i < MaxActivityLogLines+10; i++ {
		AddRawLineToActivityLog(m, "line")
	}
	AddRawLineToActivityLog(m, "newest")

	assert.Len(t, m.ActivityLog, MaxActivityLogLines)
	assert.Equal(t, "newest", m.LastLogLine())
	assert.True(t, m.ActivityLogDirty)
}

func TestListenForLogEntriesCmd(t *testing.T) {
	assert.Nil(t, ListenForLogEntriesCmd(nil))

	ch := make(chan logging.LogEntry, 1)
	ch <- logging.LogEntry{Subsystem: "TUI", Message: "hello"}
	msg := ListenForLogEntriesCmd(ch)()
	assert.Equal(t, "hello", msg.(NewLogEntryMsg).Entry.Message)

	close(ch)
	assert.Nil(t, ListenForLogEntriesCmd(ch)())
}

func TestWatchConfig_SignalsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("docks: []\n"), 0o644))

	events, stop, err := WatchConfig([]string{path})
	require.NoError(t, err)
	defer stop()

	require.NoError(t, os.WriteFile(path, []byte("docks: [] # edited\n"), 0o644))

	select {
	case <-events:
	case <-time.After(5 * time.Second):
		t.Fatal("no change signalled")
	}
}
