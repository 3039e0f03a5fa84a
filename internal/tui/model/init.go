package model

import (
	"fmt"

	"fisheye/internal/fisheye"
	"fisheye/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// InitializeModel builds the dock model from the configured source.
func InitializeModel(cfg TUIConfig, logChannel <-chan logging.LogEntry) (*Model, error) {
	if cfg.Source == nil {
		return nil, fmt.Errorf("tui: no dock source configured")
	}

	m := &Model{
		CurrentAppMode: ModeDock,
		DebugMode:      cfg.DebugMode,
		Source:         cfg.Source,
		Scheduler:      NewTeaScheduler(),
		Focus:          -1,
		Help:           help.New(),
		LogChannel:     logChannel,
	}
	if err := m.LoadMenu(cfg.ActiveItem); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadMenu (re)builds the menu from the source. Pending decay timers of the
// previous menu are dropped and the keyboard focus is reset. activeItem, when
// set, overrides the persisted active item.
func (m *Model) LoadMenu(activeItem string) error {
	opts := []fisheye.Option{fisheye.WithScheduler(m.Scheduler)}
	if activeItem != "" {
		opts = append(opts, fisheye.WithActiveItem(activeItem))
	}
	menu, err := m.Source.BuildMenu(opts...)
	if err != nil {
		return fmt.Errorf("build dock: %w", err)
	}

	m.Scheduler.Reset()
	m.Menu = menu
	m.Widget = m.Source.Widget()
	m.Keys = DefaultKeyMap(menu.Orientation() == fisheye.Vertical)
	m.Focus = -1
	m.Hovering = false
	return nil
}

// Init implements tea.Model. It starts listening for log entries and config
// changes.
func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd

	if m.LogChannel != nil {
		cmds = append(cmds, ListenForLogEntriesCmd(m.LogChannel))
	}

	if paths := m.Source.WatchPaths(); len(paths) > 0 && m.StopWatching == nil {
		events, stop, err := WatchConfig(paths)
		if err != nil {
			logging.Warn("TUI", "Config hot reload disabled: %v", err)
		} else {
			m.ConfigEvents = events
			m.StopWatching = stop
			cmds = append(cmds, WaitForConfigChangeCmd(events))
		}
	}

	cmds = append(cmds, m.Scheduler.Flush())
	return tea.Batch(cmds...)
}
