package model

import (
	"fisheye/internal/config"
	"fisheye/internal/fisheye"
	"fisheye/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeDock AppMode = iota
	ModeHelpOverlay
	ModeQuitting
)

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// MaxActivityLogLines bounds the activity log kept in memory.
const MaxActivityLogLines = 200

// DockSource builds the menu shown by the TUI and reloads it after the
// configuration changed.
type DockSource interface {
	// BuildMenu creates a fresh menu for the selected dock.
	BuildMenu(opts ...fisheye.Option) (*fisheye.Menu, error)
	// Reload re-reads the configuration from disk.
	Reload() error
	// Widget returns the widget settings of the current configuration.
	Widget() config.WidgetSettings
	// WatchPaths returns the configuration files worth watching.
	WatchPaths() []string
}

// TUI configuration struct
type TUIConfig struct {
	DebugMode  bool
	ColorMode  string
	ActiveItem string
	Source     DockSource
}

// Model is the state of the dock TUI. It is only touched from the Bubble Tea
// update loop, which is also the goroutine driving the fisheye menu.
type Model struct {
	Width  int
	Height int

	CurrentAppMode AppMode
	DebugMode      bool

	Source    DockSource
	Menu      *fisheye.Menu
	Widget    config.WidgetSettings
	Scheduler *TeaScheduler

	// Hovering is true while the pointer is over the dock.
	Hovering bool
	// Focus is the index into Menu.Items() of the keyboard focus, or -1.
	Focus int

	Keys KeyMap
	Help help.Model

	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}

	ActivityLog      []string
	ActivityLogDirty bool
	LogChannel       <-chan logging.LogEntry

	ConfigEvents <-chan struct{}
	StopWatching func() error
}

// Geometry returns the pixel to cell mapping of the current settings.
func (m *Model) Geometry() Geometry {
	return Geometry{
		CellWidth:  m.Widget.CellWidth,
		CellHeight: m.Widget.CellHeight,
	}
}

// Geometry maps pixel sizes to terminal cells.
type Geometry struct {
	CellWidth  int
	CellHeight int
}

// FocusedItem returns the keyboard focused item, if any.
func (m *Model) FocusedItem() (fisheye.Item, bool) {
	if m.Menu == nil || m.Focus < 0 {
		return fisheye.Item{}, false
	}
	items := m.Menu.Items()
	if m.Focus >= len(items) {
		return fisheye.Item{}, false
	}
	return items[m.Focus], true
}
