package config

import (
	"time"
)

// FisheyeConfig is the top-level configuration structure for fisheye.
type FisheyeConfig struct {
	GlobalSettings GlobalSettings   `yaml:"globalSettings"`
	Widget         WidgetSettings   `yaml:"widget"`
	Store          StoreSettings    `yaml:"store"`
	Docks          []DockDefinition `yaml:"docks"`
}

// GlobalSettings holds settings that are not tied to a dock.
type GlobalSettings struct {
	LogLevel  string `yaml:"logLevel,omitempty"`  // debug, info, warn, error
	ColorMode string `yaml:"colorMode,omitempty"` // auto, dark, light
}

// WidgetSettings are the tunables shared by every dock. Sizes are pixels.
type WidgetSettings struct {
	MinSize        float64       `yaml:"minSize,omitempty"`
	MaxSize        float64       `yaml:"maxSize,omitempty"`
	FocusedItems   int           `yaml:"focusedItems,omitempty"`   // eased neighbors on each side
	VerticalMargin float64       `yaml:"verticalMargin,omitempty"` // gap between items of vertical docks
	LabelHeight    float64       `yaml:"labelHeight,omitempty"`
	DecayStep      float64       `yaml:"decayStep,omitempty"`
	DecayInterval  time.Duration `yaml:"decayInterval,omitempty"`

	// CellWidth and CellHeight map pixels to terminal cells.
	CellWidth  int `yaml:"cellWidth,omitempty"`
	CellHeight int `yaml:"cellHeight,omitempty"`
}

// StoreSettings selects where active items are remembered.
type StoreSettings struct {
	Backend string `yaml:"backend,omitempty"` // memory, file, sqlite
	Path    string `yaml:"path,omitempty"`    // defaults to the user config directory
}

// DockDefinition declares one fisheye menu.
type DockDefinition struct {
	ID          string           `yaml:"id"`
	Orientation string           `yaml:"orientation,omitempty"` // horizontal (default) or vertical
	Items       []ItemDefinition `yaml:"items"`
}

// ItemDefinition declares one entry of a dock.
type ItemDefinition struct {
	ID        string `yaml:"id"`
	Label     string `yaml:"label,omitempty"`
	Icon      string `yaml:"icon,omitempty"`
	IconLarge string `yaml:"iconLarge,omitempty"` // optional glyph for magnified state
	IconSmall string `yaml:"iconSmall,omitempty"` // optional glyph for resting state
	Active    bool   `yaml:"active,omitempty"`    // default active item when nothing is persisted
}

// Dock returns the dock with the given id. An empty id selects the first
// dock.
func (c FisheyeConfig) Dock(id string) (DockDefinition, bool) {
	for _, d := range c.Docks {
		if id == "" || d.ID == id {
			return d, true
		}
	}
	return DockDefinition{}, false
}
