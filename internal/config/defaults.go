package config

import (
	"time"
)

// Default widget and terminal settings.
const (
	DefaultMinSize        = 48
	DefaultMaxSize        = 80
	DefaultFocusedItems   = 1
	DefaultVerticalMargin = 0
	DefaultLabelHeight    = 16
	DefaultDecayStep      = 2
	DefaultDecayInterval  = 30 * time.Millisecond
	DefaultCellWidth      = 8
	DefaultCellHeight     = 16
	DefaultStoreBackend   = "file"
)

// GetDefaultConfig returns the built-in configuration: the stock widget
// settings and one sample dock so fisheye works out-of-the-box.
func GetDefaultConfig() FisheyeConfig {
	return FisheyeConfig{
		GlobalSettings: GlobalSettings{
			LogLevel:  "info",
			ColorMode: "auto",
		},
		Widget: WidgetSettings{
			MinSize:        DefaultMinSize,
			MaxSize:        DefaultMaxSize,
			FocusedItems:   DefaultFocusedItems,
			VerticalMargin: DefaultVerticalMargin,
			LabelHeight:    DefaultLabelHeight,
			DecayStep:      DefaultDecayStep,
			DecayInterval:  DefaultDecayInterval,
			CellWidth:      DefaultCellWidth,
			CellHeight:     DefaultCellHeight,
		},
		Store: StoreSettings{
			Backend: DefaultStoreBackend,
		},
		Docks: []DockDefinition{
			{
				ID:          "main",
				Orientation: "horizontal",
				Items: []ItemDefinition{
					{ID: "home", Label: "Home", Icon: "⌂", IconLarge: "⌂", IconSmall: "·"},
					{ID: "mail", Label: "Mail", Icon: "✉", IconLarge: "✉", IconSmall: "·"},
					{ID: "music", Label: "Music", Icon: "♫", IconLarge: "♫", IconSmall: "·"},
					{ID: "notes", Label: "Notes", Icon: "✎", IconLarge: "✎", IconSmall: "·"},
					{ID: "settings", Label: "Settings", Icon: "⚙", IconLarge: "⚙", IconSmall: "·"},
				},
			},
		},
	}
}
