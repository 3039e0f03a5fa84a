package model

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the application.
// It helps in managing and displaying help information.
type KeyMap struct {
	Prev  key.Binding
	Next  key.Binding
	Enter key.Binding
	Esc   key.Binding
	Copy  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns a KeyMap with default bindings. Vertical docks
// navigate with up/down, horizontal ones with left/right.
func DefaultKeyMap(vertical bool) KeyMap {
	prev := key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous item"),
	)
	next := key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next item"),
	)
	if vertical {
		prev = key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous item"),
		)
		next = key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next item"),
		)
	}
	return KeyMap{
		Prev: prev,
		Next: next,
		Enter: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "activate"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave dock"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy active id"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// FullHelp returns bindings for the main help view.
// It's a slice of slices, where each inner slice is a column in the help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Enter, k.Esc}, // Navigation column
		{k.Copy, k.Help, k.Quit},         // General column
	}
}

// ShortHelp returns a minimal set of bindings, often used for a status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Enter, k.Help, k.Quit}
}
