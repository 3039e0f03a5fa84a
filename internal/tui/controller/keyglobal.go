package controller

import (
	"fisheye/internal/fisheye"
	"fisheye/internal/tui/model"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// For mocking in tests
var clipboardWriteAll = clipboard.WriteAll

// handleKeyMsgGlobal processes key presses. The keyboard focus behaves like
// a pointer resting on the middle of the focused icon.
func handleKeyMsgGlobal(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.Keys.Quit):
		m.CurrentAppMode = model.ModeQuitting
		if m.StopWatching != nil {
			if err := m.StopWatching(); err != nil {
				LogError(err, "Failed to stop config watcher")
			}
			m.StopWatching = nil
		}
		return m, tea.Quit

	case key.Matches(keyMsg, m.Keys.Help):
		if m.CurrentAppMode == model.ModeHelpOverlay {
			m.CurrentAppMode = model.ModeDock
		} else {
			m.CurrentAppMode = model.ModeHelpOverlay
		}
		return m, nil

	case key.Matches(keyMsg, m.Keys.Prev):
		return moveFocus(m, -1), nil

	case key.Matches(keyMsg, m.Keys.Next):
		return moveFocus(m, 1), nil

	case key.Matches(keyMsg, m.Keys.Enter):
		it, ok := m.FocusedItem()
		if !ok {
			return m, nil
		}
		if err := m.Menu.Click(centerEvent(it)); err != nil {
			LogWarn("Activating %q failed: %v", it.ID, err)
			return m, nil
		}
		LogInfo("Activated %q", it.ID)
		return m, nil

	case key.Matches(keyMsg, m.Keys.Esc):
		if m.CurrentAppMode == model.ModeHelpOverlay {
			m.CurrentAppMode = model.ModeDock
			return m, nil
		}
		if m.Focus >= 0 || m.Hovering {
			m.Focus = -1
			m.Hovering = false
			m.Menu.PointerLeave()
		}
		return m, nil

	case key.Matches(keyMsg, m.Keys.Copy):
		id, ok := m.Menu.ActiveItemID()
		if !ok {
			return m, m.SetStatusMessage("No active item", model.StatusBarWarning, statusTimeout)
		}
		return m, copyToClipboardCmd(id)
	}
	return m, nil
}

// moveFocus steps the keyboard focus over the non-gutter items and hovers
// the newly focused one. Without a focus it starts at the active item, or
// at the first or last item.
func moveFocus(m *model.Model, delta int) *model.Model {
	items := m.Menu.Items()
	var order []int
	for i, it := range items {
		if !it.Gutter {
			order = append(order, i)
		}
	}
	if len(order) == 0 {
		return m
	}

	pos := -1
	for p, i := range order {
		if i == m.Focus {
			pos = p
		}
	}
	switch {
	case pos >= 0:
		pos += delta
	case delta > 0:
		pos = 0
	default:
		pos = len(order) - 1
	}
	if m.Focus < 0 {
		if id, ok := m.Menu.ActiveItemID(); ok {
			for p, i := range order {
				if items[i].ID == id {
					pos = p
				}
			}
		}
	}
	if pos < 0 {
		pos = 0
	}
	if pos >= len(order) {
		pos = len(order) - 1
	}

	m.Focus = order[pos]
	m.Hovering = true
	it := items[m.Focus]
	if err := m.Menu.PointerMove(centerEvent(it)); err != nil {
		LogDebug(m, "Focus move on %q: %v", it.ID, err)
	}
	return m
}

func centerEvent(it fisheye.Item) fisheye.PointerEvent {
	half := it.Size / 2
	return fisheye.PointerEvent{Target: it.ID, OffsetX: half, OffsetY: half}
}

func copyToClipboardCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return model.ClipboardResultMsg{ID: id, Err: clipboardWriteAll(id)}
	}
}
