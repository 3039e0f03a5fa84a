package controller

import (
	"fisheye/internal/fisheye"
	"fisheye/internal/tui/model"
	"fisheye/internal/tui/view"

	tea "github.com/charmbracelet/bubbletea"
)

// handleMouseMsg turns terminal mouse events into pointer events for the
// menu. Motion over the dock hovers, motion anywhere else after hovering
// leaves once, and a left press clicks.
func handleMouseMsg(m *model.Model, msg tea.MouseMsg) (*model.Model, tea.Cmd) {
	layout := view.ComputeLayout(m.Menu, m.Geometry())
	hit, ok := layout.HitTest(msg.X-view.DockLeft, msg.Y-view.DockTop)

	switch msg.Action {
	case tea.MouseActionMotion:
		if !ok {
			if m.Hovering {
				m.Hovering = false
				m.Menu.PointerLeave()
			}
			return m, nil
		}
		m.Hovering = true
		m.Focus = -1
		if err := m.Menu.PointerMove(pointerEvent(hit)); err != nil {
			LogDebug(m, "Pointer move on %q: %v", hit.Item.ID, err)
		}

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !ok || hit.Item.Gutter {
			return m, nil
		}
		m.Hovering = true
		m.Focus = -1
		if err := m.Menu.Click(pointerEvent(hit)); err != nil {
			LogWarn("Click on %q failed: %v", hit.Item.ID, err)
			return m, nil
		}
		LogInfo("Activated %q", hit.Item.ID)
	}
	return m, nil
}

func pointerEvent(h view.Hit) fisheye.PointerEvent {
	return fisheye.PointerEvent{Target: h.Item.ID, OffsetX: h.OffsetX, OffsetY: h.OffsetY}
}
