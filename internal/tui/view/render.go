package view

import (
	"fmt"
	"strings"

	"fisheye/internal/fisheye"
	"fisheye/internal/tui/design"
	"fisheye/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Render renders the UI according to the current model state.
func Render(m *model.Model) string {
	if m.CurrentAppMode == model.ModeQuitting {
		return ""
	}

	title := design.TitleStyle.Render("fisheye") + " " +
		design.DimStyle.Render(fmt.Sprintf("%s · %s", m.Menu.ID(), m.Menu.DecayState()))

	focusID := ""
	if it, ok := m.FocusedItem(); ok {
		focusID = it.ID
	}
	dock := RenderDock(ComputeLayout(m.Menu, m.Geometry()), focusID)

	sections := []string{title, dock, renderStatusBar(m)}
	if m.CurrentAppMode == model.ModeHelpOverlay {
		sections = append(sections, m.Help.FullHelpView(m.Keys.FullHelp()))
	} else {
		sections = append(sections, m.Help.ShortHelpView(m.Keys.ShortHelp()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// RenderDock draws a laid out dock. focusID marks the keyboard focus.
func RenderDock(l Layout, focusID string) string {
	if l.Orientation == fisheye.Vertical {
		return renderVertical(l, focusID)
	}
	return renderHorizontal(l, focusID)
}

func renderHorizontal(l Layout, focusID string) string {
	cols := make([]string, 0, len(l.Boxes))
	for _, b := range l.Boxes {
		var box, label string
		if b.Item.Gutter {
			box = blank(b.W, l.MaxRows)
			label = blank(b.W, 1)
		} else {
			box = lipgloss.PlaceVertical(l.MaxRows, lipgloss.Bottom, renderBox(b, focusID))
			label = renderLabel(b.Item, b.W, lipgloss.Center)
		}
		cols = append(cols, lipgloss.JoinVertical(lipgloss.Left, box, label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, cols...)
}

func renderVertical(l Layout, focusID string) string {
	labelWidth := l.Width - l.MaxCols - 1
	rows := make([]string, 0, len(l.Boxes))
	prevEnd := 0
	for _, b := range l.Boxes {
		if gap := b.Y - prevEnd; gap > 0 {
			rows = append(rows, blank(l.Width, gap))
		}
		prevEnd = b.Y + b.H

		if b.Item.Gutter {
			rows = append(rows, blank(l.Width, b.H))
			continue
		}
		box := lipgloss.NewStyle().MarginLeft(b.X).Render(renderBox(b, focusID))
		box = lipgloss.PlaceHorizontal(l.MaxCols, lipgloss.Left, box)
		label := lipgloss.PlaceVertical(b.H, lipgloss.Center, renderLabel(b.Item, labelWidth, lipgloss.Left))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, box, " ", label))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderBox(b Box, focusID string) string {
	style := design.ItemStyle
	switch {
	case b.Item.ID == focusID:
		style = design.ItemFocusStyle
	case b.Item.Active:
		style = design.ItemActiveStyle
	case b.Item.LabelVisible:
		style = design.ItemMagnifiedStyle
	}
	inner := b.W - style.GetHorizontalBorderSize()
	icon := runewidth.Truncate(b.Item.Icon, inner, "")
	return style.
		Width(inner).
		Height(b.H - style.GetVerticalBorderSize()).
		Render(icon)
}

// renderLabel returns the label truncated to width cells, or blanks when the
// label is hidden.
func renderLabel(it fisheye.Item, width int, pos lipgloss.Position) string {
	if !it.LabelVisible || it.Label == "" {
		return blank(width, 1)
	}
	text := runewidth.Truncate(it.Label, width, "…")
	style := design.LabelStyle
	if it.Active {
		style = design.LabelActiveStyle
	}
	return lipgloss.PlaceHorizontal(width, pos, style.Render(text))
}

func blank(width, height int) string {
	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func renderStatusBar(m *model.Model) string {
	text := m.StatusBarMessage
	style := design.StatusBarStyle
	switch {
	case text != "":
		switch m.StatusBarMessageType {
		case model.StatusBarSuccess:
			style = design.StatusBarSuccessStyle
		case model.StatusBarError:
			style = design.StatusBarErrorStyle
		case model.StatusBarWarning:
			style = design.StatusBarWarningStyle
		default:
			style = design.StatusBarInfoStyle
		}
	default:
		text = m.LastLogLine()
		if text == "" {
			if id, ok := m.Menu.ActiveItemID(); ok {
				text = "active: " + id
			} else {
				text = "no active item"
			}
		}
	}

	width := m.Width
	if width <= 0 {
		return style.Render(text)
	}
	inner := width - style.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}
	return style.Width(width).Render(runewidth.Truncate(text, inner, "…"))
}

// SizeVector formats the item sizes of menu, gutters included, for headless
// output.
func SizeVector(menu *fisheye.Menu) string {
	items := menu.Items()
	parts := make([]string, 0, len(items))
	for _, it := range items {
		mark := ""
		if it.Active {
			mark = "*"
		}
		parts = append(parts, fmt.Sprintf("%s%s=%s", mark, it.ID, fisheye.FormatOffset(it.Size)))
	}
	return strings.Join(parts, " ")
}
