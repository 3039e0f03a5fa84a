package controller

import (
	"context"

	"fisheye/internal/tui/model"
	"fisheye/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the Bubble Tea program hosting the dock. All mouse
// motion is reported so the dock can follow the pointer without a button
// pressed.
func NewProgram(ctx context.Context, cfg model.TUIConfig, logChannel <-chan logging.LogEntry) (*tea.Program, error) {
	m, err := model.InitializeModel(cfg, logChannel)
	if err != nil {
		return nil, err
	}

	app := NewAppModel(m)

	p := tea.NewProgram(app,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	return p, nil
}
