package controller

import (
	"fmt"
	"time"

	"fisheye/internal/tui/model"
	"fisheye/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

const statusTimeout = 3 * time.Second

// Update is the central message routing function for the TUI application.
// It hands each message to its handler and then flushes the decay ticks the
// menu scheduled while handling it.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m, cmd = handleWindowSizeMsg(m, msg)

	case tea.KeyMsg:
		m, cmd = handleKeyMsgGlobal(m, msg)

	case tea.MouseMsg:
		m, cmd = handleMouseMsg(m, msg)

	case model.DecayTickMsg:
		if !m.Scheduler.Fire(msg.ID) {
			LogDebug(m, "Ignoring stale decay tick %d", msg.ID)
		}

	case model.NewLogEntryMsg:
		m = handleNewLogEntry(m, msg)
		cmd = model.ListenForLogEntriesCmd(m.LogChannel)

	case model.ConfigChangedMsg:
		m, cmd = handleConfigChanged(m)

	case model.ClipboardResultMsg:
		if msg.Err != nil {
			LogError(msg.Err, "Failed to copy %q to the clipboard", msg.ID)
			cmd = m.SetStatusMessage("Copy failed", model.StatusBarError, statusTimeout)
		} else {
			cmd = m.SetStatusMessage(fmt.Sprintf("Copied %q", msg.ID), model.StatusBarSuccess, statusTimeout)
		}

	case model.ClearStatusBarMsg:
		m.StatusBarMessage = ""
		if m.StatusBarClearCancel != nil {
			close(m.StatusBarClearCancel)
			m.StatusBarClearCancel = nil
		}
	}

	return m, tea.Batch(cmd, m.Scheduler.Flush())
}

func handleNewLogEntry(m *model.Model, msg model.NewLogEntryMsg) *model.Model {
	entry := msg.Entry

	// Only add to TUI activity log if the level is INFO or above,
	// OR if TUI debug mode is enabled (m.DebugMode is true).
	if entry.Level >= logging.LevelInfo || m.DebugMode {
		logLine := fmt.Sprintf("%s [%s] [%s] %s",
			entry.Timestamp.Format("15:04:05.000"),
			entry.Level.String(),
			entry.Subsystem,
			entry.Message)

		if entry.Err != nil {
			logLine = fmt.Sprintf("%s -- Error: %v", logLine, entry.Err)
		}
		model.AddRawLineToActivityLog(m, logLine)
	}
	return m
}

// handleConfigChanged reloads the configuration and rebuilds the dock. The
// new menu restores its active item from the store.
func handleConfigChanged(m *model.Model) (*model.Model, tea.Cmd) {
	next := model.WaitForConfigChangeCmd(m.ConfigEvents)

	if err := m.Source.Reload(); err != nil {
		LogError(err, "Failed to reload configuration")
		return m, tea.Batch(next, m.SetStatusMessage("Config reload failed", model.StatusBarError, statusTimeout))
	}
	if err := m.LoadMenu(""); err != nil {
		LogError(err, "Failed to rebuild dock")
		return m, tea.Batch(next, m.SetStatusMessage("Dock rebuild failed", model.StatusBarError, statusTimeout))
	}

	LogInfo("Reloaded dock %q", m.Menu.ID())
	return m, tea.Batch(next, m.SetStatusMessage("Configuration reloaded", model.StatusBarInfo, statusTimeout))
}
