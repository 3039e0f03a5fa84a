package model

import (
	"fisheye/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// AddRawLineToActivityLog adds a pre-formatted log entry to the model's activity log,
// ensuring it doesn't exceed MaxActivityLogLines and sets the dirty flag.
func AddRawLineToActivityLog(m *Model, entry string) {
	m.ActivityLog = append(m.ActivityLog, entry)
	if len(m.ActivityLog) > MaxActivityLogLines {
		m.ActivityLog = m.ActivityLog[len(m.ActivityLog)-MaxActivityLogLines:]
	}
	m.ActivityLogDirty = true
}

// LastLogLine returns the newest activity log line.
func (m *Model) LastLogLine() string {
	if len(m.ActivityLog) == 0 {
		return ""
	}
	return m.ActivityLog[len(m.ActivityLog)-1]
}

// ListenForLogEntriesCmd waits for the next entry on ch. The command yields
// nil once the channel is closed, which ends the listen loop.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}
