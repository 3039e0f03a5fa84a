package model

import "fisheye/pkg/logging"

// DecayTickMsg fires the scheduler timer with the given id.
type DecayTickMsg struct {
	ID int
}

// NewLogEntryMsg carries one entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// ConfigChangedMsg is sent when a watched configuration file was written.
type ConfigChangedMsg struct{}

// ClipboardResultMsg reports the outcome of copying the active item id.
type ClipboardResultMsg struct {
	ID  string
	Err error
}

// ClearStatusBarMsg clears the status bar message.
type ClearStatusBarMsg struct{}
