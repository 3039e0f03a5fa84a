package controller

import (
	"fisheye/internal/tui/model"
	"fisheye/pkg/logging"
)

const tuiSubsystem = "TUI"

// LogInfo logs an informational message.
func LogInfo(format string, a ...interface{}) {
	logging.Info(tuiSubsystem, format, a...)
}

// LogDebug logs a debug-level message. It respects the TUI model's DebugMode flag.
func LogDebug(m *model.Model, format string, a ...interface{}) {
	if m != nil && m.DebugMode {
		logging.Debug(tuiSubsystem, format, a...)
	}
}

// LogWarn logs a warning message.
func LogWarn(format string, a ...interface{}) {
	logging.Warn(tuiSubsystem, format, a...)
}

// LogError logs an error message.
func LogError(err error, format string, a ...interface{}) {
	logging.Error(tuiSubsystem, err, format, a...)
}
