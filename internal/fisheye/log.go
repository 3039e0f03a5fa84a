package fisheye

import "fisheye/pkg/logging"

const subsystem = "Fisheye"

func logDebug(format string, args ...interface{}) {
	logging.Debug(subsystem, format, args...)
}

func logWarn(format string, args ...interface{}) {
	logging.Warn(subsystem, format, args...)
}

func logError(err error, format string, args ...interface{}) {
	logging.Error(subsystem, err, format, args...)
}
