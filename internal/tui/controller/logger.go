package controller

import (
	"swarm/internal/tui/model"
	"swarm/pkg/logging"
)

const controllerSubsystem = "Controller"

// LogDebug logs a debug-level message when the TUI runs in debug mode.
func LogDebug(m *model.Model, format string, a ...interface{}) {
	if m != nil && m.DebugMode {
		logging.Debug(controllerSubsystem, format, a...)
	}
}

// LogError logs an error using the controller subsystem.
func LogError(err error, format string, a ...interface{}) {
	logging.Error(controllerSubsystem, err, format, a...)
}
