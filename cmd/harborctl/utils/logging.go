// Package utils provides utility functions for the harborctl CLI.
// This file contains logging setup and Resty logger integration utilities.
package utils

import (
	"os"

	"github.com/harborctl/harborctl/internal/logging"
)

// RestyLogger implements resty.Logger interface and routes logs through structured logging
type RestyLogger struct{}

// Errorf routes error messages through structured logging.
func (s RestyLogger) Errorf(format string, v ...interface{}) {
	logging.Error(format, v...)
}

// Warnf routes warning messages through structured logging.
func (s RestyLogger) Warnf(format string, v ...interface{}) {
	logging.Warn(format, v...)
}

// Debugf routes debug messages through structured logging.
func (s RestyLogger) Debugf(format string, v ...interface{}) {
	logging.Debug(format, v...)
}

// SetupLogging configures CLI logging behavior based on environment and the
// given log level. Enables debug output when DEBUG=true, otherwise suppresses
// verbose logs. Essential for maintaining clean CLI output while allowing
// detailed debugging.
//
// A --log-level more verbose than the default takes effect as given; only
// the default ERROR level gets the quiet treatment, and even then non-fatal
// warnings stay visible on stderr.
func SetupLogging(level string) {
	// Check for DEBUG environment variable for debug logging
	if os.Getenv("DEBUG") == "true" {
		// Show debug output - restore normal logging and enable DEBUG level
		logging.RestoreOutput()
		logging.SetLevel("DEBUG")
		return
	}

	// Configure our application logging level first
	logging.SetLevel(level)
	if level == "ERROR" {
		// Suppress debug/info logs in the default setup, keeping warnings
		logging.SuppressOutput()
	}
}
