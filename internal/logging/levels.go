// Package logging provides centralized log level validation for harborctl.
//
// This file defines the canonical set of valid log levels used by the CLI
// configuration and the --log-level flag. Centralizing validation ensures
// consistency and makes it easy to add new log levels without updating
// multiple files.
//
// SUPPORTED LOG LEVELS:
//   - DEBUG: Detailed debugging information including HTTP request traces
//   - INFO:  General operational information about command activities
//   - WARN:  Warning conditions that should be noted but don't stop operation
//   - ERROR: Error conditions that indicate problems requiring attention
//
// All log level strings are case-sensitive and must be uppercase to maintain
// consistency with the logging system's internal level handling.
package logging

// ValidLogLevels defines the canonical set of supported log levels. This map
// serves as the single source of truth for log level validation in the CLI
// flag layer.
var ValidLogLevels = map[string]bool{
	"DEBUG": true,
	"INFO":  true,
	"WARN":  true,
	"ERROR": true,
}

// IsValidLogLevel checks if the provided log level string is supported by the
// harborctl logging system. Returns true for valid levels, false otherwise.
func IsValidLogLevel(level string) bool {
	return ValidLogLevels[level]
}

// ValidLogLevelsString returns a comma-separated list of valid log levels
// for use in error messages and help text.
func ValidLogLevelsString() string {
	return "DEBUG, INFO, WARN, ERROR"
}
