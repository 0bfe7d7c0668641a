// Package config validation functions for CLI flags.
package config

import (
	"fmt"

	"github.com/harborctl/harborctl/internal/logging"
	"github.com/harborctl/harborctl/internal/settings"
)

// ValidateGlobalFlags validates all global flags before running any command
func ValidateGlobalFlags() error {
	if err := ValidateOutputFormat(); err != nil {
		return err
	}

	if err := ValidateLogLevel(); err != nil {
		return err
	}

	return nil
}

// ValidateOutputFormat validates the --output flag
func ValidateOutputFormat() error {
	if Global.Output == "" {
		return nil
	}
	if !settings.ValidOutputFormat(Global.Output) {
		logging.Error("Invalid output format '%s'", Global.Output)
		return fmt.Errorf("invalid output format - must be one of: %s, %s",
			settings.FormatTable, settings.FormatJSON)
	}
	return nil
}

// ValidateLogLevel validates the --log-level flag
func ValidateLogLevel() error {
	if !logging.IsValidLogLevel(Global.LogLevel) {
		logging.Error("Invalid log level '%s'", Global.LogLevel)
		return fmt.Errorf("invalid log level - must be one of: %s", logging.ValidLogLevelsString())
	}
	return nil
}
