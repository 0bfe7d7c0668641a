// Flag-layer merge into the resolved settings.

package config

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/harborctl/harborctl/internal/settings"
)

// flagBindings maps persistent flag names to the settings path each one
// overrides. Only flags present here participate in the merge; purely
// CLI-local flags (--config, --log-level) stay out of the settings.
var flagBindings = []struct {
	Flag string
	Path string
}{
	{"url", "harbor.url"},
	{"username", "harbor.username"},
	{"secret", "harbor.secret"},
	{"basicauth", "harbor.basicauth"},
	{"credentials-file", "harbor.credentials_file"},
	{"validate", "harbor.validate_data"},
	{"raw", "harbor.raw_mode"},
	{"verify-tls", "harbor.verify_tls"},
	{"confirm-deletion", "general.confirm_deletion"},
	{"confirm-enumeration", "general.confirm_enumeration"},
	{"output", "output.format"},
	{"paging", "output.paging"},
	{"max-depth", "output.table.max_depth"},
}

// ApplyOverrides merges explicitly-passed persistent flags into the settings,
// giving the command line the final word in the file/environment/flag
// resolution. A flag that the user did not pass is skipped entirely, so flag
// defaults never mask values from lower layers: pflag's Changed state is the
// sole signal that a value was provided.
//
// Returns any normalization warnings (negative table depth) alongside fatal
// errors such as a nonexistent credentials file.
func ApplyOverrides(flags *pflag.FlagSet, s *settings.Settings) ([]string, error) {
	var warnings []string

	for _, binding := range flagBindings {
		flag := flags.Lookup(binding.Flag)
		if flag == nil || !flag.Changed {
			continue
		}

		// SetPath speaks the flat string form for every field, and pflag's
		// canonical String() values ("true", "-2") parse under the same
		// rules as file and environment values.
		warning, err := s.SetPath(binding.Path, flag.Value.String())
		if err != nil {
			return warnings, fmt.Errorf("invalid value for --%s: %w", binding.Flag, err)
		}
		if warning != "" {
			warnings = append(warnings, warning)
		}
	}

	return warnings, nil
}
