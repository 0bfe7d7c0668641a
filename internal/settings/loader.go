// Config file loading, creation, and the environment overlay.
//
// Loading never requires network or client access: the loader produces a
// fully-merged Settings value from the file and environment alone, and the
// CLI flag merge is applied afterwards by the command layer. Within a single
// invocation resolution always completes fully before any remote client is
// constructed.

package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// EnvPrefix is the common prefix shared by every recognized environment
// variable.
const EnvPrefix = "HARBOR_CLI_"

// envBindings is the fixed, enumerable set of environment variables and the
// dotted settings paths they map onto. Environment values take precedence
// over file-loaded values but are overridden by CLI flags.
var envBindings = []struct {
	Suffix string
	Path   string
}{
	{"URL", "harbor.url"},
	{"USERNAME", "harbor.username"},
	{"SECRET", "harbor.secret"},
	{"BASICAUTH", "harbor.basicauth"},
	{"CREDENTIALS_FILE", "harbor.credentials_file"},
	{"VALIDATE_DATA", "harbor.validate_data"},
	{"RAW_MODE", "harbor.raw_mode"},
	{"VERIFY_TLS", "harbor.verify_tls"},
	{"RETRY_ENABLED", "harbor.retry.enabled"},
	{"RETRY_MAX_ATTEMPTS", "harbor.retry.max_attempts"},
	{"RETRY_MAX_TIME_SECONDS", "harbor.retry.max_time_seconds"},
	{"CONFIRM_DELETION", "general.confirm_deletion"},
	{"CONFIRM_ENUMERATION", "general.confirm_enumeration"},
	{"WARNINGS", "general.warnings"},
	{"OUTPUT_FORMAT", "output.format"},
	{"PAGING", "output.paging"},
	{"PAGER", "output.pager"},
	{"SHELL_HISTORY", "shell.history"},
	{"SHELL_HISTORY_FILE", "shell.history_file"},
}

// EnvVariables returns the full names of every recognized environment
// variable, for help output and documentation.
func EnvVariables() []string {
	names := make([]string, 0, len(envBindings))
	for _, b := range envBindings {
		names = append(names, EnvPrefix+b.Suffix)
	}
	return names
}

// DefaultPath returns the platform-specific default config file location,
// typically ~/.config/harborctl/config.toml on Linux. Overridable via the
// --config flag or HARBOR_CLI_CONFIG.
func DefaultPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "harborctl", "config.toml")
	}
	// Last resort when no home directory can be determined
	return filepath.Join(".", "harborctl-config.toml")
}

// ResolvePath picks the config file location for this invocation: an
// explicit value (the --config flag) wins, then the HARBOR_CLI_CONFIG
// environment variable, then the platform default. The CONFIG variable is
// resolved here rather than in the env overlay because it selects which file
// to load and therefore must be known before loading starts.
func ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if fromEnv := os.Getenv(EnvPrefix + "CONFIG"); fromEnv != "" {
		return fromEnv
	}
	return DefaultPath()
}

func defaultHistoryPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".harborctl_history")
	}
	return ""
}

// LoadResult reports where a load got its data from, so callers can tell the
// user about a freshly created file.
type LoadResult struct {
	Settings *Settings
	// CreatedPath is non-empty when a new default config file was written
	// because the target was missing and creation was requested.
	CreatedPath string
	// Warnings holds non-fatal messages from unknown keys and coercions.
	Warnings []string
}

// LoadFromPath reads a config file and returns the resulting settings.
// A missing file fails with a "not found" error unless createIfMissing is
// set, in which case a fully-populated default serialization is written
// first and then loaded normally. A directory at the target path is always
// an error. TOML parse failures are wrapped into a single config error that
// keeps the original cause.
func LoadFromPath(path string, createIfMissing bool) (*LoadResult, error) {
	result := &LoadResult{}

	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return nil, fmt.Errorf("config path %q is a directory, not a file", path)
	case os.IsNotExist(err):
		if !createIfMissing {
			return nil, fmt.Errorf("config file %q not found: %w", path, err)
		}
		if err := Default().SaveTo(path); err != nil {
			return nil, fmt.Errorf("failed to create config file %q: %w", path, err)
		}
		result.CreatedPath = path
	case err != nil:
		return nil, fmt.Errorf("cannot access config file %q: %w", path, err)
	}

	var raw map[string]any
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("invalid config file %q: %w", path, err)
	}

	s := Default()
	warnings, err := s.ApplyMap(raw)
	result.Warnings = warnings
	if err != nil {
		return nil, fmt.Errorf("invalid config file %q: %w", path, err)
	}

	s.sourcePath = path
	result.Settings = s
	return result, nil
}

// ApplyEnv overlays values from the fixed set of HARBOR_CLI_* environment
// variables onto the settings, using the same dotted-path coercion as
// "config set". Unset variables leave the corresponding fields untouched.
// Returns coercion warnings; validation failures are fatal like any other
// field validation failure.
func (s *Settings) ApplyEnv() ([]string, error) {
	var warnings []string
	for _, binding := range envBindings {
		value, ok := os.LookupEnv(EnvPrefix + binding.Suffix)
		if !ok {
			continue
		}
		warning, err := s.SetPath(binding.Path, value)
		if err != nil {
			return warnings, fmt.Errorf("environment variable %s: %w", EnvPrefix+binding.Suffix, err)
		}
		if warning != "" {
			warnings = append(warnings, warning)
		}
	}
	return warnings, nil
}

// SaveTo writes the settings as a TOML config file, creating parent
// directories as needed. The sourcePath field is never written: a config
// file must not describe its own location. On success the settings are
// re-bound to the written path so subsequent saves go to the same file.
func (s *Settings) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to write config file %q: %w", path, err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	enc.Indent = ""
	if err := enc.Encode(s.toTree()); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	s.sourcePath = path
	return nil
}

// Sample renders the default configuration as a TOML document string, used
// by "config sample" so users can bootstrap a file without touching disk.
func Sample() (string, error) {
	var sb strings.Builder
	enc := toml.NewEncoder(&sb)
	enc.Indent = ""
	if err := enc.Encode(Default().toTree()); err != nil {
		return "", fmt.Errorf("failed to encode sample config: %w", err)
	}
	return sb.String(), nil
}

// toTree builds the nested map form used for TOML encoding. Built explicitly
// rather than by struct-tag encoding so the optional row_style can be omitted
// when unset instead of serializing a null-like placeholder.
func (s *Settings) toTree() map[string]any {
	table := map[string]any{
		"description": s.Output.Table.Description,
		"max_depth":   s.Output.Table.MaxDepth,
		"compact":     s.Output.Table.Compact,
	}
	if s.Output.Table.RowStyle != nil {
		table["row_style"] = []string{s.Output.Table.RowStyle[0], s.Output.Table.RowStyle[1]}
	}

	return map[string]any{
		"harbor": map[string]any{
			"url":              s.Harbor.URL,
			"username":         s.Harbor.Username,
			"secret":           s.Harbor.Secret,
			"basicauth":        s.Harbor.BasicAuth,
			"credentials_file": s.Harbor.CredentialsFile,
			"validate_data":    s.Harbor.ValidateData,
			"raw_mode":         s.Harbor.RawMode,
			"verify_tls":       s.Harbor.VerifyTLS,
			"retry": map[string]any{
				"enabled":          s.Harbor.Retry.Enabled,
				"max_attempts":     s.Harbor.Retry.MaxAttempts,
				"max_time_seconds": s.Harbor.Retry.MaxTimeSeconds,
			},
		},
		"general": map[string]any{
			"confirm_deletion":    s.General.ConfirmDeletion,
			"confirm_enumeration": s.General.ConfirmEnumeration,
			"warnings":            s.General.Warnings,
		},
		"output": map[string]any{
			"format": s.Output.Format,
			"paging": s.Output.Paging,
			"pager":  s.Output.Pager,
			"table":  table,
			"json": map[string]any{
				"indent":    s.Output.JSON.Indent,
				"sort_keys": s.Output.JSON.SortKeys,
			},
		},
		"shell": map[string]any{
			"history":      s.Shell.History,
			"history_file": s.Shell.HistoryFile,
		},
	}
}
