// Package settings implements the layered configuration model for harborctl.
//
// The package owns the full set of recognized configuration keys, their types,
// default values, and validation rules, plus every way a settings object can
// be produced or transformed: construction with defaults, loading from a TOML
// config file, environment-variable overlay, dotted-path get/set for the
// "config" commands, and flat serialization with secret redaction for display.
//
// RESOLUTION ORDER (highest to lowest precedence):
//   - CLI flag (applied by the cmd/harborctl/config override merge)
//   - environment variable (HARBOR_CLI_* overlay)
//   - config file value
//   - schema default
//
// Unknown keys encountered while loading are reported as warnings, never
// errors, so configs written for newer CLI versions keep working and typos
// are surfaced without blocking execution. Field validation failures, by
// contrast, are always fatal.
package settings

import (
	"fmt"
	"strings"
)

// SecretMask replaces secret material in redacted serializations. The
// in-memory settings object is never altered by redaction.
const SecretMask = "***"

// Output format names accepted by output.format.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// RetrySettings controls the HTTP client retry policy for remote calls.
type RetrySettings struct {
	Enabled        bool `toml:"enabled"`
	MaxAttempts    int  `toml:"max_attempts"`
	MaxTimeSeconds int  `toml:"max_time_seconds"`
}

// ConnectionSettings holds everything needed to reach and authenticate
// against the registry API. Exactly one of {Username+Secret, BasicAuth,
// CredentialsFile} may be set; HasAuthMethod reports whether a usable
// method is configured.
type ConnectionSettings struct {
	URL             string        `toml:"url"`
	Username        string        `toml:"username"`
	Secret          string        `toml:"secret"`
	BasicAuth       string        `toml:"basicauth"`
	CredentialsFile string        `toml:"credentials_file"`
	ValidateData    bool          `toml:"validate_data"`
	RawMode         bool          `toml:"raw_mode"`
	VerifyTLS       bool          `toml:"verify_tls"`
	Retry           RetrySettings `toml:"retry"`
}

// GeneralSettings holds behavior toggles that apply across all commands.
type GeneralSettings struct {
	ConfirmDeletion    bool `toml:"confirm_deletion"`
	ConfirmEnumeration bool `toml:"confirm_enumeration"`
	Warnings           bool `toml:"warnings"`
}

// TableSettings holds table-format rendering options. RowStyle is nil when
// unset; when set it always holds exactly two style values (foreground and
// background), duplicated from a single input value if necessary.
type TableSettings struct {
	Description bool       `toml:"description"`
	MaxDepth    int        `toml:"max_depth"`
	Compact     bool       `toml:"compact"`
	RowStyle    *[2]string `toml:"row_style"`
}

// JSONSettings holds JSON-format rendering options.
type JSONSettings struct {
	Indent   int  `toml:"indent"`
	SortKeys bool `toml:"sort_keys"`
}

// OutputSettings selects and parameterizes the output representation.
type OutputSettings struct {
	Format string        `toml:"format"`
	Paging bool          `toml:"paging"`
	Pager  string        `toml:"pager"`
	Table  TableSettings `toml:"table"`
	JSON   JSONSettings  `toml:"json"`
}

// ShellSettings holds interactive-shell behavior.
type ShellSettings struct {
	History     bool   `toml:"history"`
	HistoryFile string `toml:"history_file"`
}

// Settings is the complete harborctl configuration tree. A Settings value is
// constructed once per process at startup (or once per shell command when
// overrides are applied), mutated in place by the override merge and by
// explicit "config set" operations, and persisted to disk only on explicit
// save.
type Settings struct {
	Harbor  ConnectionSettings `toml:"harbor"`
	General GeneralSettings    `toml:"general"`
	Output  OutputSettings     `toml:"output"`
	Shell   ShellSettings      `toml:"shell"`

	// sourcePath records the file these settings were loaded from. It is
	// excluded from every serialized representation (a config file must
	// never describe its own location) but is carried through Copy so a
	// restored snapshot can still save back to its original file.
	sourcePath string
}

// Default constructs a fully valid, internally consistent settings object
// with no authentication method configured. Every field holds its schema
// default; no file, environment, or flag input is consulted.
func Default() *Settings {
	return &Settings{
		Harbor: ConnectionSettings{
			ValidateData: true,
			VerifyTLS:    true,
			Retry: RetrySettings{
				Enabled:        false,
				MaxAttempts:    3,
				MaxTimeSeconds: 60,
			},
		},
		General: GeneralSettings{
			ConfirmDeletion:    true,
			ConfirmEnumeration: true,
			Warnings:           true,
		},
		Output: OutputSettings{
			Format: FormatTable,
			Paging: false,
			Pager:  "less",
			Table: TableSettings{
				Description: true,
				MaxDepth:    1,
				Compact:     false,
				RowStyle:    nil,
			},
			JSON: JSONSettings{
				Indent:   2,
				SortKeys: false,
			},
		},
		Shell: ShellSettings{
			History:     true,
			HistoryFile: defaultHistoryPath(),
		},
	}
}

// Copy returns a structurally independent copy of the settings. Later
// in-place mutation of the original (by the override merge or "config set")
// never alters the copy. The sourcePath rides along in the struct copy even
// though it is excluded from serialization.
func (s *Settings) Copy() *Settings {
	out := *s
	if s.Output.Table.RowStyle != nil {
		style := *s.Output.Table.RowStyle
		out.Output.Table.RowStyle = &style
	}
	return &out
}

// SourcePath returns the config file path these settings were loaded from,
// or "" when they were built from defaults alone.
func (s *Settings) SourcePath() string {
	return s.sourcePath
}

// HasAuthMethod reports whether exactly one authentication method is
// configured. Zero methods means the settings are valid but unauthenticated;
// more than one is ambiguous and also reports false (CheckAuth distinguishes
// the two cases).
func (s *Settings) HasAuthMethod() bool {
	return s.authMethodCount() == 1
}

// CheckAuth validates the authentication configuration for use by a remote
// client. Returns a descriptive error when no method or more than one method
// is configured.
func (s *Settings) CheckAuth() error {
	switch s.authMethodCount() {
	case 0:
		return fmt.Errorf("no authentication method configured: set username and secret, a basicauth token, or a credentials file")
	case 1:
		return nil
	default:
		return fmt.Errorf("ambiguous authentication: configure only one of username/secret, basicauth, or credentials_file")
	}
}

func (s *Settings) authMethodCount() int {
	count := 0
	if s.Harbor.Username != "" && s.Harbor.Secret != "" {
		count++
	}
	if s.Harbor.BasicAuth != "" {
		count++
	}
	if s.Harbor.CredentialsFile != "" {
		count++
	}
	return count
}

// ValidOutputFormat reports whether the given format name is supported.
func ValidOutputFormat(format string) bool {
	switch strings.ToLower(format) {
	case FormatTable, FormatJSON:
		return true
	}
	return false
}
