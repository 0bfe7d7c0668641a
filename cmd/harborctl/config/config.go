// Package config provides configuration management for the harborctl CLI.
//
// FLAG-TO-SETTINGS MERGE:
// Global holds the raw values of the persistent CLI flags. Flags participate
// in the three-layer resolution (file, then environment, then flags) with the
// highest precedence, but only flags the user actually passed on the command
// line may override anything: ApplyOverrides consults pflag's Changed state
// per flag, so a flag left at its default never masks a file or environment
// value.
package config

import "github.com/harborctl/harborctl/internal/version"

// Version returns the current harborctl CLI version from the centralized version package
var Version = version.HarborctlVersion

// Global holds the global CLI flag values. Each field shadows one settings
// path; the help text of the corresponding flag names that path.
var Global struct {
	ConfigPath string // Path to the config file (empty means the default location)
	LogLevel   string // Log level for CLI operations

	URL             string // Overrides harbor.url
	Username        string // Overrides harbor.username
	Secret          string // Overrides harbor.secret
	BasicAuth       string // Overrides harbor.basicauth
	CredentialsFile string // Overrides harbor.credentials_file
	ValidateData    bool   // Overrides harbor.validate_data
	RawMode         bool   // Overrides harbor.raw_mode
	VerifyTLS       bool   // Overrides harbor.verify_tls

	ConfirmDeletion    bool // Overrides general.confirm_deletion
	ConfirmEnumeration bool // Overrides general.confirm_enumeration

	Output   string // Overrides output.format (table, json)
	Paging   bool   // Overrides output.paging
	MaxDepth int    // Overrides output.table.max_depth
}

// Project holds the project command configuration
var Project struct {
	Public       bool   // Create the project as public
	StorageLimit int64  // Storage quota in bytes (-1 for unlimited)
	Page         int    // Page number for list output
	PageSize     int    // Page size for list output
}

// Repo holds the repository command configuration
var Repo struct {
	Page     int // Page number for list output
	PageSize int // Page size for list output
}

// Artifact holds the artifact command configuration
var Artifact struct {
	Page     int // Page number for list output
	PageSize int // Page size for list output
}

// Config holds the config command configuration
var Config struct {
	ShowSecrets bool // Show secret values instead of the redaction mask
}

// Init holds the init command configuration
var Init struct {
	Force bool // Overwrite an existing config file
}

// Registry holds the registry command configuration
var Registry struct {
	Type        string // Registry type (harbor, docker-hub, ...)
	Description string // Registry description
	Insecure    bool   // Skip TLS verification for the remote endpoint
}
