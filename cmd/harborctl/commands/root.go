// Package commands provides the complete command tree implementation for harborctl.
//
// This package defines the hierarchical command structure for the harborctl
// CLI tool, implementing a resource-based command architecture similar to
// kubectl. Commands are organized into logical groups that match the
// registry's resource model.
//
// COMMAND STRUCTURE:
//   - project: Project namespace management (ls, info, create, rm)
//   - repo: Repository operations within projects (ls, info, rm)
//   - artifact: Artifact and tag management (ls, info, rm, tag)
//   - registry: Replication endpoint management (ls, info, create, rm)
//   - config: Session configuration inspection and mutation
//   - shell: Interactive REPL with per-command state isolation
//
// CONFIGURATION RESOLUTION:
// Before any non-exempt command runs, the root command resolves configuration
// in three layers with strictly increasing precedence: the TOML config file,
// then HARBOR_CLI_* environment variables, then explicitly-passed CLI flags.
// A handful of commands (init, find, config sample, version, completion,
// help) are exempt and run without any resolution so they work on machines
// with no config at all.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harborctl/harborctl/cmd/harborctl/config"
	"github.com/harborctl/harborctl/cmd/harborctl/session"
	"github.com/harborctl/harborctl/cmd/harborctl/utils"
	"github.com/harborctl/harborctl/internal/logging"
	"github.com/harborctl/harborctl/internal/settings"
	"github.com/harborctl/harborctl/internal/version"
)

// Root command
var RootCmd = &cobra.Command{
	Use:   "harborctl",
	Short: "CLI tool for managing container registry projects, repositories, and artifacts",
	Long: `harborctl is a command-line client for Harbor-compatible container
registries.

It lets you browse and manage projects, repositories, artifacts, and tags,
inspect registry health, and manage replication endpoints. Connection
settings resolve from a config file, HARBOR_CLI_* environment variables,
and CLI flags, in that order of increasing precedence.`,
	SilenceUsage: true,
	Example: `  # Create a config file to edit
  harborctl init

  # List projects
  harborctl project ls

  # List repositories in a project
  harborctl repo ls library

  # Inspect an artifact by tag
  harborctl artifact info library nginx latest

  # Override the registry for one invocation
  harborctl --url=https://harbor.example.com project ls

  # Output in JSON format
  harborctl -o json project ls

  # Start an interactive shell
  harborctl shell`,
}

// SetupCommands initializes all commands and their relationships
func SetupCommands() {
	RootCmd.AddCommand(projectCmd)
	RootCmd.AddCommand(repoCmd)
	RootCmd.AddCommand(artifactCmd)
	RootCmd.AddCommand(tagCmd)
	RootCmd.AddCommand(registryCmd)
	RootCmd.AddCommand(configCmd)
	RootCmd.AddCommand(searchCmd)
	RootCmd.AddCommand(healthCmd)
	RootCmd.AddCommand(whoamiCmd)
	RootCmd.AddCommand(findCmd)
	RootCmd.AddCommand(initCmd)
	RootCmd.AddCommand(shellCmd)
	RootCmd.AddCommand(versionCmd)
}

// SetupGlobalFlags configures all global persistent flags. Each override
// flag's help text names the config path it overrides, so flag help doubles
// as schema documentation.
func SetupGlobalFlags(rootCmd *cobra.Command) {
	flags := rootCmd.PersistentFlags()

	flags.StringVar(&config.Global.ConfigPath, "config", "",
		"Config file path (default: platform config dir, or HARBOR_CLI_CONFIG)")
	flags.StringVar(&config.Global.LogLevel, "log-level", "ERROR",
		"Log level: DEBUG, INFO, WARN, ERROR")

	flags.StringVar(&config.Global.URL, "url", "",
		"Registry URL (overrides harbor.url)")
	flags.StringVar(&config.Global.Username, "username", "",
		"Username for basic auth (overrides harbor.username)")
	flags.StringVar(&config.Global.Secret, "secret", "",
		"Secret for basic auth (overrides harbor.secret)")
	flags.StringVar(&config.Global.BasicAuth, "basicauth", "",
		"Prebuilt basic auth token (overrides harbor.basicauth)")
	flags.StringVar(&config.Global.CredentialsFile, "credentials-file", "",
		"Path to a username:secret file (overrides harbor.credentials_file)")
	flags.BoolVar(&config.Global.ValidateData, "validate", true,
		"Validate response data (overrides harbor.validate_data)")
	flags.BoolVar(&config.Global.RawMode, "raw", false,
		"Raw mode: skip error interception (overrides harbor.raw_mode)")
	flags.BoolVar(&config.Global.VerifyTLS, "verify-tls", true,
		"Verify the registry TLS certificate (overrides harbor.verify_tls)")

	flags.BoolVar(&config.Global.ConfirmDeletion, "confirm-deletion", true,
		"Prompt before deletions (overrides general.confirm_deletion)")
	flags.BoolVar(&config.Global.ConfirmEnumeration, "confirm-enumeration", true,
		"Prompt before expensive enumerations (overrides general.confirm_enumeration)")

	flags.StringVarP(&config.Global.Output, "output", "o", settings.FormatTable,
		"Output format: table, json (overrides output.format)")
	flags.BoolVar(&config.Global.Paging, "paging", false,
		"Page long output through the configured pager (overrides output.paging)")
	flags.IntVar(&config.Global.MaxDepth, "max-depth", 1,
		"Nested attribute depth in tables (overrides output.table.max_depth)")
}

// exemptCommands names the commands that run without configuration
// resolution. Matched against the space-joined command path relative to the
// root, so "config sample" exempts only that one subcommand.
var exemptCommands = map[string]bool{
	"init":          true,
	"find":          true,
	"config sample": true,
	"version":       true,
	"completion":    true,
	"help":          true,
}

// commandPath returns the invoked command's path without the root name
// ("config sample", "project ls").
func commandPath(cmd *cobra.Command) string {
	path := cmd.CommandPath()
	rootName := cmd.Root().Name()
	if len(path) > len(rootName) {
		return path[len(rootName)+1:]
	}
	return ""
}

// isExempt reports whether the invoked command skips configuration
// resolution. Parent paths match too, so every subcommand of an exempt
// command is itself exempt.
func isExempt(cmd *cobra.Command) bool {
	path := commandPath(cmd)
	for {
		if exemptCommands[path] {
			return true
		}
		idx := len(path)
		for idx > 0 && path[idx-1] != ' ' {
			idx--
		}
		if idx == 0 {
			return false
		}
		path = path[:idx-1]
	}
}

// ResolveConfiguration is the root PersistentPreRunE. It validates the global
// flags, configures logging, and, for non-exempt commands, performs the full
// three-layer merge and installs the result into the session. Inside an
// interactive shell the session is already resolved, so only the flag layer
// is re-applied for the current line.
func ResolveConfiguration(cmd *cobra.Command, args []string) error {
	if err := config.ValidateGlobalFlags(); err != nil {
		return err
	}
	utils.SetupLogging(config.Global.LogLevel)

	if isExempt(cmd) {
		return nil
	}

	var warnings []string

	if !session.Active() {
		path := settings.ResolvePath(config.Global.ConfigPath)
		result, err := settings.LoadFromPath(path, true)
		if err != nil {
			return err
		}
		if result.CreatedPath != "" {
			logging.Info("Created default config file at %s", result.CreatedPath)
		}
		warnings = append(warnings, result.Warnings...)

		envWarnings, err := result.Settings.ApplyEnv()
		if err != nil {
			return err
		}
		warnings = append(warnings, envWarnings...)

		session.SetCurrent(result.Settings)
	}

	flagWarnings, err := config.ApplyOverrides(cmd.Flags(), session.Current())
	if err != nil {
		return err
	}
	warnings = append(warnings, flagWarnings...)

	if session.Current().General.Warnings {
		for _, warning := range warnings {
			logging.Warn("%s", warning)
		}
	}
	return nil
}

// VersionString builds the --version output with the API version the client
// speaks.
func VersionString() string {
	return fmt.Sprintf("%s (API %s)", config.Version, version.APIVersion)
}
