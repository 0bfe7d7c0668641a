// Package commands provides system-level command definitions for harborctl.
//
// SYSTEM COMMANDS:
//   - search: Query projects and repositories across the registry
//   - health: Registry health summary with per-component status
//   - whoami: Show the authenticated user
//   - find: Report where the config file is looked up (exempt)
//   - init: Create a default config file (exempt)
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harborctl/harborctl/cmd/harborctl/config"
)

// Search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search projects and repositories",
	Long: `Search for projects and repositories matching a term across the
whole registry.

Registry-wide search can be slow on large installations, so it sits behind
the general.confirm_enumeration prompt.`,
	Example: `  # Search for nginx
  harborctl search nginx

  # Skip the prompt
  harborctl --confirm-enumeration=false search nginx`,
	Args: cobra.ExactArgs(1),
	// RunE will be set by the main package that imports this
}

// Health command
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Show registry health status",
	Example: `  # Check registry health
  harborctl health

  # Output in JSON format
  harborctl -o json health`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// Whoami command
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated user",
	Long: `Fetch the authenticated user from the registry.

Useful as a credentials check: it fails with an authentication error when
the configured auth method is not accepted.`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// Find command (exempt from configuration resolution)
var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Show where the config file is looked up",
	Long: `Report the config file path harborctl would use and whether a file
exists there.

Runs without loading any configuration, so it works on a fresh machine.`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// Init command (exempt from configuration resolution)
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long: `Create a fully-populated default config file at the resolved
location (--config, HARBOR_CLI_CONFIG, or the platform default).

Refuses to overwrite an existing file unless --force is passed.`,
	Example: `  # Create the default config file
  harborctl init

  # Create at an explicit location
  harborctl --config=./harborctl.toml init`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// Version command (exempt from configuration resolution)
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the harborctl version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("harborctl %s\n", VersionString())
	},
}

// SetupSystemFlags configures flags for system commands
func SetupSystemFlags() {
	initCmd.Flags().BoolVar(&config.Init.Force, "force", false,
		"Overwrite an existing config file")
}

// GetSystemCommands returns the system commands for handler wiring
func GetSystemCommands() (search, health, whoami, find, initialize *cobra.Command) {
	return searchCmd, healthCmd, whoamiCmd, findCmd, initCmd
}
