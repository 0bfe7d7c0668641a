// Package commands provides registry endpoint command definitions for harborctl.
//
// REGISTRY COMMANDS:
//   - ls: List replication registry endpoints
//   - info: Detailed information for one endpoint by ID
//   - create: Register a new endpoint
//   - rm: Remove an endpoint
package commands

import (
	"github.com/spf13/cobra"

	"github.com/harborctl/harborctl/cmd/harborctl/config"
)

// Registry command (parent command for replication endpoint operations)
var registryCmd = &cobra.Command{
	Use:   "registry",
	Short: "Manage replication registry endpoints",
	Long: `Commands for managing the remote registry endpoints used as
replication sources and targets.

Endpoints are addressed by the numeric ID shown in "registry ls".`,
}

// Registry list command
var registryLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List registry endpoints",
	Example: `  # List endpoints
  harborctl registry ls`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// Registry info command
var registryInfoCmd = &cobra.Command{
	Use:   "info <id>",
	Short: "Show detailed information for a registry endpoint",
	Example: `  # Show endpoint 3
  harborctl registry info 3`,
	Args: cobra.ExactArgs(1),
	// RunE will be set by the main package that imports this
}

// Registry create command
var registryCreateCmd = &cobra.Command{
	Use:   "create <name> <url>",
	Short: "Register a new registry endpoint",
	Example: `  # Register an upstream Harbor instance
  harborctl registry create upstream https://harbor.upstream.example.com

  # Register Docker Hub
  harborctl registry create hub https://hub.docker.com --type=docker-hub`,
	Args: cobra.ExactArgs(2),
	// RunE will be set by the main package that imports this
}

// Registry update command
var registryUpdateCmd = &cobra.Command{
	Use:   "update <id> <name> <url>",
	Short: "Update a registry endpoint",
	Example: `  # Point endpoint 3 at a new URL
  harborctl registry update 3 upstream https://harbor2.upstream.example.com`,
	Args: cobra.ExactArgs(3),
	// RunE will be set by the main package that imports this
}

// Registry delete command
var registryRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a registry endpoint",
	Example: `  # Remove endpoint 3
  harborctl registry rm 3`,
	Args: cobra.ExactArgs(1),
	// RunE will be set by the main package that imports this
}

// SetupRegistryCommands wires the registry command tree
func SetupRegistryCommands() {
	registryCmd.AddCommand(registryLsCmd)
	registryCmd.AddCommand(registryInfoCmd)
	registryCmd.AddCommand(registryCreateCmd)
	registryCmd.AddCommand(registryUpdateCmd)
	registryCmd.AddCommand(registryRmCmd)
}

// SetupRegistryFlags configures flags for registry commands
func SetupRegistryFlags() {
	for _, cmd := range []*cobra.Command{registryCreateCmd, registryUpdateCmd} {
		cmd.Flags().StringVar(&config.Registry.Type, "type", "harbor",
			"Registry type (harbor, docker-hub, docker-registry, ...)")
		cmd.Flags().StringVar(&config.Registry.Description, "description", "",
			"Endpoint description")
		cmd.Flags().BoolVar(&config.Registry.Insecure, "insecure", false,
			"Skip TLS verification for the remote endpoint")
	}
}

// GetRegistryCommands returns the registry subcommands for handler wiring
func GetRegistryCommands() (lsCmd, infoCmd, createCmd, updateCmd, rmCmd *cobra.Command) {
	return registryLsCmd, registryInfoCmd, registryCreateCmd, registryUpdateCmd, registryRmCmd
}
