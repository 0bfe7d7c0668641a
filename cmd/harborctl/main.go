// Package main provides the entry point for the harborctl CLI tool.
//
// This package implements the main executable for the container registry
// management CLI that enables operators to interact with Harbor-compatible
// registries. The CLI provides commands for browsing projects, repositories,
// artifacts, and tags, managing replication endpoints, and inspecting
// registry health.
//
// CLI ARCHITECTURE:
// The main package orchestrates the complete CLI system including:
//   - Command Structure: Hierarchical resource-based commands (project, repo, artifact)
//   - Handler Integration: Command execution with API client communication
//   - Flag Management: Global and command-specific configuration options
//   - Configuration Binding: Three-layer settings resolution and validation
//
// INITIALIZATION FLOW:
// 1. Command structure setup with hierarchical organization
// 2. Flag configuration for global and command-specific options
// 3. Handler assignment linking commands to API operations
// 4. Configuration resolution (file, environment, flags) before execution
// 5. Command execution with proper error handling and exit codes
//
// The CLI follows kubectl-style patterns for intuitive registry management
// with consistent interfaces, comprehensive help text, and production-ready
// reliability.
package main

import (
	"os"

	"github.com/harborctl/harborctl/cmd/harborctl/commands"
	"github.com/harborctl/harborctl/cmd/harborctl/handlers"
)

func init() {
	// Get root command from commands package
	rootCmd := commands.RootCmd

	// Set version and configuration resolution
	rootCmd.Version = commands.VersionString()
	rootCmd.PersistentPreRunE = commands.ResolveConfiguration

	// Setup all command structures
	commands.SetupCommands()
	commands.SetupProjectCommands()
	commands.SetupRepoCommands()
	commands.SetupArtifactCommands()
	commands.SetupRegistryCommands()
	commands.SetupConfigCommands()

	// Setup global flags
	commands.SetupGlobalFlags(rootCmd)

	// Setup command-specific flags
	commands.SetupProjectFlags()
	commands.SetupRepoFlags()
	commands.SetupArtifactFlags()
	commands.SetupRegistryFlags()
	commands.SetupConfigFlags()
	commands.SetupSystemFlags()

	// Setup command handlers
	setupCommandHandlers()
}

// setupCommandHandlers assigns RunE functions to commands
func setupCommandHandlers() {
	projectLsCmd, projectInfoCmd, projectCreateCmd, projectRmCmd := commands.GetProjectCommands()
	projectLsCmd.RunE = handlers.HandleProjectList
	projectInfoCmd.RunE = handlers.HandleProjectInfo
	projectCreateCmd.RunE = handlers.HandleProjectCreate
	projectRmCmd.RunE = handlers.HandleProjectDelete

	repoLsCmd, repoInfoCmd, repoRmCmd := commands.GetRepoCommands()
	repoLsCmd.RunE = handlers.HandleRepoList
	repoInfoCmd.RunE = handlers.HandleRepoInfo
	repoRmCmd.RunE = handlers.HandleRepoDelete

	artifactLsCmd, artifactInfoCmd, artifactRmCmd := commands.GetArtifactCommands()
	artifactLsCmd.RunE = handlers.HandleArtifactList
	artifactInfoCmd.RunE = handlers.HandleArtifactInfo
	artifactRmCmd.RunE = handlers.HandleArtifactDelete

	tagLsCmd, tagCreateCmd, tagRmCmd := commands.GetTagCommands()
	tagLsCmd.RunE = handlers.HandleTagList
	tagCreateCmd.RunE = handlers.HandleTagCreate
	tagRmCmd.RunE = handlers.HandleTagDelete

	registryLsCmd, registryInfoCmd, registryCreateCmd, registryUpdateCmd, registryRmCmd := commands.GetRegistryCommands()
	registryLsCmd.RunE = handlers.HandleRegistryList
	registryInfoCmd.RunE = handlers.HandleRegistryInfo
	registryCreateCmd.RunE = handlers.HandleRegistryCreate
	registryUpdateCmd.RunE = handlers.HandleRegistryUpdate
	registryRmCmd.RunE = handlers.HandleRegistryDelete

	configListCmd, configGetCmd, configSetCmd, configSaveCmd, configSampleCmd := commands.GetConfigCommands()
	configListCmd.RunE = handlers.HandleConfigList
	configGetCmd.RunE = handlers.HandleConfigGet
	configSetCmd.RunE = handlers.HandleConfigSet
	configSaveCmd.RunE = handlers.HandleConfigSave
	configSampleCmd.RunE = handlers.HandleConfigSample

	searchCmd, healthCmd, whoamiCmd, findCmd, initCmd := commands.GetSystemCommands()
	searchCmd.RunE = handlers.HandleSearch
	healthCmd.RunE = handlers.HandleHealth
	whoamiCmd.RunE = handlers.HandleWhoami
	findCmd.RunE = handlers.HandleFind
	initCmd.RunE = handlers.HandleInit
}

func main() {
	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
