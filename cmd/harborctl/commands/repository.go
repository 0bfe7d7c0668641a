// Package commands provides repository command definitions for harborctl.
//
// REPO COMMANDS:
//   - ls: List repositories within a project
//   - info: Detailed information for one repository
//   - rm: Delete a repository and all its artifacts
package commands

import (
	"github.com/spf13/cobra"

	"github.com/harborctl/harborctl/cmd/harborctl/config"
)

// Repo command (parent command for repository operations)
var repoCmd = &cobra.Command{
	Use:   "repo",
	Short: "Manage repositories within projects",
	Long: `Commands for managing image repositories within a project.

Repository names may contain slashes ("library/nested/app"); pass them
exactly as the registry shows them.`,
}

// Repo list command
var repoLsCmd = &cobra.Command{
	Use:   "ls <project>",
	Short: "List repositories in a project",
	Example: `  # List repositories
  harborctl repo ls library

  # Include descriptions in the table
  harborctl repo ls library --output=table

  # Output in JSON format
  harborctl -o json repo ls library`,
	Args: cobra.ExactArgs(1),
	// RunE will be set by the main package that imports this
}

// Repo info command
var repoInfoCmd = &cobra.Command{
	Use:   "info <project> <repository>",
	Short: "Show detailed information for a repository",
	Example: `  # Show repository details
  harborctl repo info library nginx`,
	Args: cobra.ExactArgs(2),
	// RunE will be set by the main package that imports this
}

// Repo delete command
var repoRmCmd = &cobra.Command{
	Use:   "rm <project> <repository>",
	Short: "Delete a repository and all its artifacts",
	Example: `  # Delete a repository
  harborctl repo rm library old-service`,
	Args: cobra.ExactArgs(2),
	// RunE will be set by the main package that imports this
}

// SetupRepoCommands wires the repo command tree
func SetupRepoCommands() {
	repoCmd.AddCommand(repoLsCmd)
	repoCmd.AddCommand(repoInfoCmd)
	repoCmd.AddCommand(repoRmCmd)
}

// SetupRepoFlags configures flags for repo commands
func SetupRepoFlags() {
	repoLsCmd.Flags().IntVar(&config.Repo.Page, "page", 1, "Page number")
	repoLsCmd.Flags().IntVar(&config.Repo.PageSize, "page-size", 25, "Results per page")
}

// GetRepoCommands returns the repo subcommands for handler wiring
func GetRepoCommands() (lsCmd, infoCmd, rmCmd *cobra.Command) {
	return repoLsCmd, repoInfoCmd, repoRmCmd
}
