// Package commands provides project management command definitions for harborctl.
//
// PROJECT COMMANDS:
//   - ls: List all projects visible to the authenticated account
//   - info: Detailed information for one project
//   - create: Create a new project with optional visibility and quota
//   - rm: Delete an empty project
package commands

import (
	"github.com/spf13/cobra"

	"github.com/harborctl/harborctl/cmd/harborctl/config"
)

// Project command (parent command for project operations)
var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage registry projects",
	Long: `Commands for managing projects, the top-level namespaces of the registry.

This command group provides operations for listing projects, viewing project
details, creating projects, and deleting empty projects.`,
}

// Project list command
var projectLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all projects",
	Long: `List all projects visible to the authenticated account.

Pagination flags bound the result size on large registries.`,
	Example: `  # List projects
  harborctl project ls

  # Second page, 50 per page
  harborctl project ls --page=2 --page-size=50

  # Output in JSON format
  harborctl -o json project ls`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// Project info command
var projectInfoCmd = &cobra.Command{
	Use:   "info <project>",
	Short: "Show detailed information for a project",
	Example: `  # Show project details
  harborctl project info library

  # Output in JSON format
  harborctl -o json project info library`,
	Args: cobra.ExactArgs(1),
	// RunE will be set by the main package that imports this
}

// Project create command
var projectCreateCmd = &cobra.Command{
	Use:   "create <project>",
	Short: "Create a new project",
	Long: `Create a new project.

Projects are private by default; pass --public to make pulled images
available without authentication. The optional storage limit is in bytes.`,
	Example: `  # Create a private project
  harborctl project create myteam

  # Create a public project with a 10 GiB quota
  harborctl project create myteam --public --storage-limit=10737418240`,
	Args: cobra.ExactArgs(1),
	// RunE will be set by the main package that imports this
}

// Project delete command
var projectRmCmd = &cobra.Command{
	Use:   "rm <project>",
	Short: "Delete an empty project",
	Long: `Delete a project.

The registry refuses to delete projects that still contain repositories.
A confirmation prompt guards the deletion unless general.confirm_deletion
is disabled.`,
	Example: `  # Delete a project
  harborctl project rm myteam

  # Skip the prompt
  harborctl --confirm-deletion=false project rm myteam`,
	Args: cobra.ExactArgs(1),
	// RunE will be set by the main package that imports this
}

// SetupProjectCommands wires the project command tree
func SetupProjectCommands() {
	projectCmd.AddCommand(projectLsCmd)
	projectCmd.AddCommand(projectInfoCmd)
	projectCmd.AddCommand(projectCreateCmd)
	projectCmd.AddCommand(projectRmCmd)
}

// SetupProjectFlags configures flags for project commands
func SetupProjectFlags() {
	projectLsCmd.Flags().IntVar(&config.Project.Page, "page", 1, "Page number")
	projectLsCmd.Flags().IntVar(&config.Project.PageSize, "page-size", 25, "Results per page")

	projectCreateCmd.Flags().BoolVar(&config.Project.Public, "public", false,
		"Make the project public")
	projectCreateCmd.Flags().Int64Var(&config.Project.StorageLimit, "storage-limit", -1,
		"Storage quota in bytes (-1 for unlimited)")
}

// GetProjectCommands returns the project subcommands for handler wiring
func GetProjectCommands() (lsCmd, infoCmd, createCmd, rmCmd *cobra.Command) {
	return projectLsCmd, projectInfoCmd, projectCreateCmd, projectRmCmd
}
