// Package commands provides artifact and tag command definitions for harborctl.
//
// ARTIFACT COMMANDS:
//   - ls: List artifacts in a repository with their tags
//   - info: Detailed information for one artifact by tag or digest
//   - rm: Delete an artifact and all tags pointing at it
//
// TAG COMMANDS:
//   - ls: List tags on an artifact
//   - create: Attach a new tag to an artifact
//   - rm: Remove a single tag
package commands

import (
	"github.com/spf13/cobra"

	"github.com/harborctl/harborctl/cmd/harborctl/config"
)

// Artifact command (parent command for artifact operations)
var artifactCmd = &cobra.Command{
	Use:   "artifact",
	Short: "Manage artifacts within repositories",
	Long: `Commands for managing content-addressed artifacts (images, charts,
SBOMs) within a repository.

Artifacts are addressed by reference: either a tag name ("latest") or a
digest ("sha256:..."). Both forms work everywhere a reference is expected.`,
}

// Artifact list command
var artifactLsCmd = &cobra.Command{
	Use:   "ls <project> <repository>",
	Short: "List artifacts in a repository",
	Example: `  # List artifacts with their tags
  harborctl artifact ls library nginx

  # Show nested attributes two levels deep
  harborctl --max-depth=2 artifact ls library nginx

  # Output in JSON format
  harborctl -o json artifact ls library nginx`,
	Args: cobra.ExactArgs(2),
	// RunE will be set by the main package that imports this
}

// Artifact info command
var artifactInfoCmd = &cobra.Command{
	Use:   "info <project> <repository> <reference>",
	Short: "Show detailed information for an artifact",
	Example: `  # By tag
  harborctl artifact info library nginx latest

  # By digest
  harborctl artifact info library nginx sha256:3f8a...`,
	Args: cobra.ExactArgs(3),
	// RunE will be set by the main package that imports this
}

// Artifact delete command
var artifactRmCmd = &cobra.Command{
	Use:   "rm <project> <repository> <reference>",
	Short: "Delete an artifact and all its tags",
	Example: `  # Delete by digest
  harborctl artifact rm library nginx sha256:3f8a...`,
	Args: cobra.ExactArgs(3),
	// RunE will be set by the main package that imports this
}

// Tag command (parent command for tag operations)
var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage tags on artifacts",
	Long: `Commands for managing the tags attached to artifacts.

Deleting a tag never deletes the artifact it points at; use "artifact rm"
for that.`,
}

// Tag list command
var tagLsCmd = &cobra.Command{
	Use:   "ls <project> <repository> <reference>",
	Short: "List tags on an artifact",
	Example: `  # List tags
  harborctl tag ls library nginx sha256:3f8a...`,
	Args: cobra.ExactArgs(3),
	// RunE will be set by the main package that imports this
}

// Tag create command
var tagCreateCmd = &cobra.Command{
	Use:   "create <project> <repository> <reference> <tag>",
	Short: "Attach a new tag to an artifact",
	Example: `  # Tag the current latest as stable
  harborctl tag create library nginx latest stable`,
	Args: cobra.ExactArgs(4),
	// RunE will be set by the main package that imports this
}

// Tag delete command
var tagRmCmd = &cobra.Command{
	Use:   "rm <project> <repository> <reference> <tag>",
	Short: "Remove a tag from an artifact",
	Example: `  # Remove the stable tag
  harborctl tag rm library nginx sha256:3f8a... stable`,
	Args: cobra.ExactArgs(4),
	// RunE will be set by the main package that imports this
}

// SetupArtifactCommands wires the artifact and tag command trees
func SetupArtifactCommands() {
	artifactCmd.AddCommand(artifactLsCmd)
	artifactCmd.AddCommand(artifactInfoCmd)
	artifactCmd.AddCommand(artifactRmCmd)

	tagCmd.AddCommand(tagLsCmd)
	tagCmd.AddCommand(tagCreateCmd)
	tagCmd.AddCommand(tagRmCmd)
}

// SetupArtifactFlags configures flags for artifact commands
func SetupArtifactFlags() {
	artifactLsCmd.Flags().IntVar(&config.Artifact.Page, "page", 1, "Page number")
	artifactLsCmd.Flags().IntVar(&config.Artifact.PageSize, "page-size", 25, "Results per page")
}

// GetArtifactCommands returns the artifact subcommands for handler wiring
func GetArtifactCommands() (lsCmd, infoCmd, rmCmd *cobra.Command) {
	return artifactLsCmd, artifactInfoCmd, artifactRmCmd
}

// GetTagCommands returns the tag subcommands for handler wiring
func GetTagCommands() (lsCmd, createCmd, rmCmd *cobra.Command) {
	return tagLsCmd, tagCreateCmd, tagRmCmd
}
