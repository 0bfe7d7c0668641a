// Package handlers provides command handler functions for harborctl.
//
// This package contains all the command execution logic for harborctl
// commands, organized by resource type for maintainability and clean
// separation of concerns. Each handler file corresponds to a specific
// resource type and contains all related command handlers and helper
// functions.
//
// The package is organized as follows:
// - project.go: Project lifecycle management (list, info, create, delete)
// - repository.go: Repository listing, inspection, and deletion
// - artifact.go: Artifact and tag management within repositories
// - registry.go: Replication registry endpoint management
// - system.go: Registry health, search, and config file discovery
// - config.go: Configuration inspection and mutation (list, get, set, save, sample)
//
// All handlers follow consistent patterns:
// - cobra.Command RunE function signature for CLI integration
// - Standardized error handling and logging using the logging package
// - Consistent output formatting through the display package
// - Clean separation between API communication and presentation logic
// - Safety prompts before destructive and expensive operations
//
// The handlers coordinate between the API client, display functions, and user
// input while maintaining clean architectural boundaries and a consistent
// user experience across all harborctl commands.
package handlers

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/harborctl/harborctl/cmd/harborctl/session"
)

// confirmStdin is swapped out by tests to script prompt answers.
var confirmStdin *bufio.Reader

func promptReader() *bufio.Reader {
	if confirmStdin != nil {
		return confirmStdin
	}
	return bufio.NewReader(os.Stdin)
}

// confirm prints a yes/no prompt and reads one line from stdin. Only an
// explicit "y" or "yes" proceeds; anything else, including EOF, declines.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := promptReader().ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// confirmDeletion gates destructive operations behind a prompt unless the
// general.confirm_deletion setting disabled it.
func confirmDeletion(what string) error {
	if !session.Current().General.ConfirmDeletion {
		return nil
	}
	if !confirm(fmt.Sprintf("Delete %s?", what)) {
		return fmt.Errorf("aborted")
	}
	return nil
}

// confirmEnumeration gates expensive registry-wide enumerations behind a
// prompt unless the general.confirm_enumeration setting disabled it.
func confirmEnumeration(what string) error {
	if !session.Current().General.ConfirmEnumeration {
		return nil
	}
	if !confirm(fmt.Sprintf("Enumerate %s? This may take a while on large registries", what)) {
		return fmt.Errorf("aborted")
	}
	return nil
}
