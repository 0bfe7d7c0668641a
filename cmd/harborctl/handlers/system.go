// Package handlers provides command handler functions for harborctl
// system-level operations.
//
// This file contains the registry health check, cross-project search, the
// authenticated-user lookup, and config file discovery. Config discovery
// runs before any configuration is loaded, so it must not touch the session.
package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harborctl/harborctl/cmd/harborctl/client"
	"github.com/harborctl/harborctl/cmd/harborctl/config"
	"github.com/harborctl/harborctl/cmd/harborctl/display"
	"github.com/harborctl/harborctl/cmd/harborctl/session"
	"github.com/harborctl/harborctl/internal/logging"
	"github.com/harborctl/harborctl/internal/settings"
)

// HandleHealth handles the health subcommand for displaying the registry
// health summary with per-component status.
func HandleHealth(cmd *cobra.Command, args []string) error {
	api, err := session.Client()
	if err != nil {
		return err
	}

	logging.Info("Checking registry health at %s", api.BaseURL())
	var health *client.HealthStatus
	err = session.Run(cmd.Context(), func(ctx context.Context) error {
		var err error
		health, err = api.Health(ctx)
		return err
	})
	if err != nil {
		return err
	}

	display.Health(health)
	return nil
}

// HandleSearch handles the search subcommand for querying projects and
// repositories across the whole registry. Registry-wide search fans out over
// every visible project, so it sits behind the enumeration prompt.
func HandleSearch(cmd *cobra.Command, args []string) error {
	api, err := session.Client()
	if err != nil {
		return err
	}
	query := args[0]

	if err := confirmEnumeration("all projects and repositories matching " + fmt.Sprintf("%q", query)); err != nil {
		return err
	}

	var result *client.SearchResult
	err = session.Run(cmd.Context(), func(ctx context.Context) error {
		var err error
		result, err = api.Search(ctx, query)
		return err
	})
	if err != nil {
		return err
	}

	display.Search(result)
	return nil
}

// HandleWhoami handles the whoami subcommand, which fetches the
// authenticated user and thereby verifies that the configured credentials
// are accepted by the registry.
func HandleWhoami(cmd *cobra.Command, args []string) error {
	api, err := session.Client()
	if err != nil {
		return err
	}

	var user *client.User
	err = session.Run(cmd.Context(), func(ctx context.Context) error {
		var err error
		user, err = api.CurrentUser(ctx)
		return err
	})
	if err != nil {
		return err
	}

	if display.UseJSON() {
		display.JSON(user)
		return nil
	}
	admin := ""
	if user.SysAdminFlag {
		admin = " (administrator)"
	}
	fmt.Printf("%s%s\n", user.Username, admin)
	return nil
}

// HandleFind handles the find subcommand, which reports where harborctl
// looks for its config file and whether one exists there. Exempt from
// configuration loading so it works on a fresh machine.
func HandleFind(cmd *cobra.Command, args []string) error {
	path := settings.ResolvePath(config.Global.ConfigPath)

	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		fmt.Printf("%s (exists, but is a directory)\n", path)
	case err == nil:
		fmt.Printf("%s (exists)\n", path)
	default:
		fmt.Printf("%s (not found; run 'harborctl init' to create it)\n", path)
	}
	return nil
}
