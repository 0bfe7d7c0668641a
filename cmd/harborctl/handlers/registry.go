// Package handlers provides command handler functions for harborctl registry
// endpoint operations.
//
// This file manages the remote registry endpoints used for replication.
// Endpoints are addressed by numeric ID, which is how the API exposes them;
// the listing shows IDs alongside names for lookup.
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/harborctl/harborctl/cmd/harborctl/client"
	"github.com/harborctl/harborctl/cmd/harborctl/config"
	"github.com/harborctl/harborctl/cmd/harborctl/display"
	"github.com/harborctl/harborctl/cmd/harborctl/session"
	"github.com/harborctl/harborctl/internal/logging"
)

// parseRegistryID converts the positional ID argument, rejecting
// non-numeric input before any request is made.
func parseRegistryID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid registry ID %q: must be numeric", arg)
	}
	return id, nil
}

// HandleRegistryList handles the registry ls subcommand.
func HandleRegistryList(cmd *cobra.Command, args []string) error {
	api, err := session.Client()
	if err != nil {
		return err
	}

	var registries []client.Registry
	err = session.Run(cmd.Context(), func(ctx context.Context) error {
		var err error
		registries, err = api.ListRegistries(ctx)
		return err
	})
	if err != nil {
		return err
	}

	display.Registries(registries)
	return nil
}

// HandleRegistryInfo handles the registry info subcommand.
func HandleRegistryInfo(cmd *cobra.Command, args []string) error {
	api, err := session.Client()
	if err != nil {
		return err
	}
	id, err := parseRegistryID(args[0])
	if err != nil {
		return err
	}

	var registry *client.Registry
	err = session.Run(cmd.Context(), func(ctx context.Context) error {
		var err error
		registry, err = api.GetRegistry(ctx, id)
		return err
	}, session.Passthrough(http.StatusNotFound))
	if client.IsStatus(err, http.StatusNotFound) {
		logging.Warn("Registry %d does not exist", id)
		return nil
	}
	if err != nil {
		return err
	}

	display.Registries([]client.Registry{*registry})
	return nil
}

// HandleRegistryCreate handles the registry create subcommand. Name and URL
// come from positional arguments; type, description, and TLS behavior from
// flags.
func HandleRegistryCreate(cmd *cobra.Command, args []string) error {
	api, err := session.Client()
	if err != nil {
		return err
	}
	name, endpoint := args[0], args[1]

	req := client.RegistryReq{
		Name:        name,
		Type:        config.Registry.Type,
		URL:         endpoint,
		Description: config.Registry.Description,
		Insecure:    config.Registry.Insecure,
	}

	err = session.Run(cmd.Context(), func(ctx context.Context) error {
		return api.CreateRegistry(ctx, req)
	})
	if err != nil {
		return err
	}

	display.Success("Created registry endpoint %q", name)
	return nil
}

// HandleRegistryUpdate handles the registry update subcommand. The registry
// API replaces the endpoint wholesale, so name and URL are required
// positionals alongside the flag-carried fields.
func HandleRegistryUpdate(cmd *cobra.Command, args []string) error {
	api, err := session.Client()
	if err != nil {
		return err
	}
	id, err := parseRegistryID(args[0])
	if err != nil {
		return err
	}
	name, endpoint := args[1], args[2]

	req := client.RegistryReq{
		Name:        name,
		Type:        config.Registry.Type,
		URL:         endpoint,
		Description: config.Registry.Description,
		Insecure:    config.Registry.Insecure,
	}

	err = session.Run(cmd.Context(), func(ctx context.Context) error {
		return api.UpdateRegistry(ctx, id, req)
	})
	if err != nil {
		return err
	}

	display.Success("Updated registry endpoint %d", id)
	return nil
}

// HandleRegistryDelete handles the registry rm subcommand.
func HandleRegistryDelete(cmd *cobra.Command, args []string) error {
	api, err := session.Client()
	if err != nil {
		return err
	}
	id, err := parseRegistryID(args[0])
	if err != nil {
		return err
	}

	if err := confirmDeletion(fmt.Sprintf("registry endpoint %d", id)); err != nil {
		return err
	}

	err = session.Run(cmd.Context(), func(ctx context.Context) error {
		return api.DeleteRegistry(ctx, id)
	})
	if err != nil {
		return err
	}

	display.Success("Deleted registry endpoint %d", id)
	return nil
}
