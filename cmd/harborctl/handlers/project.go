// Package handlers provides command handler functions for harborctl project
// operations.
//
// This file contains all project-related command handlers including project
// listing, inspection, creation, and deletion. Projects are the top-level
// namespace of the registry, so these handlers are the entry point for most
// operational workflows.
package handlers

import (
	"context"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/harborctl/harborctl/cmd/harborctl/client"
	"github.com/harborctl/harborctl/cmd/harborctl/config"
	"github.com/harborctl/harborctl/cmd/harborctl/display"
	"github.com/harborctl/harborctl/cmd/harborctl/session"
	"github.com/harborctl/harborctl/internal/logging"
)

// HandleProjectList handles the project ls subcommand for displaying all
// projects visible to the authenticated account, with pagination flags for
// large registries.
func HandleProjectList(cmd *cobra.Command, args []string) error {
	api, err := session.Client()
	if err != nil {
		return err
	}

	logging.Info("Fetching projects from %s", api.BaseURL())
	var projects []client.Project
	err = session.Run(cmd.Context(), func(ctx context.Context) error {
		var err error
		projects, err = api.ListProjects(ctx, config.Project.Page, config.Project.PageSize)
		return err
	})
	if err != nil {
		return err
	}

	display.Projects(projects)
	logging.Success("Retrieved %d projects", len(projects))
	return nil
}

// HandleProjectInfo handles the project info subcommand for displaying one
// project in detail. A missing project is reported as a plain message rather
// than an error dump, since probing for existence is a normal workflow.
func HandleProjectInfo(cmd *cobra.Command, args []string) error {
	api, err := session.Client()
	if err != nil {
		return err
	}
	name := args[0]

	var project *client.Project
	err = session.Run(cmd.Context(), func(ctx context.Context) error {
		var err error
		project, err = api.GetProject(ctx, name)
		return err
	}, session.Passthrough(http.StatusNotFound))
	if client.IsStatus(err, http.StatusNotFound) {
		logging.Warn("Project %q does not exist", name)
		return nil
	}
	if err != nil {
		return err
	}

	display.Project(project)
	return nil
}

// HandleProjectCreate handles the project create subcommand. Visibility and
// storage quota come from command flags; the quota flag defaults to -1 for
// unlimited, matching the registry's convention.
func HandleProjectCreate(cmd *cobra.Command, args []string) error {
	api, err := session.Client()
	if err != nil {
		return err
	}
	name := args[0]

	req := client.ProjectReq{
		ProjectName: name,
		Metadata:    map[string]string{"public": "false"},
	}
	if config.Project.Public {
		req.Metadata["public"] = "true"
	}
	if cmd.Flags().Changed("storage-limit") {
		limit := config.Project.StorageLimit
		req.StorageLimit = &limit
	}

	err = session.Run(cmd.Context(), func(ctx context.Context) error {
		return api.CreateProject(ctx, req)
	})
	if err != nil {
		return err
	}

	display.Success("Created project %q", name)
	return nil
}

// HandleProjectDelete handles the project rm subcommand. Deletion is gated
// behind the confirm_deletion prompt; the registry itself refuses to delete
// non-empty projects.
func HandleProjectDelete(cmd *cobra.Command, args []string) error {
	api, err := session.Client()
	if err != nil {
		return err
	}
	name := args[0]

	if err := confirmDeletion("project " + name); err != nil {
		return err
	}

	err = session.Run(cmd.Context(), func(ctx context.Context) error {
		return api.DeleteProject(ctx, name)
	})
	if err != nil {
		return err
	}

	display.Success("Deleted project %q", name)
	return nil
}
