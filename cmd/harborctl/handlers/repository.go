// Package handlers provides command handler functions for harborctl
// repository operations.
//
// This file contains repository listing, inspection, and deletion handlers.
// Repository names may contain slashes ("library/nested/app"); the client
// layer handles path encoding so handlers pass names through untouched.
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

// HandleRepoList handles the repo ls subcommand for displaying repositories
// within a project.
func HandleRepoList(cmd *cobra.Command, args []string) error {
	api, err := session.Client()
	if err != nil {
		return err
	}
	project := args[0]

	logging.Info("Fetching repositories in project %q", project)
	var repos []client.Repository
	err = session.Run(cmd.Context(), func(ctx context.Context) error {
		var err error
		repos, err = api.ListRepositories(ctx, project, config.Repo.Page, config.Repo.PageSize)
		return err
	})
	if err != nil {
		return err
	}

	display.Repositories(repos)
	logging.Success("Retrieved %d repositories", len(repos))
	return nil
}

// HandleRepoInfo handles the repo info subcommand for displaying one
// repository in detail.
func HandleRepoInfo(cmd *cobra.Command, args []string) error {
	api, err := session.Client()
	if err != nil {
		return err
	}
	project, repo := args[0], args[1]

	var repository *client.Repository
	err = session.Run(cmd.Context(), func(ctx context.Context) error {
		var err error
		repository, err = api.GetRepository(ctx, project, repo)
		return err
	}, session.Passthrough(http.StatusNotFound))
	if client.IsStatus(err, http.StatusNotFound) {
		logging.Warn("Repository %q does not exist in project %q", repo, project)
		return nil
	}
	if err != nil {
		return err
	}

	display.Repositories([]client.Repository{*repository})
	return nil
}

// HandleRepoDelete handles the repo rm subcommand. Removing a repository
// deletes every artifact it contains, so the confirmation prompt names the
// blast radius explicitly.
func HandleRepoDelete(cmd *cobra.Command, args []string) error {
	api, err := session.Client()
	if err != nil {
		return err
	}
	project, repo := args[0], args[1]

	if err := confirmDeletion("repository " + project + "/" + repo + " and all its artifacts"); err != nil {
		return err
	}

	err = session.Run(cmd.Context(), func(ctx context.Context) error {
		return api.DeleteRepository(ctx, project, repo)
	})
	if err != nil {
		return err
	}

	display.Success("Deleted repository %q from project %q", repo, project)
	return nil
}
