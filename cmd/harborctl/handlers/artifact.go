// Package handlers provides command handler functions for harborctl artifact
// and tag operations.
//
// This file contains artifact listing, inspection, and deletion alongside tag
// management. Artifacts are addressed by reference, which is either a tag
// name or a digest; the registry resolves both forms server-side so handlers
// pass references through without interpretation.
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

// HandleArtifactList handles the artifact ls subcommand for displaying
// artifacts within a repository, including their tags.
func HandleArtifactList(cmd *cobra.Command, args []string) error {
	api, err := session.Client()
	if err != nil {
		return err
	}
	project, repo := args[0], args[1]

	logging.Info("Fetching artifacts in %s/%s", project, repo)
	var artifacts []client.Artifact
	err = session.Run(cmd.Context(), func(ctx context.Context) error {
		var err error
		artifacts, err = api.ListArtifacts(ctx, project, repo, config.Artifact.Page, config.Artifact.PageSize)
		return err
	})
	if err != nil {
		return err
	}

	display.Artifacts(artifacts)
	logging.Success("Retrieved %d artifacts", len(artifacts))
	return nil
}

// HandleArtifactInfo handles the artifact info subcommand for displaying one
// artifact by tag or digest reference.
func HandleArtifactInfo(cmd *cobra.Command, args []string) error {
	api, err := session.Client()
	if err != nil {
		return err
	}
	project, repo, reference := args[0], args[1], args[2]

	var artifact *client.Artifact
	err = session.Run(cmd.Context(), func(ctx context.Context) error {
		var err error
		artifact, err = api.GetArtifact(ctx, project, repo, reference)
		return err
	}, session.Passthrough(http.StatusNotFound))
	if client.IsStatus(err, http.StatusNotFound) {
		logging.Warn("Artifact %q does not exist in %s/%s", reference, project, repo)
		return nil
	}
	if err != nil {
		return err
	}

	display.Artifacts([]client.Artifact{*artifact})
	return nil
}

// HandleArtifactDelete handles the artifact rm subcommand. Deleting an
// artifact removes all tags pointing at it.
func HandleArtifactDelete(cmd *cobra.Command, args []string) error {
	api, err := session.Client()
	if err != nil {
		return err
	}
	project, repo, reference := args[0], args[1], args[2]

	if err := confirmDeletion("artifact " + reference + " in " + project + "/" + repo); err != nil {
		return err
	}

	err = session.Run(cmd.Context(), func(ctx context.Context) error {
		return api.DeleteArtifact(ctx, project, repo, reference)
	})
	if err != nil {
		return err
	}

	display.Success("Deleted artifact %q from %s/%s", reference, project, repo)
	return nil
}

// HandleTagList handles the tag ls subcommand for displaying the tags
// attached to one artifact.
func HandleTagList(cmd *cobra.Command, args []string) error {
	api, err := session.Client()
	if err != nil {
		return err
	}
	project, repo, reference := args[0], args[1], args[2]

	var tags []client.Tag
	err = session.Run(cmd.Context(), func(ctx context.Context) error {
		var err error
		tags, err = api.ListTags(ctx, project, repo, reference)
		return err
	})
	if err != nil {
		return err
	}

	display.Tags(tags)
	return nil
}

// HandleTagCreate handles the tag create subcommand for attaching a new tag
// to an existing artifact reference. A conflict means the tag already exists
// or is immutable on the registry side.
func HandleTagCreate(cmd *cobra.Command, args []string) error {
	api, err := session.Client()
	if err != nil {
		return err
	}
	project, repo, reference, tag := args[0], args[1], args[2], args[3]

	err = session.Run(cmd.Context(), func(ctx context.Context) error {
		return api.CreateTag(ctx, project, repo, reference, tag)
	})
	if err != nil {
		return err
	}

	display.Success("Tagged %s/%s@%s as %q", project, repo, reference, tag)
	return nil
}

// HandleTagDelete handles the tag rm subcommand. Only the tag is removed;
// the artifact and its other tags remain.
func HandleTagDelete(cmd *cobra.Command, args []string) error {
	api, err := session.Client()
	if err != nil {
		return err
	}
	project, repo, reference, tag := args[0], args[1], args[2], args[3]

	if err := confirmDeletion("tag " + tag + " on " + project + "/" + repo + "@" + reference); err != nil {
		return err
	}

	err = session.Run(cmd.Context(), func(ctx context.Context) error {
		return api.DeleteTag(ctx, project, repo, reference, tag)
	})
	if err != nil {
		return err
	}

	display.Success("Deleted tag %q from %s/%s@%s", tag, project, repo, reference)
	return nil
}
