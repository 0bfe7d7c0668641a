// Per-resource display functions for registry API responses.

package display

import (
	"fmt"
	"strings"

	"github.com/harborctl/harborctl/cmd/harborctl/client"
	"github.com/harborctl/harborctl/cmd/harborctl/session"
	"github.com/harborctl/harborctl/cmd/harborctl/utils"
	"github.com/harborctl/harborctl/internal/logging"
)

// Projects displays a project listing in tabular or JSON format. Handles
// empty result sets gracefully.
func Projects(projects []client.Project) {
	if len(projects) == 0 {
		if UseJSON() {
			fmt.Println("[]")
		} else {
			fmt.Println("No projects found")
		}
		return
	}

	if UseJSON() {
		JSON(projects)
		return
	}

	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			p.Name,
			utils.FormatBool(p.Public()),
			p.OwnerName,
			utils.FormatCount(p.RepoCount),
			utils.FormatTime(p.CreationTime),
		})
	}
	Table([]string{"NAME", "PUBLIC", "OWNER", "REPOS", "CREATED"}, rows)
}

// Project displays a single project with full detail.
func Project(p *client.Project) {
	if UseJSON() {
		JSON(p)
		return
	}
	rows := [][]string{
		{"ID", fmt.Sprintf("%d", p.ProjectID)},
		{"Name", p.Name},
		{"Public", utils.FormatBool(p.Public())},
		{"Owner", p.OwnerName},
		{"Repositories", utils.FormatCount(p.RepoCount)},
		{"Created", utils.FormatTime(p.CreationTime)},
		{"Updated", utils.FormatTime(p.UpdateTime)},
	}
	Table([]string{"FIELD", "VALUE"}, rows)
}

// Repositories displays a repository listing within a project. Description
// columns are included only when output.table.description is enabled.
func Repositories(repos []client.Repository) {
	if len(repos) == 0 {
		if UseJSON() {
			fmt.Println("[]")
		} else {
			fmt.Println("No repositories found")
		}
		return
	}

	if UseJSON() {
		JSON(repos)
		return
	}

	withDescription := session.Current().Output.Table.Description
	header := []string{"NAME", "ARTIFACTS", "PULLS", "UPDATED"}
	if withDescription {
		header = append(header, "DESCRIPTION")
	}

	rows := make([][]string, 0, len(repos))
	for _, r := range repos {
		row := []string{
			r.Name,
			utils.FormatCount(r.ArtifactCount),
			utils.FormatCount(r.PullCount),
			utils.FormatTime(r.UpdateTime),
		}
		if withDescription {
			row = append(row, r.Description)
		}
		rows = append(rows, row)
	}
	Table(header, rows)
}

// Artifacts displays an artifact listing with digests formatted per the
// active log level and extra attributes bounded by output.table.max_depth.
func Artifacts(artifacts []client.Artifact) {
	if len(artifacts) == 0 {
		if UseJSON() {
			fmt.Println("[]")
		} else {
			fmt.Println("No artifacts found")
		}
		return
	}

	if UseJSON() {
		JSON(artifacts)
		return
	}

	table := session.Current().Output.Table
	header := []string{"DIGEST", "TAGS", "TYPE", "SIZE", "PUSHED"}
	if table.MaxDepth > 0 {
		header = append(header, "ATTRIBUTES")
	}

	rows := make([][]string, 0, len(artifacts))
	for _, a := range artifacts {
		tags := make([]string, 0, len(a.Tags))
		for _, tag := range a.Tags {
			tags = append(tags, tag.Name)
		}
		row := []string{
			logging.FormatDigest(a.Digest),
			strings.Join(tags, ","),
			a.Type,
			utils.FormatBytes(a.Size),
			utils.FormatTime(a.PushTime),
		}
		if table.MaxDepth > 0 {
			row = append(row, ExtraAttrsSummary(a.ExtraAttrs, table.MaxDepth, table.Compact))
		}
		rows = append(rows, row)
	}
	Table(header, rows)
}

// Tags displays the tags attached to one artifact.
func Tags(tags []client.Tag) {
	if len(tags) == 0 {
		if UseJSON() {
			fmt.Println("[]")
		} else {
			fmt.Println("No tags found")
		}
		return
	}

	if UseJSON() {
		JSON(tags)
		return
	}

	rows := make([][]string, 0, len(tags))
	for _, t := range tags {
		rows = append(rows, []string{
			t.Name,
			utils.FormatBool(t.Immutable),
			utils.FormatTime(t.PushTime),
			utils.FormatTime(t.PullTime),
		})
	}
	Table([]string{"NAME", "IMMUTABLE", "PUSHED", "LAST PULL"}, rows)
}

// Registries displays the configured replication registry endpoints.
func Registries(registries []client.Registry) {
	if len(registries) == 0 {
		if UseJSON() {
			fmt.Println("[]")
		} else {
			fmt.Println("No registries found")
		}
		return
	}

	if UseJSON() {
		JSON(registries)
		return
	}

	rows := make([][]string, 0, len(registries))
	for _, r := range registries {
		rows = append(rows, []string{
			fmt.Sprintf("%d", r.ID),
			r.Name,
			r.Type,
			r.URL,
			r.Status,
			utils.FormatBool(r.Insecure),
		})
	}
	Table([]string{"ID", "NAME", "TYPE", "URL", "STATUS", "INSECURE"}, rows)
}

// Search displays combined project and repository matches for a query.
func Search(result *client.SearchResult) {
	if UseJSON() {
		JSON(result)
		return
	}

	if len(result.Projects) == 0 && len(result.Repositories) == 0 {
		fmt.Println("No matches found")
		return
	}

	rows := make([][]string, 0, len(result.Projects)+len(result.Repositories))
	for _, p := range result.Projects {
		rows = append(rows, []string{"project", p.Name, utils.FormatBool(p.Public()), ""})
	}
	for _, r := range result.Repositories {
		rows = append(rows, []string{
			"repository",
			r.RepositoryName,
			utils.FormatBool(r.ProjectPublic),
			utils.FormatCount(r.PullCount),
		})
	}
	Table([]string{"KIND", "NAME", "PUBLIC", "PULLS"}, rows)
}

// Health displays the registry health summary with per-component status.
func Health(health *client.HealthStatus) {
	if UseJSON() {
		JSON(health)
		return
	}

	fmt.Printf("Registry status: %s\n", health.Status)
	if len(health.Components) == 0 {
		return
	}

	rows := make([][]string, 0, len(health.Components))
	for _, c := range health.Components {
		detail := c.Error
		if detail == "" {
			detail = "-"
		}
		rows = append(rows, []string{c.Name, c.Status, detail})
	}
	Table([]string{"COMPONENT", "STATUS", "DETAIL"}, rows)
}

// ConfigListing displays the flattened settings with secrets redacted.
// Keys render in sorted order for stable diff-friendly output.
func ConfigListing(flat map[string]string, keys []string) {
	if UseJSON() {
		JSON(flat)
		return
	}
	rows := make([][]string, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, []string{key, flat[key]})
	}
	Table([]string{"KEY", "VALUE"}, rows)
}
