// Response type definitions mirroring the Harbor v2.0 API models used by the
// CLI. Only the fields the display layer renders are declared; the registry
// returns more, and unknown fields are ignored by JSON unmarshaling.

package client

import "time"

// Project represents a Harbor project with quota and metadata summary
// information. Projects are the top-level namespace for repositories and
// drive access control on the registry side.
type Project struct {
	ProjectID    int64             `json:"project_id"`
	Name         string            `json:"name"`
	OwnerName    string            `json:"owner_name,omitempty"`
	RepoCount    int64             `json:"repo_count"`
	CreationTime time.Time         `json:"creation_time"`
	UpdateTime   time.Time         `json:"update_time,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// Public reports whether the project metadata marks the project public.
func (p Project) Public() bool {
	return p.Metadata["public"] == "true"
}

// Repository represents an image repository inside a project, with artifact
// and pull statistics for operational visibility.
type Repository struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	ArtifactCount int64     `json:"artifact_count"`
	PullCount     int64     `json:"pull_count"`
	CreationTime  time.Time `json:"creation_time"`
	UpdateTime    time.Time `json:"update_time,omitempty"`
}

// Tag represents a named reference to an artifact.
type Tag struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	PushTime  time.Time `json:"push_time"`
	PullTime  time.Time `json:"pull_time,omitempty"`
	Immutable bool      `json:"immutable"`
}

// Artifact represents a content-addressed artifact (image, chart, SBOM)
// within a repository, including its tags and any nested extra attributes
// reported by the registry. ExtraAttrs nesting depth shown in tables is
// bounded by output.table.max_depth.
type Artifact struct {
	ID         int64          `json:"id"`
	Digest     string         `json:"digest"`
	Type       string         `json:"type"`
	MediaType  string         `json:"media_type,omitempty"`
	Size       int64          `json:"size"`
	PushTime   time.Time      `json:"push_time"`
	PullTime   time.Time      `json:"pull_time,omitempty"`
	Tags       []Tag          `json:"tags,omitempty"`
	Labels     []Label        `json:"labels,omitempty"`
	ExtraAttrs map[string]any `json:"extra_attrs,omitempty"`
}

// Label represents a label attached to an artifact.
type Label struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color,omitempty"`
	Description string `json:"description,omitempty"`
}

// Registry represents a remote registry endpoint configured for replication.
type Registry struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	URL          string    `json:"url"`
	Description  string    `json:"description,omitempty"`
	Insecure     bool      `json:"insecure"`
	Status       string    `json:"status,omitempty"`
	CreationTime time.Time `json:"creation_time,omitempty"`
}

// SearchResult aggregates project and repository matches for a search term.
type SearchResult struct {
	Projects     []Project          `json:"project"`
	Repositories []SearchRepository `json:"repository"`
}

// SearchRepository is the reduced repository shape returned by the search
// endpoint (it differs from the repository listing model).
type SearchRepository struct {
	ProjectName    string `json:"project_name"`
	ProjectPublic  bool   `json:"project_public"`
	RepositoryName string `json:"repository_name"`
	ArtifactCount  int64  `json:"artifact_count"`
	PullCount      int64  `json:"pull_count"`
}

// HealthStatus represents the registry health endpoint response including
// per-component health for troubleshooting degraded installations.
type HealthStatus struct {
	Status     string            `json:"status"`
	Components []ComponentHealth `json:"components"`
}

// ComponentHealth is one registry component's health entry.
type ComponentHealth struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// User represents the authenticated user returned by the current-user
// endpoint, used to verify credentials.
type User struct {
	UserID       int64  `json:"user_id"`
	Username     string `json:"username"`
	Realname     string `json:"realname,omitempty"`
	Email        string `json:"email,omitempty"`
	SysAdminFlag bool   `json:"sysadmin_flag"`
}

// ProjectReq is the creation payload for new projects.
type ProjectReq struct {
	ProjectName  string            `json:"project_name"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	StorageLimit *int64            `json:"storage_limit,omitempty"`
}

// RegistryReq is the creation/update payload for registry endpoints.
type RegistryReq struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
	Insecure    bool   `json:"insecure"`
}
