// Package client provides the HTTP client layer for communicating with the
// Harbor registry management API.
//
// This package implements all remote communication for the harborctl CLI
// including request/response serialization, categorized error handling, retry
// logic, and structured logging integration for reliable registry operations.
//
// API CLIENT ARCHITECTURE:
// The HarborAPIClient wraps the Resty HTTP client with registry-specific
// functionality:
//   - Connection Management: Base URL, TLS verification, and retry policies
//     resolved from the connection section of the settings
//   - Authentication: Basic auth from username/secret, a prebuilt basicauth
//     token, or a credentials file, resolved once at construction time
//   - Mutable Behavior Flags: raw-passthrough and data-validation modes that
//     the session layer re-syncs from current settings on every access
//   - Error Handling: every non-2xx response becomes a categorized APIError
//
// Credentials are fixed at client-construction time while the two behavior
// flags are legitimately mutable mid-session. This asymmetry is intentional:
// it supports changing display behavior inside an interactive session without
// taking on credential-rotation complexity (see DESIGN.md).
package client

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/harborctl/harborctl/cmd/harborctl/utils"
	"github.com/harborctl/harborctl/internal/logging"
	"github.com/harborctl/harborctl/internal/settings"
	"github.com/harborctl/harborctl/internal/validate"
	"github.com/harborctl/harborctl/internal/version"
)

// HarborAPIClient wraps the Resty HTTP client with Harbor-specific
// functionality for reliable registry API communication.
type HarborAPIClient struct {
	client  *resty.Client
	baseURL string

	// Behavior flags re-synced from current settings by the session layer.
	// Credentials are deliberately not kept here; they are baked into the
	// resty client at construction time.
	rawMode      bool
	validateData bool
}

// New creates a registry API client from the connection section of the given
// settings. Resolves exactly one authentication method, configures TLS
// verification and the retry policy, and routes Resty's internal logging
// through the structured logging system.
//
// The settings must already have passed CheckAuth; New returns an error for
// unauthenticated or ambiguous configurations so no request is ever attempted
// without a usable auth method.
func New(s *settings.Settings) (*HarborAPIClient, error) {
	if err := s.CheckAuth(); err != nil {
		return nil, err
	}

	endpoint, err := validate.ValidateEndpointURL(s.Harbor.URL)
	if err != nil {
		return nil, err
	}
	baseURL := strings.TrimRight(endpoint.String(), "/")
	if !strings.HasSuffix(baseURL, "/api/"+version.APIVersion) {
		baseURL += "/api/" + version.APIVersion
	}

	c := resty.New()

	// Route Resty's internal logging through our structured logging system
	c.SetLogger(utils.RestyLogger{})

	c.
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", fmt.Sprintf("harborctl/%s", version.HarborctlVersion))

	if err := applyAuth(c, s); err != nil {
		return nil, err
	}

	if !s.Harbor.VerifyTLS {
		c.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}

	if s.Harbor.Retry.Enabled {
		c.
			SetRetryCount(s.Harbor.Retry.MaxAttempts).
			SetRetryWaitTime(1 * time.Second).
			SetRetryMaxWaitTime(5 * time.Second).
			AddRetryCondition(func(r *resty.Response, err error) bool {
				// Only retry on connection errors, not HTTP errors
				return err != nil
			})
	}
	if s.Harbor.Retry.MaxTimeSeconds > 0 {
		c.SetTimeout(time.Duration(s.Harbor.Retry.MaxTimeSeconds) * time.Second)
	}

	// Request/response tracing for DEBUG level troubleshooting
	c.OnBeforeRequest(func(rc *resty.Client, req *resty.Request) error {
		logging.Debug("Making API request: %s %s", req.Method, req.URL)
		return nil
	})
	c.OnAfterResponse(func(rc *resty.Client, resp *resty.Response) error {
		logging.Debug("API response: %d %s (took %v)",
			resp.StatusCode(), resp.Status(), resp.Time())
		return nil
	})

	return &HarborAPIClient{
		client:       c,
		baseURL:      baseURL,
		rawMode:      s.Harbor.RawMode,
		validateData: s.Harbor.ValidateData,
	}, nil
}

// applyAuth configures exactly one authentication method on the resty client.
func applyAuth(c *resty.Client, s *settings.Settings) error {
	switch {
	case s.Harbor.Username != "" && s.Harbor.Secret != "":
		c.SetBasicAuth(s.Harbor.Username, s.Harbor.Secret)
	case s.Harbor.BasicAuth != "":
		c.SetHeader("Authorization", "Basic "+s.Harbor.BasicAuth)
	case s.Harbor.CredentialsFile != "":
		username, secret, err := readCredentialsFile(s.Harbor.CredentialsFile)
		if err != nil {
			return err
		}
		c.SetBasicAuth(username, secret)
	}
	return nil
}

// readCredentialsFile parses a "username:secret" credentials file, the format
// written for robot accounts. Surrounding whitespace and a trailing newline
// are tolerated.
func readCredentialsFile(path string) (string, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("cannot read credentials file %q: %w", path, err)
	}
	line := strings.TrimSpace(string(data))
	username, secret, ok := strings.Cut(line, ":")
	if !ok || username == "" || secret == "" {
		return "", "", fmt.Errorf("credentials file %q must contain a single username:secret line", path)
	}
	return username, secret, nil
}

// SetRawMode updates the raw-passthrough flag. Called by the session layer
// on every client access so mid-session settings changes take effect.
func (api *HarborAPIClient) SetRawMode(raw bool) {
	api.rawMode = raw
}

// SetValidateData updates the response-validation flag. Called by the
// session layer on every client access.
func (api *HarborAPIClient) SetValidateData(v bool) {
	api.validateData = v
}

// RawMode reports the current raw-passthrough flag, consulted by the display
// layer when deciding whether to render typed tables or raw API payloads.
func (api *HarborAPIClient) RawMode() bool {
	return api.rawMode
}

// BaseURL returns the resolved API base URL for log messages.
func (api *HarborAPIClient) BaseURL() string {
	return api.baseURL
}

// check converts transport failures and non-2xx responses into errors.
// Transport errors are wrapped with the endpoint for connection diagnostics;
// HTTP errors become categorized APIErrors. When data validation is enabled,
// successful responses claiming a body must be JSON.
func (api *HarborAPIClient) check(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("failed to connect to registry at %s: %w", api.baseURL, err)
	}
	if resp.StatusCode() >= 400 {
		return &APIError{
			Method:     resp.Request.Method,
			URL:        resp.Request.URL,
			StatusCode: resp.StatusCode(),
			Body:       resp.String(),
		}
	}
	if api.validateData && len(resp.Body()) > 0 {
		contentType := resp.Header().Get("Content-Type")
		if contentType != "" && !strings.Contains(contentType, "application/json") && !strings.Contains(contentType, "text/plain") {
			return fmt.Errorf("unexpected response content type %q from %s", contentType, resp.Request.URL)
		}
	}
	return nil
}

// encodeRepo escapes a repository name for use as a single URL path segment.
// Repository names may contain slashes ("library/nested/app"), which the
// registry expects percent-encoded inside the path.
func encodeRepo(repo string) string {
	return url.PathEscape(repo)
}

// Health fetches the registry health summary including per-component status.
func (api *HarborAPIClient) Health(ctx context.Context) (*HealthStatus, error) {
	var health HealthStatus
	resp, err := api.client.R().
		SetContext(ctx).
		SetResult(&health).
		Get("/health")
	if err := api.check(resp, err); err != nil {
		return nil, err
	}
	return &health, nil
}

// CurrentUser fetches the authenticated user, verifying that the configured
// credentials are accepted by the registry.
func (api *HarborAPIClient) CurrentUser(ctx context.Context) (*User, error) {
	var user User
	resp, err := api.client.R().
		SetContext(ctx).
		SetResult(&user).
		Get("/users/current")
	if err := api.check(resp, err); err != nil {
		return nil, err
	}
	return &user, nil
}

// Search queries projects and repositories matching the given term.
func (api *HarborAPIClient) Search(ctx context.Context, query string) (*SearchResult, error) {
	var result SearchResult
	resp, err := api.client.R().
		SetContext(ctx).
		SetQueryParam("q", query).
		SetResult(&result).
		Get("/search")
	if err := api.check(resp, err); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListProjects fetches one page of projects. Page numbering is 1-based;
// pageSize bounds the result count per call.
func (api *HarborAPIClient) ListProjects(ctx context.Context, page, pageSize int) ([]Project, error) {
	var projects []Project
	resp, err := api.client.R().
		SetContext(ctx).
		SetQueryParam("page", fmt.Sprintf("%d", page)).
		SetQueryParam("page_size", fmt.Sprintf("%d", pageSize)).
		SetResult(&projects).
		Get("/projects")
	if err := api.check(resp, err); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProject fetches a single project by name.
func (api *HarborAPIClient) GetProject(ctx context.Context, name string) (*Project, error) {
	var project Project
	resp, err := api.client.R().
		SetContext(ctx).
		SetResult(&project).
		Get("/projects/" + url.PathEscape(name))
	if err := api.check(resp, err); err != nil {
		return nil, err
	}
	return &project, nil
}

// CreateProject creates a new project.
func (api *HarborAPIClient) CreateProject(ctx context.Context, req ProjectReq) error {
	resp, err := api.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/projects")
	return api.check(resp, err)
}

// DeleteProject removes a project by name. The project must be empty.
func (api *HarborAPIClient) DeleteProject(ctx context.Context, name string) error {
	resp, err := api.client.R().
		SetContext(ctx).
		Delete("/projects/" + url.PathEscape(name))
	return api.check(resp, err)
}

// ListRepositories fetches one page of repositories within a project.
func (api *HarborAPIClient) ListRepositories(ctx context.Context, project string, page, pageSize int) ([]Repository, error) {
	var repos []Repository
	resp, err := api.client.R().
		SetContext(ctx).
		SetQueryParam("page", fmt.Sprintf("%d", page)).
		SetQueryParam("page_size", fmt.Sprintf("%d", pageSize)).
		SetResult(&repos).
		Get(fmt.Sprintf("/projects/%s/repositories", url.PathEscape(project)))
	if err := api.check(resp, err); err != nil {
		return nil, err
	}
	return repos, nil
}

// GetRepository fetches a single repository within a project.
func (api *HarborAPIClient) GetRepository(ctx context.Context, project, repo string) (*Repository, error) {
	var repository Repository
	resp, err := api.client.R().
		SetContext(ctx).
		SetResult(&repository).
		Get(fmt.Sprintf("/projects/%s/repositories/%s", url.PathEscape(project), encodeRepo(repo)))
	if err := api.check(resp, err); err != nil {
		return nil, err
	}
	return &repository, nil
}

// DeleteRepository removes a repository and all artifacts it contains.
func (api *HarborAPIClient) DeleteRepository(ctx context.Context, project, repo string) error {
	resp, err := api.client.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/projects/%s/repositories/%s", url.PathEscape(project), encodeRepo(repo)))
	return api.check(resp, err)
}

// ListArtifacts fetches one page of artifacts in a repository, with tags
// included for display.
func (api *HarborAPIClient) ListArtifacts(ctx context.Context, project, repo string, page, pageSize int) ([]Artifact, error) {
	var artifacts []Artifact
	resp, err := api.client.R().
		SetContext(ctx).
		SetQueryParam("page", fmt.Sprintf("%d", page)).
		SetQueryParam("page_size", fmt.Sprintf("%d", pageSize)).
		SetQueryParam("with_tag", "true").
		SetResult(&artifacts).
		Get(fmt.Sprintf("/projects/%s/repositories/%s/artifacts", url.PathEscape(project), encodeRepo(repo)))
	if err := api.check(resp, err); err != nil {
		return nil, err
	}
	return artifacts, nil
}

// GetArtifact fetches a single artifact by tag or digest reference.
func (api *HarborAPIClient) GetArtifact(ctx context.Context, project, repo, reference string) (*Artifact, error) {
	var artifact Artifact
	resp, err := api.client.R().
		SetContext(ctx).
		SetQueryParam("with_tag", "true").
		SetResult(&artifact).
		Get(fmt.Sprintf("/projects/%s/repositories/%s/artifacts/%s",
			url.PathEscape(project), encodeRepo(repo), url.PathEscape(reference)))
	if err := api.check(resp, err); err != nil {
		return nil, err
	}
	return &artifact, nil
}

// DeleteArtifact removes an artifact by tag or digest reference.
func (api *HarborAPIClient) DeleteArtifact(ctx context.Context, project, repo, reference string) error {
	resp, err := api.client.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/projects/%s/repositories/%s/artifacts/%s",
			url.PathEscape(project), encodeRepo(repo), url.PathEscape(reference)))
	return api.check(resp, err)
}

// ListTags fetches all tags attached to an artifact reference.
func (api *HarborAPIClient) ListTags(ctx context.Context, project, repo, reference string) ([]Tag, error) {
	var tags []Tag
	resp, err := api.client.R().
		SetContext(ctx).
		SetResult(&tags).
		Get(fmt.Sprintf("/projects/%s/repositories/%s/artifacts/%s/tags",
			url.PathEscape(project), encodeRepo(repo), url.PathEscape(reference)))
	if err := api.check(resp, err); err != nil {
		return nil, err
	}
	return tags, nil
}

// CreateTag attaches a new tag to an artifact reference.
func (api *HarborAPIClient) CreateTag(ctx context.Context, project, repo, reference, tag string) error {
	resp, err := api.client.R().
		SetContext(ctx).
		SetBody(map[string]string{"name": tag}).
		Post(fmt.Sprintf("/projects/%s/repositories/%s/artifacts/%s/tags",
			url.PathEscape(project), encodeRepo(repo), url.PathEscape(reference)))
	return api.check(resp, err)
}

// DeleteTag removes a tag from an artifact reference.
func (api *HarborAPIClient) DeleteTag(ctx context.Context, project, repo, reference, tag string) error {
	resp, err := api.client.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/projects/%s/repositories/%s/artifacts/%s/tags/%s",
			url.PathEscape(project), encodeRepo(repo), url.PathEscape(reference), url.PathEscape(tag)))
	return api.check(resp, err)
}

// ListRegistries fetches all configured replication registry endpoints.
func (api *HarborAPIClient) ListRegistries(ctx context.Context) ([]Registry, error) {
	var registries []Registry
	resp, err := api.client.R().
		SetContext(ctx).
		SetResult(&registries).
		Get("/registries")
	if err := api.check(resp, err); err != nil {
		return nil, err
	}
	return registries, nil
}

// GetRegistry fetches one registry endpoint by ID.
func (api *HarborAPIClient) GetRegistry(ctx context.Context, id int64) (*Registry, error) {
	var registry Registry
	resp, err := api.client.R().
		SetContext(ctx).
		SetResult(&registry).
		Get(fmt.Sprintf("/registries/%d", id))
	if err := api.check(resp, err); err != nil {
		return nil, err
	}
	return &registry, nil
}

// CreateRegistry registers a new replication registry endpoint.
func (api *HarborAPIClient) CreateRegistry(ctx context.Context, req RegistryReq) error {
	resp, err := api.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/registries")
	return api.check(resp, err)
}

// UpdateRegistry updates an existing registry endpoint.
func (api *HarborAPIClient) UpdateRegistry(ctx context.Context, id int64, req RegistryReq) error {
	resp, err := api.client.R().
		SetContext(ctx).
		SetBody(req).
		Put(fmt.Sprintf("/registries/%d", id))
	return api.check(resp, err)
}

// DeleteRegistry removes a registry endpoint by ID.
func (api *HarborAPIClient) DeleteRegistry(ctx context.Context, id int64) error {
	resp, err := api.client.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/registries/%d", id))
	return api.check(resp, err)
}
