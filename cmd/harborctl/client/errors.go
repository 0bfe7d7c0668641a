// Categorized status errors for registry API responses.
//
// Every non-2xx response surfaces as an APIError carrying the HTTP method,
// URL, and status code. The session layer converts these into single
// human-readable messages using the per-category templates below, so
// individual command handlers never branch on status codes unless they
// explicitly opt out of interception for a status they want to handle
// themselves (treating "not found" as a normal outcome, for example).

package client

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError represents a non-2xx response from the registry API.
type APIError struct {
	Method     string
	URL        string
	StatusCode int
	// Body holds the raw response body, used as the fallback message for
	// uncategorized statuses.
	Body string
}

// Error implements the error interface with the full request context,
// suitable for debug logs. User-facing output goes through Message.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s failed with status %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

// statusTemplates maps HTTP status codes to fixed human-readable message
// templates. Statuses outside this set fall back to the raw response body.
var statusTemplates = map[int]string{
	http.StatusBadRequest:          "the registry rejected the request as invalid",
	http.StatusUnauthorized:        "authentication failed: check your username/secret or basicauth token",
	http.StatusForbidden:           "permission denied: your account lacks access to this resource",
	http.StatusNotFound:            "the requested resource was not found",
	http.StatusConflict:            "the resource already exists or conflicts with the current state",
	http.StatusPreconditionFailed:  "a precondition failed (the resource may be immutable or protected)",
	http.StatusUnprocessableEntity: "the registry could not process the request payload",
	http.StatusInternalServerError: "the registry reported an internal error",
	http.StatusBadGateway:          "the registry is unreachable behind its proxy",
	http.StatusServiceUnavailable:  "the registry is temporarily unavailable",
}

// Message returns the single user-facing line for this error, using the
// category template when one exists and the raw body otherwise.
func (e *APIError) Message() string {
	if tmpl, ok := statusTemplates[e.StatusCode]; ok {
		return fmt.Sprintf("%s (%s %s returned %d)", tmpl, e.Method, shortURL(e.URL), e.StatusCode)
	}
	body := strings.TrimSpace(e.Body)
	if body == "" {
		body = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("registry error %d on %s %s: %s", e.StatusCode, e.Method, shortURL(e.URL), body)
}

// IsStatus reports whether err is an APIError with the given status code.
// Used by handlers that opt out of session-level interception for specific
// statuses.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

// shortURL trims the scheme and API prefix so messages stay on one line.
func shortURL(raw string) string {
	for _, prefix := range []string{"https://", "http://"} {
		if strings.HasPrefix(raw, prefix) {
			raw = raw[len(prefix):]
			break
		}
	}
	return raw
}
