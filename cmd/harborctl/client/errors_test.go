package client

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestAPIErrorMessageCategorized(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		contains string
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, contains: "authentication failed"},
		{name: "forbidden", status: http.StatusForbidden, contains: "permission denied"},
		{name: "not_found", status: http.StatusNotFound, contains: "not found"},
		{name: "conflict", status: http.StatusConflict, contains: "already exists"},
		{name: "precondition", status: http.StatusPreconditionFailed, contains: "precondition"},
		{name: "server_error", status: http.StatusInternalServerError, contains: "internal error"},
		{name: "unavailable", status: http.StatusServiceUnavailable, contains: "temporarily unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &APIError{
				Method:     "GET",
				URL:        "https://harbor.example.com/api/v2.0/projects",
				StatusCode: tt.status,
				Body:       `{"errors":[{"code":"X","message":"raw detail"}]}`,
			}
			msg := err.Message()
			if !strings.Contains(msg, tt.contains) {
				t.Errorf("Message() = %q, want substring %q", msg, tt.contains)
			}
			// Categorized statuses use the template, not the raw body
			if strings.Contains(msg, "raw detail") {
				t.Errorf("categorized message %q leaked the raw body", msg)
			}
			if !strings.Contains(msg, fmt.Sprintf("%d", tt.status)) {
				t.Errorf("message %q does not include the status code", msg)
			}
		})
	}
}

func TestAPIErrorMessageUncategorizedFallsBackToBody(t *testing.T) {
	err := &APIError{
		Method:     "GET",
		URL:        "https://harbor.example.com/api/v2.0/projects",
		StatusCode: http.StatusTeapot,
		Body:       "short and stout",
	}
	msg := err.Message()
	if !strings.Contains(msg, "short and stout") {
		t.Errorf("uncategorized message %q should include the raw body", msg)
	}
}

func TestAPIErrorMessageUncategorizedEmptyBody(t *testing.T) {
	err := &APIError{
		Method:     "DELETE",
		URL:        "https://harbor.example.com/api/v2.0/projects/x",
		StatusCode: http.StatusTeapot,
	}
	msg := err.Message()
	if !strings.Contains(msg, http.StatusText(http.StatusTeapot)) {
		t.Errorf("empty-body message %q should fall back to the status text", msg)
	}
}

func TestIsStatus(t *testing.T) {
	apiErr := &APIError{Method: "GET", URL: "u", StatusCode: http.StatusNotFound}

	if !IsStatus(apiErr, http.StatusNotFound) {
		t.Error("IsStatus should match the direct error")
	}
	wrapped := fmt.Errorf("listing repositories: %w", apiErr)
	if !IsStatus(wrapped, http.StatusNotFound) {
		t.Error("IsStatus should match through wrapping")
	}
	if IsStatus(apiErr, http.StatusForbidden) {
		t.Error("IsStatus must not match a different status")
	}
	if IsStatus(errors.New("plain"), http.StatusNotFound) {
		t.Error("IsStatus must not match non-API errors")
	}
}

func TestShortURL(t *testing.T) {
	got := shortURL("https://harbor.example.com/api/v2.0/projects")
	if strings.HasPrefix(got, "https://") {
		t.Errorf("shortURL kept the scheme: %q", got)
	}
	if !strings.Contains(got, "harbor.example.com") {
		t.Errorf("shortURL dropped the host: %q", got)
	}
}
