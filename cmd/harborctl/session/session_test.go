package session

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/harborctl/harborctl/cmd/harborctl/client"
	"github.com/harborctl/harborctl/internal/settings"
)

// resetSession clears the package-level state between tests.
func resetSession(t *testing.T) {
	t.Helper()
	state.settings = nil
	state.api = nil
	state.interactive = false
	state.snapshots = nil
}

func TestCurrentPanicsBeforeResolution(t *testing.T) {
	resetSession(t)
	defer func() {
		if recover() == nil {
			t.Error("Current() before SetCurrent should panic")
		}
	}()
	Current()
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	resetSession(t)
	s := settings.Default()
	s.Harbor.Username = "original"
	SetCurrent(s)

	Snapshot()
	Current().Harbor.Username = "mutated"
	Current().Output.Format = settings.FormatJSON

	Restore()

	if Current().Harbor.Username != "original" {
		t.Errorf("username after restore = %q", Current().Harbor.Username)
	}
	if Current().Output.Format != settings.FormatTable {
		t.Errorf("format after restore = %q", Current().Output.Format)
	}
}

func TestSnapshotIsIndependentCopy(t *testing.T) {
	resetSession(t)
	s := settings.Default()
	style := [2]string{"dim", "bright"}
	s.Output.Table.RowStyle = &style
	SetCurrent(s)

	Snapshot()
	Current().Output.Table.RowStyle[0] = "mutated"

	Restore()
	if Current().Output.Table.RowStyle[0] != "dim" {
		t.Error("snapshot shared the row style array with the live settings")
	}
}

func TestRestoreWithoutSnapshotIsNoop(t *testing.T) {
	resetSession(t)
	s := settings.Default()
	SetCurrent(s)

	Restore()
	if Current() != s {
		t.Error("Restore without a snapshot replaced the settings")
	}
}

func TestDropSnapshotCommitsMutations(t *testing.T) {
	resetSession(t)
	SetCurrent(settings.Default())

	Snapshot()
	Current().Harbor.Username = "kept"
	DropSnapshot()
	Restore() // must be a no-op now

	if Current().Harbor.Username != "kept" {
		t.Error("DropSnapshot did not commit the mutation")
	}
}

func TestClientRequiresAuth(t *testing.T) {
	resetSession(t)
	s := settings.Default()
	s.Harbor.URL = "https://harbor.example.com"
	SetCurrent(s)

	if _, err := Client(); err == nil {
		t.Fatal("expected error for unauthenticated settings")
	}
}

func TestClientResyncsBehaviorFlags(t *testing.T) {
	resetSession(t)
	s := settings.Default()
	s.Harbor.URL = "https://harbor.example.com"
	s.Harbor.Username = "admin"
	s.Harbor.Secret = "pw"
	SetCurrent(s)

	api, err := Client()
	if err != nil {
		t.Fatalf("Client: %v", err)
	}
	if api.RawMode() {
		t.Error("raw mode should start false")
	}

	Current().Harbor.RawMode = true
	again, err := Client()
	if err != nil {
		t.Fatalf("Client: %v", err)
	}
	if again != api {
		t.Error("client should be constructed once and reused")
	}
	if !again.RawMode() {
		t.Error("raw mode change was not re-synced on access")
	}
}

func TestRunConvertsCategorizedErrors(t *testing.T) {
	resetSession(t)
	SetCurrent(settings.Default())

	apiErr := &client.APIError{
		Method:     "GET",
		URL:        "https://harbor.example.com/api/v2.0/projects/x",
		StatusCode: http.StatusForbidden,
		Body:       "raw body",
	}
	err := Run(context.Background(), func(context.Context) error { return apiErr })
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "permission denied") {
		t.Errorf("converted error %q lacks the category message", err.Error())
	}
	if strings.Contains(err.Error(), "raw body") {
		t.Errorf("converted error %q leaked the raw body", err.Error())
	}
}

func TestRunPassthroughSkipsConversion(t *testing.T) {
	resetSession(t)
	SetCurrent(settings.Default())

	apiErr := &client.APIError{Method: "GET", URL: "u", StatusCode: http.StatusNotFound}
	err := Run(context.Background(), func(context.Context) error { return apiErr },
		Passthrough(http.StatusNotFound))
	if !client.IsStatus(err, http.StatusNotFound) {
		t.Error("passthrough status should surface as the original APIError")
	}
}

func TestRunRawModeSkipsConversion(t *testing.T) {
	resetSession(t)
	s := settings.Default()
	s.Harbor.RawMode = true
	SetCurrent(s)

	apiErr := &client.APIError{Method: "GET", URL: "u", StatusCode: http.StatusForbidden, Body: "full detail"}
	err := Run(context.Background(), func(context.Context) error { return apiErr })
	if !client.IsStatus(err, http.StatusForbidden) {
		t.Error("raw mode should surface the original APIError")
	}
}

func TestRunLeavesPlainErrorsAlone(t *testing.T) {
	resetSession(t)
	SetCurrent(settings.Default())

	sentinel := errors.New("not an API error")
	err := Run(context.Background(), func(context.Context) error { return sentinel })
	if !errors.Is(err, sentinel) {
		t.Errorf("plain error was rewritten: %v", err)
	}
}
