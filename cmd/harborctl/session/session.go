// Package session manages the mutable CLI state shared between commands.
//
// SESSION STATE ARCHITECTURE:
// The session owns the resolved settings and the lazily-constructed API
// client for the lifetime of one CLI invocation or one interactive shell:
//   - Current Settings: the merged file/environment/flag resolution result,
//     mutable from inside the shell via the config command
//   - Lazy Client: constructed on first use so exempt commands (init, config
//     sample, version) never pay connection or auth-resolution costs
//   - Snapshot/Restore: deep-copied settings checkpoints that let each shell
//     command run against pristine state and roll back afterwards
//
// CLIENT RE-SYNC CONTRACT:
// Credentials and connection parameters are fixed when the client is first
// built; changing harbor.url or harbor.username mid-session requires a client
// reset. The raw_mode and validate_data flags however are re-synced from the
// current settings on every Client() call, so toggling them inside the shell
// takes effect immediately. The asymmetry is intentional (see DESIGN.md).
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/harborctl/harborctl/cmd/harborctl/client"
	"github.com/harborctl/harborctl/internal/logging"
	"github.com/harborctl/harborctl/internal/settings"
)

// state is the process-wide session. A CLI executes exactly one command per
// process (or one shell), so a package-level singleton mirrors how the shell
// and handlers share state without threading a context object through every
// cobra RunE signature.
var state struct {
	settings    *settings.Settings
	api         *client.HarborAPIClient
	interactive bool
	snapshots   []*settings.Settings
}

// SetCurrent installs the resolved settings for this invocation. Called once
// by the root command after the file/environment/flag merge completes; the
// existing client is dropped so connection parameters take effect.
func SetCurrent(s *settings.Settings) {
	state.settings = s
	state.api = nil
}

// Current returns the active settings. Panics when called before SetCurrent
// since that indicates a command escaped the exempt list without the root
// command resolving configuration first.
func Current() *settings.Settings {
	if state.settings == nil {
		panic("session: settings accessed before configuration was resolved")
	}
	return state.settings
}

// Active reports whether settings have been resolved for this invocation.
func Active() bool {
	return state.settings != nil
}

// SetInteractive marks this invocation as an interactive shell. One-way:
// once a shell starts the session stays interactive until the process exits,
// which keeps nested shell attempts detectable.
func SetInteractive() {
	state.interactive = true
}

// Interactive reports whether an interactive shell is running.
func Interactive() bool {
	return state.interactive
}

// Client returns the API client, constructing it from the current settings on
// first use. Construction fails for unauthenticated or ambiguous credential
// configurations. On every call, including the first, the raw_mode and
// validate_data flags are re-synced from the current settings.
func Client() (*client.HarborAPIClient, error) {
	s := Current()
	if state.api == nil {
		api, err := client.New(s)
		if err != nil {
			return nil, err
		}
		logging.Debug("Constructed API client for %s", api.BaseURL())
		state.api = api
	}
	state.api.SetRawMode(s.Harbor.RawMode)
	state.api.SetValidateData(s.Harbor.ValidateData)
	return state.api, nil
}

// ResetClient drops the constructed client so the next Client() call rebuilds
// it from the current settings. Used by the shell's config handler when a
// connection or credential setting changes mid-session.
func ResetClient() {
	state.api = nil
}

// Snapshot pushes a deep copy of the current settings onto the checkpoint
// stack. The copy carries the source path, so a later save inside the shell
// still writes to the originally loaded file.
func Snapshot() {
	state.snapshots = append(state.snapshots, Current().Copy())
}

// Restore pops the most recent checkpoint and reinstalls it as the current
// settings, discarding all mutations made since the matching Snapshot. The
// client is kept; only its re-synced flags will reflect the restored values.
// Restore without a matching Snapshot is a no-op.
func Restore() {
	n := len(state.snapshots)
	if n == 0 {
		return
	}
	state.settings = state.snapshots[n-1]
	state.snapshots = state.snapshots[:n-1]
}

// DropSnapshot discards the most recent checkpoint without restoring it,
// committing the mutations made since the matching Snapshot.
func DropSnapshot() {
	if n := len(state.snapshots); n > 0 {
		state.snapshots = state.snapshots[:n-1]
	}
}

// runOptions collects per-operation overrides for Run.
type runOptions struct {
	passthrough map[int]bool
}

// RunOption customizes error interception for one operation.
type RunOption func(*runOptions)

// Passthrough exempts the given HTTP status codes from message conversion so
// the caller can branch on them with client.IsStatus. Handlers use this to
// treat "not found" as a normal outcome rather than a rendered failure.
func Passthrough(statuses ...int) RunOption {
	return func(o *runOptions) {
		for _, status := range statuses {
			o.passthrough[status] = true
		}
	}
}

// Run executes one API operation with session-level error interception.
// Categorized API errors come back as single human-readable messages instead
// of raw status dumps, except for statuses the caller passed through. In raw
// mode interception is skipped entirely and the full error surfaces as-is.
func Run(ctx context.Context, op func(context.Context) error, opts ...RunOption) error {
	options := runOptions{passthrough: make(map[int]bool)}
	for _, opt := range opts {
		opt(&options)
	}

	err := op(ctx)
	if err == nil {
		return nil
	}

	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		return err
	}
	if options.passthrough[apiErr.StatusCode] {
		return err
	}
	if Current().Harbor.RawMode {
		return err
	}
	logging.Debug("API error intercepted: %v", apiErr)
	return fmt.Errorf("%s", apiErr.Message())
}
