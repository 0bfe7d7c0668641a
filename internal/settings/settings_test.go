package settings

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValidAndUnauthenticated(t *testing.T) {
	s := Default()

	if s.HasAuthMethod() {
		t.Error("default settings must not have an auth method")
	}
	if err := s.CheckAuth(); err == nil {
		t.Error("CheckAuth on default settings should report missing auth")
	}
	if s.Output.Format != FormatTable {
		t.Errorf("default output format = %q, want %q", s.Output.Format, FormatTable)
	}
	if !s.Harbor.VerifyTLS {
		t.Error("TLS verification should default to enabled")
	}
	if s.SourcePath() != "" {
		t.Errorf("default settings should have no source path, got %q", s.SourcePath())
	}
}

func TestHasAuthMethod(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Settings)
		hasAuth  bool
		authErr  bool
		errWords string
	}{
		{
			name:    "none",
			mutate:  func(s *Settings) {},
			hasAuth: false,
			authErr: true,
		},
		{
			name: "username_and_secret",
			mutate: func(s *Settings) {
				s.Harbor.Username = "admin"
				s.Harbor.Secret = "pw"
			},
			hasAuth: true,
		},
		{
			name: "username_without_secret",
			mutate: func(s *Settings) {
				s.Harbor.Username = "admin"
			},
			hasAuth: false,
			authErr: true,
		},
		{
			name: "basicauth_token",
			mutate: func(s *Settings) {
				s.Harbor.BasicAuth = "YWRtaW46cHc="
			},
			hasAuth: true,
		},
		{
			name: "credentials_file",
			mutate: func(s *Settings) {
				s.Harbor.CredentialsFile = "/tmp/creds"
			},
			hasAuth: true,
		},
		{
			name: "two_methods_ambiguous",
			mutate: func(s *Settings) {
				s.Harbor.Username = "admin"
				s.Harbor.Secret = "pw"
				s.Harbor.BasicAuth = "YWRtaW46cHc="
			},
			hasAuth:  false,
			authErr:  true,
			errWords: "only one",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(s)

			if got := s.HasAuthMethod(); got != tt.hasAuth {
				t.Errorf("HasAuthMethod() = %v, want %v", got, tt.hasAuth)
			}
			err := s.CheckAuth()
			if tt.authErr && err == nil {
				t.Error("expected CheckAuth error, got nil")
			}
			if !tt.authErr && err != nil {
				t.Errorf("unexpected CheckAuth error: %v", err)
			}
			if tt.errWords != "" && err != nil && !strings.Contains(err.Error(), tt.errWords) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.errWords)
			}
		})
	}
}

func TestCopyIsStructurallyIndependent(t *testing.T) {
	s := Default()
	s.Harbor.URL = "https://harbor.example.com/api/v2.0"
	s.Output.Table.RowStyle = &[2]string{"blue", "red"}

	snapshot := s.Copy()

	// Mutate every section of the live object
	s.Harbor.URL = "https://other.example.com"
	s.Harbor.Username = "eve"
	s.General.ConfirmDeletion = false
	s.Output.Format = FormatJSON
	s.Output.Table.RowStyle[0] = "green"
	s.Shell.History = false

	if snapshot.Harbor.URL != "https://harbor.example.com/api/v2.0" {
		t.Errorf("snapshot URL mutated to %q", snapshot.Harbor.URL)
	}
	if snapshot.Harbor.Username != "" {
		t.Errorf("snapshot username mutated to %q", snapshot.Harbor.Username)
	}
	if !snapshot.General.ConfirmDeletion {
		t.Error("snapshot confirm_deletion mutated")
	}
	if snapshot.Output.Format != FormatTable {
		t.Errorf("snapshot output format mutated to %q", snapshot.Output.Format)
	}
	if snapshot.Output.Table.RowStyle[0] != "blue" {
		t.Errorf("snapshot row style mutated to %q", snapshot.Output.Table.RowStyle[0])
	}
	if !snapshot.Shell.History {
		t.Error("snapshot shell history mutated")
	}
}

func TestCopyCarriesSourcePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	s := Default()
	if err := s.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}
	if s.SourcePath() != path {
		t.Fatalf("SourcePath() = %q, want %q", s.SourcePath(), path)
	}
	if got := s.Copy().SourcePath(); got != path {
		t.Errorf("copy SourcePath() = %q, want %q", got, path)
	}
}

func TestFlattenRedaction(t *testing.T) {
	s := Default()
	s.Harbor.Username = "admin"
	s.Harbor.Secret = "topsecret"
	s.Harbor.BasicAuth = "YWRtaW46dG9wc2VjcmV0"

	redacted := s.Flatten(false)
	for _, key := range []string{"harbor.secret", "harbor.basicauth"} {
		if redacted[key] != SecretMask {
			t.Errorf("redacted %s = %q, want %q", key, redacted[key], SecretMask)
		}
	}
	if redacted["harbor.username"] != "admin" {
		t.Errorf("username should not be redacted, got %q", redacted["harbor.username"])
	}
	// Empty credentials file stays empty, not masked
	if redacted["harbor.credentials_file"] != "" {
		t.Errorf("empty credentials_file rendered as %q", redacted["harbor.credentials_file"])
	}

	exposed := s.Flatten(true)
	if exposed["harbor.secret"] != "topsecret" {
		t.Errorf("exposed secret = %q", exposed["harbor.secret"])
	}

	// Redaction never alters the in-memory object
	if s.Harbor.Secret != "topsecret" {
		t.Errorf("in-memory secret altered to %q", s.Harbor.Secret)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	s := Default()
	s.Harbor.URL = "https://harbor.example.com/api/v2.0"
	s.Harbor.Username = "admin"
	s.Harbor.Secret = "pw"
	s.Output.Format = FormatJSON
	s.Output.JSON.Indent = 4
	s.Output.Table.RowStyle = &[2]string{"cyan", "black"}
	s.Harbor.Retry.Enabled = true
	s.Harbor.Retry.MaxAttempts = 5

	if err := s.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	result, err := LoadFromPath(path, false)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("round trip produced warnings: %v", result.Warnings)
	}

	got := result.Settings.Flatten(true)
	want := s.Flatten(true)
	for key, wantValue := range want {
		if got[key] != wantValue {
			t.Errorf("round trip %s = %q, want %q", key, got[key], wantValue)
		}
	}
}

func TestSetPathGetPath(t *testing.T) {
	s := Default()

	if _, err := s.SetPath("harbor.url", "https://harbor.example.com"); err != nil {
		t.Fatalf("SetPath url: %v", err)
	}
	if got, _ := s.GetPath("harbor.url"); got != "https://harbor.example.com" {
		t.Errorf("GetPath url = %q", got)
	}

	if _, err := s.SetPath("general.confirm_deletion", "no"); err != nil {
		t.Fatalf("SetPath bool spelling: %v", err)
	}
	if s.General.ConfirmDeletion {
		t.Error("confirm_deletion should be false after setting 'no'")
	}

	if _, err := s.SetPath("output.format", "yaml"); err == nil {
		t.Error("expected error for invalid output format")
	}

	if _, err := s.SetPath("harbor.nope", "x"); err == nil {
		t.Error("expected unknown key error")
	} else if !strings.Contains(err.Error(), "unknown config key") {
		t.Errorf("error %q does not mention unknown config key", err.Error())
	}

	warning, err := s.SetPath("output.table.max_depth", "-3")
	if err != nil {
		t.Fatalf("SetPath max_depth: %v", err)
	}
	if warning == "" {
		t.Error("expected coercion warning for negative max_depth")
	}
	if s.Output.Table.MaxDepth != 0 {
		t.Errorf("max_depth = %d, want 0", s.Output.Table.MaxDepth)
	}
}

func TestSetPathIntegerRanges(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		value       string
		expectError bool
	}{
		{
			name:  "max_attempts in range",
			path:  "harbor.retry.max_attempts",
			value: "10",
		},
		{
			name:        "max_attempts zero rejected",
			path:        "harbor.retry.max_attempts",
			value:       "0",
			expectError: true,
		},
		{
			name:        "max_attempts above limit",
			path:        "harbor.retry.max_attempts",
			value:       "500",
			expectError: true,
		},
		{
			name:  "max_time_seconds in range",
			path:  "harbor.retry.max_time_seconds",
			value: "120",
		},
		{
			name:        "max_time_seconds above limit",
			path:        "harbor.retry.max_time_seconds",
			value:       "7200",
			expectError: true,
		},
		{
			name:  "json indent zero allowed",
			path:  "output.json.indent",
			value: "0",
		},
		{
			name:        "json indent negative rejected",
			path:        "output.json.indent",
			value:       "-1",
			expectError: true,
		},
		{
			name:        "json indent above limit",
			path:        "output.json.indent",
			value:       "32",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			_, err := s.SetPath(tt.path, tt.value)
			if tt.expectError {
				if err == nil {
					t.Fatalf("SetPath(%s, %s) accepted an out-of-range value", tt.path, tt.value)
				}
				if !strings.Contains(err.Error(), "must be between") {
					t.Errorf("error %q does not report the valid range", err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("SetPath(%s, %s): %v", tt.path, tt.value, err)
			}
			if got, _ := s.GetPath(tt.path); got != tt.value {
				t.Errorf("GetPath(%s) = %q, want %q", tt.path, got, tt.value)
			}
		})
	}
}
