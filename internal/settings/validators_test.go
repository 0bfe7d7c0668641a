package settings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNormalizeRowStyle(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  *[2]string
	}{
		{name: "single_string", input: "blue", want: &[2]string{"blue", "blue"}},
		{name: "one_element", input: []any{"blue"}, want: &[2]string{"blue", "blue"}},
		{name: "two_elements", input: []any{"blue", "red"}, want: &[2]string{"blue", "red"}},
		{name: "truncates_to_two", input: []any{"blue", "red", "green"}, want: &[2]string{"blue", "red"}},
		{name: "empty_string_unset", input: "", want: nil},
		{name: "empty_list_unset", input: []any{}, want: nil},
		{name: "all_empty_unset", input: []any{"", ""}, want: nil},
		{name: "string_slice", input: []string{"dim", "bright"}, want: &[2]string{"dim", "bright"}},
		{name: "nil_unset", input: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeRowStyle(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("NormalizeRowStyle(%v) = %v, want %v", tt.input, got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("NormalizeRowStyle(%v) = %v, want %v", tt.input, *got, *tt.want)
			}
		})
	}
}

func TestNormalizeRowStyleRejectsBadTypes(t *testing.T) {
	if _, err := NormalizeRowStyle(42); err == nil {
		t.Error("expected error for integer row style")
	}
	if _, err := NormalizeRowStyle([]any{"blue", 7}); err == nil {
		t.Error("expected error for mixed-type list")
	}
}

func TestSetCredentialsFile(t *testing.T) {
	dir := t.TempDir()
	realFile := filepath.Join(dir, "creds")
	if err := os.WriteFile(realFile, []byte("robot$ci:token\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name          string
		path          string
		wantValue     string
		expectError   bool
		errorContains string
	}{
		{
			name:      "empty_normalizes_to_unset",
			path:      "",
			wantValue: "",
		},
		{
			name:      "whitespace_normalizes_to_unset",
			path:      "   ",
			wantValue: "",
		},
		{
			name:      "existing_file_ok",
			path:      realFile,
			wantValue: realFile,
		},
		{
			name:          "missing_file_error",
			path:          filepath.Join(dir, "nope"),
			expectError:   true,
			errorContains: "exist",
		},
		{
			name:          "directory_error",
			path:          dir,
			expectError:   true,
			errorContains: "file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			s.Harbor.CredentialsFile = "stale"

			err := s.SetCredentialsFile(tt.path)
			if tt.expectError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errorContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errorContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s.Harbor.CredentialsFile != tt.wantValue {
				t.Errorf("credentials file = %q, want %q", s.Harbor.CredentialsFile, tt.wantValue)
			}
		})
	}
}

func TestNormalizeMaxDepth(t *testing.T) {
	if depth, warning := NormalizeMaxDepth(3); depth != 3 || warning != "" {
		t.Errorf("NormalizeMaxDepth(3) = (%d, %q)", depth, warning)
	}
	if depth, warning := NormalizeMaxDepth(0); depth != 0 || warning != "" {
		t.Errorf("NormalizeMaxDepth(0) = (%d, %q)", depth, warning)
	}
	depth, warning := NormalizeMaxDepth(-5)
	if depth != 0 {
		t.Errorf("negative depth coerced to %d, want 0", depth)
	}
	if warning == "" {
		t.Error("expected a coercion warning for negative depth")
	}
}
