package settings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFromPathMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	if _, err := LoadFromPath(path, false); err == nil {
		t.Fatal("expected error for missing file")
	} else if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error %q does not mention not found", err.Error())
	}
}

func TestLoadFromPathCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	result, err := LoadFromPath(path, true)
	if err != nil {
		t.Fatalf("LoadFromPath with create: %v", err)
	}
	if result.CreatedPath != path {
		t.Errorf("CreatedPath = %q, want %q", result.CreatedPath, path)
	}
	if result.Settings == nil {
		t.Fatal("no settings returned")
	}
	if result.Settings.SourcePath() != path {
		t.Errorf("SourcePath = %q, want %q", result.Settings.SourcePath(), path)
	}

	// The created file must be a fully-populated default serialization
	// that loads back equal to Default()
	want := Default().Flatten(true)
	got := result.Settings.Flatten(true)
	for key, wantValue := range want {
		if got[key] != wantValue {
			t.Errorf("created config %s = %q, want default %q", key, got[key], wantValue)
		}
	}
}

func TestLoadFromPathDirectory(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFromPath(dir, false); err == nil {
		t.Fatal("expected error for directory path")
	} else if !strings.Contains(err.Error(), "directory") {
		t.Errorf("error %q does not mention directory", err.Error())
	}
}

func TestLoadFromPathParseError(t *testing.T) {
	path := writeConfig(t, "[harbor\nurl = broken")

	_, err := LoadFromPath(path, false)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "invalid config file") {
		t.Errorf("parse error %q is not wrapped as a config error", err.Error())
	}
}

func TestLoadFromPathUnknownKeysWarn(t *testing.T) {
	path := writeConfig(t, `
[harbor]
url = "https://harbor.example.com/api/v2.0"
tpyo = "oops"

[extras]
anything = true
`)

	result, err := LoadFromPath(path, false)
	if err != nil {
		t.Fatalf("unknown keys must not be fatal: %v", err)
	}
	if result.Settings.Harbor.URL != "https://harbor.example.com/api/v2.0" {
		t.Errorf("url = %q", result.Settings.Harbor.URL)
	}

	joined := strings.Join(result.Warnings, "\n")
	if !strings.Contains(joined, "harbor.tpyo") {
		t.Errorf("warnings %q do not flag harbor.tpyo", joined)
	}
	if !strings.Contains(joined, "extras") {
		t.Errorf("warnings %q do not flag the extras section", joined)
	}
}

func TestLoadBooleanStringNormalization(t *testing.T) {
	path := writeConfig(t, `
[harbor]
verify_tls = "false"
validate_data = "not-a-bool"
`)

	result, err := LoadFromPath(path, false)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if result.Settings.Harbor.VerifyTLS {
		t.Error(`verify_tls = "false" should normalize to boolean false`)
	}
	// Unrecognized strings fall back to the field's schema default (true)
	if !result.Settings.Harbor.ValidateData {
		t.Error("unrecognized bool string should fall back to the default")
	}
}

func TestApplyEnvOverlay(t *testing.T) {
	path := writeConfig(t, `
[harbor]
url = "https://file.example.com"
username = "from-file"
`)

	t.Setenv("HARBOR_CLI_USERNAME", "from-env")
	t.Setenv("HARBOR_CLI_VERIFY_TLS", "off")

	result, err := LoadFromPath(path, false)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	s := result.Settings
	if _, err := s.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}

	if s.Harbor.Username != "from-env" {
		t.Errorf("env must override file: username = %q", s.Harbor.Username)
	}
	if s.Harbor.URL != "https://file.example.com" {
		t.Errorf("unset env vars must not touch fields: url = %q", s.Harbor.URL)
	}
	if s.Harbor.VerifyTLS {
		t.Error(`"off" spelling should disable verify_tls`)
	}
}

func TestApplyEnvInvalidValueIsFatal(t *testing.T) {
	t.Setenv("HARBOR_CLI_PAGING", "maybe")

	s := Default()
	if _, err := s.ApplyEnv(); err == nil {
		t.Fatal("expected error for unparsable boolean env value")
	} else if !strings.Contains(err.Error(), "HARBOR_CLI_PAGING") {
		t.Errorf("error %q does not name the variable", err.Error())
	}
}

func TestSampleMatchesDefaults(t *testing.T) {
	sample, err := Sample()
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	path := writeConfig(t, sample)

	result, err := LoadFromPath(path, false)
	if err != nil {
		t.Fatalf("loading sample: %v", err)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("sample config produced warnings: %v", result.Warnings)
	}

	want := Default().Flatten(true)
	got := result.Settings.Flatten(true)
	for key, wantValue := range want {
		if got[key] != wantValue {
			t.Errorf("sample %s = %q, want %q", key, got[key], wantValue)
		}
	}
}
