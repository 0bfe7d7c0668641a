package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/harborctl/harborctl/internal/settings"
)

// newOverrideFlagSet builds a flag set with the same names and defaults the
// root command registers, so merge behavior is tested against the real
// binding table.
func newOverrideFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("harborctl", pflag.ContinueOnError)
	flags.String("url", "", "")
	flags.String("username", "", "")
	flags.String("secret", "", "")
	flags.String("basicauth", "", "")
	flags.String("credentials-file", "", "")
	flags.Bool("validate", true, "")
	flags.Bool("raw", false, "")
	flags.Bool("verify-tls", true, "")
	flags.Bool("confirm-deletion", true, "")
	flags.Bool("confirm-enumeration", true, "")
	flags.String("output", settings.FormatTable, "")
	flags.Bool("paging", false, "")
	flags.Int("max-depth", 1, "")
	return flags
}

func TestMergePrecedenceFileEnvFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[harbor]
url = "https://harbor.example.com/api/v2.0"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HARBOR_CLI_USERNAME", "admin")

	result, err := settings.LoadFromPath(path, false)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	s := result.Settings
	if _, err := s.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}

	flags := newOverrideFlagSet()
	if err := flags.Parse([]string{"--secret", "mypw"}); err != nil {
		t.Fatal(err)
	}
	if _, err := ApplyOverrides(flags, s); err != nil {
		t.Fatalf("ApplyOverrides: %v", err)
	}

	if s.Harbor.URL != "https://harbor.example.com/api/v2.0" {
		t.Errorf("url = %q", s.Harbor.URL)
	}
	if s.Harbor.Username != "admin" {
		t.Errorf("username = %q, want env value", s.Harbor.Username)
	}
	if s.Harbor.Secret != "mypw" {
		t.Errorf("secret = %q, want flag value", s.Harbor.Secret)
	}
	if !s.HasAuthMethod() {
		t.Error("username+secret across layers should form a usable auth method")
	}
}

func TestDefaultsNeverOverride(t *testing.T) {
	s := settings.Default()
	s.Harbor.VerifyTLS = false // from a lower layer
	s.Output.Format = settings.FormatJSON

	flags := newOverrideFlagSet()
	if err := flags.Parse(nil); err != nil {
		t.Fatal(err)
	}
	if _, err := ApplyOverrides(flags, s); err != nil {
		t.Fatalf("ApplyOverrides: %v", err)
	}

	if s.Harbor.VerifyTLS {
		t.Error("unpassed --verify-tls default masked the lower-layer value")
	}
	if s.Output.Format != settings.FormatJSON {
		t.Errorf("unpassed --output default masked the lower-layer value: %q", s.Output.Format)
	}
}

func TestExplicitFlagOverridesEverything(t *testing.T) {
	s := settings.Default()
	s.Harbor.VerifyTLS = true

	flags := newOverrideFlagSet()
	if err := flags.Parse([]string{"--verify-tls=false", "--max-depth", "-2"}); err != nil {
		t.Fatal(err)
	}
	warnings, err := ApplyOverrides(flags, s)
	if err != nil {
		t.Fatalf("ApplyOverrides: %v", err)
	}

	if s.Harbor.VerifyTLS {
		t.Error("--verify-tls=false did not apply")
	}
	if s.Output.Table.MaxDepth != 0 {
		t.Errorf("negative --max-depth coerced to %d, want 0", s.Output.Table.MaxDepth)
	}
	if len(warnings) == 0 || !strings.Contains(strings.Join(warnings, "\n"), "max_depth") {
		t.Errorf("expected a max_depth coercion warning, got %v", warnings)
	}
}

func TestOverrideInvalidCredentialsFileIsFatal(t *testing.T) {
	s := settings.Default()

	flags := newOverrideFlagSet()
	missing := filepath.Join(t.TempDir(), "nope")
	if err := flags.Parse([]string{"--credentials-file", missing}); err != nil {
		t.Fatal(err)
	}
	if _, err := ApplyOverrides(flags, s); err == nil {
		t.Fatal("expected error for nonexistent credentials file")
	}
}
