package commands

import (
	"reflect"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        []string
		expectError bool
	}{
		{name: "simple", input: "project ls", want: []string{"project", "ls"}},
		{name: "collapses_whitespace", input: "  project   ls  ", want: []string{"project", "ls"}},
		{
			name:  "double_quotes",
			input: `config set output.pager "less -R"`,
			want:  []string{"config", "set", "output.pager", "less -R"},
		},
		{
			name:  "single_quotes",
			input: `search 'nginx proxy'`,
			want:  []string{"search", "nginx proxy"},
		},
		{
			name:  "empty_quoted_token",
			input: `config set harbor.username ""`,
			want:  []string{"config", "set", "harbor.username", ""},
		},
		{name: "unterminated_quote", input: `search "nginx`, expectError: true},
		{name: "blank", input: "   ", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tokenize(tt.input)
			if tt.expectError {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestResetFlags(t *testing.T) {
	root := &cobra.Command{Use: "root"}
	sub := &cobra.Command{Use: "sub"}
	root.AddCommand(sub)
	root.PersistentFlags().String("output", "table", "")
	sub.Flags().Int("page", 1, "")

	if err := root.PersistentFlags().Set("output", "json"); err != nil {
		t.Fatal(err)
	}
	if err := sub.Flags().Set("page", "7"); err != nil {
		t.Fatal(err)
	}

	resetFlags(root)

	check := func(fs *pflag.FlagSet, name, wantValue string) {
		t.Helper()
		f := fs.Lookup(name)
		if f.Changed {
			t.Errorf("flag %s still marked changed", name)
		}
		if f.Value.String() != wantValue {
			t.Errorf("flag %s = %q, want default %q", name, f.Value.String(), wantValue)
		}
	}
	check(root.PersistentFlags(), "output", "table")
	check(sub.Flags(), "page", "1")
}
