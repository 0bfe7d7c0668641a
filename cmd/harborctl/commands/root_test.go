package commands

import (
	"testing"

	"github.com/spf13/cobra"
)

// buildTree constructs a minimal command tree mirroring the real layout for
// exemption checks.
func buildTree() map[string]*cobra.Command {
	root := &cobra.Command{Use: "harborctl"}
	cfg := &cobra.Command{Use: "config"}
	sample := &cobra.Command{Use: "sample"}
	list := &cobra.Command{Use: "list"}
	project := &cobra.Command{Use: "project"}
	ls := &cobra.Command{Use: "ls"}
	initialize := &cobra.Command{Use: "init"}
	help := &cobra.Command{Use: "help"}

	cfg.AddCommand(sample, list)
	project.AddCommand(ls)
	root.AddCommand(cfg, project, initialize, help)

	return map[string]*cobra.Command{
		"root":          root,
		"config sample": sample,
		"config list":   list,
		"project ls":    ls,
		"init":          initialize,
		"help":          help,
	}
}

func TestIsExempt(t *testing.T) {
	tree := buildTree()

	tests := []struct {
		name   string
		cmd    string
		exempt bool
	}{
		{name: "init_exempt", cmd: "init", exempt: true},
		{name: "help_exempt", cmd: "help", exempt: true},
		{name: "config_sample_exempt", cmd: "config sample", exempt: true},
		{name: "config_list_needs_config", cmd: "config list", exempt: false},
		{name: "project_ls_needs_config", cmd: "project ls", exempt: false},
		{name: "root_needs_config", cmd: "root", exempt: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isExempt(tree[tt.cmd]); got != tt.exempt {
				t.Errorf("isExempt(%s) = %v, want %v", tt.cmd, got, tt.exempt)
			}
		})
	}
}

func TestCommandPath(t *testing.T) {
	tree := buildTree()

	if got := commandPath(tree["config sample"]); got != "config sample" {
		t.Errorf("commandPath = %q", got)
	}
	if got := commandPath(tree["root"]); got != "" {
		t.Errorf("commandPath(root) = %q, want empty", got)
	}
}
