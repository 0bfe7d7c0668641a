// Package commands provides the interactive shell for harborctl.
//
// SHELL SEMANTICS:
// The shell reads command lines and dispatches them through the same cobra
// tree as one-shot invocations, so every command, flag, and help text works
// identically in both modes. Configuration is resolved once when the shell
// starts; each line then runs against a settings snapshot so per-line flag
// overrides (--output=json on a single command) never leak into later lines.
// The one exception is the config command group, whose whole purpose is to
// mutate session state: its changes are committed instead of rolled back.
package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/harborctl/harborctl/cmd/harborctl/session"
	"github.com/harborctl/harborctl/internal/logging"
)

// Shell command
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive shell",
	Long: `Start an interactive shell session against the configured registry.

Every harborctl command works inside the shell without the leading
"harborctl". Line history is kept across sessions in the file named by
shell.history_file when shell.history is enabled. Ctrl-C aborts the current
line; "exit" or Ctrl-D leaves the shell.`,
	Example: `  # Start a shell
  harborctl shell

  # Inside the shell
  harborctl> project ls
  harborctl> config set output.format json
  harborctl> repo ls library`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

// runShell drives the interactive loop.
func runShell(cmd *cobra.Command, args []string) error {
	if session.Interactive() {
		return fmt.Errorf("already inside an interactive shell")
	}
	session.SetInteractive()

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	shell := session.Current().Shell
	if shell.History && shell.HistoryFile != "" {
		if f, err := os.Open(shell.HistoryFile); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
	}
	defer saveHistory(line)

	fmt.Printf("harborctl interactive shell (type 'exit' or Ctrl-D to leave)\n")

	for {
		input, err := line.Prompt("harborctl> ")
		if err == liner.ErrPromptAborted {
			// Ctrl-C: drop the line, keep the shell
			continue
		}
		if err != nil {
			// Ctrl-D or a closed terminal
			fmt.Println()
			return nil
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" {
			return nil
		}
		line.AppendHistory(input)

		tokens, err := tokenize(input)
		if err != nil {
			logging.Error("%v", err)
			continue
		}
		if tokens[0] == "shell" {
			logging.Error("already inside an interactive shell")
			continue
		}

		executeShellLine(tokens)
	}
}

// executeShellLine runs one tokenized command line through the root command
// inside a settings snapshot. Config commands commit their mutations; all
// other commands roll back, which confines per-line flag overrides to the
// line they were typed on.
func executeShellLine(tokens []string) {
	session.Snapshot()

	resetFlags(RootCmd)
	RootCmd.SetArgs(tokens)
	if err := RootCmd.Execute(); err != nil {
		logging.Error("%v", err)
	}

	if tokens[0] == "config" {
		session.DropSnapshot()
	} else {
		session.Restore()
	}
}

// resetFlags clears the sticky flag state cobra leaves behind between
// Execute calls: every flag in the tree goes back to its default value with
// its Changed marker cleared, so the override merge sees only flags from the
// current line.
func resetFlags(root *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if f.Changed {
			f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
	var walk func(*cobra.Command)
	walk = func(c *cobra.Command) {
		c.Flags().VisitAll(reset)
		c.PersistentFlags().VisitAll(reset)
		for _, sub := range c.Commands() {
			walk(sub)
		}
	}
	walk(root)
}

// tokenize splits a shell line into arguments with double- and single-quote
// support, enough for values containing spaces. No escapes or expansion.
func tokenize(input string) ([]string, error) {
	var tokens []string
	var current strings.Builder
	var quote rune
	inToken := false

	for _, r := range input {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			inToken = true
		case r == ' ' || r == '\t':
			if inToken {
				tokens = append(tokens, current.String())
				current.Reset()
				inToken = false
			}
		default:
			current.WriteRune(r)
			inToken = true
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("unterminated quote in %q", input)
	}
	if inToken {
		tokens = append(tokens, current.String())
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty command")
	}
	return tokens, nil
}

// saveHistory writes the line history back to the configured file with 0600
// permissions, since typed commands can contain secrets.
func saveHistory(line *liner.State) {
	shell := session.Current().Shell
	if !shell.History || shell.HistoryFile == "" {
		return
	}
	f, err := os.OpenFile(shell.HistoryFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		logging.Warn("Cannot save shell history: %v", err)
		return
	}
	defer f.Close()
	if _, err := line.WriteHistory(f); err != nil {
		logging.Warn("Cannot save shell history: %v", err)
	}
}
