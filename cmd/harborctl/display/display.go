// Package display provides output formatting and display functions for harborctl.
//
// This package handles all user-facing output formatting including table and
// JSON output for projects, repositories, artifacts, tags, and registries. It
// provides consistent formatting across all harborctl commands with support
// for alternating row styles, bounded extra-attribute rendering, and optional
// pager integration for long listings.
//
// The display functions handle:
// - Project, repository, artifact, tag, and registry formatting
// - Registry health and search result display
// - Consistent table formatting using text/tabwriter
// - JSON output with configurable indentation and key ordering
// - Paging through the configured pager when enabled
//
// All display functions respect the resolved output settings while maintaining
// clean separation from business logic.
package display

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/harborctl/harborctl/cmd/harborctl/session"
	"github.com/harborctl/harborctl/internal/logging"
	"github.com/harborctl/harborctl/internal/settings"
)

// output wraps the destination writer and an optional pager process that
// must be waited on after rendering completes.
type output struct {
	w     io.Writer
	close func()
}

// newOutput returns the writer that rendered output should go to. With paging
// enabled, output pipes through the configured pager; pager startup failures
// degrade to direct stdout with a warning rather than losing output.
func newOutput() output {
	out := session.Current().Output
	if !out.Paging || out.Pager == "" {
		return output{w: os.Stdout, close: func() {}}
	}

	cmd := exec.Command(out.Pager)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	pipe, err := cmd.StdinPipe()
	if err != nil {
		logging.Warn("Cannot create pager pipe: %v", err)
		return output{w: os.Stdout, close: func() {}}
	}
	if err := cmd.Start(); err != nil {
		logging.Warn("Cannot start pager %q: %v", out.Pager, err)
		return output{w: os.Stdout, close: func() {}}
	}
	return output{
		w: pipe,
		close: func() {
			pipe.Close()
			if err := cmd.Wait(); err != nil {
				logging.Debug("Pager exited: %v", err)
			}
		},
	}
}

// JSON renders v as JSON honoring the output.json settings: indentation width
// and optional lexicographic key ordering. Struct output is round-tripped
// through generic maps when key sorting is requested, since encoding/json
// only sorts map keys.
func JSON(v any) {
	out := newOutput()
	defer out.close()

	cfg := session.Current().Output.JSON
	if cfg.SortKeys {
		raw, err := json.Marshal(v)
		if err != nil {
			logging.Error("Failed to encode JSON: %v", err)
			fmt.Fprintln(out.w, "Error encoding JSON output")
			return
		}
		var generic any
		if err := json.Unmarshal(raw, &generic); err == nil {
			v = generic
		}
	}

	encoder := json.NewEncoder(out.w)
	encoder.SetIndent("", strings.Repeat(" ", cfg.Indent))
	if err := encoder.Encode(v); err != nil {
		logging.Error("Failed to encode JSON: %v", err)
		fmt.Fprintln(out.w, "Error encoding JSON output")
	}
}

// UseJSON reports whether the resolved output format is JSON. Handlers use it
// to branch between typed table rendering and raw document output.
func UseJSON() bool {
	return session.Current().Output.Format == settings.FormatJSON
}

// namedColors maps the color names accepted in output.table.row_style to
// ANSI-256 codes lipgloss understands. Unknown names pass through unchanged
// so hex values ("#7F6DFF") and raw ANSI numbers keep working.
var namedColors = map[string]string{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",
	"gray":    "8",
	"grey":    "8",
	"dim":     "8",
	"bright":  "15",
}

// rowStyles resolves the configured alternating row style pair into lipgloss
// styles. Returns nil when no row style is configured, which renders plain
// unstyled rows.
func rowStyles() []lipgloss.Style {
	pair := session.Current().Output.Table.RowStyle
	if pair == nil {
		return nil
	}
	styles := make([]lipgloss.Style, 2)
	for i, name := range pair {
		color := name
		if mapped, ok := namedColors[strings.ToLower(name)]; ok {
			color = mapped
		}
		styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}
	return styles
}

// Table renders a header and rows through tabwriter, applying the alternating
// row styles after column alignment so styling never skews the tab stops.
func Table(header []string, rows [][]string) {
	out := newOutput()
	defer out.close()

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()

	styles := rowStyles()
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	for i, line := range lines {
		if i == 0 || styles == nil {
			fmt.Fprintln(out.w, line)
			continue
		}
		fmt.Fprintln(out.w, styles[(i-1)%2].Render(line))
	}
}

// ExtraAttrsSummary flattens an artifact's nested extra attributes into a
// single table cell, descending at most maxDepth map levels. Values below the
// depth limit collapse to "...". Depth 0 hides the attributes entirely. In
// compact mode nested entries are joined without spacing.
func ExtraAttrsSummary(attrs map[string]any, maxDepth int, compact bool) string {
	if len(attrs) == 0 || maxDepth <= 0 {
		return ""
	}
	sep := ", "
	if compact {
		sep = ","
	}
	return joinAttrs(attrs, maxDepth, sep)
}

func joinAttrs(attrs map[string]any, depth int, sep string) string {
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", key, renderAttr(attrs[key], depth-1, sep)))
	}
	return strings.Join(parts, sep)
}

func renderAttr(value any, depth int, sep string) string {
	switch v := value.(type) {
	case map[string]any:
		if depth <= 0 {
			return "..."
		}
		return "{" + joinAttrs(v, depth, sep) + "}"
	case []any:
		if depth <= 0 {
			return "..."
		}
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = renderAttr(item, depth, sep)
		}
		return "[" + strings.Join(parts, sep) + "]"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Success prints a confirmation line for mutating operations.
func Success(format string, args ...any) {
	logging.Success(format, args...)
}
