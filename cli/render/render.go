// Package render provides centralized output rendering for the sceneqc CLI.
//
// Format selection rules:
//   - If output is a TTY, default to table
//   - If output is not a TTY, default to json
//   - --format flag always overrides defaults
//   - Invalid formats are errors
//
// Table output reproduces the host dialog's report semantics: the error
// list, or "No errors detected" when a scan ran clean, or the explicit
// "validation skipped" notice when every check was disabled.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/scenewright/sceneqc/types"
)

// Messages for the non-error scan outcomes.
const (
	// MsgAllDisabled is shown when every check was disabled.
	MsgAllDisabled = "All QC checks are disabled, validation skipped."
	// MsgPassed is shown when at least one check ran and found nothing.
	MsgPassed = "No errors detected. QC successful."
)

// Format represents an output format.
type Format string

// Supported formats.
const (
	FormatJSON  Format = "json"
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
)

// ParseFormat parses a format string, returning an error for invalid formats.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "table":
		return FormatTable, nil
	case "yaml":
		return FormatYAML, nil
	case "":
		return "", nil // Let caller decide default
	default:
		return "", fmt.Errorf("invalid format: %q (must be json, table, or yaml)", s)
	}
}

// Renderer handles output formatting.
type Renderer struct {
	format  Format
	noColor bool
	out     io.Writer
}

// NewRenderer creates a renderer from CLI context.
func NewRenderer(c *cli.Context) (*Renderer, error) {
	format, err := ParseFormat(c.String("format"))
	if err != nil {
		return nil, err
	}

	// Apply default format based on TTY detection
	if format == "" {
		if isTTY(os.Stdout) {
			format = FormatTable
		} else {
			format = FormatJSON
		}
	}

	return &Renderer{
		format:  format,
		noColor: c.Bool("no-color"),
		out:     os.Stdout,
	}, nil
}

// NewRendererWithWriter creates a renderer with a custom writer (for testing).
func NewRendererWithWriter(format Format, noColor bool, out io.Writer) *Renderer {
	return &Renderer{
		format:  format,
		noColor: noColor,
		out:     out,
	}
}

// RenderReport outputs a scan report in the configured format.
func (r *Renderer) RenderReport(rep *types.Report) error {
	switch r.format {
	case FormatJSON:
		return r.renderJSON(rep)
	case FormatYAML:
		return r.renderYAML(rep)
	case FormatTable:
		return r.renderReportTable(rep)
	default:
		return fmt.Errorf("unknown format: %s", r.format)
	}
}

// Render outputs auxiliary response data (version, check list) in the
// configured format.
func (r *Renderer) Render(data any) error {
	switch r.format {
	case FormatJSON:
		return r.renderJSON(data)
	case FormatYAML:
		return r.renderYAML(data)
	case FormatTable:
		return r.renderDataTable(data)
	default:
		return fmt.Errorf("unknown format: %s", r.format)
	}
}

func (r *Renderer) renderJSON(data any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func (r *Renderer) renderYAML(data any) error {
	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	return enc.Encode(data)
}

func (r *Renderer) renderReportTable(rep *types.Report) error {
	fmt.Fprintf(r.out, "QC Report: stage %s (scan %s)\n\n", rep.Stage, rep.ScanID)

	switch {
	case rep.Skipped():
		fmt.Fprintln(r.out, r.style(warnStyle, MsgAllDisabled))
		return nil
	case rep.Passed():
		fmt.Fprintln(r.out, r.style(passStyle, MsgPassed))
	default:
		for _, msg := range rep.Messages() {
			fmt.Fprintln(r.out, r.style(failStyle, msg))
		}
	}

	fmt.Fprintln(r.out)
	w := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "checks run:\t%s\n", joinChecks(rep.ChecksRun))
	fmt.Fprintf(w, "errors:\t%d\n", len(rep.Errors))
	fmt.Fprintf(w, "prims visited:\t%d\n", rep.Summary.PrimsVisited)
	fmt.Fprintf(w, "attrs checked:\t%d\n", rep.Summary.AttrsChecked)
	fmt.Fprintf(w, "attrs skipped:\t%d\n", rep.Summary.AttrsSkipped)
	return w.Flush()
}

func (r *Renderer) renderDataTable(data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		// Not an object; print as-is.
		fmt.Fprintf(r.out, "%v\n", data)
		return nil
	}

	w := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	for _, key := range sortedKeys(fields) {
		fmt.Fprintf(w, "%s:\t%s\n", key, formatValue(fields[key]))
	}
	return w.Flush()
}

func joinChecks(checks []types.Check) string {
	if len(checks) == 0 {
		return "(none)"
	}
	names := make([]string, len(checks))
	for i, c := range checks {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func formatValue(v any) string {
	switch val := v.(type) {
	case []any:
		parts := make([]string, len(val))
		for i, e := range val {
			parts[i] = fmt.Sprintf("%v", e)
		}
		return strings.Join(parts, ", ")
	case map[string]any:
		return fmt.Sprintf("{%d fields}", len(val))
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Table output colors. --no-color disables these; TUI mode has its own
// styling and is unaffected.
var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
)

func (r *Renderer) style(s lipgloss.Style, msg string) string {
	if r.noColor {
		return msg
	}
	return s.Render(msg)
}

// isTTY returns true if the writer is a TTY.
func isTTY(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
