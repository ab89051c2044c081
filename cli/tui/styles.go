// Package tui provides the Bubble Tea QC dialog for the sceneqc CLI.
//
// TUI rules:
//   - TUI is opt-in only (--tui flag on scan)
//   - TUI consumes the same report payload as non-TUI rendering
//   - No TUI-exclusive data allowed
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	primaryColor = lipgloss.Color("#7C3AED") // Purple
	successColor = lipgloss.Color("#10B981") // Green
	warningColor = lipgloss.Color("#F59E0B") // Amber
	errorColor   = lipgloss.Color("#EF4444") // Red
	mutedColor   = lipgloss.Color("#6B7280") // Gray
)

// Styles for TUI components.
var (
	// TitleStyle for headers and titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	// CheckboxStyle for the validator selection rows.
	CheckboxStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	// CursorStyle for the selected row marker.
	CursorStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	// SuccessStyle for the clean-scan outcome line.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(successColor)

	// WarningStyle for the validation-skipped outcome line.
	WarningStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	// ErrorStyle for report error lines.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	// BoxStyle for bordered containers.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(1, 2)

	// HelpStyle for help text.
	HelpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)
)
