package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/scenewright/sceneqc/cli/render"
	"github.com/scenewright/sceneqc/types"
)

// ScanFunc runs the enabled validators and returns the scan report.
// Injected so the dialog stays decoupled from scanner construction.
type ScanFunc func(checks types.CheckSet) (*types.Report, error)

// keyMap defines the dialog key bindings.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Run    key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
	Toggle: key.NewBinding(key.WithKeys(" ")),
	Run:    key.NewBinding(key.WithKeys("enter")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c")),
}

// checkRow is one validator checkbox.
type checkRow struct {
	check   types.Check
	label   string
	enabled bool
}

// DialogModel is the Bubble Tea model for the QC dialog: a checkbox per
// validator (all enabled by default, as in the host dialog), a run action,
// and the report list.
type DialogModel struct {
	scan     ScanFunc
	stageID  string
	rows     []checkRow
	cursor   int
	report   *types.Report
	scanErr  error
	quitting bool
}

// scanDoneMsg carries the scan outcome back into the update loop.
type scanDoneMsg struct {
	report *types.Report
	err    error
}

// NewDialogModel creates the dialog with the given initial selection.
// Pass types.AllChecks() for the host dialog's default-checked state.
func NewDialogModel(stageID string, initial types.CheckSet, scan ScanFunc) DialogModel {
	return DialogModel{
		scan:    scan,
		stageID: stageID,
		rows: []checkRow{
			{check: types.CheckReferences, label: "References", enabled: initial.Enabled(types.CheckReferences)},
			{check: types.CheckMaterials, label: "Material Bindings", enabled: initial.Enabled(types.CheckMaterials)},
			{check: types.CheckAttributes, label: "Attributes and Primvars", enabled: initial.Enabled(types.CheckAttributes)},
			{check: types.CheckRender, label: "Render Settings", enabled: initial.Enabled(types.CheckRender)},
		},
	}
}

// Init implements tea.Model.
func (m DialogModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m DialogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case scanDoneMsg:
		m.report = msg.report
		m.scanErr = msg.err
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Toggle):
			m.rows[m.cursor].enabled = !m.rows[m.cursor].enabled
		case key.Matches(msg, keys.Run):
			return m, m.runScan()
		}
	}
	return m, nil
}

// runScan executes the scan as a command, off the update loop.
func (m DialogModel) runScan() tea.Cmd {
	set := m.CheckSet()
	scan := m.scan
	return func() tea.Msg {
		rep, err := scan(set)
		return scanDoneMsg{report: rep, err: err}
	}
}

// CheckSet returns the currently enabled validator selection.
func (m DialogModel) CheckSet() types.CheckSet {
	set := make(types.CheckSet)
	for _, row := range m.rows {
		if row.enabled {
			set[row.check] = true
		}
	}
	return set
}

// View implements tea.Model.
func (m DialogModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("USD Scene QC: " + m.stageID))
	b.WriteString("\n\n")

	for i, row := range m.rows {
		cursor := "  "
		if i == m.cursor {
			cursor = CursorStyle.Render("> ")
		}
		box := "[ ]"
		if row.enabled {
			box = "[x]"
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, box, CheckboxStyle.Render(row.label)))
	}

	b.WriteString("\nQC Report Output:\n\n")
	b.WriteString(m.reportView())

	help := HelpStyle.Render("space toggle · enter run QC · q quit")
	return BoxStyle.Render(b.String()) + "\n" + help
}

// reportView renders the report list with the host dialog's outcome
// semantics.
func (m DialogModel) reportView() string {
	if m.scanErr != nil {
		return ErrorStyle.Render(fmt.Sprintf("scan failed: %v", m.scanErr)) + "\n"
	}
	if m.report == nil {
		return HelpStyle.Render("(not run yet)") + "\n"
	}

	switch {
	case m.report.Skipped():
		return WarningStyle.Render(render.MsgAllDisabled) + "\n"
	case m.report.Passed():
		return SuccessStyle.Render(render.MsgPassed) + "\n"
	default:
		var b strings.Builder
		for _, msg := range m.report.Messages() {
			b.WriteString(ErrorStyle.Render(msg))
			b.WriteString("\n")
		}
		return b.String()
	}
}

// RunDialog starts the interactive QC dialog.
func RunDialog(stageID string, initial types.CheckSet, scan ScanFunc) error {
	p := tea.NewProgram(NewDialogModel(stageID, initial, scan))
	_, err := p.Run()
	return err
}
