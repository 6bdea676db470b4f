package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// gotoLineKey identifies the line input in the go-to-line form.
const gotoLineKey = "line"

// openGoto builds the go-to-line form and returns its Init cmd.
func (m *Model) openGoto() tea.Cmd {
	if !m.doc.ready {
		m.ui.message = "No document open"
		return nil
	}
	m.jump.form = m.buildGotoForm(len(m.doc.lines))
	return m.jump.form.Init()
}

func (m Model) buildGotoForm(total int) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key(gotoLineKey).
				Title("Go to line").
				Placeholder(fmt.Sprintf("1-%d", total)).
				CharLimit(10).
				Validate(func(s string) error {
					_, err := parseLineNumber(s, total)
					return err
				}),
		),
	).WithTheme(huh.ThemeFunc(huh.ThemeCatppuccin)).
		WithWidth(40).
		WithShowHelp(false)
}

// parseLineNumber parses a 1-based line number. Values past the end clamp
// to the last line.
func parseLineNumber(s string, total int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("enter a line number")
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("line must be a positive number")
	}
	return min(n, max(1, total)), nil
}

// handleGotoUpdate routes messages to the go-to-line form and animates the
// document to the chosen line once the form completes.
func (m Model) handleGotoUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.jump.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.jump.form = f
	}

	switch m.jump.form.State {
	case huh.StateCompleted:
		line, err := parseLineNumber(m.jump.form.GetString(gotoLineKey), len(m.doc.lines))
		m.jump.form = nil
		if err != nil {
			m.ui.message = err.Error()
			return m, nil
		}
		r, rerr := m.region(regionDocument)
		if rerr != nil {
			return m, nil
		}
		m.ui.message = fmt.Sprintf("Line %d", line)
		return m, m.scroll.AnimateTo(r, line-1)
	case huh.StateAborted:
		m.jump.form = nil
		return m, nil
	}

	return m, cmd
}

// renderGoto wraps the form in a centered box.
func (m Model) renderGoto() string {
	box := activeTheme.GotoBox.Width(44).Render(m.jump.form.View())
	return lipgloss.Place(m.effectiveWidth(), m.effectiveHeight(), lipgloss.Center, lipgloss.Center, box)
}
