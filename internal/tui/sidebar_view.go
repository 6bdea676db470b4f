package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// sidebarFrameWidth is the border plus padding around the list.
const sidebarFrameWidth = 2

// syncSidebarContent re-renders the list rows into the sidebar viewport.
// Call it whenever the files, filter, cursor, or width change.
func (m *Model) syncSidebarContent() {
	if !m.sidebar.viewportReady {
		return
	}
	width := m.sidebarListWidth()
	rows := make([]string, 0, len(m.sidebar.shown))
	for i, idx := range m.sidebar.shown {
		rows = append(rows, m.renderSidebarRow(idx, i == m.sidebar.cursor, width))
	}
	if len(rows) == 0 {
		rows = append(rows, activeTheme.DimText.Render("No matches"))
	}
	m.sidebar.viewport.SetContentLines(rows)
}

func (m Model) renderSidebarRow(idx int, selected bool, width int) string {
	path := m.sidebar.files[idx]
	name := m.sidebar.displayPath(idx)
	open := path == m.doc.path

	marker := "  "
	if open {
		marker = activeTheme.AccentFg.Render("▸ ")
	}
	icon := iconPrefix(path, selected, m.iconMode)
	label := clipCells(name, max(1, width-lipgloss.Width(marker)-lipgloss.Width(icon)))

	switch {
	case selected && m.focus == focusSidebar:
		return marker + activeTheme.Selected.Render(padCells(icon+label, width-lipgloss.Width(marker)))
	case selected:
		return marker + activeTheme.BoldOnly.Render(icon+label)
	case open:
		return marker + icon + activeTheme.PrimaryFg.Render(label)
	default:
		return marker + icon + activeTheme.Normal.Render(label)
	}
}

func (m Model) renderSidebar() string {
	width := m.sidebarListWidth()

	var filterRow string
	switch {
	case m.filterInput.Focused() || m.filterInput.Value() != "":
		filterRow = m.filterInput.View()
	default:
		filterRow = activeTheme.DimText.Render(fmt.Sprintf("%d files", len(m.sidebar.files)))
		if len(m.sidebar.shown) != len(m.sidebar.files) {
			filterRow = activeTheme.DimText.Render(fmt.Sprintf("%d/%d files", len(m.sidebar.shown), len(m.sidebar.files)))
		}
	}
	filterRow = clipCells(filterRow, width)

	var b strings.Builder
	b.WriteString(filterRow)
	b.WriteString("\n")
	b.WriteString(m.sidebar.viewport.View())

	style := activeTheme.Sidebar
	if m.focus == focusSidebar {
		style = style.BorderForeground(activeTheme.Primary)
	}
	return style.Width(m.sidebarOuterWidth()).Height(m.bodyHeight()).Render(b.String())
}
