package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// View implements tea.Model by rendering the current screen state.
func (m Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	if m.ui.mouseCapture {
		// All-motion reporting lets paging keys follow the hovered pane.
		v.MouseMode = tea.MouseModeAllMotion
	} else {
		v.MouseMode = tea.MouseModeNone
	}
	v.KeyboardEnhancements.ReportEventTypes = true

	if m.overlays.showHelp {
		v.Content = m.renderHelp()
		return v
	}

	if m.jump.form != nil {
		v.Content = m.renderGoto()
		return v
	}

	var b strings.Builder
	b.WriteString(renderBreadcrumb(m.breadcrumbParts()...))
	b.WriteString("\n")
	b.WriteString(renderSeparator(m.effectiveWidth()))
	b.WriteString("\n")
	b.WriteString(m.renderBody())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.helpHint(m.footerHint()))
	v.Content = lipgloss.Place(m.effectiveWidth(), m.effectiveHeight(), lipgloss.Left, lipgloss.Top, b.String())
	return v
}

// --- Body ---

func (m Model) renderBody() string {
	doc := m.renderDocumentPane()
	if !m.sidebarShown() {
		return doc
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), doc)
}

func (m Model) renderDocumentPane() string {
	width := m.documentWidth()
	height := max(1, m.bodyHeight())

	if m.doc.ready && m.height > 0 {
		return m.doc.viewport.View()
	}

	var placeholder string
	switch {
	case m.isAnyLoading():
		placeholder = m.ui.loadingSpinner.View() + " Loading..."
	case m.ui.message != "":
		placeholder = activeTheme.DimText.Render(m.ui.message)
	default:
		placeholder = activeTheme.DimText.Render("No file open")
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, placeholder)
}

// --- Status bar ---

func (m Model) renderStatusBar() string {
	width := m.effectiveWidth()
	inner := max(1, width-activeTheme.StatusBar.GetHorizontalFrameSize())

	left := m.statusLeft()
	right := m.statusRight()

	gap := max(0, inner-lipgloss.Width(left)-lipgloss.Width(right))
	middle := ""
	if m.ui.message != "" && gap > 2 {
		middle = "  " + clipCells(m.ui.message, gap-2)
	}
	line := clipCells(left+padCells(middle, gap)+right, inner)
	return activeTheme.StatusBar.Width(width).Render(line)
}

func (m Model) statusLeft() string {
	var b strings.Builder
	if m.isAnyLoading() {
		b.WriteString(m.ui.loadingSpinner.View())
		b.WriteString(" ")
	}
	switch {
	case m.doc.ready:
		b.WriteString(m.doc.doc.Name())
		if lang := m.doc.doc.Language; lang != "" {
			b.WriteString(" · ")
			b.WriteString(lang)
		}
	case m.ui.walking:
		b.WriteString("Scanning files")
	}
	return b.String()
}

func (m Model) statusRight() string {
	var parts []string
	if mult := m.scroll.Multiplier(); mult > 1 {
		parts = append(parts, activeTheme.Badge.Render(fmt.Sprintf("x%d", mult)))
	}
	if first, last, total := m.visibleLineRange(); total > 0 {
		parts = append(parts,
			fmt.Sprintf("Ln %d-%d/%d", first, last, total),
			fmt.Sprintf("%3.f%%", m.doc.viewport.ScrollPercent()*100),
		)
	}
	return strings.Join(parts, "  ")
}

// --- Footer hints ---

func (m Model) footerHint() string {
	switch {
	case m.filterInput.Focused():
		return "type to filter | enter keep | esc clear"
	case m.focus == focusSidebar:
		return "↑/↓ move | enter open | PgUp/PgDn page | esc document | ? keys | q quit"
	default:
		return "PgUp/PgDn page | Home/End top/bottom | : line | / filter | Tab pane | ? keys | q quit"
	}
}

func (m Model) helpHint(raw string) string {
	return styledHelpResponsive(raw, m.effectiveWidth(), 1)
}

// --- Help ---

func (m Model) renderHelp() string {
	return buildHelpOverlay(m.effectiveWidth(), m.effectiveHeight(), m.overlays.helpScroll, m.helpOverlayFooter(), m.helpOverlayRows()...)
}

func (m Model) helpOverlayFooter() string {
	return "PgUp/PgDn page | ↑/↓ scroll | ?/esc close"
}

func (m Model) helpMaxScroll() int {
	return helpOverlayMaxScroll(m.effectiveWidth(), m.effectiveHeight(), m.helpOverlayFooter(), m.helpOverlayRows()...)
}

func (m Model) helpOverlayRows() [][]HelpSection {
	settings := m.scroll.Settings()
	paging := HelpSection{
		Title: "Paging",
		Entries: bindingsToHelpEntries(
			PagerPagingKeys.PageDown,
			PagerPagingKeys.PageUp,
			PagerPagingKeys.Home,
			PagerPagingKeys.End,
		),
		Notes: []string{
			fmt.Sprintf("Repeats within %s speed up to x%d.", settings.ResetWindow, settings.MaxMultiplier),
			"Paging follows the pane under the mouse.",
		},
	}
	global := HelpSection{
		Title: "Global",
		Entries: append(bindingsToHelpEntries(
			PagerGlobalKeys.Focus,
			PagerGlobalKeys.Sidebar,
			PagerGlobalKeys.Filter,
			PagerGlobalKeys.Goto,
			PagerGlobalKeys.NextFile,
			PagerGlobalKeys.PrevFile,
			PagerGlobalKeys.Reload,
		), HelpEntry{"m", m.mouseModeHelpLabel()}, HelpEntry{"q", "Quit"}),
	}
	document := HelpSection{
		Title: "Document",
		Entries: bindingsToHelpEntries(
			PagerDocumentKeys.Up,
			PagerDocumentKeys.Down,
			PagerDocumentKeys.HalfDown,
			PagerDocumentKeys.HalfUp,
			PagerDocumentKeys.Top,
			PagerDocumentKeys.Bottom,
		),
	}
	files := HelpSection{
		Title: "File list",
		Entries: bindingsToHelpEntries(
			PagerSidebarKeys.Up,
			PagerSidebarKeys.Down,
			PagerSidebarKeys.Open,
			PagerSidebarKeys.Back,
		),
		Notes: []string{
			"Shown when more than one file is open.",
		},
	}
	return [][]HelpSection{
		{paging, global},
		{document, files},
	}
}

func (m Model) mouseModeHelpLabel() string {
	if m.ui.mouseCapture {
		return "Mouse on (wheel/hover)"
	}
	return "Copy mode (drag select)"
}
