package tui

// --- Layout Calculations ---

// Layout constants shared between rendering and mouse hit-testing.
const (
	// headerLines is breadcrumb + separator.
	headerLines = 2

	// footerLines is status bar + help line.
	footerLines = 2

	// sidebarFilterLines is the filter row above the file list.
	sidebarFilterLines = 1
)

// bodyHeight is the height of the document and sidebar panes.
func (m Model) bodyHeight() int {
	if m.height == 0 {
		return 0
	}
	return max(1, m.height-headerLines-footerLines)
}

// sidebarShown reports whether the sidebar is on screen.
func (m Model) sidebarShown() bool {
	return m.sidebar.shouldShow(m.width)
}

// sidebarOuterWidth is the sidebar width including its right border, or 0.
func (m Model) sidebarOuterWidth() int {
	if !m.sidebarShown() {
		return 0
	}
	return sidebarWidthFor(m.width)
}

// sidebarListWidth is the usable width of a sidebar row.
func (m Model) sidebarListWidth() int {
	return max(1, m.sidebarOuterWidth()-sidebarFrameWidth)
}

func (m Model) sidebarListHeight() int {
	return max(1, m.bodyHeight()-sidebarFilterLines)
}

func (m Model) documentWidth() int {
	return max(1, m.effectiveWidth()-m.sidebarOuterWidth())
}

// inSidebarList reports whether a cell lies on the sidebar file list.
func (m Model) inSidebarList(x, y int) bool {
	if !m.sidebarShown() {
		return false
	}
	top := headerLines + sidebarFilterLines
	return x >= 0 && x < m.sidebarOuterWidth() &&
		y >= top && y < top+m.sidebarListHeight()
}

// inDocument reports whether a cell lies on the document pane.
func (m Model) inDocument(x, y int) bool {
	return x >= m.sidebarOuterWidth() && y >= headerLines && y < headerLines+m.bodyHeight()
}

func (m Model) effectiveWidth() int {
	if m.width == 0 {
		return 80
	}
	return m.width
}

func (m Model) effectiveHeight() int {
	if m.height == 0 {
		return 24
	}
	return m.height
}

// layout sizes both viewports for the current terminal.
func (m *Model) layout() {
	if m.height == 0 {
		return
	}
	m.resizeDocument(m.documentWidth(), m.bodyHeight())
	if m.sidebarShown() {
		m.sidebar.ensureViewport(m.sidebarListWidth(), m.sidebarListHeight())
		m.syncSidebarContent()
	} else if m.focus == focusSidebar {
		m.focus = focusDocument
	}
}
