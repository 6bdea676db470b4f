package tui

import (
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
)

// wheelStep is the rows moved per wheel notch. Wheel scrolling is instant.
const wheelStep = 3

// --- Pointer tracking ---

func (m *Model) trackPointer(mouse tea.Mouse) {
	m.pointer = pointer{x: mouse.X, y: mouse.Y, known: true}
}

func (m Model) handleMouseMotion(msg tea.MouseMotionMsg) (tea.Model, tea.Cmd) {
	m.trackPointer(msg.Mouse())
	return m, nil
}

// --- Mouse click handler ---

func (m Model) handleMouseClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	m.trackPointer(mouse)
	if m.overlays.showHelp || m.filterInput.Focused() || mouse.Button != tea.MouseLeft {
		return m, nil
	}

	switch {
	case m.inSidebarList(mouse.X, mouse.Y):
		return m.handleSidebarClick(mouse.Y)
	case m.inDocument(mouse.X, mouse.Y):
		m.focus = focusDocument
		m.syncSidebarContent()
	}
	return m, nil
}

// handleSidebarClick selects the clicked row. Clicking the selected row
// opens it.
func (m Model) handleSidebarClick(y int) (tea.Model, tea.Cmd) {
	row := y - headerLines - sidebarFilterLines + m.sidebar.viewport.YOffset()
	if row < 0 || row >= len(m.sidebar.shown) {
		return m, nil
	}

	wasSelected := m.focus == focusSidebar && row == m.sidebar.cursor
	m.focus = focusSidebar
	m.sidebar.cursor = row
	m.syncSidebarContent()

	if wasSelected {
		return m, m.openSelected()
	}
	return m, nil
}

// --- Mouse wheel handler ---

func (m Model) handleMouseWheel(msg tea.MouseWheelMsg) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	m.trackPointer(mouse)

	if m.overlays.showHelp {
		if r, err := m.region(regionHelp); err == nil {
			switch mouse.Button {
			case tea.MouseWheelUp:
				_ = r.ScrollBy(-wheelStep)
			case tea.MouseWheelDown:
				_ = r.ScrollBy(wheelStep)
			}
		}
		return m, nil
	}

	switch {
	case m.inSidebarList(mouse.X, mouse.Y) && m.sidebar.viewportReady:
		scrollViewportByMouse(&m.sidebar.viewport, mouse.Button, wheelStep)
	case m.inDocument(mouse.X, mouse.Y) && m.doc.ready:
		scrollViewportByMouse(&m.doc.viewport, mouse.Button, wheelStep)
	}
	return m, nil
}

func scrollViewportByMouse(vp *viewport.Model, btn tea.MouseButton, amount int) bool {
	switch btn {
	case tea.MouseWheelUp:
		vp.ScrollUp(amount)
		return true
	case tea.MouseWheelDown:
		vp.ScrollDown(amount)
		return true
	}
	return false
}
