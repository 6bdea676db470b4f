package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/daptify14/scrollit/internal/scroll"
)

// now is swapped in tests.
var now = time.Now

// heldLineStep is the rows a held j/k moves per repeat.
const heldLineStep = 3

// lineStep is the rows a line key moves. Held keys move faster; paging
// keys have their own acceleration in the scroll controller.
func lineStep(msg tea.KeyPressMsg) int {
	if msg.IsRepeat {
		return heldLineStep
	}
	return 1
}

// textEntryActive reports whether a text control owns the keyboard. Paging
// keys then belong to that control and never reach the scroll controller.
func (m Model) textEntryActive() bool {
	return m.filterInput.Focused() || m.jump.form != nil
}

// navigationKey maps a key event to a paging key. Modified keys such as
// ctrl+pgdown are not paging keys.
func navigationKey(k tea.Key) (scroll.Key, bool) {
	return scroll.ParseKey(k.String())
}

// handleNavigationPress feeds a paging key to the controller. It reports
// whether the key was consumed.
func (m *Model) handleNavigationPress(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	if m.textEntryActive() {
		return nil, false
	}
	k, ok := navigationKey(msg.Key())
	if !ok {
		return nil, false
	}
	r, ok := m.resolveActiveRegion()
	if !ok {
		return nil, true
	}
	return m.scroll.KeyDown(k, r, now()), true
}

func (m *Model) handleNavigationRelease(msg tea.KeyReleaseMsg) tea.Cmd {
	if m.textEntryActive() {
		return nil
	}
	k, ok := navigationKey(msg.Key())
	if !ok {
		return nil
	}
	return m.scroll.KeyUp(k)
}

// resolveActiveRegion picks the region a paging key acts on: the help
// overlay while it is open, else a scrollable pane under the pointer, else
// the focused pane, else the document.
func (m *Model) resolveActiveRegion() (scroll.Region, bool) {
	if m.overlays.showHelp {
		r, err := m.region(regionHelp)
		return r, err == nil
	}
	if r, ok := m.findHoveredScrollable(); ok {
		return r, true
	}
	if m.focus == focusSidebar {
		if r, err := m.region(regionSidebar); err == nil {
			return r, true
		}
	}
	r, err := m.region(regionDocument)
	return r, err == nil
}

// findHoveredScrollable returns the pane under the pointer when that pane
// is visible and its content overflows. The document pane is never
// returned here; it is the fallback.
func (m *Model) findHoveredScrollable() (scroll.Region, bool) {
	if !m.ui.mouseCapture || !m.pointer.known || !m.sidebarShown() {
		return nil, false
	}
	if !m.inSidebarList(m.pointer.x, m.pointer.y) || !m.sidebar.overflows() {
		return nil, false
	}
	r, err := m.region(regionSidebar)
	return r, err == nil
}
