package tui

import (
	"errors"
	"fmt"
	"path/filepath"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/daptify14/scrollit/internal/document"
	"github.com/daptify14/scrollit/internal/scroll"
	"github.com/daptify14/scrollit/internal/watch"
)

// Update implements tea.Model by dispatching messages to the appropriate handler.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.logMsg(msg)

	var cmd tea.Cmd

	// Cross-cutting messages are handled before the go-to-line form so an
	// animation or a load in flight keeps running while the form is open.
	switch msg := msg.(type) {
	case tea.BackgroundColorMsg:
		if m.ui.fixedTheme {
			return m, nil
		}
		SetTheme(ThemeForBackground(msg.IsDark()))
		paintFilterPrompt(&m.filterInput)
		m.syncSidebarContent()
		return m, m.restyleDocumentCmd()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil
	case scroll.FrameMsg, scroll.ResetMsg:
		return m, m.scroll.Update(msg, m.locator())
	case spinner.TickMsg:
		if m.isAnyLoading() {
			m.ui.loadingSpinner, cmd = m.ui.loadingSpinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case filesWalkedMsg:
		return m.handleFilesWalked(msg)
	case documentLoadedMsg:
		return m.handleDocumentLoaded(msg)
	case fileChangedMsg:
		return m.handleFileChanged(msg)
	case watchErrMsg:
		return m.handleWatchErr(msg)
	}

	// Route everything else to the huh form while it is open.
	if m.jump.form != nil {
		return m.handleGotoUpdate(msg)
	}

	switch msg := msg.(type) {
	case tea.MouseMotionMsg:
		return m.handleMouseMotion(msg)
	case tea.MouseClickMsg:
		return m.handleMouseClick(msg)
	case tea.MouseWheelMsg:
		return m.handleMouseWheel(msg)
	case tea.KeyReleaseMsg:
		return m, m.handleNavigationRelease(msg)
	case tea.KeyPressMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// --- Async results ---

func (m Model) handleFilesWalked(msg filesWalkedMsg) (tea.Model, tea.Cmd) {
	m.ui.walking = false
	if msg.err != nil && len(msg.files) == 0 {
		m.ui.message = "Error: " + msg.err.Error()
		return m, nil
	}
	if len(msg.files) == 0 {
		m.ui.message = "No files to page"
		return m, nil
	}

	m.sidebar.setFiles(msg.files)
	m.layout()
	cmd := m.openFile(m.initialFile(msg.files))
	if msg.truncated {
		m.ui.message = fmt.Sprintf("Showing the first %d files", len(msg.files))
	}
	return m, cmd
}

func (m Model) handleDocumentLoaded(msg documentLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen {
		return m, nil
	}

	if msg.err != nil {
		m.doc.loading = false
		m.ui.message = loadErrorMessage(msg.path, msg.err)
		if m.doc.ready {
			// Keep paging the document that is still on screen.
			m.doc.path = m.doc.doc.Path
			m.scroll.Attach()
		}
		m.syncSidebarContent()
		return m, nil
	}

	m.setDocument(msg.doc, msg.lines, msg.reload)
	m.scroll.Attach()
	m.sidebar.selectPath(msg.path)
	m.syncSidebarContent()
	m.sidebar.keepCursorVisible()
	if msg.reload {
		return m, nil
	}
	return m, m.watchDocument(msg.path)
}

func loadErrorMessage(path string, err error) string {
	name := filepath.Base(path)
	switch {
	case errors.Is(err, document.ErrBinary):
		return name + ": binary file not shown"
	case errors.Is(err, document.ErrTooLarge):
		return name + ": file too large"
	case errors.Is(err, document.ErrIsDir):
		return name + ": is a directory"
	}
	return "Error: " + err.Error()
}

// watchDocument points the watcher at path and starts the wait loop once.
func (m *Model) watchDocument(path string) tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	if err := m.watcher.Watch(path); err != nil {
		m.ui.message = "Not watching: " + err.Error()
		return nil
	}
	if m.watching {
		return nil
	}
	m.watching = true
	return waitForChangeCmd(m.watcher)
}

func (m Model) handleFileChanged(msg fileChangedMsg) (tea.Model, tea.Cmd) {
	rearm := waitForChangeCmd(m.watcher)
	if !m.doc.ready || !samePath(msg.event.Path, m.doc.doc.Path) {
		return m, rearm
	}
	if msg.event.Removed {
		m.ui.message = m.doc.doc.Name() + " was removed"
		return m, rearm
	}
	m.ui.message = "Reloaded " + m.doc.doc.Name()
	return m, tea.Batch(rearm, m.reloadFile())
}

func (m Model) handleWatchErr(msg watchErrMsg) (tea.Model, tea.Cmd) {
	if errors.Is(msg.err, watch.ErrClosed) {
		m.watching = false
		return m, nil
	}
	m.ui.message = "Error: " + msg.err.Error()
	return m, waitForChangeCmd(m.watcher)
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

// --- Root key gate ---

func (m Model) handleKeyMsg(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if m.filterInput.Focused() {
		return m.handleFilterKeys(msg)
	}

	if cmd, ok := m.handleNavigationPress(msg); ok {
		return m, cmd
	}

	if m.overlays.showHelp {
		return m.handleHelpOverlayKeys(msg)
	}

	switch {
	case key.Matches(msg, PagerGlobalKeys.Quit):
		m.scroll.Detach()
		return m, tea.Quit
	case key.Matches(msg, PagerGlobalKeys.Help):
		m.overlays.showHelp = true
		m.overlays.helpScroll = 0
		return m, nil
	case key.Matches(msg, PagerGlobalKeys.Mouse):
		m.toggleMouseCapture()
		return m, nil
	case key.Matches(msg, PagerGlobalKeys.Sidebar):
		return m.toggleSidebar()
	case key.Matches(msg, PagerGlobalKeys.Focus):
		return m.cycleFocus()
	case key.Matches(msg, PagerGlobalKeys.Filter):
		if !m.sidebarShown() {
			m.ui.message = "File list hidden (s to show)"
			return m, nil
		}
		m.focus = focusSidebar
		m.syncSidebarContent()
		return m, m.filterInput.Focus()
	case key.Matches(msg, PagerGlobalKeys.Goto):
		return m, m.openGoto()
	case key.Matches(msg, PagerGlobalKeys.Reload):
		return m, m.reloadFile()
	case key.Matches(msg, PagerGlobalKeys.NextFile):
		return m, m.openAdjacent(1)
	case key.Matches(msg, PagerGlobalKeys.PrevFile):
		return m, m.openAdjacent(-1)
	}

	if m.focus == focusSidebar {
		return m.handleSidebarKeys(msg)
	}
	return m.handleDocumentKeys(msg)
}

func (m Model) handleHelpOverlayKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	r, err := m.region(regionHelp)
	switch {
	case key.Matches(msg, PagerHelpOverlayKeys.Close):
		m.overlays.showHelp = false
		m.overlays.helpScroll = 0
	case err != nil:
	case key.Matches(msg, PagerHelpOverlayKeys.Up):
		_ = r.ScrollBy(-1)
	case key.Matches(msg, PagerHelpOverlayKeys.Down):
		_ = r.ScrollBy(1)
	}
	return m, nil
}

func (m Model) handleFilterKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, PagerFilterKeys.Clear):
		m.filterInput.SetValue("")
		m.filterInput.Blur()
		m.applySidebarFilter()
		m.sidebar.selectPath(m.doc.path)
		m.syncSidebarContent()
		m.sidebar.keepCursorVisible()
		return m, nil
	case key.Matches(msg, PagerFilterKeys.Apply):
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	before := m.filterInput.Value()
	m.filterInput, cmd = m.filterInput.Update(msg)
	if m.filterInput.Value() != before {
		m.applySidebarFilter()
	}
	return m, cmd
}

func (m Model) handleSidebarKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, PagerSidebarKeys.Up):
		m.sidebar.moveCursor(-lineStep(msg))
	case key.Matches(msg, PagerSidebarKeys.Down):
		m.sidebar.moveCursor(lineStep(msg))
	case key.Matches(msg, PagerSidebarKeys.Open):
		m.focus = focusDocument
		cmd := m.openSelected()
		m.syncSidebarContent()
		return m, cmd
	case key.Matches(msg, PagerSidebarKeys.Back):
		m.focus = focusDocument
	default:
		return m, nil
	}
	m.syncSidebarContent()
	m.sidebar.keepCursorVisible()
	return m, nil
}

func (m Model) handleDocumentKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if !m.doc.ready {
		return m, nil
	}
	vp := &m.doc.viewport
	switch {
	case key.Matches(msg, PagerDocumentKeys.Up):
		vp.ScrollUp(lineStep(msg))
	case key.Matches(msg, PagerDocumentKeys.Down):
		vp.ScrollDown(lineStep(msg))
	case key.Matches(msg, PagerDocumentKeys.HalfDown):
		return m, m.animateDocumentBy(max(1, vp.Height()/2))
	case key.Matches(msg, PagerDocumentKeys.HalfUp):
		return m, m.animateDocumentBy(-max(1, vp.Height()/2))
	case key.Matches(msg, PagerDocumentKeys.Top):
		m.jumpDocument(scroll.KeyHome)
		return m, nil
	case key.Matches(msg, PagerDocumentKeys.Bottom):
		m.jumpDocument(scroll.KeyEnd)
		return m, nil
	}
	return m, nil
}

// animateDocumentBy animates the document delta rows from its current
// offset, or from the pending target while an animation runs.
func (m *Model) animateDocumentBy(delta int) tea.Cmd {
	r, err := m.region(regionDocument)
	if err != nil {
		return nil
	}
	from := m.doc.viewport.YOffset()
	if m.scroll.Animating() {
		from = m.scroll.Target()
	}
	return m.scroll.AnimateTo(r, from+delta)
}

// jumpDocument moves the document like Home or End, whatever the pointer
// hovers. g and G report no release, so they bypass acceleration.
func (m *Model) jumpDocument(k scroll.Key) {
	if r, err := m.region(regionDocument); err == nil {
		m.scroll.Jump(k, r)
	}
}

// --- Sidebar and focus ---

func (m Model) toggleSidebar() (tea.Model, tea.Cmd) {
	if len(m.sidebar.files) < 2 {
		m.ui.message = "Only one file open"
		return m, nil
	}
	m.sidebar.toggle(m.width)
	m.layout()
	if !m.sidebarShown() && m.filterInput.Focused() {
		m.filterInput.Blur()
	}
	return m, nil
}

func (m Model) cycleFocus() (tea.Model, tea.Cmd) {
	if !m.sidebarShown() {
		m.focus = focusDocument
		return m, nil
	}
	if m.focus == focusSidebar {
		m.focus = focusDocument
	} else {
		m.focus = focusSidebar
	}
	m.syncSidebarContent()
	return m, nil
}

// openSelected opens the file under the sidebar cursor unless it is
// already open.
func (m *Model) openSelected() tea.Cmd {
	path, ok := m.sidebar.selected()
	if !ok || (path == m.doc.path && (m.doc.ready || m.doc.loading)) {
		return nil
	}
	return m.openFile(path)
}

// openAdjacent opens the next (dir > 0) or previous file in sidebar order,
// wrapping at either end.
func (m *Model) openAdjacent(dir int) tea.Cmd {
	n := len(m.sidebar.shown)
	if n < 2 {
		return nil
	}
	current := -1
	for i, idx := range m.sidebar.shown {
		if m.sidebar.files[idx] == m.doc.path {
			current = i
			break
		}
	}
	next := 0
	if current >= 0 {
		next = ((current+dir)%n + n) % n
	}
	m.sidebar.cursor = next
	cmd := m.openSelected()
	m.sidebar.keepCursorVisible()
	return cmd
}
