package tui

import (
	"charm.land/bubbles/v2/textinput"
	"github.com/sahilm/fuzzy"
)

func newFilterInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "fuzzy match paths"
	ti.CharLimit = 120
	ti.SetWidth(20)
	paintFilterPrompt(&ti)
	return ti
}

// paintFilterPrompt colors the prompt from activeTheme. Value, focus and
// cursor are left alone so a theme switch mid-filter is invisible.
func paintFilterPrompt(ti *textinput.Model) {
	s := ti.Styles()
	s.Focused.Prompt, s.Blurred.Prompt = activeTheme.PrimaryFg, activeTheme.PrimaryFg
	ti.SetStyles(s)
}

// applySidebarFilter narrows the sidebar to fuzzy matches of the filter
// input, best match first.
func (m *Model) applySidebarFilter() {
	query := m.filterInput.Value()
	if query == "" {
		m.sidebar.resetFilter()
		m.syncSidebarContent()
		return
	}

	paths := make([]string, len(m.sidebar.files))
	for i := range m.sidebar.files {
		paths[i] = m.sidebar.displayPath(i)
	}

	matches := fuzzy.Find(query, paths)
	shown := make([]int, 0, len(matches))
	for _, match := range matches {
		shown = append(shown, match.Index)
	}
	m.sidebar.shown = shown
	m.sidebar.cursor = 0
	if m.sidebar.viewportReady {
		m.sidebar.viewport.SetYOffset(0)
	}
	m.syncSidebarContent()
}
