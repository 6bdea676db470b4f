package tui

import (
	"path/filepath"
	"strings"

	"charm.land/bubbles/v2/viewport"
)

// Sidebar auto-visibility constants.
const (
	sidebarAutoThreshold = 100
	sidebarMinWidth      = 60
)

// sidebar lists the walked files. It scrolls independently of its cursor.
type sidebar struct {
	visible        bool
	manualOverride bool

	files []string
	// shown indexes into files; it is the filtered, display-ordered list.
	shown  []int
	cursor int
	root   string

	viewport      viewport.Model
	viewportReady bool
}

func newSidebar(mode string) sidebar {
	s := sidebar{}
	switch mode {
	case "show":
		s.manualOverride = true
		s.visible = true
	case "hide":
		s.manualOverride = true
		s.visible = false
	}
	return s
}

// shouldShow returns true if the sidebar should render at the given terminal width.
func (s *sidebar) shouldShow(termWidth int) bool {
	if termWidth < sidebarMinWidth || len(s.files) < 2 {
		return false
	}
	if s.manualOverride {
		return s.visible
	}
	return termWidth >= sidebarAutoThreshold
}

// toggle flips the sidebar visibility manually.
func (s *sidebar) toggle(termWidth int) {
	if !s.manualOverride {
		s.manualOverride = true
		// First toggle: invert what auto-mode would do.
		s.visible = termWidth < sidebarAutoThreshold
	} else {
		s.visible = !s.visible
	}
}

// sidebarWidthFor computes the sidebar width including its border (30%, 24..48).
func sidebarWidthFor(width int) int {
	return min(max(width*30/100, 24), 48)
}

func (s *sidebar) setFiles(files []string) {
	s.files = files
	s.root = commonDir(files)
	s.resetFilter()
}

func (s *sidebar) resetFilter() {
	s.shown = make([]int, len(s.files))
	for i := range s.files {
		s.shown[i] = i
	}
	s.cursor = 0
	if s.viewportReady {
		s.viewport.SetYOffset(0)
	}
}

// displayPath is the path shown in the list, relative to the common root.
func (s *sidebar) displayPath(i int) string {
	p := s.files[i]
	if s.root == "" {
		return p
	}
	if rel, err := filepath.Rel(s.root, p); err == nil {
		return rel
	}
	return p
}

// selected returns the path under the cursor.
func (s *sidebar) selected() (string, bool) {
	if s.cursor < 0 || s.cursor >= len(s.shown) {
		return "", false
	}
	return s.files[s.shown[s.cursor]], true
}

// selectPath moves the cursor to path if it is shown.
func (s *sidebar) selectPath(path string) {
	for i, idx := range s.shown {
		if s.files[idx] == path {
			s.cursor = i
			return
		}
	}
}

// ensureViewport creates or resizes the list viewport. Resizing keeps the
// content and offset.
func (s *sidebar) ensureViewport(width, height int) {
	if !s.viewportReady {
		s.viewport = viewport.New()
		s.viewport.MouseWheelEnabled = false
		s.viewportReady = true
	}
	if s.viewport.Width() != width {
		s.viewport.SetWidth(width)
	}
	if s.viewport.Height() != height {
		s.viewport.SetHeight(height)
	}
}

// moveCursor moves the cursor by delta, stopping at either end.
func (s *sidebar) moveCursor(delta int) {
	if len(s.shown) == 0 {
		s.cursor = 0
		return
	}
	s.cursor = min(max(0, s.cursor+delta), len(s.shown)-1)
}

// keepCursorVisible scrolls the list the minimum needed to show the cursor.
func (s *sidebar) keepCursorVisible() {
	if !s.viewportReady {
		return
	}
	h := s.viewport.Height()
	off := s.viewport.YOffset()
	switch {
	case s.cursor < off:
		s.viewport.SetYOffset(s.cursor)
	case h > 0 && s.cursor >= off+h:
		s.viewport.SetYOffset(s.cursor - h + 1)
	}
}

// overflows reports whether the list is taller than its viewport.
func (s *sidebar) overflows() bool {
	return s.viewportReady && s.viewport.TotalLineCount() > s.viewport.Height()
}

func commonDir(files []string) string {
	if len(files) == 0 {
		return ""
	}
	root := filepath.Dir(files[0])
	for _, f := range files[1:] {
		for root != "." && root != string(filepath.Separator) &&
			!strings.HasPrefix(f, root+string(filepath.Separator)) {
			root = filepath.Dir(root)
		}
	}
	if root == "." {
		return ""
	}
	return root
}
