package tui

import (
	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/viewport"
	"charm.land/huh/v2"

	"github.com/daptify14/scrollit/internal/document"
)

// focusZone tracks which pane has keyboard focus.
type focusZone int

const (
	focusDocument focusZone = iota
	focusSidebar
)

// HelpEntry represents a single key-description pair in the help overlay.
type HelpEntry struct {
	Key  string
	Desc string
}

// HelpSection groups related help entries under a titled section.
type HelpSection struct {
	Title   string
	Entries []HelpEntry
	Notes   []string
}

// pointer is the last mouse position reported by motion events.
type pointer struct {
	x, y  int
	known bool
}

// docPane holds the open document and the viewport showing it.
type docPane struct {
	doc     document.Document
	lines   []string
	ready   bool
	loading bool
	path    string // path being loaded or shown

	viewport viewport.Model
}

// gotoState holds the go-to-line form while it is open.
type gotoState struct {
	form *huh.Form
}

type overlayState struct {
	showHelp   bool
	helpScroll int
}

type uiState struct {
	message        string
	walking        bool
	loadingSpinner spinner.Model
	mouseCapture   bool
	fixedTheme     bool
}
