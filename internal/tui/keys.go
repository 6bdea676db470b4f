package tui

import "charm.land/bubbles/v2/key"

// ── Global Bindings ─────────────────────────────────────────────────

type PagerGlobalKeyMap struct {
	Quit     key.Binding
	Help     key.Binding
	Mouse    key.Binding
	Sidebar  key.Binding
	Focus    key.Binding
	Filter   key.Binding
	Goto     key.Binding
	Reload   key.Binding
	NextFile key.Binding
	PrevFile key.Binding
}

var PagerGlobalKeys = PagerGlobalKeyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "Quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "Keys"),
	),
	Mouse: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "Mouse/copy mode"),
	),
	Sidebar: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "Toggle file list"),
	),
	Focus: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "Switch pane"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "Filter files"),
	),
	Goto: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "Go to line"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "Reload"),
	),
	NextFile: key.NewBinding(
		key.WithKeys("n", "]"),
		key.WithHelp("n", "Next file"),
	),
	PrevFile: key.NewBinding(
		key.WithKeys("p", "["),
		key.WithHelp("p", "Prev file"),
	),
}

// ── Paging Bindings ─────────────────────────────────────────────────

// PagerPagingKeys documents the animated paging keys. They are matched by
// the scroll router before any key map, so these bindings only feed help.
type PagerPagingKeyMap struct {
	PageDown key.Binding
	PageUp   key.Binding
	Home     key.Binding
	End      key.Binding
}

var PagerPagingKeys = PagerPagingKeyMap{
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("PgDn", "Page down (hold to speed up)"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("PgUp", "Page up (hold to speed up)"),
	),
	Home: key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("Home", "Jump to top"),
	),
	End: key.NewBinding(
		key.WithKeys("end"),
		key.WithHelp("End", "Jump to bottom"),
	),
}

// ── Document Bindings ───────────────────────────────────────────────

type PagerDocumentKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	HalfDown key.Binding
	HalfUp   key.Binding
	Top      key.Binding
	Bottom   key.Binding
}

var PagerDocumentKeys = PagerDocumentKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "Scroll up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "Scroll down"),
	),
	HalfDown: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("^d", "Half-page down"),
	),
	HalfUp: key.NewBinding(
		key.WithKeys("ctrl+u"),
		key.WithHelp("^u", "Half-page up"),
	),
	Top: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "Top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G"),
		key.WithHelp("G", "Bottom"),
	),
}

// ── Sidebar Bindings ────────────────────────────────────────────────

type PagerSidebarKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Open key.Binding
	Back key.Binding
}

var PagerSidebarKeys = PagerSidebarKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "Move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "Move down"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter", "l"),
		key.WithHelp("Enter", "Open file"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "h"),
		key.WithHelp("esc", "Back to document"),
	),
}

// ── Filter Bindings ─────────────────────────────────────────────────

type PagerFilterKeyMap struct {
	Clear key.Binding
	Apply key.Binding
}

var PagerFilterKeys = PagerFilterKeyMap{
	Clear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "Clear filter"),
	),
	Apply: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "Keep filter"),
	),
}

// ── Help Overlay Bindings ───────────────────────────────────────────

type PagerHelpOverlayKeyMap struct {
	Close key.Binding
	Up    key.Binding
	Down  key.Binding
}

var PagerHelpOverlayKeys = PagerHelpOverlayKeyMap{
	Close: key.NewBinding(
		key.WithKeys("?", "esc", "q"),
		key.WithHelp("?/esc", "Close"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "Scroll up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "Scroll down"),
	),
}

// ── Helper Functions ────────────────────────────────────────────────

// bindingsToHelpEntries converts key bindings to HelpEntry slices, filtering disabled bindings.
func bindingsToHelpEntries(bindings ...key.Binding) []HelpEntry {
	entries := make([]HelpEntry, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		if h.Key == "" {
			continue
		}
		entries = append(entries, HelpEntry{Key: h.Key, Desc: h.Desc})
	}
	return entries
}
