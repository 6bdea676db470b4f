package tui

import (
	"log/slog"
	"path/filepath"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/daptify14/scrollit/internal/scroll"
	"github.com/daptify14/scrollit/internal/watch"
)

// --- Model ---

// Model is the pager's Bubble Tea model.
type Model struct {
	opts Options
	gen  uint64 // generation counter for stale document loads

	doc     docPane
	sidebar sidebar
	focus   focusZone
	pointer pointer

	// scroll animates paging in whichever region the router picks.
	scroll scroll.Controller

	filterInput textinput.Model
	jump        gotoState
	overlays    overlayState

	watcher  *watch.Watcher
	watching bool

	iconMode IconMode

	width  int
	height int

	ui       uiState
	debugLog *slog.Logger
}

// NewModel creates a pager model with the given options.
func NewModel(opts Options) Model {
	iconMode := opts.IconMode
	if iconMode == "" {
		iconMode = IconModeNerdFont
	}

	fixedTheme := false
	switch opts.Theme {
	case "dark":
		SetTheme(ThemeDark())
		fixedTheme = true
	case "light":
		SetTheme(ThemeLight())
		fixedTheme = true
	}

	scrollOpts := []scroll.Option{scroll.WithSettings(opts.Scroll)}
	if opts.DebugLog != nil {
		scrollOpts = append(scrollOpts, scroll.WithLogger(opts.DebugLog))
	}

	return Model{
		opts:        opts,
		iconMode:    iconMode,
		debugLog:    opts.DebugLog,
		watcher:     opts.Watcher,
		doc:         docPane{viewport: newDocumentViewport()},
		sidebar:     newSidebar(opts.SidebarMode),
		scroll:      scroll.New(scrollOpts...),
		filterInput: newFilterInput(),
		ui: uiState{
			walking:        true,
			loadingSpinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
			mouseCapture:   true,
			fixedTheme:     fixedTheme,
		},
	}
}

// Init implements tea.Model by returning the initial command batch.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.ui.loadingSpinner.Tick, walkFilesCmd(m.roots(), m.opts.Walk)}
	if !m.ui.fixedTheme {
		cmds = append(cmds, tea.RequestBackgroundColor)
	}
	return tea.Batch(cmds...)
}

func (m Model) roots() []string {
	if len(m.opts.Paths) == 0 {
		return []string{"."}
	}
	return m.opts.Paths
}

// initialFile picks the file to open first: the first path argument when it
// names a file, else the first walked file.
func (m Model) initialFile(files []string) string {
	if len(files) == 0 {
		return ""
	}
	if len(m.opts.Paths) > 0 {
		first := filepath.Clean(m.opts.Paths[0])
		for _, f := range files {
			if f == first {
				return f
			}
		}
	}
	return files[0]
}

// isAnyLoading reports whether any async operation needs the spinner active.
func (m Model) isAnyLoading() bool {
	return m.ui.walking || m.doc.loading
}

// openFile starts loading path, replacing the current document. The
// controller stays detached until the new document is ready.
func (m *Model) openFile(path string) tea.Cmd {
	if path == "" {
		return nil
	}
	m.scroll.Detach()
	m.nextGen()
	m.doc.loading = true
	m.doc.path = path
	m.ui.message = ""
	m.syncSidebarContent()
	return tea.Batch(m.ui.loadingSpinner.Tick, m.loadDocumentCmd(path, false))
}

// reloadFile reloads the open document in place.
func (m *Model) reloadFile() tea.Cmd {
	if !m.doc.ready {
		return nil
	}
	m.nextGen()
	return m.loadDocumentCmd(m.doc.doc.Path, true)
}

// nextGen increments the generation counter, used when reloading data.
func (m *Model) nextGen() {
	m.gen++
}

func (m *Model) toggleMouseCapture() {
	m.ui.mouseCapture = !m.ui.mouseCapture
	if m.ui.mouseCapture {
		m.ui.message = "Mouse capture enabled (wheel + hover paging)"
		return
	}
	m.pointer = pointer{}
	m.ui.message = "Mouse capture disabled (drag to select/copy)"
}

// breadcrumbParts returns the breadcrumb trail for the current view.
func (m Model) breadcrumbParts() []string {
	switch {
	case m.doc.path != "" && m.sidebar.root != "":
		if rel, err := filepath.Rel(m.sidebar.root, m.doc.path); err == nil {
			return []string{appName, rel}
		}
	case m.doc.path != "":
		return []string{appName, m.doc.path}
	}
	return []string{appName}
}

// Multiplier exposes the current paging multiplier.
func (m Model) Multiplier() int {
	return m.scroll.Multiplier()
}
