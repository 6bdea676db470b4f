package tui

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/daptify14/scrollit/internal/document"
	"github.com/daptify14/scrollit/internal/watch"
)

// walkTimeout bounds directory discovery so a huge tree cannot hang startup.
const walkTimeout = 10 * time.Second

func walkFilesCmd(roots []string, opts document.WalkOptions) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), walkTimeout)
		defer cancel()
		res, err := document.Walk(ctx, roots, opts)
		if errors.Is(err, context.DeadlineExceeded) {
			// Keep what was found before the deadline.
			return filesWalkedMsg{files: res.Files, truncated: true, elapsed: res.Elapsed}
		}
		return filesWalkedMsg{files: res.Files, truncated: res.Truncated, elapsed: res.Elapsed, err: err}
	}
}

// loadDocumentCmd reads and highlights path off the update loop. The chroma
// style is captured now so a theme switch mid-load cannot race.
func (m Model) loadDocumentCmd(path string, reload bool) tea.Cmd {
	gen := m.gen
	maxSize := m.opts.MaxFileSize
	styleName := activeTheme.ChromaStyleName
	return func() tea.Msg {
		doc, err := document.Load(path, maxSize)
		if err != nil {
			return documentLoadedMsg{path: path, reload: reload, err: err, gen: gen}
		}
		return documentLoadedMsg{
			path:   path,
			doc:    doc,
			lines:  renderDocumentLines(doc, styleName),
			reload: reload,
			gen:    gen,
		}
	}
}

// restyleDocumentCmd renders the document again in the active theme. It
// always takes a new generation, so a load started under the old theme can
// never land after it: an open in flight is restarted, otherwise the shown
// document is reloaded.
func (m *Model) restyleDocumentCmd() tea.Cmd {
	switch {
	case m.doc.loading:
		m.nextGen()
		return m.loadDocumentCmd(m.doc.path, false)
	case m.doc.ready:
		return m.reloadFile()
	}
	return nil
}

// waitForChangeCmd blocks until the watcher reports a change to the open
// document. Each result re-arms the wait from Update.
func waitForChangeCmd(w *watch.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		ev, err := w.Next(context.Background())
		if err != nil {
			return watchErrMsg{err: err}
		}
		return fileChangedMsg{event: ev}
	}
}
