package tui

import (
	"time"

	"github.com/daptify14/scrollit/internal/document"
	"github.com/daptify14/scrollit/internal/watch"
)

type filesWalkedMsg struct {
	files     []string
	truncated bool
	elapsed   time.Duration
	err       error
}

type documentLoadedMsg struct {
	path string
	doc  document.Document
	// lines holds the rendered, possibly highlighted, document lines.
	lines []string
	// reload keeps the scroll offset of the document being replaced.
	reload bool
	err    error
	gen    uint64
}

type fileChangedMsg struct {
	event watch.Event
}

type watchErrMsg struct {
	err error
}
