package tui

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/viewport"

	"github.com/daptify14/scrollit/internal/document"
)

func lineNumberGutter(total int) viewport.GutterFunc {
	w := len(strconv.Itoa(max(1, total)))
	return func(info viewport.GutterContext) string {
		if info.Soft {
			return activeTheme.Gutter.Render(strings.Repeat(" ", w) + " │ ")
		}
		if info.Index >= info.TotalLines {
			return activeTheme.Gutter.Render(fmt.Sprintf("%*s │ ", w, "~"))
		}
		return activeTheme.Gutter.Render(fmt.Sprintf("%*d │ ", w, info.Index+1))
	}
}

func (m *Model) resizeDocument(width, height int) {
	vp := &m.doc.viewport
	if vp.Width() != width {
		vp.SetWidth(width)
	}
	if vp.Height() != height {
		vp.SetHeight(height)
	}
	// Height changes can shrink the valid range.
	vp.SetYOffset(vp.YOffset())
}

// setDocument replaces the shown document. A reload keeps the offset.
func (m *Model) setDocument(doc document.Document, lines []string, reload bool) {
	offset := 0
	if reload && m.doc.ready {
		offset = m.doc.viewport.YOffset()
	}

	m.doc.doc = doc
	m.doc.lines = lines
	m.doc.path = doc.Path
	m.doc.loading = false
	m.doc.ready = true

	m.doc.viewport.LeftGutterFunc = lineNumberGutter(len(lines))
	m.doc.viewport.SetContentLines(lines)
	m.doc.viewport.SetYOffset(offset)
}

// visibleLineRange returns the 1-based first and last shown lines.
func (m Model) visibleLineRange() (first, last, total int) {
	total = len(m.doc.lines)
	if total == 0 {
		return 0, 0, 0
	}
	first = m.doc.viewport.YOffset() + 1
	last = min(total, first+m.doc.viewport.Height()-1)
	return first, last, total
}

func newDocumentViewport() viewport.Model {
	vp := viewport.New()
	vp.MouseWheelEnabled = false
	return vp
}
