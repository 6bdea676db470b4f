package tui

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/daptify14/scrollit/internal/document"
)

const (
	// highlightMaxBytes skips syntax highlighting for larger documents.
	highlightMaxBytes = 1 << 20

	fallbackChromaStyle = "catppuccin-mocha"
)

// highlighter renders source text as ANSI using one chroma style.
type highlighter struct {
	style     *chroma.Style
	formatter chroma.Formatter
}

func newHighlighter(styleName string) highlighter {
	if styleName == "" {
		styleName = fallbackChromaStyle
	}
	h := highlighter{style: styles.Get(styleName), formatter: formatters.Get("terminal256")}
	if h.style == nil {
		h.style = styles.Fallback
	}
	if h.formatter == nil {
		h.formatter = formatters.Fallback
	}
	return h
}

// render colors source with lexer. ok is false when tokenising or
// formatting fails and the caller should keep the plain text.
func (h highlighter) render(source string, lexer chroma.Lexer) (out string, ok bool) {
	it, err := chroma.Coalesce(lexer).Tokenise(nil, source)
	if err != nil {
		return "", false
	}
	var sb strings.Builder
	if err := h.formatter.Format(&sb, h.style, it); err != nil {
		return "", false
	}
	out = sb.String()
	if !strings.HasSuffix(source, "\n") {
		out = strings.TrimRight(out, "\n")
	}
	return out, true
}

// lexerFor matches on the base name first, then on a language name such as
// the one go-enry reports for extensionless scripts.
func lexerFor(path, language string) chroma.Lexer {
	if base := filepath.Base(path); path != "" && base != "." {
		if l := lexers.Match(base); l != nil {
			return l
		}
	}
	if language == "" {
		return nil
	}
	return lexers.Get(language)
}

// renderDocumentLines prepares a document for the viewport. Highlighting
// never changes the line count; if it would, the plain lines win.
func renderDocumentLines(doc document.Document, styleName string) []string {
	if doc.Size > highlightMaxBytes {
		return doc.Lines
	}
	lexer := lexerFor(doc.Path, doc.Language)
	if lexer == nil {
		return doc.Lines
	}
	out, ok := newHighlighter(styleName).render(doc.Text(), lexer)
	if !ok {
		return doc.Lines
	}
	lines := strings.Split(out, "\n")
	if len(lines) != len(doc.Lines) {
		return doc.Lines
	}
	return lines
}
