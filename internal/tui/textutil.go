package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// clipCells cuts s to at most n terminal cells, ending in an ellipsis when
// anything was dropped. Escape sequences do not count toward n.
func clipCells(s string, n int) string {
	switch {
	case n <= 0:
		return ""
	case ansi.StringWidth(s) > n:
		return ansi.Truncate(s, n, "…")
	}
	return s
}

// padCells right-pads s with spaces to n cells. Longer strings are returned as is.
func padCells(s string, n int) string {
	if gap := n - ansi.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
