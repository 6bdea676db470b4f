package tui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Help overlay layout.
const (
	helpIndent    = "  "
	helpColumnGap = "    "
	helpKeyGap    = "  "
	helpMaxWidth  = 110
	helpMargin    = 4
)

// helpColumn is a help section laid out as one column of a row.
type helpColumn struct {
	HelpSection
	keyWidth int
	width    int
}

func layoutHelpRow(row []HelpSection) []helpColumn {
	cols := make([]helpColumn, len(row))
	for i, sec := range row {
		c := helpColumn{HelpSection: sec, width: ansi.StringWidth(sec.Title)}
		for _, e := range sec.Entries {
			c.keyWidth = max(c.keyWidth, ansi.StringWidth(e.Key))
		}
		for _, e := range sec.Entries {
			c.width = max(c.width, c.keyWidth+len(helpKeyGap)+ansi.StringWidth(e.Desc))
		}
		for _, n := range sec.Notes {
			c.width = max(c.width, ansi.StringWidth(n))
		}
		cols[i] = c
	}
	return cols
}

func (c helpColumn) entry(i int) string {
	if i >= len(c.Entries) {
		return ""
	}
	e := c.Entries[i]
	return padCells(e.Key, c.keyWidth) + helpKeyGap + e.Desc
}

func (c helpColumn) note(i int) string {
	if i >= len(c.Notes) {
		return ""
	}
	return c.Notes[i]
}

// helpGridLine joins one cell per column. All but the last column are
// padded to their width so the next column lines up.
func helpGridLine(cols []helpColumn, cell func(helpColumn) string) string {
	var b strings.Builder
	b.WriteString(helpIndent)
	for i, c := range cols {
		if i > 0 {
			b.WriteString(helpColumnGap)
		}
		s := cell(c)
		if i < len(cols)-1 {
			s = padCells(s, c.width)
		}
		b.WriteString(s)
	}
	return b.String()
}

// buildHelpOverlayLines lays out rows of help sections side by side,
// followed by the footer.
func buildHelpOverlayLines(footer string, rows ...[]HelpSection) []string {
	var lines []string

	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}

		cols := layoutHelpRow(row)
		entries, notes := 0, 0
		for _, c := range cols {
			entries = max(entries, len(c.Entries))
			notes = max(notes, len(c.Notes))
		}

		lines = append(lines,
			helpGridLine(cols, func(c helpColumn) string { return c.Title }),
			helpGridLine(cols, func(c helpColumn) string { return strings.Repeat("─", c.width) }),
		)
		for i := range entries {
			lines = append(lines, helpGridLine(cols, func(c helpColumn) string { return c.entry(i) }))
		}
		for i := range notes {
			lines = append(lines, helpGridLine(cols, func(c helpColumn) string { return c.note(i) }))
		}
	}

	if footer != "" {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, helpIndent+footer)
	}
	return lines
}

// helpOverlayViewport returns the content area inside the overlay box.
func helpOverlayViewport(width, height int) (contentWidth, contentHeight int) {
	boxWidth := min(max(1, width-helpMargin), helpMaxWidth)
	boxHeight := max(1, height-helpMargin)
	contentWidth = max(1, boxWidth-activeTheme.HelpOverlay.GetHorizontalFrameSize())
	contentHeight = max(1, boxHeight-activeTheme.HelpOverlay.GetVerticalFrameSize())
	return contentWidth, contentHeight
}

func helpOverlayMaxScroll(width, height int, footer string, rows ...[]HelpSection) int {
	_, visible := helpOverlayViewport(width, height)
	return max(0, len(buildHelpOverlayLines(footer, rows...))-visible)
}

// buildHelpOverlay renders the overlay box scrolled to offset and centers
// it on screen.
func buildHelpOverlay(width, height, offset int, footer string, rows ...[]HelpSection) string {
	lines := buildHelpOverlayLines(footer, rows...)
	if len(lines) == 0 {
		lines = []string{helpIndent + "No key help available"}
	}
	contentWidth, visible := helpOverlayViewport(width, height)

	offset = min(max(0, offset), max(0, len(lines)-visible))
	shown := lines[offset:min(offset+visible, len(lines))]

	var b strings.Builder
	for i, line := range shown {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(clipCells(line, contentWidth))
	}
	box := activeTheme.HelpOverlay.Width(contentWidth).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
