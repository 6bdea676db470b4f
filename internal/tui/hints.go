package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Footer hints are written as "key action | key action | ...".
const (
	hintSeparator = "|"
	hintGap       = "  "

	// compactHintLimit caps the hints kept when the full set cannot fit.
	compactHintLimit = 7
)

// hintPriority orders the keys kept first when hints are compacted.
var hintPriority = []string{"PgUp/PgDn", "Home/End", "?", "q", "esc", ":", "/", "Tab", "s"}

// styledHelpResponsive renders raw hint text in at most maxLines lines of
// width cells. When the full set does not fit, the most useful hints are
// kept and the rest dropped.
func styledHelpResponsive(raw string, width, maxLines int) string {
	if !strings.Contains(raw, hintSeparator) {
		return activeTheme.DimText.Render(raw)
	}
	segments := hintSegments(raw)
	if width <= 0 {
		return strings.Join(renderHints(segments), hintGap)
	}
	maxLines = max(1, maxLines)

	if lines := flowHints(renderHints(segments), width); len(lines) <= maxLines {
		return strings.Join(lines, "\n")
	}
	lines := flowHints(renderHints(compactHelpSegments(segments)), width)
	return strings.Join(lines[:min(len(lines), maxLines)], "\n")
}

func hintSegments(raw string) []string {
	var out []string
	for _, seg := range strings.Split(raw, hintSeparator) {
		if seg = strings.TrimSpace(seg); seg != "" {
			out = append(out, seg)
		}
	}
	return out
}

func renderHints(segments []string) []string {
	out := make([]string, 0, len(segments))
	for _, seg := range segments {
		key, action := splitKeyAction(seg)
		if action == "" {
			out = append(out, activeTheme.DimText.Render(seg))
			continue
		}
		out = append(out, activeTheme.BoldPrimary.Render(key)+" "+activeTheme.DimText.Render(action))
	}
	return out
}

// flowHints fills lines left to right. A hint wider than the line is
// truncated on a line of its own.
func flowHints(hints []string, width int) []string {
	var lines []string
	var line strings.Builder
	lineWidth := 0
	gapWidth := ansi.StringWidth(hintGap)

	for _, h := range hints {
		h = clipCells(h, width)
		w := ansi.StringWidth(h)
		if lineWidth > 0 && lineWidth+gapWidth+w > width {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		if lineWidth > 0 {
			line.WriteString(hintGap)
			lineWidth += gapWidth
		}
		line.WriteString(h)
		lineWidth += w
	}
	if lineWidth > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// compactHelpSegments keeps up to compactHintLimit hints, priority keys
// first, then the rest in their original order.
func compactHelpSegments(segments []string) []string {
	clean := hintSegments(strings.Join(segments, hintSeparator))
	if len(clean) <= 5 {
		return clean
	}

	picked := make([]bool, len(clean))
	out := make([]string, 0, compactHintLimit)
	pick := func(i int) {
		if picked[i] || len(out) >= compactHintLimit {
			return
		}
		picked[i] = true
		out = append(out, clean[i])
	}

	for _, want := range hintPriority {
		for i, seg := range clean {
			if key, _ := splitKeyAction(seg); key == want {
				pick(i)
				break
			}
		}
	}
	for i := range clean {
		pick(i)
	}
	return out
}

// splitKeyAction splits "key action words" at the first space.
func splitKeyAction(seg string) (string, string) {
	key, action, _ := strings.Cut(strings.TrimSpace(seg), " ")
	return key, strings.TrimSpace(action)
}
