package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

func TestHelpOverlayRowsDescribePaging(t *testing.T) {
	m := newTestModel(WithDocument("main.go", 10))

	rows := m.helpOverlayRows()
	for _, title := range []string{"Paging", "Global", "Document", "File list"} {
		if !helpRowsContainTitle(rows, title) {
			t.Fatalf("expected %s help section", title)
		}
	}

	paging := rows[0][0]
	if len(paging.Entries) != 4 {
		t.Fatalf("expected four paging keys, got %+v", paging.Entries)
	}
	if !strings.Contains(strings.Join(paging.Notes, " "), "x5") {
		t.Fatalf("expected paging notes to mention the multiplier cap, got %v", paging.Notes)
	}
}

func TestHelpOverlayRowsFollowMouseMode(t *testing.T) {
	m := newTestModel()
	before := mouseEntry(t, m.helpOverlayRows())

	m.toggleMouseCapture()
	after := mouseEntry(t, m.helpOverlayRows())

	if before == after {
		t.Fatalf("expected mouse help label to change with capture mode, both %q", before)
	}
}

func TestHelpOverlayOpensAndCloses(t *testing.T) {
	m := newTestModel(WithDocument("main.go", 10))

	m, _ = sendKey(t, m, runeKey("?"))
	if !m.overlays.showHelp {
		t.Fatal("expected ? to open help")
	}
	if !strings.Contains(ansi.Strip(m.View().Content), "Paging") {
		t.Fatal("expected help overlay to render")
	}

	m, cmd := sendKey(t, m, runeKey("q"))
	if m.overlays.showHelp {
		t.Fatal("expected q to close help")
	}
	if isQuitCmd(cmd) {
		t.Fatal("q should close help before it quits")
	}
}

func TestBuildHelpOverlayResponsiveAndScrollable(t *testing.T) {
	entries := make([]HelpEntry, 30)
	for i := range entries {
		n := i + 1
		entries[i] = HelpEntry{
			Key:  fmt.Sprintf("%02d", n),
			Desc: fmt.Sprintf("item %02d", n),
		}
	}

	rows := [][]HelpSection{
		{
			{
				Title:   "Long Section",
				Entries: entries,
			},
		},
	}
	footer := "↑/↓ scroll | ?/esc close"

	maxScroll := helpOverlayMaxScroll(70, 12, footer, rows...)
	if maxScroll <= 0 {
		t.Fatalf("expected positive max scroll for constrained viewport")
	}

	top := buildHelpOverlay(70, 12, 0, footer, rows...)
	next := buildHelpOverlay(70, 12, 1, footer, rows...)
	bottom := buildHelpOverlay(70, 12, maxScroll, footer, rows...)

	assertRenderedLinesFitWidth(t, top, 70)
	assertRenderedLinesFitWidth(t, next, 70)
	assertRenderedLinesFitWidth(t, bottom, 70)

	if top == bottom {
		t.Fatalf("expected different overlay rendering when scrolled")
	}
	if top == next {
		t.Fatalf("expected one-line scroll step to change overlay output")
	}
	if !strings.Contains(top, "item 01") {
		t.Fatalf("expected first item near top of unscrolled overlay")
	}
	if strings.Contains(bottom, "item 01") {
		t.Fatalf("expected scrolled overlay to move past first item")
	}
}

func TestFooterHintFollowsFocus(t *testing.T) {
	m := newTestModel(WithNumberedFiles(5), WithDocument("docs/file000.txt", 10), WithSidebarVisible())

	if hint := m.footerHint(); !strings.Contains(hint, "PgUp/PgDn page") {
		t.Fatalf("expected paging hint for document focus, got %q", hint)
	}

	m, _ = sendKey(t, m, specialKey(tea.KeyTab))
	if hint := m.footerHint(); !strings.Contains(hint, "enter open") {
		t.Fatalf("expected open hint for sidebar focus, got %q", hint)
	}

	m, _ = sendKey(t, m, runeKey("/"))
	if hint := m.footerHint(); !strings.Contains(hint, "esc clear") {
		t.Fatalf("expected filter hint while filtering, got %q", hint)
	}
}

func TestStyledHelpResponsiveFitsWidth(t *testing.T) {
	raw := newTestModel().footerHint()

	for _, width := range []int{120, 90, 70, 48, 34} {
		out := styledHelpResponsive(raw, width, 1)
		if strings.Contains(out, "\n") {
			t.Fatalf("expected a single help line at width %d, got:\n%s", width, out)
		}
		if strings.TrimSpace(ansi.Strip(out)) == "" {
			t.Fatalf("expected non-empty help line at width %d", width)
		}
		assertRenderedLinesFitWidth(t, out, width)
	}
}

func TestCompactHelpSegmentsRetainsPaging(t *testing.T) {
	segments := []string{
		"↑/↓ move",
		"enter open",
		"PgUp/PgDn page",
		"Home/End top/bottom",
		": line",
		"/ filter",
		"Tab pane",
		"s sidebar",
		"m mouse",
		"? keys",
		"q quit",
	}

	compact := compactHelpSegments(segments)

	assertSegmentWithKey := func(key string) {
		t.Helper()
		for _, seg := range compact {
			k, _ := splitKeyAction(seg)
			if k == key {
				return
			}
		}
		t.Fatalf("expected compact hints to include key %q; got %v", key, compact)
	}

	assertSegmentWithKey("PgUp/PgDn")
	assertSegmentWithKey("Home/End")
	assertSegmentWithKey("?")
	assertSegmentWithKey("q")
}

func mouseEntry(t *testing.T, rows [][]HelpSection) string {
	t.Helper()
	for _, row := range rows {
		for _, section := range row {
			for _, entry := range section.Entries {
				if entry.Key == "m" {
					return entry.Desc
				}
			}
		}
	}
	t.Fatal("expected an m entry in the help overlay")
	return ""
}

func helpRowsContainTitle(rows [][]HelpSection, title string) bool {
	for _, row := range rows {
		for _, section := range row {
			if section.Title == title {
				return true
			}
		}
	}
	return false
}
