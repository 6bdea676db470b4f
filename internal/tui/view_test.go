package tui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

func TestViewEnablesAltScreenAndMouseCaptureByDefault(t *testing.T) {
	m := newTestModel()
	v := m.View()

	if !v.AltScreen {
		t.Fatalf("expected AltScreen=true")
	}
	if v.MouseMode != tea.MouseModeAllMotion {
		t.Fatalf("expected MouseModeAllMotion for hover paging, got %v", v.MouseMode)
	}
	if !v.KeyboardEnhancements.ReportEventTypes {
		t.Fatalf("expected KeyboardEnhancements.ReportEventTypes=true")
	}
}

func TestViewDisablesMouseCaptureWhenToggledOff(t *testing.T) {
	m := newTestModel()
	m.ui.mouseCapture = false
	v := m.View()

	if v.MouseMode != tea.MouseModeNone {
		t.Fatalf("expected MouseModeNone, got %v", v.MouseMode)
	}
	if !v.KeyboardEnhancements.ReportEventTypes {
		t.Fatalf("expected KeyboardEnhancements.ReportEventTypes=true")
	}
}

func TestViewDoesNotForceBackgroundColor(t *testing.T) {
	m := newTestModel()
	v := m.View()

	if v.BackgroundColor != nil {
		t.Fatalf("expected BackgroundColor=nil to inherit terminal background, got %v", v.BackgroundColor)
	}
}

func TestViewFitsTerminal(t *testing.T) {
	tests := []struct {
		name string
		opts []TestModelOption
	}{
		{name: "document only", opts: []TestModelOption{WithDocument("main.go", 200)}},
		{name: "with sidebar", opts: []TestModelOption{WithNumberedFiles(100), WithDocument("docs/file000.txt", 200)}},
		{name: "narrow", opts: []TestModelOption{WithSize(50, 12), WithNumberedFiles(10), WithDocument("docs/file000.txt", 200)}},
		{name: "empty", opts: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(tt.opts...)
			content := m.View().Content

			assertRenderedLinesFitWidth(t, content, m.width)
			if got := strings.Count(content, "\n") + 1; got != m.height {
				t.Fatalf("view has %d lines, want %d", got, m.height)
			}
		})
	}
}

func TestViewShowsDocumentAndBreadcrumb(t *testing.T) {
	m := newTestModel(WithNumberedFiles(3), WithDocument("docs/file001.txt", 50))
	out := ansi.Strip(m.View().Content)

	for _, want := range []string{appName, "file001.txt", "line 1", "Ln 1-36/50"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in view", want)
		}
	}
}

func TestViewShowsPlaceholderWhileLoading(t *testing.T) {
	m := newTestModel(WithNumberedFiles(3))
	m.ui.walking = true
	out := ansi.Strip(m.View().Content)

	if !strings.Contains(out, "Loading...") {
		t.Fatal("expected loading placeholder")
	}
	if !strings.Contains(out, "Scanning files") {
		t.Fatal("expected scanning status")
	}
}

func TestViewShowsMessageWithoutDocument(t *testing.T) {
	m := newTestModel()
	m.ui.message = "No files to page"

	if out := ansi.Strip(m.View().Content); !strings.Contains(out, "No files to page") {
		t.Fatal("expected message placeholder")
	}
}

func TestViewRendersGotoForm(t *testing.T) {
	m := newTestModel(WithDocument("main.go", 200))
	m, _ = sendKey(t, m, runeKey(":"))

	out := ansi.Strip(m.View().Content)
	if !strings.Contains(out, "Go to line") {
		t.Fatal("expected the go-to-line form")
	}
	assertRenderedLinesFitWidth(t, m.View().Content, m.width)
}

func TestViewSidebarMarksOpenFile(t *testing.T) {
	m := newTestModel(WithNumberedFiles(3), WithDocument("docs/file001.txt", 10))
	out := ansi.Strip(m.renderSidebar())

	if !strings.Contains(out, "▸ file001.txt") {
		t.Fatalf("expected open marker on file001.txt, got:\n%s", out)
	}
	if !strings.Contains(out, "3 files") {
		t.Fatal("expected file count row")
	}
}
