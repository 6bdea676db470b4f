package tui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/daptify14/scrollit/internal/document"
	"github.com/daptify14/scrollit/internal/scroll"
)

// ── Model Builder ───────────────────────────────────────────────────

// testModelConfig holds configuration for building a test Model.
// Options populate this struct; newTestModel reads it once to construct
// the Model. This avoids order-dependent option footguns.
type testModelConfig struct {
	width       int
	height      int
	iconMode    IconMode
	sidebarMode string
	files       []string
	docPath     string
	docLines    []string
	postInit    []func(*Model)
}

// TestModelOption configures a test Model via testModelConfig.
type TestModelOption func(*testModelConfig)

func WithSize(w, h int) TestModelOption {
	return func(c *testModelConfig) { c.width = w; c.height = h }
}

func WithIconMode(mode IconMode) TestModelOption {
	return func(c *testModelConfig) { c.iconMode = mode }
}

// WithFiles sets the walked file list.
func WithFiles(files ...string) TestModelOption {
	return func(c *testModelConfig) { c.files = files }
}

// WithNumberedFiles walks n files named file000.txt, file001.txt, ...
func WithNumberedFiles(n int) TestModelOption {
	return func(c *testModelConfig) {
		c.files = make([]string, n)
		for i := range n {
			c.files[i] = fmt.Sprintf("docs/file%03d.txt", i)
		}
	}
}

// WithDocument opens a document with n numbered lines.
func WithDocument(path string, n int) TestModelOption {
	return func(c *testModelConfig) {
		c.docPath = path
		c.docLines = numberedLines(n)
	}
}

func WithSidebarVisible() TestModelOption {
	return func(c *testModelConfig) { c.sidebarMode = "show" }
}

func WithPostInit(fn func(*Model)) TestModelOption {
	return func(c *testModelConfig) { c.postInit = append(c.postInit, fn) }
}

// newTestModel builds a Model the way the program would after the walk and
// the first document load, without running any commands. Scroll ticks
// resolve immediately.
func newTestModel(opts ...TestModelOption) Model {
	cfg := &testModelConfig{
		width:    120,
		height:   40,
		iconMode: IconModeNone,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	m := NewModel(Options{IconMode: cfg.iconMode, SidebarMode: cfg.sidebarMode, Theme: "dark"})
	m.scroll = scroll.New(scroll.WithTicker(immediateTicker))
	m.width = cfg.width
	m.height = cfg.height
	m.ui.walking = false

	files := cfg.files
	if len(files) == 0 && cfg.docPath != "" {
		files = []string{cfg.docPath}
	}
	if len(files) > 0 {
		m.sidebar.setFiles(files)
	}
	m.layout()

	if cfg.docPath != "" {
		doc := document.Document{Path: cfg.docPath, Lines: cfg.docLines}
		m.setDocument(doc, cfg.docLines, false)
		m.sidebar.selectPath(cfg.docPath)
		m.scroll.Attach()
		m.syncSidebarContent()
	}

	for _, fn := range cfg.postInit {
		fn(&m)
	}

	return m
}

func numberedLines(n int) []string {
	lines := make([]string, n)
	for i := range n {
		lines[i] = fmt.Sprintf("line %d", i+1)
	}
	return lines
}

// immediateTicker delivers scheduled messages without waiting.
func immediateTicker(_ time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	return func() tea.Msg { return fn(time.Time{}) }
}

// freezeClock pins the router clock for the duration of the test.
func freezeClock(t *testing.T, at time.Time) *time.Time {
	t.Helper()
	clock := at
	prev := now
	now = func() time.Time { return clock }
	t.Cleanup(func() { now = prev })
	return &clock
}

// ── Key Factories ───────────────────────────────────────────────────

// runeKey creates a tea.KeyPressMsg for a rune string (e.g., "j", "?", "G").
func runeKey(r string) tea.KeyPressMsg {
	runes := []rune(r)
	return tea.KeyPressMsg{Code: runes[0], Text: r}
}

// specialKey creates a tea.KeyPressMsg for a special key code (e.g., tea.KeyPgDown).
func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// ctrlKey creates a tea.KeyPressMsg for a ctrl+key combo (e.g., ctrlKey('d') for ctrl+d).
func ctrlKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code, Mod: tea.ModCtrl}
}

// releaseKey creates a tea.KeyReleaseMsg for a special key code.
func releaseKey(code rune) tea.KeyReleaseMsg {
	return tea.KeyReleaseMsg{Code: code}
}

// ── Dispatch Helpers ────────────────────────────────────────────────

// sendKey dispatches a tea.KeyPressMsg through Model.Update and asserts the
// returned value is a Model.
func sendKey(t *testing.T, m Model, key tea.KeyPressMsg) (Model, tea.Cmd) {
	t.Helper()
	return sendMsg(t, m, key)
}

// sendMsg dispatches any tea.Msg through Model.Update and asserts the
// returned value is a Model.
func sendMsg(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	result, cmd := m.Update(msg)
	updated, ok := result.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want tui.Model", result)
	}
	return updated, cmd
}

// runFrames feeds scroll frames back through Update until the animation
// settles. It returns the model and the number of frames processed.
func runFrames(t *testing.T, m Model, cmd tea.Cmd) (Model, int) {
	t.Helper()
	const limit = 1000
	frames := 0
	for cmd != nil {
		msg := cmd()
		if _, ok := msg.(scroll.FrameMsg); !ok {
			t.Fatalf("expected scroll.FrameMsg, got %T", msg)
		}
		frames++
		if frames > limit {
			t.Fatalf("animation did not settle within %d frames", limit)
		}
		m, cmd = sendMsg(t, m, msg)
	}
	return m, frames
}

// page presses a paging key and runs the resulting animation to completion.
func page(t *testing.T, m Model, code rune) Model {
	t.Helper()
	m, cmd := sendKey(t, m, specialKey(code))
	m, _ = runFrames(t, m, cmd)
	return m
}

// ── Assertion Helpers ───────────────────────────────────────────────

// isQuitCmd checks whether a tea.Cmd produces a tea.QuitMsg.
func isQuitCmd(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	msg := cmd()
	_, ok := msg.(tea.QuitMsg)
	return ok
}

// assertRenderedLinesFitWidth checks that no ANSI-aware line exceeds width.
func assertRenderedLinesFitWidth(t *testing.T, output string, width int) {
	t.Helper()
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	for i, line := range lines {
		if got := ansi.StringWidth(line); got > width {
			t.Fatalf("line %d width=%d exceeds maxWidth=%d: %q", i+1, got, width, line)
		}
	}
}

// docOffset returns the document viewport offset.
func docOffset(m Model) int {
	return m.doc.viewport.YOffset()
}

// sidebarOffset returns the sidebar viewport offset.
func sidebarOffset(m Model) int {
	return m.sidebar.viewport.YOffset()
}

// ── Golden Test Helpers ─────────────────────────────────────────────

// stripForGolden removes ANSI escape codes and trailing whitespace from
// rendered output. Lipgloss often pads lines to full width with spaces;
// stripping trailing whitespace prevents golden file mismatches from
// invisible padding changes.
func stripForGolden(s string) string {
	s = ansi.Strip(s)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}
