package tui

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/daptify14/scrollit/internal/scroll"
)

func captureDebugLog(m *Model) *bytes.Buffer {
	var buf bytes.Buffer
	m.debugLog = slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return &buf
}

func TestLogMsgWritesStructuredRecord(t *testing.T) {
	m := newTestModel()
	buf := captureDebugLog(&m)

	m.logMsg(documentLoadedMsg{path: "main.go", lines: []string{"a", "b"}, gen: 7, err: errors.New("boom")})

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("log output is not one JSON record: %v\n%s", err, buf.String())
	}
	want := map[string]any{
		"msg":   "msg",
		"type":  "tui.documentLoadedMsg",
		"path":  "main.go",
		"lines": float64(2),
		"gen":   float64(7),
		"err":   "boom",
	}
	for k, v := range want {
		if rec[k] != v {
			t.Fatalf("%s = %v, want %v", k, rec[k], v)
		}
	}
}

func TestLogMsgRecordsWalkDuration(t *testing.T) {
	m := newTestModel()
	buf := captureDebugLog(&m)

	m.logMsg(filesWalkedMsg{files: []string{"a", "b", "c"}, elapsed: 2 * time.Millisecond})

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("decoding record: %v", err)
	}
	if rec["files"] != float64(3) || rec["elapsed"] != float64(2*time.Millisecond) {
		t.Fatalf("unexpected walk record: %v", rec)
	}
}

func TestLogMsgSkipsHighFrequencyMessages(t *testing.T) {
	m := newTestModel()
	buf := captureDebugLog(&m)

	m.logMsg(scroll.FrameMsg{})
	m.logMsg(tea.MouseMotionMsg{X: 1, Y: 2})
	if buf.Len() != 0 {
		t.Fatalf("expected no records, got %s", buf.String())
	}

	m.logMsg(tea.WindowSizeMsg{Width: 80, Height: 24})
	if !bytes.Contains(buf.Bytes(), []byte(`"width":80`)) {
		t.Fatalf("expected window size record, got %s", buf.String())
	}
}

func TestLogMsgWithoutLoggerIsNoop(t *testing.T) {
	m := newTestModel()
	m.debugLog = nil
	m.logMsg(tea.WindowSizeMsg{Width: 80, Height: 24})
}

func TestMsgAttrsUnknownTypeHasNoDetail(t *testing.T) {
	if attrs := msgAttrs(tea.QuitMsg{}); attrs != nil {
		t.Fatalf("expected no attrs for QuitMsg, got %v", attrs)
	}
}
