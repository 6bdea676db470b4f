package tui

import (
	"fmt"
	"log/slog"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/daptify14/scrollit/internal/scroll"
)

// logMsg records an incoming message when SCROLLIT_DEBUG is set.
func (m Model) logMsg(msg tea.Msg) {
	if m.debugLog == nil || noisyMsg(msg) {
		return
	}
	attrs := append([]any{slog.String("type", fmt.Sprintf("%T", msg))}, msgAttrs(msg)...)
	m.debugLog.Debug("msg", attrs...)
}

// noisyMsg reports messages that arrive several times a second. The scroll
// controller logs its own transitions, so frames are dropped here.
func noisyMsg(msg tea.Msg) bool {
	switch msg.(type) {
	case spinner.TickMsg, scroll.FrameMsg, tea.MouseMotionMsg:
		return true
	}
	return false
}

// msgAttrs picks loggable fields out of known messages. Anything else is
// logged by type alone; tea.EnvMsg would otherwise dump the environment.
func msgAttrs(msg tea.Msg) []any {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return []any{slog.String("key", msg.String()), slog.Bool("repeat", msg.IsRepeat)}
	case tea.KeyReleaseMsg:
		return []any{slog.String("key", msg.String())}
	case tea.WindowSizeMsg:
		return []any{slog.Int("width", msg.Width), slog.Int("height", msg.Height)}
	case tea.MouseClickMsg:
		return pointerAttrs(msg.Mouse())
	case tea.MouseWheelMsg:
		return pointerAttrs(msg.Mouse())
	case tea.BackgroundColorMsg:
		return []any{slog.Bool("dark", msg.IsDark())}
	case filesWalkedMsg:
		return withErr(msg.err,
			slog.Int("files", len(msg.files)),
			slog.Bool("truncated", msg.truncated),
			slog.Duration("elapsed", msg.elapsed),
		)
	case documentLoadedMsg:
		return withErr(msg.err,
			slog.Uint64("gen", msg.gen),
			slog.String("path", msg.path),
			slog.Int("lines", len(msg.lines)),
			slog.Bool("reload", msg.reload),
		)
	case fileChangedMsg:
		return []any{slog.String("path", msg.event.Path), slog.Bool("removed", msg.event.Removed)}
	case watchErrMsg:
		return withErr(msg.err)
	}
	return nil
}

func pointerAttrs(mouse tea.Mouse) []any {
	return []any{slog.Int("x", mouse.X), slog.Int("y", mouse.Y), slog.String("button", mouse.String())}
}

func withErr(err error, attrs ...any) []any {
	if err != nil {
		attrs = append(attrs, slog.String("err", err.Error()))
	}
	return attrs
}
