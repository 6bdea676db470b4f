package tui

import (
	"log/slog"

	"github.com/daptify14/scrollit/internal/document"
	"github.com/daptify14/scrollit/internal/scroll"
	"github.com/daptify14/scrollit/internal/watch"
)

// Options configures the TUI model.
type Options struct {
	// Paths lists the files and directories to page through. Directories are
	// walked. Empty means the working directory.
	Paths []string

	// Walk bounds directory discovery.
	Walk document.WalkOptions

	// MaxFileSize rejects larger files at load time. Zero disables the cap.
	MaxFileSize int64

	// SidebarMode controls file list visibility: "auto" (default), "show", "hide".
	// "auto" shows the list when the terminal is wide enough and more than one
	// file is open.
	SidebarMode string

	// Theme selects the palette: "auto" (default) follows the terminal
	// background, "dark" and "light" force one.
	Theme string

	// IconMode controls which icon set to display next to filenames.
	// Valid values: IconModeNerdFont (default), IconModeUnicode, IconModeNone.
	IconMode IconMode

	// Scroll tunes the paging animation. Zero fields use the defaults.
	Scroll scroll.Settings

	// Watcher, when non-nil, reloads the open document when it changes on
	// disk. The caller owns it and closes it after the program exits.
	Watcher *watch.Watcher

	// DebugLog, when non-nil, receives structured JSON logs of every tea.Msg
	// processed by Update() and of scroll state transitions. Set via the
	// SCROLLIT_DEBUG environment variable.
	DebugLog *slog.Logger
}
