// Package watch reports changes to the file currently shown by the pager.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrClosed is returned by Next after Close.
var ErrClosed = errors.New("watcher closed")

// DefaultSettle is how long Next waits for a burst of writes to end.
const DefaultSettle = 75 * time.Millisecond

// Event describes a change to the watched file.
type Event struct {
	Path string
	// Removed is set when the file was deleted or renamed away.
	Removed bool
}

// Watcher follows a single file. The parent directory is watched so that
// editors which save by rename are still seen.
type Watcher struct {
	fsw    *fsnotify.Watcher
	settle time.Duration

	mu   sync.Mutex
	file string
	dir  string
}

// New starts an fsnotify watcher. settle <= 0 uses DefaultSettle.
func New(settle time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("starting watcher: %w", err)
	}
	if settle <= 0 {
		settle = DefaultSettle
	}
	return &Watcher{fsw: fsw, settle: settle}, nil
}

// Watch switches the watcher to path. Events for the previous file stop.
func (w *Watcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}
	dir := filepath.Dir(abs)

	w.mu.Lock()
	defer w.mu.Unlock()

	if dir != w.dir {
		if err := w.fsw.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
		if w.dir != "" {
			_ = w.fsw.Remove(w.dir)
		}
		w.dir = dir
	}
	w.file = abs
	return nil
}

func (w *Watcher) matches(name string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file != "" && filepath.Clean(name) == w.file
}

// Next blocks until the watched file changes and the burst of events for it
// settles. Only one goroutine may call Next at a time.
func (w *Watcher) Next(ctx context.Context) (Event, error) {
	var (
		pending *Event
		timer   <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			return Event{}, ctx.Err()
		case <-timer:
			return *pending, nil
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return Event{}, ErrClosed
			}
			return Event{}, fmt.Errorf("watch: %w", err)
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return Event{}, ErrClosed
			}
			if !w.matches(ev.Name) || ev.Op == fsnotify.Chmod {
				continue
			}
			removed := ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename)
			if pending == nil {
				pending = &Event{Path: filepath.Clean(ev.Name)}
			}
			// A save-by-rename removes then recreates; the last op wins.
			pending.Removed = removed
			timer = time.After(w.settle)
		}
	}
}

// Close stops the watcher and unblocks Next.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
