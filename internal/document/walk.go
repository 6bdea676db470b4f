package document

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/charlievieth/fastwalk"
	"github.com/go-enry/go-enry/v2"
)

const walkWorkers = 4

// errWalkFull stops fastwalk once the file cap is reached. It never reaches
// callers.
var errWalkFull = errors.New("max files reached")

var errWalkCanceled = errors.New("walk canceled")

// skipDirs are directory names never descended into below a root.
var skipDirs = map[string]struct{}{
	".git":         {},
	".hg":          {},
	".svn":         {},
	".cache":       {},
	"node_modules": {},
	"vendor":       {},
	"__pycache__":  {},
}

// WalkOptions bounds a Walk.
type WalkOptions struct {
	MaxDepth int
	MaxFiles int
}

// WalkResult describes a finished walk.
type WalkResult struct {
	Files []string
	// Truncated is set when a file was left out because of MaxFiles.
	Truncated bool
	Elapsed   time.Duration
}

// Walk collects regular files under roots. A root naming a file is included
// as is. Vendored trees and version control metadata are skipped. Results
// are deduplicated and sorted.
func Walk(ctx context.Context, roots []string, opts WalkOptions) (WalkResult, error) {
	startedAt := time.Now()
	if len(roots) == 0 || opts.MaxFiles <= 0 {
		return WalkResult{}, nil
	}

	var (
		mu   sync.Mutex
		seen = make(map[string]struct{}, 256)
		out  = make([]string, 0, 256)
		full bool
	)

	add := func(path string) bool {
		mu.Lock()
		defer mu.Unlock()
		if full {
			return false
		}
		if _, ok := seen[path]; ok {
			return true
		}
		// Only a file that does not fit marks the walk truncated; a tree
		// of exactly MaxFiles files is complete.
		if len(out) >= opts.MaxFiles {
			full = true
			return false
		}
		seen[path] = struct{}{}
		out = append(out, path)
		return true
	}

	conf := &fastwalk.Config{
		NumWorkers: walkWorkers,
		Follow:     false,
		Sort:       fastwalk.SortNone,
		MaxDepth:   opts.MaxDepth,
	}

	walkFn := func(root string) fs.WalkDirFunc {
		return func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			select {
			case <-ctx.Done():
				return errWalkCanceled
			default:
			}

			if d.IsDir() {
				if path == root {
					return nil
				}
				if _, skip := skipDirs[d.Name()]; skip {
					return fs.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}

			rel, relErr := filepath.Rel(root, path)
			if relErr == nil && enry.IsVendor(filepath.ToSlash(rel)) {
				return nil
			}
			if !add(filepath.Clean(path)) {
				return errWalkFull
			}
			return nil
		}
	}

	for _, root := range roots {
		root = filepath.Clean(root)
		info, err := os.Stat(root)
		if err != nil {
			continue
		}
		if !info.IsDir() {
			if !add(root) {
				break
			}
			continue
		}

		err = fastwalk.Walk(conf, root, fastwalk.IgnorePermissionErrors(walkFn(root)))
		switch {
		case err == nil, errors.Is(err, errWalkFull):
		case errors.Is(err, errWalkCanceled):
			sort.Strings(out)
			if ctx.Err() != nil {
				return WalkResult{Files: out, Elapsed: time.Since(startedAt)}, ctx.Err()
			}
			return WalkResult{Files: out, Elapsed: time.Since(startedAt)}, context.Canceled
		default:
			// A failing root does not spoil the others.
			continue
		}

		mu.Lock()
		stop := full
		mu.Unlock()
		if stop {
			break
		}
	}

	sort.Strings(out)
	return WalkResult{Files: out, Truncated: full, Elapsed: time.Since(startedAt)}, nil
}
