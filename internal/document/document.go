// Package document loads text files for display and discovers openable
// files under directory roots.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

var (
	// ErrBinary is returned for files whose content is not text.
	ErrBinary = errors.New("binary file")
	// ErrTooLarge is returned when a file exceeds the size cap.
	ErrTooLarge = errors.New("file too large")
	// ErrIsDir is returned when Load is given a directory.
	ErrIsDir = errors.New("is a directory")
)

const tabWidth = 4

// Document is a loaded text file split into display lines.
type Document struct {
	Path     string
	Language string
	Lines    []string
	Size     int64
}

// Name returns the base name of the document path.
func (d Document) Name() string {
	return filepath.Base(d.Path)
}

// Text joins the lines back into a single string.
func (d Document) Text() string {
	return strings.Join(d.Lines, "\n")
}

// Load reads path into a Document. maxSize <= 0 disables the size cap.
func Load(path string, maxSize int64) (Document, error) {
	path = filepath.Clean(path)

	info, err := os.Stat(path)
	if err != nil {
		return Document{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return Document{}, fmt.Errorf("%s: %w", path, ErrIsDir)
	}
	if maxSize > 0 && info.Size() > maxSize {
		return Document{}, fmt.Errorf("%s (%d bytes): %w", path, info.Size(), ErrTooLarge)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("reading %s: %w", path, err)
	}
	if enry.IsBinary(data) {
		return Document{}, fmt.Errorf("%s: %w", path, ErrBinary)
	}

	return Document{
		Path:     path,
		Language: DetectLanguage(path, data),
		Lines:    splitLines(data),
		Size:     info.Size(),
	}, nil
}

// DetectLanguage names the language of content, or "" when unknown.
func DetectLanguage(path string, content []byte) string {
	return enry.GetLanguage(filepath.Base(path), content)
}

func splitLines(data []byte) []string {
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	data = bytes.TrimSuffix(data, []byte("\n"))
	if len(data) == 0 {
		return []string{""}
	}
	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		if strings.Contains(line, "\t") {
			lines[i] = expandTabs(line)
		}
	}
	return lines
}

func expandTabs(line string) string {
	var b strings.Builder
	b.Grow(len(line) + tabWidth)
	col := 0
	for _, r := range line {
		if r == '\t' {
			n := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col++
	}
	return b.String()
}
