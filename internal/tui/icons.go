package tui

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"charm.land/lipgloss/v2"
	devicons "github.com/epilande/go-devicons"
)

// IconMode selects the glyph set drawn next to sidebar entries.
type IconMode string

const (
	IconModeNerdFont IconMode = "nerdfont"
	IconModeUnicode  IconMode = "unicode"
	IconModeNone     IconMode = "none"
)

// ParseIconMode accepts a mode name in any case. Empty means nerdfont.
func ParseIconMode(s string) (IconMode, error) {
	switch mode := IconMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case "":
		return IconModeNerdFont, nil
	case IconModeNerdFont, IconModeUnicode, IconModeNone:
		return mode, nil
	}
	return "", fmt.Errorf("unknown icon mode %q: want nerdfont, unicode or none", s)
}

const unicodeFallbackGlyph = "📄"

// unicodeGlyphs groups extensions under the symbol drawn for them.
var unicodeGlyphs = []struct {
	glyph string
	exts  []string
}{
	{"📝", []string{".md", ".markdown", ".rst"}},
	{"🖼", []string{".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp"}},
	{"📦", []string{".zip", ".tar", ".gz", ".bz2", ".xz", ".zst"}},
	{"⚙", []string{".yaml", ".yml", ".toml", ".json", ".ini", ".conf", ".cfg"}},
	{"▶", []string{".sh", ".bash", ".zsh", ".fish"}},
	{"☰", []string{".go", ".rs", ".py", ".js", ".ts", ".c", ".h", ".java", ".rb"}},
}

func unicodeGlyph(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	for _, g := range unicodeGlyphs {
		if slices.Contains(g.exts, ext) {
			return g.glyph
		}
	}
	return unicodeFallbackGlyph
}

// iconFor returns the glyph for path and, in nerdfont mode, its hex color.
func iconFor(path string, mode IconMode) (glyph, hexColor string) {
	switch mode {
	case IconModeNerdFont:
		style := devicons.IconForPath(path)
		return style.Icon, style.Color
	case IconModeUnicode:
		return unicodeGlyph(path), ""
	}
	return "", ""
}

// iconPrefix renders the glyph plus a trailing space, or "" with icons off.
// A selected row keeps the glyph uncolored so the selection style shows.
func iconPrefix(path string, selected bool, mode IconMode) string {
	glyph, hexColor := iconFor(path, mode)
	switch {
	case glyph == "":
		return ""
	case selected:
	case hexColor != "":
		glyph = lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor)).Render(glyph)
	default:
		glyph = activeTheme.DimText.Render(glyph)
	}
	return glyph + " "
}
