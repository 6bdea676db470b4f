package tui

import (
	"image/color"

	"charm.land/lipgloss/v2"
	catppuccin "github.com/catppuccin/go"
)

// Theme holds the pager's styles for one terminal polarity.
type Theme struct {
	// Primary colors focus: the focused sidebar border, key names, the
	// open file.
	Primary color.Color

	Normal   lipgloss.Style
	DimText  lipgloss.Style
	HintText lipgloss.Style
	Selected lipgloss.Style
	BoldOnly lipgloss.Style

	PrimaryFg   lipgloss.Style
	BoldPrimary lipgloss.Style
	AccentFg    lipgloss.Style

	// Separator colors the breadcrumb chevrons and the header rule.
	Separator lipgloss.Style
	// Gutter colors document line numbers.
	Gutter lipgloss.Style

	StatusBar lipgloss.Style
	// Badge marks the paging multiplier while it is above one.
	Badge lipgloss.Style

	Sidebar     lipgloss.Style
	HelpOverlay lipgloss.Style
	GotoBox     lipgloss.Style

	ChromaStyleName string
}

var activeTheme = ThemeDark()

// SetTheme sets the active global theme.
func SetTheme(t Theme) { activeTheme = t }

// ThemeDark returns the Catppuccin Mocha theme.
func ThemeDark() Theme { return newTheme(mochaPalette()) }

// ThemeLight returns the Catppuccin Latte theme.
func ThemeLight() Theme { return newTheme(lattePalette()) }

// ThemeForBackground picks the theme matching the terminal background.
func ThemeForBackground(isDark bool) Theme {
	if isDark {
		return ThemeDark()
	}
	return ThemeLight()
}

// palette assigns Catppuccin tokens to pager roles.
type palette struct {
	flavor catppuccin.Flavor
	chroma string

	// muted and faint swap on light backgrounds so muted text keeps its
	// contrast against Latte's base.
	muted catppuccin.Color
	faint catppuccin.Color
}

func mochaPalette() palette {
	f := catppuccin.Mocha
	return palette{flavor: f, chroma: "catppuccin-mocha", muted: f.Overlay1(), faint: f.Subtext0()}
}

func lattePalette() palette {
	f := catppuccin.Latte
	return palette{flavor: f, chroma: "catppuccin-latte", muted: f.Subtext0(), faint: f.Overlay1()}
}

func hex(c catppuccin.Color) color.Color { return lipgloss.Color(c.Hex) }

func newTheme(p palette) Theme {
	f := p.flavor
	primary := hex(f.Sapphire())
	text := hex(f.Text())
	muted := hex(p.muted)
	fg := lipgloss.NewStyle().Foreground

	t := Theme{
		Primary:         primary,
		Normal:          fg(text),
		DimText:         fg(muted),
		HintText:        fg(hex(p.faint)),
		BoldOnly:        lipgloss.NewStyle().Bold(true),
		PrimaryFg:       fg(primary),
		BoldPrimary:     fg(primary).Bold(true),
		AccentFg:        fg(hex(f.Yellow())),
		Separator:       fg(hex(f.Overlay0())),
		Gutter:          fg(hex(f.Overlay0())),
		ChromaStyleName: p.chroma,
	}

	t.Selected = lipgloss.NewStyle().
		Background(hex(f.Surface0())).
		Foreground(text).
		Bold(true)

	t.StatusBar = lipgloss.NewStyle().
		Background(hex(f.Mantle())).
		Foreground(text).
		Padding(0, 1)
	t.Badge = lipgloss.NewStyle().
		Background(hex(f.Mauve())).
		Foreground(hex(f.Crust())).
		Bold(true).
		Padding(0, 1)

	t.Sidebar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(muted).
		PaddingLeft(1)
	t.HelpOverlay = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(primary).
		Padding(1, 2)
	t.GotoBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(primary).
		Padding(0, 1)

	return t
}
