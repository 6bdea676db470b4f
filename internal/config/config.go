package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/daptify14/scrollit/internal/scroll"
)

type SidebarMode string

const (
	SidebarAuto SidebarMode = "auto"
	SidebarShow SidebarMode = "show"
	SidebarHide SidebarMode = "hide"
)

var validSidebarModes = []SidebarMode{SidebarAuto, SidebarShow, SidebarHide}

func ParseSidebarMode(s string) (SidebarMode, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return SidebarAuto, nil
	}
	for _, m := range validSidebarModes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid sidebar %q (valid: auto, show, hide)", s)
}

// Scroll holds the paging animation tunables. Offsets are terminal rows.
type Scroll struct {
	ResetWindow   time.Duration `yaml:"reset_window"`
	MaxMultiplier int           `yaml:"max_multiplier"`
	MaxStep       int           `yaml:"max_step"`
	FPS           int           `yaml:"fps"`
}

type Walk struct {
	MaxDepth int `yaml:"max_depth"`
	MaxFiles int `yaml:"max_files"`
}

type Config struct {
	Icons       string      `yaml:"icons"`   // "nerdfont" (default), "unicode", "none"
	Sidebar     SidebarMode `yaml:"sidebar"` // "auto" (default), "show", "hide"
	Theme       string      `yaml:"theme"`   // "auto" (default), "dark", "light"
	MaxFileSize int64       `yaml:"max_file_size"`
	Walk        Walk        `yaml:"walk"`
	Scroll      Scroll      `yaml:"scroll"`
}

func Default() Config {
	return Config{
		Icons:       "nerdfont",
		Sidebar:     SidebarAuto,
		Theme:       "auto",
		MaxFileSize: 8 << 20,
		Walk: Walk{
			MaxDepth: 6,
			MaxFiles: 2000,
		},
		Scroll: Scroll{
			ResetWindow:   300 * time.Millisecond,
			MaxMultiplier: 5,
			FPS:           60,

			// Rows, not pixels: scroll.DefaultMaxStep (50) would cross a
			// terminal page in one frame and look like a jump.
			MaxStep: 4,
		},
	}
}

func (c *Config) Normalize() {
	d := Default()

	c.Icons = strings.TrimSpace(strings.ToLower(c.Icons))
	c.Theme = strings.TrimSpace(strings.ToLower(c.Theme))
	if c.Theme == "" {
		c.Theme = d.Theme
	}
	c.Sidebar = SidebarMode(strings.TrimSpace(strings.ToLower(string(c.Sidebar))))
	if c.Sidebar == "" {
		c.Sidebar = d.Sidebar
	}

	if c.MaxFileSize <= 0 {
		c.MaxFileSize = d.MaxFileSize
	}
	if c.Walk.MaxDepth <= 0 {
		c.Walk.MaxDepth = d.Walk.MaxDepth
	}
	if c.Walk.MaxFiles <= 0 {
		c.Walk.MaxFiles = d.Walk.MaxFiles
	}

	if c.Scroll.ResetWindow <= 0 {
		c.Scroll.ResetWindow = d.Scroll.ResetWindow
	}
	if c.Scroll.MaxMultiplier <= 0 {
		c.Scroll.MaxMultiplier = d.Scroll.MaxMultiplier
	}
	if c.Scroll.MaxStep <= 0 {
		c.Scroll.MaxStep = d.Scroll.MaxStep
	}
	if c.Scroll.FPS <= 0 {
		c.Scroll.FPS = d.Scroll.FPS
	}
}

func (c Config) Validate() error {
	if c.Icons != "" {
		switch c.Icons {
		case "nerdfont", "unicode", "none":
		default:
			return fmt.Errorf("invalid icons %q (valid: nerdfont, unicode, none)", c.Icons)
		}
	}
	switch c.Theme {
	case "", "auto", "dark", "light":
	default:
		return fmt.Errorf("invalid theme %q (valid: auto, dark, light)", c.Theme)
	}
	if _, err := ParseSidebarMode(string(c.Sidebar)); err != nil {
		return err
	}
	if c.Scroll.MaxMultiplier > 20 {
		return fmt.Errorf("scroll.max_multiplier %d is above the limit of 20", c.Scroll.MaxMultiplier)
	}
	if c.Scroll.FPS > 240 {
		return fmt.Errorf("scroll.fps %d is above the limit of 240", c.Scroll.FPS)
	}
	if c.Scroll.ResetWindow > 5*time.Second {
		return fmt.Errorf("scroll.reset_window %s is above the limit of 5s", c.Scroll.ResetWindow)
	}
	return nil
}

func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "scrollit", "config.yaml")
}

// LoadFrom returns Default() if path doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Clean(ExpandPath(path)))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ScrollSettings converts the scroll section for the animation controller.
func (c Config) ScrollSettings() scroll.Settings {
	return scroll.Settings{
		ResetWindow:   c.Scroll.ResetWindow,
		MaxMultiplier: c.Scroll.MaxMultiplier,
		MaxStep:       c.Scroll.MaxStep,
		FPS:           c.Scroll.FPS,
	}
}

// Marshal renders the config as YAML.
func (c Config) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return out, nil
}

func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
