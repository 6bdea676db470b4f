// Command scrollit is a terminal pager with accelerating page scrolling.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/daptify14/scrollit/internal/config"
	"github.com/daptify14/scrollit/internal/document"
	"github.com/daptify14/scrollit/internal/tui"
	"github.com/daptify14/scrollit/internal/watch"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type flags struct {
	configPath string
	icons      string
	noSidebar  bool
}

func main() {
	var f flags

	rootCmd := &cobra.Command{
		Use:   "scrollit [path...]",
		Short: "Terminal pager with smooth, accelerating page scrolling",
		Long:  "scrollit pages through files and directories. PgUp/PgDn scroll with a short animation that speeds up while the key is held, and follow the pane under the mouse.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(f, args)
		},
	}
	rootCmd.Version = version + " (commit " + commit + ", built " + date + ")"
	rootCmd.PersistentFlags().StringVar(&f.configPath, "config", config.DefaultPath(), "config file")
	rootCmd.Flags().StringVar(&f.icons, "icons", "", "icon set: nerdfont, unicode, none")
	rootCmd.Flags().BoolVar(&f.noSidebar, "no-sidebar", false, "hide the file list")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFrom(f.configPath)
			if err != nil {
				return fmt.Errorf("error loading config: %w", err)
			}
			out, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runTUI(f flags, paths []string) error {
	cfg, err := config.LoadFrom(f.configPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if f.icons != "" {
		cfg.Icons = f.icons
	}
	if f.noSidebar {
		cfg.Sidebar = config.SidebarHide
	}

	iconMode, err := tui.ParseIconMode(cfg.Icons)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	var debugLog *slog.Logger
	if debugPath := os.Getenv("SCROLLIT_DEBUG"); debugPath != "" {
		cleanPath := filepath.Clean(debugPath)
		logFile, err := os.OpenFile(cleanPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600) //#nosec G703 -- developer-controlled debug log path
		if err != nil {
			return fmt.Errorf("debug log: %w", err)
		}
		defer func() { _ = logFile.Close() }()
		debugLog = slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	// Reloading on change is best effort; page without it if fsnotify fails.
	watcher, err := watch.New(watch.DefaultSettle)
	if err != nil {
		if debugLog != nil {
			debugLog.Warn("file watching disabled", "err", err)
		}
	} else {
		defer func() { _ = watcher.Close() }()
	}

	opts := tui.Options{
		Paths: paths,
		Walk: document.WalkOptions{
			MaxDepth: cfg.Walk.MaxDepth,
			MaxFiles: cfg.Walk.MaxFiles,
		},
		MaxFileSize: cfg.MaxFileSize,
		SidebarMode: string(cfg.Sidebar),
		Theme:       cfg.Theme,
		IconMode:    iconMode,
		Scroll:      cfg.ScrollSettings(),
		Watcher:     watcher,
		DebugLog:    debugLog,
	}

	model := tui.NewModel(opts)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error: %w", err)
	}
	return nil
}
