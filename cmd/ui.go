package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/daypick/internal/config"
	"github.com/marcus/daypick/internal/dateparse"
	"github.com/marcus/daypick/internal/models"
	"github.com/marcus/daypick/internal/output"
	"github.com/marcus/daypick/internal/panels"
	"github.com/marcus/daypick/pkg/tabui"
	"github.com/marcus/daypick/pkg/tabui/keymap"
	"github.com/spf13/cobra"
)

var uiCmd = &cobra.Command{
	Use:     "ui",
	Aliases: []string{"tui"},
	Short:   "Open the three-tab picker in the terminal",
	Long: `Open the interactive picker with three tabs:
- Days of the week: check weekdays
- Date picker: choose a day, month and year
- User input: type weekdays and/or a D/M/YYYY date

Key bindings:
  Tab/Shift+Tab  Switch tabs
  1/2/3          Jump to tab
  r              Run (fill the result for the active tab)
  ?              Toggle help
  q              Quit

Key bindings can be overridden in .daypick/keymap.json.`,
	GroupID: "core",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !output.IsTerminal() {
			err := fmt.Errorf("ui needs an interactive terminal; use 'daypick parse' instead")
			output.Error("%v", err)
			return reported(err)
		}

		logPath := filepath.Join(getBaseDir(), config.Dir, "debug.log")
		if err := logToFile(cmd, logPath); err != nil {
			output.Warning("logging disabled: %v", err)
		}

		today, _ := cmd.Flags().GetString("today")
		now, err := dateparse.ParseToday(today, time.Now())
		if err != nil {
			output.Error("invalid --today: %v", err)
			return reported(err)
		}

		state := panels.New(now, panels.Options{DefaultTab: startTab(cmd)})

		registry, skipped, err := loadKeymap(getBaseDir())
		if err != nil {
			output.Warning("keymap: %v (using defaults)", err)
		}
		for _, s := range skipped {
			slog.Warn("keymap: binding skipped", "entry", s)
		}

		model := tabui.NewModel(state, registry, now)
		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running ui: %w", err)
		}

		return nil
	},
}

// startTab resolves --tab, falling back to the configured default tab
func startTab(cmd *cobra.Command) models.Tab {
	if tab := tabFlag(cmd.Flags(), "tab"); tab != "" {
		return tab
	}
	tab, err := config.GetDefaultTab(getBaseDir())
	if err != nil {
		slog.Warn("read default tab", "err", err)
		return ""
	}
	return tab
}

// loadKeymap builds the default registry plus user overrides and returns
// the override entries that were skipped. The registry is usable even when
// the override file cannot be read.
func loadKeymap(dir string) (*keymap.Registry, []string, error) {
	r := keymap.NewRegistry()
	keymap.RegisterDefaults(r)

	cfg, err := keymap.LoadConfig(keymap.ConfigPath(dir))
	if err != nil {
		return r, nil, err
	}
	return r, keymap.ApplyConfig(r, cfg), nil
}

// logToFile routes slog to path while the TUI owns the terminal
func logToFile(cmd *cobra.Command, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := tea.LogToFile(path, "daypick")
	if err != nil {
		return err
	}
	cobra.OnFinalize(func() { f.Close() })

	level, _ := cmd.Flags().GetString("log-level")
	return setupLogging(level, f)
}

func init() {
	rootCmd.AddCommand(uiCmd)
	uiCmd.Flags().Var(&tabValue{}, "tab", "Starting tab: days, date, input or 1-3 (default from config)")
	uiCmd.Flags().String("today", "", "Use this date (YYYY-MM-DD) as today")
}
