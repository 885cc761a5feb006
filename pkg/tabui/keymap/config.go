// Package keymap provides user-configurable key bindings for the tab UI,
// loaded from .daypick/keymap.json.
package keymap

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Config is the override file. Bindings maps "context:key" to a command;
// a key without a context prefix is global.
//
//	{"bindings": {"days:t": "toggle-day", "ctrl+q": "quit"}}
type Config struct {
	Bindings map[string]string `json:"bindings"`
}

// ConfigPath returns the override file location under baseDir
func ConfigPath(baseDir string) string {
	return filepath.Join(baseDir, ".daypick", "keymap.json")
}

// LoadConfig reads overrides from path. A missing file is an empty config.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	if cfg.Bindings == nil {
		cfg.Bindings = make(map[string]string)
	}
	return cfg, nil
}

// SaveConfig writes cfg to path through a temp file and rename
func SaveConfig(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode keymap: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// ApplyConfig installs the overrides in cfg and returns the entries it
// skipped, each with the reason.
func ApplyConfig(r *Registry, cfg *Config) []string {
	known := knownCommands()

	var skipped []string
	for entry, cmd := range cfg.Bindings {
		ctx, key := parseBinding(entry)
		var reason string
		switch {
		case key == "":
			reason = "missing key"
		case !isContext(ctx):
			reason = fmt.Sprintf("unknown context %q", ctx)
		case !known[Command(cmd)]:
			reason = fmt.Sprintf("unknown command %q", cmd)
		}
		if reason != "" {
			slog.Debug("keymap: skipping binding", "binding", entry, "reason", reason)
			skipped = append(skipped, entry+": "+reason)
			continue
		}
		r.SetUserOverride(ctx, key, Command(cmd))
	}
	return skipped
}

// parseBinding splits "context:key"; a bare key is global
func parseBinding(s string) (Context, string) {
	ctx, key, found := strings.Cut(s, ":")
	if !found {
		return ContextGlobal, s
	}
	return Context(ctx), key
}

func isContext(ctx Context) bool {
	for _, c := range Contexts {
		if c == ctx {
			return true
		}
	}
	return false
}

// knownCommands is every command the default bindings reach
func knownCommands() map[Command]bool {
	known := make(map[Command]bool)
	for _, b := range DefaultBindings() {
		known[b.Command] = true
	}
	return known
}

// ExampleConfig is the starter file written by "daypick keys init"
func ExampleConfig() *Config {
	return &Config{
		Bindings: map[string]string{
			"days:t":        string(CmdToggleDay),
			"date:ctrl+e":   string(CmdEditDate),
			"input:ctrl+a":  string(CmdFocusInput),
			"global:ctrl+n": string(CmdNextTab),
		},
	}
}
