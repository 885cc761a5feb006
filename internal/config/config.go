package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/marcus/daypick/internal/models"
)

// Dir is the settings directory, relative to the base directory
const Dir = ".daypick"

const configFile = Dir + "/config.json"
const lockFile = Dir + "/config.json.lock"

// Setting keys accepted by Get and Set
const (
	KeyDefaultTab = "default-tab"
	KeyLogLevel   = "log-level"
)

var validLogLevels = []string{"debug", "info", "warn", "error"}

// Load reads the config from disk
func Load(baseDir string) (*models.Config, error) {
	configPath := filepath.Join(baseDir, configFile)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &models.Config{}, nil
		}
		return nil, err
	}

	var cfg models.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configPath, err)
	}

	return &cfg, nil
}

// Save writes the config to disk using atomic write (temp file + rename)
func Save(baseDir string, cfg *models.Config) error {
	configPath := filepath.Join(baseDir, configFile)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "config-*.json.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, configPath)
}

// withConfigLock serializes access to config.json using flock
func withConfigLock(baseDir string, fn func() error) error {
	lockPath := filepath.Join(baseDir, lockFile)

	if err := os.MkdirAll(filepath.Dir(lockPath), 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := lockFileExclusive(f); err != nil {
		return fmt.Errorf("lock %s: %w", lockPath, err)
	}
	defer unlockFile(f)

	return fn()
}

// GetDefaultTab returns the configured starting tab. Unknown values read
// back as empty so callers fall through to the first tab.
func GetDefaultTab(baseDir string) (models.Tab, error) {
	cfg, err := Load(baseDir)
	if err != nil {
		return "", err
	}
	if !models.IsValidTab(cfg.DefaultTab) {
		return "", nil
	}
	return cfg.DefaultTab, nil
}

// SetDefaultTab persists the starting tab
func SetDefaultTab(baseDir string, tab models.Tab) error {
	if !models.IsValidTab(tab) {
		return fmt.Errorf("unknown tab %q (valid: %s)", tab, tabNames())
	}
	return withConfigLock(baseDir, func() error {
		cfg, err := Load(baseDir)
		if err != nil {
			return err
		}
		cfg.DefaultTab = tab
		return Save(baseDir, cfg)
	})
}

// GetLogLevel returns the configured log level, or "" if unset
func GetLogLevel(baseDir string) (string, error) {
	cfg, err := Load(baseDir)
	if err != nil {
		return "", err
	}
	return cfg.LogLevel, nil
}

// SetLogLevel persists the log level
func SetLogLevel(baseDir string, level string) error {
	level = strings.ToLower(strings.TrimSpace(level))
	if !isValidLogLevel(level) {
		return fmt.Errorf("unknown log level %q (valid: %s)", level, strings.Join(validLogLevels, ", "))
	}
	return withConfigLock(baseDir, func() error {
		cfg, err := Load(baseDir)
		if err != nil {
			return err
		}
		cfg.LogLevel = level
		return Save(baseDir, cfg)
	})
}

// Get returns a setting by key
func Get(baseDir, key string) (string, error) {
	switch key {
	case KeyDefaultTab:
		tab, err := GetDefaultTab(baseDir)
		return string(tab), err
	case KeyLogLevel:
		return GetLogLevel(baseDir)
	default:
		return "", fmt.Errorf("unknown setting %q (valid: %s)", key, strings.Join(Keys(), ", "))
	}
}

// Set stores a setting by key
func Set(baseDir, key, value string) error {
	switch key {
	case KeyDefaultTab:
		return SetDefaultTab(baseDir, models.Tab(value))
	case KeyLogLevel:
		return SetLogLevel(baseDir, value)
	default:
		return fmt.Errorf("unknown setting %q (valid: %s)", key, strings.Join(Keys(), ", "))
	}
}

// Keys lists the setting keys in sorted order
func Keys() []string {
	keys := []string{KeyDefaultTab, KeyLogLevel}
	sort.Strings(keys)
	return keys
}

func isValidLogLevel(level string) bool {
	for _, l := range validLogLevels {
		if l == level {
			return true
		}
	}
	return false
}

func tabNames() string {
	names := make([]string, len(models.Tabs))
	for i, t := range models.Tabs {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
