package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/marcus/daypick/internal/config"
)

const logLevelEnv = "DAYPICK_LOG_LEVEL"

// resolveLogLevel picks the level from the flag, then the environment, then
// config, defaulting to warn
func resolveLogLevel(flagValue string) slog.Level {
	value := flagValue
	if value == "" {
		value = os.Getenv(logLevelEnv)
	}
	if value == "" {
		if fromCfg, err := config.GetLogLevel(getBaseDir()); err == nil {
			value = fromCfg
		}
	}

	switch strings.ToLower(value) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// setupLogging installs a text handler on w as the default logger
func setupLogging(flagValue string, w io.Writer) error {
	if w == nil {
		return fmt.Errorf("setup logging: nil writer")
	}
	opts := &slog.HandlerOptions{Level: resolveLogLevel(flagValue)}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, opts)))
	return nil
}
