package config

import (
	"log/slog"
	"os"
	"strings"
)

const DefaultRootPath = "."

// RootPath returns the repository root from SYNC_REFERENCE_ROOT,
// falling back to DefaultRootPath (the working directory).
func RootPath() string {
	if env := os.Getenv("SYNC_REFERENCE_ROOT"); env != "" {
		return env
	}
	return DefaultRootPath
}

// LogLevel returns the stderr log level from SYNC_REFERENCE_LOG_LEVEL.
// Unknown values fall back to warn so stdout stays a single status line.
func LogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("SYNC_REFERENCE_LOG_LEVEL"))) {
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
