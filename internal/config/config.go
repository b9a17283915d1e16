// Package config loads ffilog configuration from environment variables
// (supports a local .env file) and applies defaults matching the harness
// helper's historical behavior.
//
// SPDX-License-Identifier: AGPL-3.0-or-later
package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultLogFile is the log sink path, relative to the working directory.
const DefaultLogFile = "logs.log"

type Config struct {
	LogFile      string     // append-only sink, created if absent
	LogConsole   bool       // also mirror log lines to stderr
	ConsoleLevel slog.Level // mirror only; the file sink is always INFO

	// UnsetPlaceholder replaces fields that were not passed on the command line.
	UnsetPlaceholder string
}

func Load() *Config {
	// Load .env if present (ignored if missing)
	_ = godotenv.Load()

	return &Config{
		LogFile:          getenvDefault("FFILOG_FILE", DefaultLogFile),
		LogConsole:       getenvBoolDefault("FFILOG_CONSOLE", false),
		ConsoleLevel:     parseLevel(getenvDefault("FFILOG_CONSOLE_LEVEL", "INFO")),
		UnsetPlaceholder: os.Getenv("FFILOG_UNSET"),
	}
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvBoolDefault(k string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(k)))
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return def
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
