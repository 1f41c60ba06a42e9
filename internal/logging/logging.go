// Package logging builds the generator's structured logger.
package logging

import (
	"io"
	"log/slog"
)

// ParseLevel maps a level name to a slog.Level. ok is false for unknown names.
func ParseLevel(name string) (slog.Level, bool) {
	switch name {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// Level picks the effective level: warn by default, debug when verbose.
// A valid override wins over both.
func Level(verbose bool, override string) (level slog.Level, invalid bool) {
	level = slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	if override == "" {
		return level, false
	}
	parsed, ok := ParseLevel(override)
	if !ok {
		return level, true
	}
	return parsed, false
}

// New returns a text logger writing to w. It never replaces slog's default logger.
func New(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return New(io.Discard, slog.LevelError)
}
