package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New initializes a new slog logger writing to stdout and sets it as the default.
// format is "text" (default, with source locations) or "json" for production.
func New(format, level string) *slog.Logger {
	logger := NewWithWriter(os.Stdout, format, level)
	slog.SetDefault(logger)
	return logger
}

// NewWithWriter builds the logger without touching the default, so tests can capture output.
func NewWithWriter(w io.Writer, format, level string) *slog.Logger {
	lvl := ParseLevel(level)

	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: lvl,
		})
	default:
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{
			Level:     lvl,
			AddSource: true, // Adds source file and line number
		})
	}

	return slog.New(handler)
}

// ParseLevel maps a LOG_LEVEL value to a slog level. Unknown values fall back to debug.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
