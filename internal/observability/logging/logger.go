// Package logging provides structured logging constructors built on the
// standard library's log/slog package.
package logging

import (
	"log/slog"
	"os"
)

// NewLogger creates a structured logger with JSON output on stdout.
// The log level is controlled via the LOG_LEVEL environment variable;
// the default is info.
func NewLogger() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: levelFromEnv(slog.LevelInfo),
	})
	return slog.New(handler)
}

// NewTextLogger creates a structured logger with human-readable text
// output on stderr, keeping stdout free for program output. Used by the
// summarize CLI.
func NewTextLogger() *slog.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: levelFromEnv(slog.LevelWarn),
	})
	return slog.New(handler)
}

func levelFromEnv(fallback slog.Level) slog.Level {
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return fallback
}
