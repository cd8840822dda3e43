package logger

import (
	"log/slog"
	"os"
)

// New returns a structured JSON logger at the given level. Handlers and
// services take *slog.Logger so tests can swap in slog.Default or a
// discard handler.
func New(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
