// Package logging configures the process-wide structured logger.
package logging

import (
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
)

// Setup installs a tint-backed slog handler on stderr as the default logger.
// All diagnostics go to stderr so the comment body can be written to stdout
// untouched (the --dry-run path depends on this separation).
func Setup(level string) {
	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level: parseLevel(level),
	})
	slog.SetDefault(slog.New(handler))
}

func parseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
