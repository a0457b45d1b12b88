// Package logging configures structured logging using log/slog and keeps the
// on-disk error log that unexpected failures are appended to with their
// stack traces.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrorLogName is the file unexpected failures are appended to.
const ErrorLogName = "merger_error.log"

// Setup configures the global slog logger based on level and format.
//
// Level values: "debug", "info", "warn", "error" (default: "info")
// Format values: "text", "json" (default: "text")
func Setup(level, format string) {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// WithInvocation returns a logger carrying the invocation id and action so
// every entry of one merge can be correlated.
func WithInvocation(id, action string) *slog.Logger {
	return slog.Default().With("invocation_id", id, "action", action)
}

// AppendErrorLog appends a timestamped entry (typically a recovered panic
// with its stack trace) to merger_error.log in dir. Best effort: logging the
// failure must never mask it.
func AppendErrorLog(dir, entry string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir log dir: %w", err)
	}
	path := filepath.Join(dir, ErrorLogName)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("open error log: %w", err)
	}
	defer f.Close()
	stamp := time.Now().Format("2006-01-02 15:04:05")
	if _, err := fmt.Fprintf(f, "%s ERROR %s\n", stamp, entry); err != nil {
		return "", fmt.Errorf("write error log: %w", err)
	}
	return path, nil
}
