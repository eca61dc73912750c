// Package log creates [log/slog] handlers from string configuration.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const (
	JSONFormat = "json"
	TextFormat = "text"
)

// CreateHandler creates a [slog.Handler] by strings.
func CreateHandler(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	level, err := GetLevel(logLevel)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(logFormat) {
	case JSONFormat:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}), nil
	case TextFormat, "":
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}), nil
	}

	return nil, fmt.Errorf("unknown log format %q", logFormat)
}

// GetLevel parses a [slog.Level] from a string.
func GetLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "error", "fatal", "panic":
		return slog.LevelError, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "debug", "trace":
		return slog.LevelDebug, nil
	}

	return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
}
