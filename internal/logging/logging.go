// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the process logger: human-readable text on stderr
// and, when a log file is configured, JSON records appended to that file.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	slogmulti "github.com/samber/slog-multi"

	"github.com/pdiddy/recipe-parser/pkg/types"
)

// ParseLevel maps debug, info, warn, or error to a slog level. The empty
// string is info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q: use debug, info, warn, or error", s)
	}
}

// New builds a logger for cfg writing text to stderr. The returned cleanup
// closes the log file, if one was opened.
func New(cfg types.LogConfig, stderr io.Writer) (*slog.Logger, func() error, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	if cfg.File == "" {
		return slog.New(textHandler(stderr, level)), func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return WithWriters(stderr, file, level), file.Close, nil
}

// WithWriters fans records out to a text handler on stderr and a JSON
// handler on file.
func WithWriters(stderr, file io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slogmulti.Fanout(
		textHandler(stderr, level),
		slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level}),
	))
}

func textHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
}
