// SPDX-License-Identifier: MIT
// Package: segfeat/internal/logger
//
// logger.go — construction of the process-wide structured logger.

// Package logger builds the log/slog logger used by the segfeat CLI.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Supported handler formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// ErrUnknownFormat indicates a format other than FormatJSON or FormatText.
var ErrUnknownFormat = errors.New("logger: unknown format")

// Config configures New.
type Config struct {
	Level  slog.Level
	Format string    // FormatJSON or FormatText
	Output io.Writer // os.Stderr when nil; stdout carries command output
}

// DefaultConfig returns Info-level JSON logging to stderr.
func DefaultConfig() Config {
	return Config{
		Level:  slog.LevelInfo,
		Format: FormatJSON,
	}
}

// ParseLevel accepts the slog level names ("debug", "info", "warn",
// "error"), case-insensitively, with optional offsets such as "info+2".
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("ParseLevel(%q): %w", s, err)
	}

	return l, nil
}

// ValidateFormat returns ErrUnknownFormat unless f names a handler.
func ValidateFormat(f string) error {
	switch f {
	case FormatJSON, FormatText:
		return nil
	default:
		return fmt.Errorf("ValidateFormat(%q): %w", f, ErrUnknownFormat)
	}
}

// New builds a logger from cfg and installs it as the slog default.
// Unknown formats fall back to JSON.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level}

	var handler slog.Handler
	switch cfg.Format {
	case FormatText:
		handler = slog.NewTextHandler(out, opts)
	default:
		handler = slog.NewJSONHandler(out, opts)
	}

	l := slog.New(handler)
	slog.SetDefault(l)

	return l
}
