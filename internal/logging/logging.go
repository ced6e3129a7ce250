// Package logging is a thin log/slog wrapper giving the decoder an
// optional structured debug logger, grounded on MacroPower-x/log's
// level/format parsing and handler construction.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Logger is a named alias so callers across this module don't import
// log/slog directly just to declare a field type.
type Logger = slog.Logger

// Format is the log output encoding.
type Format string

const (
	FormatJSON   Format = "json"
	FormatLogfmt Format = "logfmt"
)

var (
	ErrUnknownLevel  = errors.New("logging: unknown level")
	ErrUnknownFormat = errors.New("logging: unknown format")
)

// ParseLevel parses a level string ("debug", "info", "warn", "error").
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}
}

// ParseFormat parses a format string ("json" or "logfmt").
func ParseFormat(format string) (Format, error) {
	f := Format(strings.ToLower(format))
	if f == FormatJSON || f == FormatLogfmt {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// New builds a *Logger writing to w in the given level/format.
func New(w io.Writer, level slog.Level, format Format) *Logger {
	var h slog.Handler
	switch format {
	case FormatJSON:
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	default:
		h = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	}
	return slog.New(h)
}

// NewWithStrings is the string-driven constructor cmd/juicydemo uses to
// build a logger from its JUICY_LOG_LEVEL setting.
func NewWithStrings(w io.Writer, level, format string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	fm, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return New(w, lvl, fm), nil
}
