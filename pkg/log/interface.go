// Package log provides structured logging for discretization and
// preprocessing operations.
//
// It defines a minimal, slog-compatible Logger interface plus a JSON setup
// with stack trace extraction for errors created by pkg/errors. Standard
// attribute keys keep field names consistent across the library so that
// pipeline runs can be filtered and analyzed downstream.
//
// Example:
//
//	logger := log.Default().With(
//	    log.ComponentKey, "preprocess",
//	)
//	logger.Info("domain discretized",
//	    log.MethodKey, "EqualFreq",
//	    log.VariablesKey, 12,
//	)
package log

import (
	"context"
)

// Logger is a structured logging interface compatible with log/slog. Fields
// are alternating key/value pairs, as in slog.
type Logger interface {
	// Debug logs detailed diagnostic information.
	Debug(msg string, fields ...any)

	// Info logs general operational information.
	Info(msg string, fields ...any)

	// Warn logs conditions that do not stop the operation.
	Warn(msg string, fields ...any)

	// Error logs failures. If an error value appears among the fields its
	// stack trace is extracted into a dedicated attribute.
	Error(msg string, fields ...any)

	// With returns a Logger that includes the given fields in every record.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, value-compatible with slog.Level.
type Level int

// Standard logging levels.
const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
