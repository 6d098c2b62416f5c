// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// go-filter-keeper binaries.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label (e.g. "server")
// writing JSON to os.Stdout.
//
// Every entry carries a "role" field, a timestamp and a "func" caller field
// holding the fully-qualified function name instead of file:line.
func NewLogger(role string) *Logger {
	return newLogger(role, os.Stdout)
}

// NewClientLogger constructs a *Logger for interactive client binaries. The
// terminal belongs to the UI, so entries go to the file at path; an empty
// path means a "logs" file next to the executable. If the file cannot be
// opened the logger falls back to os.Stdout.
func NewClientLogger(role, path string) *Logger {
	if path == "" {
		execPath, _ := os.Executable()
		path = filepath.Join(filepath.Dir(execPath), "logs")
	}

	var out io.Writer = os.Stdout
	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err == nil {
		out = logFile
	}

	return newLogger(role, out)
}

func newLogger(role string, out io.Writer) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// SetLevel applies a textual level ("debug", "info", "warn", ...) to the
// logger. Unknown or empty values leave the current level untouched and
// return false.
func (l *Logger) SetLevel(level string) bool {
	level = strings.TrimSpace(strings.ToLower(level))
	if level == "" {
		return false
	}

	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return false
	}

	l.Logger = l.Level(parsed)
	return true
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver and can be enriched without affecting the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithView returns a child logger carrying a "view" field.
func (l *Logger) WithView(viewName string) *Logger {
	return &Logger{l.With().Str("view", viewName).Logger()}
}

// FromRequest extracts the zerolog.Logger attached to the request context
// (see zerolog's WithContext) and returns it as a *Logger.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext extracts the zerolog.Logger stored in ctx. If none has been
// attached, zerolog's default logger is returned, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
