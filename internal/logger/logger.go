// SPDX-License-Identifier: Apache-2.0

// Package logger provides a thin wrapper around zerolog.Logger used by the
// workshop commands. Demonstration output goes to stdout via fmt; everything
// diagnostic (setup, failures, step progress) goes through this package.
//
// The Logger type embeds zerolog.Logger so the full zerolog API is available
// directly on *Logger. Run-scoped loggers are obtained via FromContext.
package logger

import (
	"context"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding exposes the upstream API while leaving room for project helpers.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label (one role per
// command, e.g. "basics" or "datahandling").
//
// The logger writes JSON to os.Stderr and stamps every entry with:
//   - a "role" field for filtering output of the different commands;
//   - a timestamp;
//   - a "func" caller field holding the fully-qualified function name.
//
// Stderr keeps diagnostics apart from the demonstration output the commands
// print to stdout.
func NewLogger(role string) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	l := zerolog.New(os.Stderr).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// SetLevel applies a textual level ("debug", "info", ...) globally.
// Unknown values are ignored and the current level is kept.
func SetLevel(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		return
	}
	zerolog.SetGlobalLevel(parsed)
}

// Nop returns a *Logger that discards all output. Intended for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithContext stores the logger in ctx so nested calls can recover it via
// FromContext.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext extracts the zerolog.Logger stored in ctx and returns it as a
// *Logger. If none was attached, zerolog falls back to its global logger, so
// the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
