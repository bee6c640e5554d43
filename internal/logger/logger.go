// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors and context
// helpers used across go-bot-keeper.
//
// Server components log JSON to stdout. The management CLI logs
// human-readable lines to stderr so that stdout stays free for command output.
// Request-scoped loggers are obtained via FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// ClientIDField is the field name that carries a Matrix user ID.
	ClientIDField = "client_id"
	// TraceIDField is the field name that carries the request trace ID.
	TraceIDField = "trace_id"
)

// Logger embeds zerolog.Logger so the full zerolog API is available on
// *Logger.
type Logger struct {
	zerolog.Logger
}

func configureGlobals() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"
}

// NewLogger returns a JSON logger writing to stdout. Every entry carries the
// given role, a timestamp and the calling function name.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewCLILogger returns a console logger writing to stderr at Info level.
func NewCLILogger(role string) *Logger {
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	l := newLogger(w, role)
	l.Logger = l.Level(zerolog.InfoLevel)
	return l
}

func newLogger(w io.Writer, role string) *Logger {
	configureGlobals()

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of the receiver that can be enriched without
// affecting the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithClient returns a child logger tagged with the given Matrix user ID.
func (l *Logger) WithClient(clientID string) *Logger {
	return &Logger{l.With().Str(ClientIDField, clientID).Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx. When none is attached
// zerolog falls back to its default logger, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// FromContextOr returns the logger attached to ctx, or fallback when ctx
// carries none.
func FromContextOr(ctx context.Context, fallback *Logger) *Logger {
	l := log.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled && fallback != nil {
		return fallback
	}
	return &Logger{*l}
}
