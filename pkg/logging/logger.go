// Package logging provides the structured logger used across textmode.
//
// A terminal UI owns stdout, so loggers write JSON lines to a file or
// discard them.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"go.opentelemetry.io/otel/trace"
)

// Logger is a structured logger for a textmode component.
type Logger struct {
	*slog.Logger
}

// New creates a JSON logger writing to w.
func New(w io.Writer, level slog.Level, component string) *Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler).With(
		slog.String("component", component),
		slog.String("system", "textmode"),
	)
	return &Logger{Logger: logger}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, slog.LevelError+4, "discard")
}

// OpenFile opens path for appending and returns a logger writing to it.
// The caller closes the returned file.
func OpenFile(path string, level slog.Level, component string) (*Logger, *os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, level, component), f, nil
}

// ParseLevel maps debug, info, warn and error to slog levels.
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
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// WithSession returns a logger with the session id attached.
func (l *Logger) WithSession(sessionID string) *Logger {
	return &Logger{Logger: l.Logger.With(slog.String("session_id", sessionID))}
}

// WithComponent tags records with a subcomponent name.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{Logger: l.Logger.With(slog.String("subcomponent", name))}
}

// WithContext attaches the trace and span ids of the span in ctx, if any.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return l
	}
	return &Logger{Logger: l.Logger.With(
		slog.String("trace_id", sc.TraceID().String()),
		slog.String("span_id", sc.SpanID().String()),
	)}
}

// FlushFailed logs a screen flush that returned a sink error.
func (l *Logger) FlushFailed(err error) {
	l.Error("flush failed", slog.String("error", err.Error()))
}

// DialogOpened logs a dialog becoming active.
func (l *Logger) DialogOpened(kind string) {
	l.Debug("dialog opened", slog.String("dialog", kind))
}

// DialogClosed logs a dialog closing and why.
func (l *Logger) DialogClosed(kind, reason string) {
	l.Debug("dialog closed",
		slog.String("dialog", kind),
		slog.String("reason", reason),
	)
}

// ActionDispatched logs a widget action reaching the application.
func (l *Logger) ActionDispatched(name string) {
	l.Debug("action dispatched", slog.String("action", name))
}

// Resized logs a terminal size change.
func (l *Logger) Resized(width, height int) {
	l.Info("terminal resized",
		slog.Int("width", width),
		slog.Int("height", height),
	)
}
