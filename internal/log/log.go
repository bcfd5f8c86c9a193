// Package log provides leveled logging interface.
// The log messages are intended to be user-facing
// similar to the standard library's log package.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Level specifies the level of logging.
type Level = slog.Level

// Supported log levels.
const (
	Debug = slog.LevelDebug
	Info  = slog.LevelInfo
	Warn  = slog.LevelWarn
	Error = slog.LevelError
)

// Logger writes leveled, printf-style messages.
// It embeds a slog.Logger for structured logging.
type Logger struct {
	*slog.Logger

	h *handler
}

// New builds a logger that writes to the given writer.
// The logger defaults to level Info.
func New(w io.Writer) *Logger {
	return newLogger(&handler{W: w, Level: Info})
}

func newLogger(h *handler) *Logger {
	return &Logger{Logger: slog.New(h), h: h}
}

// Level reports the minimum level of messages this logger writes.
func (l *Logger) Level() Level {
	return l.h.Level
}

// WithLevel builds a copy of this logger that writes messages at or above
// the given level.
func (l *Logger) WithLevel(lvl Level) *Logger {
	h := *l.h
	h.Level = lvl
	return newLogger(&h)
}

// WithColor builds a copy of this logger that highlights levels and messages
// with ANSI escape codes.
func (l *Logger) WithColor(color bool) *Logger {
	h := *l.h
	h.Color = color
	return newLogger(&h)
}

// WithName builds a new logger with the provided name. The returned logger is
// safe to use concurrently with this logger.
//
// Names nest: WithName("a").WithName("b") logs as "[a.b]".
func (l *Logger) WithName(name string) *Logger {
	h := *l.h
	if len(h.name) > 0 {
		h.name += "."
	}
	h.name += name
	return newLogger(&h)
}

// Logf logs a message at the given level.
func (l *Logger) Logf(lvl Level, format string, args ...any) {
	ctx := context.Background()
	if !l.Enabled(ctx, lvl) {
		return
	}
	l.Log(ctx, lvl, fmt.Sprintf(format, args...))
}

// Debugf logs a message at Debug level.
func (l *Logger) Debugf(format string, args ...any) {
	l.Logf(Debug, format, args...)
}

// Infof logs a message at Info level.
func (l *Logger) Infof(format string, args ...any) {
	l.Logf(Info, format, args...)
}

// Warnf logs a message at Warn level.
func (l *Logger) Warnf(format string, args ...any) {
	l.Logf(Warn, format, args...)
}

// Errorf logs a message at Error level.
func (l *Logger) Errorf(format string, args ...any) {
	l.Logf(Error, format, args...)
}
