// ABOUTME: Debug logging to a file through a slog text handler
// ABOUTME: Exposes printf-style helpers so the engine and UI only need Debugf

// Package logger writes the debug log. A Logger without a file discards everything.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// DefaultLogPath is where --debug writes when no path is given
const DefaultLogPath = "listdrag-debug.log"

// Logger is a leveled printf-style logger backed by slog
type Logger struct {
	mu     sync.Mutex
	slog   *slog.Logger
	level  *slog.LevelVar
	closer io.Closer
}

// New opens (truncating) the log file at path. Debug messages are written
// only when debug is true.
func New(path string, debug bool) (*Logger, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create debug log file: %w", err)
	}

	l := NewWriter(f, debug)
	l.closer = f
	l.slog.Info("logger initialized", "path", path)

	return l, nil
}

// NewWriter logs to w
func NewWriter(w io.Writer, debug bool) *Logger {
	level := new(slog.LevelVar)
	if debug {
		level.Set(slog.LevelDebug)
	}

	return &Logger{
		slog:  slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})),
		level: level,
	}
}

// Nop returns a logger that drops every message
func Nop() *Logger {
	return &Logger{}
}

// SetDebug switches debug output on or off
func (l *Logger) SetDebug(enabled bool) {
	if l.level == nil {
		return
	}

	if enabled {
		l.level.Set(slog.LevelDebug)
	} else {
		l.level.Set(slog.LevelInfo)
	}
}

// With returns a logger tagging every record with component
func (l *Logger) With(component string) *Logger {
	if l.slog == nil {
		return l
	}

	return &Logger{slog: l.slog.With(slog.String("component", component)), level: l.level}
}

func (l *Logger) logf(level slog.Level, format string, args ...interface{}) {
	if l == nil || l.slog == nil {
		return
	}

	if !l.slog.Enabled(context.Background(), level) {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.slog.Log(context.Background(), level, fmt.Sprintf(format, args...))
}

// Debugf writes a debug message
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logf(slog.LevelDebug, format, args...)
}

// Infof writes an info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf(slog.LevelInfo, format, args...)
}

// Warnf writes a warning
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logf(slog.LevelWarn, format, args...)
}

// Errorf writes an error
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logf(slog.LevelError, format, args...)
}

// Close closes the log file, if any
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}

	return l.closer.Close()
}
