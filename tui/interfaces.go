// ABOUTME: Interfaces defining dependencies for the TUI package
// ABOUTME: Allows clean separation and easy testing with in-memory fakes

package tui

import (
	"listdrag/board"
	"listdrag/config"
)

// ConfigProvider provides thread-safe access to the configuration
type ConfigProvider interface {
	Get() config.Config
	Update(cfg config.Config)
}

// BoardLoader loads boards from disk
type BoardLoader interface {
	Load(path string) (*board.Board, error)
}

// BoardWriter saves boards to disk
type BoardWriter interface {
	Write(path string, b *board.Board) error
}

// Logger provides debug logging capability
type Logger interface {
	Debugf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}

// LoaderFunc adapts a function to BoardLoader
type LoaderFunc func(path string) (*board.Board, error)

// Load calls f
func (f LoaderFunc) Load(path string) (*board.Board, error) { return f(path) }

// WriterFunc adapts a function to BoardWriter
type WriterFunc func(path string, b *board.Board) error

// Write calls f
func (f WriterFunc) Write(path string, b *board.Board) error { return f(path, b) }
