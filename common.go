// ABOUTME: Shared initialization code for all commands (TUI, replay, view)
// ABOUTME: Provides board loading, config setup and debug log setup

package main

import (
	"errors"
	"fmt"
	"os"

	"listdrag/board"
	"listdrag/config"
	"listdrag/logger"
)

const debugLogName = logger.DefaultLogPath

// LoadBoard reads and validates a board file
func LoadBoard(path string) (*board.Board, error) {
	b, err := board.ReadBoard(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load board: %w", err)
	}

	if len(b.Lists) == 0 {
		return nil, errors.New("board has no lists")
	}

	return b, nil
}

// setupLogger opens the debug log when enabled, otherwise returns a logger
// that drops everything
func setupLogger(enabled bool) (*logger.Logger, error) {
	if !enabled {
		return logger.Nop(), nil
	}

	l, err := logger.New(debugLogName, true)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize debug log: %w", err)
	}

	if isTTY(os.Stdout) {
		fmt.Printf("Debug logging enabled: %s\n", debugLogName)
	}

	return l, nil
}

// resolveConfigPath returns the --config value or the default location
func resolveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}

	return config.GetConfigPath()
}

// loadSharedConfig loads the config at path, falling back to defaults on error
func loadSharedConfig(path string, log *logger.Logger) *config.SharedConfig {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		log.Warnf("using default config: %v", err)
		fmt.Fprintf(os.Stderr, "Warning: using default config: %v\n", err)
	}

	return config.NewSharedConfig(cfg)
}

// resolveOutput returns where a board read from input is written
func resolveOutput(input, output string) string {
	if output != "" {
		return output
	}

	return input
}

// isTTY checks if the given file is a terminal
func isTTY(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}

	return (stat.Mode() & os.ModeCharDevice) != 0
}
