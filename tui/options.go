// ABOUTME: TUI mode configuration and command-line options
// ABOUTME: Defines input parameters and injected dependencies for running the TUI

package tui

// Options contains configuration for running the TUI
type Options struct {
	BoardPath  string // Path to input board
	OutputPath string // Path for saving (defaults to BoardPath)
	DryRun     bool   // If true, don't save changes to disk
	Watch      bool   // Reload the board and config when they change on disk
}

// Dependencies holds all external dependencies for the TUI
type Dependencies struct {
	ConfigProvider ConfigProvider
	BoardLoader    BoardLoader
	BoardWriter    BoardWriter
	Logger         Logger
	ConfigPath     string
}
