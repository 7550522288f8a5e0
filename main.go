// ABOUTME: Entry point for the listdrag application
// ABOUTME: Defines the cobra root command, global flags, profiling and routing to the TUI

// Package main provides the entry point for listdrag, a terminal board whose
// items are dragged between lists with the keyboard or the mouse.
package main

import (
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/spf13/cobra"

	"listdrag/board"
	"listdrag/tui"
)

// Global flags shared by all commands
var (
	debugMode  bool
	dryRun     bool
	outputPath string
	configPath string
	cpuprofile string
	memprofile string
	watchFiles bool
)

var rootCmd = &cobra.Command{
	Use:   "listdrag <board>",
	Short: "Drag items between lists in the terminal",
	Long: `listdrag opens a board file and lets you reorder its items and move them
between lists, with the keyboard (space to lift, arrows to move, space to drop)
or by dragging with the mouse. Changes are written back on exit.`,
	Args:          cobra.ExactArgs(1),
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&debugMode, "debug", false, "enable debug logging to "+debugLogName)
	flags.BoolVar(&dryRun, "dry-run", false, "preview changes without writing the board")
	flags.StringVarP(&outputPath, "output", "o", "", "write the board to this file (default: overwrite input)")
	flags.StringVar(&configPath, "config", "", "config file (default: ./listdrag.toml or ~/.config/listdrag/config.toml)")
	flags.StringVar(&cpuprofile, "cpuprofile", "", "write cpu profile to file")
	flags.StringVar(&memprofile, "memprofile", "", "write memory profile to file")

	rootCmd.Flags().BoolVarP(&watchFiles, "watch", "w", false, "reload the board and config when they change on disk")
}

func main() {
	os.Exit(run())
}

func run() int {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Error: %v", err)

		return 1
	}

	return 0
}

// runTUI starts the interactive board
func runTUI(_ *cobra.Command, args []string) error {
	stop := startProfiling()
	defer stop()

	logr, err := setupLogger(debugMode)
	if err != nil {
		return err
	}

	defer func() {
		_ = logr.Close()
	}()

	cfgPath := resolveConfigPath(configPath)
	shared := loadSharedConfig(cfgPath, logr)

	opts := tui.Options{
		BoardPath:  args[0],
		OutputPath: outputPath,
		DryRun:     dryRun,
		Watch:      watchFiles,
	}

	deps := tui.Dependencies{
		ConfigProvider: shared,
		BoardLoader:    tui.LoaderFunc(LoadBoard),
		BoardWriter:    tui.WriterFunc(board.WriteBoard),
		Logger:         logr.With("tui"),
		ConfigPath:     cfgPath,
	}

	return tui.Run(opts, deps)
}

// startProfiling starts the profilers requested on the command line and
// returns a function that stops them
func startProfiling() func() {
	stopCPU := func() {}
	if cpuprofile != "" {
		stopCPU = setupCPUProfile(cpuprofile)
	}

	return func() {
		stopCPU()

		if memprofile != "" {
			writeMemoryProfile(memprofile)
		}
	}
}

// setupCPUProfile starts CPU profiling, returns cleanup function
func setupCPUProfile(filename string) func() {
	f, err := os.Create(filename)
	if err != nil {
		log.Printf("could not create CPU profile: %v", err)

		return func() {}
	}

	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		log.Printf("could not start CPU profile: %v", err)

		return func() {}
	}

	return func() {
		pprof.StopCPUProfile()

		if err := f.Close(); err != nil {
			log.Printf("Warning: failed to close CPU profile: %v", err)
		}
	}
}

// writeMemoryProfile writes memory profile to file
func writeMemoryProfile(filename string) {
	f, err := os.Create(filename)
	if err != nil {
		log.Printf("could not create memory profile: %v", err)

		return
	}

	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Warning: failed to close memory profile: %v", err)
		}
	}()

	runtime.GC()

	if err := pprof.WriteHeapProfile(f); err != nil {
		log.Printf("could not write memory profile: %v", err)
	}
}
