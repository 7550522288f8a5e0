// ABOUTME: File watching for the board and config files
// ABOUTME: Turns fsnotify events into reload messages for the Bubble Tea loop

package tui

import (
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"listdrag/board"
)

const watchDebounce = 100 * time.Millisecond

// boardChangedMsg is sent when the board file changes on disk
type boardChangedMsg struct{}

// configChangedMsg is sent when the config file changes on disk
type configChangedMsg struct{}

// boardLoadedMsg carries a board read in the background
type boardLoadedMsg struct {
	board *board.Board
	err   error
}

// waitForFileChange blocks until the board or config file is written or
// recreated. Events for other files in the watched directories are ignored.
func waitForFileChange(watcher *fsnotify.Watcher, boardPath, configPath string, log Logger) tea.Cmd {
	boardName := filepath.Clean(boardPath)
	configName := ""
	if configPath != "" {
		configName = filepath.Clean(configPath)
	}

	return func() tea.Msg {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}

				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}

				name := filepath.Clean(event.Name)
				switch {
				case sameFile(name, boardName):
					// Debounce: wait a bit for atomic writes to complete
					time.Sleep(watchDebounce)
					return boardChangedMsg{}
				case configName != "" && sameFile(name, configName):
					time.Sleep(watchDebounce)
					return configChangedMsg{}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}

				// Log error but continue watching
				log.Debugf("[WATCHER] Error: %v", err)
			}
		}
	}
}

// sameFile compares paths by absolute form, falling back to the base name
func sameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)

	if errA == nil && errB == nil {
		return absA == absB
	}

	return filepath.Base(a) == filepath.Base(b)
}

// reloadBoard loads the board in the background
func reloadBoard(loader BoardLoader, path string) tea.Cmd {
	return func() tea.Msg {
		b, err := loader.Load(path)
		return boardLoadedMsg{board: b, err: err}
	}
}
