// ABOUTME: Terminal UI model and core state management
// ABOUTME: Bubble Tea model hosting the drag controller over a board file

// Package tui provides the interactive board where items are dragged between
// lists with the keyboard or the mouse.
package tui

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"listdrag/board"
	"listdrag/config"
	"listdrag/drag"
	"listdrag/geometry"
	"listdrag/layout"
	"listdrag/pool"
	"listdrag/state"
)

// Layout constants for UI dimensions
const (
	titleHeight     = 1
	statusBarHeight = 1
	helpHeight      = 1
	totalUIChrome   = titleHeight + statusBarHeight + helpHeight
	boardTop        = titleHeight // first screen row of the board

	minBoardWidth  = 20
	minBoardHeight = 8
)

// Interaction constants
const (
	statusMessageDuration = 5 * time.Second
	maxUndoStackSize      = 50
	measureBuffer         = 64
)

// dropAnimation tweens the dragged item to where it lands
type dropAnimation struct {
	id     int
	from   geometry.Position
	to     geometry.Position
	frame  int
	frames int
}

// offset is the interpolated client offset for the current frame
func (a dropAnimation) offset() geometry.Position {
	if a.frames <= 0 || a.frame >= a.frames {
		return a.to
	}

	t := float64(a.frame) / float64(a.frames)
	t = 1 - (1-t)*(1-t) // ease out
	delta := a.to.Subtract(a.from)

	return a.from.Add(geometry.Position{X: delta.X * t, Y: delta.Y * t})
}

// shared holds state the controller callbacks write into; the model is
// copied on every update so callbacks cannot reach it directly
type shared struct {
	dirty        bool
	changed      bool // edited since the last autosave check
	announcement string
	focus        string // focused item id
	focusList    string // focused list id, used when the list is empty
}

// model holds the TUI state
type model struct {
	// Dependencies
	ctrl         *drag.Controller
	measurer     *layout.Measurer
	sharedConfig ConfigProvider
	loader       BoardLoader
	writer       BoardWriter
	log          Logger

	// File I/O
	boardPath  string
	outputPath string
	configPath string
	dryRun     bool
	watcher    *fsnotify.Watcher

	// UI state
	width        int
	height       int
	quitting     bool
	statusMsg    string
	statusMsgAge time.Time
	pointerDown  bool
	collecting   bool
	reloadQueued bool
	anim         *dropAnimation
	animSeq      int
	lastOffset   geometry.Position // dragged item offset last drawn before a drop
	dragActive   bool

	undoMgr *UndoManager
	shared  *shared
}

// Key bindings
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Lift     key.Binding
	Cancel   key.Binding
	Toggle   key.Binding
	Collect  key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	PanLeft  key.Binding
	PanRight key.Binding
	Undo     key.Binding
	Redo     key.Binding
	Save     key.Binding
	Reload   key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	Lift: key.NewBinding(
		key.WithKeys(" ", "space", "enter"),
		key.WithHelp("space", "lift/drop"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "enable/disable list"),
	),
	Collect: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "re-measure"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "scroll list up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "scroll list down"),
	),
	PanLeft: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "pan left"),
	),
	PanRight: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "pan right"),
	),
	Undo: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "undo"),
	),
	Redo: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "redo"),
	),
	Save: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "save"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	phaseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("13"))

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("15")).
			Padding(0, 1)
)

// layoutOptions maps config onto layout settings for a terminal of the given size
func layoutOptions(cfg config.Config, width, height int) layout.Options {
	return layout.Options{
		Width:       max(width, minBoardWidth),
		Height:      max(height-totalUIChrome, minBoardHeight),
		ColumnWidth: cfg.ColumnWidth,
		ColumnGap:   cfg.ColumnGap,
		ItemGap:     cfg.ItemGap,
	}
}

func autoScrollMode(cfg config.Config) state.AutoScrollMode {
	if cfg.JumpScroll {
		return state.AutoScrollJump
	}

	return state.AutoScrollFluid
}

// Run starts the TUI with injected dependencies
func Run(opts Options, deps Dependencies) error {
	if deps.Logger == nil {
		deps.Logger = nopLogger{}
	}

	b, err := deps.BoardLoader.Load(opts.BoardPath)
	if err != nil {
		return err
	}

	p := pool.NewWorkerPool(measureBuffer)
	defer p.Close()

	m := initModel(b, opts, deps, p)

	if opts.Watch {
		watcher, err := newWatcher(opts.BoardPath, deps.ConfigPath)
		if err != nil {
			deps.Logger.Debugf("[TUI] file watching disabled: %v", err)
		} else {
			defer func() {
				_ = watcher.Close()
			}()
			m.watcher = watcher
		}
	}

	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	final, ok := finalModel.(model)
	if !ok || !final.shared.dirty {
		return nil
	}

	if final.dryRun {
		fmt.Println("--dry-run mode: board not modified")
		return nil
	}

	if err := final.writer.Write(final.outputPath, final.ctrl.Board()); err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}

	fmt.Printf("Saved board to: %s\n", final.outputPath)

	return nil
}

// initModel creates the initial model with injected dependencies
func initModel(b *board.Board, opts Options, deps Dependencies, p *pool.WorkerPool) model {
	if deps.Logger == nil {
		deps.Logger = nopLogger{}
	}

	cfg := deps.ConfigProvider.Get()

	outputPath := opts.BoardPath
	if opts.OutputPath != "" {
		outputPath = opts.OutputPath
	}

	measurer := layout.NewMeasurer(layoutOptions(cfg, 80, 24), p)
	ctrl := drag.New(b, measurer, deps.Logger, drag.Options{AutoScrollMode: autoScrollMode(cfg)})

	m := model{
		ctrl:         ctrl,
		measurer:     measurer,
		sharedConfig: deps.ConfigProvider,
		loader:       deps.BoardLoader,
		writer:       deps.BoardWriter,
		log:          deps.Logger,
		boardPath:    opts.BoardPath,
		outputPath:   outputPath,
		configPath:   deps.ConfigPath,
		dryRun:       opts.DryRun,
		width:        80,
		height:       24,
		undoMgr:      NewUndoManager(maxUndoStackSize),
		shared:       &shared{},
	}

	m.bindController()
	m.focusFirst()

	return m
}

// bindController routes controller callbacks into the shared state
func (m *model) bindController() {
	undoMgr := m.undoMgr
	sh := m.shared
	log := m.log

	m.ctrl.OnChange(func(ch drag.Change) {
		undoMgr.Push(BoardState{Board: ch.Before, Focus: sh.focus})
		sh.dirty = true
		sh.changed = true
	})
	m.ctrl.OnAnnounce(func(msg string) {
		sh.announcement = msg
	})
	m.ctrl.OnTransition(func(tr state.Transition) {
		log.Debugf("[TUI] %s: %s -> %s", tr.Action.Type(), tr.From.Phase(), tr.To.Phase())
	})
}

// Init initializes the model
func (m model) Init() tea.Cmd {
	if m.watcher == nil {
		return nil
	}

	return waitForFileChange(m.watcher, m.boardPath, m.configPath, m.log)
}

// newWatcher watches the directories holding the board and config files.
// Directories survive the rename used for backups, the files do not.
func newWatcher(paths ...string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	seen := map[string]bool{}
	for _, path := range paths {
		if path == "" {
			continue
		}

		dir := filepath.Dir(path)
		if seen[dir] {
			continue
		}

		seen[dir] = true
		if err := watcher.Add(dir); err != nil && path == paths[0] {
			_ = watcher.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	return watcher, nil
}

// setStatusMsg sets a transient status message with current timestamp
func (m *model) setStatusMsg(msg string) {
	m.statusMsg = msg
	m.statusMsgAge = time.Now()
}

func (m *model) config() config.Config {
	return m.sharedConfig.Get()
}
