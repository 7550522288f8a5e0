// ABOUTME: Read-only board viewer with live file watching and scrolling
// ABOUTME: Monitors the board file for changes and displays it in a scrollable viewport

package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"listdrag/board"
	"listdrag/config"
	"listdrag/layout"
)

const (
	viewHeaderHeight = 1 // title
	viewFooterHeight = 2 // status + help
	viewDebounce     = 100 * time.Millisecond
)

var viewCmd = &cobra.Command{
	Use:   "view <board>",
	Short: "Watch a board file without editing it",
	Long: `Shows a board read-only and redraws it whenever the file changes on disk,
for example while a replay or another listdrag session writes it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(resolveConfigPath(configPath))
		if err != nil {
			cfg = config.DefaultConfig()
		}

		return RunViewMode(args[0], cfg)
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

// viewModel holds the state for the read-only board viewer
type viewModel struct {
	boardPath   string
	board       *board.Board
	cfg         config.Config
	viewport    viewport.Model
	width       int
	height      int
	fileWatcher *fsnotify.Watcher
	lastReload  time.Time
	errorMsg    string
	ready       bool
}

// Key bindings for view mode
type viewKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Reload   key.Binding
	Quit     key.Binding
}

var viewKeys = viewKeyMap{
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
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdn", "page down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "go to top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "go to bottom"),
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

// Styles for view mode
var (
	viewTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	viewHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	viewDisabledStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))

	viewStatusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("15")).
			Padding(0, 1)

	viewHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	viewErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

// fileChangeMsg is sent when the board file changes
type fileChangeMsg struct{}

// reloadCompleteMsg is sent after a board reload completes
type reloadCompleteMsg struct {
	board *board.Board
	err   error
}

// RunViewMode starts the view-only mode with file watching
func RunViewMode(boardPath string, cfg config.Config) error {
	b, err := LoadBoard(boardPath)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	defer func() {
		_ = watcher.Close()
	}()

	// Watch the directory: saving replaces the file through a rename
	if err := watcher.Add(filepath.Dir(boardPath)); err != nil {
		return fmt.Errorf("failed to watch board file: %w", err)
	}

	m := viewModel{
		boardPath:   boardPath,
		board:       b,
		cfg:         cfg,
		fileWatcher: watcher,
		lastReload:  time.Now(),
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("view mode error: %w", err)
	}

	return nil
}

// Init initializes the view model
func (m viewModel) Init() tea.Cmd {
	return waitForBoardChange(m.fileWatcher, m.boardPath)
}

// waitForBoardChange returns a command that waits for the board file to be written
func waitForBoardChange(watcher *fsnotify.Watcher, boardPath string) tea.Cmd {
	want := filepath.Base(boardPath)

	return func() tea.Msg {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}

				if filepath.Base(event.Name) != want {
					continue
				}

				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					// Debounce: wait a bit for atomic writes to complete
					time.Sleep(viewDebounce)
					return fileChangeMsg{}
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
			}
		}
	}
}

// reloadBoard loads the board in the background
func reloadBoard(path string) tea.Cmd {
	return func() tea.Msg {
		b, err := LoadBoard(path)
		return reloadCompleteMsg{board: b, err: err}
	}
}

// Update handles messages and updates the model
//
//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		height := max(msg.Height-viewHeaderHeight-viewFooterHeight, 1)

		if !m.ready {
			// Initialize viewport on first size message
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}

		m.viewport.SetContent(m.renderBoardContent())

		return m, nil

	case fileChangeMsg:
		return m, tea.Batch(
			reloadBoard(m.boardPath),
			waitForBoardChange(m.fileWatcher, m.boardPath), // Continue watching
		)

	case reloadCompleteMsg:
		if msg.err != nil {
			m.errorMsg = fmt.Sprintf("Error reloading: %v", msg.err)
		} else {
			m.board = msg.board
			m.lastReload = time.Now()
			m.errorMsg = ""
			m.viewport.SetContent(m.renderBoardContent())
		}

		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, viewKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, viewKeys.Top):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, viewKeys.Bottom):
			m.viewport.GotoBottom()
			return m, nil
		case key.Matches(msg, viewKeys.Reload):
			return m, reloadBoard(m.boardPath)
		}
	}

	// Arrows and paging scroll the viewport
	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

// View renders the view
func (m viewModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	title := viewTitleStyle.Render(fmt.Sprintf("Board Viewer: %s", m.boardPath))

	return fmt.Sprintf("%s\n%s\n%s\n%s", title, m.viewport.View(), m.renderStatus(), m.renderHelp())
}

// renderBoardContent draws vertical lists side by side and horizontal lists below them
func (m viewModel) renderBoardContent() string {
	var columns, rows []string

	for _, list := range m.board.Lists {
		header := viewHeaderStyle.Render(fmt.Sprintf("%s (%d)", list.Title, len(list.Items)))
		if list.Disabled {
			header = viewDisabledStyle.Render(list.Title + " (disabled)")
		}

		boxes := make([]string, 0, len(list.Items))
		for _, item := range list.Items {
			label := layout.Label(item.Title, list.Horizontal, m.cfg.ColumnWidth)
			width := m.cfg.ColumnWidth
			if list.Horizontal {
				width = 0
			}

			boxes = append(boxes, layout.ItemStyle(width).Render(label))
		}

		if list.Horizontal {
			rows = append(rows, lipgloss.JoinVertical(lipgloss.Left, header, lipgloss.JoinHorizontal(lipgloss.Top, boxes...)))
			continue
		}

		column := lipgloss.JoinVertical(lipgloss.Left, append([]string{header}, boxes...)...)
		columns = append(columns, lipgloss.NewStyle().Width(m.cfg.ColumnWidth).MarginRight(m.cfg.ColumnGap).Render(column))
	}

	parts := []string{lipgloss.JoinHorizontal(lipgloss.Top, columns...)}
	parts = append(parts, rows...)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderStatus renders the status bar
func (m viewModel) renderStatus() string {
	if m.errorMsg != "" {
		return viewErrorStyle.Render(m.errorMsg)
	}

	items := 0
	for _, list := range m.board.Lists {
		items += len(list.Items)
	}

	status := fmt.Sprintf("%d lists | %d items | reloaded %s | %3.0f%%",
		len(m.board.Lists), items, m.lastReload.Format("15:04:05"), m.viewport.ScrollPercent()*100)

	return viewStatusStyle.Width(m.width).Render(status)
}

// renderHelp renders the help text
func (m viewModel) renderHelp() string {
	bindings := []key.Binding{viewKeys.Up, viewKeys.Down, viewKeys.PageUp, viewKeys.PageDown, viewKeys.Top, viewKeys.Bottom, viewKeys.Reload, viewKeys.Quit}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, b.Help().Key+": "+b.Help().Desc)
	}

	return viewHelpStyle.Render(" " + strings.Join(parts, " | "))
}
