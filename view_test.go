// ABOUTME: Tests for the read-only board viewer model
// ABOUTME: Checks sizing, board rendering and reload handling without a terminal

package main

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"listdrag/board"
	"listdrag/config"
)

func newTestViewModel(t *testing.T) viewModel {
	t.Helper()

	b, err := board.Parse(strings.NewReader(replayBoard + "# Archive [disabled]\n- old\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	m := viewModel{boardPath: "test.board", board: b, cfg: config.DefaultConfig()}

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	return updated.(viewModel)
}

func TestViewModelRendersBoard(t *testing.T) {
	m := newTestViewModel(t)

	if !m.ready {
		t.Fatal("model not ready after WindowSizeMsg")
	}

	if m.viewport.Height != 27 {
		t.Errorf("viewport height = %d, want 27", m.viewport.Height)
	}

	view := m.View()
	for _, want := range []string{"Board Viewer: test.board", "Todo (3)", "Done (1)", "Archive (disabled)", "three", "3 lists | 5 items"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestViewModelReload(t *testing.T) {
	m := newTestViewModel(t)

	updated, _ := m.Update(reloadCompleteMsg{err: errors.New("boom")})
	m = updated.(viewModel)

	if !strings.Contains(m.View(), "Error reloading: boom") {
		t.Errorf("View() does not show the reload error")
	}

	b, err := board.Parse(strings.NewReader("# Fresh\n- new item\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	updated, _ = m.Update(reloadCompleteMsg{board: b})
	m = updated.(viewModel)

	if m.errorMsg != "" {
		t.Errorf("errorMsg = %q, want cleared", m.errorMsg)
	}

	if view := m.View(); !strings.Contains(view, "Fresh (1)") || strings.Contains(view, "Todo") {
		t.Errorf("View() after reload:\n%s", view)
	}
}

func TestViewModelQuit(t *testing.T) {
	m := newTestViewModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q returned no command")
	}

	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}
