// ABOUTME: View rendering for the TUI
// ABOUTME: Composes title, board canvas, status bar and phase-aware help

package tui

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"listdrag/state"
)

// View renders the TUI
func (m model) View() string {
	defer func() {
		if r := recover(); r != nil {
			m.log.Debugf("[PANIC] View panic: %v", r)
			m.log.Debugf("[PANIC] Stack trace: %s", string(debug.Stack()))
			panic(r) // Re-panic so Bubble Tea can handle it
		}
	}()

	if m.quitting {
		return "Exiting...\n"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitle(),
		m.renderBoard().String(),
		m.renderStatus(),
		m.renderHelp(),
	)
}

// renderTitle shows the board file and the drag phase
func (m model) renderTitle() string {
	name := m.boardPath
	if m.shared.dirty {
		name += " *"
	}

	phase := phaseStyle.Render(string(m.ctrl.State().Phase()))
	if session, ok := state.Session(m.ctrl.State()); ok {
		phase = phaseStyle.Render(fmt.Sprintf("%s %s", session.MovementMode, m.ctrl.State().Phase()))
	}

	title := titleStyle.Render("listdrag") + " " + name
	gap := max(m.width-lipgloss.Width(title)-lipgloss.Width(phase), 1)

	return ansi.Truncate(title+fmt.Sprintf("%*s", gap, "")+phase, m.width, "")
}

// renderStatus renders the status bar
func (m model) renderStatus() string {
	// Show status message if recent
	if m.statusMsg != "" && time.Since(m.statusMsgAge) < statusMessageDuration {
		return statusStyle.Width(m.width).Render(ansi.Truncate(m.statusMsg, max(m.width-2, 0), "…"))
	}

	if m.shared.announcement != "" && !m.ctrl.Idle() {
		return statusStyle.Width(m.width).Render(ansi.Truncate(m.shared.announcement, max(m.width-2, 0), "…"))
	}

	b := m.ctrl.Board()
	items := 0
	for _, list := range b.Lists {
		items += len(list.Items)
	}

	status := fmt.Sprintf("%d lists | %d items | U:%d R:%d", len(b.Lists), items, m.undoMgr.UndoSize(), m.undoMgr.RedoSize())
	if m.shared.announcement != "" {
		status += " | " + m.shared.announcement
	}

	return statusStyle.Width(m.width).Render(ansi.Truncate(status, max(m.width-2, 0), "…"))
}

// helpBindings lists the keys that do something in the current phase
func (m model) helpBindings() []key.Binding {
	s := m.ctrl.State()

	session, dragging := state.Session(s)
	switch {
	case !dragging && s.Phase() == state.PhaseIdle:
		return []key.Binding{keys.Up, keys.Down, keys.Left, keys.Right, keys.Lift, keys.Toggle, keys.PanLeft, keys.PanRight, keys.Undo, keys.Redo, keys.Save, keys.Reload, keys.Quit}
	case dragging && session.MovementMode == state.ModeSnap:
		return []key.Binding{keys.Up, keys.Down, keys.Left, keys.Right, keys.Lift, keys.Cancel, keys.Toggle, keys.Collect, keys.PageUp, keys.PageDown, keys.Quit}
	case dragging:
		return []key.Binding{keys.Cancel, keys.Toggle, keys.Collect, keys.PageUp, keys.PageDown, keys.PanLeft, keys.PanRight, keys.Quit}
	default:
		return []key.Binding{keys.Quit}
	}
}

// renderHelp renders the help text
func (m model) renderHelp() string {
	h := help.New()
	h.Width = m.width

	return h.ShortHelpView(m.helpBindings())
}
