// ABOUTME: Event handling and state updates for the TUI
// ABOUTME: Implements the Bubble Tea Update() function and message handlers

package tui

import (
	"runtime/debug"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"listdrag/config"
	"listdrag/drag"
	"listdrag/geometry"
	"listdrag/layout"
	"listdrag/state"
)

// collectedMsg carries a measurement finished off the UI goroutine
type collectedMsg struct {
	layout *layout.Layout
}

// dropTickMsg advances drop animation id by one frame
type dropTickMsg struct {
	id int
}

// Update handles messages and updates the model
//
//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			m.log.Debugf("[PANIC] Update panic: %v", r)
			m.log.Debugf("[PANIC] Stack trace: %s", string(debug.Stack()))
			panic(r) // Re-panic so Bubble Tea can handle it
		}
	}()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.measurer.SetOptions(layoutOptions(m.config(), msg.Width, msg.Height))

		return m, m.remeasure()

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return m.handleQuitKey()
		}

		cmd := m.handleKey(msg)

		return m, tea.Batch(cmd, m.settle())

	case tea.MouseMsg:
		cmd := m.handleMouse(msg)

		return m, tea.Batch(cmd, m.settle())

	case collectedMsg:
		m.collecting = false
		if err := m.ctrl.FinishCollect(msg.layout); err != nil {
			m.report("Re-measure failed", err)
		}

		return m, m.settle()

	case dropTickMsg:
		return m, m.advanceDrop(msg.id)

	case boardChangedMsg:
		var cmds []tea.Cmd
		if m.watcher != nil {
			cmds = append(cmds, waitForFileChange(m.watcher, m.boardPath, m.configPath, m.log))
		}

		if !m.ctrl.Idle() {
			m.reloadQueued = true
			return m, tea.Batch(cmds...)
		}

		cmds = append(cmds, reloadBoard(m.loader, m.boardPath))

		return m, tea.Batch(cmds...)

	case boardLoadedMsg:
		m.applyReload(msg)
		return m, nil

	case configChangedMsg:
		m.reloadConfig()

		var cmds []tea.Cmd
		if m.watcher != nil {
			cmds = append(cmds, waitForFileChange(m.watcher, m.boardPath, m.configPath, m.log))
		}

		cmds = append(cmds, m.remeasure())

		return m, tea.Batch(cmds...)
	}

	return m, nil
}

// handleKey dispatches a key press according to the drag phase
func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	s := m.ctrl.State()

	switch s.Phase() {
	case state.PhaseIdle:
		return m.handleIdleKey(msg)
	case state.PhaseDragging, state.PhaseBulkCollecting:
		session, _ := state.Session(s)
		return m.handleDragKey(msg, session.MovementMode)
	default:
		// Preparing, DropPending and DropAnimating take no input
		return nil
	}
}

func (m *model) handleIdleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Up):
		m.moveFocus(0, -1)
	case key.Matches(msg, keys.Down):
		m.moveFocus(0, 1)
	case key.Matches(msg, keys.Left):
		m.moveFocus(-1, 0)
	case key.Matches(msg, keys.Right):
		m.moveFocus(1, 0)
	case key.Matches(msg, keys.Lift):
		m.handleLiftKey()
	case key.Matches(msg, keys.Toggle):
		m.toggleList(m.shared.focusList)
	case key.Matches(msg, keys.Collect):
		m.ctrl.Remeasure()
		m.setStatusMsg("Re-measured")
	case key.Matches(msg, keys.PageUp):
		m.pageList(m.shared.focusList, -1)
	case key.Matches(msg, keys.PageDown):
		m.pageList(m.shared.focusList, 1)
	case key.Matches(msg, keys.PanLeft):
		m.pan(-1)
	case key.Matches(msg, keys.PanRight):
		m.pan(1)
	case key.Matches(msg, keys.Undo):
		m.undo()
	case key.Matches(msg, keys.Redo):
		m.redo()
	case key.Matches(msg, keys.Save):
		m.save()
	case key.Matches(msg, keys.Reload):
		return reloadBoard(m.loader, m.boardPath)
	}

	return nil
}

func (m *model) handleDragKey(msg tea.KeyMsg, mode state.MovementMode) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Cancel):
		m.drop(state.ReasonCancel)
		return nil
	case key.Matches(msg, keys.Collect):
		return m.startCollect()
	case key.Matches(msg, keys.Toggle):
		m.toggleList(m.targetList())
		return nil
	case key.Matches(msg, keys.PageUp):
		m.pageList(m.targetList(), -1)
		return nil
	case key.Matches(msg, keys.PageDown):
		m.pageList(m.targetList(), 1)
		return nil
	case key.Matches(msg, keys.PanLeft):
		m.pan(-1)
		return nil
	case key.Matches(msg, keys.PanRight):
		m.pan(1)
		return nil
	}

	if mode != state.ModeSnap {
		return nil
	}

	switch {
	case key.Matches(msg, keys.Up):
		m.step(drag.Up)
	case key.Matches(msg, keys.Down):
		m.step(drag.Down)
	case key.Matches(msg, keys.Left):
		m.step(drag.Left)
	case key.Matches(msg, keys.Right):
		m.step(drag.Right)
	case key.Matches(msg, keys.Lift):
		m.drop(state.ReasonDrop)
	}

	return nil
}

// handleMouse lifts on press, moves on motion and drops on release
func (m *model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	client := geometry.Position{X: float64(msg.X), Y: float64(msg.Y - boardTop)}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.handlePress(client)
		case tea.MouseButtonWheelUp:
			m.wheel(client, msg.Shift, -1, false)
		case tea.MouseButtonWheelDown:
			m.wheel(client, msg.Shift, 1, false)
		case tea.MouseButtonWheelLeft:
			m.wheel(client, msg.Shift, -1, true)
		case tea.MouseButtonWheelRight:
			m.wheel(client, msg.Shift, 1, true)
		}

	case tea.MouseActionMotion:
		if !m.pointerDown || !m.fluidDrag() {
			return nil
		}

		if err := m.ctrl.Move(client); err != nil {
			m.report("Move failed", err)
		}

	case tea.MouseActionRelease:
		if !m.pointerDown {
			return nil
		}

		m.pointerDown = false
		if m.fluidDrag() {
			m.drop(state.ReasonDrop)
		}
	}

	return nil
}

func (m *model) handlePress(client geometry.Position) {
	if !m.ctrl.Idle() || client.Y < 0 {
		return
	}

	scroll := m.ctrl.Scroll()
	page := client.Add(scroll.Window)

	item, ok := m.ctrl.Layout().ItemAt(page, scroll)
	if !ok {
		if list, found := m.ctrl.Layout().ListAt(page); found {
			m.shared.focusList = list.ID
		}

		return
	}

	m.shared.focus = item.ID
	m.shared.focusList = item.ListID

	if err := m.ctrl.Lift(item.ID, state.ModeFluid, client); err != nil {
		m.report("Lift failed", err)
		return
	}

	m.pointerDown = true
}

// wheel scrolls the list under the pointer, or the window when there is none
func (m *model) wheel(client geometry.Position, shift bool, dir int, horizontal bool) {
	step := float64(dir * m.config().ScrollStep)
	horizontal = horizontal || shift

	delta := geometry.Position{Y: step}
	if horizontal {
		delta = geometry.Position{X: step}
	}

	page := client.Add(m.ctrl.Scroll().Window)
	if list, ok := m.ctrl.Layout().ListAt(page); ok && list.Scrollable() && list.Horizontal == horizontal {
		if err := m.ctrl.ScrollList(list.ID, delta); err != nil {
			m.report("Scroll failed", err)
		}

		return
	}

	if err := m.ctrl.ScrollWindow(delta); err != nil {
		m.report("Scroll failed", err)
	}
}

func (m *model) fluidDrag() bool {
	session, ok := state.Session(m.ctrl.State())
	return ok && session.MovementMode == state.ModeFluid
}

func (m *model) handleLiftKey() {
	if m.shared.focus == "" {
		m.setStatusMsg("Nothing to lift")
		return
	}

	if err := m.ctrl.LiftWithKeyboard(m.shared.focus); err != nil {
		m.report("Lift failed", err)
	}
}

func (m *model) step(d drag.Direction) {
	if err := m.ctrl.Step(d); err != nil {
		m.report("Move failed", err)
	}
}

// drop ends the drag, remembering where the item was drawn so a drop
// animation can start from there
func (m *model) drop(reason state.DropReason) {
	if _, _, offset, ok := m.ctrl.Dragged(); ok {
		m.lastOffset = offset
	}

	m.pointerDown = false

	if err := m.ctrl.Drop(reason); err != nil {
		m.report("Drop failed", err)
	}
}

// targetList is the list a drag is over, else the focused one
func (m *model) targetList() string {
	if dest := m.ctrl.Impact().Destination; dest != nil {
		return string(dest.DroppableID)
	}

	return m.shared.focusList
}

func (m *model) toggleList(listID string) {
	idx := m.ctrl.Board().ListIndex(listID)
	if idx < 0 {
		return
	}

	list := m.ctrl.Board().Lists[idx]
	if err := m.ctrl.SetEnabled(listID, list.Disabled); err != nil {
		m.report("Toggle failed", err)
		return
	}

	if list.Disabled {
		m.setStatusMsg("Enabled " + list.Title)
	} else {
		m.setStatusMsg("Disabled " + list.Title)
	}
}

// pageList scrolls a list by one frame
func (m *model) pageList(listID string, dir int) {
	list, ok := m.ctrl.Layout().List(listID)
	if !ok {
		return
	}

	delta := geometry.Position{Y: float64(dir) * max(list.Frame.Height-1, 1)}
	if list.Horizontal {
		delta = geometry.Position{X: float64(dir) * max(list.Frame.Width-1, 1)}
	}

	if err := m.ctrl.ScrollList(listID, delta); err != nil {
		m.report("Scroll failed", err)
	}
}

// pan scrolls the window by one column
func (m *model) pan(dir int) {
	cfg := m.config()
	delta := geometry.Position{X: float64(dir * (cfg.ColumnWidth + cfg.ColumnGap))}

	if err := m.ctrl.ScrollWindow(delta); err != nil {
		m.report("Scroll failed", err)
	}
}

// startCollect re-measures while the drag continues. The command runs off
// the UI goroutine and the measurement fans out over the worker pool.
func (m *model) startCollect() tea.Cmd {
	if m.collecting {
		return nil
	}

	work, err := m.ctrl.StartCollect()
	if err != nil {
		m.report("Re-measure failed", err)
		return nil
	}

	m.collecting = true

	return func() tea.Msg {
		return collectedMsg{layout: work()}
	}
}

// remeasure lays the board out again, asynchronously while a drag runs
func (m *model) remeasure() tea.Cmd {
	if m.ctrl.Idle() {
		m.ctrl.Remeasure()
		m.ensureFocusVisible()

		return nil
	}

	if _, ok := state.Session(m.ctrl.State()); ok {
		return m.startCollect()
	}

	return nil
}

// settle reacts to the phase the last input left the engine in: it starts a
// drop animation, tracks the drawn offset, or finishes up once idle
func (m *model) settle() tea.Cmd {
	if m.shared.changed {
		m.shared.changed = false
		m.afterChange()
	}

	switch m.ctrl.State().Phase() {
	case state.PhaseDropAnimating:
		m.dragActive = true
		if m.anim != nil {
			return nil
		}

		_, _, to, _ := m.ctrl.Dragged()
		m.animSeq++
		m.anim = &dropAnimation{
			id:     m.animSeq,
			from:   m.lastOffset,
			to:     to,
			frames: m.config().DropFrames,
		}

		return m.dropTick(m.anim.id)

	case state.PhaseIdle:
		if !m.dragActive {
			return nil
		}

		m.dragActive = false
		m.anim = nil
		m.lastOffset = geometry.Origin
		m.refocus()

		var cmds []tea.Cmd
		if m.reloadQueued {
			m.reloadQueued = false
			cmds = append(cmds, reloadBoard(m.loader, m.boardPath))
		}

		return tea.Batch(cmds...)

	default:
		m.dragActive = true
		if _, _, offset, ok := m.ctrl.Dragged(); ok {
			m.lastOffset = offset
		}

		return nil
	}
}

func (m *model) dropTick(id int) tea.Cmd {
	return tea.Tick(m.config().DropInterval(), func(time.Time) tea.Msg {
		return dropTickMsg{id: id}
	})
}

// advanceDrop moves the animation one frame and completes the drop after the last
func (m *model) advanceDrop(id int) tea.Cmd {
	if m.anim == nil || m.anim.id != id {
		return nil
	}

	m.anim.frame++
	if m.anim.frame < m.anim.frames {
		return m.dropTick(id)
	}

	if err := m.ctrl.CompleteDrop(); err != nil {
		m.report("Drop failed", err)
	}

	return m.settle()
}

// afterChange is called once the board was edited
func (m *model) afterChange() {
	if !m.config().AutoSave || m.dryRun {
		return
	}

	m.save()
}

func (m *model) save() {
	if m.dryRun {
		m.setStatusMsg("Dry run: board not saved")
		return
	}

	if err := m.writer.Write(m.outputPath, m.ctrl.Board()); err != nil {
		m.report("Save failed", err)
		return
	}

	m.shared.dirty = false
	m.setStatusMsg("Saved " + m.outputPath)
}

func (m *model) undo() {
	prev, ok := m.undoMgr.Undo(BoardState{Board: m.ctrl.Board().Clone(), Focus: m.shared.focus})
	if !ok {
		m.setStatusMsg("Nothing to undo")
		return
	}

	m.restore(prev, "Undone")
}

func (m *model) redo() {
	next, ok := m.undoMgr.Redo(BoardState{Board: m.ctrl.Board().Clone(), Focus: m.shared.focus})
	if !ok {
		m.setStatusMsg("Nothing to redo")
		return
	}

	m.restore(next, "Redone")
}

func (m *model) restore(s BoardState, status string) {
	if err := m.ctrl.Replace(s.Board); err != nil {
		m.report(status+" failed", err)
		return
	}

	m.shared.dirty = true
	m.shared.changed = true
	m.shared.focus = s.Focus
	m.refocus()
	m.setStatusMsg(status)
}

// applyReload swaps in a board read from disk unless it matches what is shown
func (m *model) applyReload(msg boardLoadedMsg) {
	if msg.err != nil {
		m.report("Reload failed", msg.err)
		return
	}

	if msg.board.Format() == m.ctrl.Board().Format() {
		return
	}

	if !m.ctrl.Idle() {
		m.reloadQueued = true
		return
	}

	if err := m.ctrl.Restore(msg.board, "reload"); err != nil {
		m.report("Reload failed", err)
		return
	}

	m.shared.dirty = false
	m.shared.changed = false
	m.refocus()
	m.setStatusMsg("Reloaded " + m.boardPath)
}

// reloadConfig re-reads the config file and applies it to the layout
func (m *model) reloadConfig() {
	cfg, err := config.LoadConfig(m.configPath)
	if err != nil {
		m.report("Config reload failed", err)
		return
	}

	m.sharedConfig.Update(cfg)
	m.measurer.SetOptions(layoutOptions(cfg, m.width, m.height))
	m.ctrl.SetAutoScrollMode(autoScrollMode(cfg))
	m.setStatusMsg("Config reloaded")
}

// handleQuitKey abandons any drag and quits
func (m *model) handleQuitKey() (model, tea.Cmd) {
	m.quitting = true

	if !m.ctrl.Idle() {
		if err := m.ctrl.Abort(); err != nil {
			m.log.Debugf("[TUI] abort on quit failed: %v", err)
		}
	}

	return *m, tea.Quit
}

// report logs err and shows it in the status bar
func (m *model) report(action string, err error) {
	m.log.Debugf("[TUI] %s: %v", action, err)
	m.setStatusMsg(action + ": " + err.Error())
}
