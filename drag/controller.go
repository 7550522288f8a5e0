// ABOUTME: Binds a board, its layout and the drag engine into one controller
// ABOUTME: Hosts call Lift/Move/Step/Scroll/Drop; finished drops are applied to the board

// Package drag is the host side of the engine. It measures the board through a
// layout.Provider, turns host input into engine actions and writes completed
// drops back into the board. Both the interactive UI and the replay command
// drive a Controller.
package drag

import (
	"errors"
	"fmt"

	"listdrag/board"
	"listdrag/dimension"
	"listdrag/geometry"
	"listdrag/impact"
	"listdrag/layout"
	"listdrag/state"
)

// Logger provides debug logging capability
type Logger interface {
	Debugf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}

// Direction is a keyboard step
type Direction int

// Keyboard steps
const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) action() state.Action {
	switch d {
	case Up:
		return state.MoveUpAction{}
	case Down:
		return state.MoveDownAction{}
	case Left:
		return state.MoveLeftAction{}
	default:
		return state.MoveRightAction{}
	}
}

// Errors returned by the controller
var (
	ErrUnknownItem = errors.New("unknown item")
	ErrUnknownList = errors.New("unknown list")
	ErrBusy        = errors.New("a drag is in progress")
)

// Change describes an edit made to the board
type Change struct {
	Before *board.Board // snapshot taken before the edit
	Reason string
}

// Options configure a Controller
type Options struct {
	AutoScrollMode state.AutoScrollMode
}

// Controller owns the board being dragged on
type Controller struct {
	engine   *state.Engine
	provider layout.Provider
	board    *board.Board
	layout   *layout.Layout
	scroll   layout.Scroll
	opts     Options
	log      Logger

	onChange   func(Change)
	onAnnounce func(string)
	last       *state.DropResult
}

// New creates a controller for b. log may be nil.
func New(b *board.Board, provider layout.Provider, log Logger, opts Options) *Controller {
	if log == nil {
		log = nopLogger{}
	}

	if opts.AutoScrollMode == "" {
		opts.AutoScrollMode = state.AutoScrollFluid
	}

	c := &Controller{
		engine:   state.NewEngine(log),
		provider: provider,
		board:    b,
		opts:     opts,
		log:      log,
	}

	c.engine.SetHooks(state.Hooks{
		OnDragStart:  c.dragStarted,
		OnDragUpdate: c.dragUpdated,
		OnDragEnd:    c.dragEnded,
	})
	c.Remeasure()

	return c
}

// OnChange registers fn to run after every board edit
func (c *Controller) OnChange(fn func(Change)) {
	c.onChange = fn
}

// OnAnnounce registers fn to receive a short message for every drag event
func (c *Controller) OnAnnounce(fn func(string)) {
	c.onAnnounce = fn
}

// OnTransition forwards engine transitions to fn
func (c *Controller) OnTransition(fn func(state.Transition)) {
	c.engine.OnTransition(fn)
}

// SetAutoScrollMode changes the mode used by the next keyboard lift
func (c *Controller) SetAutoScrollMode(mode state.AutoScrollMode) {
	c.opts.AutoScrollMode = mode
}

// Board returns the live board
func (c *Controller) Board() *board.Board { return c.board }

// Layout returns the current measurement
func (c *Controller) Layout() *layout.Layout { return c.layout }

// Scroll returns the current window and list scroll
func (c *Controller) Scroll() layout.Scroll { return c.scroll }

// State returns the engine snapshot
func (c *Controller) State() state.State { return c.engine.State() }

// LastResult is the most recent finished drag, if any
func (c *Controller) LastResult() (state.DropResult, bool) {
	if c.last == nil {
		return state.DropResult{}, false
	}

	return *c.last, true
}

// Idle reports whether no drag is running
func (c *Controller) Idle() bool {
	return c.engine.State().Phase() == state.PhaseIdle
}

// Remeasure lays the board out again and clamps scroll offsets to it
func (c *Controller) Remeasure() {
	c.setLayout(c.provider.Measure(c.board))
}

func (c *Controller) setLayout(l *layout.Layout) {
	c.layout = l

	lists := make(map[string]geometry.Position, len(c.scroll.Lists))
	for id, p := range c.scroll.Lists {
		if _, ok := l.List(id); ok {
			lists[id] = l.ClampListScroll(id, p)
		}
	}

	c.scroll = layout.Scroll{Window: l.ClampWindowScroll(c.scroll.Window), Lists: lists}
}

// Replace swaps in a new board. Only allowed while idle.
func (c *Controller) Replace(b *board.Board) error {
	if !c.Idle() {
		return ErrBusy
	}

	c.board = b
	c.Remeasure()

	return nil
}

// Restore swaps in an earlier board and reports it as an edit
func (c *Controller) Restore(b *board.Board, reason string) error {
	before := c.board.Clone()
	if err := c.Replace(b); err != nil {
		return err
	}

	c.changed(before, reason)

	return nil
}

// ClientCenter is where item id is drawn right now, in client space
func (c *Controller) ClientCenter(itemID string) (geometry.Position, bool) {
	rect, ok := c.layout.ItemRect(itemID, c.scroll)
	if !ok {
		return geometry.Position{}, false
	}

	return rect.Center.Subtract(c.scroll.Window), true
}

// Lift starts dragging item itemID with the selection at client point selection
func (c *Controller) Lift(itemID string, mode state.MovementMode, selection geometry.Position) error {
	if !c.Idle() {
		return ErrBusy
	}

	item, ok := c.layout.Items[itemID]
	if !ok {
		return fmt.Errorf("lift %s: %w", itemID, ErrUnknownItem)
	}

	if err := c.engine.Dispatch(state.PrepareAction{}); err != nil {
		return err
	}

	dims := c.layout.Dimensions(c.scroll)
	draggable := dims.Draggables[dimension.DraggableID(item.ID)]
	home := dims.Droppables[draggable.Descriptor.DroppableID]

	// Jump scrolling only applies to keyboard drags
	autoScroll := state.AutoScrollFluid
	if mode == state.ModeSnap {
		autoScroll = c.opts.AutoScrollMode
	}

	err := c.engine.Dispatch(state.InitialPublishAction{
		Critical: state.Critical{
			Draggable: draggable.Descriptor,
			Droppable: home.Descriptor,
		},
		Dimensions:      dims,
		ClientSelection: selection,
		Viewport:        c.layout.Viewport(c.scroll.Window),
		MovementMode:    mode,
		AutoScrollMode:  autoScroll,
	})
	if err != nil {
		_ = c.engine.Dispatch(state.CleanAction{})
		return fmt.Errorf("failed to start drag: %w", err)
	}

	return nil
}

// LiftWithKeyboard lifts item itemID with the selection at its centre
func (c *Controller) LiftWithKeyboard(itemID string) error {
	center, ok := c.ClientCenter(itemID)
	if !ok {
		return fmt.Errorf("lift %s: %w", itemID, ErrUnknownItem)
	}

	return c.Lift(itemID, state.ModeSnap, center)
}

// Move moves the pointer to client point p
func (c *Controller) Move(p geometry.Position) error {
	return c.engine.Dispatch(state.MoveAction{Client: p})
}

// MoveBy moves the selection by delta from where it is now
func (c *Controller) MoveBy(delta geometry.Position) error {
	session, ok := state.Session(c.engine.State())
	if !ok {
		return &state.InvariantError{Phase: c.engine.State().Phase(), Action: state.ActionMove, Message: "no drag in progress"}
	}

	return c.Move(session.Current.Client.Selection.Add(delta))
}

// Step is a keyboard move
func (c *Controller) Step(d Direction) error {
	return c.engine.Dispatch(d.action())
}

// canScroll reports whether scroll offsets may change in the current phase
func (c *Controller) canScroll() bool {
	switch c.engine.State().Phase() {
	case state.PhaseDropPending, state.PhaseDropAnimating, state.PhasePreparing:
		return false
	default:
		return true
	}
}

// ScrollList scrolls list listID by delta, clamped to its content
func (c *Controller) ScrollList(listID string, delta geometry.Position) error {
	if _, ok := c.layout.List(listID); !ok {
		return fmt.Errorf("scroll %s: %w", listID, ErrUnknownList)
	}

	if !c.canScroll() {
		return nil
	}

	current := c.scroll.List(listID)
	next := c.layout.ClampListScroll(listID, current.Add(delta))
	if next == current {
		return nil
	}

	c.scroll = c.scroll.WithList(listID, next)

	if c.engine.State().Phase() != state.PhaseDragging {
		return nil
	}

	return c.engine.Dispatch(state.UpdateDroppableScrollAction{ID: dimension.DroppableID(listID), Offset: next})
}

// ScrollWindow scrolls the whole board by delta
func (c *Controller) ScrollWindow(delta geometry.Position) error {
	if !c.canScroll() {
		return nil
	}

	next := c.layout.ClampWindowScroll(c.scroll.Window.Add(delta))
	if next == c.scroll.Window {
		return nil
	}

	c.scroll.Window = next

	if _, ok := state.Session(c.engine.State()); !ok {
		return nil
	}

	return c.engine.Dispatch(state.MoveByWindowScrollAction{Scroll: next})
}

// SetEnabled toggles whether list listID accepts drops
func (c *Controller) SetEnabled(listID string, enabled bool) error {
	idx := c.board.ListIndex(listID)
	if idx < 0 {
		return fmt.Errorf("toggle %s: %w", listID, ErrUnknownList)
	}

	if c.board.Lists[idx].Disabled == !enabled {
		return nil
	}

	before := c.board.Clone()
	if err := c.board.SetDisabled(listID, !enabled); err != nil {
		return err
	}

	c.Remeasure()
	c.changed(before, "toggle "+c.board.Lists[idx].Title)

	if _, ok := state.Session(c.engine.State()); !ok {
		return nil
	}

	return c.engine.Dispatch(state.UpdateDroppableIsEnabledAction{ID: dimension.DroppableID(listID), IsEnabled: enabled})
}

// StartCollect announces a re-measurement and returns the measuring work,
// which may run on another goroutine. It measures a snapshot of the board.
func (c *Controller) StartCollect() (func() *layout.Layout, error) {
	if err := c.engine.Dispatch(state.BulkCollectionStartingAction{}); err != nil {
		return nil, err
	}

	snapshot := c.board.Clone()
	provider := c.provider

	return func() *layout.Layout { return provider.Measure(snapshot) }, nil
}

// FinishCollect publishes a finished measurement. If the drag ended while
// measuring, the layout is simply kept.
func (c *Controller) FinishCollect(l *layout.Layout) error {
	c.setLayout(l)

	switch s := c.engine.State().(type) {
	case state.BulkCollecting:
	case state.DropPending:
		if !s.IsWaiting {
			return nil
		}
	default:
		return nil
	}

	viewport := l.Viewport(c.scroll.Window)

	return c.engine.Dispatch(state.BulkReplaceAction{
		Dimensions: l.Dimensions(c.scroll),
		Viewport:   &viewport,
	})
}

// Recollect measures again synchronously
func (c *Controller) Recollect() error {
	work, err := c.StartCollect()
	if err != nil {
		return err
	}

	return c.FinishCollect(work())
}

// Drop ends the drag for reason
func (c *Controller) Drop(reason state.DropReason) error {
	return c.engine.Drop(reason)
}

// CompleteDrop finishes a running drop animation
func (c *Controller) CompleteDrop() error {
	return c.engine.CompleteDrop()
}

// Abort throws the drag away without animating
func (c *Controller) Abort() error {
	return c.engine.Dispatch(state.CleanAction{})
}

// Impact is the impact currently drawn: the live one while dragging, the
// settled one while a drop animates
func (c *Controller) Impact() impact.DragImpact {
	switch s := c.engine.State().(type) {
	case state.DropAnimating:
		return s.Pending.Impact
	default:
		if session, ok := state.Session(s); ok {
			return session.Impact
		}

		return impact.None()
	}
}

// Shift is how far item id is displaced by the current impact
func (c *Controller) Shift(id string) geometry.Position {
	current := c.Impact()

	for _, d := range current.Movement.Displaced {
		if string(d.DraggableID) != id {
			continue
		}

		if current.Movement.IsBeyondStartPosition {
			return current.Movement.Amount.Negate()
		}

		return current.Movement.Amount
	}

	return geometry.Origin
}

// Dragged returns the dragged item, its client rect at lift and its current offset
func (c *Controller) Dragged() (id string, rect geometry.Rect, offset geometry.Position, ok bool) {
	switch s := c.engine.State().(type) {
	case state.DropAnimating:
		d := s.Dimensions.Draggables[s.Critical.Draggable.ID]
		return string(s.Critical.Draggable.ID), d.Client.WithoutMargin, s.Pending.NewHomeOffset, true
	default:
		session, found := state.Session(s)
		if !found {
			return "", geometry.Rect{}, geometry.Origin, false
		}

		d := session.Dimensions.Draggables[session.Critical.Draggable.ID]

		return string(session.Critical.Draggable.ID), d.Client.WithoutMargin, session.Current.Client.Offset, true
	}
}

func (c *Controller) changed(before *board.Board, reason string) {
	if c.onChange != nil {
		c.onChange(Change{Before: before, Reason: reason})
	}
}

func (c *Controller) announce(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	c.log.Debugf("announce: %s", msg)

	if c.onAnnounce != nil {
		c.onAnnounce(msg)
	}
}
