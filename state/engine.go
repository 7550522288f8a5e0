// ABOUTME: Engine owns the current drag state and sequences drops
// ABOUTME: Fires transition callbacks and drag start/update/end hooks as transitions happen

package state

import (
	"listdrag/dimension"
	"listdrag/impact"
)

// DragStart describes a drag that has just begun
type DragStart struct {
	DraggableID dimension.DraggableID
	Type        dimension.TypeID
	Source      impact.Location
	Mode        MovementMode
}

// DragUpdate is sent whenever the destination changes
type DragUpdate struct {
	DragStart
	Destination *impact.Location
}

// Hooks are optional drag lifecycle callbacks
type Hooks struct {
	OnDragStart  func(DragStart)
	OnDragUpdate func(DragUpdate)
	OnDragEnd    func(DropResult)
}

// Transition is one applied action
type Transition struct {
	From   State
	To     State
	Action Action
}

// Engine is the drag store. It is not safe for concurrent use; hosts serialise
// actions onto one goroutine.
type Engine struct {
	reducer      *Reducer
	state        State
	log          Logger
	hooks        Hooks
	onTransition func(Transition)
}

// NewEngine creates an idle engine. log may be nil.
func NewEngine(log Logger) *Engine {
	if log == nil {
		log = nopLogger{}
	}

	return &Engine{
		reducer: NewReducer(log),
		state:   Idle{},
		log:     log,
	}
}

// SetHooks replaces the lifecycle hooks
func (e *Engine) SetHooks(h Hooks) {
	e.hooks = h
}

// OnTransition registers fn to run after every applied action
func (e *Engine) OnTransition(fn func(Transition)) {
	e.onTransition = fn
}

// State returns the current snapshot
func (e *Engine) State() State {
	return e.state
}

// Dispatch applies a to the current state. On error the state is unchanged.
func (e *Engine) Dispatch(a Action) error {
	from := e.state

	next, changed, err := e.reducer.Reduce(from, a)
	if err != nil {
		e.log.Debugf("dispatch %s rejected: %v", a.Type(), err)
		return err
	}

	if !changed {
		return nil
	}

	e.state = next
	e.notify(from, next, a)

	// collection finished while a drop was waiting
	if pending, ok := next.(DropPending); ok && !pending.IsWaiting {
		return e.Drop(pending.Reason)
	}

	return nil
}

// Drop ends the drag. A drop during collection waits for the new dimensions,
// a drop before the first measurement simply cleans up.
func (e *Engine) Drop(reason DropReason) error {
	var session DragSession

	switch s := e.state.(type) {
	case Preparing:
		return e.Dispatch(CleanAction{})
	case BulkCollecting:
		return e.Dispatch(DropPendingAction{Reason: reason})
	case DropPending:
		if s.IsWaiting {
			e.log.Debugf("drop already pending, waiting for collection")
			return nil
		}

		session, reason = s.DragSession, s.Reason
	case Dragging:
		session = s.DragSession
	default:
		return &InvariantError{Phase: e.state.Phase(), Action: "DROP", Message: "no drag in progress"}
	}

	pending, err := resolveDrop(session, reason)
	if err != nil {
		return err
	}

	e.log.Debugf("drop %s: destination=%v offset=%v", reason, pending.Result.Destination, pending.NewHomeOffset)

	if pending.NewHomeOffset == session.Current.Client.Offset {
		return e.Dispatch(DropCompleteAction{Result: pending.Result, Impact: pending.Impact})
	}

	return e.Dispatch(DropAnimateAction{Pending: pending})
}

// CompleteDrop finishes a running drop animation
func (e *Engine) CompleteDrop() error {
	animating, ok := e.state.(DropAnimating)
	if !ok {
		return &InvariantError{Phase: e.state.Phase(), Action: ActionDropComplete, Message: "no drop animation running"}
	}

	return e.Dispatch(DropCompleteAction{Result: animating.Pending.Result, Impact: animating.Pending.Impact})
}

// resolveDrop builds the drop result and the offset the item must settle at.
// A cancel never has a destination and displaces nothing.
func resolveDrop(s DragSession, reason DropReason) (PendingDrop, error) {
	draggable, ok := s.critical()
	if !ok {
		return PendingDrop{}, &InvariantError{Phase: PhaseDragging, Action: "DROP", Message: "critical draggable missing"}
	}

	result := DropResult{
		DraggableID: s.Critical.Draggable.ID,
		Type:        s.Critical.Droppable.Type,
		Source:      s.Critical.Source(),
		Reason:      reason,
		Mode:        s.MovementMode,
	}

	dropImpact := impact.None()
	if reason == ReasonDrop {
		dropImpact = s.Impact
		if s.Impact.Destination != nil {
			destination := *s.Impact.Destination
			result.Destination = &destination
		}
	}

	scrollDiff := impact.ScrollDiff{Window: s.Viewport.Scroll.Displacement()}

	var destination *dimension.DroppableDimension
	if dropImpact.Destination != nil {
		if d, ok := s.Dimensions.Droppables[dropImpact.Destination.DroppableID]; ok {
			destination = &d
			scrollDiff.Droppable = d.Container.Scroll.Displacement()
		}
	}

	offset := impact.NewHomeOffset(impact.HomeOffsetArgs{
		Impact:       dropImpact,
		Draggable:    draggable,
		Destination:  destination,
		ClientOffset: s.Current.Client.Offset,
		PageOffset:   s.Current.Page.Offset,
		ScrollDiff:   scrollDiff,
		Draggables:   s.Dimensions.Draggables,
	})

	return PendingDrop{NewHomeOffset: offset, Impact: dropImpact, Result: result}, nil
}

// notify runs the transition callback and derives the lifecycle hooks
func (e *Engine) notify(from, to State, a Action) {
	if e.onTransition != nil {
		e.onTransition(Transition{From: from, To: to, Action: a})
	}

	if from.Phase() == PhasePreparing && to.Phase() == PhaseDragging {
		if e.hooks.OnDragStart != nil {
			session, _ := Session(to)
			e.hooks.OnDragStart(dragStart(session))
		}

		return
	}

	if idle, ok := to.(Idle); ok {
		result, started := endResult(from, idle)
		if started && e.hooks.OnDragEnd != nil {
			e.hooks.OnDragEnd(result)
		}

		return
	}

	before, ok := Session(from)
	if !ok {
		return
	}

	after, ok := Session(to)
	if !ok {
		return
	}

	if !impact.SameLocation(before.Impact.Destination, after.Impact.Destination) && e.hooks.OnDragUpdate != nil {
		e.hooks.OnDragUpdate(DragUpdate{DragStart: dragStart(after), Destination: after.Impact.Destination})
	}
}

func dragStart(s DragSession) DragStart {
	return DragStart{
		DraggableID: s.Critical.Draggable.ID,
		Type:        s.Critical.Droppable.Type,
		Source:      s.Critical.Source(),
		Mode:        s.MovementMode,
	}
}

// endResult is the result reported to OnDragEnd. Returning to the source slot
// reports no destination; cleaning up a live drag reports a cancel.
func endResult(from State, to Idle) (DropResult, bool) {
	var result DropResult

	switch {
	case to.Completed != nil:
		result = to.Completed.Result
	case from.Phase() == PhaseDropAnimating:
		result = from.(DropAnimating).Pending.Result
	default:
		session, ok := Session(from)
		if !ok {
			return DropResult{}, false
		}

		result = DropResult{
			DraggableID: session.Critical.Draggable.ID,
			Type:        session.Critical.Droppable.Type,
			Source:      session.Critical.Source(),
			Reason:      ReasonCancel,
			Mode:        session.MovementMode,
		}
	}

	if result.Destination != nil && *result.Destination == result.Source {
		result.Destination = nil
	}

	return result, true
}
