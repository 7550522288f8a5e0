// ABOUTME: Transition table reducer for the drag lifecycle
// ABOUTME: Every (phase, action) pair is listed as a transition, an ignore or a reject

package state

import (
	"errors"
	"fmt"

	"listdrag/impact"
)

// ruleKind classifies a table entry
type ruleKind int

const (
	ruleReject ruleKind = iota
	ruleIgnore
	ruleTransition
)

type handler func(r *Reducer, s State, a Action) (State, error)

// errRecovered lets a handler leave the state untouched without failing
var errRecovered = errors.New("recovered")

type rule struct {
	kind ruleKind
	fn   handler
}

func transition(fn handler) rule { return rule{kind: ruleTransition, fn: fn} }

var (
	ignore = rule{kind: ruleIgnore}
	reject = rule{kind: ruleReject}
)

// transitions is the complete phase x action table
var transitions = map[Phase]map[ActionType]rule{
	PhaseIdle: {
		ActionPrepare:                  transition(prepare),
		ActionInitialPublish:           reject,
		ActionBulkCollectionStarting:   reject,
		ActionBulkReplace:              reject,
		ActionMove:                     reject,
		ActionMoveByWindowScroll:       reject,
		ActionMoveUp:                   reject,
		ActionMoveDown:                 reject,
		ActionMoveLeft:                 reject,
		ActionMoveRight:                reject,
		ActionUpdateDroppableScroll:    reject,
		ActionUpdateDroppableIsEnabled: reject,
		ActionDropPending:              reject,
		ActionDropAnimate:              reject,
		ActionDropComplete:             reject,
		ActionClean:                    ignore,
	},
	PhasePreparing: {
		ActionPrepare:                  reject,
		ActionInitialPublish:           transition(initialPublish),
		ActionBulkCollectionStarting:   reject,
		ActionBulkReplace:              reject,
		ActionMove:                     ignore,
		ActionMoveByWindowScroll:       ignore,
		ActionMoveUp:                   reject,
		ActionMoveDown:                 reject,
		ActionMoveLeft:                 reject,
		ActionMoveRight:                reject,
		ActionUpdateDroppableScroll:    ignore,
		ActionUpdateDroppableIsEnabled: ignore,
		ActionDropPending:              reject,
		ActionDropAnimate:              reject,
		ActionDropComplete:             reject,
		ActionClean:                    transition(clean),
	},
	PhaseBulkCollecting: {
		ActionPrepare:                  reject,
		ActionInitialPublish:           reject,
		ActionBulkCollectionStarting:   reject,
		ActionBulkReplace:              transition(bulkReplace),
		ActionMove:                     transition(move),
		ActionMoveByWindowScroll:       transition(moveByWindowScroll),
		ActionMoveUp:                   ignore,
		ActionMoveDown:                 ignore,
		ActionMoveLeft:                 ignore,
		ActionMoveRight:                ignore,
		ActionUpdateDroppableScroll:    ignore,
		ActionUpdateDroppableIsEnabled: ignore,
		ActionDropPending:              transition(dropPending),
		ActionDropAnimate:              reject,
		ActionDropComplete:             reject,
		ActionClean:                    transition(clean),
	},
	PhaseDragging: {
		ActionPrepare:                  reject,
		ActionInitialPublish:           reject,
		ActionBulkCollectionStarting:   transition(bulkCollectionStarting),
		ActionBulkReplace:              reject,
		ActionMove:                     transition(move),
		ActionMoveByWindowScroll:       transition(moveByWindowScroll),
		ActionMoveUp:                   transition(moveInDirection),
		ActionMoveDown:                 transition(moveInDirection),
		ActionMoveLeft:                 transition(moveInDirection),
		ActionMoveRight:                transition(moveInDirection),
		ActionUpdateDroppableScroll:    transition(updateDroppableScroll),
		ActionUpdateDroppableIsEnabled: transition(updateDroppableIsEnabled),
		ActionDropPending:              reject,
		ActionDropAnimate:              transition(dropAnimate),
		ActionDropComplete:             transition(dropComplete),
		ActionClean:                    transition(clean),
	},
	PhaseDropPending: {
		ActionPrepare:                  reject,
		ActionInitialPublish:           reject,
		ActionBulkCollectionStarting:   reject,
		ActionBulkReplace:              transition(bulkReplace),
		ActionMove:                     ignore,
		ActionMoveByWindowScroll:       ignore,
		ActionMoveUp:                   ignore,
		ActionMoveDown:                 ignore,
		ActionMoveLeft:                 ignore,
		ActionMoveRight:                ignore,
		ActionUpdateDroppableScroll:    ignore,
		ActionUpdateDroppableIsEnabled: ignore,
		ActionDropPending:              reject,
		ActionDropAnimate:              transition(dropAnimate),
		ActionDropComplete:             transition(dropComplete),
		ActionClean:                    transition(clean),
	},
	PhaseDropAnimating: {
		ActionPrepare:                  reject,
		ActionInitialPublish:           reject,
		ActionBulkCollectionStarting:   reject,
		ActionBulkReplace:              reject,
		ActionMove:                     ignore,
		ActionMoveByWindowScroll:       ignore,
		ActionMoveUp:                   reject,
		ActionMoveDown:                 reject,
		ActionMoveLeft:                 reject,
		ActionMoveRight:                reject,
		ActionUpdateDroppableScroll:    ignore,
		ActionUpdateDroppableIsEnabled: ignore,
		ActionDropPending:              reject,
		ActionDropAnimate:              reject,
		ActionDropComplete:             transition(dropComplete),
		ActionClean:                    transition(clean),
	},
}

// Reducer applies actions to states through the transition table
type Reducer struct {
	log Logger
}

// NewReducer creates a reducer that reports unusual conditions to log (may be nil)
func NewReducer(log Logger) *Reducer {
	if log == nil {
		log = nopLogger{}
	}

	return &Reducer{log: log}
}

// Reduce returns the state after a. changed is false when the action was ignored
// or recovered from; the returned state is then s itself. Invalid combinations
// return an *InvariantError and leave s unchanged.
func (r *Reducer) Reduce(s State, a Action) (next State, changed bool, err error) {
	if s == nil || a == nil {
		return s, false, &InvariantError{Message: "nil state or action"}
	}

	rules, ok := transitions[s.Phase()]
	if !ok {
		return s, false, &InvariantError{Phase: s.Phase(), Action: a.Type(), Message: "unknown phase"}
	}

	entry, ok := rules[a.Type()]
	if !ok {
		return s, false, &InvariantError{Phase: s.Phase(), Action: a.Type(), Message: "unknown action"}
	}

	switch entry.kind {
	case ruleIgnore:
		r.log.Debugf("ignoring %s during %s", a.Type(), s.Phase())
		return s, false, nil
	case ruleReject:
		return s, false, &InvariantError{Phase: s.Phase(), Action: a.Type(), Message: "not allowed"}
	}

	next, err = entry.fn(r, s, a)
	if errors.Is(err, errRecovered) {
		return s, false, nil
	}

	if err != nil {
		return s, false, err
	}

	return next, true, nil
}

// invalidPayload reports a table entry reached with an unexpected concrete type
func invalidPayload(s State, a Action) error {
	return &InvariantError{Phase: s.Phase(), Action: a.Type(), Message: fmt.Sprintf("unexpected %T with %T", s, a)}
}

func prepare(_ *Reducer, _ State, _ Action) (State, error) {
	return Preparing{}, nil
}

func clean(_ *Reducer, _ State, _ Action) (State, error) {
	return Idle{}, nil
}

func initialPublish(_ *Reducer, s State, a Action) (State, error) {
	publish, ok := a.(InitialPublishAction)
	if !ok {
		return s, invalidPayload(s, a)
	}

	draggable, ok := publish.Dimensions.Draggables[publish.Critical.Draggable.ID]
	if !ok {
		return s, &InvariantError{Phase: s.Phase(), Action: a.Type(), Message: "critical draggable was not published"}
	}

	home, ok := publish.Dimensions.Droppables[publish.Critical.Droppable.ID]
	if !ok {
		return s, &InvariantError{Phase: s.Phase(), Action: a.Type(), Message: "home droppable was not published"}
	}

	initial := initialPositions(publish.ClientSelection, draggable, publish.Viewport)

	return Dragging{DragSession{
		Critical:       publish.Critical,
		Dimensions:     publish.Dimensions,
		Initial:        initial,
		Current:        initial,
		Impact:         impact.Home(draggable, home),
		Viewport:       publish.Viewport,
		MovementMode:   publish.MovementMode,
		AutoScrollMode: publish.AutoScrollMode,
		ShouldAnimate:  false,
	}}, nil
}

func bulkCollectionStarting(_ *Reducer, s State, a Action) (State, error) {
	dragging, ok := s.(Dragging)
	if !ok {
		return s, invalidPayload(s, a)
	}

	return BulkCollecting(dragging), nil
}

func bulkReplace(_ *Reducer, s State, a Action) (State, error) {
	replace, ok := a.(BulkReplaceAction)
	if !ok {
		return s, invalidPayload(s, a)
	}

	session, ok := Session(s)
	if !ok {
		return s, invalidPayload(s, a)
	}

	session, ok = session.replaceDimensions(replace.Dimensions, replace.Viewport)
	if !ok {
		return s, &InvariantError{Phase: s.Phase(), Action: a.Type(), Message: "critical draggable missing from replaced dimensions"}
	}

	session = session.recompute()

	if pending, isPending := s.(DropPending); isPending {
		return DropPending{DragSession: session, Reason: pending.Reason, IsWaiting: false}, nil
	}

	return Dragging{session}, nil
}

func move(_ *Reducer, s State, a Action) (State, error) {
	m, ok := a.(MoveAction)
	if !ok {
		return s, invalidPayload(s, a)
	}

	switch s := s.(type) {
	case BulkCollecting:
		session := s.moveTo(m.Client)
		session.ShouldAnimate = m.ShouldAnimate

		return BulkCollecting{session}, nil
	case Dragging:
		session := s.moveTo(m.Client)
		session.ShouldAnimate = m.ShouldAnimate

		return Dragging{session.recompute()}, nil
	}

	return s, invalidPayload(s, a)
}

func moveByWindowScroll(_ *Reducer, s State, a Action) (State, error) {
	scroll, ok := a.(MoveByWindowScrollAction)
	if !ok {
		return s, invalidPayload(s, a)
	}

	switch s := s.(type) {
	case BulkCollecting:
		return BulkCollecting{s.scrollWindow(scroll.Scroll)}, nil
	case Dragging:
		return Dragging{s.scrollWindow(scroll.Scroll).recomputeUnlessJump()}, nil
	}

	return s, invalidPayload(s, a)
}

func moveInDirection(r *Reducer, s State, a Action) (State, error) {
	dragging, ok := s.(Dragging)
	if !ok {
		return s, invalidPayload(s, a)
	}

	session, ok := dragging.moveInDirection(a.Type())
	if !ok {
		r.log.Debugf("%s has nowhere to go", a.Type())
		return s, errRecovered
	}

	return Dragging{session}, nil
}

func updateDroppableScroll(r *Reducer, s State, a Action) (State, error) {
	update, ok := a.(UpdateDroppableScrollAction)
	if !ok {
		return s, invalidPayload(s, a)
	}

	dragging, ok := s.(Dragging)
	if !ok {
		return s, invalidPayload(s, a)
	}

	session, ok := dragging.scrollDroppable(update.ID, update.Offset)
	if !ok {
		r.log.Debugf("scroll update for unpublished droppable %q", update.ID)
		return s, errRecovered
	}

	return Dragging{session.recomputeUnlessJump()}, nil
}

func updateDroppableIsEnabled(r *Reducer, s State, a Action) (State, error) {
	update, ok := a.(UpdateDroppableIsEnabledAction)
	if !ok {
		return s, invalidPayload(s, a)
	}

	dragging, ok := s.(Dragging)
	if !ok {
		return s, invalidPayload(s, a)
	}

	session, ok := dragging.setEnabled(update.ID, update.IsEnabled)
	if !ok {
		r.log.Debugf("enabled update for unpublished droppable %q", update.ID)
		return s, errRecovered
	}

	return Dragging{session.recompute()}, nil
}

func dropPending(_ *Reducer, s State, a Action) (State, error) {
	pending, ok := a.(DropPendingAction)
	if !ok {
		return s, invalidPayload(s, a)
	}

	collecting, ok := s.(BulkCollecting)
	if !ok {
		return s, invalidPayload(s, a)
	}

	return DropPending{DragSession: collecting.DragSession, Reason: pending.Reason, IsWaiting: true}, nil
}

func dropAnimate(_ *Reducer, s State, a Action) (State, error) {
	animate, ok := a.(DropAnimateAction)
	if !ok {
		return s, invalidPayload(s, a)
	}

	if pending, isPending := s.(DropPending); isPending && pending.IsWaiting {
		return s, &InvariantError{Phase: s.Phase(), Action: a.Type(), Message: "cannot animate while waiting for dimensions"}
	}

	session, ok := Session(s)
	if !ok {
		return s, invalidPayload(s, a)
	}

	return DropAnimating{
		Pending:    animate.Pending,
		Critical:   session.Critical,
		Dimensions: session.Dimensions,
	}, nil
}

func dropComplete(_ *Reducer, s State, a Action) (State, error) {
	complete, ok := a.(DropCompleteAction)
	if !ok {
		return s, invalidPayload(s, a)
	}

	if pending, isPending := s.(DropPending); isPending && pending.IsWaiting {
		return s, &InvariantError{Phase: s.Phase(), Action: a.Type(), Message: "cannot complete while waiting for dimensions"}
	}

	return Idle{Completed: &CompletedDrag{Result: complete.Result, Impact: complete.Impact}}, nil
}
