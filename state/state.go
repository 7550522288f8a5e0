// ABOUTME: Drag lifecycle phases as a tagged union, one struct per phase
// ABOUTME: Each phase carries only the fields that are meaningful while it is active

// Package state sequences a drag from lift to drop. The Reducer is an explicit
// transition table over (phase, action) pairs; the Engine owns the current state,
// runs the drop sequence and notifies listeners at the moment a transition happens.
package state

import (
	"listdrag/dimension"
	"listdrag/geometry"
	"listdrag/impact"
)

// Phase names the active lifecycle phase
type Phase string

// Lifecycle phases
const (
	PhaseIdle           Phase = "IDLE"
	PhasePreparing      Phase = "PREPARING"
	PhaseBulkCollecting Phase = "BULK_COLLECTING"
	PhaseDragging       Phase = "DRAGGING"
	PhaseDropPending    Phase = "DROP_PENDING"
	PhaseDropAnimating  Phase = "DROP_ANIMATING"
)

// Phases lists every phase
var Phases = []Phase{
	PhaseIdle,
	PhasePreparing,
	PhaseBulkCollecting,
	PhaseDragging,
	PhaseDropPending,
	PhaseDropAnimating,
}

// State is an immutable snapshot of the drag lifecycle
type State interface {
	Phase() Phase
}

// MovementMode is how the drag is driven
type MovementMode string

// Movement modes
const (
	ModeFluid MovementMode = "FLUID" // pointer
	ModeSnap  MovementMode = "SNAP"  // keyboard
)

// AutoScrollMode controls whether scrolling recomputes the impact
type AutoScrollMode string

// Auto scroll modes. Jump freezes the impact until the jump completes.
const (
	AutoScrollFluid AutoScrollMode = "FLUID"
	AutoScrollJump  AutoScrollMode = "JUMP"
)

// DropReason is why a drag ended
type DropReason string

// Drop reasons
const (
	ReasonDrop   DropReason = "DROP"
	ReasonCancel DropReason = "CANCEL"
)

// Critical identifies the dragged item and its home list for the whole drag
type Critical struct {
	Draggable dimension.DraggableDescriptor
	Droppable dimension.DroppableDescriptor
}

// Source is where the dragged item was lifted from
func (c Critical) Source() impact.Location {
	return impact.Location{DroppableID: c.Droppable.ID, Index: c.Draggable.Index}
}

// Positions are the tracked points of the dragged item in one coordinate frame
type Positions struct {
	Selection       geometry.Position // pointer or keyboard selection point
	BorderBoxCenter geometry.Position
	Offset          geometry.Position // distance travelled since lift
}

// DragPositions pairs the client (viewport) and page (scroll-inclusive) positions
type DragPositions struct {
	Client Positions
	Page   Positions
}

// DragSession is the data shared by every phase that holds a live drag
type DragSession struct {
	Critical       Critical
	Dimensions     dimension.Dimensions
	Initial        DragPositions
	Current        DragPositions
	Impact         impact.DragImpact
	Viewport       dimension.Viewport
	MovementMode   MovementMode
	AutoScrollMode AutoScrollMode
	ShouldAnimate  bool
}

// DropResult describes the outcome of a drag
type DropResult struct {
	DraggableID dimension.DraggableID
	Type        dimension.TypeID
	Source      impact.Location
	Destination *impact.Location // nil when cancelled or dropped outside any list
	Reason      DropReason
	Mode        MovementMode
}

// PendingDrop is a resolved drop waiting for its animation to finish
type PendingDrop struct {
	NewHomeOffset geometry.Position
	Impact        impact.DragImpact
	Result        DropResult
}

// CompletedDrag is the last finished drag, kept on the idle state
type CompletedDrag struct {
	Result DropResult
	Impact impact.DragImpact
}

// Idle holds no drag. Completed is set after a drop finishes normally.
type Idle struct {
	Completed *CompletedDrag
}

// Preparing is a requested lift before any measurement exists
type Preparing struct{}

// BulkCollecting re-measures dimensions; positions update but the impact does not
type BulkCollecting struct {
	DragSession
}

// Dragging is the live interactive phase
type Dragging struct {
	DragSession
}

// DropPending is a drop requested during collection. IsWaiting turns false once
// the new dimensions have been published.
type DropPending struct {
	DragSession
	Reason    DropReason
	IsWaiting bool
}

// DropAnimating holds a resolved drop while the item settles into place
type DropAnimating struct {
	Pending    PendingDrop
	Critical   Critical
	Dimensions dimension.Dimensions
}

// Phase implements State
func (Idle) Phase() Phase { return PhaseIdle }

// Phase implements State
func (Preparing) Phase() Phase { return PhasePreparing }

// Phase implements State
func (BulkCollecting) Phase() Phase { return PhaseBulkCollecting }

// Phase implements State
func (Dragging) Phase() Phase { return PhaseDragging }

// Phase implements State
func (DropPending) Phase() Phase { return PhaseDropPending }

// Phase implements State
func (DropAnimating) Phase() Phase { return PhaseDropAnimating }

// Session returns the live drag session of s, if it has one
func Session(s State) (DragSession, bool) {
	switch s := s.(type) {
	case BulkCollecting:
		return s.DragSession, true
	case Dragging:
		return s.DragSession, true
	case DropPending:
		return s.DragSession, true
	default:
		return DragSession{}, false
	}
}
