// ABOUTME: Actions accepted by the drag reducer, one struct per lifecycle event
// ABOUTME: Each action reports its ActionType so the transition table can dispatch on it

package state

import (
	"listdrag/dimension"
	"listdrag/geometry"
	"listdrag/impact"
)

// ActionType discriminates actions
type ActionType string

// Action types
const (
	ActionPrepare                  ActionType = "PREPARE"
	ActionInitialPublish           ActionType = "INITIAL_PUBLISH"
	ActionBulkCollectionStarting   ActionType = "BULK_COLLECTION_STARTING"
	ActionBulkReplace              ActionType = "BULK_REPLACE"
	ActionMove                     ActionType = "MOVE"
	ActionMoveByWindowScroll       ActionType = "MOVE_BY_WINDOW_SCROLL"
	ActionMoveUp                   ActionType = "MOVE_UP"
	ActionMoveDown                 ActionType = "MOVE_DOWN"
	ActionMoveLeft                 ActionType = "MOVE_LEFT"
	ActionMoveRight                ActionType = "MOVE_RIGHT"
	ActionUpdateDroppableScroll    ActionType = "UPDATE_DROPPABLE_SCROLL"
	ActionUpdateDroppableIsEnabled ActionType = "UPDATE_DROPPABLE_IS_ENABLED"
	ActionDropPending              ActionType = "DROP_PENDING"
	ActionDropAnimate              ActionType = "DROP_ANIMATE"
	ActionDropComplete             ActionType = "DROP_COMPLETE"
	ActionClean                    ActionType = "CLEAN"
)

// ActionTypes lists every action type
var ActionTypes = []ActionType{
	ActionPrepare,
	ActionInitialPublish,
	ActionBulkCollectionStarting,
	ActionBulkReplace,
	ActionMove,
	ActionMoveByWindowScroll,
	ActionMoveUp,
	ActionMoveDown,
	ActionMoveLeft,
	ActionMoveRight,
	ActionUpdateDroppableScroll,
	ActionUpdateDroppableIsEnabled,
	ActionDropPending,
	ActionDropAnimate,
	ActionDropComplete,
	ActionClean,
}

// Action is one lifecycle event
type Action interface {
	Type() ActionType
}

// PrepareAction requests a lift
type PrepareAction struct{}

// InitialPublishAction starts the drag with the first complete measurement
type InitialPublishAction struct {
	Critical        Critical
	Dimensions      dimension.Dimensions
	ClientSelection geometry.Position
	Viewport        dimension.Viewport
	MovementMode    MovementMode
	AutoScrollMode  AutoScrollMode
}

// BulkCollectionStartingAction announces a re-measurement
type BulkCollectionStartingAction struct{}

// BulkReplaceAction publishes a fresh set of dimensions. Viewport is optional.
type BulkReplaceAction struct {
	Dimensions dimension.Dimensions
	Viewport   *dimension.Viewport
}

// MoveAction moves the selection point to a new client position
type MoveAction struct {
	Client        geometry.Position
	ShouldAnimate bool
}

// MoveByWindowScrollAction reports a new window scroll
type MoveByWindowScrollAction struct {
	Scroll geometry.Position
}

// MoveUpAction is a keyboard step up
type MoveUpAction struct{}

// MoveDownAction is a keyboard step down
type MoveDownAction struct{}

// MoveLeftAction is a keyboard step left
type MoveLeftAction struct{}

// MoveRightAction is a keyboard step right
type MoveRightAction struct{}

// UpdateDroppableScrollAction reports a list's new scroll offset
type UpdateDroppableScrollAction struct {
	ID     dimension.DroppableID
	Offset geometry.Position
}

// UpdateDroppableIsEnabledAction toggles whether a list accepts items
type UpdateDroppableIsEnabledAction struct {
	ID        dimension.DroppableID
	IsEnabled bool
}

// DropPendingAction requests a drop that must wait for collection to finish
type DropPendingAction struct {
	Reason DropReason
}

// DropAnimateAction starts the drop animation
type DropAnimateAction struct {
	Pending PendingDrop
}

// DropCompleteAction finishes the drag
type DropCompleteAction struct {
	Result DropResult
	Impact impact.DragImpact
}

// CleanAction aborts everything and returns to idle
type CleanAction struct{}

func (PrepareAction) Type() ActionType                  { return ActionPrepare }
func (InitialPublishAction) Type() ActionType           { return ActionInitialPublish }
func (BulkCollectionStartingAction) Type() ActionType   { return ActionBulkCollectionStarting }
func (BulkReplaceAction) Type() ActionType              { return ActionBulkReplace }
func (MoveAction) Type() ActionType                     { return ActionMove }
func (MoveByWindowScrollAction) Type() ActionType       { return ActionMoveByWindowScroll }
func (MoveUpAction) Type() ActionType                   { return ActionMoveUp }
func (MoveDownAction) Type() ActionType                 { return ActionMoveDown }
func (MoveLeftAction) Type() ActionType                 { return ActionMoveLeft }
func (MoveRightAction) Type() ActionType                { return ActionMoveRight }
func (UpdateDroppableScrollAction) Type() ActionType    { return ActionUpdateDroppableScroll }
func (UpdateDroppableIsEnabledAction) Type() ActionType { return ActionUpdateDroppableIsEnabled }
func (DropPendingAction) Type() ActionType              { return ActionDropPending }
func (DropAnimateAction) Type() ActionType              { return ActionDropAnimate }
func (DropCompleteAction) Type() ActionType             { return ActionDropComplete }
func (CleanAction) Type() ActionType                    { return ActionClean }
