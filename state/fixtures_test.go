// ABOUTME: Shared fixtures for reducer and engine tests
// ABOUTME: A vertical home list of three uneven items and a foreign list to its right

package state

import (
	"listdrag/dimension"
	"listdrag/geometry"
)

var testViewport = dimension.NewViewport(1000, 1000, geometry.Origin)

func rect(top, right, bottom, left float64) geometry.Rect {
	return geometry.NewRect(geometry.Spacing{Top: top, Right: right, Bottom: bottom, Left: left})
}

func testDimensions() dimension.Dimensions {
	item := func(id dimension.DraggableID, list dimension.DroppableID, index int, top, bottom, left, right float64) dimension.DraggableDimension {
		return dimension.BuildDraggable(id, list, index, rect(top, right, bottom, left), geometry.NoSpacing, geometry.Origin)
	}

	list := func(id dimension.DroppableID, left, right float64) dimension.DroppableDimension {
		return dimension.BuildDroppable(dimension.DroppableArgs{
			ID:        id,
			Direction: geometry.Vertical,
			BorderBox: rect(0, right, 1000, left),
			IsEnabled: true,
		})
	}

	return dimension.Dimensions{
		Draggables: dimension.DraggableMap{
			"item1":    item("item1", "home", 0, 0, 100, 0, 100),
			"item2":    item("item2", "home", 1, 101, 300, 0, 100),
			"item3":    item("item3", "home", 2, 301, 600, 0, 100),
			"foreign1": item("foreign1", "foreign", 0, 0, 50, 200, 300),
		},
		Droppables: dimension.DroppableMap{
			"home":    list("home", 0, 100),
			"foreign": list("foreign", 200, 300),
		},
	}
}

var testCritical = Critical{
	Draggable: dimension.DraggableDescriptor{ID: "item1", DroppableID: "home", Index: 0},
	Droppable: dimension.DroppableDescriptor{ID: "home", Type: dimension.DefaultType},
}

// liftAt is the publish action for item1 grabbed at its center
func liftAt(mode AutoScrollMode) InitialPublishAction {
	return InitialPublishAction{
		Critical:        testCritical,
		Dimensions:      testDimensions(),
		ClientSelection: geometry.Position{X: 50, Y: 50},
		Viewport:        testViewport,
		MovementMode:    ModeFluid,
		AutoScrollMode:  mode,
	}
}

// dragging returns a Dragging state for item1 resting at home
func dragging(mode AutoScrollMode) Dragging {
	next, _, err := NewReducer(nil).Reduce(Preparing{}, liftAt(mode))
	if err != nil {
		panic(err)
	}

	return next.(Dragging)
}

// samples has one state per phase
func samples() map[Phase]State {
	d := dragging(AutoScrollFluid)

	return map[Phase]State{
		PhaseIdle:           Idle{},
		PhasePreparing:      Preparing{},
		PhaseBulkCollecting: BulkCollecting(d),
		PhaseDragging:       d,
		PhaseDropPending:    DropPending{DragSession: d.DragSession, Reason: ReasonDrop, IsWaiting: true},
		PhaseDropAnimating:  DropAnimating{Critical: d.Critical, Dimensions: d.Dimensions},
	}
}

// sampleActions has one well formed action per type
func sampleActions() map[ActionType]Action {
	return map[ActionType]Action{
		ActionPrepare:                  PrepareAction{},
		ActionInitialPublish:           liftAt(AutoScrollFluid),
		ActionBulkCollectionStarting:   BulkCollectionStartingAction{},
		ActionBulkReplace:              BulkReplaceAction{Dimensions: testDimensions()},
		ActionMove:                     MoveAction{Client: geometry.Position{X: 50, Y: 60}},
		ActionMoveByWindowScroll:       MoveByWindowScrollAction{Scroll: geometry.Position{Y: 5}},
		ActionMoveUp:                   MoveUpAction{},
		ActionMoveDown:                 MoveDownAction{},
		ActionMoveLeft:                 MoveLeftAction{},
		ActionMoveRight:                MoveRightAction{},
		ActionUpdateDroppableScroll:    UpdateDroppableScrollAction{ID: "home", Offset: geometry.Position{Y: 10}},
		ActionUpdateDroppableIsEnabled: UpdateDroppableIsEnabledAction{ID: "foreign", IsEnabled: false},
		ActionDropPending:              DropPendingAction{Reason: ReasonDrop},
		ActionDropAnimate:              DropAnimateAction{},
		ActionDropComplete:             DropCompleteAction{},
		ActionClean:                    CleanAction{},
	}
}

// dimensionShiftedBy re-measures d with its border box moved by by
func dimensionShiftedBy(d dimension.DraggableDimension, by geometry.Position) dimension.DraggableDimension {
	return dimension.BuildDraggable(d.Descriptor.ID, d.Descriptor.DroppableID, d.Descriptor.Index, d.Client.WithoutMargin.Offset(by), geometry.NoSpacing, geometry.Origin)
}
