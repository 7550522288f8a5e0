// ABOUTME: Moves the dragged item one index forward or backward within its current list
// ABOUTME: Home lists and foreign lists snap against different edges of the stepped-past item

package movement

import (
	"listdrag/dimension"
	"listdrag/geometry"
	"listdrag/impact"
)

// NextIndexArgs are the inputs of MoveToNextIndex
type NextIndexArgs struct {
	IsMovingForward bool
	DraggableID     dimension.DraggableID
	Impact          impact.DragImpact // current impact; its destination must be Droppable
	Droppable       dimension.DroppableDimension
	Draggables      dimension.DraggableMap
	Viewport        dimension.Viewport
}

// MoveToNextIndex steps the dragged item one slot. It returns nil at either list
// boundary, when the list is disabled, or when the drag has no destination.
func MoveToNextIndex(args NextIndexArgs) *Result {
	if !args.Droppable.IsEnabled || args.Impact.Destination == nil {
		return nil
	}

	draggable, ok := args.Draggables[args.DraggableID]
	if !ok {
		return nil
	}

	inside := dimension.DraggablesInside(args.Droppable, args.Draggables)

	if draggable.Descriptor.DroppableID == args.Droppable.Descriptor.ID {
		return inHomeList(args, draggable, inside)
	}

	return inForeignList(args, draggable, inside)
}

func inHomeList(args NextIndexArgs, draggable dimension.DraggableDimension, inside []dimension.DraggableDimension) *Result {
	start := dimension.IndexOf(inside, draggable.Descriptor.ID)
	if start == -1 {
		return nil
	}

	current := args.Impact.Destination.Index
	proposed := current - 1
	if args.IsMovingForward {
		proposed = current + 1
	}

	if proposed < 0 || proposed > len(inside)-1 {
		return nil
	}

	axis := args.Droppable.Axis
	destination := inside[proposed]

	isMovingTowardStart := (args.IsMovingForward && proposed <= start) ||
		(!args.IsMovingForward && proposed >= start)

	edge := geometry.StartEdge
	switch {
	case !isMovingTowardStart && args.IsMovingForward:
		edge = geometry.EndEdge
	case isMovingTowardStart && !args.IsMovingForward:
		edge = geometry.EndEdge
	}

	newCenter := geometry.MoveToEdge(draggable.Page.WithoutMargin, edge, destination.Page.WithoutMargin, edge, axis)

	previous := args.Impact.Movement.Displaced
	var displaced []impact.Displacement

	if isMovingTowardStart {
		displaced = append([]impact.Displacement{}, previous[min(1, len(previous)):]...)
	} else {
		added := impact.GetDisplacement(destination, args.Droppable, args.Impact, args.Viewport)
		displaced = append([]impact.Displacement{added}, previous...)
	}

	return &Result{
		PageCenter: dimension.WithDroppableDisplacement(args.Droppable, newCenter),
		Impact: impact.DragImpact{
			Movement: impact.Movement{
				Displaced:             displaced,
				Amount:                impact.AmountFor(draggable, axis),
				IsBeyondStartPosition: proposed > start,
			},
			Direction: axis.Direction,
			Destination: &impact.Location{
				DroppableID: args.Droppable.Descriptor.ID,
				Index:       proposed,
			},
		},
	}
}

// inForeignList allows one extra slot after the last item
func inForeignList(args NextIndexArgs, draggable dimension.DraggableDimension, inside []dimension.DraggableDimension) *Result {
	if len(inside) == 0 {
		return nil
	}

	current := args.Impact.Destination.Index
	proposed := current - 1
	if args.IsMovingForward {
		proposed = current + 1
	}

	lastIndex := len(inside) - 1
	if proposed < 0 || proposed > len(inside) {
		return nil
	}

	axis := args.Droppable.Axis
	relativeTo := inside[min(proposed, lastIndex)]

	destinationEdge := geometry.StartEdge
	if proposed > lastIndex {
		destinationEdge = geometry.EndEdge
	}

	newCenter := geometry.MoveToEdge(draggable.Page.WithoutMargin, geometry.StartEdge, relativeTo.Page.WithMargin, destinationEdge, axis)

	previous := args.Impact.Movement.Displaced
	var displaced []impact.Displacement

	if args.IsMovingForward {
		displaced = append([]impact.Displacement{}, previous[min(1, len(previous)):]...)
	} else {
		added := impact.GetDisplacement(relativeTo, args.Droppable, args.Impact, args.Viewport)
		displaced = append([]impact.Displacement{added}, previous...)
	}

	return &Result{
		PageCenter: dimension.WithDroppableDisplacement(args.Droppable, newCenter),
		Impact: impact.DragImpact{
			Movement: impact.Movement{
				Displaced: displaced,
				Amount:    impact.AmountFor(draggable, axis),
			},
			Direction: axis.Direction,
			Destination: &impact.Location{
				DroppableID: args.Droppable.Descriptor.ID,
				Index:       proposed,
			},
		},
	}
}
