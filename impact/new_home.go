// ABOUTME: Resolves the offset a drop must animate through to land the item in its new home
// ABOUTME: Accounts for displaced item sizes and for window and list scroll during the drag

package impact

import (
	"listdrag/dimension"
	"listdrag/geometry"
)

// ScrollDiff holds how far content has visually moved since lift (initial - current scroll)
type ScrollDiff struct {
	Droppable geometry.Position
	Window    geometry.Position
}

// HomeOffsetArgs are the inputs of NewHomeOffset
type HomeOffsetArgs struct {
	Impact       DragImpact
	Draggable    dimension.DraggableDimension
	Destination  *dimension.DroppableDimension // nil when dropping nowhere
	ClientOffset geometry.Position             // offset currently applied to the dragged item
	PageOffset   geometry.Position             // the same offset including window scroll change
	ScrollDiff   ScrollDiff
	Draggables   dimension.DraggableMap
}

// NewHomeOffset returns the client offset at which the dragged item sits exactly in
// the slot described by the impact
func NewHomeOffset(args HomeOffsetArgs) geometry.Position {
	returnHome := args.ScrollDiff.Droppable.Add(args.ScrollDiff.Window)

	if args.Destination == nil || args.Impact.Destination == nil {
		return returnHome
	}

	destination := *args.Destination
	axis := destination.Axis
	displaced := args.Impact.Movement.Displaced
	isHome := destination.Descriptor.ID == args.Draggable.Descriptor.DroppableID

	if !isHome {
		return foreignListOffset(args, destination).Add(returnHome)
	}

	if len(displaced) == 0 {
		return returnHome
	}

	var distance float64
	for _, d := range displaced {
		dim, ok := args.Draggables[d.DraggableID]
		if !ok {
			continue
		}

		distance += dim.Page.WithMargin.Length(axis.Size)
	}

	if !args.Impact.Movement.IsBeyondStartPosition {
		distance = -distance
	}

	amount := geometry.Patch(axis.Line, distance, 0)

	return amount.Subtract(args.PageOffset).Add(args.ClientOffset).Add(args.ScrollDiff.Droppable)
}

// foreignListOffset is the travel from the item's original center to its slot in another list
func foreignListOffset(args HomeOffsetArgs, destination dimension.DroppableDimension) geometry.Position {
	axis := destination.Axis
	source := args.Draggable.Page.WithoutMargin
	displaced := args.Impact.Movement.Displaced
	inside := dimension.DraggablesInside(destination, args.Draggables)

	var newCenter geometry.Position

	switch {
	case len(displaced) > 0:
		// take the place of the closest displaced item
		target := args.Draggables[displaced[0].DraggableID].Page.WithMargin
		newCenter = geometry.MoveToEdge(source, geometry.StartEdge, target, geometry.StartEdge, axis)
	case len(inside) > 0:
		// after the last item
		target := inside[len(inside)-1].Page.WithMargin
		newCenter = geometry.MoveToEdge(source, geometry.StartEdge, target, geometry.EndEdge, axis)
	default:
		newCenter = geometry.MoveToEdge(source, geometry.StartEdge, destination.Page.WithMarginAndPadding, geometry.StartEdge, axis)
	}

	return newCenter.Subtract(source.Center)
}
