// ABOUTME: Maps the dragged item's page center to a destination and displacement set
// ABOUTME: The single source of truth for what a continuous drag currently means

package impact

import (
	"slices"

	"listdrag/dimension"
	"listdrag/geometry"
)

// Args are the inputs of Compute
type Args struct {
	PageCenter geometry.Position // current page center of the dragged item's border box
	Draggable  dimension.DraggableDimension
	Draggables dimension.DraggableMap
	Droppables dimension.DroppableMap
	Previous   DragImpact // only used for animation continuity and placeholder growth
	Viewport   dimension.Viewport
}

// Compute returns the impact of the dragged item being at args.PageCenter.
// It is a pure function of its arguments.
func Compute(args Args) DragImpact {
	destination, ok := DroppableOver(args.PageCenter, args.Draggable, args.Droppables, args.Previous)
	if !ok || !destination.IsEnabled {
		return None()
	}

	inside := dimension.DraggablesInside(destination, args.Draggables)

	// children were measured at the initial scroll; compare in that frame
	center := dimension.WithDroppableScroll(destination, args.PageCenter)

	if destination.Descriptor.ID == args.Draggable.Descriptor.DroppableID {
		return inHomeList(center, args.Draggable, destination, inside, args.Previous, args.Viewport)
	}

	return inForeignList(center, args.Draggable, destination, inside, args.Previous, args.Viewport)
}

func inHomeList(center geometry.Position, draggable dimension.DraggableDimension, home dimension.DroppableDimension, inside []dimension.DraggableDimension, previous DragImpact, viewport dimension.Viewport) DragImpact {
	axis := home.Axis
	originalCenter := draggable.Page.WithoutMargin.Center
	current := center.Get(axis.Line)
	original := originalCenter.Get(axis.Line)
	isBeyondStartPosition := current-original > 0

	var moved []dimension.DraggableDimension

	for _, child := range inside {
		if child.Descriptor.ID == draggable.Descriptor.ID {
			continue
		}

		box := child.Page.WithMargin
		childCenter := box.Center.Get(axis.Line)

		if isBeyondStartPosition {
			// only items after the dragged item that it has moved onto
			if childCenter < original {
				continue
			}

			if current > box.Edge(axis.Start) {
				moved = append(moved, child)
			}

			continue
		}

		// moving backwards: only items before the dragged item that it has moved onto
		if original < childCenter {
			continue
		}

		if current < box.Edge(axis.End) {
			moved = append(moved, child)
		}
	}

	// closest impacted item first
	if isBeyondStartPosition {
		slices.Reverse(moved)
	}

	index := draggable.Descriptor.Index
	if isBeyondStartPosition {
		index += len(moved)
	} else {
		index -= len(moved)
	}

	return DragImpact{
		Movement: Movement{
			Displaced:             ComputeDisplacement(moved, home, previous, viewport),
			Amount:                AmountFor(draggable, axis),
			IsBeyondStartPosition: isBeyondStartPosition,
		},
		Direction: axis.Direction,
		Destination: &Location{
			DroppableID: home.Descriptor.ID,
			Index:       index,
		},
	}
}

func inForeignList(center geometry.Position, draggable dimension.DraggableDimension, destination dimension.DroppableDimension, inside []dimension.DraggableDimension, previous DragImpact, viewport dimension.Viewport) DragImpact {
	axis := destination.Axis
	current := center.Get(axis.Line)

	var moved []dimension.DraggableDimension

	for _, child := range inside {
		if child.Page.WithMargin.Edge(axis.End) > current {
			moved = append(moved, child)
		}
	}

	return DragImpact{
		Movement: Movement{
			Displaced: ComputeDisplacement(moved, destination, previous, viewport),
			Amount:    AmountFor(draggable, axis),
		},
		Direction: axis.Direction,
		Destination: &Location{
			DroppableID: destination.Descriptor.ID,
			Index:       len(inside) - len(moved),
		},
	}
}
