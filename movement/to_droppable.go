// ABOUTME: Places the dragged item relative to a target inside the list chosen by a cross-axis move
// ABOUTME: Foreign lists displace the tail; the home list displaces the range back to the original slot

package movement

import (
	"slices"

	"listdrag/dimension"
	"listdrag/geometry"
	"listdrag/impact"
)

// toForeignList targets an empty list's start, or the slot before/after target
func toForeignList(args CrossAxisArgs, draggable dimension.DraggableDimension, destination dimension.DroppableDimension, target *dimension.DraggableDimension, inside []dimension.DraggableDimension) *Result {
	axis := destination.Axis
	amount := impact.AmountFor(draggable, axis)
	source := draggable.Page.WithoutMargin

	if target == nil {
		newCenter := geometry.MoveToEdge(source, geometry.StartEdge, destination.Page.WithMarginAndPadding, geometry.StartEdge, axis)

		return &Result{
			PageCenter: dimension.WithDroppableDisplacement(destination, newCenter),
			Impact: impact.DragImpact{
				Movement:  impact.Movement{Displaced: []impact.Displacement{}, Amount: amount},
				Direction: axis.Direction,
				Destination: &impact.Location{
					DroppableID: destination.Descriptor.ID,
					Index:       0,
				},
			},
		}
	}

	targetCenter := dimension.WithDroppableDisplacement(destination, target.Page.WithoutMargin.Center)
	isGoingBefore := args.PageCenter.Get(axis.Line) < targetCenter.Get(axis.Line)

	targetIndex := dimension.IndexOf(inside, target.Descriptor.ID)
	proposed := targetIndex + 1
	edge := geometry.EndEdge
	if isGoingBefore {
		proposed = targetIndex
		edge = geometry.StartEdge
	}

	newCenter := geometry.MoveToEdge(source, geometry.StartEdge, target.Page.WithMargin, edge, axis)

	return &Result{
		PageCenter: dimension.WithDroppableDisplacement(destination, newCenter),
		Impact: impact.DragImpact{
			Movement: impact.Movement{
				Displaced: impact.ComputeDisplacement(inside[proposed:], destination, args.Previous, args.Viewport),
				Amount:    amount,
			},
			Direction: axis.Direction,
			Destination: &impact.Location{
				DroppableID: destination.Descriptor.ID,
				Index:       proposed,
			},
		},
	}
}

// toHomeList returns the item to its own list, taking the target's index
func toHomeList(args CrossAxisArgs, draggable dimension.DraggableDimension, home dimension.DroppableDimension, target *dimension.DraggableDimension, inside []dimension.DraggableDimension) *Result {
	if target == nil {
		// the home list always holds the dragged item
		return nil
	}

	axis := home.Axis
	original := args.Home.Index
	targetIndex := dimension.IndexOf(inside, target.Descriptor.ID)

	if targetIndex == original {
		return &Result{
			PageCenter: dimension.WithDroppableDisplacement(home, draggable.Page.WithoutMargin.Center),
			Impact:     impact.Home(draggable, home),
		}
	}

	isPastOriginal := targetIndex > original

	edge := geometry.StartEdge
	destination := target.Page.WithMargin
	if isPastOriginal {
		edge = geometry.EndEdge
		destination = target.Page.WithoutMargin
	}

	newCenter := geometry.MoveToEdge(draggable.Page.WithoutMargin, edge, destination, edge, axis)

	var moved []dimension.DraggableDimension
	if isPastOriginal {
		moved = slices.Clone(inside[original+1 : targetIndex+1])
		slices.Reverse(moved)
	} else {
		moved = inside[targetIndex:original]
	}

	return &Result{
		PageCenter: dimension.WithDroppableDisplacement(home, newCenter),
		Impact: impact.DragImpact{
			Movement: impact.Movement{
				Displaced:             impact.ComputeDisplacement(moved, home, args.Previous, args.Viewport),
				Amount:                impact.AmountFor(draggable, axis),
				IsBeyondStartPosition: isPastOriginal,
			},
			Direction: axis.Direction,
			Destination: &impact.Location{
				DroppableID: home.Descriptor.ID,
				Index:       targetIndex,
			},
		},
	}
}
