// ABOUTME: Moves the dragged item into the nearest list on the cross axis
// ABOUTME: Picks the best droppable, then the closest visible item within it to target

package movement

import (
	"sort"

	"listdrag/dimension"
	"listdrag/geometry"
	"listdrag/impact"
)

// CrossAxisArgs are the inputs of MoveCrossAxis
type CrossAxisArgs struct {
	IsMovingForward bool
	PageCenter      geometry.Position
	DraggableID     dimension.DraggableID
	DroppableID     dimension.DroppableID // list the item is currently over
	Home            impact.Location       // where the item was lifted from
	Draggables      dimension.DraggableMap
	Droppables      dimension.DroppableMap
	Previous        impact.DragImpact
	Viewport        dimension.Viewport
}

// MoveCrossAxis jumps the dragged item into the adjacent list in the requested
// direction. It returns nil when no list qualifies, or when the chosen list has
// items but none of them are visible.
func MoveCrossAxis(args CrossAxisArgs) *Result {
	draggable, ok := args.Draggables[args.DraggableID]
	if !ok {
		return nil
	}

	source, ok := args.Droppables[args.DroppableID]
	if !ok {
		return nil
	}

	destination, ok := BestCrossAxisDroppable(args.IsMovingForward, args.PageCenter, source, args.Droppables, args.Viewport)
	if !ok {
		return nil
	}

	inside := dimension.DraggablesInside(destination, args.Draggables)

	target, ok := ClosestDraggable(args.PageCenter, destination, inside, args.Viewport)
	if len(inside) > 0 && !ok {
		return nil
	}

	var targetPtr *dimension.DraggableDimension
	if ok {
		targetPtr = &target
	}

	if destination.Descriptor.ID == args.Home.DroppableID {
		return toHomeList(args, draggable, destination, targetPtr, inside)
	}

	return toForeignList(args, draggable, destination, targetPtr, inside)
}

// BestCrossAxisDroppable returns the nearest list strictly ahead of (or behind) source on
// the cross axis that overlaps source on the main axis
func BestCrossAxisDroppable(isMovingForward bool, center geometry.Position, source dimension.DroppableDimension, droppables dimension.DroppableMap, viewport dimension.Viewport) (dimension.DroppableDimension, bool) {
	axis := source.Axis
	sourceBounds := source.Container.Bounds
	isBetweenSource := func(v float64) bool {
		return geometry.IsWithin(sourceBounds.Edge(axis.Start), sourceBounds.Edge(axis.End), v)
	}

	var candidates []dimension.DroppableDimension

	for _, d := range droppables {
		if d.Descriptor.ID == source.Descriptor.ID || !d.IsEnabled || !d.Container.IsVisible {
			continue
		}

		if d.Descriptor.Type != source.Descriptor.Type {
			continue
		}

		bounds := d.Container.Bounds
		if !geometry.IsPartiallyVisibleThroughFrame(viewport.Frame, bounds) {
			continue
		}

		if isMovingForward {
			if sourceBounds.Edge(axis.CrossEnd) >= bounds.Edge(axis.CrossEnd) {
				continue
			}
		} else if bounds.Edge(axis.CrossStart) >= sourceBounds.Edge(axis.CrossStart) {
			continue
		}

		isBetweenDestination := func(v float64) bool {
			return geometry.IsWithin(bounds.Edge(axis.Start), bounds.Edge(axis.End), v)
		}

		overlaps := isBetweenSource(bounds.Edge(axis.Start)) ||
			isBetweenSource(bounds.Edge(axis.End)) ||
			isBetweenDestination(sourceBounds.Edge(axis.Start)) ||
			isBetweenDestination(sourceBounds.Edge(axis.End))
		if !overlaps {
			continue
		}

		candidates = append(candidates, d)
	}

	if len(candidates) == 0 {
		return dimension.DroppableDimension{}, false
	}

	crossStart := func(d dimension.DroppableDimension) float64 {
		return d.Container.Bounds.Edge(axis.CrossStart)
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := crossStart(candidates[i]), crossStart(candidates[j])
		if a != b {
			if isMovingForward {
				return a < b
			}

			return a > b
		}

		return candidates[i].Descriptor.ID < candidates[j].Descriptor.ID
	})

	// only the lists sharing the nearest cross axis position
	var nearest []dimension.DroppableDimension
	for _, d := range candidates {
		if crossStart(d) == crossStart(candidates[0]) {
			nearest = append(nearest, d)
		}
	}

	if len(nearest) == 1 {
		return nearest[0], true
	}

	start := func(d dimension.DroppableDimension) float64 {
		return d.Container.Bounds.Edge(axis.Start)
	}

	var contains []dimension.DroppableDimension
	for _, d := range nearest {
		bounds := d.Container.Bounds
		if geometry.IsWithin(bounds.Edge(axis.Start), bounds.Edge(axis.End), center.Get(axis.Line)) {
			contains = append(contains, d)
		}
	}

	if len(contains) > 0 {
		sort.SliceStable(contains, func(i, j int) bool {
			return start(contains[i]) < start(contains[j])
		})

		return contains[0], true
	}

	sort.SliceStable(nearest, func(i, j int) bool {
		a := geometry.Closest(center, nearest[i].Container.Bounds.Corners())
		b := geometry.Closest(center, nearest[j].Container.Bounds.Corners())
		if a != b {
			return a < b
		}

		return start(nearest[i]) < start(nearest[j])
	})

	return nearest[0], true
}

// ClosestDraggable returns the visible item in destination whose current center is nearest center
func ClosestDraggable(center geometry.Position, destination dimension.DroppableDimension, inside []dimension.DraggableDimension, viewport dimension.Viewport) (dimension.DraggableDimension, bool) {
	axis := destination.Axis

	var options []dimension.DraggableDimension
	for _, d := range inside {
		if impact.IsPartiallyVisible(d.Page.WithMargin, destination, viewport) {
			options = append(options, d)
		}
	}

	if len(options) == 0 {
		return dimension.DraggableDimension{}, false
	}

	distanceTo := func(d dimension.DraggableDimension) float64 {
		return geometry.Distance(center, dimension.WithDroppableDisplacement(destination, d.Page.WithoutMargin.Center))
	}

	sort.SliceStable(options, func(i, j int) bool {
		a, b := distanceTo(options[i]), distanceTo(options[j])
		if a != b {
			return a < b
		}

		return options[i].Page.WithoutMargin.Edge(axis.Start) < options[j].Page.WithoutMargin.Edge(axis.Start)
	})

	return options[0], true
}
