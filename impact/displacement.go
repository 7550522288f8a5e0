// ABOUTME: Visibility-aware displacement records with animation continuity
// ABOUTME: Items snapping into view do not animate so they never fly in from off screen

package impact

import (
	"listdrag/dimension"
	"listdrag/geometry"
)

// IsPartiallyVisible reports whether target can currently be seen through the part
// of the destination's scroll container that lies inside the window viewport
func IsPartiallyVisible(target geometry.Rect, destination dimension.DroppableDimension, viewport dimension.Viewport) bool {
	if !destination.Container.IsVisible {
		return false
	}

	frame, ok := viewport.Frame.Intersect(destination.Container.Bounds)
	if !ok {
		return false
	}

	withScroll := target.Offset(destination.Container.Scroll.Displacement())

	return geometry.IsPartiallyVisibleThroughFrame(frame, withScroll)
}

// GetDisplacement builds the displacement record for one shifted item.
// shouldAnimate is false only when the item was previously displaced while
// invisible and has now become visible.
func GetDisplacement(draggable dimension.DraggableDimension, destination dimension.DroppableDimension, previous DragImpact, viewport dimension.Viewport) Displacement {
	id := draggable.Descriptor.ID
	isVisible := IsPartiallyVisible(draggable.Page.WithMargin, destination, viewport)

	shouldAnimate := true
	if prev, ok := previous.Movement.find(id); ok && !prev.IsVisible && isVisible {
		shouldAnimate = false
	}

	return Displacement{
		DraggableID:   id,
		IsVisible:     isVisible,
		ShouldAnimate: shouldAnimate,
	}
}

// ComputeDisplacement maps an ordered candidate list to displacement records, preserving order
func ComputeDisplacement(candidates []dimension.DraggableDimension, destination dimension.DroppableDimension, previous DragImpact, viewport dimension.Viewport) []Displacement {
	displaced := make([]Displacement, 0, len(candidates))
	for _, c := range candidates {
		displaced = append(displaced, GetDisplacement(c, destination, previous, viewport))
	}

	return displaced
}
