// ABOUTME: Finds the droppable the dragged item is currently over
// ABOUTME: Foreign lists already holding the item grow by a placeholder so the item can reach their end

package impact

import (
	"sort"

	"listdrag/dimension"
	"listdrag/geometry"
)

// activeBounds is the page region a droppable accepts the dragged item in
func activeBounds(draggable dimension.DraggableDimension, droppable dimension.DroppableDimension, previous DragImpact) geometry.Rect {
	bounds := droppable.Container.Bounds

	isHome := draggable.Descriptor.DroppableID == droppable.Descriptor.ID
	wasOver := previous.Destination != nil && previous.Destination.DroppableID == droppable.Descriptor.ID

	if isHome || !wasOver {
		return bounds
	}

	axis := droppable.Axis
	subject := droppable.Page.WithMargin
	grown := subject.WithEdge(axis.End, subject.Edge(axis.End)+draggable.Page.WithMargin.Length(axis.Size))

	if !droppable.Container.IsClipped {
		return grown
	}

	clipped, ok := droppable.Container.Frame.Intersect(grown)
	if !ok {
		return bounds
	}

	return clipped
}

// DroppableOver returns the enabled droppable of the dragged item's type whose visible
// region contains target. When regions overlap the smallest wins so nested lists
// take precedence over their parents.
func DroppableOver(target geometry.Position, draggable dimension.DraggableDimension, droppables dimension.DroppableMap, previous DragImpact) (dimension.DroppableDimension, bool) {
	home, ok := droppables[draggable.Descriptor.DroppableID]
	if !ok {
		return dimension.DroppableDimension{}, false
	}

	type candidate struct {
		droppable dimension.DroppableDimension
		area      float64
	}

	var candidates []candidate

	for _, d := range droppables {
		if !d.IsEnabled || !d.Container.IsVisible || d.Descriptor.Type != home.Descriptor.Type {
			continue
		}

		bounds := activeBounds(draggable, d, previous)
		if bounds.Contains(target) {
			candidates = append(candidates, candidate{droppable: d, area: bounds.Width * bounds.Height})
		}
	}

	if len(candidates) == 0 {
		return dimension.DroppableDimension{}, false
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].area != candidates[j].area {
			return candidates[i].area < candidates[j].area
		}

		return candidates[i].droppable.Descriptor.ID < candidates[j].droppable.Descriptor.ID
	})

	return candidates[0].droppable, true
}
