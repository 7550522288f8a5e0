// ABOUTME: Shared board fixtures for movement tests
// ABOUTME: Three side-by-side vertical lists: a populated home, a short foreign list and an empty list

package movement

import (
	"listdrag/dimension"
	"listdrag/geometry"
	"listdrag/impact"
)

var testViewport = dimension.NewViewport(1000, 1000, geometry.Origin)

func rect(top, right, bottom, left float64) geometry.Rect {
	return geometry.NewRect(geometry.Spacing{Top: top, Right: right, Bottom: bottom, Left: left})
}

func draggable(id dimension.DraggableID, droppableID dimension.DroppableID, index int, top, bottom, left, right float64) dimension.DraggableDimension {
	return dimension.BuildDraggable(id, droppableID, index, rect(top, right, bottom, left), geometry.NoSpacing, geometry.Origin)
}

func droppable(id dimension.DroppableID, top, bottom, left, right float64) dimension.DroppableDimension {
	return dimension.BuildDroppable(dimension.DroppableArgs{
		ID:        id,
		Direction: geometry.Vertical,
		BorderBox: rect(top, right, bottom, left),
		IsEnabled: true,
	})
}

type fixture struct {
	home       dimension.DroppableDimension
	foreign    dimension.DroppableDimension
	empty      dimension.DroppableDimension
	item1      dimension.DraggableDimension
	item2      dimension.DraggableDimension
	item3      dimension.DraggableDimension
	foreign1   dimension.DraggableDimension
	foreign2   dimension.DraggableDimension
	draggables dimension.DraggableMap
	droppables dimension.DroppableMap
}

func newFixture() fixture {
	f := fixture{
		home:     droppable("home", 0, 1000, 0, 100),
		foreign:  droppable("foreign", 0, 1000, 200, 300),
		empty:    droppable("empty", 0, 1000, 400, 500),
		item1:    draggable("item1", "home", 0, 0, 100, 0, 100),
		item2:    draggable("item2", "home", 1, 101, 300, 0, 100),
		item3:    draggable("item3", "home", 2, 301, 600, 0, 100),
		foreign1: draggable("foreign1", "foreign", 0, 0, 50, 200, 300),
		foreign2: draggable("foreign2", "foreign", 1, 50, 100, 200, 300),
	}

	f.draggables = dimension.DraggableMap{
		"item1":    f.item1,
		"item2":    f.item2,
		"item3":    f.item3,
		"foreign1": f.foreign1,
		"foreign2": f.foreign2,
	}

	f.droppables = dimension.DroppableMap{
		"home":    f.home,
		"foreign": f.foreign,
		"empty":   f.empty,
	}

	return f
}

func displacedIDs(i impact.DragImpact) []dimension.DraggableID {
	ids := make([]dimension.DraggableID, 0, len(i.Movement.Displaced))
	for _, d := range i.Movement.Displaced {
		ids = append(ids, d.DraggableID)
	}

	return ids
}

func equalIDs(a, b []dimension.DraggableID) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
