// ABOUTME: The drag impact value: destination, displaced items and displacement amount
// ABOUTME: Includes the canonical no-impact value and the impact of resting at home

// Package impact decides what a drag currently means. Given where the dragged
// item is on the page it resolves the destination list and index and which
// other items must shift to make room, and it resolves the offset a drop must
// animate through to land the item in its new home.
package impact

import (
	"listdrag/dimension"
	"listdrag/geometry"
)

// Location is an index within a droppable
type Location struct {
	DroppableID dimension.DroppableID
	Index       int
}

// Displacement records whether and how one item shifts out of the way
type Displacement struct {
	DraggableID   dimension.DraggableID
	IsVisible     bool
	ShouldAnimate bool
}

// Movement describes the items shifted by the current drag.
// Displaced is ordered closest-to-the-dragging-item first.
type Movement struct {
	Displaced             []Displacement
	Amount                geometry.Position
	IsBeyondStartPosition bool
}

// DragImpact is the single description of what the drag currently means.
// Destination is nil only when the drag is not over a valid droppable.
type DragImpact struct {
	Movement    Movement
	Direction   geometry.Direction
	Destination *Location
}

// None is the identity impact: no destination and nothing displaced
func None() DragImpact {
	return DragImpact{
		Movement: Movement{
			Displaced: []Displacement{},
			Amount:    geometry.Origin,
		},
	}
}

// Home is the impact of an item resting in its original slot.
// A disabled home list yields no impact.
func Home(draggable dimension.DraggableDimension, home dimension.DroppableDimension) DragImpact {
	if !home.IsEnabled {
		return None()
	}

	axis := home.Axis

	return DragImpact{
		Movement: Movement{
			Displaced: []Displacement{},
			Amount:    AmountFor(draggable, axis),
		},
		Direction: axis.Direction,
		Destination: &Location{
			DroppableID: home.Descriptor.ID,
			Index:       draggable.Descriptor.Index,
		},
	}
}

// find returns the previous displacement record for id
func (m Movement) find(id dimension.DraggableID) (Displacement, bool) {
	for _, d := range m.Displaced {
		if d.DraggableID == id {
			return d, true
		}
	}

	return Displacement{}, false
}

// IsDisplaced reports whether id is currently shifted
func (m Movement) IsDisplaced(id dimension.DraggableID) bool {
	_, ok := m.find(id)

	return ok
}

// AmountFor is the full item-size step every displaced item shifts by
func AmountFor(draggable dimension.DraggableDimension, axis geometry.Axis) geometry.Position {
	return geometry.Patch(axis.Line, draggable.Page.WithMargin.Length(axis.Size), 0)
}

// SameLocation reports whether two optional locations are equal
func SameLocation(a, b *Location) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
