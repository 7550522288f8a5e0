// ABOUTME: Immutable measured snapshots of draggables and droppables
// ABOUTME: Each dimension carries identity plus client (viewport) and page (scroll-inclusive) frames

// Package dimension builds the immutable geometry snapshots the drag engine consumes.
// A host measures rectangles, margins and scroll offsets and hands them to the
// builders here; nothing in this package performs any I/O.
package dimension

import (
	"listdrag/geometry"
)

// DraggableID identifies a single reorderable item
type DraggableID string

// DroppableID identifies a list that can receive items
type DroppableID string

// TypeID restricts which droppables a draggable may enter
type TypeID string

// DefaultType is used when a list does not declare a type
const DefaultType TypeID = "DEFAULT"

// DraggableDescriptor is the identity of a draggable within its list
type DraggableDescriptor struct {
	ID          DraggableID
	DroppableID DroppableID
	Index       int
}

// DroppableDescriptor is the identity of a droppable
type DroppableDescriptor struct {
	ID   DroppableID
	Type TypeID
}

// Fragments holds the border box and the margin box of a draggable in one coordinate frame
type Fragments struct {
	WithoutMargin geometry.Rect
	WithMargin    geometry.Rect
}

// DroppableFragments adds the margin+padding box used when targeting an empty list
type DroppableFragments struct {
	WithoutMargin        geometry.Rect
	WithMargin           geometry.Rect
	WithMarginAndPadding geometry.Rect
}

// DraggableDimension is a measured item
type DraggableDimension struct {
	Descriptor DraggableDescriptor
	Client     Fragments
	Page       Fragments
}

// ScrollState tracks a scroll container across one drag.
// Initial never changes for the life of a drag; Current follows every published scroll.
type ScrollState struct {
	Initial geometry.Position
	Current geometry.Position
}

// Diff is how far the container has scrolled since the drag started
func (s ScrollState) Diff() geometry.Position {
	return s.Current.Subtract(s.Initial)
}

// Displacement is how far the container contents have visually moved (the negated diff)
func (s ScrollState) Displacement() geometry.Position {
	return s.Diff().Negate()
}

// Container is the scrollable region a droppable is seen through
type Container struct {
	Frame     geometry.Rect // page rect of the scroll container, or of the droppable itself
	Bounds    geometry.Rect // Frame clipped to the droppable's page margin box
	IsVisible bool          // false when Frame and the droppable do not overlap
	IsClipped bool          // true when a distinct scroll container clips the droppable
	Scroll    ScrollState
}

// DroppableDimension is a measured list
type DroppableDimension struct {
	Descriptor DroppableDescriptor
	Axis       geometry.Axis
	IsEnabled  bool
	Client     DroppableFragments
	Page       DroppableFragments
	Container  Container
}

// DraggableMap indexes draggables by id
type DraggableMap map[DraggableID]DraggableDimension

// DroppableMap indexes droppables by id
type DroppableMap map[DroppableID]DroppableDimension

// Dimensions is one complete collection of measurements
type Dimensions struct {
	Draggables DraggableMap
	Droppables DroppableMap
}

// WithDroppable returns a copy of m with d stored under its id; m is left untouched
func (m DroppableMap) WithDroppable(d DroppableDimension) DroppableMap {
	next := make(DroppableMap, len(m)+1)
	for id, existing := range m {
		next[id] = existing
	}

	next[d.Descriptor.ID] = d

	return next
}

// WithDroppable returns a copy of dims with one droppable replaced
func (dims Dimensions) WithDroppable(d DroppableDimension) Dimensions {
	return Dimensions{
		Draggables: dims.Draggables,
		Droppables: dims.Droppables.WithDroppable(d),
	}
}
