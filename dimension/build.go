// ABOUTME: Builders turning raw rectangles, margins and scroll offsets into dimensions
// ABOUTME: Pure functions; page frames are client frames shifted by the window scroll

package dimension

import (
	"sort"

	"listdrag/geometry"
)

// BuildDraggable creates a draggable dimension from its measured border box
func BuildDraggable(id DraggableID, droppableID DroppableID, index int, borderBox geometry.Rect, margin geometry.Spacing, windowScroll geometry.Position) DraggableDimension {
	client := Fragments{
		WithoutMargin: borderBox,
		WithMargin:    borderBox.Expand(margin),
	}

	return DraggableDimension{
		Descriptor: DraggableDescriptor{
			ID:          id,
			DroppableID: droppableID,
			Index:       index,
		},
		Client: client,
		Page: Fragments{
			WithoutMargin: client.WithoutMargin.Offset(windowScroll),
			WithMargin:    client.WithMargin.Offset(windowScroll),
		},
	}
}

// DroppableArgs are the raw measurements of a droppable
type DroppableArgs struct {
	ID              DroppableID
	Type            TypeID
	Direction       geometry.Direction
	BorderBox       geometry.Rect
	Margin          geometry.Spacing
	Padding         geometry.Spacing
	Container       *geometry.Rect // client rect of the closest scroll container, nil when there is none
	WindowScroll    geometry.Position
	ContainerScroll geometry.Position
	IsEnabled       bool
}

// BuildDroppable creates a droppable dimension.
//
// The container frame is the droppable's own border box when no scroll container
// is supplied. Margins only count when the container is the droppable element
// itself; a distinct container contributes its own rect and clips the droppable.
func BuildDroppable(args DroppableArgs) DroppableDimension {
	typeID := args.Type
	if typeID == "" {
		typeID = DefaultType
	}

	withMargin := args.BorderBox.Expand(args.Margin)
	client := DroppableFragments{
		WithoutMargin:        args.BorderBox,
		WithMargin:           withMargin,
		WithMarginAndPadding: withMargin.Expand(args.Padding),
	}

	page := DroppableFragments{
		WithoutMargin:        client.WithoutMargin.Offset(args.WindowScroll),
		WithMargin:           client.WithMargin.Offset(args.WindowScroll),
		WithMarginAndPadding: client.WithMarginAndPadding.Offset(args.WindowScroll),
	}

	frame := page.WithoutMargin
	isClipped := false

	if args.Container != nil {
		if *args.Container == args.BorderBox {
			frame = page.WithMargin
		} else {
			frame = args.Container.Offset(args.WindowScroll)
			isClipped = true
		}
	}

	bounds, visible := frame.Intersect(page.WithMargin)

	return DroppableDimension{
		Descriptor: DroppableDescriptor{ID: args.ID, Type: typeID},
		Axis:       geometry.AxisFor(args.Direction),
		IsEnabled:  args.IsEnabled,
		Client:     client,
		Page:       page,
		Container: Container{
			Frame:     frame,
			Bounds:    bounds,
			IsVisible: visible,
			IsClipped: isClipped,
			Scroll: ScrollState{
				Initial: args.ContainerScroll,
				Current: args.ContainerScroll,
			},
		},
	}
}

// ScrollDroppable returns a copy of d whose container has scrolled to newScroll
func ScrollDroppable(d DroppableDimension, newScroll geometry.Position) DroppableDimension {
	d.Container.Scroll.Current = newScroll

	return d
}

// WithEnabled returns a copy of d with its enabled flag replaced
func WithEnabled(d DroppableDimension, isEnabled bool) DroppableDimension {
	d.IsEnabled = isEnabled

	return d
}

// DraggablesInside returns the draggables owned by droppable ordered by list index
func DraggablesInside(droppable DroppableDimension, draggables DraggableMap) []DraggableDimension {
	inside := make([]DraggableDimension, 0, len(draggables))
	for _, d := range draggables {
		if d.Descriptor.DroppableID == droppable.Descriptor.ID {
			inside = append(inside, d)
		}
	}

	sort.Slice(inside, func(i, j int) bool {
		return inside[i].Descriptor.Index < inside[j].Descriptor.Index
	})

	return inside
}

// IndexOf returns the position of id in list, or -1
func IndexOf(list []DraggableDimension, id DraggableID) int {
	for i, d := range list {
		if d.Descriptor.ID == id {
			return i
		}
	}

	return -1
}

// WithDroppableDisplacement shifts a page point by the droppable's scroll displacement,
// converting from measured coordinates to where the point currently appears
func WithDroppableDisplacement(d DroppableDimension, p geometry.Position) geometry.Position {
	return p.Add(d.Container.Scroll.Displacement())
}

// WithDroppableScroll shifts a page point by the droppable's scroll diff,
// converting from where a point appears to measured coordinates
func WithDroppableScroll(d DroppableDimension, p geometry.Position) geometry.Position {
	return p.Add(d.Container.Scroll.Diff())
}
