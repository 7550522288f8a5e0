// ABOUTME: Pure updates of a live drag session: positions, impact, scroll and re-measurement
// ABOUTME: Keyboard steps resolve through the movement package and force their impact

package state

import (
	"listdrag/dimension"
	"listdrag/geometry"
	"listdrag/impact"
	"listdrag/movement"
)

// initialPositions derives the lift positions from the dragged item's measurement
func initialPositions(selection geometry.Position, draggable dimension.DraggableDimension, viewport dimension.Viewport) DragPositions {
	client := Positions{
		Selection:       selection,
		BorderBoxCenter: draggable.Client.WithoutMargin.Center,
		Offset:          geometry.Origin,
	}

	return DragPositions{
		Client: client,
		Page: Positions{
			Selection:       client.Selection.Add(viewport.Scroll.Initial),
			BorderBoxCenter: client.BorderBoxCenter.Add(viewport.Scroll.Initial),
			Offset:          geometry.Origin,
		},
	}
}

// currentPositions places the selection point relative to the lift positions
func currentPositions(initial DragPositions, selection geometry.Position, viewport dimension.Viewport) DragPositions {
	offset := selection.Subtract(initial.Client.Selection)
	client := Positions{
		Selection:       selection,
		BorderBoxCenter: initial.Client.BorderBoxCenter.Add(offset),
		Offset:          offset,
	}

	return DragPositions{
		Client: client,
		Page: Positions{
			Selection:       client.Selection.Add(viewport.Scroll.Current),
			BorderBoxCenter: client.BorderBoxCenter.Add(viewport.Scroll.Current),
			Offset:          client.Offset.Add(viewport.Scroll.Diff()),
		},
	}
}

// critical returns the dragged item's current dimension
func (s DragSession) critical() (dimension.DraggableDimension, bool) {
	d, ok := s.Dimensions.Draggables[s.Critical.Draggable.ID]

	return d, ok
}

// moveTo updates positions only
func (s DragSession) moveTo(selection geometry.Position) DragSession {
	s.Current = currentPositions(s.Initial, selection, s.Viewport)

	return s
}

// recompute replaces the impact with one computed from the current page center
func (s DragSession) recompute() DragSession {
	draggable, ok := s.critical()
	if !ok {
		return s
	}

	s.Impact = impact.Compute(impact.Args{
		PageCenter: s.Current.Page.BorderBoxCenter,
		Draggable:  draggable,
		Draggables: s.Dimensions.Draggables,
		Droppables: s.Dimensions.Droppables,
		Previous:   s.Impact,
		Viewport:   s.Viewport,
	})

	return s
}

// recomputeUnlessJump keeps the impact frozen while a jump scroll is in progress.
// Only scroll driven updates go through here; pointer moves always recompute.
func (s DragSession) recomputeUnlessJump() DragSession {
	if s.AutoScrollMode == AutoScrollJump {
		return s
	}

	return s.recompute()
}

// replaceDimensions installs a fresh measurement. When the dragged item was
// re-measured somewhere else the lift baselines shift by the same delta, so the
// perceived border box center does not jump. A zero delta leaves them untouched.
func (s DragSession) replaceDimensions(dims dimension.Dimensions, viewport *dimension.Viewport) (DragSession, bool) {
	previous, ok := s.critical()
	if !ok {
		return s, false
	}

	next, ok := dims.Draggables[s.Critical.Draggable.ID]
	if !ok {
		return s, false
	}

	delta := next.Client.WithoutMargin.Center.Subtract(previous.Client.WithoutMargin.Center)

	s.Initial.Client.Selection = s.Initial.Client.Selection.Add(delta)
	s.Initial.Client.BorderBoxCenter = s.Initial.Client.BorderBoxCenter.Add(delta)
	s.Initial.Page.Selection = s.Initial.Page.Selection.Add(delta)
	s.Initial.Page.BorderBoxCenter = s.Initial.Page.BorderBoxCenter.Add(delta)

	s.Critical.Draggable = next.Descriptor
	s.Dimensions = dims

	if viewport != nil {
		s.Viewport = *viewport
	}

	return s.moveTo(s.Current.Client.Selection), true
}

// scrollWindow applies a new window scroll, keeping the client selection in place
func (s DragSession) scrollWindow(scroll geometry.Position) DragSession {
	s.Viewport = dimension.ScrollViewport(s.Viewport, scroll)

	return s.moveTo(s.Current.Client.Selection)
}

// scrollDroppable applies a list scroll; ok is false for an unknown list
func (s DragSession) scrollDroppable(id dimension.DroppableID, offset geometry.Position) (DragSession, bool) {
	d, ok := s.Dimensions.Droppables[id]
	if !ok {
		return s, false
	}

	s.Dimensions = s.Dimensions.WithDroppable(dimension.ScrollDroppable(d, offset))

	return s, true
}

// setEnabled toggles a list; ok is false for an unknown list
func (s DragSession) setEnabled(id dimension.DroppableID, isEnabled bool) (DragSession, bool) {
	d, ok := s.Dimensions.Droppables[id]
	if !ok {
		return s, false
	}

	s.Dimensions = s.Dimensions.WithDroppable(dimension.WithEnabled(d, isEnabled))

	return s, true
}

// moveInDirection resolves one keyboard step. ok is false when the step goes nowhere.
func (s DragSession) moveInDirection(t ActionType) (DragSession, bool) {
	draggable, ok := s.critical()
	if !ok {
		return s, false
	}

	overID := s.Critical.Droppable.ID
	if s.Impact.Destination != nil {
		overID = s.Impact.Destination.DroppableID
	}

	over, ok := s.Dimensions.Droppables[overID]
	if !ok {
		return s, false
	}

	direction := geometry.Vertical
	if t == ActionMoveLeft || t == ActionMoveRight {
		direction = geometry.Horizontal
	}

	isMovingForward := t == ActionMoveDown || t == ActionMoveRight

	var result *movement.Result
	if direction == over.Axis.Direction {
		result = movement.MoveToNextIndex(movement.NextIndexArgs{
			IsMovingForward: isMovingForward,
			DraggableID:     draggable.Descriptor.ID,
			Impact:          s.Impact,
			Droppable:       over,
			Draggables:      s.Dimensions.Draggables,
			Viewport:        s.Viewport,
		})
	} else {
		result = movement.MoveCrossAxis(movement.CrossAxisArgs{
			IsMovingForward: isMovingForward,
			PageCenter:      s.Current.Page.BorderBoxCenter,
			DraggableID:     draggable.Descriptor.ID,
			DroppableID:     over.Descriptor.ID,
			Home:            s.Critical.Source(),
			Draggables:      s.Dimensions.Draggables,
			Droppables:      s.Dimensions.Droppables,
			Previous:        s.Impact,
			Viewport:        s.Viewport,
		})
	}

	if result == nil {
		return s, false
	}

	// page center back to a client selection point
	offset := result.PageCenter.Subtract(s.Viewport.Scroll.Current).Subtract(s.Initial.Client.BorderBoxCenter)
	s = s.moveTo(s.Initial.Client.Selection.Add(offset))
	s.Impact = result.Impact
	s.ShouldAnimate = true

	return s, true
}
