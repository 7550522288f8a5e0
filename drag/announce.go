// ABOUTME: Drag lifecycle hooks: applying drops to the board and announcing progress
// ABOUTME: Positions in messages are 1-based as a reader would count them

package drag

import (
	"listdrag/dimension"
	"listdrag/impact"
	"listdrag/state"
)

func (c *Controller) listTitle(id dimension.DroppableID) string {
	if idx := c.board.ListIndex(string(id)); idx >= 0 {
		return c.board.Lists[idx].Title
	}

	return string(id)
}

func (c *Controller) itemTitle(id dimension.DraggableID) string {
	if item, ok := c.layout.Items[string(id)]; ok {
		return item.Title
	}

	return string(id)
}

func (c *Controller) dragStarted(start state.DragStart) {
	c.announce("Lifted %q from %s position %d", c.itemTitle(start.DraggableID),
		c.listTitle(start.Source.DroppableID), start.Source.Index+1)
}

func (c *Controller) dragUpdated(update state.DragUpdate) {
	dest := update.Destination

	switch {
	case dest == nil:
		c.announce("Not over a list that accepts %q", c.itemTitle(update.DraggableID))
	case dest.DroppableID == update.Source.DroppableID:
		c.announce("Moved from position %d to position %d", update.Source.Index+1, dest.Index+1)
	default:
		c.announce("Moved to %s position %d", c.listTitle(dest.DroppableID), dest.Index+1)
	}
}

// dragEnded writes a successful drop into the board
func (c *Controller) dragEnded(result state.DropResult) {
	c.last = &result
	title := c.itemTitle(result.DraggableID)

	if result.Reason == state.ReasonCancel {
		c.announce("Cancelled, %q returned to position %d", title, result.Source.Index+1)
		return
	}

	if result.Destination == nil {
		c.announce("Dropped %q where it started", title)
		return
	}

	if err := c.apply(result.DraggableID, *result.Destination); err != nil {
		c.log.Debugf("apply drop failed: %v", err)
		c.announce("Could not move %q: %v", title, err)

		return
	}

	c.announce("Dropped %q in %s position %d", title, c.listTitle(result.Destination.DroppableID), result.Destination.Index+1)
}

func (c *Controller) apply(id dimension.DraggableID, dest impact.Location) error {
	before := c.board.Clone()

	if err := c.board.Move(string(id), string(dest.DroppableID), dest.Index); err != nil {
		return err
	}

	c.Remeasure()
	c.changed(before, "move "+c.itemTitle(id))

	return nil
}
