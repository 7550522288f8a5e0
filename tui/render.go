// ABOUTME: Paints the measured board onto a canvas
// ABOUTME: Draws headers, clipped items with their drag displacement, and the dragged item on top

package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"listdrag/board"
	"listdrag/geometry"
	"listdrag/layout"
	"listdrag/state"
)

// toBox snaps a screen rect to whole cells
func toBox(r geometry.Rect) box {
	return box{
		left:   int(math.Round(r.Left)),
		top:    int(math.Round(r.Top)),
		right:  int(math.Round(r.Right)),
		bottom: int(math.Round(r.Bottom)),
	}
}

// renderBoard paints the board area, which starts below the title line
func (m model) renderBoard() *canvas {
	c := newCanvas(m.width, max(m.height-totalUIChrome, 0))
	screen := c.bounds()

	l := m.ctrl.Layout()
	scroll := m.ctrl.Scroll()
	toScreen := scroll.Window.Negate()

	over := ""
	if dest := m.ctrl.Impact().Destination; dest != nil {
		over = string(dest.DroppableID)
	}

	draggedID, draggedRect, offset, dragging := m.ctrl.Dragged()
	if dragging && m.anim != nil {
		offset = m.anim.offset()
	}

	idle := m.ctrl.State().Phase() == state.PhaseIdle

	for _, list := range l.Lists {
		m.paintHeader(c, list, list.Header.Offset(toScreen), list.ID == over, screen)

		frame := toBox(list.Frame.Offset(toScreen)).intersect(screen)

		for _, id := range list.Items {
			if dragging && id == draggedID {
				continue
			}

			rect, _ := l.ItemRect(id, scroll)
			shift := m.ctrl.Shift(id)
			rect = rect.Offset(toScreen).Offset(shift)

			p := paintItem
			switch {
			case list.Disabled:
				p = paintItemDisabled
			case shift != geometry.Origin:
				p = paintItemDisplaced
			case idle && id == m.shared.focus:
				p = paintItemFocused
			}

			paintItemBox(c, l.Items[id], rect, p, frame)
		}
	}

	if dragging {
		if item, ok := l.Items[draggedID]; ok {
			paintItemBox(c, item, draggedRect.Offset(offset), paintItemDragging, screen)
		}
	}

	return c
}

// paintHeader draws a list title and the rule below it
func (m model) paintHeader(c *canvas, list layout.ListBox, rect geometry.Rect, over bool, screen box) {
	b := toBox(rect)
	clip := b.intersect(screen)
	width := b.right - b.left

	p := paintHeader
	switch {
	case list.Disabled:
		p = paintHeaderDisabled
	case over:
		p = paintHeaderOver
	}

	title := list.Title
	if list.Type != "" && list.Type != board.DefaultType {
		title += " {" + list.Type + "}"
	}

	title += fmt.Sprintf(" (%d)", len(list.Items))
	if list.Disabled {
		title += " disabled"
	}

	c.text(b.left, b.top, ansi.Truncate(title, width, "…"), p, clip)
	c.text(b.left, b.top+1, strings.Repeat("─", max(width, 0)), paintRule, clip)
}

// paintItemBox draws item's bordered box at rect, clipped to clip
func paintItemBox(c *canvas, item layout.ItemBox, rect geometry.Rect, p paint, clip box) {
	b := toBox(rect)
	rendered := layout.ItemStyle(b.right - b.left).Render(item.Label)

	c.block(b.left, b.top, rendered, p, clip)
}
