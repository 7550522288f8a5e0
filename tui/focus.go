// ABOUTME: Keyboard focus over the board while no drag is running
// ABOUTME: Moves focus between items and lists and scrolls to keep it in view

package tui

import (
	"listdrag/geometry"
	"listdrag/layout"
)

// focusFirst focuses the first item on the board, or the first list if no list has items
func (m *model) focusFirst() {
	b := m.ctrl.Board()
	m.shared.focus = ""
	m.shared.focusList = ""

	for _, list := range b.Lists {
		if m.shared.focusList == "" {
			m.shared.focusList = list.ID
		}

		if len(list.Items) > 0 {
			m.shared.focus = list.Items[0].ID
			m.shared.focusList = list.ID

			return
		}
	}
}

// refocus repairs focus after the board changed underneath it
func (m *model) refocus() {
	b := m.ctrl.Board()

	if m.shared.focus != "" {
		if listIdx, _, ok := b.Locate(m.shared.focus); ok {
			m.shared.focusList = b.Lists[listIdx].ID
			m.ensureFocusVisible()

			return
		}
	}

	if idx := b.ListIndex(m.shared.focusList); idx >= 0 {
		if items := b.Lists[idx].Items; len(items) > 0 {
			m.shared.focus = items[0].ID
		} else {
			m.shared.focus = ""
		}

		m.ensureFocusVisible()

		return
	}

	m.focusFirst()
	m.ensureFocusVisible()
}

// focusPosition returns the focused list index and item index, -1 for an empty list
func (m *model) focusPosition() (int, int) {
	b := m.ctrl.Board()

	if m.shared.focus != "" {
		if listIdx, itemIdx, ok := b.Locate(m.shared.focus); ok {
			return listIdx, itemIdx
		}
	}

	return b.ListIndex(m.shared.focusList), -1
}

// moveFocus moves focus one step. Along a list's axis it walks the items,
// across it jumps to the neighbouring list at the nearest index.
func (m *model) moveFocus(dx, dy int) {
	b := m.ctrl.Board()

	listIdx, itemIdx := m.focusPosition()
	if listIdx < 0 {
		m.focusFirst()
		return
	}

	along, across := dy, dx
	if b.Lists[listIdx].Horizontal {
		along, across = dx, dy
	}

	if across != 0 {
		next := listIdx + across
		if next < 0 || next >= len(b.Lists) {
			return
		}

		target := b.Lists[next]
		m.shared.focusList = target.ID
		m.shared.focus = ""

		if len(target.Items) > 0 {
			m.shared.focus = target.Items[min(max(itemIdx, 0), len(target.Items)-1)].ID
		}

		m.ensureFocusVisible()

		return
	}

	items := b.Lists[listIdx].Items
	next := itemIdx + along

	if itemIdx < 0 || next < 0 || next >= len(items) {
		return
	}

	m.shared.focus = items[next].ID
	m.ensureFocusVisible()
}

// ensureFocusVisible scrolls the focused list and then the window so the
// focused item is on screen
func (m *model) ensureFocusVisible() {
	l := m.ctrl.Layout()

	list, ok := l.List(m.shared.focusList)
	if !ok {
		return
	}

	target := list.Header
	if item, found := l.Items[m.shared.focus]; found {
		if list.Scrollable() {
			m.scrollListTo(list, item)
		}

		if rect, ok := l.ItemRect(item.ID, m.ctrl.Scroll()); ok {
			target = rect
		}
	}

	m.scrollWindowTo(l, target)
}

// scrollListTo centres item in its list once the list has to scroll
func (m *model) scrollListTo(list layout.ListBox, item layout.ItemBox) {
	current := m.ctrl.Scroll().List(list.ID)
	want := current

	if list.Horizontal {
		vm := NewViewportManager(int(list.Frame.Width), int(item.Rect.Center.X-list.Content.Left), int(list.Content.Width))
		want.X = float64(vm.CalculateOffset())
	} else {
		vm := NewViewportManager(int(list.Frame.Height), int(item.Rect.Center.Y-list.Content.Top), int(list.Content.Height))
		want.Y = float64(vm.CalculateOffset())
	}

	if want == current {
		return
	}

	if err := m.ctrl.ScrollList(list.ID, want.Subtract(current)); err != nil {
		m.log.Debugf("[TUI] scroll %s failed: %v", list.ID, err)
	}
}

// scrollWindowTo pans the window the least amount that shows rect
func (m *model) scrollWindowTo(l *layout.Layout, rect geometry.Rect) {
	window := m.ctrl.Scroll().Window
	want := window

	if rect.Left < want.X {
		want.X = rect.Left
	} else if rect.Right > want.X+l.View.Width {
		want.X = rect.Right - l.View.Width
	}

	if rect.Top < want.Y {
		want.Y = rect.Top
	} else if rect.Bottom > want.Y+l.View.Height {
		want.Y = rect.Bottom - l.View.Height
	}

	if want == window {
		return
	}

	if err := m.ctrl.ScrollWindow(want.Subtract(window)); err != nil {
		m.log.Debugf("[TUI] window scroll failed: %v", err)
	}
}
