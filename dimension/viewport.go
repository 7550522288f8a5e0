// ABOUTME: Window viewport snapshot with initial/current scroll tracking
// ABOUTME: The frame is kept live so its top-left always equals the current scroll

package dimension

import "listdrag/geometry"

// Viewport is the visible page region of the host window
type Viewport struct {
	Frame  geometry.Rect
	Scroll ScrollState
}

// NewViewport creates a viewport of the given size scrolled to scroll
func NewViewport(width, height float64, scroll geometry.Position) Viewport {
	return Viewport{
		Frame:  geometry.RectFromSize(scroll.X, scroll.Y, width, height),
		Scroll: ScrollState{Initial: scroll, Current: scroll},
	}
}

// ScrollViewport returns a copy of v scrolled to newScroll
func ScrollViewport(v Viewport, newScroll geometry.Position) Viewport {
	return Viewport{
		Frame:  geometry.RectFromSize(newScroll.X, newScroll.Y, v.Frame.Width, v.Frame.Height),
		Scroll: ScrollState{Initial: v.Scroll.Initial, Current: newScroll},
	}
}
