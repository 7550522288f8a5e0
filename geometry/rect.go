// ABOUTME: Rectangles derived from edge spacing with width, height and center recomputed
// ABOUTME: Provides expand, shrink, offset and intersection helpers for box composition

package geometry

// Spacing holds the four edges of a box (or the four sides of a margin/padding)
type Spacing struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// NoSpacing is a zero margin or padding
var NoSpacing = Spacing{}

// Rect is a rectangle whose derived fields always agree with its edges.
// Build one with NewRect; never fill the struct by hand.
type Rect struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
	Width  float64
	Height float64
	X      float64
	Y      float64
	Center Position
}

// NewRect derives a Rect from its edges
func NewRect(s Spacing) Rect {
	width := s.Right - s.Left
	height := s.Bottom - s.Top

	return Rect{
		Top:    s.Top,
		Right:  s.Right,
		Bottom: s.Bottom,
		Left:   s.Left,
		Width:  width,
		Height: height,
		X:      s.Left,
		Y:      s.Top,
		Center: Position{
			X: (s.Right + s.Left) / 2,
			Y: (s.Bottom + s.Top) / 2,
		},
	}
}

// RectFromSize builds a rect from a top-left corner and a size
func RectFromSize(x, y, width, height float64) Rect {
	return NewRect(Spacing{Top: y, Left: x, Right: x + width, Bottom: y + height})
}

// Spacing returns the edges of r
func (r Rect) Spacing() Spacing {
	return Spacing{Top: r.Top, Right: r.Right, Bottom: r.Bottom, Left: r.Left}
}

// Edge returns the value of the named edge
func (r Rect) Edge(e Edge) float64 {
	switch e {
	case EdgeTop:
		return r.Top
	case EdgeRight:
		return r.Right
	case EdgeBottom:
		return r.Bottom
	default:
		return r.Left
	}
}

// Length returns the width or height of r
func (r Rect) Length(d Dimension) float64 {
	if d == DimensionWidth {
		return r.Width
	}

	return r.Height
}

// Expand grows r outwards by s on every side
func (r Rect) Expand(s Spacing) Rect {
	return NewRect(Spacing{
		Top:    r.Top - s.Top,
		Right:  r.Right + s.Right,
		Bottom: r.Bottom + s.Bottom,
		Left:   r.Left - s.Left,
	})
}

// Shrink pulls r inwards by s on every side
func (r Rect) Shrink(s Spacing) Rect {
	return NewRect(Spacing{
		Top:    r.Top + s.Top,
		Right:  r.Right - s.Right,
		Bottom: r.Bottom - s.Bottom,
		Left:   r.Left + s.Left,
	})
}

// Offset moves r by p
func (r Rect) Offset(p Position) Rect {
	return NewRect(Spacing{
		Top:    r.Top + p.Y,
		Right:  r.Right + p.X,
		Bottom: r.Bottom + p.Y,
		Left:   r.Left + p.X,
	})
}

// Intersect clips r to other. ok is false when they do not overlap.
func (r Rect) Intersect(other Rect) (Rect, bool) {
	clipped := Spacing{
		Top:    max(r.Top, other.Top),
		Right:  min(r.Right, other.Right),
		Bottom: min(r.Bottom, other.Bottom),
		Left:   max(r.Left, other.Left),
	}

	if clipped.Bottom <= clipped.Top || clipped.Right <= clipped.Left {
		return Rect{}, false
	}

	return NewRect(clipped), true
}

// Contains reports whether p lies inside r, edges included
func (r Rect) Contains(p Position) bool {
	return isWithin(r.Top, r.Bottom)(p.Y) && isWithin(r.Left, r.Right)(p.X)
}

// Corners returns the four corner points of r
func (r Rect) Corners() []Position {
	return []Position{
		{X: r.Left, Y: r.Top},
		{X: r.Right, Y: r.Top},
		{X: r.Right, Y: r.Bottom},
		{X: r.Left, Y: r.Bottom},
	}
}

// WithEdge returns a copy of r with one edge replaced
func (r Rect) WithEdge(e Edge, value float64) Rect {
	s := r.Spacing()
	switch e {
	case EdgeTop:
		s.Top = value
	case EdgeRight:
		s.Right = value
	case EdgeBottom:
		s.Bottom = value
	default:
		s.Left = value
	}

	return NewRect(s)
}
