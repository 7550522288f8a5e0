// ABOUTME: Axis abstraction mapping logical line/cross-line accessors onto x/y and edges
// ABOUTME: All list geometry is written against Axis so both directions share one code path

package geometry

// Direction of a list's main axis
type Direction string

// List directions
const (
	Vertical   Direction = "vertical"
	Horizontal Direction = "horizontal"
)

// Line names a position component
type Line string

// Position components
const (
	LineX Line = "x"
	LineY Line = "y"
)

// Edge names a rect edge
type Edge string

// Rect edges
const (
	EdgeTop    Edge = "top"
	EdgeRight  Edge = "right"
	EdgeBottom Edge = "bottom"
	EdgeLeft   Edge = "left"
)

// Dimension names a rect size
type Dimension string

// Rect sizes
const (
	DimensionWidth  Dimension = "width"
	DimensionHeight Dimension = "height"
)

// Axis describes a list direction in logical terms
type Axis struct {
	Direction  Direction
	Line       Line
	CrossLine  Line
	Start      Edge
	End        Edge
	CrossStart Edge
	CrossEnd   Edge
	Size       Dimension
	CrossSize  Dimension
}

// VerticalAxis is the axis of a top-to-bottom list
var VerticalAxis = Axis{
	Direction:  Vertical,
	Line:       LineY,
	CrossLine:  LineX,
	Start:      EdgeTop,
	End:        EdgeBottom,
	CrossStart: EdgeLeft,
	CrossEnd:   EdgeRight,
	Size:       DimensionHeight,
	CrossSize:  DimensionWidth,
}

// HorizontalAxis is the axis of a left-to-right list
var HorizontalAxis = Axis{
	Direction:  Horizontal,
	Line:       LineX,
	CrossLine:  LineY,
	Start:      EdgeLeft,
	End:        EdgeRight,
	CrossStart: EdgeTop,
	CrossEnd:   EdgeBottom,
	Size:       DimensionWidth,
	CrossSize:  DimensionHeight,
}

// AxisFor resolves a direction to its axis; anything but horizontal is vertical
func AxisFor(d Direction) Axis {
	if d == Horizontal {
		return HorizontalAxis
	}

	return VerticalAxis
}

// EdgeName selects Start or End of the axis
type EdgeName int

// Edge selectors used by move-to-edge calculations
const (
	StartEdge EdgeName = iota
	EndEdge
)

// Resolve maps an edge selector to the concrete edge on this axis
func (a Axis) Resolve(e EdgeName) Edge {
	if e == EndEdge {
		return a.End
	}

	return a.Start
}
