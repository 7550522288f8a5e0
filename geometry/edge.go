// ABOUTME: Edge alignment of one rect against another along an axis
// ABOUTME: Produces exact snap positions for keyboard movement and drop targets

package geometry

// MoveToEdge returns the center source would have if its sourceEdge were aligned
// with destination's destinationEdge on the axis line, and its cross-axis start
// aligned with destination's cross-axis start.
func MoveToEdge(source Rect, sourceEdge EdgeName, destination Rect, destinationEdge EdgeName, axis Axis) Position {
	corner := func(r Rect, e EdgeName) Position {
		return Patch(axis.Line, r.Edge(axis.Resolve(e)), r.Edge(axis.CrossStart))
	}

	centerDiff := source.Center.Subtract(corner(source, sourceEdge))

	return corner(destination, destinationEdge).Add(centerDiff)
}
