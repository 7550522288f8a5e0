// ABOUTME: Two dimensional vector math used by every geometry calculation
// ABOUTME: Positions are values and are never mutated in place

// Package geometry provides the primitives the drag engine is written against:
// positions, edge spacing, derived rectangles and the axis abstraction that lets
// vertical and horizontal lists share one implementation.
package geometry

import "math"

// Position is a point or offset in cell space
type Position struct {
	X float64
	Y float64
}

// Origin is the zero position
var Origin = Position{}

// Add returns p + o
func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

// Subtract returns p - o
func (p Position) Subtract(o Position) Position {
	return Position{X: p.X - o.X, Y: p.Y - o.Y}
}

// Negate flips the sign of both components
func (p Position) Negate() Position {
	return Position{X: -p.X, Y: -p.Y}
}

// IsZero reports whether p is the origin
func (p Position) IsZero() bool {
	return p == Origin
}

// Get returns the component named by line ("x" or "y")
func (p Position) Get(line Line) float64 {
	if line == LineX {
		return p.X
	}

	return p.Y
}

// Patch builds a position with value on the given line and other on the cross line
func Patch(line Line, value, other float64) Position {
	if line == LineX {
		return Position{X: value, Y: other}
	}

	return Position{X: other, Y: value}
}

// Distance is the straight line distance between two points
func Distance(a, b Position) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Closest returns the smallest distance from target to any of the candidates
func Closest(target Position, candidates []Position) float64 {
	closest := math.Inf(1)
	for _, c := range candidates {
		if d := Distance(target, c); d < closest {
			closest = d
		}
	}

	return closest
}
