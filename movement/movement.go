// ABOUTME: Discrete keyboard movement resolvers for next-index and cross-axis steps
// ABOUTME: Each resolver returns an exact snap position plus the impact of being there

// Package movement resolves one keyboard step of a drag. A step either moves the
// item one slot within its current list or jumps it into the nearest list on the
// cross axis. Resolvers are pure and return nil when there is nowhere to go.
package movement

import (
	"listdrag/geometry"
	"listdrag/impact"
)

// Result is where a keyboard step lands the dragged item
type Result struct {
	PageCenter geometry.Position // includes the destination's scroll displacement
	Impact     impact.DragImpact
}
