// ABOUTME: Keeps the focused item visible inside a scrolling list
// ABOUTME: vim/less style: the focus line moves to the middle, then the content scrolls

package tui

// ViewportManager computes a list's scroll offset, in cells, for a focus line
type ViewportManager struct {
	height  int // visible lines of the list frame
	focus   int // focus line, relative to the top of the content
	content int // total content lines
}

// NewViewportManager creates a new viewport manager
func NewViewportManager(height, focus, content int) *ViewportManager {
	return &ViewportManager{
		height:  height,
		focus:   focus,
		content: content,
	}
}

// SetFocus updates the focus line
func (vm *ViewportManager) SetFocus(line int) {
	vm.focus = line
}

// ScrollPhase says which part of the list the focus is in
type ScrollPhase int

// Scroll phases
const (
	TopPhase    ScrollPhase = iota // focus moves, content at top
	MiddlePhase                    // focus pinned to the middle, content scrolls
	BottomPhase                    // content at bottom, focus moves
)

// Phase returns the current scroll phase
func (vm *ViewportManager) Phase() ScrollPhase {
	if vm.content <= vm.height || vm.height < 1 {
		return TopPhase
	}

	middle := vm.height / 2
	if vm.focus < middle {
		return TopPhase
	}

	if vm.focus < vm.content-vm.height+middle {
		return MiddlePhase
	}

	return BottomPhase
}

// CalculateOffset returns the scroll offset that shows the focus line
func (vm *ViewportManager) CalculateOffset() int {
	switch vm.Phase() {
	case MiddlePhase:
		return vm.focus - vm.height/2
	case BottomPhase:
		return vm.content - vm.height
	default:
		return 0
	}
}
