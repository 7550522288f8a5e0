// ABOUTME: Undo/redo stack manager for board edits
// ABOUTME: Manages board snapshots with a maximum stack size limit

package tui

import "listdrag/board"

// BoardState captures a snapshot of the board for undo/redo
type BoardState struct {
	Board *board.Board
	Focus string // focused item id
}

func (s BoardState) clone() BoardState {
	if s.Board == nil {
		return s
	}

	return BoardState{Board: s.Board.Clone(), Focus: s.Focus}
}

// UndoManager manages undo/redo stacks with maximum size limit
type UndoManager struct {
	undoStack []BoardState
	redoStack []BoardState
	maxSize   int
}

// NewUndoManager creates a new undo manager with the specified max stack size
func NewUndoManager(maxSize int) *UndoManager {
	return &UndoManager{
		undoStack: []BoardState{},
		redoStack: []BoardState{},
		maxSize:   maxSize,
	}
}

func (um *UndoManager) push(stack []BoardState, state BoardState) []BoardState {
	stack = append(stack, state.clone())

	if len(stack) > um.maxSize {
		stack = stack[1:]
	}

	return stack
}

// Push saves a new state to the undo stack
// Clears the redo stack (you can't redo after a new edit)
func (um *UndoManager) Push(state BoardState) {
	um.undoStack = um.push(um.undoStack, state)
	um.redoStack = []BoardState{}
}

// Undo restores the previous state
// Returns the state and true if undo was successful, or zero value and false if nothing to undo
func (um *UndoManager) Undo(current BoardState) (BoardState, bool) {
	if len(um.undoStack) == 0 {
		return BoardState{}, false
	}

	um.redoStack = um.push(um.redoStack, current)

	state := um.undoStack[len(um.undoStack)-1]
	um.undoStack = um.undoStack[:len(um.undoStack)-1]

	return state, true
}

// Redo restores the next state
// Returns the state and true if redo was successful, or zero value and false if nothing to redo
func (um *UndoManager) Redo(current BoardState) (BoardState, bool) {
	if len(um.redoStack) == 0 {
		return BoardState{}, false
	}

	um.undoStack = um.push(um.undoStack, current)

	state := um.redoStack[len(um.redoStack)-1]
	um.redoStack = um.redoStack[:len(um.redoStack)-1]

	return state, true
}

// UndoSize returns the number of items in the undo stack
func (um *UndoManager) UndoSize() int {
	return len(um.undoStack)
}

// RedoSize returns the number of items in the redo stack
func (um *UndoManager) RedoSize() int {
	return len(um.redoStack)
}

// Clear clears both stacks
func (um *UndoManager) Clear() {
	um.undoStack = []BoardState{}
	um.redoStack = []BoardState{}
}
