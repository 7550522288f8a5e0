// ABOUTME: Invariant errors raised when the host violates the drag state machine
// ABOUTME: Also defines the debug Logger used for expected-but-unusual conditions

package state

import "fmt"

// InvariantError reports an action that is not valid in the current phase
type InvariantError struct {
	Phase   Phase
	Action  ActionType
	Message string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violated: %s during %s: %s", e.Action, e.Phase, e.Message)
}

// Logger provides debug logging capability
type Logger interface {
	Debugf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
