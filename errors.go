package clist

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	notAtStart = "not at start"
	notAtEnd   = "not at end"
)

// PositionError is the only error kind of the list. It means the caller asked for a position
// which doesn't exist: moving past either end, or accessing a missing neighbour at the boundary.
// It indicates a logic defect in the caller and is never continuable.
type PositionError struct {
	Op       string // operation name, i.e. "Forward"
	Requires string // violated precondition, "not at start" or "not at end"
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("clist: %s requires cursor %s", e.Op, e.Requires)
}

// Try runs fn and converts a *PositionError panic into the returned error.
// Any other panic is passed through. The list used inside fn is left unchanged
// by the failed operation, but the caller must treat the error as a bug, not as a state to recover from.
func Try(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		pe, ok := r.(*PositionError)
		if !ok {
			panic(r)
		}
		err = errors.WithStack(pe)
	}()
	fn()
	return nil
}
