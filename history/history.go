// Package history implements undo/redo log on top of clist.
//
// Steps before the list cursor are undoable, the most recent one right before the cursor.
// Steps after the cursor are redoable, recording a new step drops all of them.
package history

import (
	"github.com/pkg/errors"

	"github.com/go-pkgz/clist"
)

// History is undo/redo log of steps. Not safe for concurrent use.
type History[T any] struct {
	options
	steps *clist.List[T]
	done  int // number of undoable steps, i.e. steps before the cursor
}

// New makes empty History, unlimited number of steps by default
func New[T any](opts ...Option) (*History[T], error) {
	res := History[T]{}
	for _, opt := range opts {
		if err := opt(&res.options); err != nil {
			return nil, errors.Wrap(err, "failed to set history option")
		}
	}

	steps, err := clist.New[T](res.listOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to make steps list")
	}
	res.steps = steps
	return &res, nil
}

// Record adds step x as the most recent one and discards all redoable steps.
// The oldest step is dropped if MaxSteps exceeded.
func (h *History[T]) Record(x T) {
	for !h.steps.AtEnd() {
		h.steps.DeleteAfter()
	}
	h.steps.InsertBefore(x)
	h.done++

	if h.maxSteps > 0 && h.steps.Len() > h.maxSteps {
		h.dropOldest()
	}
}

// Undo returns the most recent undoable step and moves it to redoable.
// Returns false if nothing to undo.
func (h *History[T]) Undo() (res T, ok bool) {
	if !h.CanUndo() {
		return res, false
	}
	res = h.steps.GetBefore()
	h.steps.Backward()
	h.done--
	return res, true
}

// Redo returns the next redoable step and moves it back to undoable.
// Returns false if nothing to redo.
func (h *History[T]) Redo() (res T, ok bool) {
	if !h.CanRedo() {
		return res, false
	}
	h.steps.Forward()
	h.done++
	return h.steps.GetBefore(), true
}

// CanUndo checks if any step can be undone
func (h *History[T]) CanUndo() bool { return !h.steps.AtStart() }

// CanRedo checks if any step can be redone
func (h *History[T]) CanRedo() bool { return !h.steps.AtEnd() }

// Len returns total number of steps, undoable and redoable
func (h *History[T]) Len() int { return h.steps.Len() }

// Reset drops all steps
func (h *History[T]) Reset() {
	h.steps.Init()
	h.done = 0
}

// dropOldest removes the first step and restores the cursor. O(n), called only on overflow.
func (h *History[T]) dropOldest() {
	h.steps.Start()
	h.steps.DeleteAfter()
	h.done--
	for i := 0; i < h.done; i++ {
		h.steps.Forward()
	}
}
