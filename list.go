// Package clist implements a doubly linked list with a single cursor.
//
// The cursor sits between items, so it can be anywhere from before the first item
// to after the last one. Every operation is relative to the cursor and runs in constant time.
// Operations reading, writing or deleting a neighbour which doesn't exist, as well as moving
// past either end, are programming errors. They are reported once to the list's Reporter and
// then panic with *PositionError, see Try for a way to turn such panic into an error.
//
// List is not safe for concurrent use.
package clist

import "github.com/pkg/errors"

// node is an element of the list. head and tail sentinels are nodes too, their item is never used.
type node[T any] struct {
	item       T
	next, prev *node[T]
}

// List represents a doubly linked list with a cursor.
// The zero value for List is an empty list ready to use. List must not be copied after first use.
type List[T any] struct {
	head   node[T] // sentinel before the first item, only head.next is used
	tail   node[T] // sentinel after the last item, only tail.prev is used
	cursor *node[T]
	len    int // current list length excluding sentinels

	reporter Reporter
}

// New makes an empty list with the cursor at the start.
func New[T any](opts ...Option) (*List[T], error) {
	o := options{reporter: defaultReporter}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, errors.Wrap(err, "failed to set list option")
		}
	}
	l := &List[T]{reporter: o.reporter}
	return l.Init(), nil
}

// Init initializes or clears list l. Remaining items are released.
func (l *List[T]) Init() *List[T] {
	for n := l.head.next; n != nil && n != &l.tail; {
		next := n.next
		n.next, n.prev = nil, nil // avoid memory leaks
		n = next
	}
	l.head.next = &l.tail
	l.tail.prev = &l.head
	l.cursor = &l.head
	l.len = 0
	return l
}

// lazyInit lazily initializes a zero List value.
func (l *List[T]) lazyInit() {
	if l.head.next == nil {
		l.Init()
	}
}

// Len returns the number of items of list l.
// The complexity is O(1).
func (l *List[T]) Len() int { return l.len }

// Start moves the cursor before the first item.
func (l *List[T]) Start() {
	l.lazyInit()
	l.cursor = &l.head
}

// End moves the cursor after the last item.
func (l *List[T]) End() {
	l.lazyInit()
	l.cursor = l.tail.prev
}

// AtStart reports whether the cursor is before the first item.
func (l *List[T]) AtStart() bool {
	l.lazyInit()
	return l.cursor == &l.head
}

// AtEnd reports whether the cursor is after the last item.
func (l *List[T]) AtEnd() bool {
	l.lazyInit()
	return l.cursor.next == &l.tail
}

// Forward moves the cursor one item forward. It is an error to call it at the end.
func (l *List[T]) Forward() {
	if l.AtEnd() {
		l.fail("Forward", notAtEnd)
	}
	l.cursor = l.cursor.next
}

// Backward moves the cursor one item back. It is an error to call it at the start.
func (l *List[T]) Backward() {
	if l.AtStart() {
		l.fail("Backward", notAtStart)
	}
	l.cursor = l.cursor.prev
}

// InsertBefore inserts x at the cursor and leaves the cursor after it,
// i.e. x becomes the item returned by GetBefore.
func (l *List[T]) InsertBefore(x T) {
	l.lazyInit()
	l.cursor = l.insert(&node[T]{item: x}, l.cursor)
}

// InsertAfter inserts x at the cursor and leaves the cursor before it,
// i.e. x becomes the item returned by GetAfter.
func (l *List[T]) InsertAfter(x T) {
	l.lazyInit()
	l.insert(&node[T]{item: x}, l.cursor)
}

// GetBefore returns the item before the cursor. It is an error to call it at the start.
func (l *List[T]) GetBefore() T {
	if l.AtStart() {
		l.fail("GetBefore", notAtStart)
	}
	return l.cursor.item
}

// GetAfter returns the item after the cursor. It is an error to call it at the end.
func (l *List[T]) GetAfter() T {
	if l.AtEnd() {
		l.fail("GetAfter", notAtEnd)
	}
	return l.cursor.next.item
}

// SetBefore replaces the item before the cursor. It is an error to call it at the start.
func (l *List[T]) SetBefore(x T) {
	if l.AtStart() {
		l.fail("SetBefore", notAtStart)
	}
	l.cursor.item = x
}

// SetAfter replaces the item after the cursor. It is an error to call it at the end.
func (l *List[T]) SetAfter(x T) {
	if l.AtEnd() {
		l.fail("SetAfter", notAtEnd)
	}
	l.cursor.next.item = x
}

// DeleteBefore removes the item before the cursor. It is an error to call it at the start.
func (l *List[T]) DeleteBefore() {
	if l.AtStart() {
		l.fail("DeleteBefore", notAtStart)
	}
	l.cursor = l.remove(l.cursor)
}

// DeleteAfter removes the item after the cursor, the cursor stays in place.
// It is an error to call it at the end.
func (l *List[T]) DeleteAfter() {
	if l.AtEnd() {
		l.fail("DeleteAfter", notAtEnd)
	}
	l.remove(l.cursor.next)
}

// insert inserts n after at, increments l.len and returns n
func (l *List[T]) insert(n, at *node[T]) *node[T] {
	next := at.next
	at.next = n
	n.prev = at
	n.next = next
	next.prev = n
	l.len++
	return n
}

// remove unlinks n, decrements l.len and returns n's former predecessor
func (l *List[T]) remove(n *node[T]) *node[T] {
	prev := n.prev
	prev.next = n.next
	n.next.prev = prev
	n.next = nil // avoid memory leaks
	n.prev = nil // avoid memory leaks
	l.len--
	return prev
}

// fail reports a violated precondition exactly once and panics. Never returns.
func (l *List[T]) fail(op, requires string) {
	err := &PositionError{Op: op, Requires: requires}
	r := l.reporter
	if r == nil {
		r = defaultReporter
	}
	r.Report(err)
	panic(err)
}
