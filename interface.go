package clist

// Cursor defines the operation set of a list with a single position between items.
// Guarded methods panic with *PositionError when the neighbour or move target doesn't exist.
type Cursor[T any] interface {
	Start()
	End()
	AtStart() bool
	AtEnd() bool
	Forward()
	Backward()
	InsertBefore(x T)
	InsertAfter(x T)
	GetBefore() T
	GetAfter() T
	SetBefore(x T)
	SetAfter(x T)
	DeleteBefore()
	DeleteAfter()
	Len() int
}

var _ Cursor[int] = (*List[int])(nil)
