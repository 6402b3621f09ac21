// Package seqs defines the Sequence abstract data type and a plain array-backed
// implementation of it. A Sequence stores an ordered list of items addressed by 0-based
// index; implementations differ only in the cost model of their operations.
package seqs

import "fmt"

// IndexError reports an access with an index outside the valid range of a sequence.
// It is returned (never panicked) by every index-taking operation and can be matched
// with errors.As.
type IndexError struct {
	Index int // the offending index
	Size  int // the sequence size at the time of the access
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("seqs: index %d out of bounds for size %d", e.Index, e.Size)
}

// Sequence is an ordered collection of items addressed by 0-based index.
// GetAt, SetAt and DeleteAt accept indices in [0, Len()); InsertAt additionally accepts
// Len() itself, behaving like InsertLast. InsertFirst and InsertLast cannot fail.
type Sequence[T any] interface {
	// Len returns the number of stored items.
	Len() int
	// GetAt returns the item at index i.
	GetAt(i int) (T, error)
	// SetAt replaces the item at index i with x.
	SetAt(i int, x T) error
	// InsertAt inserts x so that it ends up at index i, shifting later items right.
	InsertAt(i int, x T) error
	// DeleteAt removes and returns the item at index i, shifting later items left.
	DeleteAt(i int) (T, error)
	// InsertFirst inserts x at the front of the sequence.
	InsertFirst(x T)
	// InsertLast appends x at the end of the sequence.
	InsertLast(x T)
	// DeleteFirst removes and returns the first item.
	DeleteFirst() (T, error)
	// DeleteLast removes and returns the last item.
	DeleteLast() (T, error)
	// Build discards the current contents and repopulates the sequence from elems.
	Build(elems []T)
	// Slice returns a copy of the stored items in sequence order.
	Slice() []T
}
