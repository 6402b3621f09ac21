// Package dynarray implements a dynamic array sequence: a contiguous buffer whose
// capacity grows and shrinks by a constant factor so that any run of n inserts and
// deletes starting from empty costs O(n) total time ("table doubling"). The package also
// exposes the underlying Storage type, which separates the logical size of the sequence
// from the physical capacity of its buffer.
package dynarray

import "github.com/huaier/go-seqlib/seqs"

// Storage is a contiguous buffer with a logical size distinct from its physical
// capacity. Slots at index >= Len are unspecified; indices [0, Len) hold live items in
// sequence order. The zero value is an empty buffer with capacity 0.
type Storage[T any] struct {
	slots []T // len(slots) is the physical capacity
	size  int // logical size, size <= len(slots)
}

// Len returns the logical size: the number of live items.
func (s *Storage[T]) Len() int { return s.size }

// Cap returns the physical capacity: the number of allocated slots.
func (s *Storage[T]) Cap() int { return len(s.slots) }

// Get returns the item in slot i. Only slots below the logical size are readable.
func (s *Storage[T]) Get(i int) (T, error) {
	if i < 0 || i >= s.size {
		var zero T
		return zero, &seqs.IndexError{Index: i, Size: s.size}
	}
	return s.slots[i], nil
}

// Set overwrites the item in slot i. Only slots below the logical size are writable.
func (s *Storage[T]) Set(i int, x T) error {
	if i < 0 || i >= s.size {
		return &seqs.IndexError{Index: i, Size: s.size}
	}
	s.slots[i] = x
	return nil
}

// CopyForward copies n items from slots [src, src+n) into dst starting at dstStart,
// iterating in ascending index order. When dst aliases the buffer itself, forward order
// is only safe for shifts to the left (dstStart <= src): each slot is read before the
// copy can overwrite it.
func (s *Storage[T]) CopyForward(src, n int, dst []T, dstStart int) {
	for k := 0; k < n; k++ {
		dst[dstStart+k] = s.slots[src+k]
	}
}

// CopyBackward copies n items from slots [src, src+n) into dst starting at dstStart,
// iterating in descending index order. Required for overlapping shifts to the right
// (dstStart > src), where forward order would clobber slots not yet read.
func (s *Storage[T]) CopyBackward(src, n int, dst []T, dstStart int) {
	for k := n - 1; k >= 0; k-- {
		dst[dstStart+k] = s.slots[src+k]
	}
}

// Rebuild replaces the buffer contents wholesale with elems, setting both the logical
// size and the capacity to len(elems).
func (s *Storage[T]) Rebuild(elems []T) {
	s.slots = make([]T, len(elems))
	copy(s.slots, elems)
	s.size = len(elems)
}
