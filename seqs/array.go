package seqs

// ArraySeq is a sequence backed by an exactly-sized array. Reads and writes at an index
// are O(1); every insert or delete allocates a fresh array of the new exact size and
// copies the surviving items into it, so structural changes are O(n) even at the ends.
// Compare with dynarray.DynArray, which amortizes the copying cost.
//
// The zero value is an empty sequence ready for use.
type ArraySeq[T any] struct {
	a []T
}

// NewArraySeq constructs an ArraySeq holding the provided items.
func NewArraySeq[T any](elems ...T) *ArraySeq[T] {
	s := &ArraySeq[T]{}
	s.Build(elems)
	return s
}

// Len returns the number of stored items.
func (s *ArraySeq[T]) Len() int { return len(s.a) }

// Build discards the current contents and repopulates the sequence from elems.
func (s *ArraySeq[T]) Build(elems []T) {
	s.a = make([]T, len(elems))
	copy(s.a, elems)
}

// GetAt returns the item at index i.
func (s *ArraySeq[T]) GetAt(i int) (T, error) {
	if i < 0 || i >= len(s.a) {
		var zero T
		return zero, &IndexError{Index: i, Size: len(s.a)}
	}
	return s.a[i], nil
}

// SetAt replaces the item at index i with x.
func (s *ArraySeq[T]) SetAt(i int, x T) error {
	if i < 0 || i >= len(s.a) {
		return &IndexError{Index: i, Size: len(s.a)}
	}
	s.a[i] = x
	return nil
}

// InsertAt inserts x so that it ends up at index i. The whole array is copied into a
// fresh allocation of size Len()+1.
func (s *ArraySeq[T]) InsertAt(i int, x T) error {
	n := len(s.a)
	if i < 0 || i > n {
		return &IndexError{Index: i, Size: n}
	}
	fresh := make([]T, n+1)
	copy(fresh, s.a[:i])
	fresh[i] = x
	copy(fresh[i+1:], s.a[i:])
	s.a = fresh
	return nil
}

// DeleteAt removes and returns the item at index i. The surviving items are copied into
// a fresh allocation of size Len()-1.
func (s *ArraySeq[T]) DeleteAt(i int) (T, error) {
	n := len(s.a)
	if i < 0 || i >= n {
		var zero T
		return zero, &IndexError{Index: i, Size: n}
	}
	x := s.a[i]
	fresh := make([]T, n-1)
	copy(fresh, s.a[:i])
	copy(fresh[i:], s.a[i+1:])
	s.a = fresh
	return x, nil
}

// InsertFirst inserts x at the front of the sequence.
func (s *ArraySeq[T]) InsertFirst(x T) { _ = s.InsertAt(0, x) }

// InsertLast appends x at the end of the sequence.
func (s *ArraySeq[T]) InsertLast(x T) { _ = s.InsertAt(len(s.a), x) }

// DeleteFirst removes and returns the first item.
func (s *ArraySeq[T]) DeleteFirst() (T, error) { return s.DeleteAt(0) }

// DeleteLast removes and returns the last item.
func (s *ArraySeq[T]) DeleteLast() (T, error) { return s.DeleteAt(len(s.a) - 1) }

// Slice returns a copy of the stored items in sequence order.
func (s *ArraySeq[T]) Slice() []T {
	out := make([]T, len(s.a))
	copy(out, s.a)
	return out
}
