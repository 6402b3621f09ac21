// Package kvset implements an unsorted associative Set of unique-key pairs stored in a
// dynamic array. Point operations (Insert, Find, Delete) are linear scans; the
// order-dependent queries (IterOrd, FindNext, FindPrev) sort a fresh snapshot of the
// pairs on demand rather than maintaining a sorted index, trading O(n log n) per query
// for O(1) extra state. This is the flat "unsorted array" Set from introductory
// algorithms courses, not a production container.
package kvset

import (
	"errors"

	"github.com/huaier/go-seqlib/dynarray"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// ErrEmptySet is returned by FindMin and FindMax when the set holds no pairs.
var ErrEmptySet = errors.New("kvset: empty set")

// A Pair is an owned key-value tuple. Keys are unique within a Set by construction.
type Pair[K constraints.Ordered, V any] struct {
	Key   K
	Value V
}

// Set is an unordered collection of Pairs with unique keys. The position of a pair in
// the backing sequence is incidental; only key-sorted order is meaningful, and only to
// the ordered queries. Use New to construct one.
type Set[K constraints.Ordered, V any] struct {
	pairs *dynarray.DynArray[Pair[K, V]]
}

// New constructs a Set holding the provided pairs. Pairs sharing a key are collapsed,
// keeping the value of the last occurrence.
func New[K constraints.Ordered, V any](pairs ...Pair[K, V]) *Set[K, V] {
	s := &Set[K, V]{pairs: dynarray.New[Pair[K, V]]()}
	for _, p := range pairs {
		s.Insert(p)
	}
	return s
}

// Len returns the number of stored pairs.
func (s *Set[K, V]) Len() int { return s.pairs.Len() }

// Build discards the current contents and repopulates the set from pairs, collapsing
// duplicate keys in favor of the last occurrence.
func (s *Set[K, V]) Build(pairs []Pair[K, V]) {
	s.pairs.Build(nil)
	for _, p := range pairs {
		s.Insert(p)
	}
}

// Insert adds p to the set. If a pair with the same key already exists, its value is
// overwritten in place and the set's size does not change; otherwise p is appended.
// O(n).
func (s *Set[K, V]) Insert(p Pair[K, V]) {
	for i := 0; i < s.pairs.Len(); i++ {
		stored, _ := s.pairs.GetAt(i)
		if stored.Key == p.Key {
			_ = s.pairs.SetAt(i, p)
			return
		}
	}
	s.pairs.InsertLast(p)
}

// Find returns the stored pair with key k. The second result reports whether such a
// pair exists; a missing key is not an error. O(n).
func (s *Set[K, V]) Find(k K) (Pair[K, V], bool) {
	for i := 0; i < s.pairs.Len(); i++ {
		p, _ := s.pairs.GetAt(i)
		if p.Key == k {
			return p, true
		}
	}
	var zero Pair[K, V]
	return zero, false
}

// Lookup returns just the value stored under key k, and whether it exists.
func (s *Set[K, V]) Lookup(k K) (V, bool) {
	p, ok := s.Find(k)
	return p.Value, ok
}

// Delete removes the pair with key k, shifting later pairs down. Deleting an absent key
// is a no-op. O(n).
func (s *Set[K, V]) Delete(k K) {
	for i := 0; i < s.pairs.Len(); i++ {
		p, _ := s.pairs.GetAt(i)
		if p.Key == k {
			_, _ = s.pairs.DeleteAt(i)
			return
		}
	}
}

// IterOrd returns all pairs in ascending key order. The result is a fresh snapshot
// sorted at call time, not a live view. O(n log n) per call.
func (s *Set[K, V]) IterOrd() []Pair[K, V] {
	ord := s.pairs.Slice()
	slices.SortFunc(ord, func(a, b Pair[K, V]) bool {
		return a.Key < b.Key
	})
	return ord
}

// FindMin returns the pair with the smallest key via a linear comparator scan.
// It returns ErrEmptySet when the set is empty.
func (s *Set[K, V]) FindMin() (Pair[K, V], error) {
	return s.scanExtreme(func(candidate, best K) bool { return candidate < best })
}

// FindMax returns the pair with the largest key via a linear comparator scan.
// It returns ErrEmptySet when the set is empty.
func (s *Set[K, V]) FindMax() (Pair[K, V], error) {
	return s.scanExtreme(func(candidate, best K) bool { return candidate > best })
}

func (s *Set[K, V]) scanExtreme(better func(candidate, best K) bool) (Pair[K, V], error) {
	if s.pairs.Len() == 0 {
		var zero Pair[K, V]
		return zero, ErrEmptySet
	}
	best, _ := s.pairs.GetAt(0)
	for i := 1; i < s.pairs.Len(); i++ {
		p, _ := s.pairs.GetAt(i)
		if better(p.Key, best.Key) {
			best = p
		}
	}
	return best, nil
}

// FindNext returns the successor of key k in ascending key order: the pair following
// the pair whose key equals k exactly. If k is not stored, or k is the largest key, the
// second result is false. A key that merely falls between two stored keys does not
// match. O(n log n).
func (s *Set[K, V]) FindNext(k K) (Pair[K, V], bool) {
	ord := s.IterOrd()
	for i, p := range ord {
		if p.Key == k && i+1 < len(ord) {
			return ord[i+1], true
		}
	}
	var zero Pair[K, V]
	return zero, false
}

// FindPrev returns the predecessor of key k in ascending key order: the pair preceding
// the pair whose key equals k exactly. If k is not stored, or k is the smallest key,
// the second result is false. O(n log n).
func (s *Set[K, V]) FindPrev(k K) (Pair[K, V], bool) {
	ord := s.IterOrd()
	for i := len(ord) - 1; i >= 0; i-- {
		if ord[i].Key == k && i > 0 {
			return ord[i-1], true
		}
	}
	var zero Pair[K, V]
	return zero, false
}
