// Package linkedseq implements a pointer-based sequence as a singly linked list. Nodes
// live in an arena slice and link to each other by index rather than by Go pointer,
// which keeps the whole structure in one allocation region and makes a deliberately
// cyclic list (see LinkLast) safe to build and inspect.
//
// The cost model is the mirror image of an array sequence: InsertFirst and DeleteFirst
// are O(1), while reaching position i costs O(i) link hops.
package linkedseq

import "github.com/huaier/go-seqlib/seqs"

// none marks the absence of a link.
const none = -1

type node[T any] struct {
	item T
	next int // arena index of the next node, or none
}

// LinkedSeq is a singly linked list sequence. It implements seqs.Sequence.
// Use New to construct one; the zero value is not usable.
type LinkedSeq[T any] struct {
	nodes []node[T]
	head  int // arena index of the first node, or none
	free  int // head of the free list of released arena slots, or none
	size  int
}

// New constructs a LinkedSeq holding the provided items.
func New[T any](elems ...T) *LinkedSeq[T] {
	l := &LinkedSeq[T]{head: none, free: none}
	l.Build(elems)
	return l
}

// alloc places x in a free arena slot and returns its index, reusing released slots
// before growing the arena.
func (l *LinkedSeq[T]) alloc(x T) int {
	if l.free != none {
		i := l.free
		l.free = l.nodes[i].next
		l.nodes[i] = node[T]{item: x, next: none}
		return i
	}
	l.nodes = append(l.nodes, node[T]{item: x, next: none})
	return len(l.nodes) - 1
}

// release returns arena slot i to the free list.
func (l *LinkedSeq[T]) release(i int) {
	var zero T
	l.nodes[i] = node[T]{item: zero, next: l.free}
	l.free = i
}

// laterNode returns the arena index of the node i positions after the head.
// The caller guarantees 0 <= i < size.
func (l *LinkedSeq[T]) laterNode(i int) int {
	n := l.head
	for ; i > 0; i-- {
		n = l.nodes[n].next
	}
	return n
}

// Len returns the number of stored items.
func (l *LinkedSeq[T]) Len() int { return l.size }

// Build discards the current contents and repopulates the sequence from elems. The
// items are inserted front-first in reverse order, so Build is O(n).
func (l *LinkedSeq[T]) Build(elems []T) {
	l.nodes = l.nodes[:0]
	l.head = none
	l.free = none
	l.size = 0
	for i := len(elems) - 1; i >= 0; i-- {
		l.InsertFirst(elems[i])
	}
}

// GetAt returns the item at position i in O(i) time.
func (l *LinkedSeq[T]) GetAt(i int) (T, error) {
	if i < 0 || i >= l.size {
		var zero T
		return zero, &seqs.IndexError{Index: i, Size: l.size}
	}
	return l.nodes[l.laterNode(i)].item, nil
}

// SetAt replaces the item at position i in O(i) time.
func (l *LinkedSeq[T]) SetAt(i int, x T) error {
	if i < 0 || i >= l.size {
		return &seqs.IndexError{Index: i, Size: l.size}
	}
	l.nodes[l.laterNode(i)].item = x
	return nil
}

// InsertFirst inserts x at the front of the sequence in O(1) time.
func (l *LinkedSeq[T]) InsertFirst(x T) {
	i := l.alloc(x)
	l.nodes[i].next = l.head
	l.head = i
	l.size++
}

// DeleteFirst removes and returns the first item in O(1) time.
func (l *LinkedSeq[T]) DeleteFirst() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, &seqs.IndexError{Index: 0, Size: 0}
	}
	i := l.head
	x := l.nodes[i].item
	l.head = l.nodes[i].next
	l.release(i)
	l.size--
	return x, nil
}

// InsertAt inserts x so that it ends up at position i, relinking a single node after
// an O(i) walk.
func (l *LinkedSeq[T]) InsertAt(i int, x T) error {
	if i < 0 || i > l.size {
		return &seqs.IndexError{Index: i, Size: l.size}
	}
	if i == 0 {
		l.InsertFirst(x)
		return nil
	}
	prev := l.laterNode(i - 1)
	n := l.alloc(x)
	l.nodes[n].next = l.nodes[prev].next
	l.nodes[prev].next = n
	l.size++
	return nil
}

// DeleteAt removes and returns the item at position i after an O(i) walk.
func (l *LinkedSeq[T]) DeleteAt(i int) (T, error) {
	if i < 0 || i >= l.size {
		var zero T
		return zero, &seqs.IndexError{Index: i, Size: l.size}
	}
	if i == 0 {
		return l.DeleteFirst()
	}
	prev := l.laterNode(i - 1)
	t := l.nodes[prev].next
	x := l.nodes[t].item
	l.nodes[prev].next = l.nodes[t].next
	l.release(t)
	l.size--
	return x, nil
}

// InsertLast appends x at the end of the sequence in O(n) time.
func (l *LinkedSeq[T]) InsertLast(x T) { _ = l.InsertAt(l.size, x) }

// DeleteLast removes and returns the last item in O(n) time.
func (l *LinkedSeq[T]) DeleteLast() (T, error) { return l.DeleteAt(l.size - 1) }

// Slice returns a copy of the stored items in sequence order.
func (l *LinkedSeq[T]) Slice() []T {
	out := make([]T, 0, l.size)
	n := l.head
	for i := 0; i < l.size; i++ {
		out = append(out, l.nodes[n].item)
		n = l.nodes[n].next
	}
	return out
}

// LinkLast re-points the last node's link at the node at position pos, turning the tail
// of the list into a cycle. After LinkLast the positional operations no longer
// terminate meaningfully; the list exists to be measured with CycleLen.
func (l *LinkedSeq[T]) LinkLast(pos int) error {
	if pos < 0 || pos >= l.size {
		return &seqs.IndexError{Index: pos, Size: l.size}
	}
	target := l.laterNode(pos)
	last := l.laterNode(l.size - 1)
	l.nodes[last].next = target
	return nil
}

// CycleLen returns the number of nodes on the cycle reachable from the head, or 0 when
// the list is acyclic. It runs the two-pointer tortoise-and-hare walk: once the fast
// link-hopper meets the slow one they are both on the cycle, and one more lap counts
// its length. O(n) time, O(1) additional space.
func (l *LinkedSeq[T]) CycleLen() int {
	slow, fast := l.head, l.head
	for fast != none && l.nodes[fast].next != none {
		slow = l.nodes[slow].next
		fast = l.nodes[l.nodes[fast].next].next
		if slow == fast {
			n := 1
			for i := l.nodes[slow].next; i != slow; i = l.nodes[i].next {
				n++
			}
			return n
		}
	}
	return 0
}
