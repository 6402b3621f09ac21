package dynarray

import "github.com/huaier/go-seqlib/seqs"

// DynArray is a sequence backed by a Storage buffer that is reallocated by a constant
// factor r (default 2) whenever the logical size leaves the window (lower, upper), where
// upper is the capacity and lower is capacity/r². Keeping the shrink threshold a factor
// of r below the grow threshold forms a hysteresis band: an alternating insert/delete
// workload sitting on a boundary cannot trigger a reallocation on every call, which is
// what makes each operation O(1) amortized.
//
// DynArray implements seqs.Sequence. Use New to construct one.
type DynArray[T any] struct {
	store Storage[T]
	r     int
	upper int // grow threshold, equals store.Cap()
	lower int // shrink threshold, equals store.Cap() / r²
}

// An Option is passed to New to optionally configure a DynArray.
type Option func(*config)

// WithGrowthFactor configures the multiplicative resize factor r. Values below 2 are
// clamped to 2, since a factor of 1 can never open headroom above the logical size.
func WithGrowthFactor(r int) Option {
	return func(conf *config) {
		conf.growthFactor = r
	}
}

type config struct {
	growthFactor int
}

func configure(opts []Option) config {
	result := config{growthFactor: 2}
	for _, opt := range opts {
		opt(&result)
	}
	if result.growthFactor < 2 {
		result.growthFactor = 2
	}
	return result
}

// New constructs an empty DynArray with capacity 0.
func New[T any](opts ...Option) *DynArray[T] {
	conf := configure(opts)
	d := &DynArray[T]{r: conf.growthFactor}
	d.computeBounds()
	return d
}

func (d *DynArray[T]) computeBounds() {
	d.upper = d.store.Cap()
	d.lower = d.store.Cap() / (d.r * d.r)
}

// resize reallocates the buffer to hold n items with headroom, unless n is strictly
// inside the hysteresis band. The new capacity is max(n, 1) * r, so a growth-triggered
// call doubles (under r=2) and a shrink-triggered call lands the size back in the middle
// of the new band. At most one reallocation happens per mutating operation.
func (d *DynArray[T]) resize(n int) {
	if d.lower < n && n < d.upper {
		return
	}
	m := n
	if m < 1 {
		m = 1
	}
	m *= d.r
	fresh := make([]T, m)
	d.store.CopyForward(0, d.store.size, fresh, 0)
	d.store.slots = fresh
	d.computeBounds()
}

// Len returns the number of stored items.
func (d *DynArray[T]) Len() int { return d.store.Len() }

// Cap returns the current capacity of the backing buffer.
func (d *DynArray[T]) Cap() int { return d.store.Cap() }

// GetAt returns the item at index i.
func (d *DynArray[T]) GetAt(i int) (T, error) { return d.store.Get(i) }

// SetAt replaces the item at index i with x.
func (d *DynArray[T]) SetAt(i int, x T) error { return d.store.Set(i, x) }

// InsertLast appends x at the end of the sequence in O(1) amortized time.
func (d *DynArray[T]) InsertLast(x T) {
	d.resize(d.store.size + 1)
	d.store.slots[d.store.size] = x
	d.store.size++
}

// DeleteLast removes and returns the last item in O(1) amortized time.
func (d *DynArray[T]) DeleteLast() (T, error) {
	if d.store.size == 0 {
		var zero T
		return zero, &seqs.IndexError{Index: -1, Size: 0}
	}
	var zero T
	x := d.store.slots[d.store.size-1]
	d.store.slots[d.store.size-1] = zero // release the reference held by the dead slot
	d.store.size--
	d.resize(d.store.size)
	return x, nil
}

// InsertAt inserts x so that it ends up at index i, 0 <= i <= Len(). Items at indices
// >= i shift one slot right via a backward copy, so the overlapping ranges never
// clobber each other.
func (d *DynArray[T]) InsertAt(i int, x T) error {
	if i < 0 || i > d.store.size {
		return &seqs.IndexError{Index: i, Size: d.store.size}
	}
	var zero T
	d.InsertLast(zero) // opens the slot and performs the single reallocation, if any
	d.store.CopyBackward(i, d.store.size-(i+1), d.store.slots, i+1)
	d.store.slots[i] = x
	return nil
}

// DeleteAt removes and returns the item at index i, 0 <= i < Len(). Items at indices
// > i shift one slot left via a forward copy.
func (d *DynArray[T]) DeleteAt(i int) (T, error) {
	if i < 0 || i >= d.store.size {
		var zero T
		return zero, &seqs.IndexError{Index: i, Size: d.store.size}
	}
	x := d.store.slots[i]
	d.store.CopyForward(i+1, d.store.size-(i+1), d.store.slots, i)
	_, _ = d.DeleteLast() // size > 0 here, cannot fail
	return x, nil
}

// InsertFirst inserts x at the front of the sequence.
func (d *DynArray[T]) InsertFirst(x T) { _ = d.InsertAt(0, x) }

// DeleteFirst removes and returns the first item.
func (d *DynArray[T]) DeleteFirst() (T, error) { return d.DeleteAt(0) }

// Build discards the current contents and repopulates the sequence by repeated
// InsertLast, which is O(n) total by the amortized bound.
func (d *DynArray[T]) Build(elems []T) {
	d.store.slots = nil
	d.store.size = 0
	d.computeBounds()
	for _, x := range elems {
		d.InsertLast(x)
	}
}

// Slice returns a copy of the stored items in sequence order.
func (d *DynArray[T]) Slice() []T {
	out := make([]T, d.store.size)
	d.store.CopyForward(0, d.store.size, out, 0)
	return out
}
