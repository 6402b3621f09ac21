// Package sorts contains the in-place quadratic comparison sorts from introductory
// algorithms courses. They exist for study and for sorting tiny inputs; for anything
// else, reach for the sort routines in golang.org/x/exp/slices.
package sorts

import "golang.org/x/exp/constraints"

// Selection sorts a ascending in place. It maintains a sorted suffix of the i largest
// items, repeatedly scanning the unsorted prefix for its maximum and swapping it into
// place. Ω(n²) comparisons, but at most O(n) swaps.
func Selection[T constraints.Ordered](a []T) {
	for i := len(a) - 1; i > 0; i-- {
		m := i
		for j := 0; j < i; j++ {
			if a[m] < a[j] {
				m = j
			}
		}
		a[m], a[i] = a[i], a[m]
	}
}

// Insertion sorts a ascending in place. It maintains a sorted prefix, repeatedly
// swapping each item left until its left neighbor is no larger. Ω(n²) comparisons and
// swaps in the worst case, O(n) on nearly sorted input.
func Insertion[T constraints.Ordered](a []T) {
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j] < a[j-1]; j-- {
			a[j-1], a[j] = a[j], a[j-1]
		}
	}
}
