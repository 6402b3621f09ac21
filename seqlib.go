// Package seqlib collects educational sequence and set data types in the style of an
// introductory algorithms course: array-backed sequences, a linked list sequence, a
// dynamic array with amortized resizing, and an unsorted key-value set built on top of it.
//
// The root package holds small generic helpers shared by examples and tests; the data
// types live in their own packages (seqs, dynarray, kvset, linkedseq, sorts).
package seqlib

import "golang.org/x/exp/constraints"

// Min returns the smaller of x and y.
func Min[T constraints.Ordered](x, y T) T {
	if x < y {
		return x
	}
	return y
}

// Max returns the larger of x and y.
func Max[T constraints.Ordered](x, y T) T {
	if x > y {
		return x
	}
	return y
}
