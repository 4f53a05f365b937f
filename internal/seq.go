package internal

import (
	"iter"
)

// SeqFlatten yields, in order, the values of inner applied to each value
// of outer.
func SeqFlatten[S, T any](outer iter.Seq[S], inner func(S) iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for s := range outer {
			for val := range inner(s) {
				if !yield(val) {
					return
				}
			}
		}
	}
}

// SeqIndex pairs each value of a sequence with its zero-based position.
func SeqIndex[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		n := 0
		for val := range seq {
			if !yield(n, val) {
				return
			}
			n++
		}
	}
}
