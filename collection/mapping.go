package collection

import (
	"iter"
	"slices"
)

// MapFunc defines a function that maps a value of type T1 to type T2.
type MapFunc[T1, T2 any] func(T1) T2

// MapSequence lazily maps each element of s using f: f is only called when the resulting sequence is consumed.
func MapSequence[T1, T2 any](s iter.Seq[T1], f MapFunc[T1, T2]) iter.Seq[T2] {
	return func(yield func(T2) bool) {
		for v := range s {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// Map applies f to each element of s, in order, and returns a slice with the results.
func Map[T1, T2 any](s []T1, f MapFunc[T1, T2]) []T2 {
	return slices.AppendSeq(make([]T2, 0, len(s)), MapSequence(slices.Values(s), f))
}
