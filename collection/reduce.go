// Package collection provides various utilities working on slices or sequences.
package collection

import (
	"iter"
	"slices"
)

//
// Reduce utilities
//

// ReduceFunc defines a reducer that combines an accumulator and an element to produce a new accumulator.
type ReduceFunc[T1, T2 any] func(T2, T1) T2

// Reduce folds over the slice s using f, starting with accumulator.
// Elements are visited from first to last.
func Reduce[T1, T2 any](s []T1, accumulator T2, f ReduceFunc[T1, T2]) T2 {
	return ReducesSequence(slices.Values(s), accumulator, f)
}

// ReducesSequence folds over a sequence using f, starting with accumulator.
func ReducesSequence[T1, T2 any](s iter.Seq[T1], accumulator T2, f ReduceFunc[T1, T2]) T2 {
	result := accumulator
	if s == nil {
		return result
	}
	for e := range s {
		result = f(result, e)
	}
	return result
}

// ReduceRight is similar to Reduce but elements are visited from last to first.
func ReduceRight[T1, T2 any](s []T1, accumulator T2, f ReduceFunc[T1, T2]) T2 {
	return ReducesSequence(BackwardValues(s), accumulator, f)
}

// BackwardValues returns an iterator over the values of s in reverse order.
func BackwardValues[T any](s []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range slices.Backward(s) {
			if !yield(v) {
				return
			}
		}
	}
}
