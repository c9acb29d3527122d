package collection

import (
	"iter"
	"math"

	"github.com/ARM-software/golang-numeric/field"
	"github.com/ARM-software/golang-numeric/safecast"
)

func sign[T safecast.INumber](x T) T {
	one := T(1)
	if x < 0 {
		return -one
	}
	return one
}

func isFloat[T safecast.INumber]() bool {
	return T(1)/2 != 0
}

// Range returns a slice of numbers similar to Python's built-in range().
// https://docs.python.org/2/library/functions.html#range
//
//	Note: The stop value is always exclusive.
func Range[T safecast.INumber](start, stop T, step *T) (result []T) {
	it, length := rangeSequence(start, stop, step)
	result = make([]T, length)
	i := 0
	for v := range it {
		result[i] = v
		i++
	}
	return result
}

// RangeSequence returns an iterator over a range
func RangeSequence[T safecast.INumber](start, stop T, step *T) iter.Seq[T] {
	it, _ := rangeSequence(start, stop, step)
	return it
}

func determineRangeLength[T safecast.INumber](start, stop, step T) int {
	if step == 0 {
		return 0
	}
	if (step > 0 && start < stop) || (step < 0 && start > stop) {
		if isFloat[T]() {
			return safecast.ToInt(math.Ceil(float64(stop-start) / float64(step)))
		}
		return safecast.ToInt((stop - start + step - sign(step)) / step)
	}
	return 0
}

func rangeSequence[T safecast.INumber](start, stop T, step *T) (it iter.Seq[T], length int) {
	s := field.Optional[T](step, 1)
	length = determineRangeLength(start, stop, s)
	it = func(yield func(T) bool) {
		v := start
		for i := 0; i < length; i++ {
			if !yield(v) {
				return
			}
			v += s
		}
	}
	return
}
