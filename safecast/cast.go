package safecast

import "math"

// saturate converts i into T, returning lo or hi when i lies outside [lo, hi].
// Floats are truncated towards zero.
func saturate[T IInteger, C IConvertable](i C, lo, hi T) T {
	switch f := any(i).(type) {
	case float64:
		return saturateFloat(f, lo, hi)
	case float32:
		return saturateFloat(float64(f), lo, hi)
	}
	if i < 0 {
		if lo >= 0 || int64(i) < int64(lo) {
			return lo
		}
		return T(i)
	}
	// i is non-negative so it fits in an uint64 whatever its type.
	if uint64(i) > uint64(hi) {
		return hi
	}
	return T(i)
}

func saturateFloat[T IInteger](f float64, lo, hi T) T {
	switch {
	case f <= float64(lo):
		return lo
	case f >= float64(hi):
		return hi
	default:
		return T(f)
	}
}

// ToInt converts any [IConvertable] value to an int, saturating at math.MinInt and math.MaxInt.
func ToInt[C IConvertable](i C) int {
	return saturate[int](i, math.MinInt, math.MaxInt)
}

// ToInt64 converts any [IConvertable] value to an int64, saturating at math.MinInt64 and math.MaxInt64.
func ToInt64[C IConvertable](i C) int64 {
	return saturate[int64](i, math.MinInt64, math.MaxInt64)
}

// ToUint64 converts any [IConvertable] value to an uint64. Negative values give 0.
func ToUint64[C IConvertable](i C) uint64 {
	return saturate[uint64](i, 0, math.MaxUint64)
}

// ToFloat64 converts any [IConvertable] value to a float64.
func ToFloat64[C IConvertable](i C) float64 {
	return float64(i)
}

// Magnitude returns the absolute value of an integer as an uint64.
// Unlike negating in the integer's own type, it is exact for the minimum value of signed types.
func Magnitude[I IInteger](i I) uint64 {
	if i >= 0 {
		return uint64(i)
	}
	// -(i+1) cannot overflow; adding one back in the unsigned domain.
	return uint64(-(i + 1)) + 1
}

// FromUint64 converts u into an integer of type I and reports whether the conversion was exact
// i.e. whether u is representable in I.
func FromUint64[I IInteger](u uint64) (converted I, exact bool) {
	converted = I(u)
	exact = converted >= 0 && uint64(converted) == u
	return
}
