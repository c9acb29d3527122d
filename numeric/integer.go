/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package numeric

import (
	"math"
	"math/bits"
	"reflect"

	"golang.org/x/exp/constraints"

	"github.com/ARM-software/golang-numeric/commonerrors"
	"github.com/ARM-software/golang-numeric/safecast"
)

const (
	minNormalFloat64 = 0x1p-1022
	minNormalFloat32 = 0x1p-126
)

// GCD returns the greatest common divisor of |a| and |b|. GCD(0, 0) is 0.
// If the result is not representable in T (e.g. GCD(math.MinInt64, 0)), it wraps around.
func GCD[T constraints.Integer](a, b T) T {
	return T(gcd(safecast.Magnitude(a), safecast.Magnitude(b)))
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of |a| and |b|, or 0 if either is 0.
// The result wraps around if it does not fit in T: see LCMChecked.
func LCM[T constraints.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	magnitudeA, magnitudeB := safecast.Magnitude(a), safecast.Magnitude(b)
	return T(magnitudeA / gcd(magnitudeA, magnitudeB) * magnitudeB)
}

// LCMChecked is similar to LCM but returns an error if the least common multiple cannot be represented in T.
func LCMChecked[T constraints.Integer](a, b T) (lcm T, err error) {
	if a == 0 || b == 0 {
		return
	}
	magnitudeA, magnitudeB := safecast.Magnitude(a), safecast.Magnitude(b)
	hi, lo := bits.Mul64(magnitudeA/gcd(magnitudeA, magnitudeB), magnitudeB)
	if hi != 0 {
		err = commonerrors.Newf(commonerrors.ErrOutOfRange, "least common multiple of %v and %v exceeds 64 bits", a, b)
		return
	}
	lcm, exact := safecast.FromUint64[T](lo)
	if !exact {
		lcm = 0
		err = commonerrors.Newf(commonerrors.ErrOutOfRange, "least common multiple of %v and %v (%v) cannot be represented as %T", a, b, lo, lcm)
	}
	return
}

// Midpoint returns the half-way point between a and b without overflowing, rounding towards a.
func Midpoint[T constraints.Integer](a, b T) T {
	// differences are computed modulo 2^64 which is exact for any integer type up to 64 bits.
	if a > b {
		return a - T((uint64(a)-uint64(b))/2)
	}
	return a + T((uint64(b)-uint64(a))/2)
}

// MidpointFloat returns the half-way point between a and b without overflowing, even for
// operands close to the largest or smallest representable values.
func MidpointFloat[T constraints.Float](a, b T) T {
	lo, hi := minNormalFloat64*2, math.MaxFloat64/2
	if reflect.TypeFor[T]().Bits() == 32 {
		lo, hi = minNormalFloat32*2, math.MaxFloat32/2
	}
	absA, absB := math.Abs(float64(a)), math.Abs(float64(b))
	switch {
	case absA <= hi && absB <= hi:
		return (a + b) / 2
	case absA < lo:
		return a + b/2
	case absB < lo:
		return a/2 + b
	default:
		return a/2 + b/2
	}
}

// MidpointOf returns the element half-way between positions i and j of s, rounding towards i.
// Like any slice access, it panics if the position is out of range.
func MidpointOf[T any](s []T, i, j int) T {
	return s[Midpoint(i, j)]
}

// Iota fills dst with sequentially increasing values, starting with start, and returns it.
func Iota[T Number](dst []T, start T) []T {
	v := start
	for i := range dst {
		dst[i] = v
		v++
	}
	return dst
}
