/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package numeric

// Scans write their output to dst when its capacity allows it (see destination) and return the
// written slice. dst may be s itself. Strictly ordered scans (PartialSum, AdjacentDifference) also
// accept a dst overlapping s at an offset: every input is read before the output at the same
// position is written.

// PartialSum returns the running totals of s.
func PartialSum[T Number](dst, s []T) []T {
	return PartialSumFunc(dst, s, Plus[T])
}

// PartialSumFunc returns the running combinations of s using op, from left to right: out[0] = s[0]
// and out[i] = op(out[i-1], s[i]).
func PartialSumFunc[T any](dst, s []T, op BinaryOp[T]) []T {
	out := destination(dst, len(s))
	if len(s) == 0 {
		return out
	}
	acc := s[0]
	out[0] = acc
	for i := 1; i < len(s); i++ {
		acc = op(acc, s[i])
		out[i] = acc
	}
	return out
}

// InclusiveScan writes the running sums of s to dst: out[i] = s[0] + ... + s[i].
func InclusiveScan[T Number](dst, s []T) []T {
	return InclusiveScanFunc(dst, s, Plus[T])
}

// InclusiveScanFunc is the reorderable counterpart of PartialSumFunc: op is expected to be associative.
func InclusiveScanFunc[T any](dst, s []T, op BinaryOp[T]) []T {
	return PartialSumFunc(dst, s, op)
}

// InclusiveScanInit is similar to InclusiveScanFunc but seeded: out[0] = op(init, s[0]).
func InclusiveScanInit[T any](dst, s []T, init T, op BinaryOp[T]) []T {
	out := destination(dst, len(s))
	acc := init
	for i := range s {
		acc = op(acc, s[i])
		out[i] = acc
	}
	return out
}

// ExclusiveScan writes the running sums of s seeded with init, excluding the current element: out[0] = init.
func ExclusiveScan[T Number](dst, s []T, init T) []T {
	return ExclusiveScanFunc(dst, s, init, Plus[T])
}

// ExclusiveScanFunc returns the running combinations of s excluding the current element:
// out[0] = init and out[i] = op(out[i-1], s[i-1]).
func ExclusiveScanFunc[T any](dst, s []T, init T, op BinaryOp[T]) []T {
	out := destination(dst, len(s))
	acc := init
	for i := range s {
		e := s[i]
		out[i] = acc
		acc = op(acc, e)
	}
	return out
}

// TransformInclusiveScan is similar to InclusiveScanFunc but scans transform(s[i]).
func TransformInclusiveScan[T, U any](dst []U, s []T, op BinaryOp[U], transform UnaryOp[T, U]) []U {
	out := destination(dst, len(s))
	if len(s) == 0 {
		return out
	}
	acc := transform(s[0])
	out[0] = acc
	for i := 1; i < len(s); i++ {
		acc = op(acc, transform(s[i]))
		out[i] = acc
	}
	return out
}

// TransformExclusiveScan is similar to ExclusiveScanFunc but scans transform(s[i]).
func TransformExclusiveScan[T, U any](dst []U, s []T, init U, op BinaryOp[U], transform UnaryOp[T, U]) []U {
	out := destination(dst, len(s))
	acc := init
	for i := range s {
		e := transform(s[i])
		out[i] = acc
		acc = op(acc, e)
	}
	return out
}

// AdjacentDifference returns s[0] followed by the differences between consecutive elements.
func AdjacentDifference[T Number](dst, s []T) []T {
	return AdjacentDifferenceFunc(dst, s, Minus[T])
}

// AdjacentDifferenceFunc computes out[0] = s[0] and out[i] = op(s[i], s[i-1]).
// Writing to s shifted by one, e.g. AdjacentDifferenceFunc(a[1:], a[:len(a)-1], Plus), generates a Fibonacci sequence.
func AdjacentDifferenceFunc[T any](dst, s []T, op BinaryOp[T]) []T {
	out := destination(dst, len(s))
	if len(s) == 0 {
		return out
	}
	previous := s[0]
	out[0] = previous
	for i := 1; i < len(s); i++ {
		current := s[i]
		out[i] = op(current, previous)
		previous = current
	}
	return out
}
