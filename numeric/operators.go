/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package numeric provides generic folds, reductions, scans and integer utilities over slices.
//
// Strictly ordered operations (Accumulate, PartialSum, InnerProduct, AdjacentDifference) always
// apply their operator from the first element to the last. Reorderable operations (Reduce,
// TransformReduce, inclusive/exclusive scans) additionally have Execute variants taking a Policy
// which may partition the work across workers, in which case the operator must be associative.
package numeric

import (
	"github.com/ARM-software/golang-numeric/collection"
	"github.com/ARM-software/golang-numeric/safecast"
)

// Number is any integer or floating-point type.
type Number interface {
	safecast.INumber
}

// FoldFunc combines an accumulator with the next element of a sequence. It may be non-associative.
type FoldFunc[T, U any] func(acc U, element T) U

// BinaryOp combines two values of the same type.
type BinaryOp[T any] func(T, T) T

// UnaryOp transforms an element before it is folded or scanned.
type UnaryOp[T, U any] = collection.MapFunc[T, U]

// PairwiseFunc combines elements at the same position of two sequences.
type PairwiseFunc[T1, T2, V any] func(T1, T2) V

// Plus returns a + b.
func Plus[T Number](a, b T) T {
	return a + b
}

// Minus returns a - b.
func Minus[T Number](a, b T) T {
	return a - b
}

// Multiplies returns a * b.
func Multiplies[T Number](a, b T) T {
	return a * b
}

// EqualTo states whether a and b are equal.
func EqualTo[T comparable](a, b T) bool {
	return a == b
}

// CountTrue increments count when matched is true. Combined with EqualTo, it counts matching pairs.
func CountTrue(count int, matched bool) int {
	if matched {
		return count + 1
	}
	return count
}

// Identity returns v unchanged.
func Identity[T any](v T) T {
	return v
}
