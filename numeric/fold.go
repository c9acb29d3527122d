/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package numeric

import (
	"iter"

	"github.com/ARM-software/golang-numeric/collection"
)

// Accumulate returns the sum of init and every element of s.
func Accumulate[T Number](s []T, init T) T {
	return AccumulateFunc(s, init, Plus[T])
}

// AccumulateFunc folds s from left to right: op(...op(op(init, s[0]), s[1])..., s[n-1]).
// init is returned if s is empty.
func AccumulateFunc[T, U any](s []T, init U, op FoldFunc[T, U]) U {
	return collection.Reduce(s, init, collection.ReduceFunc[T, U](op))
}

// AccumulateSequence is similar to AccumulateFunc but folds the values yielded by an iterator.
func AccumulateSequence[T, U any](s iter.Seq[T], init U, op FoldFunc[T, U]) U {
	return collection.ReducesSequence(s, init, collection.ReduceFunc[T, U](op))
}

// AccumulateRight folds s from right to left: op(...op(op(init, s[n-1]), s[n-2])..., s[0]).
func AccumulateRight[T, U any](s []T, init U, op FoldFunc[T, U]) U {
	return collection.ReduceRight(s, init, collection.ReduceFunc[T, U](op))
}

// Reduce returns the sum of init and every element of s.
func Reduce[T Number](s []T, init T) T {
	return ReduceFunc(s, init, Plus[T])
}

// ReduceFunc combines init and every element of s using op.
// The result only matches AccumulateFunc when op is associative and commutative, in which case
// ExecuteReduce may compute it in parallel.
func ReduceFunc[T any](s []T, init T, op BinaryOp[T]) T {
	return AccumulateFunc(s, init, FoldFunc[T, T](op))
}
