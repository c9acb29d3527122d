/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package numeric

// Operations over two sequences only consider the first min(len(a), len(b)) positions.

// TransformReduce returns init plus the sum of the products a[i]*b[i].
func TransformReduce[T Number](a, b []T, init T) T {
	return TransformReduceFunc(a, b, init, Plus[T], Multiplies[T])
}

// TransformReduceFunc combines init and transform(a[i], b[i]) for every position using reduce.
func TransformReduceFunc[T1, T2, U any](a []T1, b []T2, init U, reduce BinaryOp[U], transform PairwiseFunc[T1, T2, U]) U {
	result := init
	for i := range minLength(a, b) {
		result = reduce(result, transform(a[i], b[i]))
	}
	return result
}

// TransformReduceUnary combines init and transform(s[i]) for every element using reduce, without
// materialising the transformed sequence.
func TransformReduceUnary[T, U any](s []T, init U, reduce BinaryOp[U], transform UnaryOp[T, U]) U {
	result := init
	for _, e := range s {
		result = reduce(result, transform(e))
	}
	return result
}

// InnerProduct returns init plus the sum of the products a[i]*b[i], computed from left to right.
func InnerProduct[T Number](a, b []T, init T) T {
	return InnerProductFunc(a, b, init, FoldFunc[T, T](Plus[T]), PairwiseFunc[T, T, T](Multiplies[T]))
}

// InnerProductFunc folds pairwise(a[i], b[i]) onto init from left to right using combine.
// The pairwise result type may differ from the accumulator e.g. EqualTo and CountTrue count matching pairs.
func InnerProductFunc[T1, T2, V, U any](a []T1, b []T2, init U, combine FoldFunc[V, U], pairwise PairwiseFunc[T1, T2, V]) U {
	result := init
	for i := range minLength(a, b) {
		result = combine(result, pairwise(a[i], b[i]))
	}
	return result
}
