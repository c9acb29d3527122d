/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package numeric

// destination returns the slice results of length n are written to: dst itself if it is large enough.
func destination[T any](dst []T, n int) []T {
	if cap(dst) >= n {
		return dst[:n]
	}
	return make([]T, n)
}

func minLength[T1, T2 any](a []T1, b []T2) int {
	return min(len(a), len(b))
}
