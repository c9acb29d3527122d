/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package numeric

import (
	"context"
	"unsafe"

	"github.com/ARM-software/golang-numeric/commonerrors"
	"github.com/ARM-software/golang-numeric/parallelisation"
	"github.com/ARM-software/golang-numeric/value"
)

// Execute functions run the reorderable operations according to a policy (nil meaning sequenced).
// When the policy is parallel, the input is split into contiguous chunks of at least the policy grain size
// and the operators must be associative: chunks are folded independently and then combined in order.
// Errors are only returned if the context is cancelled or an argument is undefined.

// ExecuteReduce is the policy-driven counterpart of ReduceFunc.
func ExecuteReduce[T any](ctx context.Context, p *Policy, s []T, init T, op BinaryOp[T]) (result T, err error) {
	err = checkExecution(ctx, op)
	if err != nil {
		return
	}
	op = traceBinaryOp(p, op)
	chunks := p.partition(len(s))
	if len(chunks) <= 1 {
		result = ReduceFunc(s, init, op)
		return
	}
	return reduceChunks(ctx, p, chunks, init, op, func(c parallelisation.Chunk) T {
		return ReduceFunc(s[c.Low+1:c.High], s[c.Low], op)
	})
}

// ExecuteTransformReduce is the policy-driven counterpart of TransformReduceFunc.
func ExecuteTransformReduce[T1, T2, U any](ctx context.Context, p *Policy, a []T1, b []T2, init U, reduce BinaryOp[U], transform PairwiseFunc[T1, T2, U]) (result U, err error) {
	err = checkExecution(ctx, reduce, transform)
	if err != nil {
		return
	}
	reduce = traceBinaryOp(p, reduce)
	transform = tracePairwiseFunc(p, transform)
	chunks := p.partition(minLength(a, b))
	if len(chunks) <= 1 {
		result = TransformReduceFunc(a, b, init, reduce, transform)
		return
	}
	return reduceChunks(ctx, p, chunks, init, reduce, func(c parallelisation.Chunk) U {
		return TransformReduceFunc(a[c.Low+1:c.High], b[c.Low+1:c.High], transform(a[c.Low], b[c.Low]), reduce, transform)
	})
}

// ExecuteTransformReduceUnary is the policy-driven counterpart of TransformReduceUnary.
func ExecuteTransformReduceUnary[T, U any](ctx context.Context, p *Policy, s []T, init U, reduce BinaryOp[U], transform UnaryOp[T, U]) (result U, err error) {
	err = checkExecution(ctx, reduce, transform)
	if err != nil {
		return
	}
	reduce = traceBinaryOp(p, reduce)
	transform = traceUnaryOp(p, transform)
	chunks := p.partition(len(s))
	if len(chunks) <= 1 {
		result = TransformReduceUnary(s, init, reduce, transform)
		return
	}
	return reduceChunks(ctx, p, chunks, init, reduce, func(c parallelisation.Chunk) U {
		return TransformReduceUnary(s[c.Low+1:c.High], transform(s[c.Low]), reduce, transform)
	})
}

// ExecuteInclusiveScan is the policy-driven counterpart of InclusiveScanFunc.
// A dst partially overlapping s makes the scan run sequentially.
func ExecuteInclusiveScan[T any](ctx context.Context, p *Policy, dst, s []T, op BinaryOp[T]) (out []T, err error) {
	err = checkExecution(ctx, op)
	if err != nil {
		return
	}
	op = traceBinaryOp(p, op)
	out = destination(dst, len(s))
	chunks := p.partition(len(s))
	if len(chunks) <= 1 || partiallyOverlaps(out, s) {
		out = InclusiveScanFunc(out, s, op)
		return
	}
	var zero T
	err = scanChunks(ctx, p, chunks, zero, false, op, func(c parallelisation.Chunk) T {
		return ReduceFunc(s[c.Low+1:c.High], s[c.Low], op)
	}, func(c parallelisation.Chunk, carry T) {
		if c.Index == 0 {
			_ = InclusiveScanFunc(out[c.Low:c.High], s[c.Low:c.High], op)
			return
		}
		_ = InclusiveScanInit(out[c.Low:c.High], s[c.Low:c.High], carry, op)
	})
	if err != nil {
		out = nil
	}
	return
}

// ExecuteExclusiveScan is the policy-driven counterpart of ExclusiveScanFunc.
// A dst partially overlapping s makes the scan run sequentially.
func ExecuteExclusiveScan[T any](ctx context.Context, p *Policy, dst, s []T, init T, op BinaryOp[T]) (out []T, err error) {
	err = checkExecution(ctx, op)
	if err != nil {
		return
	}
	op = traceBinaryOp(p, op)
	out = destination(dst, len(s))
	chunks := p.partition(len(s))
	if len(chunks) <= 1 || partiallyOverlaps(out, s) {
		out = ExclusiveScanFunc(out, s, init, op)
		return
	}
	err = scanChunks(ctx, p, chunks, init, true, op, func(c parallelisation.Chunk) T {
		return ReduceFunc(s[c.Low+1:c.High], s[c.Low], op)
	}, func(c parallelisation.Chunk, carry T) {
		_ = ExclusiveScanFunc(out[c.Low:c.High], s[c.Low:c.High], carry, op)
	})
	if err != nil {
		out = nil
	}
	return
}

// ExecuteTransformInclusiveScan is the policy-driven counterpart of TransformInclusiveScan.
func ExecuteTransformInclusiveScan[T, U any](ctx context.Context, p *Policy, dst []U, s []T, op BinaryOp[U], transform UnaryOp[T, U]) (out []U, err error) {
	err = checkExecution(ctx, op, transform)
	if err != nil {
		return
	}
	op = traceBinaryOp(p, op)
	transform = traceUnaryOp(p, transform)
	out = destination(dst, len(s))
	chunks := p.partition(len(s))
	if len(chunks) <= 1 || partiallyOverlaps(out, s) {
		out = TransformInclusiveScan(out, s, op, transform)
		return
	}
	var zero U
	err = scanChunks(ctx, p, chunks, zero, false, op, func(c parallelisation.Chunk) U {
		return TransformReduceUnary(s[c.Low+1:c.High], transform(s[c.Low]), op, transform)
	}, func(c parallelisation.Chunk, carry U) {
		if c.Index == 0 {
			_ = TransformInclusiveScan(out[c.Low:c.High], s[c.Low:c.High], op, transform)
			return
		}
		transformInclusiveScanInit(out[c.Low:c.High], s[c.Low:c.High], carry, op, transform)
	})
	if err != nil {
		out = nil
	}
	return
}

// ExecuteTransformExclusiveScan is the policy-driven counterpart of TransformExclusiveScan.
func ExecuteTransformExclusiveScan[T, U any](ctx context.Context, p *Policy, dst []U, s []T, init U, op BinaryOp[U], transform UnaryOp[T, U]) (out []U, err error) {
	err = checkExecution(ctx, op, transform)
	if err != nil {
		return
	}
	op = traceBinaryOp(p, op)
	transform = traceUnaryOp(p, transform)
	out = destination(dst, len(s))
	chunks := p.partition(len(s))
	if len(chunks) <= 1 || partiallyOverlaps(out, s) {
		out = TransformExclusiveScan(out, s, init, op, transform)
		return
	}
	err = scanChunks(ctx, p, chunks, init, true, op, func(c parallelisation.Chunk) U {
		return TransformReduceUnary(s[c.Low+1:c.High], transform(s[c.Low]), op, transform)
	}, func(c parallelisation.Chunk, carry U) {
		_ = TransformExclusiveScan(out[c.Low:c.High], s[c.Low:c.High], carry, op, transform)
	})
	if err != nil {
		out = nil
	}
	return
}

func checkExecution(ctx context.Context, operators ...any) error {
	if ctx == nil {
		return commonerrors.UndefinedParameter("context")
	}
	err := parallelisation.DetermineContextError(ctx)
	if err != nil {
		return err
	}
	for i := range operators {
		if value.IsEmpty(operators[i]) {
			return commonerrors.UndefinedParameter("operator")
		}
	}
	return nil
}

// reduceChunks folds every chunk concurrently and then combines the partial results onto init, in chunk order.
func reduceChunks[U any](ctx context.Context, p *Policy, chunks []parallelisation.Chunk, init U, reduce BinaryOp[U], fold func(parallelisation.Chunk) U) (result U, err error) {
	partials := make([]U, len(chunks))
	err = p.forEachChunk(ctx, chunks, func(_ context.Context, c parallelisation.Chunk) error {
		partials[c.Index] = fold(c)
		return nil
	})
	if err != nil {
		return
	}
	result = ReduceFunc(partials, init, reduce)
	return
}

// scanChunks computes the total of every chunk but the last concurrently, derives the value each chunk is
// seeded with (its carry) from the preceding totals and finally scans every chunk concurrently.
// If the scan is not seeded, the first chunk has no carry and the second one is seeded with the first total.
func scanChunks[U any](ctx context.Context, p *Policy, chunks []parallelisation.Chunk, init U, seeded bool, op BinaryOp[U], total func(parallelisation.Chunk) U, scan func(parallelisation.Chunk, U)) (err error) {
	totals := make([]U, len(chunks)-1)
	err = p.forEachChunk(ctx, chunks[:len(chunks)-1], func(_ context.Context, c parallelisation.Chunk) error {
		totals[c.Index] = total(c)
		return nil
	})
	if err != nil {
		return
	}
	carries := make([]U, len(chunks))
	carries[0] = init
	for i := 1; i < len(chunks); i++ {
		if i == 1 && !seeded {
			carries[i] = totals[0]
			continue
		}
		carries[i] = op(carries[i-1], totals[i-1])
	}
	err = p.forEachChunk(ctx, chunks, func(_ context.Context, c parallelisation.Chunk) error {
		scan(c, carries[c.Index])
		return nil
	})
	return
}

func transformInclusiveScanInit[T, U any](dst []U, s []T, init U, op BinaryOp[U], transform UnaryOp[T, U]) {
	acc := init
	for i := range s {
		acc = op(acc, transform(s[i]))
		dst[i] = acc
	}
}

// partiallyOverlaps states whether dst and src share memory without being the exact same slice.
func partiallyOverlaps[T, U any](dst []T, src []U) bool {
	if len(dst) == 0 || len(src) == 0 {
		return false
	}
	dstStart := uintptr(unsafe.Pointer(unsafe.SliceData(dst)))
	dstEnd := dstStart + uintptr(len(dst))*unsafe.Sizeof(dst[0])
	srcStart := uintptr(unsafe.Pointer(unsafe.SliceData(src)))
	srcEnd := srcStart + uintptr(len(src))*unsafe.Sizeof(src[0])
	if dstStart == srcStart && dstEnd == srcEnd {
		return false
	}
	return dstStart < srcEnd && srcStart < dstEnd
}
