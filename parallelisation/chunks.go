/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package parallelisation

import (
	"context"
	"fmt"
)

// Chunk describes a contiguous block of positions [Low, High) of a sequence.
// Index is the rank of the chunk within the partition.
type Chunk struct {
	Index int
	Low   int
	High  int
}

// Len returns the number of positions covered by the chunk.
func (c Chunk) Len() int {
	return c.High - c.Low
}

func (c Chunk) String() string {
	return fmt.Sprintf("chunk #%v [%v, %v)", c.Index, c.Low, c.High)
}

// SplitRange partitions [0, length) into contiguous chunks of at least grainSize positions
// (unless the whole range is smaller) and, if maxChunks is strictly positive, into no more than maxChunks chunks.
// Chunk sizes differ by at most one and chunks are returned in positional order.
func SplitRange(length, grainSize, maxChunks int) (chunks []Chunk) {
	if length <= 0 {
		return
	}
	if grainSize < 1 {
		grainSize = 1
	}
	n := length / grainSize
	if n < 1 {
		n = 1
	}
	if maxChunks > 0 && n > maxChunks {
		n = maxChunks
	}
	base := length / n
	remainder := length % n
	chunks = make([]Chunk, n)
	low := 0
	for i := range chunks {
		size := base
		if i < remainder {
			size++
		}
		chunks[i] = Chunk{Index: i, Low: low, High: low + size}
		low += size
	}
	return
}

// ForEachChunk applies f to every chunk according to the store options provided.
// Execution stops at the first error unless options state otherwise.
func ForEachChunk(ctx context.Context, chunks []Chunk, f ExecuteFunc[Chunk], options ...StoreOption) error {
	group := NewExecutionGroup[Chunk](f, append([]StoreOption{StopOnFirstError}, options...)...)
	group.RegisterFunction(chunks...)
	return group.Execute(ctx)
}
