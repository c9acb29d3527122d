/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package numeric

import (
	"context"
	"fmt"
	"runtime"

	"github.com/ARM-software/golang-numeric/commonerrors"
	"github.com/ARM-software/golang-numeric/config"
	"github.com/ARM-software/golang-numeric/logs"
	"github.com/ARM-software/golang-numeric/parallelisation"
)

// Policy states how the reorderable operations are executed. A nil policy means sequenced execution.
type Policy struct {
	parallel  bool
	workers   int
	grainSize int
	loggers   logs.Loggers
}

type PolicyOption func(*Policy) *Policy

// Sequenced executes operations on the calling goroutine, in order.
var Sequenced PolicyOption = func(p *Policy) *Policy {
	if p == nil {
		p = defaultPolicy()
	}
	p.parallel = false
	p.workers = 0
	return p
}

// Parallel partitions operations into chunks executed concurrently, with one goroutine per chunk.
var Parallel PolicyOption = func(p *Policy) *Policy {
	if p == nil {
		p = defaultPolicy()
	}
	p.parallel = true
	return p
}

// Workers partitions operations into at most `workers` chunks executed concurrently.
// A number of workers less than 1 means there is no bound other than the number of CPUs.
func Workers(workers int) PolicyOption {
	return func(p *Policy) *Policy {
		p = Parallel(p)
		p.workers = max(workers, 0)
		return p
	}
}

// GrainSize defines the minimum number of elements a chunk holds when operations are partitioned.
func GrainSize(grainSize int) PolicyOption {
	return func(p *Policy) *Policy {
		if p == nil {
			p = defaultPolicy()
		}
		p.grainSize = max(grainSize, 1)
		return p
	}
}

// Trace logs every invocation of the operators of an operation, with their arguments and result.
func Trace(loggers logs.Loggers) PolicyOption {
	return func(p *Policy) *Policy {
		if p == nil {
			p = defaultPolicy()
		}
		p.loggers = loggers
		return p
	}
}

func defaultPolicy() *Policy {
	return &Policy{
		grainSize: DefaultGrainSize,
	}
}

// NewPolicy returns a policy. It is sequenced unless stated otherwise by options.
func NewPolicy(opts ...PolicyOption) *Policy {
	p := defaultPolicy()
	for i := range opts {
		if opts[i] != nil {
			p = opts[i](p)
		}
	}
	return p
}

// NewPolicyFromConfiguration returns the policy described by a configuration.
// loggers are only required if the configuration enables tracing.
func NewPolicyFromConfiguration(cfg *Configuration, loggers logs.Loggers) (p *Policy, err error) {
	if cfg == nil {
		err = commonerrors.UndefinedVariable("policy configuration")
		return
	}
	err = cfg.Validate()
	if err != nil {
		err = config.WrapValidationError(nil, err)
		return
	}
	opts := []PolicyOption{GrainSize(cfg.GrainSize)}
	if cfg.Parallel {
		opts = append(opts, Workers(cfg.Workers))
	}
	if cfg.Trace {
		if loggers == nil {
			err = commonerrors.New(commonerrors.ErrNoLogger, "tracing requires loggers")
			return
		}
		opts = append(opts, Trace(loggers))
	}
	p = NewPolicy(opts...)
	return
}

func (p *Policy) IsParallel() bool {
	return p != nil && p.parallel
}

// GetWorkers returns the maximum number of concurrent workers. 0 means one per chunk.
func (p *Policy) GetWorkers() int {
	if p == nil {
		return 0
	}
	return p.workers
}

func (p *Policy) GetGrainSize() int {
	if p == nil {
		return DefaultGrainSize
	}
	return p.grainSize
}

func (p *Policy) IsTraced() bool {
	return p != nil && p.loggers != nil
}

func (p *Policy) String() string {
	if !p.IsParallel() {
		return "sequenced"
	}
	if p.GetWorkers() > 0 {
		return fmt.Sprintf("parallel (%v workers, grain size %v)", p.GetWorkers(), p.GetGrainSize())
	}
	return fmt.Sprintf("parallel (grain size %v)", p.GetGrainSize())
}

func (p *Policy) maxChunks() int {
	if p.workers > 0 {
		return p.workers
	}
	return runtime.GOMAXPROCS(0)
}

// partition returns the chunks an operation over length elements is split into.
// A single chunk means the operation should run sequentially.
func (p *Policy) partition(length int) []parallelisation.Chunk {
	if !p.IsParallel() {
		return parallelisation.SplitRange(length, length, 1)
	}
	return parallelisation.SplitRange(length, p.grainSize, p.maxChunks())
}

func (p *Policy) forEachChunk(ctx context.Context, chunks []parallelisation.Chunk, f parallelisation.ExecuteFunc[parallelisation.Chunk]) error {
	options := []parallelisation.StoreOption{parallelisation.Parallel}
	if p.workers > 0 {
		options = append(options, parallelisation.Workers(p.workers))
	}
	return parallelisation.ForEachChunk(ctx, chunks, f, options...)
}

func traceBinaryOp[T any](p *Policy, op BinaryOp[T]) BinaryOp[T] {
	if !p.IsTraced() || op == nil {
		return op
	}
	return func(a, b T) T {
		result := op(a, b)
		p.loggers.Log("BinaryOp:", a, b, "->", result)
		return result
	}
}

func traceUnaryOp[T, U any](p *Policy, op UnaryOp[T, U]) UnaryOp[T, U] {
	if !p.IsTraced() || op == nil {
		return op
	}
	return func(a T) U {
		result := op(a)
		p.loggers.Log("UnaryOp:", a, "->", result)
		return result
	}
}

func tracePairwiseFunc[T1, T2, V any](p *Policy, op PairwiseFunc[T1, T2, V]) PairwiseFunc[T1, T2, V] {
	if !p.IsTraced() || op == nil {
		return op
	}
	return func(a T1, b T2) V {
		result := op(a, b)
		p.loggers.Log("PairwiseOp:", a, b, "->", result)
		return result
	}
}
