package parallelisation

import (
	"context"

	"github.com/sasha-s/go-deadlock"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"github.com/ARM-software/golang-numeric/commonerrors"
	"github.com/ARM-software/golang-numeric/value"
)

type IExecutor interface {
	// Execute executes all the functions in the group.
	Execute(ctx context.Context) error
}

type IExecutionGroup[T any] interface {
	IExecutor
	RegisterFunction(function ...T)
	Len() int
}

type ExecuteFunc[T any] func(ctx context.Context, element T) error

// ExecutionGroup applies an ExecuteFunc to every element registered, either sequentially or concurrently.
type ExecutionGroup[T any] struct {
	mu          deadlock.RWMutex
	elements    []element[T]
	executeFunc ExecuteFunc[T]
	options     StoreOptions
}

// element is a registered value. If done is set, the value is only executed once.
type element[T any] struct {
	value T
	done  *atomic.Bool
}

func (e element[T]) claim() bool {
	return e.done == nil || !e.done.Swap(true)
}

// NewExecutionGroup returns an execution group which executes functions according to store options.
func NewExecutionGroup[T any](executeFunc ExecuteFunc[T], options ...StoreOption) *ExecutionGroup[T] {
	return &ExecutionGroup[T]{
		executeFunc: executeFunc,
		options:     *WithOptions(options...),
	}
}

// RegisterFunction registers functions to the group.
func (s *ExecutionGroup[T]) RegisterFunction(function ...T) {
	defer s.mu.Unlock()
	s.mu.Lock()
	for i := range function {
		e := element[T]{value: function[i]}
		if s.options.onlyOnce {
			e.done = atomic.NewBool(false)
		}
		s.elements = append(s.elements, e)
	}
}

func (s *ExecutionGroup[T]) Len() int {
	defer s.mu.RUnlock()
	s.mu.RLock()
	return len(s.elements)
}

// Execute executes all the function in the group according to store options.
func (s *ExecutionGroup[T]) Execute(ctx context.Context) (err error) {
	defer s.mu.Unlock()
	s.mu.Lock()
	if value.IsEmpty(s.executeFunc) {
		return commonerrors.New(commonerrors.ErrUndefined, "the group was not initialised correctly")
	}
	if s.options.sequential {
		err = s.executeSequentially(ctx)
	} else {
		err = s.executeConcurrently(ctx)
	}
	return
}

func (s *ExecutionGroup[T]) executeConcurrently(ctx context.Context) error {
	if len(s.elements) == 0 {
		return DetermineContextError(ctx)
	}
	g, gCtx := errgroup.WithContext(ctx)
	if !s.options.stopOnFirstError {
		gCtx = ctx
	}
	workers := s.options.workers
	if workers <= 0 {
		workers = len(s.elements)
	}
	g.SetLimit(workers)
	errs := make([]error, len(s.elements))
	for i := range s.elements {
		g.Go(func() error {
			errs[i] = s.execute(gCtx, s.elements[i])
			return errs[i]
		})
	}
	err := g.Wait()
	if s.options.joinErrors {
		err = commonerrors.Join(errs...)
	}
	return err
}

func (s *ExecutionGroup[T]) executeSequentially(ctx context.Context) error {
	err := DetermineContextError(ctx)
	if err != nil {
		return err
	}
	n := len(s.elements)
	errs := make([]error, 0, n)
	for j := range n {
		i := j
		if s.options.reverse {
			i = n - j - 1
		}
		subErr := s.execute(ctx, s.elements[i])
		if subErr == nil {
			continue
		}
		if commonerrors.Any(subErr, commonerrors.ErrCancelled, commonerrors.ErrTimeout) || s.options.stopOnFirstError {
			return subErr
		}
		errs = append(errs, subErr)
	}
	if len(errs) == 0 {
		return nil
	}
	if s.options.joinErrors {
		return commonerrors.Join(errs...)
	}
	return errs[0]
}

func (s *ExecutionGroup[T]) execute(ctx context.Context, e element[T]) error {
	err := DetermineContextError(ctx)
	if err != nil {
		return err
	}
	if !e.claim() {
		return nil
	}
	return s.executeFunc(ctx, e.value)
}
