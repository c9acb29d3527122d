package parallelisation

import (
	"context"

	"github.com/ARM-software/golang-numeric/commonerrors"
)

// DetermineContextError returns the error of a done context, wrapping its cause if the context was cancelled with one.
func DetermineContextError(ctx context.Context) error {
	err := commonerrors.ErrFromContext(ctx)
	if err == nil {
		return nil
	}
	cause := context.Cause(ctx)
	if commonerrors.Any(cause, nil, ctx.Err()) {
		return err
	}
	return commonerrors.WrapError(err, cause, "")
}

type ContextualFunc func(ctx context.Context) error

func callContextualFunc(ctx context.Context, f ContextualFunc) error {
	if f == nil {
		return commonerrors.UndefinedVariable("contextual function")
	}
	return f(ctx)
}

// NewContextualGroup returns a group executing contextual functions.
func NewContextualGroup(options ...StoreOption) *ExecutionGroup[ContextualFunc] {
	return NewExecutionGroup[ContextualFunc](callContextualFunc, options...)
}

// BreakOnError executes the contextual functions until one fails or the context gets cancelled.
func BreakOnError(ctx context.Context, executionOptions *StoreOptions, contextualFunc ...ContextualFunc) error {
	group := NewContextualGroup(StopOnFirstError(executionOptions).Options()...)
	group.RegisterFunction(contextualFunc...)
	return group.Execute(ctx)
}
