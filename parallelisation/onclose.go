package parallelisation

import (
	"context"
	"io"

	"github.com/ARM-software/golang-numeric/commonerrors"
)

type CloseFunc func() error

// CloseFunctionStore gathers the functions releasing resources, all called on Close().
type CloseFunctionStore struct {
	ExecutionGroup[CloseFunc]
}

func (s *CloseFunctionStore) RegisterCloseFunction(closeFunc ...CloseFunc) {
	s.RegisterFunction(closeFunc...)
}

func (s *CloseFunctionStore) RegisterCancelFunction(cancelFunc ...context.CancelFunc) {
	for i := range cancelFunc {
		cancel := cancelFunc[i]
		s.RegisterFunction(func() error {
			if cancel != nil {
				cancel()
			}
			return nil
		})
	}
}

func (s *CloseFunctionStore) RegisterCloser(closerObj ...io.Closer) {
	for i := range closerObj {
		c := closerObj[i]
		s.RegisterFunction(func() error {
			if c == nil {
				return commonerrors.UndefinedVariable("closer object")
			}
			return c.Close()
		})
	}
}

func (s *CloseFunctionStore) Close() error {
	return s.Execute(context.Background())
}

// NewCloseFunctionStore returns a store of closing functions which will all be called on Close(). The first error received if any will be returned.
func NewCloseFunctionStore(options ...StoreOption) *CloseFunctionStore {
	return &CloseFunctionStore{
		ExecutionGroup: *NewExecutionGroup[CloseFunc](func(_ context.Context, closeFunc CloseFunc) error {
			if closeFunc == nil {
				return commonerrors.UndefinedVariable("close function")
			}
			return closeFunc()
		}, options...),
	}
}
