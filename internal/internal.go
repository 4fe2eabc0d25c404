package internal

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/parallelkit/forkjoin"
)

// CheckReduceArgs validates the preconditions shared by the parallel and
// sequential reducers. It reports forkjoin.ErrInvalidArgument for a negative
// length or a non-positive grain size.
func CheckReduceArgs(n, grain int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative length %v", forkjoin.ErrInvalidArgument, n)
	}
	if grain <= 0 {
		return fmt.Errorf("%w: non-positive grain size %v", forkjoin.ErrInvalidArgument, grain)
	}
	return nil
}

// DefaultGrain returns a grain size that divides a range of n elements into
// roughly 2 * runtime.GOMAXPROCS(0) leaf ranges, which works well for loads
// with little imbalance. The result is always positive.
func DefaultGrain(n int) int {
	if n <= 0 {
		return 1
	}
	batches := 2 * runtime.GOMAXPROCS(0)
	return ((n - 1) / batches) + 1
}

type runtimeError struct{ error }

func (runtimeError) RuntimeError() {}

// WrapPanic adds stack trace information to a recovered panic.
func WrapPanic(p any) any {
	if p != nil {
		s := fmt.Sprintf("%v\n%s\nrethrown at", p, debug.Stack())
		if _, isError := p.(error); isError {
			r := errors.New(s)
			if _, isRuntimeError := p.(runtime.Error); isRuntimeError {
				return runtimeError{r}
			}
			return r
		}
		return s
	}
	return nil
}
