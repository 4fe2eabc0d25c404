// Package sequential provides a sequential implementation of the reduction
// provided by the parallel package. This is useful for testing and
// debugging.
//
// Reduce walks the same split tree as parallel.Reduce, applying joins in the
// same order, so both produce identical results for the same inputs and
// grain size, even for accumulator types whose join is not exactly
// associative.
//
// It is not recommended to use this package for any other purpose, because
// a plain loop is almost certainly more efficient for regular sequential
// programs.
package sequential

import (
	"github.com/parallelkit/forkjoin"
	"github.com/parallelkit/forkjoin/internal"
)

// Reduce reduces the range [0, n) on the calling goroutine, with the same
// contract as parallel.Reduce: balanced binary splitting down to leaf ranges
// of at most grain elements, each folded starting from identity, siblings
// combined with join, lower range first.
//
// Reduce returns forkjoin.ErrInvalidArgument when n is negative or grain is
// not positive. When n is 0 the result is identity. If a fold or join
// fails, the failure over the lowest range is reported and the zero
// accumulator value is returned.
func Reduce[A any](
	n, grain int,
	identity A,
	fold forkjoin.FoldFunc[A],
	join forkjoin.JoinFunc[A],
) (result A, err error) {
	if err = internal.CheckReduceArgs(n, grain); err != nil {
		return
	}
	if n == 0 {
		return identity, nil
	}
	return recur(forkjoin.Range{Begin: 0, End: n}, grain, identity, fold, join)
}

func recur[A any](
	r forkjoin.Range,
	grain int,
	identity A,
	fold forkjoin.FoldFunc[A],
	join forkjoin.JoinFunc[A],
) (result A, err error) {
	if r.Len() <= grain {
		if result, err = fold(r, identity); err != nil {
			var zero A
			return zero, err
		}
		return
	}
	lr, rr := r.Split()
	left, err := recur(lr, grain, identity, fold, join)
	if err != nil {
		return
	}
	right, err := recur(rr, grain, identity, fold, join)
	if err != nil {
		return
	}
	return join(left, right)
}
