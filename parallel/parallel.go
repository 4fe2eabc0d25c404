// Package parallel provides a fork-join reduction over integer ranges.
//
// A reduction covers the half-open range [0, n), including 0 but excluding
// n. The range is split recursively at its midpoint until leaf ranges of at
// most grain elements remain; each leaf is folded independently, potentially
// on a separate worker goroutine, and sibling results are combined pairwise
// with an associative join on the way back up.
package parallel

import (
	"context"
	"sync"

	"github.com/parallelkit/forkjoin"
	"github.com/parallelkit/forkjoin/internal"
	"github.com/parallelkit/forkjoin/pool"
)

// Reduce receives a range length n, a grain size, an identity accumulator,
// a fold function, and a join function, and reduces the range [0, n) with
// balanced binary splitting.
//
// Every leaf fold starts from identity; a range of length at most grain is
// folded directly on one goroutine without further splitting. Leaf folds
// over disjoint ranges may run concurrently on separate worker goroutines
// taken from the shared default pool, and Reduce returns only when all of
// them and all joins have terminated.
//
// join must be associative; it need not be commutative, as the lower range's
// accumulator is always passed as the first argument. For accumulator types
// whose join is not exactly associative, such as float64 addition, the
// result is determined by the split pattern rather than by element order and
// may differ in the last bits from a strict left-to-right fold.
//
// Reduce returns forkjoin.ErrInvalidArgument when n is negative or grain is
// not positive, before any work is scheduled. When n is 0 the result is
// identity. If a fold or join fails, Reduce reports the failure over the
// lowest range and returns the zero accumulator value; a failed leaf fails
// the whole reduction and is never treated as an identity contribution.
//
// If one or more fold or join invocations panic, the corresponding
// goroutines recover the panics, and Reduce eventually panics with the
// left-most recovered panic value.
func Reduce[A any](
	n, grain int,
	identity A,
	fold forkjoin.FoldFunc[A],
	join forkjoin.JoinFunc[A],
) (A, error) {
	return ReduceWith(pool.Default(), n, grain, identity, fold, join)
}

// ReduceWith is like Reduce, but schedules worker goroutines on p instead of
// the shared default pool. When p is saturated, sub-reductions run on the
// calling goroutine, so an exhausted pool degrades parallelism, never
// correctness.
func ReduceWith[A any](
	p *pool.Pool,
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
	return recur(p, forkjoin.Range{Begin: 0, End: n}, grain, identity, fold, join)
}

func recur[A any](
	pl *pool.Pool,
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
	var left, right A
	var err0, err1 error
	var p any
	var wg sync.WaitGroup
	wg.Add(1)
	task := func() {
		defer func() {
			p = internal.WrapPanic(recover())
			wg.Done()
		}()
		right, err1 = recur(pl, rr, grain, identity, fold, join)
	}
	if !pl.TrySpawn(task) {
		task()
	}
	left, err0 = recur(pl, lr, grain, identity, fold, join)
	wg.Wait()
	if p != nil {
		panic(p)
	}
	if err0 != nil {
		err = err0
	} else if err1 != nil {
		err = err1
	} else {
		result, err = join(left, right)
		return
	}
	var zero A
	return zero, err
}

// ReduceContext is like Reduce, but stops splitting as soon as ctx is done
// and reports ctx.Err(). Cancellation is cooperative: it is observed at
// split boundaries only, so leaf folds already in flight run to completion
// and their results are discarded. Worker goroutines come from the shared
// default pool.
func ReduceContext[A any](
	ctx context.Context,
	n, grain int,
	identity A,
	fold forkjoin.FoldFunc[A],
	join forkjoin.JoinFunc[A],
) (result A, err error) {
	if err = internal.CheckReduceArgs(n, grain); err != nil {
		return
	}
	if err = ctx.Err(); err != nil {
		return
	}
	if n == 0 {
		return identity, nil
	}
	return recurCtx(ctx, pool.Default(), forkjoin.Range{Begin: 0, End: n}, grain, identity, fold, join)
}

func recurCtx[A any](
	ctx context.Context,
	pl *pool.Pool,
	r forkjoin.Range,
	grain int,
	identity A,
	fold forkjoin.FoldFunc[A],
	join forkjoin.JoinFunc[A],
) (result A, err error) {
	if err = ctx.Err(); err != nil {
		return
	}
	if r.Len() <= grain {
		if result, err = fold(r, identity); err != nil {
			var zero A
			return zero, err
		}
		return
	}
	lr, rr := r.Split()
	var left, right A
	var err0, err1 error
	var p any
	var wg sync.WaitGroup
	wg.Add(1)
	task := func() {
		defer func() {
			p = internal.WrapPanic(recover())
			wg.Done()
		}()
		right, err1 = recurCtx(ctx, pl, rr, grain, identity, fold, join)
	}
	if !pl.TrySpawn(task) {
		task()
	}
	left, err0 = recurCtx(ctx, pl, lr, grain, identity, fold, join)
	wg.Wait()
	if p != nil {
		panic(p)
	}
	if err0 != nil {
		err = err0
	} else if err1 != nil {
		err = err1
	} else {
		result, err = join(left, right)
		return
	}
	var zero A
	return zero, err
}
