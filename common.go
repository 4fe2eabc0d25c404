package forkjoin

import "errors"

// ErrInvalidArgument is reported when a reduction is invoked with a negative
// length or a non-positive grain size. It is detected before any work is
// scheduled.
var ErrInvalidArgument = errors.New("invalid argument")

// A Range is a half-open interval [Begin, End) of indices into an input
// sequence, with 0 <= Begin <= End.
type Range struct {
	Begin, End int
}

// Len returns the number of indices covered by r.
func (r Range) Len() int {
	return r.End - r.Begin
}

// Split divides r at its midpoint into two contiguous halves. Both halves
// are non-empty whenever r covers two or more indices.
func (r Range) Split() (left, right Range) {
	mid := r.Begin + r.Len()/2
	return Range{r.Begin, mid}, Range{mid, r.End}
}

type (
	// A FoldFunc accumulates the elements addressed by a leaf range into
	// acc and returns the updated accumulator. It must only read elements
	// within the given range, must not mutate the input sequence, and must
	// be safe to invoke concurrently with other invocations over disjoint
	// ranges.
	FoldFunc[A any] func(r Range, acc A) (A, error)

	// A JoinFunc combines two accumulators previously produced by a
	// FoldFunc, directly or via nested joins. It must be associative. It
	// need not be commutative: the reducer always passes the accumulator
	// covering the lower range as x and the higher range as y.
	JoinFunc[A any] func(x, y A) (A, error)
)
