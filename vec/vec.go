// Package vec marshals caller-owned numeric vectors into read-only buffers
// that can be handed to worker goroutines, and provides sum entry points
// over them.
//
// The reducer in package parallel must not touch representations that are
// tied to a single goroutine or runtime; a Buffer is the plain contiguous
// view that workers are allowed to read concurrently.
package vec

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/parallelkit/forkjoin"
	"github.com/parallelkit/forkjoin/internal"
	"github.com/parallelkit/forkjoin/parallel"
)

// A Buffer is a read-only view over a contiguous float64 array. Any number
// of goroutines may read it concurrently without locking.
type Buffer struct {
	data []float64
}

// Wrap returns a Buffer over data without copying. The caller must not
// mutate data for as long as the Buffer is in use.
func Wrap(data []float64) Buffer {
	return Buffer{data: data}
}

// FromVecDense marshals a gonum dense vector into a Buffer. The backing
// array is shared when the vector's elements are contiguous and copied
// otherwise; either way the caller must not mutate v while the Buffer is in
// use.
func FromVecDense(v *mat.VecDense) Buffer {
	raw := v.RawVector()
	if raw.Inc == 1 {
		return Buffer{data: raw.Data[:raw.N]}
	}
	data := make([]float64, raw.N)
	for i := range data {
		data[i] = raw.Data[i*raw.Inc]
	}
	return Buffer{data: data}
}

// Len returns the number of elements in the buffer.
func (b Buffer) Len() int {
	return len(b.data)
}

// At returns the element at index i.
func (b Buffer) At(i int) float64 {
	return b.data[i]
}

// Slice returns the elements addressed by r. The result aliases the buffer
// and must be treated as read-only.
func (b Buffer) Slice(r forkjoin.Range) []float64 {
	return b.data[r.Begin:r.End]
}

// Sum returns the sum of all elements, computed with a fork-join reduction
// on the shared default pool and a default grain size. An empty buffer sums
// to 0.
func (b Buffer) Sum() float64 {
	// The arguments are valid by construction and neither the fold nor
	// the join can fail.
	result, _ := parallel.Reduce(
		b.Len(), internal.DefaultGrain(b.Len()), 0,
		func(r forkjoin.Range, acc float64) (float64, error) {
			return acc + floats.Sum(b.Slice(r)), nil
		},
		func(x, y float64) (float64, error) {
			return x + y, nil
		},
	)
	return result
}

// Sum returns the sum of x, computed in parallel. It is equivalent to
// Wrap(x).Sum().
func Sum(x []float64) float64 {
	return Wrap(x).Sum()
}

// SeqSum returns the strict left-to-right sum of x, computed on the calling
// goroutine. For float64 data the parallel tree sum may differ from SeqSum
// in the last bits.
func SeqSum(x []float64) float64 {
	return floats.Sum(x)
}
