// Package forkjoin provides a grain-based fork-join reduction over integer
// ranges. A reduction divides the half-open range [0, n) into contiguous
// leaf ranges, folds each leaf independently (potentially on separate worker
// goroutines), and combines the partial results pairwise with an associative
// join on the way back up.
//
// Forkjoin provides the following subpackages:
//
// forkjoin/parallel provides the fork-join reducer itself, including a
// context-aware variant with cooperative cancellation at split boundaries.
//
// forkjoin/sequential provides a sequential implementation of the same
// reduction contract, for testing and debugging purposes. It walks the same
// split tree as the parallel reducer, so both produce identical results even
// for accumulator types such as float64 whose join is not exactly
// associative.
//
// forkjoin/pool provides the bounded worker pool that schedules
// sub-reductions. A saturated pool makes the reducer fall back to the
// calling goroutine, so pool exhaustion degrades parallelism, never
// correctness.
//
// forkjoin/vec marshals caller-owned numeric vectors into read-only buffers
// that are safe to share across worker goroutines, and provides sum entry
// points over them.
//
// Forkjoin has been influenced by ideas from Cilk, Threading Building
// Blocks, and Java's java.util.concurrent package. See
// http://supertech.csail.mit.edu/papers/steal.pdf for some theoretical
// background.
package forkjoin
