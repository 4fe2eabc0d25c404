// Package pool provides the bounded worker pool that package parallel uses
// to schedule sub-reductions on separate goroutines.
package pool

import (
	"runtime"
	"sync"
)

// A Pool bounds the number of goroutines that may run reduction tasks at the
// same time. The zero value is not usable; construct pools with New.
type Pool struct {
	slots chan struct{}
}

// New returns a pool that runs at most threads tasks concurrently. If
// threads is zero or negative, the pool is sized to runtime.GOMAXPROCS(0).
func New(threads int) *Pool {
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}
	return &Pool{slots: make(chan struct{}, threads)}
}

// Workers returns the maximum number of tasks the pool runs concurrently.
func (p *Pool) Workers() int {
	return cap(p.slots)
}

// TrySpawn runs task on its own goroutine and returns true if a worker slot
// is available. It returns false without running task when the pool is
// saturated; callers are expected to then run the task on their own
// goroutine, so saturation costs parallelism, not correctness. The worker
// slot is released when task returns.
func (p *Pool) TrySpawn(task func()) bool {
	select {
	case p.slots <- struct{}{}:
	default:
		return false
	}
	go func() {
		defer func() { <-p.slots }()
		task()
	}()
	return true
}

var (
	defaultOnce sync.Once
	defaultPool *Pool
)

// Default returns the shared pool, sized to the available hardware
// concurrency. The same pool is returned on every call.
func Default() *Pool {
	defaultOnce.Do(func() { defaultPool = New(0) })
	return defaultPool
}
