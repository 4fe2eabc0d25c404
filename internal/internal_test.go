package internal_test

import (
	"errors"
	"fmt"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parallelkit/forkjoin"
	"github.com/parallelkit/forkjoin/internal"
)

func TestCheckReduceArgs(t *testing.T) {
	require.NoError(t, internal.CheckReduceArgs(0, 1))
	require.NoError(t, internal.CheckReduceArgs(10, 3))
	require.ErrorIs(t, internal.CheckReduceArgs(-1, 1), forkjoin.ErrInvalidArgument)
	require.ErrorIs(t, internal.CheckReduceArgs(10, 0), forkjoin.ErrInvalidArgument)
	require.ErrorIs(t, internal.CheckReduceArgs(10, -5), forkjoin.ErrInvalidArgument)
}

func TestDefaultGrain(t *testing.T) {
	assert.Equal(t, 1, internal.DefaultGrain(0))
	assert.Equal(t, 1, internal.DefaultGrain(-1))
	for _, n := range []int{1, 2, 100, 1 << 20} {
		grain := internal.DefaultGrain(n)
		require.Greater(t, grain, 0, "n %d", n)
		// The grain must be large enough that at most 2*GOMAXPROCS
		// leaves cover the range.
		require.GreaterOrEqual(t, grain*2*runtime.GOMAXPROCS(0), n, "n %d", n)
	}
}

func TestWrapPanicNil(t *testing.T) {
	require.Nil(t, internal.WrapPanic(nil))
}

func TestWrapPanicString(t *testing.T) {
	p := internal.WrapPanic("kaboom")
	s, ok := p.(string)
	require.True(t, ok)
	assert.Contains(t, s, "kaboom")
	assert.Contains(t, s, "rethrown at")
}

func TestWrapPanicError(t *testing.T) {
	p := internal.WrapPanic(errors.New("bad fold"))
	err, ok := p.(error)
	require.True(t, ok)
	assert.Contains(t, err.Error(), "bad fold")
}

func TestWrapPanicRuntimeError(t *testing.T) {
	var p any
	func() {
		defer func() {
			p = internal.WrapPanic(recover())
		}()
		var x []int
		_ = x[1]
	}()
	err, ok := p.(error)
	require.True(t, ok)
	_, isRuntime := err.(runtime.Error)
	assert.True(t, isRuntime)
	assert.Contains(t, fmt.Sprintf("%v", err), "index out of range")
}
