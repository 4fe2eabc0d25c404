package forkjoin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parallelkit/forkjoin"
)

func TestRangeLen(t *testing.T) {
	assert.Equal(t, 0, forkjoin.Range{Begin: 3, End: 3}.Len())
	assert.Equal(t, 7, forkjoin.Range{Begin: 3, End: 10}.Len())
}

func TestRangeSplit(t *testing.T) {
	for _, r := range []forkjoin.Range{
		{Begin: 0, End: 2},
		{Begin: 0, End: 9},
		{Begin: 5, End: 16},
	} {
		left, right := r.Split()
		require.Equal(t, r.Begin, left.Begin)
		require.Equal(t, left.End, right.Begin)
		require.Equal(t, r.End, right.End)
		// Splitting a range of two or more indices strictly shrinks
		// both halves, which is what makes the reduction terminate.
		assert.Greater(t, left.Len(), 0)
		assert.Greater(t, right.Len(), 0)
		assert.Less(t, left.Len(), r.Len())
		assert.Less(t, right.Len(), r.Len())
	}
}
