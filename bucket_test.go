// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUseFastMethod(t *testing.T) {
	assert.False(t, useFastMethod(4, 500), "below threshold N")
	assert.True(t, useFastMethod(4, 2000))
	assert.False(t, useFastMethod(firstTwoBitsClear+1, 2000), "sigma too large")
}

func TestBucketStateStartEndBuckets(t *testing.T) {
	v := newPlainSeqView([]byte("banana"))
	suf := make([]int, len(v.plain))
	bs := newBucketState(suf, len(suf), 256, false, discardDiagnostic)
	bs.computeSize(&v)

	assert.Equal(t, 3, bs.size.data['a'])
	assert.Equal(t, 1, bs.size.data['b'])
	assert.Equal(t, 2, bs.size.data['n'])

	bs.startBuckets()
	assert.Equal(t, bs.size.data['a']+bs.size.data['b'], bs.fill.data['n'])

	bs.endBuckets()
	assert.Equal(t, bs.size.data['a']+bs.size.data['b']+bs.size.data['n'], bs.fill.data['n'])
}

func TestBucketStateFallsBackWhenTailTooSmall(t *testing.T) {
	suf := make([]int, 4)
	var diagCount int
	diag := func(err error) { diagCount++ }
	bs := newBucketState(suf, 4, 256, false, diag)
	require.True(t, bs.size.owned, "size array should fall back to an independent allocation")
	assert.Equal(t, 256, len(bs.size.data))
	assert.Greater(t, diagCount, 0)
}

func TestBucketStateCarvesFromTailWhenRoomPermits(t *testing.T) {
	suf := make([]int, 1000)
	bs := newBucketState(suf, 0, 4, false, discardDiagnostic)
	assert.False(t, bs.size.owned)
	assert.False(t, bs.fill.owned)
}
