// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sain

import (
	"bytes"
	"encoding/binary"
	"math/rand"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seededRand derives a deterministic rand.Rand from a small label, the
// way lpm16_test.go in the pack seeds its fuzz cases: hash the label,
// feed the digest in as the PRNG seed, so a failing case is reproducible
// from its name alone without storing the input.
func seededRand(label string) *rand.Rand {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], xxhash.Sum64String(label))
	seed := int64(binary.LittleEndian.Uint64(buf[:]))
	return rand.New(rand.NewSource(seed))
}

func isPermutation(suf []int, n int) bool {
	if len(suf) != n {
		return false
	}
	seen := make([]bool, n)
	for _, p := range suf {
		if p < 0 || p >= n || seen[p] {
			return false
		}
		seen[p] = true
	}
	return true
}

func isSorted(text []byte, suf []int) bool {
	for i := 1; i < len(suf); i++ {
		if bytes.Compare(text[suf[i-1]:], text[suf[i]:]) > 0 {
			return false
		}
	}
	return true
}

func TestPropertyPermutationAndOrder(t *testing.T) {
	for _, sigma := range []int{2, 4, 26, 256} {
		for _, n := range []int{0, 1, 2, 3, 10, 100, 733} {
			label := "perm-order"
			r := seededRand(label)
			text := make([]byte, n)
			for i := range text {
				text[i] = byte(r.Intn(sigma))
			}
			suf := SortPlain(text)
			require.True(t, isPermutation(suf, n), "sigma=%d n=%d not a permutation", sigma, n)
			require.True(t, isSorted(text, suf), "sigma=%d n=%d not sorted", sigma, n)
		}
	}
}

func TestPropertyIdempotence(t *testing.T) {
	r := seededRand("idempotence")
	text := make([]byte, 500)
	for i := range text {
		text[i] = byte(r.Intn(8))
	}
	first := SortPlain(text)
	second := SortPlain(text)
	assert.Equal(t, first, second)
}

// TestPropertyLMSCountBound checks §3's "at most N/2" bound indirectly:
// scanAndSeedLMS must never report more LMS positions than half the
// input length.
func TestPropertyLMSCountBound(t *testing.T) {
	r := seededRand("lms-bound")
	for trial := 0; trial < 50; trial++ {
		n := 1 + r.Intn(300)
		text := make([]byte, n)
		for i := range text {
			text[i] = byte(r.Intn(5))
		}
		view := newPlainSeqView(text)
		bs := newBucketState(make([]int, n), n, 256, false, discardDiagnostic)
		bs.computeSize(&view)
		bs.endBuckets()
		suf := make([]int, n)
		wb := newWriteBuffer(256, suf, bs.fill.data)
		count, _ := scanAndSeedLMS(&view, wb, false)
		require.LessOrEqual(t, count, n/2)
	}
}

func TestPropertyRoundTableEquivalence(t *testing.T) {
	r := seededRand("round-table")
	text := make([]byte, 2000)
	for i := range text {
		text[i] = byte(r.Intn(4))
	}
	fast := useFastMethod(256, len(text))
	require.True(t, fast, "expected the fast threshold to trigger for this fixture")
	assert.Equal(t, SortPlain(text), naiveSA(text))
}
