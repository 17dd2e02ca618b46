// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sain

import (
	"math"

	"github.com/pkg/errors"
)

// firstTwoBitsClear is the largest value representable with the top two
// bits of a machine int clear, used by the fast-method predicate (§4.2).
const firstTwoBitsClear = math.MaxInt / 4

// fastMethodThreshold below which the round-table variant is not worth
// its bookkeeping, per §4.2's "N > 1024" clause.
const fastMethodThreshold = 1024

// useFastMethod implements the fast-method predicate of §4.2.
func useFastMethod(sigma, n int) bool {
	return sigma < firstTwoBitsClear && n > fastMethodThreshold
}

// bucketArray is a slice of sigma (or 2*sigma, for the round table) words
// that is either an independent allocation or an alias into the tail of
// SUF. owned records which, purely for documentation: Go's garbage
// collector reclaims both cases identically, there is no explicit free.
type bucketArray struct {
	data  []int
	owned bool
}

// bucketState tracks per-symbol occurrence counts and head/tail fill
// pointers, with an optional round table for the fast induction variant.
// Per §4.2 its three arrays are, in preference order, aliased onto the
// unused tail of SUF when there's room, and allocated independently
// otherwise.
type bucketState struct {
	sigma    int
	size     bucketArray
	fill     bucketArray
	round    bucketArray
	hasRound bool
}

// newBucketState carves size/fill/(optional round) out of the unused tail
// of suf, i.e. suf[firstUsable:], falling back to an independent
// allocation (and a diagnostic) for any array that does not fit.
func newBucketState(suf []int, firstUsable, sigma int, wantRound bool, diag DiagnosticFunc) *bucketState {
	bs := &bucketState{sigma: sigma, hasRound: wantRound}
	cursor := len(suf)

	alloc := func(words int, name string) bucketArray {
		if words == 0 {
			return bucketArray{data: nil, owned: true}
		}
		if cursor-words >= firstUsable {
			cursor -= words
			region := suf[cursor : cursor+words]
			clear(region)
			return bucketArray{data: region, owned: false}
		}
		diag(errors.Errorf("sain: %s array (%d words) does not fit the output array's unused tail (firstUsable=%d, cursor=%d); falling back to an independent allocation", name, words, firstUsable, cursor))
		return bucketArray{data: make([]int, words), owned: true}
	}

	bs.size = alloc(sigma, "size")
	bs.fill = alloc(sigma, "fill")
	roundWords := 0
	if wantRound {
		roundWords = 2 * sigma
	}
	bs.round = alloc(roundWords, "round table")
	return bs
}

// computeSize tallies per-symbol occurrence counts over v. For the encoded
// backend this defers to the external collaborator's own CharCount rather
// than rescanning N positions.
func (bs *bucketState) computeSize(v *seqView) {
	clear(bs.size.data)
	if v.enc != nil {
		for c := 0; c < bs.sigma; c++ {
			bs.size.data[c] = v.enc.CharCount(c)
		}
		return
	}
	for i := 0; i < v.n; i++ {
		bs.size.data[v.get(i)]++
	}
}

// startBuckets resets fill to head pointers: fill[c] = sum of size[d] for
// d < c.
func (bs *bucketState) startBuckets() {
	offset := 0
	for c := 0; c < bs.sigma; c++ {
		bs.fill.data[c] = offset
		offset += bs.size.data[c]
	}
}

// endBuckets resets fill to one-past-tail pointers: fill[c] = sum of
// size[d] for d <= c. Callers decrement before writing.
func (bs *bucketState) endBuckets() {
	offset := 0
	for c := 0; c < bs.sigma; c++ {
		offset += bs.size.data[c]
		bs.fill.data[c] = offset
	}
}

func (bs *bucketState) roundKey(c int, leftLessThanC bool) int {
	k := c << 1
	if leftLessThanC {
		k |= 1
	}
	return k
}
