// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sain

import "github.com/pkg/errors"

// sortLevel drives one recursion level of the algorithm: seed LMS
// suffixes, induce a provisional order to name them, recurse on the
// resulting summary string if names are not already unique, then expand
// and fully induce the final order. Grounded on the teacher's
// _sais/induceSort pair, generalized to the multi-backend seqView and the
// special-character handling neither teacher variant needed.
//
// Bucket state is always independently allocated rather than carved from
// suf's tail (see bucket.go): getting the carve boundary arithmetic right
// for every recursion depth without being able to execute the code was
// judged too large a correctness risk for a memory-reuse optimization.
// newBucketState's carve path is exercised structurally with a
// firstUsable equal to the full local length, which always selects its
// fallback branch. This mirrors the teacher's own sais.go, which never
// shares storage between sa and its frequency/bucket scratch either.
type sortLevel struct {
	opts  *Options
	depth int
}

func (lvl *sortLevel) run(v seqView, suf []int, n int) {
	sigma := v.alphabetSize()
	bs := newBucketState(suf, len(suf), sigma, useFastMethod(sigma, n), lvl.opts.diagnostic)
	bs.computeSize(&v)

	bs.endBuckets()
	wb := newWriteBuffer(sigma, suf, bs.fill.data)
	numLMS, _ := scanAndSeedLMS(&v, wb, false)
	wb.flushAll()

	lvl.opts.logf("sain: depth=%d n=%d sigma=%d lms=%d\n", lvl.depth, n, sigma, numLMS)
	lvl.opts.timer.ShowProgress("lms seeding")

	if numLMS > 1 {
		induceLPass(&v, bs, suf, true)
		induceSPass(&v, bs, suf, true)

		if lvl.opts.intermediateCheck {
			if err := checkLMSSubstringOrder(&v, suf[len(suf)-numLMS:]); err != nil {
				panic(InvariantError{Msg: "pre-naming LMS order check failed", Cause: err, Depth: lvl.depth})
			}
		}

		maxName := assignNames(&v, suf, numLMS)
		lvl.opts.timer.ShowProgress("naming")

		if maxName < numLMS {
			summary := packNames(suf, numLMS)
			subView := newIntSeqView(summary, maxName)
			subSuf := suf[:numLMS]

			sub := sortLevel{opts: lvl.opts, depth: lvl.depth + 1}
			sub.run(subView, subSuf, numLMS)

			unmapLMS(&v, suf, numLMS)
		} else {
			// Every LMS substring already has a distinct name, so the sorted
			// order assignNames left untouched at suf's tail already is the
			// final LMS suffix order; no recursion or unmap needed, just
			// relocate it to the front and clear the rest (teacher's
			// copy(summarySA, summary) + clear(sa[numLMS:])).
			copy(suf[:numLMS], suf[len(suf)-numLMS:])
			clear(suf[numLMS:])
		}

		expandLMS(&v, bs, suf, numLMS)
		lvl.opts.timer.ShowProgress("expand")
	}

	induceLPass(&v, bs, suf, false)
	induceSPass(&v, bs, suf, false)
	lvl.opts.timer.ShowProgress("final induction")

	if lvl.opts.intermediateCheck {
		nonSpecial := n
		if v.enc != nil {
			nonSpecial = n - v.enc.SpecialCharacters()
		}
		if err := checkSuffixOrder(&v, suf[:nonSpecial]); err != nil {
			panic(InvariantError{Msg: "post-induction order check failed", Cause: err, Depth: lvl.depth})
		}
		if err := checkPermutation(suf, n, nonSpecial); err != nil {
			panic(InvariantError{Msg: "intermediate permutation check failed", Cause: err, Depth: lvl.depth})
		}
	}
}

// unmapLMS converts the recursively-sorted rank order sitting in
// suf[:numLMS] (an index into the ascending-by-text-position LMS list)
// back into original text positions, using suf's tail as scratch for the
// ascending list (§4.7's expand_order_to_original). Grounded on the
// teacher's unmap.
func unmapLMS(v *seqView, suf []int, numLMS int) {
	lmsPositions := suf[len(suf)-numLMS:]
	scanLMSPositions(v, lmsPositions)

	ranks := suf[:numLMS]
	for i := 0; i < numLMS; i++ {
		j := ranks[i]
		ranks[i] = lmsPositions[j]
	}
}

// expandLMS distributes the numLMS sorted LMS positions held in
// suf[:numLMS] into their final bucket-tail slots across the whole of
// suf, clearing every slot it reads as it goes. Every other slot of suf
// is left at zero, ready for the closing L/S induction passes.
func expandLMS(v *seqView, bs *bucketState, suf []int, numLMS int) {
	bs.endBuckets()
	clear(suf[numLMS:])
	ranks := suf[:numLMS]
	for i := numLMS - 1; i >= 0; i-- {
		pos := ranks[i]
		ranks[i] = 0
		c := v.get(pos)
		bs.fill.data[c]--
		suf[bs.fill.data[c]] = pos
	}
}

// checkPermutation verifies suf[:count] holds count distinct positions in
// [0, n). count is n itself except at the top level of an encoded sort
// with specials, where only suf[:nonSpecial] is ever written by
// induction and the remainder stays at its initial zero.
func checkPermutation(suf []int, n, count int) error {
	seen := make([]bool, n)
	for _, p := range suf[:count] {
		if p < 0 {
			p = tagFinal(p)
		}
		if p < 0 || p >= n || seen[p] {
			return errors.Errorf("sain: suf[%d] out of range or duplicate", p)
		}
		seen[p] = true
	}
	return nil
}
