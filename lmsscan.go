// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sain

// scanAndSeedLMS makes one reverse pass over v, classifying S/L positions
// on the fly and seeding every LMS position it finds into its symbol's
// bucket via wb. wb's underlying fill pointers must already be in
// end-bucket (tail pointer) state. When trackFirstChar is set, the
// per-symbol count of LMS substrings starting with that symbol is
// returned alongside the total.
//
// No explicit guard is needed to keep special positions out of the seeded
// set: a special position's symbol is, by construction (§3's UNIQUE
// formula), always strictly greater than its successor's, so it can never
// satisfy the S-type comparison and is therefore never classified S-type,
// hence never LMS.
func scanAndSeedLMS(v *seqView, wb *writeBuffer, trackFirstChar bool) (countLMS int, firstCharCount []int) {
	n := v.length()
	if trackFirstChar {
		firstCharCount = make([]int, v.alphabetSize())
	}
	var l, r int
	var isRightS bool
	for i := n - 1; i >= 0; i-- {
		l, r = v.get(i), l
		switch {
		case l < r:
			isRightS = true
		case l > r && isRightS:
			isRightS = false
			pos := i + 1
			countLMS++
			if trackFirstChar {
				firstCharCount[r]++
			}
			wb.push(r, pos)
		}
	}
	return countLMS, firstCharCount
}

// scanLMSLengths makes the same reverse pass without seeding, recording
// the length of each LMS substring at lengths[pos/2] (LMS positions are at
// least 2 apart so these slots never collide).
func scanLMSLengths(v *seqView, lengths []int) {
	n := v.length()
	var l, r int
	var isRightS bool
	prev := n - 1
	for i := n - 1; i >= 0; i-- {
		l, r = v.get(i), l
		switch {
		case l < r:
			isRightS = true
		case l > r && isRightS:
			isRightS = false
			lengths[(i+1)/2] = prev - i
			prev = i
		}
	}
}

// scanLMSPositions makes the same reverse pass and materializes the LMS
// position list, in original (ascending) order, into dst. It is used by
// the Recursor to expand the recursively-sorted name order back to
// original LMS positions (§4.7's expand_order_to_original).
func scanLMSPositions(v *seqView, dst []int) {
	n := v.length()
	var l, r int
	var isRightS bool
	j := len(dst)
	for i := n - 1; i >= 0; i-- {
		l, r = v.get(i), l
		switch {
		case l < r:
			isRightS = true
		case l > r && isRightS:
			isRightS = false
			j--
			dst[j] = i + 1
		}
	}
}
