// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sain

// fillSpecialTail appends the special (unsortable) positions of encseq
// after the induced order of the nonSpecial real positions, followed by
// the end-of-sequence marker at suf[n]. Special positions are never
// compared against each other or against real suffixes; they are simply
// listed in text order, which is what every caller of a final, fully
// materialized suffix array over an encoded sequence expects to find past
// the real suffixes (§4.8).
func fillSpecialTail(encseq EncodedSequence, mode ReadMode, suf []int, n, nonSpecial int) {
	idx := nonSpecial
	if encseq.HasSpecialRanges() {
		it := encseq.SpecialRanges(ReadForward)
		for {
			r, ok := it.Next()
			if !ok {
				break
			}
			for p := r.Start; p < r.End; p++ {
				suf[idx] = p
				idx++
			}
		}
	}
	suf[n] = n
}
