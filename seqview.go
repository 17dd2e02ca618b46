// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sain

// seqView provides constant-time, read-only character access over one of
// three backends: a plain byte sequence, a packed encoded sequence with
// special positions, or the recursive integer-name sequence produced by
// the Namer. Reverse reading is a property of the view, not a separate
// code path: every induction routine is direction-agnostic in its use of
// get.
type seqView struct {
	n     int
	sigma int

	plain []byte
	ints  []int

	enc  EncodedSequence
	mode ReadMode
}

func newPlainSeqView(seq []byte) seqView {
	return seqView{n: len(seq), sigma: 256, plain: seq}
}

func newEncodedSeqView(enc EncodedSequence, mode ReadMode, n, sigma int) seqView {
	return seqView{n: n, sigma: sigma, enc: enc, mode: mode}
}

func newIntSeqView(ints []int, sigma int) seqView {
	return seqView{n: len(ints), sigma: sigma, ints: ints}
}

func (v *seqView) length() int       { return v.n }
func (v *seqView) alphabetSize() int { return v.sigma }
func (v *seqView) isEncoded() bool   { return v.enc != nil }

// get returns the symbol read-order position i presents to the sorter. For
// the encoded backend a special position reads as a position-unique
// sentinel strictly greater than any ordinary symbol (§3).
func (v *seqView) get(i int) int {
	switch {
	case v.enc != nil:
		sym, special := v.enc.GetEncodedChar(i, v.mode)
		if special {
			return uniqueSpecial(v.n, i, v.sigma)
		}
		return sym
	case v.ints != nil:
		return v.ints[i]
	default:
		return int(v.plain[i])
	}
}

func (v *seqView) isSpecial(sym int) bool {
	return sym >= v.sigma
}

// specialRanges returns a restartable enumeration of special ranges in the
// requested direction, or nil when the backend carries no specials.
func (v *seqView) specialRanges(mode ReadMode) SpecialRangeIterator {
	if v.enc == nil || !v.enc.HasSpecialRanges() {
		return nil
	}
	return v.enc.SpecialRanges(mode)
}
