// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sain

import "fmt"

// InvariantError reports a violated algorithm invariant: a corrupted
// suffix array, a final order check that failed, or any other condition
// that leaves the output unsafe to return. The teacher's process simply
// aborts on these; a library has no process to abort, so this module
// panics with a typed value instead, letting an embedding program recover
// and log it if it chooses to.
type InvariantError struct {
	Msg   string
	Cause error
	Depth int
}

func (e InvariantError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("sain: %s at depth %d: %v", e.Msg, e.Depth, e.Cause)
	}
	return fmt.Sprintf("sain: %s at depth %d", e.Msg, e.Depth)
}

func (e InvariantError) Unwrap() error { return e.Cause }

// untagPos strips a possible tagFinal complement, recovering the real
// position a pre-naming or final induction pass may have left tagged.
func untagPos(p int) int {
	if p < 0 {
		return tagFinal(p)
	}
	return p
}

// compareSuffixes orders the full suffixes of v starting at a and b,
// treating the end of the sequence as sorting before every real symbol
// the way DefaultOrderChecker's end-of-sequence position n does.
func compareSuffixes(v *seqView, a, b int) int {
	n := v.length()
	for a != b {
		ca, cb := -1, -1
		if a < n {
			ca = v.get(a)
		}
		if b < n {
			cb = v.get(b)
		}
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
		if a >= n || b >= n {
			return 0
		}
		a++
		b++
	}
	return 0
}

// checkSuffixOrder verifies that the positions listed in suf are
// non-decreasing by full suffix order, the post-induction half of §6's
// intermediate_check ("SUF[0..nonspecial-1]"): by this point every
// listed position has been fully induced, so its complete suffix order
// is decided and comparable.
func checkSuffixOrder(v *seqView, suf []int) error {
	for i := 1; i < len(suf); i++ {
		a, b := untagPos(suf[i-1]), untagPos(suf[i])
		if compareSuffixes(v, a, b) > 0 {
			return fmt.Errorf("suf[%d]=%d sorts after suf[%d]=%d", i-1, a, i, b)
		}
	}
	return nil
}

// compareLMSSubstrings orders the LMS substrings starting at a and b
// (lengths la and lb, from scanLMSLengths) character by character. Two
// substrings of equal length and content compare equal, exactly as
// equalLMS decides equality; when one is a proper prefix of the other the
// full suffixes decide, since that is the order induction gives them.
func compareLMSSubstrings(v *seqView, a, b, la, lb int) int {
	m := la
	if lb < m {
		m = lb
	}
	for k := 0; k < m; k++ {
		ca, cb := v.get(a+k), v.get(b+k)
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
	}
	if la == lb {
		return 0
	}
	return compareSuffixes(v, a, b)
}

// checkLMSSubstringOrder verifies that the positions listed in lmsTail
// are non-decreasing by LMS substring, the pre-naming half of §6's
// intermediate_check ("SUF[0..count_LMS-1]"). Full suffix order is not
// yet decided at this point — two positions with equal LMS substrings
// may still be reordered by the recursive step below — so positions whose
// substrings (as measured by scanLMSLengths) are equal are accepted in
// either order; all other pairs must be in suffix order.
func checkLMSSubstringOrder(v *seqView, lmsTail []int) error {
	lengths := make([]int, v.length()/2+1)
	scanLMSLengths(v, lengths)
	for i := 1; i < len(lmsTail); i++ {
		a, b := untagPos(lmsTail[i-1]), untagPos(lmsTail[i])
		la, lb := lengths[a/2], lengths[b/2]
		if compareLMSSubstrings(v, a, b, la, lb) > 0 {
			return fmt.Errorf("LMS position %d (%d) sorts after LMS position %d (%d)", i-1, a, i, b)
		}
	}
	return nil
}

// OrderChecker validates a completed suffix array against its source
// sequence. It is consulted only when WithFinalCheck is set. This module
// has no host binary to supply an external reference checker, so
// DefaultOrderChecker below does the one thing such a checker always
// must: confirm adjacent suffixes are non-decreasing. A caller embedding
// this package inside a larger tool that already has a faster or more
// thorough lightweight check can substitute it with WithOrderChecker.
type OrderChecker func(encseq EncodedSequence, mode ReadMode, n int, suf []int) error

// DefaultOrderChecker compares each adjacent pair of suffixes
// symbol-by-symbol until one is found to be a prefix of the other or they
// diverge, treating the end-of-sequence marker at position n (appended by
// the TailFiller) as sorting before every real symbol.
func DefaultOrderChecker(encseq EncodedSequence, mode ReadMode, n int, suf []int) error {
	get := func(pos int) int {
		if pos == n {
			return -1
		}
		sym, special := encseq.GetEncodedChar(pos, mode)
		if special {
			return uniqueSpecial(n, pos, encseq.AlphabetSize())
		}
		return sym
	}
	for i := 1; i < len(suf); i++ {
		a, b := suf[i-1], suf[i]
		for {
			ca, cb := get(a), get(b)
			if ca != cb {
				if ca > cb {
					return fmt.Errorf("suf[%d]=%d sorts after suf[%d]=%d", i-1, a, i, b)
				}
				break
			}
			if a == n || b == n {
				break
			}
			a++
			b++
		}
	}
	return nil
}
