// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEncodedSeq struct {
	symbols []int
	special []bool
	sigma   int
}

func (f *fakeEncodedSeq) TotalLength() int { return len(f.symbols) }
func (f *fakeEncodedSeq) AlphabetSize() int { return f.sigma }
func (f *fakeEncodedSeq) CharCount(symbol int) int {
	n := 0
	for i, s := range f.symbols {
		if !f.special[i] && s == symbol {
			n++
		}
	}
	return n
}
func (f *fakeEncodedSeq) GetEncodedChar(pos int, mode ReadMode) (int, bool) {
	i := pos
	if mode == ReadReverse {
		i = len(f.symbols) - 1 - pos
	}
	return f.symbols[i], f.special[i]
}
func (f *fakeEncodedSeq) HasSpecialRanges() bool {
	for _, s := range f.special {
		if s {
			return true
		}
	}
	return false
}
func (f *fakeEncodedSeq) SpecialCharacters() int {
	n := 0
	for _, s := range f.special {
		if s {
			n++
		}
	}
	return n
}
func (f *fakeEncodedSeq) SpecialRanges(mode ReadMode) SpecialRangeIterator {
	var ranges []SpecialRange
	n := len(f.symbols)
	i := 0
	for i < n {
		idx := i
		if mode == ReadReverse {
			idx = n - 1 - i
		}
		if f.special[idx] {
			start := i
			for i < n {
				idx = i
				if mode == ReadReverse {
					idx = n - 1 - i
				}
				if !f.special[idx] {
					break
				}
				i++
			}
			ranges = append(ranges, SpecialRange{Start: start, End: i})
			continue
		}
		i++
	}
	return &sliceRangeIter{ranges: ranges}
}

type sliceRangeIter struct {
	ranges []SpecialRange
	pos    int
}

func (it *sliceRangeIter) Next() (SpecialRange, bool) {
	if it.pos >= len(it.ranges) {
		return SpecialRange{}, false
	}
	r := it.ranges[it.pos]
	it.pos++
	return r, true
}
func (it *sliceRangeIter) Reset() { it.pos = 0 }

func TestSeqViewPlain(t *testing.T) {
	v := newPlainSeqView([]byte("abc"))
	assert.Equal(t, 3, v.length())
	assert.Equal(t, 256, v.alphabetSize())
	assert.Equal(t, int('a'), v.get(0))
	assert.False(t, v.isSpecial(v.get(0)))
}

func TestSeqViewInt(t *testing.T) {
	v := newIntSeqView([]int{2, 1, 3}, 4)
	assert.Equal(t, 3, v.length())
	assert.Equal(t, 1, v.get(1))
}

func TestSeqViewEncodedSpecial(t *testing.T) {
	enc := &fakeEncodedSeq{
		symbols: []int{0, 1, 0, 0},
		special: []bool{false, false, true, false},
		sigma:   2,
	}
	v := newEncodedSeqView(enc, ReadForward, 4, 2)
	require.True(t, v.isEncoded())
	assert.False(t, v.isSpecial(v.get(0)))
	sp := v.get(2)
	assert.True(t, v.isSpecial(sp))
	assert.Equal(t, uniqueSpecial(4, 2, 2), sp)
}

func TestUniqueSpecialDecreasesWithPosition(t *testing.T) {
	n, sigma := 10, 4
	a := uniqueSpecial(n, 3, sigma)
	b := uniqueSpecial(n, 4, sigma)
	assert.Greater(t, a, b)
	assert.GreaterOrEqual(t, a, sigma)
}

func TestRangeReverse(t *testing.T) {
	r := SpecialRange{Start: 2, End: 5}
	assert.Equal(t, SpecialRange{Start: 5, End: 8}, rangeReverse(10, r))
}
