// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sain

// SpecialRange is a maximal half-open interval [Start, End) of positions
// whose symbols are special (unsortable) characters.
type SpecialRange struct {
	Start, End int
}

// SpecialRangeIterator yields special ranges in one direction, restartable
// via Reset so a single iterator can be reused across recursion levels.
type SpecialRangeIterator interface {
	Next() (SpecialRange, bool)
	Reset()
}

// EncodedSequence is the packed alphabet-encoded sequence abstraction
// consumed by SortEncoded. It is an external collaborator: this module
// only reads through it, it never constructs one.
type EncodedSequence interface {
	TotalLength() int
	AlphabetSize() int
	CharCount(symbol int) int
	// GetEncodedChar returns the symbol at pos read in mode, and whether
	// that symbol is special. pos is a read-order position; in ReadReverse
	// mode GetEncodedChar maps it to the forward position n-1-pos before
	// lookup.
	GetEncodedChar(pos int, mode ReadMode) (symbol int, special bool)
	HasSpecialRanges() bool
	SpecialCharacters() int
	SpecialRanges(mode ReadMode) SpecialRangeIterator
}

// rangeReverse maps a [start,end) range expressed in forward coordinates
// of an n-long sequence to its reverse-coordinate equivalent.
func rangeReverse(n int, r SpecialRange) SpecialRange {
	return SpecialRange{Start: n - r.End, End: n - r.Start}
}

// uniqueSpecial returns the sentinel value a special position at read-order
// position pos presents to the sorter: strictly greater than any of the
// sigma ordinary symbols, and distinct for every position so two specials
// never compare equal (§3).
func uniqueSpecial(n, pos, sigma int) int {
	return n - pos + sigma
}
