// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package sain constructs suffix arrays in linear time using SA-IS
// (Suffix-Array Induced Sorting). Given a sequence of symbols it produces a
// permutation of suffix start positions listing them in lexicographic
// order, the foundation for full-text indexes, BWT construction and
// longest-common-prefix computation over biological sequences.
package sain

import (
	"fmt"
	"io"
	"os"
)

// ReadMode selects the direction in which a sequence is presented to the
// sorter. Reverse mode is used to answer queries about the reverse
// complement of a DNA strand without materializing a second copy of the
// sequence.
type ReadMode int

const (
	ReadForward ReadMode = iota
	ReadReverse
)

// Timer receives progress notifications before each named phase of the
// sort. A nil Timer is treated as a no-op.
type Timer interface {
	ShowProgress(description string)
}

type noopTimer struct{}

func (noopTimer) ShowProgress(string) {}

// DiagnosticFunc receives a non-fatal diagnostic, such as a workspace
// aliasing fallback. The default DiagnosticFunc discards the message.
type DiagnosticFunc func(err error)

func discardDiagnostic(error) {}

// Options configures a sort. The zero value runs with no checking, no
// verbose output and no timer, matching the teacher's preference for a
// plain, low-ceremony default.
type Options struct {
	intermediateCheck bool
	finalCheck        bool
	verbose           bool
	out               io.Writer
	timer             Timer
	diagnostic        DiagnosticFunc
	orderChecker      OrderChecker
}

// Option mutates an Options value.
type Option func(*Options)

// WithIntermediateCheck runs the order-check routine after every
// recursion level and aborts on violation.
func WithIntermediateCheck() Option {
	return func(o *Options) { o.intermediateCheck = true }
}

// WithFinalCheck runs the external lightweight order check once the
// top-level sort completes. Only meaningful for SortEncoded.
func WithFinalCheck() Option {
	return func(o *Options) { o.finalCheck = true }
}

// WithVerbose emits per-level statistics to w (os.Stdout if w is nil).
func WithVerbose(w io.Writer) Option {
	return func(o *Options) {
		o.verbose = true
		if w != nil {
			o.out = w
		}
	}
}

// WithTimer installs a progress timer.
func WithTimer(t Timer) Option {
	return func(o *Options) {
		if t != nil {
			o.timer = t
		}
	}
}

// WithDiagnostic installs a hook invoked on non-fatal conditions such as
// falling back to an independent bucket allocation when the output array's
// tail cannot host it.
func WithDiagnostic(f DiagnosticFunc) Option {
	return func(o *Options) { o.diagnostic = f }
}

// WithOrderChecker overrides the external order-check oracle consulted by
// WithFinalCheck. The default is DefaultOrderChecker.
func WithOrderChecker(c OrderChecker) Option {
	return func(o *Options) { o.orderChecker = c }
}

func buildOptions(opts []Option) *Options {
	o := &Options{
		out:          os.Stdout,
		timer:        noopTimer{},
		diagnostic:   discardDiagnostic,
		orderChecker: DefaultOrderChecker,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *Options) logf(format string, args ...any) {
	if o.verbose {
		fmt.Fprintf(o.out, format, args...)
	}
}

// SortPlain sorts the suffix array of a byte sequence. The alphabet is
// always the full byte range; there are no special characters. Per the
// source algorithm this is documented to never request the final
// lightweight check: that default is intentionally not overridable here,
// only intermediateCheck is (see DESIGN.md, open question OQ2).
func SortPlain(seq []byte, opts ...Option) []int {
	o := buildOptions(opts)
	n := len(seq)
	if n == 0 {
		return []int{}
	}
	if n == 1 {
		return []int{0}
	}
	view := newPlainSeqView(seq)
	suf := make([]int, n)
	level := sortLevel{opts: o, depth: 0}
	level.run(view, suf, n)
	return suf
}

// SortEncoded sorts the suffix array of a packed, possibly-special-laden
// sequence. Special positions (wildcards, separators) are excluded from
// the induced sort and appended afterward in a fixed order by the
// TailFiller, only when WithFinalCheck is set (matching §4.8: the tail
// fill only runs "when the caller requests verification").
func SortEncoded(encseq EncodedSequence, mode ReadMode, opts ...Option) []int {
	o := buildOptions(opts)
	n := encseq.TotalLength()
	sigma := encseq.AlphabetSize()
	view := newEncodedSeqView(encseq, mode, n, sigma)

	sufLen := n
	if o.finalCheck {
		sufLen = n + 1
	}
	suf := make([]int, sufLen)
	if n == 0 {
		if o.finalCheck {
			suf[0] = 0
		}
		return suf
	}
	if n == 1 {
		nonSpecial := 1
		if encseq.HasSpecialRanges() {
			if _, special := encseq.GetEncodedChar(0, mode); special {
				nonSpecial = 0
			}
		}
		if nonSpecial == 1 {
			suf[0] = 0
		}
		if o.finalCheck {
			fillSpecialTail(encseq, mode, suf, n, nonSpecial)
		}
		return suf
	}

	level := sortLevel{opts: o, depth: 0}
	level.run(view, suf[:n], n)

	if o.finalCheck {
		nonSpecial := n - encseq.SpecialCharacters()
		fillSpecialTail(encseq, mode, suf, n, nonSpecial)
		if err := o.orderChecker(encseq, mode, n, suf); err != nil {
			panic(InvariantError{Msg: "final order check failed", Cause: err})
		}
	}
	return suf
}
