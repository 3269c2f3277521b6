package simdparse

import (
	"math"

	"golang.org/x/exp/constraints"
)

// fuseEightDigits folds eight decoded digit values (0-9 each, the leftmost
// digit in the least significant byte) into their positional decimal value
// using two widening multiply-adds, the 64-bit register analogue of the
// packed multiply-add cascade the vector kernels are built around.
func fuseEightDigits(chunk uint64) uint64 {
	const (
		pairMask = 0x000000ff000000ff
		mulHi    = 100 + (1_000_000 << 32)
		mulLo    = 1 + (10_000 << 32)
	)
	// fuse neighboring digits: d0 d1 d2 d3 ... -> d0d1 . d2d3 . ...
	chunk = chunk*10 + chunk>>8
	// fuse digit pairs and quadruplets in one widening step each
	return ((chunk&pairMask)*mulHi + (chunk>>16&pairMask)*mulLo) >> 32
}

// fuseDigits folds decoded digit values into a single integer by positional
// base-N weighting. This is the reference definition the packed combines in
// the vector kernels must agree with.
func fuseDigits[T constraints.Unsigned](digits []byte, base T) T {
	var v T
	for _, d := range digits {
		v = v*base + T(d)
	}
	return v
}

// parseDigits interprets text as an unsigned decimal integer, consuming the
// whole input. It fails on empty input, on any non-digit byte, and on
// uint64 overflow.
func parseDigits(text []byte) (uint64, bool) {
	if len(text) == 0 {
		return 0, false
	}
	var v uint64
	for _, c := range text {
		if c < '0' || c > '9' {
			return 0, false
		}
		d := uint64(c - '0')
		if v > (math.MaxUint64-d)/10 {
			return 0, false
		}
		v = v*10 + d
	}
	return v, true
}

// parseRange parses text[beg:end] as an unsigned decimal field.
func parseRange(text []byte, beg, end int) (uint64, bool) {
	return parseDigits(text[beg:end])
}

// hexDigitValue maps an ASCII byte to its hexadecimal value, or 0xff for
// bytes outside [0-9a-fA-F].
func hexDigitValue(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0xff
}
