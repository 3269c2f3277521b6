package simdparse

import "cmp"

// integerKernelWidth is the number of digit lanes one integer kernel pass
// covers.
const integerKernelWidth = 16

// pow10Sixteen scales a scalar-parsed prefix past the 16-digit kernel
// suffix; the multiply wraps modulo 2^64 for oversized values.
const pow10Sixteen = 10_000_000_000_000_000

// DecimalInteger is an unsigned 64-bit value decoded from plain decimal
// digits: no sign, no radix prefix, no separators.
type DecimalInteger struct {
	Value uint64
}

// ParseDecimalInteger decodes a decimal digit string of any length. Inputs
// longer than 16 digits split into a scalar prefix and a kernel-width
// suffix; the positional combine wraps for values beyond 64 bits, but the
// prefix itself must fit.
func ParseDecimalInteger(text []byte) (DecimalInteger, bool) {
	var d DecimalInteger
	ok := d.parse(text)
	return d, ok
}

func (d *DecimalInteger) displayName() string { return "decimal integer" }

func (d *DecimalInteger) parse(text []byte) bool {
	if len(text) == 0 {
		return false
	}
	if len(text) > integerKernelWidth {
		split := len(text) - integerKernelWidth
		prefix, ok := parseDigits(text[:split])
		if !ok {
			return false
		}
		suffix, ok := parseDecimalChunk(text[split:])
		if !ok {
			return false
		}
		d.Value = prefix*pow10Sixteen + suffix
		return true
	}
	v, ok := parseDecimalChunk(text)
	if !ok {
		return false
	}
	d.Value = v
	return true
}

// parseDecimalChunk decodes 1..16 decimal digits.
func parseDecimalChunk(text []byte) (uint64, bool) {
	if useKernel {
		return parseDecimalKernel(text)
	}
	return parseDigits(text)
}

func (d DecimalInteger) Compare(op DecimalInteger) int { return cmp.Compare(d.Value, op.Value) }

// HexadecimalInteger is an unsigned 64-bit value decoded from hexadecimal
// digits with an optional 0x or 0X prefix.
type HexadecimalInteger struct {
	Value uint64
}

// ParseHexadecimalInteger decodes 1 to 16 case-insensitive hex digits,
// optionally prefixed with 0x or 0X. More than 16 digits fails.
func ParseHexadecimalInteger(text []byte) (HexadecimalInteger, bool) {
	var h HexadecimalInteger
	ok := h.parse(text)
	return h, ok
}

func (h *HexadecimalInteger) displayName() string { return "hexadecimal integer" }

func (h *HexadecimalInteger) parse(text []byte) bool {
	if len(text) > 2 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X') {
		text = text[2:]
	}
	if len(text) == 0 || len(text) > integerKernelWidth {
		return false
	}
	v, ok := parseHexChunk(text)
	if !ok {
		return false
	}
	h.Value = v
	return true
}

func parseHexChunk(text []byte) (uint64, bool) {
	if useKernel {
		return parseHexKernel(text)
	}
	return parseHexGeneric(text)
}

// parseHexGeneric is the scalar reference for the hex kernel.
func parseHexGeneric(text []byte) (uint64, bool) {
	var vals [integerKernelWidth]byte
	for i, c := range text {
		d := hexDigitValue(c)
		if d == 0xff {
			return 0, false
		}
		vals[i] = d
	}
	return fuseDigits(vals[:len(text)], uint64(16)), true
}

func (h HexadecimalInteger) Compare(op HexadecimalInteger) int { return cmp.Compare(h.Value, op.Value) }
