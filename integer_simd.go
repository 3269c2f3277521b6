//go:build goexperiment.simd && amd64

package simdparse

import (
	"encoding/binary"

	"simd/archsimd"
)

// parseDecimalKernel decodes 1..16 decimal digits right-aligned in a
// '0'-padded buffer, so the padding contributes leading zeros.
func parseDecimalKernel(text []byte) (uint64, bool) {
	buf := [16]byte{'0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0'}
	copy(buf[16-len(text):], text)
	chars := archsimd.LoadUint8x16Slice(buf[:]).AsInt8x16()

	zero := archsimd.BroadcastInt8x16('0')
	nine := archsimd.BroadcastInt8x16('9')
	if zero.Greater(chars).Or(chars.Greater(nine)).ToBits() != 0 {
		return 0, false
	}

	var lanes [16]byte
	chars.Sub(zero).AsUint8x16().StoreSlice(lanes[:])

	hi := fuseEightDigits(binary.LittleEndian.Uint64(lanes[0:8]))
	lo := fuseEightDigits(binary.LittleEndian.Uint64(lanes[8:16]))
	return hi*100_000_000 + lo, true
}

// parseHexKernel decodes 1..16 hex digits right-aligned in a '0'-padded
// buffer. A valid non-digit lane must be a letter, so its value is
// (c & 0x0F) + 9 with no case normalization.
func parseHexKernel(text []byte) (uint64, bool) {
	buf := [16]byte{'0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0'}
	copy(buf[16-len(text):], text)
	chars := archsimd.LoadUint8x16Slice(buf[:]).AsInt8x16()

	notDigit := archsimd.BroadcastInt8x16('0').Greater(chars).
		Or(chars.Greater(archsimd.BroadcastInt8x16('9')))
	lowered := chars.Or(archsimd.BroadcastInt8x16(0x20))
	notLetter := archsimd.BroadcastInt8x16('a').Greater(lowered).
		Or(lowered.Greater(archsimd.BroadcastInt8x16('f')))
	if notDigit.And(notLetter).ToBits() != 0 {
		return 0, false
	}

	letterNine := notDigit.ToInt8x16().And(archsimd.BroadcastInt8x16(9))
	vals := chars.And(archsimd.BroadcastInt8x16(0x0f)).Add(letterNine)

	var lanes [16]byte
	vals.AsUint8x16().StoreSlice(lanes[:])
	return fuseDigits(lanes[:], uint64(16)), true
}
