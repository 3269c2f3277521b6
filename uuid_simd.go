//go:build goexperiment.simd && amd64

package simdparse

import "simd/archsimd"

// parseUUIDKernel validates and decodes 32 contiguous hex digits in one
// 32-lane pass, then packs nibble pairs into 16 bytes.
func parseUUIDKernel(text []byte) (UUID, bool) {
	chars := archsimd.LoadUint8x32Slice(text).AsInt8x32()

	notDigit := archsimd.BroadcastInt8x32('0').Greater(chars).
		Or(chars.Greater(archsimd.BroadcastInt8x32('9')))
	lowered := chars.Or(archsimd.BroadcastInt8x32(0x20))
	notLetter := archsimd.BroadcastInt8x32('a').Greater(lowered).
		Or(lowered.Greater(archsimd.BroadcastInt8x32('f')))
	if maskBits(notDigit.And(notLetter)) != 0 {
		return UUID{}, false
	}

	letterNine := notDigit.ToInt8x32().And(archsimd.BroadcastInt8x32(9))
	vals := chars.And(archsimd.BroadcastInt8x32(0x0f)).Add(letterNine)

	var lanes [32]byte
	vals.AsUint8x32().StoreSlice(lanes[:])

	var u UUID
	for i := range u {
		u[i] = lanes[2*i]<<4 | lanes[2*i+1]
	}
	return u, true
}
