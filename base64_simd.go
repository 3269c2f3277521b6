//go:build goexperiment.simd && amd64

package simdparse

import "simd/archsimd"

// base64MembershipLUT maps the low nibble of each input byte to a bitmask of
// the high-nibble groups the byte is a member of (bit 0b10000000 >> group).
// '-' sits in group 2, '_' in group 5.
var base64MembershipLUT = [32]int8{
	0b00010101,
	0b00011111, // digits, uppercase and lowercase letters
	0b00011111,
	0b00011111,
	0b00011111,
	0b00011111,
	0b00011111,
	0b00011111,
	0b00011111,
	0b00011111,
	0b00001111, // uppercase and lowercase letters only
	0b00001010,
	0b00001010,
	0b00101010, // '-' in group 2
	0b00001010,
	0b00001110, // '_' in group 5

	0b00010101,
	0b00011111,
	0b00011111,
	0b00011111,
	0b00011111,
	0b00011111,
	0b00011111,
	0b00011111,
	0b00011111,
	0b00011111,
	0b00001111,
	0b00001010,
	0b00001010,
	0b00101010,
	0b00001010,
	0b00001110,
}

// base64GroupBitLUT maps a high-nibble group to its one-hot membership bit;
// groups 8-15 map to all-ones and can never pass the membership test, since
// the byte-indexed lookup zeroed their membership.
var base64GroupBitLUT = [32]int8{
	-128, 64, 32, 16, 8, 4, 2, 1, -1, -1, -1, -1, -1, -1, -1, -1,
	-128, 64, 32, 16, 8, 4, 2, 1, -1, -1, -1, -1, -1, -1, -1, -1,
}

// base64OffsetLUT maps a high-nibble group to the value offset added to the
// character. '_' (0x5f) lands in group 5 with the uppercase offset and needs
// the extra fix below to reach value 63.
var base64OffsetLUT = [32]int8{
	64, 64, 62 - '-', 52 - '0', 0 - 'A', 0 - 'A', 26 - 'a', 26 - 'a', 0, 0, 0, 0, 0, 0, 0, 0,
	64, 64, 62 - '-', 52 - '0', 0 - 'A', 0 - 'A', 26 - 'a', 26 - 'a', 0, 0, 0, 0, 0, 0, 0, 0,
}

const underscoreFix = (63 - '_') - (0 - 'A')

// decodeBase64Kernel turns 32 alphabet characters into 24 bytes, validating
// membership of every lane first. dst must hold 24 bytes.
func decodeBase64Kernel(dst, src []byte) bool {
	chars := archsimd.LoadUint8x32Slice(src).AsInt8x32()

	// high nibble selects the character group
	groups := chars.AsUint32x8().ShiftAllRight(4).AsInt8x32().And(archsimd.BroadcastInt8x32(0x0f))

	// every lane must carry its group's bit in the membership mask; bytes
	// past 0x7f index as zero membership and always fail
	membership := archsimd.LoadInt8x32(&base64MembershipLUT).PermuteOrZeroGrouped(chars)
	oneHot := archsimd.LoadInt8x32(&base64GroupBitLUT).PermuteOrZeroGrouped(groups)
	if maskBits(membership.And(oneHot).Equal(oneHot)) != 0xffffffff {
		return false
	}

	offset := archsimd.LoadInt8x32(&base64OffsetLUT).PermuteOrZeroGrouped(groups)
	fix := chars.Equal(archsimd.BroadcastInt8x32('_')).ToInt8x32().
		And(archsimd.BroadcastInt8x32(underscoreFix))
	values := chars.Add(offset).Add(fix)

	var lanes [32]byte
	values.AsUint8x32().StoreSlice(lanes[:])

	for k := 0; k < 8; k++ {
		group := uint32(lanes[4*k])<<18 | uint32(lanes[4*k+1])<<12 |
			uint32(lanes[4*k+2])<<6 | uint32(lanes[4*k+3])
		dst[3*k] = byte(group >> 16)
		dst[3*k+1] = byte(group >> 8)
		dst[3*k+2] = byte(group)
	}
	return true
}
