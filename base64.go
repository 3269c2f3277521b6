package simdparse

// base64URLAlphabet is the URL-safe encode table (RFC 4648 section 5,
// unpadded variant).
const base64URLAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// base64Invalid marks bytes outside the alphabet in the decode table; valid
// 6-bit values never have bit 6 set, so one OR across a group detects it.
const base64Invalid = 64

// One kernel pass turns 32 characters into 24 bytes.
const (
	base64KernelChars = 32
	base64KernelBytes = 24
)

var base64URLDecodeTable = func() (table [256]byte) {
	for i := range table {
		table[i] = base64Invalid
	}
	for i := range len(base64URLAlphabet) {
		table[base64URLAlphabet[i]] = byte(i)
	}
	return table
}()

// Base64URLEncode encodes src with the URL-safe base64 alphabet, omitting
// padding: a spare byte becomes 2 characters, two spare bytes become 3.
// Encoding never fails.
func Base64URLEncode(src []byte) []byte {
	triplets := len(src) / 3
	spare := len(src) % 3
	outLen := 4 * triplets
	if spare > 0 {
		outLen += spare + 1
	}
	dst := make([]byte, 0, outLen)

	i := 0
	for range triplets {
		a, b, c := src[i], src[i+1], src[i+2]
		dst = append(dst,
			base64URLAlphabet[a>>2],
			base64URLAlphabet[(a&0x03)<<4|b>>4],
			base64URLAlphabet[(b&0x0f)<<2|c>>6],
			base64URLAlphabet[c&0x3f],
		)
		i += 3
	}
	switch spare {
	case 1:
		a := src[i]
		dst = append(dst,
			base64URLAlphabet[a>>2],
			base64URLAlphabet[(a&0x03)<<4],
		)
	case 2:
		a, b := src[i], src[i+1]
		dst = append(dst,
			base64URLAlphabet[a>>2],
			base64URLAlphabet[(a&0x03)<<4|b>>4],
			base64URLAlphabet[(b&0x0f)<<2],
		)
	}
	return dst
}

// Base64URLDecode decodes an unpadded URL-safe base64 string. It fails on
// any byte outside the alphabet and on input lengths of 1 modulo 4, and
// returns no output on failure.
func Base64URLDecode(src []byte) ([]byte, bool) {
	quadruplets := len(src) / 4
	var spare int
	switch len(src) % 4 {
	case 1:
		return nil, false
	case 2:
		spare = 1
	case 3:
		spare = 2
	}

	dst := make([]byte, 0, 3*quadruplets+spare)

	i := 0
	if useKernel {
		for len(src)-i >= base64KernelChars {
			var block [base64KernelBytes]byte
			if !decodeBase64Kernel(block[:], src[i:i+base64KernelChars]) {
				return nil, false
			}
			dst = append(dst, block[:]...)
			i += base64KernelChars
		}
	}

	for ; i < 4*quadruplets; i += 4 {
		a := base64URLDecodeTable[src[i]]
		b := base64URLDecodeTable[src[i+1]]
		c := base64URLDecodeTable[src[i+2]]
		d := base64URLDecodeTable[src[i+3]]
		if (a|b|c|d)&base64Invalid != 0 {
			return nil, false
		}
		group := uint32(a)<<18 | uint32(b)<<12 | uint32(c)<<6 | uint32(d)
		dst = append(dst, byte(group>>16), byte(group>>8), byte(group))
	}

	switch spare {
	case 1:
		a := base64URLDecodeTable[src[i]]
		b := base64URLDecodeTable[src[i+1]]
		if (a|b)&base64Invalid != 0 {
			return nil, false
		}
		group := uint32(a)<<6 | uint32(b)
		dst = append(dst, byte(group>>4))
	case 2:
		a := base64URLDecodeTable[src[i]]
		b := base64URLDecodeTable[src[i+1]]
		c := base64URLDecodeTable[src[i+2]]
		if (a|b|c)&base64Invalid != 0 {
			return nil, false
		}
		group := uint32(a)<<12 | uint32(b)<<6 | uint32(c)
		dst = append(dst, byte(group>>10), byte(group>>2))
	}
	return dst, true
}
