package simdparse

import "bytes"

// UUID is a 128-bit identifier; equality and ordering are byte-wise
// lexicographic.
type UUID [16]byte

const (
	uuidCompactLength = 32
	uuidDashedLength  = 36
	uuidBracedLength  = 38
)

// ParseUUID decodes a UUID from one of three shapes: 32 contiguous hex
// digits, the dashed 8-4-4-4-12 form, or the dashed form wrapped in one
// pair of braces. Hex digits are case-insensitive.
func ParseUUID(text []byte) (UUID, bool) {
	var u UUID
	ok := u.parse(text)
	return u, ok
}

func (u *UUID) displayName() string { return "UUID" }

func (u *UUID) parse(text []byte) bool {
	switch len(text) {
	case uuidCompactLength:
		return u.parseCompact(text)
	case uuidDashedLength:
		return u.parseDashed(text)
	case uuidBracedLength:
		if text[0] != '{' || text[uuidBracedLength-1] != '}' {
			return false
		}
		return u.parseDashed(text[1 : uuidBracedLength-1])
	}
	return false
}

func (u *UUID) parseDashed(text []byte) bool {
	if text[8] != '-' || text[13] != '-' || text[18] != '-' || text[23] != '-' {
		return false
	}
	var compact [uuidCompactLength]byte
	copy(compact[0:8], text[0:8])
	copy(compact[8:12], text[9:13])
	copy(compact[12:16], text[14:18])
	copy(compact[16:20], text[19:23])
	copy(compact[20:32], text[24:36])
	return u.parseCompact(compact[:])
}

func (u *UUID) parseCompact(text []byte) bool {
	var v UUID
	var ok bool
	if useKernel {
		v, ok = parseUUIDKernel(text)
	} else {
		v, ok = parseUUIDGeneric(text)
	}
	if !ok {
		return false
	}
	*u = v
	return true
}

// parseUUIDGeneric is the scalar reference for the UUID kernel: 32 hex
// digits into 16 bytes.
func parseUUIDGeneric(text []byte) (UUID, bool) {
	var u UUID
	for i := range u {
		hi := hexDigitValue(text[2*i])
		lo := hexDigitValue(text[2*i+1])
		if hi == 0xff || lo == 0xff {
			return UUID{}, false
		}
		u[i] = hi<<4 | lo
	}
	return u, true
}

// Compare orders UUIDs byte-wise.
func (u UUID) Compare(op UUID) int { return bytes.Compare(u[:], op[:]) }
