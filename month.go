package simdparse

// Perfect-hash constants mapping packed month abbreviations onto a 16-slot
// table: slot = (k * value mod p) & 0x0f.
const (
	monthHashK = 68
	monthHashP = 929
)

// monthOffsets holds the 0-based month ordinal for each hash slot; 15 marks
// an empty slot.
var monthOffsets = [16]uint8{7, 6, 4, 8, 9, 11, 2, 3, 0, 5, 10, 1, 15, 15, 15, 15}

// monthValues holds the packed form of each abbreviation for the
// false-positive check; slots 12-15 never match a letter-only input.
var monthValues = [16]uint16{
	packMonth('J', 'a', 'n'),
	packMonth('F', 'e', 'b'),
	packMonth('M', 'a', 'r'),
	packMonth('A', 'p', 'r'),
	packMonth('M', 'a', 'y'),
	packMonth('J', 'u', 'n'),
	packMonth('J', 'u', 'l'),
	packMonth('A', 'u', 'g'),
	packMonth('S', 'e', 'p'),
	packMonth('O', 'c', 't'),
	packMonth('N', 'o', 'v'),
	packMonth('D', 'e', 'c'),
}

// packMonth compacts the low five bits of each character, which makes the
// packed form case-insensitive for ASCII letters.
func packMonth(c1, c2, c3 byte) uint16 {
	return uint16(c1&0x1f)<<10 | uint16(c2&0x1f)<<5 | uint16(c3&0x1f)
}

// maybeLetter reports whether c lies in the ASCII letter blocks
// (0b010xxxxx or 0b011xxxxx).
func maybeLetter(c byte) bool { return c&0b1100_0000 == 0b0100_0000 }

// MonthToOrdinal converts an abbreviated English month name ("Jan" through
// "Dec", any case) to its ordinal 1-12, or 0 when abbr is not a month name.
func MonthToOrdinal(abbr []byte) int {
	if len(abbr) != 3 {
		return 0
	}
	c1, c2, c3 := abbr[0], abbr[1], abbr[2]
	value := packMonth(c1, c2, c3)
	slot := (monthHashK * uint32(value) % monthHashP) & 0x0f
	offset := monthOffsets[slot]
	if maybeLetter(c1) && maybeLetter(c2) && maybeLetter(c3) && value == monthValues[offset] {
		return int(offset) + 1
	}
	return 0
}
