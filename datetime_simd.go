//go:build goexperiment.simd && amd64

package simdparse

import (
	"encoding/binary"

	"simd/archsimd"
)

// Per-position byte bounds for YYYY-MM-DD(T| )hh:mm; seconds stay scalar in
// the 19-byte form. The separator lane only narrows to the [' ', 'T'] range
// here and is pinned to ' ' or 'T' after the compare.
var (
	dateTimeLowerBound = [16]int8{'0', '0', '0', '0', '-', '0', '0', '-', '0', '0', ' ', '0', '0', ':', '0', '0'}
	dateTimeUpperBound = [16]int8{'9', '9', '9', '9', '-', '1', '9', '-', '3', '9', 'T', '2', '9', ':', '5', '9'}
	dateTimeDigitMask  = [16]int8{15, 15, 15, 15, 0, 15, 15, 0, 15, 15, 0, 15, 15, 0, 15, 15}
)

// Bounds for the full 32-lane fractional form, input right-padded with '0';
// lane 19 pins the fraction dot.
var (
	dateTimeFracLowerBound = [32]int8{
		'0', '0', '0', '0', '-', '0', '0', '-', '0', '0', ' ', '0', '0', ':', '0', '0',
		':', '0', '0', '.', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0',
	}
	dateTimeFracUpperBound = [32]int8{
		'9', '9', '9', '9', '-', '1', '9', '-', '3', '9', 'T', '2', '9', ':', '5', '9',
		':', '5', '9', '.', '9', '9', '9', '9', '9', '9', '9', '9', '9', '9', '9', '9',
	}
	dateTimeFracDigitMask = [32]int8{
		15, 15, 15, 15, 0, 15, 15, 0, 15, 15, 0, 15, 15, 0, 15, 15,
		0, 15, 15, 0, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15,
	}
)

// parseDateTimeKernel decodes the exact 19-byte form, the first 16 bytes in
// one vector pass and the seconds field scalar.
func parseDateTimeKernel(text []byte) (DateTime, bool) {
	chars := archsimd.LoadUint8x16Slice(text).AsInt8x16()

	lower := archsimd.LoadInt8x16(&dateTimeLowerBound)
	upper := archsimd.LoadInt8x16(&dateTimeUpperBound)
	if lower.Greater(chars).Or(chars.Greater(upper)).ToBits() != 0 {
		return DateTime{}, false
	}
	if text[10] != ' ' && text[10] != 'T' {
		return DateTime{}, false
	}
	if text[16] != ':' {
		return DateTime{}, false
	}

	var lanes [16]byte
	chars.And(archsimd.LoadInt8x16(&dateTimeDigitMask)).AsUint8x16().StoreSlice(lanes[:])

	dt := DateTime{
		Year:   1000*int(lanes[0]) + 100*int(lanes[1]) + 10*int(lanes[2]) + int(lanes[3]),
		Month:  10*lanes[5] + lanes[6],
		Day:    10*lanes[8] + lanes[9],
		Hour:   10*lanes[11] + lanes[12],
		Minute: 10*lanes[14] + lanes[15],
	}
	if dt.Month > 12 || dt.Day > 31 || dt.Hour > 23 {
		return DateTime{}, false
	}
	second, ok := parseRange(text, 17, 19)
	if !ok || second > 59 {
		return DateTime{}, false
	}
	dt.Second = uint8(second)
	return dt, true
}

// parseDateTimeFracKernel decodes the 21..29-byte fractional form in one
// 32-lane pass over a '0'-padded buffer.
func parseDateTimeFracKernel(text []byte) (DateTime, bool) {
	buf := [32]byte{
		'0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0',
		'0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0',
	}
	copy(buf[:], text)
	chars := archsimd.LoadUint8x32Slice(buf[:]).AsInt8x32()

	lower := archsimd.LoadInt8x32(&dateTimeFracLowerBound)
	upper := archsimd.LoadInt8x32(&dateTimeFracUpperBound)
	if maskBits(lower.Greater(chars).Or(chars.Greater(upper))) != 0 {
		return DateTime{}, false
	}
	if text[10] != ' ' && text[10] != 'T' {
		return DateTime{}, false
	}

	var lanes [32]byte
	chars.And(archsimd.LoadInt8x32(&dateTimeFracDigitMask)).AsUint8x32().StoreSlice(lanes[:])

	dt := DateTime{
		Year:   1000*int(lanes[0]) + 100*int(lanes[1]) + 10*int(lanes[2]) + int(lanes[3]),
		Month:  10*lanes[5] + lanes[6],
		Day:    10*lanes[8] + lanes[9],
		Hour:   10*lanes[11] + lanes[12],
		Minute: 10*lanes[14] + lanes[15],
		Second: 10*lanes[17] + lanes[18],
	}
	if dt.Month > 12 || dt.Day > 31 || dt.Hour > 23 {
		return DateTime{}, false
	}
	// fractional digits 20..28, already right-padded with value-0 lanes
	nano := fuseEightDigits(binary.LittleEndian.Uint64(lanes[20:28]))*10 + uint64(lanes[28])
	dt.Nanosecond = uint32(nano)
	return dt, true
}
