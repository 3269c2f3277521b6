//go:build goexperiment.simd && amd64

package simdparse

import "simd/archsimd"

// Per-position byte bounds for YYYY-MM-DD; lanes past the input are
// don't-care.
var (
	dateLowerBound = [16]int8{'0', '0', '0', '0', '-', '0', '0', '-', '0', '0', -128, -128, -128, -128, -128, -128}
	dateUpperBound = [16]int8{'9', '9', '9', '9', '-', '1', '9', '-', '3', '9', 127, 127, 127, 127, 127, 127}
	dateDigitMask  = [16]int8{15, 15, 15, 15, 0, 15, 15, 0, 15, 15, 0, 0, 0, 0, 0, 0}
)

func parseDateKernel(text []byte) (Date, bool) {
	var buf [16]byte
	copy(buf[:], text)
	chars := archsimd.LoadUint8x16Slice(buf[:]).AsInt8x16()

	lower := archsimd.LoadInt8x16(&dateLowerBound)
	upper := archsimd.LoadInt8x16(&dateUpperBound)
	if lower.Greater(chars).Or(chars.Greater(upper)).ToBits() != 0 {
		return Date{}, false
	}

	var lanes [16]byte
	chars.And(archsimd.LoadInt8x16(&dateDigitMask)).AsUint8x16().StoreSlice(lanes[:])

	d := Date{
		Year:  1000*int(lanes[0]) + 100*int(lanes[1]) + 10*int(lanes[2]) + int(lanes[3]),
		Month: 10*lanes[5] + lanes[6],
		Day:   10*lanes[8] + lanes[9],
	}
	if d.Month > 12 || d.Day > 31 {
		return Date{}, false
	}
	return d, true
}
