package simdparse

import (
	"bytes"
	"cmp"
)

// TZOffset is a time zone offset in minutes east of UTC.
type TZOffset struct {
	minutes int
}

// TZOffsetEast returns an offset of hour:minute ahead of UTC.
func TZOffsetEast(hour, minute int) TZOffset { return TZOffset{minutes: 60*hour + minute} }

// TZOffsetWest returns an offset of hour:minute behind UTC.
func TZOffsetWest(hour, minute int) TZOffset { return TZOffset{minutes: -(60*hour + minute)} }

// Minutes returns the offset in minutes east of UTC.
func (o TZOffset) Minutes() int { return o.minutes }

func (o TZOffset) Compare(op TZOffset) int { return cmp.Compare(o.minutes, op.minutes) }

const tzOffsetLength = 6

// ParseTZOffset decodes a (+|-)hh:mm offset designator. The minute field is
// capped below 60; the hour field is digit-bounded only.
func ParseTZOffset(text []byte) (TZOffset, bool) {
	var o TZOffset
	ok := o.parse(text)
	return o, ok
}

func (o *TZOffset) displayName() string { return "time zone offset" }

func (o *TZOffset) parse(text []byte) bool {
	if len(text) != tzOffsetLength {
		return false
	}
	hour, ok := parseRange(text, 1, 3)
	if !ok || text[3] != ':' {
		return false
	}
	minute, ok := parseRange(text, 4, 6)
	if !ok || minute > 59 {
		return false
	}
	switch text[0] {
	case '+':
		o.minutes = int(60*hour + minute)
	case '-':
		o.minutes = -int(60*hour + minute)
	default:
		return false
	}
	return true
}

// DateTime is a Gregorian calendar date and wall-clock time in the time
// zone given by Offset. Equality and ordering compare the stored fields
// lexicographically with the offset as the final tiebreaker: two values
// naming the same instant through different offsets are not equal.
// MicroTime is the offset-normalizing counterpart.
//
// Like Date, month and day are capped but not validated against the
// calendar.
type DateTime struct {
	Year       int
	Month      uint8
	Day        uint8
	Hour       uint8
	Minute     uint8
	Second     uint8
	Nanosecond uint32
	Offset     TZOffset
}

const (
	dateTimeMinLength   = 19
	dateTimeNaiveMax    = 29
	dateTimeMaxLength   = 35
	fractionalDotOffset = 19
)

var utcSuffix = []byte(" UTC")

// MaxDateTime returns the greatest representable date-time.
func MaxDateTime() DateTime {
	return DateTime{Year: 9999, Month: 12, Day: 31, Hour: 23, Minute: 59, Second: 59, Nanosecond: 999999999}
}

// ParseDateTime decodes a date-time string: YYYY-MM-DD(T| )hh:mm:ss with an
// optional fraction of 1 to 9 digits and an optional trailing time zone
// designator, one of `Z`, `(+|-)hh:mm` or the literal ` UTC`.
func ParseDateTime(text []byte) (DateTime, bool) {
	var dt DateTime
	ok := dt.parse(text)
	return dt, ok
}

func (dt *DateTime) displayName() string { return "date-time" }

func (dt *DateTime) parse(text []byte) bool {
	n := len(text)
	if n < dateTimeMinLength || n > dateTimeMaxLength {
		return false
	}

	if text[n-1] == 'Z' {
		// 1984-10-24 23:59:59.123456789Z
		v, ok := parseNaiveDateTime(text[:n-1])
		if !ok {
			return false
		}
		*dt = v
		return true
	}

	if sign := text[n-tzOffsetLength]; sign == '+' || sign == '-' {
		// 1984-10-24 23:59:59.123456789+01:30
		v, ok := parseNaiveDateTime(text[:n-tzOffsetLength])
		if !ok || !v.Offset.parse(text[n-tzOffsetLength:]) {
			return false
		}
		*dt = v
		return true
	}

	if bytes.Equal(text[n-len(utcSuffix):], utcSuffix) {
		// 1984-10-24 23:59:59 UTC
		v, ok := parseNaiveDateTime(text[:n-len(utcSuffix)])
		if !ok {
			return false
		}
		*dt = v
		return true
	}

	// 1984-10-24 23:59:59.123456789
	v, ok := parseNaiveDateTime(text)
	if !ok {
		return false
	}
	*dt = v
	return true
}

// parseNaiveDateTime decodes a date-time with no time zone designator:
// either the exact 19-byte form or 21 to 29 bytes with a dot at 19 and 1-9
// fractional digits.
func parseNaiveDateTime(text []byte) (DateTime, bool) {
	switch n := len(text); {
	case n < dateTimeMinLength || n > dateTimeNaiveMax:
		return DateTime{}, false
	case n == dateTimeMinLength:
		if useKernel {
			return parseDateTimeKernel(text)
		}
		return parseDateTimeGeneric(text)
	case n == dateTimeMinLength+1:
		// a bare trailing dot carries no fractional digits
		return DateTime{}, false
	default:
		if useKernel {
			return parseDateTimeFracKernel(text)
		}
		return parseDateTimeFracGeneric(text)
	}
}

// parseDateTimeGeneric is the scalar reference for the 19-byte kernel.
func parseDateTimeGeneric(text []byte) (DateTime, bool) {
	if text[4] != '-' || text[7] != '-' || (text[10] != 'T' && text[10] != ' ') ||
		text[13] != ':' || text[16] != ':' {
		return DateTime{}, false
	}
	year, ok := parseRange(text, 0, 4)
	if !ok {
		return DateTime{}, false
	}
	month, ok := parseRange(text, 5, 7)
	if !ok || month > 12 {
		return DateTime{}, false
	}
	day, ok := parseRange(text, 8, 10)
	if !ok || day > 31 {
		return DateTime{}, false
	}
	hour, ok := parseRange(text, 11, 13)
	if !ok || hour > 23 {
		return DateTime{}, false
	}
	minute, ok := parseRange(text, 14, 16)
	if !ok || minute > 59 {
		return DateTime{}, false
	}
	second, ok := parseRange(text, 17, 19)
	if !ok || second > 59 {
		return DateTime{}, false
	}
	return DateTime{
		Year:   int(year),
		Month:  uint8(month),
		Day:    uint8(day),
		Hour:   uint8(hour),
		Minute: uint8(minute),
		Second: uint8(second),
	}, true
}

// parseDateTimeFracGeneric is the scalar reference for the 32-byte
// fractional kernel.
func parseDateTimeFracGeneric(text []byte) (DateTime, bool) {
	dt, ok := parseDateTimeGeneric(text[:dateTimeMinLength])
	if !ok || text[fractionalDotOffset] != '.' {
		return DateTime{}, false
	}
	nano, ok := parseFractional(text[fractionalDotOffset+1:])
	if !ok {
		return DateTime{}, false
	}
	dt.Nanosecond = nano
	return dt, true
}

// fractionalScale right-zero-pads 1..9 fractional digits to nanoseconds.
var fractionalScale = [...]uint32{1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000}

// parseFractional decodes 1-9 fractional-second digits into nanoseconds,
// so ".4" means 400000000.
func parseFractional(text []byte) (uint32, bool) {
	if len(text) == 0 || len(text) > 9 {
		return 0, false
	}
	frac, ok := parseDigits(text)
	if !ok {
		return 0, false
	}
	return uint32(frac) * fractionalScale[9-len(text)], true
}

// Compare orders date-times field by field, the offset last. No UTC
// normalization is applied.
func (dt DateTime) Compare(op DateTime) int {
	if c := cmp.Compare(dt.Year, op.Year); c != 0 {
		return c
	}
	if c := cmp.Compare(dt.Month, op.Month); c != 0 {
		return c
	}
	if c := cmp.Compare(dt.Day, op.Day); c != 0 {
		return c
	}
	if c := cmp.Compare(dt.Hour, op.Hour); c != 0 {
		return c
	}
	if c := cmp.Compare(dt.Minute, op.Minute); c != 0 {
		return c
	}
	if c := cmp.Compare(dt.Second, op.Second); c != 0 {
		return c
	}
	if c := cmp.Compare(dt.Nanosecond, op.Nanosecond); c != 0 {
		return c
	}
	return dt.Offset.Compare(op.Offset)
}
