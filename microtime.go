package simdparse

import (
	"cmp"
	"math"
	"time"
)

// MicroTime is a UTC timestamp with microsecond precision, counted as
// microseconds before or after the Unix epoch. The minimum int64 value is
// reserved as the sentinel for timestamps the epoch conversion cannot
// represent; the zero MicroTime is the epoch itself.
type MicroTime struct {
	value int64
}

const (
	microTimeUnset        = math.MinInt64
	microsecondsPerSecond = 1_000_000
	maxEpochSeconds       = (math.MaxInt64 - (microsecondsPerSecond - 1)) / microsecondsPerSecond
	minEpochSeconds       = math.MinInt64 / microsecondsPerSecond
)

// NewMicroTime returns the timestamp at us microseconds from the epoch.
func NewMicroTime(us int64) MicroTime { return MicroTime{value: us} }

// UndefinedMicroTime returns the reserved sentinel timestamp.
func UndefinedMicroTime() MicroTime { return MicroTime{value: microTimeUnset} }

// MicroTimeFromParts interprets the wall-clock fields as local to offset
// and returns the corresponding UTC timestamp. Out-of-range fields
// normalize arithmetically (hour 24 rolls into the next day). The result is
// the undefined sentinel when the instant does not fit in microseconds.
func MicroTimeFromParts(year, month, day, hour, minute, second int, microsecond int64, offset TZOffset) MicroTime {
	t := time.Date(year, time.Month(month), day,
		hour-offset.Minutes()/60, minute-offset.Minutes()%60, second, 0, time.UTC)
	sec := t.Unix()
	if sec > maxEpochSeconds || sec < minEpochSeconds {
		return UndefinedMicroTime()
	}
	return MicroTime{value: sec*microsecondsPerSecond + microsecond}
}

// ParseMicroTime decodes a date-time string and normalizes it to a UTC
// timestamp, truncating nanoseconds to microseconds.
func ParseMicroTime(text []byte) (MicroTime, bool) {
	var mt MicroTime
	ok := mt.parse(text)
	return mt, ok
}

func (mt *MicroTime) displayName() string { return "timestamp with microsecond precision" }

func (mt *MicroTime) parse(text []byte) bool {
	var dt DateTime
	if !dt.parse(text) {
		return false
	}
	*mt = MicroTimeFromParts(dt.Year, int(dt.Month), int(dt.Day),
		int(dt.Hour), int(dt.Minute), int(dt.Second),
		int64(dt.Nanosecond/1000), dt.Offset)
	return true
}

// Value returns the count of microseconds from the epoch.
func (mt MicroTime) Value() int64 { return mt.value }

// Undefined reports whether mt holds the reserved sentinel.
func (mt MicroTime) Undefined() bool { return mt.value == microTimeUnset }

func (mt MicroTime) Compare(op MicroTime) int { return cmp.Compare(mt.value, op.value) }

// Microseconds returns the fractional part of the timestamp in the range
// 0 through 999999, regardless of the sign of the value. Undefined
// timestamps report 0.
func (mt MicroTime) Microseconds() int64 {
	if mt.Undefined() {
		return 0
	}
	v := mt.value
	if v < 0 {
		v = -v
	}
	return v % microsecondsPerSecond
}

// asSeconds truncates the timestamp toward zero to whole seconds.
func (mt MicroTime) asSeconds() int64 { return mt.value / microsecondsPerSecond }

// AsDate returns the Gregorian calendar date of the instant, or the zero
// Date when the timestamp is undefined.
func (mt MicroTime) AsDate() Date {
	if mt.Undefined() {
		return Date{}
	}
	t := time.Unix(mt.asSeconds(), 0).UTC()
	return Date{Year: t.Year(), Month: uint8(t.Month()), Day: uint8(t.Day())}
}

// AsDateTime returns the date and UTC wall-clock time of the instant with
// the microsecond fraction widened to nanoseconds, or the zero DateTime
// when undefined.
func (mt MicroTime) AsDateTime() DateTime {
	if mt.Undefined() {
		return DateTime{}
	}
	t := time.Unix(mt.asSeconds(), 0).UTC()
	return DateTime{
		Year:       t.Year(),
		Month:      uint8(t.Month()),
		Day:        uint8(t.Day()),
		Hour:       uint8(t.Hour()),
		Minute:     uint8(t.Minute()),
		Second:     uint8(t.Second()),
		Nanosecond: uint32(1000 * mt.Microseconds()),
	}
}
