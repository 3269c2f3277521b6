package simdparse

import (
	"fmt"
	"strconv"
)

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// String formats the stored wall-clock fields verbatim as
// YYYY-MM-DD hh:mm:ss.fffffffffZ, nine fractional digits and a literal Z
// regardless of the offset.
func (dt DateTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d.%09dZ",
		dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second, dt.Nanosecond)
}

// String formats the timestamp as a UTC date-time with six fractional
// digits, or the empty string when undefined.
func (mt MicroTime) String() string {
	if mt.Undefined() {
		return ""
	}
	dt := mt.AsDateTime()
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d.%06dZ",
		dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second, mt.Microseconds())
}

// String formats the UUID in the canonical lowercase dashed form.
func (u UUID) String() string {
	return fmt.Sprintf("%02x%02x%02x%02x-%02x%02x-%02x%02x-%02x%02x-%02x%02x%02x%02x%02x%02x",
		u[0], u[1], u[2], u[3], u[4], u[5], u[6], u[7],
		u[8], u[9], u[10], u[11], u[12], u[13], u[14], u[15])
}

func (d DecimalInteger) String() string { return strconv.FormatUint(d.Value, 10) }

func (h HexadecimalInteger) String() string { return strconv.FormatUint(h.Value, 10) }
