package simdparse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTZOffset(t *testing.T) {
	cases := []struct {
		in      string
		minutes int
	}{
		{"+00:00", 0},
		{"-00:00", 0},
		{"+02:30", 150},
		{"-11:30", -690},
		{"+14:00", 840},
		{"+23:59", 1439},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			o, ok := ParseTZOffset([]byte(tc.in))
			require.True(t, ok)
			require.Equal(t, tc.minutes, o.Minutes())
		})
	}

	for _, in := range []string{"", "02:30", "+2:30", "+02-30", "+02:60", "+0230", "+02:3", "*02:30"} {
		t.Run(in, func(t *testing.T) {
			_, ok := ParseTZOffset([]byte(in))
			require.False(t, ok)
		})
	}

	require.Equal(t, 150, TZOffsetEast(2, 30).Minutes())
	require.Equal(t, -690, TZOffsetWest(11, 30).Minutes())
}

func TestParseDateTime(t *testing.T) {
	cases := []struct {
		in   string
		want DateTime
	}{
		{"1984-10-24 23:59:59", DateTime{Year: 1984, Month: 10, Day: 24, Hour: 23, Minute: 59, Second: 59}},
		{"1984-10-24T23:59:59", DateTime{Year: 1984, Month: 10, Day: 24, Hour: 23, Minute: 59, Second: 59}},
		{"1984-10-24 23:59:59Z", DateTime{Year: 1984, Month: 10, Day: 24, Hour: 23, Minute: 59, Second: 59}},
		{"1984-10-24 23:59:59 UTC", DateTime{Year: 1984, Month: 10, Day: 24, Hour: 23, Minute: 59, Second: 59}},
		{"0001-01-01 00:00:00", DateTime{Year: 1, Month: 1, Day: 1}},
		{"9999-12-31 23:59:59.999999999Z", MaxDateTime()},

		// fractional seconds right-zero-pad to nanoseconds
		{"1984-10-24 23:59:59.5", DateTime{Year: 1984, Month: 10, Day: 24, Hour: 23, Minute: 59, Second: 59, Nanosecond: 500000000}},
		{"1984-10-24 23:59:59.52", DateTime{Year: 1984, Month: 10, Day: 24, Hour: 23, Minute: 59, Second: 59, Nanosecond: 520000000}},
		{"1984-10-24 23:59:59.123456", DateTime{Year: 1984, Month: 10, Day: 24, Hour: 23, Minute: 59, Second: 59, Nanosecond: 123456000}},
		{"1984-10-24 23:59:59.123456789", DateTime{Year: 1984, Month: 10, Day: 24, Hour: 23, Minute: 59, Second: 59, Nanosecond: 123456789}},
		{"1984-10-24T23:59:59.123456789Z", DateTime{Year: 1984, Month: 10, Day: 24, Hour: 23, Minute: 59, Second: 59, Nanosecond: 123456789}},

		// offset designators are kept verbatim
		{"2023-03-30T00:36:16.556900+00:00", DateTime{Year: 2023, Month: 3, Day: 30, Minute: 36, Second: 16, Nanosecond: 556900000}},
		{"2023-03-30T00:36:16.556900+02:30", DateTime{Year: 2023, Month: 3, Day: 30, Minute: 36, Second: 16, Nanosecond: 556900000, Offset: TZOffsetEast(2, 30)}},
		{"2023-03-30T00:36:16-11:30", DateTime{Year: 2023, Month: 3, Day: 30, Minute: 36, Second: 16, Offset: TZOffsetWest(11, 30)}},

		// longest legal form: 35 bytes, full fraction plus offset
		{"1984-10-24 23:59:59.123456789+02:30", DateTime{Year: 1984, Month: 10, Day: 24, Hour: 23, Minute: 59, Second: 59, Nanosecond: 123456789, Offset: TZOffsetEast(2, 30)}},

		// no days-per-month validation
		{"1986-04-31 12:00:00", DateTime{Year: 1986, Month: 4, Day: 31, Hour: 12}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			dt, ok := ParseDateTime([]byte(tc.in))
			require.True(t, ok)
			require.Equal(t, tc.want, dt)
		})
	}
}

func TestParseDateTimeInvalid(t *testing.T) {
	cases := []string{
		"",
		"1984-10-24",
		"1984-10-24 23:59",
		"1984-10-24 23:59:5",
		"1984/10/24 23:59:59",
		"1984-10-24X23:59:59",
		"1984-10-24 23.59.59",
		"1984-10-24 23:59 59",
		"1984-13-24 23:59:59",
		"1984-10-32 23:59:59",
		"1984-10-24 24:00:00",
		"1984-10-24 23:60:00",
		"1984-10-24 23:59:60",
		"1984-10-24 23:59:60Z", // no leap second
		"1984-10-24 23:59:59.",           // bare dot, no fractional digits
		"1984-10-24 23:59:59.1234567890", // more than 9 fractional digits
		"1984-10-24 23:59:59,123",
		"1984-10-24 23:59:59 GMT",
		"1984-10-24 23:59:59+0:00",
		"1984-10-24 23:59:59+00:0",
		"1984-10-24 23:59:59+00:60",
		"1984-10-24 23:59:59.123456789 ",
		",2023-03-30T00:36:16.556900+00:00,",
		"2023-03-30T00:36:16.556900+00:00Z",
		"1984-10-24 23:59:59.1234567890+02:30", // 36 bytes, one past the window
		" 1984-10-24 23:59:59.123456789+02:30", // 36 bytes, leading junk
	}
	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			_, ok := ParseDateTime([]byte(in))
			require.False(t, ok)
		})
	}
}

func TestDateTimeCompare(t *testing.T) {
	base := DateTime{Year: 1984, Month: 10, Day: 24, Hour: 23, Minute: 59, Second: 59, Nanosecond: 5}
	require.Equal(t, 0, base.Compare(base))

	later := base
	later.Nanosecond = 6
	require.Equal(t, -1, base.Compare(later))
	require.Equal(t, 1, later.Compare(base))

	// the offset participates verbatim as the final tiebreaker; values
	// naming the same instant through different offsets are not equal
	east := base
	east.Offset = TZOffsetEast(1, 0)
	require.Equal(t, -1, base.Compare(east))
	require.NotEqual(t, base, east)

	west := base
	west.Offset = TZOffsetWest(1, 0)
	require.Equal(t, 1, base.Compare(west))
}

func TestDateTimeString(t *testing.T) {
	dt, ok := ParseDateTime([]byte("1984-10-24 23:59:59.123456789Z"))
	require.True(t, ok)
	require.Equal(t, "1984-10-24 23:59:59.123456789Z", dt.String())

	// stored fields print verbatim, the offset does not shift them
	dt, ok = ParseDateTime([]byte("2023-03-30T00:36:16.5569+02:30"))
	require.True(t, ok)
	require.Equal(t, "2023-03-30 00:36:16.556900000Z", dt.String())

	dt, ok = ParseDateTime([]byte("1984-10-24 23:59:59"))
	require.True(t, ok)
	require.Equal(t, "1984-10-24 23:59:59.000000000Z", dt.String())
}

func TestParseDateTimeKernelParity(t *testing.T) {
	skipWithoutKernel(t)

	probes := []byte{'/', ':', '.', ' ', 'T', 'a', '0', 0x00, 0x7f, 0xff}
	var inputs [][]byte
	inputs = append(inputs, mutations("1984-10-24 23:59:59", probes)...)
	inputs = append(inputs, mutations("1984-10-24T23:59:59.123456789", probes)...)
	inputs = append(inputs, mutations("2023-03-30T00:36:16.5569+02:30", probes)...)
	inputs = append(inputs,
		[]byte("1984-10-24 29:59:59"), // hour tens in byte bounds, value out of range
		[]byte("1984-19-24 23:59:59"),
		[]byte("1984-10-39 23:59:59"),
		[]byte("1984-10-24023:59:59"), // separator inside the [' ', 'T'] byte range
		[]byte("1984-10-24 23:59:59.1"),
		[]byte("1984-10-24 23:59:59.123456789"),
	)
	for _, in := range inputs {
		requireKernelParity(t, ParseDateTime, in)
	}
}

func BenchmarkParseDateTime(b *testing.B) {
	in := []byte("2023-03-30T00:36:16.556900+02:30")
	for b.Loop() {
		if _, ok := ParseDateTime(in); !ok {
			b.Fatal("parse failed")
		}
	}
}
