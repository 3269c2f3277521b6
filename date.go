package simdparse

import "cmp"

// Date is a Gregorian calendar date decoded from the fixed grammar
// YYYY-MM-DD. Parsing bounds each digit position and caps the month at 12
// and the day at 31, but performs no days-per-month validation: 1986-04-31
// parses successfully. Callers needing full calendar validity must check it
// themselves.
type Date struct {
	Year  int
	Month uint8
	Day   uint8
}

const dateLength = 10

// ParseDate decodes a YYYY-MM-DD string.
func ParseDate(text []byte) (Date, bool) {
	var d Date
	ok := d.parse(text)
	return d, ok
}

func (d *Date) displayName() string { return "date" }

func (d *Date) parse(text []byte) bool {
	if len(text) != dateLength {
		return false
	}
	v, ok := parseDateValue(text)
	if !ok {
		return false
	}
	*d = v
	return true
}

func parseDateValue(text []byte) (Date, bool) {
	if useKernel {
		return parseDateKernel(text)
	}
	return parseDateGeneric(text)
}

// parseDateGeneric is the scalar reference for the date kernel.
func parseDateGeneric(text []byte) (Date, bool) {
	year, ok := parseRange(text, 0, 4)
	if !ok || text[4] != '-' {
		return Date{}, false
	}
	month, ok := parseRange(text, 5, 7)
	if !ok || month > 12 || text[7] != '-' {
		return Date{}, false
	}
	day, ok := parseRange(text, 8, 10)
	if !ok || day > 31 {
		return Date{}, false
	}
	return Date{Year: int(year), Month: uint8(month), Day: uint8(day)}, true
}

// Compare orders dates lexicographically by (year, month, day).
func (d Date) Compare(op Date) int {
	if c := cmp.Compare(d.Year, op.Year); c != 0 {
		return c
	}
	if c := cmp.Compare(d.Month, op.Month); c != 0 {
		return c
	}
	return cmp.Compare(d.Day, op.Day)
}
