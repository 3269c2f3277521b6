package simdparse

import "fmt"

// parseable is implemented by every value type in this package.
type parseable interface {
	parse(text []byte) bool
	displayName() string
}

const excerptLimit = 32

// ParseError reports a failed Parse call, carrying the expected format's
// display name and a truncated excerpt of the offending input.
type ParseError struct {
	Expected string // display name of the expected format
	Excerpt  string // at most 32 bytes of the input
	Length   int    // full input length
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expected: %s; got: %s (len = %d)", e.Expected, e.Excerpt, e.Length)
}

func newParseError(name string, text []byte) *ParseError {
	excerpt := text
	if len(excerpt) > excerptLimit {
		excerpt = excerpt[:excerptLimit]
	}
	return &ParseError{Expected: name, Excerpt: string(excerpt), Length: len(text)}
}

// Parse decodes text into a fresh value of type T. On mismatch it returns
// the zero value and a *ParseError naming the expected format.
func Parse[T any, PT interface {
	parseable
	*T
}](text []byte) (T, error) {
	var v T
	if PT(&v).parse(text) {
		return v, nil
	}
	var zero T
	return zero, newParseError(PT(&zero).displayName(), text)
}
