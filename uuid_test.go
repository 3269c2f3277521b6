package simdparse

import (
	"testing"

	guuid "github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var uuidWant = UUID{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef, 0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}

func TestParseUUID(t *testing.T) {
	cases := []string{
		"0123456789abcdef0123456789abcdef",
		"0123456789ABCDEF0123456789ABCDEF",
		"01234567-89ab-cdef-0123-456789abcdef",
		"01234567-89AB-CDEF-0123-456789ABCDEF",
		"{01234567-89ab-cdef-0123-456789abcdef}",
	}
	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			u, ok := ParseUUID([]byte(in))
			require.True(t, ok)
			require.Equal(t, uuidWant, u)
		})
	}
}

func TestParseUUIDInvalid(t *testing.T) {
	cases := []string{
		"",
		"0123456789abcdef0123456789abcde",    // 31 digits
		"0123456789abcdef0123456789abcdef0",  // 33 digits
		"0123456789abcdef-0123456789abcdef",  // wrong length, dash mid-string
		"01234567-89ab-cdef-0123456789abcdef",
		"0123456789abcdefg123456789abcdef",
		"01234567-89ab+cdef-0123-456789abcdef",
		"01234567-89ab-cdef-0123-456789abcde-",
		"(01234567-89ab-cdef-0123-456789abcdef)",
		"{01234567-89ab-cdef-0123-456789abcdef)",
		"{0123456789abcdef0123456789abcdef}",
	}
	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			_, ok := ParseUUID([]byte(in))
			require.False(t, ok)
		})
	}
}

// probe characters straddle the digit and letter class boundaries
var uuidProbes = []byte{'h', '/', ':', '@', '[', '`', '{'}

func TestParseUUIDProbedPositions(t *testing.T) {
	for _, in := range mutations("0123456789abcdef0123456789abcdef", uuidProbes) {
		_, ok := ParseUUID(in)
		require.False(t, ok, "accepted %q", in)
	}
	for _, in := range mutations("01234567-89ab-cdef-0123-456789abcdef", uuidProbes) {
		_, ok := ParseUUID(in)
		require.False(t, ok, "accepted %q", in)
	}
}

func TestParseUUIDMatchesReference(t *testing.T) {
	for range 64 {
		ref := guuid.New()
		text := ref.String()

		u, ok := ParseUUID([]byte(text))
		require.True(t, ok)
		require.Equal(t, ref[:], u[:])
		require.Equal(t, text, u.String())
	}
}

func TestUUIDCompare(t *testing.T) {
	a := UUID{0x00, 0x01}
	b := UUID{0x00, 0x02}
	require.Equal(t, -1, a.Compare(b))
	require.Equal(t, 1, b.Compare(a))
	require.Equal(t, 0, a.Compare(a))
}

func TestUUIDString(t *testing.T) {
	require.Equal(t, "01234567-89ab-cdef-0123-456789abcdef", uuidWant.String())
	require.Equal(t, "00000000-0000-0000-0000-000000000000", UUID{}.String())
}

func TestParseUUIDKernelParity(t *testing.T) {
	skipWithoutKernel(t)

	inputs := [][]byte{
		[]byte("0123456789abcdef0123456789abcdef"),
		[]byte("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF"),
	}
	inputs = append(inputs, mutations("0123456789abcdef0123456789abcdef", uuidProbes)...)
	inputs = append(inputs, mutations("0123456789abcdef0123456789abcdef", []byte{0x00, 0x7f, 0xff})...)
	for _, in := range inputs {
		requireKernelParity(t, ParseUUID, in)
	}
}
