package simdparse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// skipWithoutKernel skips equivalence tests when the vector kernels are not
// compiled in or the CPU cannot run them.
func skipWithoutKernel(t *testing.T) {
	t.Helper()
	if !kernelAvailable || !useKernel {
		t.Skip("vector kernels unavailable")
	}
}

// requireKernelParity parses in twice, once on the vector path and once on
// the scalar path, and requires bit-identical verdicts and values.
func requireKernelParity[T comparable](t *testing.T, parse func([]byte) (T, bool), in []byte) {
	t.Helper()
	old := useKernel
	defer func() { useKernel = old }()

	useKernel = true
	fastV, fastOK := parse(in)
	useKernel = false
	slowV, slowOK := parse(in)

	require.Equal(t, slowOK, fastOK, "kernel/scalar verdict differs for %q", in)
	if fastOK {
		require.Equal(t, slowV, fastV, "kernel/scalar value differs for %q", in)
	}
}

// mutations yields every single-byte substitution of base with one of the
// probe bytes.
func mutations(base string, probes []byte) [][]byte {
	var out [][]byte
	for i := range base {
		for _, p := range probes {
			m := []byte(base)
			m[i] = p
			out = append(out, m)
		}
	}
	return out
}

func TestKernelName(t *testing.T) {
	name := Kernel()
	t.Logf("kernel: %s", name)
	require.Contains(t, []string{"avx2", "generic"}, name)
	if !kernelAvailable {
		require.Equal(t, "generic", name)
	}
}
