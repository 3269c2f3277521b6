//go:build goexperiment.simd && amd64

package simdparse

import (
	"simd/archsimd"

	"golang.org/x/sys/cpu"
)

// kernelAvailable reports whether the vector kernels are compiled in.
const kernelAvailable = true

// useKernel selects the vector fast path at run time. Tests flip it to run
// both implementations against the same fixtures.
var useKernel bool

func init() {
	useKernel = cpu.X86.HasAVX2
}

// maskBits extracts the per-lane truth bits of a 32-lane mask.
func maskBits(mask archsimd.Mask8x32) uint32 {
	var tmp [32]int8
	mask.ToInt8x32().Store(&tmp)

	var bits uint32
	for i, b := range tmp {
		bits |= uint32(uint8(b)>>7) << i
	}
	return bits
}
