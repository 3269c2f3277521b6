package simdparse

// Kernel returns the name of the implementation behind the fast paths:
// "avx2" when the vector kernels are compiled in and the CPU supports them,
// "generic" otherwise.
func Kernel() string {
	if useKernel {
		return "avx2"
	}
	return "generic"
}
