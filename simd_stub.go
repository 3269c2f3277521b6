//go:build !(goexperiment.simd && amd64)

package simdparse

// Vector kernels are not compiled in on this configuration; every parser
// takes the scalar path. The stubs keep the dispatch sites identical across
// builds and are never reached.
const kernelAvailable = false

var useKernel = false

func parseDateKernel([]byte) (Date, bool)             { return Date{}, false }
func parseDateTimeKernel([]byte) (DateTime, bool)     { return DateTime{}, false }
func parseDateTimeFracKernel([]byte) (DateTime, bool) { return DateTime{}, false }
func parseDecimalKernel([]byte) (uint64, bool)        { return 0, false }
func parseHexKernel([]byte) (uint64, bool)            { return 0, false }
func parseUUIDKernel([]byte) (UUID, bool)             { return UUID{}, false }
func decodeBase64Kernel(dst, src []byte) bool         { return false }
