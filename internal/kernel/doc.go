// Package kernel provides the soft-thresholding and absolute-sum kernels used by
// the L1 proximal operator.
//
// Every kernel is generic over the element type so float32 and float64 vectors
// are processed at their native precision without widening.
//
// # Implementations
//
//   - Generic: a plain index loop.
//   - Unrolled: 4-wide unrolled loops with independent accumulators. Selected
//     on CPUs with wide vector units (AVX2 on x86-64, ASIMD on ARM64).
//
// The implementation is chosen once at package init. Set PROXGO_KERNEL to
// "generic" or "unrolled" to force one; unknown or unavailable values fall back
// to auto-detection.
//
// Both implementations write bit-identical outputs for the thresholding
// kernels. AbsSum may differ in the last bits because summation order differs.
package kernel
