package kernel

import "golang.org/x/exp/constraints"

// Float is the element constraint for all kernels.
type Float interface {
	constraints.Float
}

// SoftThreshold returns sign(x) * max(|x|-t, 0).
//
// t must be >= 0. Values inside the dead zone, NaN and both zeros map to +0.
func SoftThreshold[T Float](x, t T) T {
	switch {
	case x > t:
		return x - t
	case x < -t:
		return x + t
	}
	return 0
}

// SoftThresholdPositive returns max(SoftThreshold(x, t), 0).
func SoftThresholdPositive[T Float](x, t T) T {
	if x > t {
		return x - t
	}
	return 0
}

// Funcs is the kernel set for one element type.
//
// dst and src must have equal length. dst may be src itself; partially
// overlapping slices are not supported.
type Funcs[T Float] struct {
	// Threshold writes SoftThreshold(src[i], t) into dst[i].
	Threshold func(dst, src []T, t T)
	// ThresholdPositive writes SoftThresholdPositive(src[i], t) into dst[i].
	ThresholdPositive func(dst, src []T, t T)
	// ThresholdSteps uses the per-element threshold strength*steps[i].
	ThresholdSteps func(dst, src, steps []T, strength T, positive bool)
	// AbsSum returns the sum of |x[i]|.
	AbsSum func(x []T) T
}

// For returns the kernels of the active implementation for T.
func For[T Float]() Funcs[T] {
	return Select[T](activeImpl)
}

// Select returns the kernels of impl for T.
func Select[T Float](impl Impl) Funcs[T] {
	switch impl {
	case Unrolled:
		return Funcs[T]{
			Threshold:         thresholdUnrolled[T],
			ThresholdPositive: thresholdPositiveUnrolled[T],
			ThresholdSteps:    thresholdStepsGeneric[T],
			AbsSum:            absSumUnrolled[T],
		}
	default:
		return Funcs[T]{
			Threshold:         thresholdGeneric[T],
			ThresholdPositive: thresholdPositiveGeneric[T],
			ThresholdSteps:    thresholdStepsGeneric[T],
			AbsSum:            absSumGeneric[T],
		}
	}
}

func thresholdGeneric[T Float](dst, src []T, t T) {
	src = src[:len(dst)]
	for i, x := range src {
		dst[i] = SoftThreshold(x, t)
	}
}

func thresholdPositiveGeneric[T Float](dst, src []T, t T) {
	src = src[:len(dst)]
	for i, x := range src {
		dst[i] = SoftThresholdPositive(x, t)
	}
}

func thresholdStepsGeneric[T Float](dst, src, steps []T, strength T, positive bool) {
	src = src[:len(dst)]
	steps = steps[:len(dst)]
	if positive {
		for i, x := range src {
			dst[i] = SoftThresholdPositive(x, strength*steps[i])
		}
		return
	}
	for i, x := range src {
		dst[i] = SoftThreshold(x, strength*steps[i])
	}
}

func absSumGeneric[T Float](x []T) T {
	var sum T
	for _, v := range x {
		sum += abs(v)
	}
	return sum
}

func thresholdUnrolled[T Float](dst, src []T, t T) {
	n := len(dst)
	src = src[:n]

	i := 0
	for ; i+4 <= n; i += 4 {
		s := src[i : i+4 : i+4]
		d := dst[i : i+4 : i+4]
		x0, x1, x2, x3 := s[0], s[1], s[2], s[3]
		d[0] = SoftThreshold(x0, t)
		d[1] = SoftThreshold(x1, t)
		d[2] = SoftThreshold(x2, t)
		d[3] = SoftThreshold(x3, t)
	}
	for ; i < n; i++ {
		dst[i] = SoftThreshold(src[i], t)
	}
}

func thresholdPositiveUnrolled[T Float](dst, src []T, t T) {
	n := len(dst)
	src = src[:n]

	i := 0
	for ; i+4 <= n; i += 4 {
		s := src[i : i+4 : i+4]
		d := dst[i : i+4 : i+4]
		x0, x1, x2, x3 := s[0], s[1], s[2], s[3]
		d[0] = SoftThresholdPositive(x0, t)
		d[1] = SoftThresholdPositive(x1, t)
		d[2] = SoftThresholdPositive(x2, t)
		d[3] = SoftThresholdPositive(x3, t)
	}
	for ; i < n; i++ {
		dst[i] = SoftThresholdPositive(src[i], t)
	}
}

func absSumUnrolled[T Float](x []T) T {
	var s0, s1, s2, s3 T

	n := len(x)
	i := 0
	for ; i+4 <= n; i += 4 {
		v := x[i : i+4 : i+4]
		s0 += abs(v[0])
		s1 += abs(v[1])
		s2 += abs(v[2])
		s3 += abs(v[3])
	}
	for ; i < n; i++ {
		s0 += abs(x[i])
	}

	return (s0 + s1) + (s2 + s3)
}

func abs[T Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
