package proxgo

import (
	"fmt"

	"github.com/hupe1980/proxgo/internal/kernel"
)

// L1 is the proximal operator of the scaled L1 norm (soft-thresholding),
// optionally restricted to a coordinate range and optionally combined with a
// projection onto non-negative values.
//
// The element type is fixed by T. An L1 holds no per-call state; concurrent
// Apply and Value calls are safe as long as no mutator runs at the same time.
type L1[T Float] struct {
	strength  T
	positive  bool
	rng       Range
	hasRange  bool
	workers   int
	chunkSize int
	impl      kernel.Impl
	kern      kernel.Funcs[T]
}

// NewL1 creates an L1 operator with penalization strength λ.
//
// Returns ErrInvalidArgument if strength is negative or not finite, or if an
// option is malformed.
func NewL1[T Float](strength T, optFns ...Option) (*L1[T], error) {
	const op = "new"

	if err := validateStrength(op, strength); err != nil {
		return nil, err
	}

	o := applyOptions(optFns)
	if err := o.validate(op); err != nil {
		return nil, err
	}

	return &L1[T]{
		strength:  strength,
		positive:  o.positive,
		rng:       o.rng,
		hasRange:  o.hasRange,
		workers:   o.workers,
		chunkSize: o.chunkSize,
		impl:      o.impl,
		kern:      kernel.Select[T](o.impl),
	}, nil
}

// Strength returns the penalization strength.
func (p *L1[T]) Strength() T { return p.strength }

// SetStrength updates the penalization strength. Invalid values are rejected
// and the previous strength is kept.
func (p *L1[T]) SetStrength(strength T) error {
	if err := validateStrength("set strength", strength); err != nil {
		return err
	}
	p.strength = strength
	return nil
}

// Positive reports whether the non-negativity projection is enabled.
func (p *L1[T]) Positive() bool { return p.positive }

// SetPositive enables or disables the non-negativity projection.
func (p *L1[T]) SetPositive(positive bool) { p.positive = positive }

// Range returns the active range and whether one was configured.
func (p *L1[T]) Range() (Range, bool) { return p.rng, p.hasRange }

// Kind returns the element kind of T.
func (p *L1[T]) Kind() Kind { return KindOf[T]() }

// Kernel returns the name of the kernel implementation in use.
func (p *L1[T]) Kernel() string { return p.impl.String() }

func (p *L1[T]) String() string {
	r := "all"
	if p.hasRange {
		r = p.rng.String()
	}
	return fmt.Sprintf("L1[%s](strength=%v, range=%s, positive=%t)", p.Kind(), p.strength, r, p.positive)
}

// Apply writes the proximal map of coeffsIn with step size step into coeffsOut.
//
// Inside the active range each coordinate is soft-thresholded at
// strength*step (and clamped at zero when positive); outside it is copied.
// coeffsOut may be coeffsIn itself.
//
// Returns ErrDimensionMismatch if the lengths differ or are shorter than the
// range end, and ErrInvalidArgument if step is not a finite positive number.
// coeffsOut is not modified on error.
func (p *L1[T]) Apply(coeffsIn []T, step T, coeffsOut []T) error {
	const op = "apply"

	if err := p.checkInOut(op, coeffsIn, coeffsOut); err != nil {
		return err
	}
	if err := validateStep(op, step); err != nil {
		return err
	}

	start, end := p.bounds(len(coeffsIn))
	passThrough(coeffsIn, coeffsOut, start, end)

	t := p.strength * step
	threshold := p.kern.Threshold
	if p.positive {
		threshold = p.kern.ThresholdPositive
	}

	src, dst := coeffsIn[start:end], coeffsOut[start:end]
	return p.run(len(dst), func(lo, hi int) error {
		threshold(dst[lo:hi], src[lo:hi], t)
		return nil
	})
}

// ApplySteps is Apply with one step size per active coordinate:
// coordinate i of the range uses steps[i-start].
//
// len(steps) must equal the length of the active range.
func (p *L1[T]) ApplySteps(coeffsIn, steps, coeffsOut []T) error {
	const op = "apply steps"

	if err := p.checkInOut(op, coeffsIn, coeffsOut); err != nil {
		return err
	}

	start, end := p.bounds(len(coeffsIn))
	if len(steps) != end-start {
		return &DimensionError{Op: op, Name: "steps", Want: end - start, Got: len(steps)}
	}
	for _, s := range steps {
		if err := validateStep(op, s); err != nil {
			return err
		}
	}

	passThrough(coeffsIn, coeffsOut, start, end)

	src, dst := coeffsIn[start:end], coeffsOut[start:end]
	strength, positive := p.strength, p.positive
	return p.run(len(dst), func(lo, hi int) error {
		p.kern.ThresholdSteps(dst[lo:hi], src[lo:hi], steps[lo:hi], strength, positive)
		return nil
	})
}

// Proximal returns the proximal map of coeffs in a newly allocated slice.
func (p *L1[T]) Proximal(coeffs []T, step T) ([]T, error) {
	out := make([]T, len(coeffs))
	if err := p.Apply(coeffs, step, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Value returns strength * sum(|coeffs[i]|) over the active range.
//
// The positive flag does not change the value.
func (p *L1[T]) Value(coeffs []T) (T, error) {
	if err := p.checkLen("value", "coeffs", len(coeffs)); err != nil {
		return 0, err
	}

	start, end := p.bounds(len(coeffs))
	return p.strength * p.kern.AbsSum(coeffs[start:end]), nil
}

func (p *L1[T]) bounds(n int) (int, int) {
	if p.hasRange {
		return p.rng.Start, p.rng.End
	}
	return 0, n
}

func (p *L1[T]) checkLen(op, name string, n int) error {
	if p.hasRange && n < p.rng.End {
		return &DimensionError{Op: op, Name: name, Want: p.rng.End, Got: n}
	}
	return nil
}

func (p *L1[T]) checkInOut(op string, in, out []T) error {
	if len(in) != len(out) {
		return &DimensionError{Op: op, Name: "coeffs out", Want: len(in), Got: len(out)}
	}
	return p.checkLen(op, "coeffs in", len(in))
}

// passThrough copies the coordinates outside [start, end).
func passThrough[T Float](in, out []T, start, end int) {
	if len(in) == 0 || &in[0] == &out[0] {
		return
	}
	copy(out[:start], in[:start])
	copy(out[end:], in[end:])
}

func validateStrength[T Float](op string, v T) error {
	if v < 0 || !isFinite(v) {
		return &ArgumentError{Op: op, Name: "strength", Value: v}
	}
	return nil
}

func validateStep[T Float](op string, v T) error {
	if !(v > 0) || !isFinite(v) {
		return &ArgumentError{Op: op, Name: "step", Value: v}
	}
	return nil
}

// isFinite reports false for NaN and ±Inf.
func isFinite[T Float](v T) bool {
	return v-v == 0
}
