// Package proxgo provides the proximal operator of the L1 norm
// (soft-thresholding) for first-order optimization solvers.
//
// For a coefficient vector x, step size s and strength λ the operator computes,
// coordinate by coordinate inside its active range,
//
//	prox(x)_i = sign(x_i) * max(|x_i| - λ*s, 0)
//
// optionally followed by a projection onto non-negative values. Coordinates
// outside the active range are copied unchanged. The penalty value is
// λ * Σ|x_i| over the active range.
//
// # Quick Start
//
// Precision known at compile time:
//
//	op, _ := proxgo.NewL1[float64](0.5, proxgo.WithRange(1, 10))
//	_ = op.Apply(x, 0.1, x)     // in place
//	v, _ := op.Value(x)
//
// Precision chosen at runtime:
//
//	p, _ := proxgo.New(0.5, proxgo.Float32, proxgo.WithPositive(true))
//	out := make(proxgo.Float32Vector, len(x))
//	err := p.Apply(proxgo.Float32Vector(x), 0.1, out)
//	// p.Apply(proxgo.Float64Vector(y), ...) fails with ErrTypeMismatch
//
// # Numerics
//
// All arithmetic runs at the vector's precision. Results in the dead zone are
// +0, never -0. NaN inputs inside the active range map to 0.
//
// # Errors
//
// Failures are reported through ErrInvalidArgument, ErrDimensionMismatch and
// ErrTypeMismatch (use errors.Is). Nothing is written to the output vector when
// an operation fails.
//
// # Concurrency
//
// Operators carry no locks. Apply and Value may run concurrently as long as
// SetStrength and SetPositive do not. WithParallelism splits a single long
// Apply across goroutines; results are identical to the sequential path.
package proxgo
