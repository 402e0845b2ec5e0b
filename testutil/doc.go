// Package testutil provides testing utilities for proxgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded generators for coefficient vectors of both precisions,
// vectors of numerically awkward values, and synthetic sparse regression
// problems for solver tests.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	x := rng.Float64s(128, -1, 1)   // uniform [-1, 1)
//	y := rng.Float32s(128, -5, 5)
//
// # Regression Problems
//
//	p := rng.SparseRegression(200, 50, 5, 0.01)
//	// p.A is row-major rows x cols, p.B = p.A * p.Coeffs + noise
package testutil
