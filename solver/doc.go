// Package solver runs proximal-gradient methods on top of the proxgo L1
// operator.
//
// Lasso minimizes
//
//	(1/2n) ||A x - b||² + λ Σ_{i∈range} |x_i|
//
// with ISTA (plain proximal gradient) or FISTA (Nesterov-accelerated) steps.
// The step size is 1/L where L = ||AᵀA||₂ / n comes from the largest
// singular value of A.
// Data is held in gonum matrices; the operator runs directly on the raw
// backing slices.
package solver
