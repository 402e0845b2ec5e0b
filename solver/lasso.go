package solver

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/proxgo"
)

// ErrFactorization is returned when the Lipschitz constant cannot be computed.
var ErrFactorization = errors.New("solver: SVD factorization failed")

// Result is the outcome of a solver run.
type Result struct {
	Coeffs     []float64
	Iterations int
	Objective  float64
	Converged  bool
	Step       float64
	History    []float64
}

// Support returns the indices of the non-zero coefficients.
func (r *Result) Support() *roaring.Bitmap {
	support := roaring.New()
	for i, c := range r.Coeffs {
		if c != 0 {
			support.Add(uint32(i))
		}
	}
	return support
}

// Lasso minimizes (1/2n)||A x - b||² + op.Value(x) by proximal gradient descent.
//
// op may carry a range and the positive flag; coordinates outside its range
// are fitted without penalty. The solver reads op's strength once per
// iteration, so op must not be mutated during the run.
//
// Returns proxgo.ErrDimensionMismatch when b does not match the rows of A or
// the operator range exceeds the columns, and the context error if ctx is
// cancelled. Hitting MaxIter is not an error; see Result.Converged.
func Lasso(ctx context.Context, a mat.Matrix, b mat.Vector, op *proxgo.L1[float64], optFns ...Option) (*Result, error) {
	o := applyOptions(optFns)
	if err := o.validate(); err != nil {
		return nil, err
	}

	rows, cols := a.Dims()
	if b.Len() != rows {
		return nil, &proxgo.DimensionError{Op: "lasso", Name: "b", Want: rows, Got: b.Len()}
	}
	if r, ok := op.Range(); ok && r.End > cols {
		return nil, &proxgo.DimensionError{Op: "lasso", Name: "range end", Want: cols, Got: r.End}
	}
	if o.Start != nil && len(o.Start) != cols {
		return nil, &proxgo.DimensionError{Op: "lasso", Name: "start", Want: cols, Got: len(o.Start)}
	}

	logger := o.Logger.WithOperator(op).WithDimension(cols)
	began := time.Now()

	res, err := lasso(ctx, a, b, op, &o, logger)

	elapsed := time.Since(began)
	iters, converged, objective := 0, false, math.NaN()
	if res != nil {
		iters, converged, objective = res.Iterations, res.Converged, res.Objective
	}
	o.Metrics.RecordSolve(iters, converged, elapsed, err)
	logger.LogSolve(ctx, iters, converged, objective, elapsed, err)

	return res, err
}

func lasso(ctx context.Context, a mat.Matrix, b mat.Vector, op *proxgo.L1[float64], o *Options, logger *proxgo.Logger) (*Result, error) {
	rows, cols := a.Dims()
	invRows := 1 / float64(rows)

	step := o.Step
	if step == 0 {
		l, err := LipschitzConstant(a)
		if err != nil {
			return nil, err
		}
		step = 1
		if l > 0 {
			step = 1 / l
		}
	}

	x := mat.NewVecDense(cols, nil)
	if o.Start != nil {
		copy(x.RawVector().Data, o.Start)
	}

	xPrev := mat.NewVecDense(cols, nil)
	grad := mat.NewVecDense(cols, nil)
	resid := mat.NewVecDense(rows, nil)

	// ISTA evaluates the gradient at x itself; FISTA at the extrapolated y.
	y := x
	if o.Accelerated {
		y = mat.VecDenseCopyOf(x)
	}
	momentum, prevObj := 1.0, math.Inf(1)
	limiter := o.iterationLimiter()

	res := &Result{Step: step}
	if o.KeepHistory {
		res.History = make([]float64, 0, min(o.MaxIter, 1024))
	}

	for iter := 1; iter <= o.MaxIter; iter++ {
		if err := ctx.Err(); err != nil {
			res.Coeffs = append([]float64(nil), x.RawVector().Data...)
			return res, fmt.Errorf("solver: lasso interrupted after %d iterations: %w", res.Iterations, err)
		}
		iterStart := time.Now()

		// grad = (1/n) Aᵀ(Ay - b)
		resid.MulVec(a, y)
		resid.SubVec(resid, b)
		grad.MulVec(a.T(), resid)
		grad.ScaleVec(invRows, grad)

		xPrev.CopyVec(x)
		x.AddScaledVec(y, -step, grad)
		if err := ApplyVecDense(op, x, step, x); err != nil {
			return res, fmt.Errorf("solver: prox step: %w", err)
		}

		change, scale := maxAbsDiff(x, xPrev), math.Max(1, maxAbs(x))

		obj, err := objective(a, b, op, x, resid)
		if err != nil {
			return res, err
		}

		if o.Accelerated {
			if obj > prevObj {
				// Function-value restart.
				momentum = 1
				y.CopyVec(x)
			} else {
				next := (1 + math.Sqrt(1+4*momentum*momentum)) / 2
				beta := (momentum - 1) / next
				y.SubVec(x, xPrev)
				y.AddScaledVec(x, beta, y)
				momentum = next
			}
		}
		prevObj = obj

		res.Iterations = iter
		res.Objective = obj
		if o.KeepHistory {
			res.History = append(res.History, obj)
		}

		o.Metrics.RecordIteration(iter, obj, time.Since(iterStart))
		if o.LogEvery > 0 && iter%o.LogEvery == 0 && (limiter == nil || limiter.Allow()) {
			logger.LogIteration(ctx, iter, obj, change)
		}

		if change <= o.Tol*scale {
			res.Converged = true
			break
		}
	}

	res.Coeffs = append([]float64(nil), x.RawVector().Data...)

	return res, nil
}

// Objective returns (1/2n)||A x - b||² + op.Value(x).
func Objective(a mat.Matrix, b mat.Vector, op *proxgo.L1[float64], x []float64) (float64, error) {
	rows, cols := a.Dims()
	if len(x) != cols {
		return 0, &proxgo.DimensionError{Op: "objective", Name: "x", Want: cols, Got: len(x)}
	}
	if b.Len() != rows {
		return 0, &proxgo.DimensionError{Op: "objective", Name: "b", Want: rows, Got: b.Len()}
	}
	return objective(a, b, op, mat.NewVecDense(cols, x), mat.NewVecDense(rows, nil))
}

func objective(a mat.Matrix, b mat.Vector, op *proxgo.L1[float64], x *mat.VecDense, scratch *mat.VecDense) (float64, error) {
	rows, _ := a.Dims()

	scratch.MulVec(a, x)
	scratch.SubVec(scratch, b)
	loss := mat.Dot(scratch, scratch) / (2 * float64(rows))

	penalty, err := op.Value(x.RawVector().Data)
	if err != nil {
		return 0, fmt.Errorf("solver: penalty: %w", err)
	}
	return loss + penalty, nil
}

// LipschitzConstant returns ||AᵀA||₂ / n, the Lipschitz constant of the
// gradient of (1/2n)||A x - b||².
func LipschitzConstant(a mat.Matrix) (float64, error) {
	rows, _ := a.Dims()

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDNone); !ok {
		return 0, ErrFactorization
	}
	values := svd.Values(nil)
	if len(values) == 0 {
		return 0, nil
	}
	return values[0] * values[0] / float64(rows), nil
}

func maxAbs(v *mat.VecDense) float64 {
	var m float64
	for i := 0; i < v.Len(); i++ {
		m = math.Max(m, math.Abs(v.AtVec(i)))
	}
	return m
}

func maxAbsDiff(a, b *mat.VecDense) float64 {
	var m float64
	for i := 0; i < a.Len(); i++ {
		m = math.Max(m, math.Abs(a.AtVec(i)-b.AtVec(i)))
	}
	return m
}
