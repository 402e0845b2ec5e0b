package solver

import (
	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/proxgo"
)

// ApplyVecDense runs op.Apply on gonum vectors.
//
// Contiguous vectors are processed in place on their backing slices; strided
// ones go through a temporary buffer. out may be in.
func ApplyVecDense(op *proxgo.L1[float64], in mat.Vector, step float64, out *mat.VecDense) error {
	n := in.Len()
	if out.Len() != n {
		return &proxgo.DimensionError{Op: "apply vecdense", Name: "out", Want: n, Got: out.Len()}
	}
	if n == 0 {
		return op.Apply(nil, step, nil)
	}

	src := contiguous(in)
	if src == nil {
		src = make([]float64, n)
		mat.NewVecDense(n, src).CopyVec(in)
	}

	if dst := contiguous(out); dst != nil {
		return op.Apply(src, step, dst)
	}

	dst := make([]float64, n)
	if err := op.Apply(src, step, dst); err != nil {
		return err
	}
	out.CopyVec(mat.NewVecDense(n, dst))
	return nil
}

// contiguous returns the backing data of v when it has unit stride.
func contiguous(v mat.Vector) []float64 {
	vd, ok := v.(*mat.VecDense)
	if !ok || vd.IsEmpty() {
		return nil
	}
	raw := vd.RawVector()
	if raw.Inc != 1 {
		return nil
	}
	return raw.Data[:raw.N]
}
