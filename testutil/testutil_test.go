package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat64s(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.Float64s(64, -2, 2)

	assert.Equal(t, 64, len(v))
	for _, x := range v {
		assert.GreaterOrEqual(t, x, -2.0)
		assert.Less(t, x, 2.0)
	}
}

func TestFloat32s(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.Float32s(64, 0, 1)

	assert.Equal(t, 64, len(v))
	for _, x := range v {
		assert.GreaterOrEqual(t, x, float32(0))
		assert.Less(t, x, float32(1))
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)

	first := rng.Float64s(8, 0, 1)
	rng.Reset()
	second := rng.Float64s(8, 0, 1)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestEdgeValues(t *testing.T) {
	assert.True(t, math.Signbit(EdgeFloat64s()[1]))
	assert.True(t, math.Signbit(float64(EdgeFloat32s()[1])))
	assert.Len(t, EdgeFloat32s(), len(EdgeFloat64s()))
}

func TestSparseRegression(t *testing.T) {
	rng := NewRNG(4711)

	p := rng.SparseRegression(30, 10, 3, 0)

	require.Len(t, p.A, 30*10)
	require.Len(t, p.B, 30)
	require.Len(t, p.Coeffs, 10)

	nonzero := 0
	for _, c := range p.Coeffs {
		if c != 0 {
			nonzero++
			assert.GreaterOrEqual(t, math.Abs(c), 1.0)
		}
	}
	assert.Equal(t, 3, nonzero)

	// Without noise b is exactly A*coeffs.
	for i := range p.Rows {
		var s float64
		for j := range p.Cols {
			s += p.A[i*p.Cols+j] * p.Coeffs[j]
		}
		assert.InDelta(t, s, p.B[i], 1e-12)
	}
}
