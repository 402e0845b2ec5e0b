package proxgo

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		strength float64
		kind     Kind
		opts     []Option
		wantErr  error
	}{
		{"Float64", 1, Float64, nil, nil},
		{"Float32 with range", 1, Float32, []Option{WithRange(0, 2)}, nil},
		{"Unknown kind", 1, Kind(9), nil, ErrInvalidArgument},
		{"Zero kind", 1, 0, nil, ErrInvalidArgument},
		{"Negative strength", -1, Float64, nil, ErrInvalidArgument},
		{"NaN strength", math.NaN(), Float32, nil, ErrInvalidArgument},
		{"Overflows float32", 1e39, Float32, nil, ErrInvalidArgument},
		{"Fits float64", 1e39, Float64, nil, nil},
		{"Bad range", 1, Float64, []Option{WithRange(4, 1)}, ErrInvalidArgument},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := New(tc.strength, tc.kind, tc.opts...)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.kind, p.Kind())
		})
	}
}

func TestProxApply(t *testing.T) {
	p64, err := New(2, Float64)
	require.NoError(t, err)

	out64 := make(Float64Vector, 4)
	require.NoError(t, p64.Apply(Float64Vector{5, -5, 1, 0}, 1, out64))
	assert.Equal(t, Float64Vector{3, -3, 0, 0}, out64)

	p32, err := New(2, Float32, WithPositive(true))
	require.NoError(t, err)

	out32 := make(Float32Vector, 4)
	require.NoError(t, p32.Apply(Float32Vector{5, -5, 1, 0}, 1, out32))
	assert.Equal(t, Float32Vector{3, 0, 0, 0}, out32)
}

func TestProxTypeMismatch(t *testing.T) {
	p32, err := New(1, Float32)
	require.NoError(t, err)

	out := Float32Vector{7, 7}

	err = p32.Apply(Float64Vector{1, 2}, 1, out)
	require.ErrorIs(t, err, ErrTypeMismatch)
	assert.Equal(t, Float32Vector{7, 7}, out)

	err = p32.Apply(Float32Vector{1, 2}, 1, Float64Vector{0, 0})
	require.ErrorIs(t, err, ErrTypeMismatch)

	_, err = p32.Value(Float64Vector{1})
	require.ErrorIs(t, err, ErrTypeMismatch)

	_, err = p32.Proximal(Float64Vector{1}, 1)
	require.ErrorIs(t, err, ErrTypeMismatch)

	err = p32.ApplySteps(Float32Vector{1}, Float64Vector{1}, Float32Vector{0})
	require.ErrorIs(t, err, ErrTypeMismatch)

	err = p32.Apply(nil, 1, out)
	require.ErrorIs(t, err, ErrTypeMismatch)

	var ke *KindError
	require.True(t, errors.As(p32.Apply(Float64Vector{1}, 1, Float32Vector{0}), &ke))
	assert.Equal(t, Float32, ke.Want)
	assert.Equal(t, Float64, ke.Got)

	p64, err := New(1, Float64)
	require.NoError(t, err)
	_, err = p64.Value(Float32Vector{1})
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestProxDimensionAndStepErrors(t *testing.T) {
	p, err := New(1, Float64, WithRange(1, 3))
	require.NoError(t, err)

	out := Float64Vector{7, 7}
	require.ErrorIs(t, p.Apply(Float64Vector{1, 2}, 1, out), ErrDimensionMismatch)
	require.ErrorIs(t, p.Apply(Float64Vector{1, 2, 3}, 1, out), ErrDimensionMismatch)
	require.ErrorIs(t, p.Apply(Float64Vector{1, 2, 3}, 0, Float64Vector{0, 0, 0}), ErrInvalidArgument)
	assert.Equal(t, Float64Vector{7, 7}, out)

	_, err = p.Value(Float64Vector{1, 2})
	require.ErrorIs(t, err, ErrDimensionMismatch)

	p32, err := New(1, Float32)
	require.NoError(t, err)
	require.ErrorIs(t, p32.Apply(Float32Vector{1}, 1e39, Float32Vector{0}), ErrInvalidArgument)
	require.ErrorIs(t, p32.Apply(Float32Vector{1}, 1e-60, Float32Vector{0}), ErrInvalidArgument)
}

func TestProxValue(t *testing.T) {
	for _, kind := range []Kind{Float32, Float64} {
		t.Run(kind.String(), func(t *testing.T) {
			full, err := New(2, kind)
			require.NoError(t, err)
			part, err := New(2, kind, WithRange(1, 2))
			require.NoError(t, err)

			var coeffs Vector = Float64Vector{1, -2, 3}
			if kind == Float32 {
				coeffs = Float32Vector{1, -2, 3}
			}

			v, err := full.Value(coeffs)
			require.NoError(t, err)
			assert.Equal(t, 12.0, v)

			v, err = part.Value(coeffs)
			require.NoError(t, err)
			assert.Equal(t, 4.0, v)
		})
	}
}

func TestProxProximal(t *testing.T) {
	p, err := New(0.5, Float32)
	require.NoError(t, err)

	out, err := p.Proximal(Float32Vector{1, -1, 0.25}, 1)
	require.NoError(t, err)
	assert.Equal(t, Float32Vector{0.5, -0.5, 0}, out)
	assert.Equal(t, Float32, out.Kind())
}

func TestProxApplySteps(t *testing.T) {
	p, err := New(2, Float64)
	require.NoError(t, err)

	out := make(Float64Vector, 2)
	require.NoError(t, p.ApplySteps(Float64Vector{5, -5}, Float64Vector{1, 2}, out))
	assert.Equal(t, Float64Vector{3, -1}, out)
}

func TestProxAliasing(t *testing.T) {
	p, err := New(1, Float64, WithRange(0, 3))
	require.NoError(t, err)

	v := Float64Vector{3, -3, 0.5, 9}
	require.NoError(t, p.Apply(v, 1, v))
	assert.Equal(t, Float64Vector{2, -2, 0, 9}, v)
}

func TestProxMutators(t *testing.T) {
	p, err := New(1, Float32, WithRange(0, 2))
	require.NoError(t, err)

	require.NoError(t, p.SetStrength(2))
	assert.Equal(t, 2.0, p.Strength())

	require.ErrorIs(t, p.SetStrength(-1), ErrInvalidArgument)
	require.ErrorIs(t, p.SetStrength(math.Inf(1)), ErrInvalidArgument)
	require.ErrorIs(t, p.SetStrength(1e39), ErrInvalidArgument)
	assert.Equal(t, 2.0, p.Strength())

	p.SetPositive(true)
	assert.True(t, p.Positive())

	out := make(Float32Vector, 3)
	require.NoError(t, p.Apply(Float32Vector{-5, 5, -5}, 1, out))
	assert.Equal(t, Float32Vector{0, 3, -5}, out)

	r, ok := p.Range()
	assert.True(t, ok)
	assert.Equal(t, Range{0, 2}, r)
	assert.NotEmpty(t, p.Kernel())
	assert.Equal(t, "L1[float32](strength=2, range=[0, 2), positive=true)", p.String())
}

func TestTyped(t *testing.T) {
	p, err := New(1, Float64)
	require.NoError(t, err)

	op, ok := Typed[float64](p)
	require.True(t, ok)
	require.NotNil(t, op)

	require.NoError(t, op.SetStrength(4))
	assert.Equal(t, 4.0, p.Strength(), "typed operator and handle share state")

	_, ok = Typed[float32](p)
	assert.False(t, ok)
}

func TestKind(t *testing.T) {
	assert.Equal(t, "float32", Float32.String())
	assert.Equal(t, "float64", Float64.String())
	assert.Equal(t, "Unknown(7)", Kind(7).String())

	assert.Equal(t, Float32, KindOf[float32]())
	assert.Equal(t, Float64, KindOf[float64]())

	k, err := ParseKind("double")
	require.NoError(t, err)
	assert.Equal(t, Float64, k)

	k, err = ParseKind("float32")
	require.NoError(t, err)
	assert.Equal(t, Float32, k)

	_, err = ParseKind("float16")
	require.ErrorIs(t, err, ErrInvalidArgument)

	assert.Equal(t, 3, Float32Vector{1, 2, 3}.Len())
	assert.Equal(t, Float64, Float64Vector{}.Kind())
}
