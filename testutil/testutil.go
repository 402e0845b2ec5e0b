package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// FillUniform64 fills dst with random values in range [minVal, maxVal).
// Locks only once per call (preferred over drawing values in a loop).
func (r *RNG) FillUniform64(dst []float64, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float64()*span
	}
}

// FillUniform32 fills dst with random values in range [minVal, maxVal).
func (r *RNG) FillUniform32(dst []float32, minVal, maxVal float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float32()*span
	}
}

// Float64s returns n values drawn uniformly from [minVal, maxVal).
func (r *RNG) Float64s(n int, minVal, maxVal float64) []float64 {
	v := make([]float64, n)
	r.FillUniform64(v, minVal, maxVal)
	return v
}

// Float32s returns n values drawn uniformly from [minVal, maxVal).
func (r *RNG) Float32s(n int, minVal, maxVal float32) []float32 {
	v := make([]float32, n)
	r.FillUniform32(v, minVal, maxVal)
	return v
}

// Gaussian64 returns n values from a standard normal distribution.
func (r *RNG) Gaussian64(n int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	v := make([]float64, n)
	for i := range v {
		v[i] = r.rand.NormFloat64()
	}
	return v
}

// EdgeFloat64s returns values that stress sign handling and range limits.
func EdgeFloat64s() []float64 {
	return []float64{
		0,
		math.Copysign(0, -1),
		math.SmallestNonzeroFloat64,
		-math.SmallestNonzeroFloat64,
		1e-300,
		-1e-300,
		1,
		-1,
		1e300,
		-1e300,
		math.MaxFloat64,
		-math.MaxFloat64,
	}
}

// EdgeFloat32s is the float32 counterpart of EdgeFloat64s.
func EdgeFloat32s() []float32 {
	return []float32{
		0,
		float32(math.Copysign(0, -1)),
		math.SmallestNonzeroFloat32,
		-math.SmallestNonzeroFloat32,
		1e-30,
		-1e-30,
		1,
		-1,
		1e30,
		-1e30,
		math.MaxFloat32,
		-math.MaxFloat32,
	}
}

// Regression is a synthetic linear model b = A*Coeffs + noise.
type Regression struct {
	Rows   int
	Cols   int
	A      []float64 // row-major, Rows x Cols
	B      []float64
	Coeffs []float64
}

// SparseRegression generates a Gaussian design with a ground-truth coefficient
// vector that has exactly nonzero non-zero entries of magnitude in [1, 3).
func (r *RNG) SparseRegression(rows, cols, nonzero int, noise float64) Regression {
	r.mu.Lock()
	defer r.mu.Unlock()

	if nonzero > cols {
		nonzero = cols
	}

	coeffs := make([]float64, cols)
	for _, j := range r.rand.Perm(cols)[:nonzero] {
		mag := 1 + 2*r.rand.Float64()
		if r.rand.Intn(2) == 0 {
			mag = -mag
		}
		coeffs[j] = mag
	}

	a := make([]float64, rows*cols)
	for i := range a {
		a[i] = r.rand.NormFloat64()
	}

	b := make([]float64, rows)
	for i := range rows {
		row := a[i*cols : (i+1)*cols]
		var s float64
		for j, v := range row {
			s += v * coeffs[j]
		}
		b[i] = s + noise*r.rand.NormFloat64()
	}

	return Regression{Rows: rows, Cols: cols, A: a, B: b, Coeffs: coeffs}
}
