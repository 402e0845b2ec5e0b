package vecio

import (
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"
	"gonum.org/v1/gonum/mat"
)

// Problem is a least-squares design: rows of A and the target b.
type Problem struct {
	A [][]float64 `json:"a"`
	B []float64   `json:"b"`
}

// Validate checks that A is a non-empty rectangular matrix with one target per row.
func (p *Problem) Validate() error {
	if len(p.A) == 0 || len(p.A[0]) == 0 {
		return fmt.Errorf("%w: empty design matrix", ErrFormat)
	}
	cols := len(p.A[0])
	for i, row := range p.A {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrFormat, i, len(row), cols)
		}
	}
	if len(p.B) != len(p.A) {
		return fmt.Errorf("%w: %d targets for %d rows", ErrFormat, len(p.B), len(p.A))
	}
	return nil
}

// Dims returns the number of rows and columns of A.
func (p *Problem) Dims() (rows, cols int) {
	if len(p.A) == 0 {
		return 0, 0
	}
	return len(p.A), len(p.A[0])
}

// Matrix returns A as a dense matrix. Call Validate first.
func (p *Problem) Matrix() *mat.Dense {
	rows, cols := p.Dims()
	data := make([]float64, 0, rows*cols)
	for _, row := range p.A {
		data = append(data, row...)
	}
	return mat.NewDense(rows, cols, data)
}

// Target returns b as a dense vector.
func (p *Problem) Target() *mat.VecDense {
	return mat.NewVecDense(len(p.B), append([]float64(nil), p.B...))
}

// DecodeProblem reads and validates a JSON problem from r.
func DecodeProblem(r io.Reader) (*Problem, error) {
	var p Problem
	if err := gojson.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// ReadProblem decodes a JSON problem from path, honoring a compression extension.
func ReadProblem(path string) (*Problem, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return DecodeProblem(rc)
}
