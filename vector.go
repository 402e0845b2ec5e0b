package proxgo

import (
	"fmt"
	"reflect"

	"github.com/hupe1980/proxgo/internal/kernel"
)

// Float is the set of element types an operator can be built for.
type Float = kernel.Float

// Kind is the floating-point precision of a vector.
type Kind uint8

const (
	// Float32 is single precision.
	Float32 Kind = iota + 1
	// Float64 is double precision.
	Float64
)

func (k Kind) String() string {
	switch k {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// ParseKind parses "float32" or "float64" (aliases "single", "double").
func ParseKind(s string) (Kind, error) {
	switch s {
	case "float32", "single":
		return Float32, nil
	case "float64", "double":
		return Float64, nil
	default:
		return 0, &ArgumentError{Op: "parse kind", Name: "kind", Value: s}
	}
}

// KindOf returns the Kind of T. Named float types report their underlying kind.
func KindOf[T Float]() Kind {
	var zero T
	if reflect.TypeOf(zero).Kind() == reflect.Float32 {
		return Float32
	}
	return Float64
}

// Vector is a dense vector of known length and element kind.
type Vector interface {
	Len() int
	Kind() Kind
}

// Float32Vector is a single-precision Vector.
type Float32Vector []float32

// Len returns the number of elements.
func (v Float32Vector) Len() int { return len(v) }

// Kind returns Float32.
func (v Float32Vector) Kind() Kind { return Float32 }

// Float64Vector is a double-precision Vector.
type Float64Vector []float64

// Len returns the number of elements.
func (v Float64Vector) Len() int { return len(v) }

// Kind returns Float64.
func (v Float64Vector) Kind() Kind { return Float64 }

func kindOfVector(v Vector) Kind {
	if v == nil {
		return 0
	}
	return v.Kind()
}
