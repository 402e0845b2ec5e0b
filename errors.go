package proxgo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for a negative or non-finite strength,
	// a non-positive step, a malformed range or a bad option value.
	ErrInvalidArgument = errors.New("proxgo: invalid argument")

	// ErrDimensionMismatch is returned when a vector is shorter than the
	// active range requires, or input and output lengths differ.
	ErrDimensionMismatch = errors.New("proxgo: dimension mismatch")

	// ErrTypeMismatch is returned when a vector's element kind differs from
	// the kind the operator was constructed for.
	ErrTypeMismatch = errors.New("proxgo: element kind mismatch")
)

// ArgumentError describes an invalid scalar argument.
//
// It matches ErrInvalidArgument via errors.Is.
type ArgumentError struct {
	Op    string
	Name  string
	Value any
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("proxgo: %s: invalid %s: %v", e.Op, e.Name, e.Value)
}

func (e *ArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

// DimensionError describes a vector length that does not fit the operation.
//
// It matches ErrDimensionMismatch via errors.Is.
type DimensionError struct {
	Op   string
	Name string
	Want int
	Got  int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("proxgo: %s: dimension mismatch for %s: want %d, got %d", e.Op, e.Name, e.Want, e.Got)
}

func (e *DimensionError) Is(target error) bool { return target == ErrDimensionMismatch }

// KindError describes a vector of the wrong element kind.
//
// It matches ErrTypeMismatch via errors.Is.
type KindError struct {
	Op   string
	Want Kind
	Got  Kind
}

func (e *KindError) Error() string {
	return fmt.Sprintf("proxgo: %s: element kind mismatch: want %s, got %s", e.Op, e.Want, e.Got)
}

func (e *KindError) Is(target error) bool { return target == ErrTypeMismatch }
