package vecio

import "errors"

var (
	// ErrUnsupported is returned for unknown encodings or compressions.
	ErrUnsupported = errors.New("vecio: unsupported")
	// ErrFormat is returned when the input is not a well-formed vector or problem.
	ErrFormat = errors.New("vecio: malformed input")
)
