package proxgo

import (
	"fmt"

	"github.com/hupe1980/proxgo/internal/kernel"
)

// DefaultChunkSize is the number of coordinates handed to one worker when
// parallel apply is enabled.
const DefaultChunkSize = 1 << 14

// Range is a half-open coordinate interval [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns End - Start.
func (r Range) Len() int { return r.End - r.Start }

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}

type options struct {
	rng       Range
	hasRange  bool
	positive  bool
	workers   int
	chunkSize int
	impl      kernel.Impl
	implName  string
}

// Option configures an operator at construction.
type Option func(*options)

// WithRange restricts the operator to coordinates [start, end).
// Coordinates outside the range are passed through unchanged.
//
// The range is fixed for the lifetime of the operator.
func WithRange(start, end int) Option {
	return func(o *options) {
		o.rng = Range{Start: start, End: end}
		o.hasRange = true
	}
}

// WithPositive enables the projection onto non-negative values inside the
// active range.
func WithPositive(positive bool) Option {
	return func(o *options) {
		o.positive = positive
	}
}

// WithParallelism lets Apply and ApplySteps split long active ranges across
// up to workers goroutines. Values <= 1 keep everything on the calling goroutine.
//
// Outputs are identical to the sequential path. Value is never parallelized.
func WithParallelism(workers int) Option {
	return func(o *options) {
		o.workers = workers
	}
}

// WithChunkSize sets the number of coordinates per parallel task.
// Parallel apply only kicks in when the active range holds at least two chunks.
//
// If n is 0, DefaultChunkSize is used.
func WithChunkSize(n int) Option {
	return func(o *options) {
		o.chunkSize = n
	}
}

// WithKernel forces a kernel implementation ("generic" or "unrolled") instead
// of the one selected for the running CPU.
func WithKernel(name string) Option {
	return func(o *options) {
		o.implName = name
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		workers:   1,
		chunkSize: DefaultChunkSize,
		impl:      kernel.ActiveImpl(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.chunkSize == 0 {
		o.chunkSize = DefaultChunkSize
	}
	return o
}

func (o *options) validate(op string) error {
	if o.hasRange {
		if o.rng.Start < 0 || o.rng.End < 0 || o.rng.Start >= o.rng.End {
			return &ArgumentError{Op: op, Name: "range", Value: o.rng}
		}
	}
	if o.workers < 0 {
		return &ArgumentError{Op: op, Name: "workers", Value: o.workers}
	}
	if o.chunkSize < 0 {
		return &ArgumentError{Op: op, Name: "chunk size", Value: o.chunkSize}
	}
	if o.implName != "" {
		impl, ok := kernel.ParseImpl(o.implName)
		if !ok {
			return &ArgumentError{Op: op, Name: "kernel", Value: o.implName}
		}
		o.impl = impl
	}
	return nil
}
