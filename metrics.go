package proxgo

import (
	"math"
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting solver metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// The operator kernels are never timed; only the solver loop reports here.
type MetricsCollector interface {
	// RecordIteration is called after each solver iteration.
	RecordIteration(iter int, objective float64, duration time.Duration)

	// RecordSolve is called once when a solve finishes.
	// err is nil if the solver ran to convergence or the iteration limit.
	RecordSolve(iters int, converged bool, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordIteration(int, float64, time.Duration) {}
func (NoopMetricsCollector) RecordSolve(int, bool, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	IterationCount      atomic.Int64
	IterationTotalNanos atomic.Int64
	SolveCount          atomic.Int64
	SolveConverged      atomic.Int64
	SolveErrors         atomic.Int64
	SolveTotalNanos     atomic.Int64
	lastObjective       atomic.Uint64 // math.Float64bits
}

// RecordIteration implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIteration(iter int, objective float64, duration time.Duration) {
	b.IterationCount.Add(1)
	b.IterationTotalNanos.Add(duration.Nanoseconds())
	b.lastObjective.Store(math.Float64bits(objective))
}

// RecordSolve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSolve(iters int, converged bool, duration time.Duration, err error) {
	b.SolveCount.Add(1)
	b.SolveTotalNanos.Add(duration.Nanoseconds())
	if converged {
		b.SolveConverged.Add(1)
	}
	if err != nil {
		b.SolveErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		IterationCount:    b.IterationCount.Load(),
		IterationAvgNanos: avg(b.IterationTotalNanos.Load(), b.IterationCount.Load()),
		LastObjective:     math.Float64frombits(b.lastObjective.Load()),
		SolveCount:        b.SolveCount.Load(),
		SolveConverged:    b.SolveConverged.Load(),
		SolveErrors:       b.SolveErrors.Load(),
		SolveAvgNanos:     avg(b.SolveTotalNanos.Load(), b.SolveCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	IterationCount    int64
	IterationAvgNanos int64
	LastObjective     float64
	SolveCount        int64
	SolveConverged    int64
	SolveErrors       int64
	SolveAvgNanos     int64
}
