package proxgo

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	var m BasicMetricsCollector

	m.RecordIteration(1, 10, 2*time.Millisecond)
	m.RecordIteration(2, 4.5, 4*time.Millisecond)
	m.RecordSolve(2, true, 10*time.Millisecond, nil)
	m.RecordSolve(7, false, 20*time.Millisecond, errors.New("boom"))

	stats := m.GetStats()
	assert.Equal(t, int64(2), stats.IterationCount)
	assert.Equal(t, (3 * time.Millisecond).Nanoseconds(), stats.IterationAvgNanos)
	assert.Equal(t, 4.5, stats.LastObjective)
	assert.Equal(t, int64(2), stats.SolveCount)
	assert.Equal(t, int64(1), stats.SolveConverged)
	assert.Equal(t, int64(1), stats.SolveErrors)
	assert.Equal(t, (15 * time.Millisecond).Nanoseconds(), stats.SolveAvgNanos)
}

func TestBasicMetricsCollectorEmpty(t *testing.T) {
	var m BasicMetricsCollector

	stats := m.GetStats()
	assert.Zero(t, stats.IterationAvgNanos)
	assert.Zero(t, stats.SolveAvgNanos)
}

func TestNoopMetricsCollector(t *testing.T) {
	var m MetricsCollector = NoopMetricsCollector{}

	assert.NotPanics(t, func() {
		m.RecordIteration(1, 1, time.Second)
		m.RecordSolve(1, true, time.Second, nil)
	})
}
