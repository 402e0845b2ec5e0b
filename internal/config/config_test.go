package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/proxgo"
)

const sample = `
prox:
  strength: 0.5
  range: [1, 3]
  positive: true
  precision: float32
  workers: 2
solver:
  max_iter: 500
  tol: 1e-6
  accelerated: true
  log_every: 50
logging:
  level: debug
  format: json
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, 0.5, cfg.Prox.Strength)
	assert.Equal(t, []int{1, 3}, cfg.Prox.Range)
	assert.True(t, cfg.Prox.Positive)
	assert.Equal(t, 2, cfg.Prox.Workers)
	assert.Equal(t, 500, cfg.Solver.MaxIter)
	assert.Equal(t, 1e-6, cfg.Solver.Tol)
	assert.True(t, cfg.Solver.Accelerated)

	p, err := cfg.Prox.NewProx()
	require.NoError(t, err)
	assert.Equal(t, proxgo.Float32, p.Kind())
	assert.True(t, p.Positive())
	r, ok := p.Range()
	require.True(t, ok)
	assert.Equal(t, proxgo.Range{Start: 1, End: 3}, r)

	out := make(proxgo.Float32Vector, 4)
	require.NoError(t, p.Apply(proxgo.Float32Vector{-9, 2, -2, -9}, 1, out))
	assert.Equal(t, proxgo.Float32Vector{-9, 1.5, 0, -9}, out)
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte("prox:\n  strength: 1\n"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig().Solver, cfg.Solver)

	kind, err := cfg.Prox.Kind()
	require.NoError(t, err)
	assert.Equal(t, proxgo.Float64, kind)

	op, err := cfg.Prox.NewL1()
	require.NoError(t, err)
	_, ok := op.Range()
	assert.False(t, ok)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"negative strength", "prox: {strength: -1}"},
		{"bad range", "prox: {strength: 1, range: [3, 1]}"},
		{"range arity", "prox: {strength: 1, range: [1]}"},
		{"precision", "prox: {strength: 1, precision: float16}"},
		{"kernel", "prox: {strength: 1, kernel: avx512}"},
		{"workers", "prox: {strength: 1, workers: -2}"},
		{"max iter", "solver: {max_iter: 0}"},
		{"tol", "solver: {tol: -1}"},
		{"log rate", "solver: {log_rate: -1}"},
		{"level", "logging: {level: loud}"},
		{"format", "logging: {format: xml}"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			require.ErrorIs(t, err, proxgo.ErrInvalidArgument)
		})
	}

	_, err := Parse([]byte("prox: [not, a, map]"))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proxl1.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "float32", cfg.Prox.Precision)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveRoundTrip(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, cfg.Save(&buf))

	again, err := Parse(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PROXGO_LOG_LEVEL", "warn")
	t.Setenv("PROXGO_LOG_FORMAT", "json")

	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoggingNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger, err := LoggingConfig{Level: "warn", Format: "json"}.NewLogger(&buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	_, err = LoggingConfig{Format: "xml"}.NewLogger(&buf)
	require.ErrorIs(t, err, proxgo.ErrInvalidArgument)
}

func TestSolverOptions(t *testing.T) {
	s := SolverConfig{MaxIter: 10, Tol: 1e-3, Step: 0.5}
	assert.Len(t, s.Options(), 5)

	s.Step = 0
	assert.Len(t, s.Options(), 4)
}
