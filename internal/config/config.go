// Package config loads operator and solver settings from YAML files.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/proxgo"
	"github.com/hupe1980/proxgo/solver"
)

// Config is the top-level configuration file.
type Config struct {
	Prox    ProxConfig    `yaml:"prox"`
	Solver  SolverConfig  `yaml:"solver"`
	Logging LoggingConfig `yaml:"logging"`
}

// ProxConfig describes one L1 operator.
type ProxConfig struct {
	Strength  float64 `yaml:"strength"`
	Range     []int   `yaml:"range,omitempty"` // [start, end) or empty
	Positive  bool    `yaml:"positive"`
	Precision string  `yaml:"precision"` // float32, float64
	Workers   int     `yaml:"workers"`
	ChunkSize int     `yaml:"chunk_size,omitempty"`
	Kernel    string  `yaml:"kernel,omitempty"` // generic, unrolled
}

// SolverConfig configures solver.Lasso.
type SolverConfig struct {
	MaxIter     int     `yaml:"max_iter"`
	Tol         float64 `yaml:"tol"`
	Accelerated bool    `yaml:"accelerated"`
	Step        float64 `yaml:"step,omitempty"`
	LogEvery    int     `yaml:"log_every"`
	LogRate     float64 `yaml:"log_rate,omitempty"`
}

// LoggingConfig selects the CLI log handler.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Prox: ProxConfig{
			Strength:  0,
			Precision: "float64",
			Workers:   1,
		},
		Solver: SolverConfig{
			MaxIter:  solver.DefaultMaxIter,
			Tol:      solver.DefaultTol,
			LogEvery: 0,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads, parses and validates a YAML file. Fields missing from the file
// keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates YAML data on top of DefaultConfig.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return enc.Close()
}

// applyEnvOverrides lets PROXGO_LOG_LEVEL and PROXGO_LOG_FORMAT win over the file.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PROXGO_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("PROXGO_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
}

// Validate applies the same rules as operator construction, so a bad file is
// rejected before any vectors are read.
func (c *Config) Validate() error {
	if _, err := c.Prox.NewProx(); err != nil {
		return fmt.Errorf("invalid prox config: %w", err)
	}
	if err := c.Solver.validate(); err != nil {
		return fmt.Errorf("invalid solver config: %w", err)
	}
	if _, err := c.Logging.level(); err != nil {
		return fmt.Errorf("invalid logging config: %w", err)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid logging config: %w", &proxgo.ArgumentError{Op: "config", Name: "format", Value: c.Logging.Format})
	}
	return nil
}

// Kind returns the configured element kind.
func (p ProxConfig) Kind() (proxgo.Kind, error) {
	if p.Precision == "" {
		return proxgo.Float64, nil
	}
	return proxgo.ParseKind(strings.ToLower(p.Precision))
}

// Options converts the operator settings to construction options.
func (p ProxConfig) Options() ([]proxgo.Option, error) {
	opts := []proxgo.Option{
		proxgo.WithPositive(p.Positive),
		proxgo.WithParallelism(p.Workers),
		proxgo.WithChunkSize(p.ChunkSize),
	}

	switch len(p.Range) {
	case 0:
	case 2:
		opts = append(opts, proxgo.WithRange(p.Range[0], p.Range[1]))
	default:
		return nil, &proxgo.ArgumentError{Op: "config", Name: "range", Value: p.Range}
	}

	if p.Kernel != "" {
		opts = append(opts, proxgo.WithKernel(p.Kernel))
	}
	return opts, nil
}

// NewProx builds the runtime-kind operator the settings describe.
func (p ProxConfig) NewProx() (*proxgo.SoftThresholdProx, error) {
	kind, err := p.Kind()
	if err != nil {
		return nil, err
	}
	opts, err := p.Options()
	if err != nil {
		return nil, err
	}
	return proxgo.New(p.Strength, kind, opts...)
}

// NewL1 builds a float64 operator for the solver, ignoring Precision.
func (p ProxConfig) NewL1() (*proxgo.L1[float64], error) {
	opts, err := p.Options()
	if err != nil {
		return nil, err
	}
	return proxgo.NewL1(p.Strength, opts...)
}

// Options converts the solver settings to solver options.
func (s SolverConfig) Options() []solver.Option {
	opts := []solver.Option{
		solver.WithMaxIter(s.MaxIter),
		solver.WithTol(s.Tol),
		solver.WithAcceleration(s.Accelerated),
		solver.WithLogRate(s.LogRate),
	}
	if s.Step > 0 {
		opts = append(opts, solver.WithStep(s.Step))
	}
	return opts
}

func (s SolverConfig) validate() error {
	if s.MaxIter <= 0 {
		return &proxgo.ArgumentError{Op: "config", Name: "max_iter", Value: s.MaxIter}
	}
	if !(s.Tol >= 0) {
		return &proxgo.ArgumentError{Op: "config", Name: "tol", Value: s.Tol}
	}
	if !(s.Step >= 0) {
		return &proxgo.ArgumentError{Op: "config", Name: "step", Value: s.Step}
	}
	if s.LogEvery < 0 {
		return &proxgo.ArgumentError{Op: "config", Name: "log_every", Value: s.LogEvery}
	}
	if !(s.LogRate >= 0) {
		return &proxgo.ArgumentError{Op: "config", Name: "log_rate", Value: s.LogRate}
	}
	return nil
}

// NewLogger builds the logger the settings describe, writing to w.
func (l LoggingConfig) NewLogger(w io.Writer) (*proxgo.Logger, error) {
	level, err := l.level()
	if err != nil {
		return nil, err
	}
	hopts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(l.Format) {
	case "", "text":
		return proxgo.NewLogger(slog.NewTextHandler(w, hopts)), nil
	case "json":
		return proxgo.NewLogger(slog.NewJSONHandler(w, hopts)), nil
	default:
		return nil, &proxgo.ArgumentError{Op: "config", Name: "format", Value: l.Format}
	}
}

func (l LoggingConfig) level() (slog.Level, error) {
	var level slog.Level
	if l.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, &proxgo.ArgumentError{Op: "config", Name: "level", Value: l.Level}
	}
	return level, nil
}
