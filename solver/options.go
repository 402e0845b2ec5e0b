package solver

import (
	"math"

	"golang.org/x/time/rate"

	"github.com/hupe1980/proxgo"
)

const (
	// DefaultMaxIter is the iteration limit used when none is configured.
	DefaultMaxIter = 1000
	// DefaultTol is the relative convergence tolerance.
	DefaultTol = 1e-8
)

// Options configures a solver run.
type Options struct {
	// MaxIter bounds the number of proximal-gradient iterations.
	MaxIter int
	// Tol stops the run once max|x_k - x_{k-1}| <= Tol * max(1, max|x_k|).
	Tol float64
	// Accelerated switches from ISTA to FISTA.
	Accelerated bool
	// Step overrides the 1/L step size when > 0.
	Step float64
	// LogEvery logs one Debug line per LogEvery iterations. 0 disables it.
	LogEvery int
	// LogRate caps iteration log lines per second on top of LogEvery.
	// 0 means no cap.
	LogRate float64
	// KeepHistory records the objective after every iteration.
	KeepHistory bool
	// Start is the initial point. nil starts from zero.
	Start []float64

	Logger  *proxgo.Logger
	Metrics proxgo.MetricsCollector
}

// Option mutates Options.
type Option func(*Options)

// WithMaxIter sets the iteration limit.
func WithMaxIter(n int) Option {
	return func(o *Options) { o.MaxIter = n }
}

// WithTol sets the convergence tolerance.
func WithTol(tol float64) Option {
	return func(o *Options) { o.Tol = tol }
}

// WithAcceleration enables FISTA momentum.
func WithAcceleration(enabled bool) Option {
	return func(o *Options) { o.Accelerated = enabled }
}

// WithStep fixes the step size instead of estimating 1/L.
func WithStep(step float64) Option {
	return func(o *Options) { o.Step = step }
}

// WithStart sets the initial coefficients. The slice is copied.
func WithStart(x0 []float64) Option {
	return func(o *Options) { o.Start = x0 }
}

// WithHistory records the objective value of every iteration in Result.History.
func WithHistory(enabled bool) Option {
	return func(o *Options) { o.KeepHistory = enabled }
}

// WithLogger configures structured logging. Pass nil to disable logging.
func WithLogger(logger *proxgo.Logger, every int) Option {
	return func(o *Options) {
		o.Logger = logger
		o.LogEvery = every
	}
}

// WithLogRate caps iteration logging at perSecond lines per second.
func WithLogRate(perSecond float64) Option {
	return func(o *Options) { o.LogRate = perSecond }
}

// WithMetricsCollector configures metrics collection. Pass nil to disable it.
func WithMetricsCollector(mc proxgo.MetricsCollector) Option {
	return func(o *Options) { o.Metrics = mc }
}

func applyOptions(optFns []Option) Options {
	o := Options{
		MaxIter: DefaultMaxIter,
		Tol:     DefaultTol,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.Logger == nil {
		o.Logger = proxgo.NoopLogger()
	}
	if o.Metrics == nil {
		o.Metrics = proxgo.NoopMetricsCollector{}
	}
	return o
}

func (o *Options) validate() error {
	if o.MaxIter <= 0 {
		return &proxgo.ArgumentError{Op: "lasso", Name: "max iter", Value: o.MaxIter}
	}
	if !(o.Tol >= 0) {
		return &proxgo.ArgumentError{Op: "lasso", Name: "tol", Value: o.Tol}
	}
	if !(o.Step >= 0) || math.IsInf(o.Step, 0) {
		return &proxgo.ArgumentError{Op: "lasso", Name: "step", Value: o.Step}
	}
	if o.LogEvery < 0 {
		return &proxgo.ArgumentError{Op: "lasso", Name: "log every", Value: o.LogEvery}
	}
	if !(o.LogRate >= 0) {
		return &proxgo.ArgumentError{Op: "lasso", Name: "log rate", Value: o.LogRate}
	}
	return nil
}

// iterationLimiter returns nil when iteration logging is not rate limited.
func (o *Options) iterationLimiter() *rate.Limiter {
	if o.LogRate == 0 || math.IsInf(o.LogRate, 1) {
		return nil
	}
	return rate.NewLimiter(rate.Limit(o.LogRate), 1)
}
