package proxgo

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with proxgo-specific context.
// This provides structured logging with consistent field names.
//
// Operators never log; Logger is used by the solver and the CLI.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithOperator adds the operator description to the logger.
func (l *Logger) WithOperator(op interface{ String() string }) *Logger {
	return &Logger{
		Logger: l.Logger.With("prox", op.String()),
	}
}

// LogIteration logs one solver iteration.
func (l *Logger) LogIteration(ctx context.Context, iter int, objective, change float64) {
	l.DebugContext(ctx, "iteration",
		"iter", iter,
		"objective", objective,
		"change", change,
	)
}

// LogSolve logs the outcome of a solver run.
func (l *Logger) LogSolve(ctx context.Context, iters int, converged bool, objective float64, elapsed time.Duration, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "solve failed",
			"iterations", iters,
			"error", err,
		)
	case !converged:
		l.WarnContext(ctx, "solve stopped before convergence",
			"iterations", iters,
			"objective", objective,
			"elapsed", elapsed,
		)
	default:
		l.InfoContext(ctx, "solve converged",
			"iterations", iters,
			"objective", objective,
			"elapsed", elapsed,
		)
	}
}
