package qmeans

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with qmeans-specific context.
// This provides structured logging with consistent field names.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithClusters adds a cluster-count field to the logger.
func (l *Logger) WithClusters(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("clusters", k),
	}
}

// WithFeatureMap adds a feature-map field to the logger.
func (l *Logger) WithFeatureMap(kind string) *Logger {
	return &Logger{
		Logger: l.Logger.With("feature_map", kind),
	}
}

// LogIteration logs one assignment/update pass.
func (l *Logger) LogIteration(iteration int, sizes []uint64, resampled int) {
	if resampled > 0 {
		l.Warn("iteration completed with empty clusters resampled",
			"iteration", iteration,
			"cluster_sizes", sizes,
			"resampled", resampled,
		)
	} else {
		l.Debug("iteration completed",
			"iteration", iteration,
			"cluster_sizes", sizes,
		)
	}
}

// LogConvergence logs early termination on stable centers.
func (l *Logger) LogConvergence(iteration int) {
	l.Info("centers converged",
		"iteration", iteration,
	)
}

// LogBudgetExhausted logs termination on the iteration budget.
func (l *Logger) LogBudgetExhausted(maxIterations int) {
	l.Debug("iteration budget exhausted",
		"max_iterations", maxIterations,
	)
}
