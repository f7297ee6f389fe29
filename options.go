package qmeans

import (
	"github.com/hupe1980/qmeans/featuremap"
)

const (
	// DefaultMaxIterations is the default iteration budget.
	DefaultMaxIterations = 10

	// DefaultTolerance is the element-wise closeness below which
	// centers are considered converged.
	DefaultTolerance = 1e-6
)

type options struct {
	maxIterations int
	kind          featuremap.Kind
	reps          int
	seed          int64
	tolerance     float64
	parallelism   int
	logger        *Logger
}

func defaultOptions() *options {
	return &options{
		maxIterations: DefaultMaxIterations,
		kind:          featuremap.KindAngle,
		reps:          0, // featuremap.DefaultReps for the pairwise map
		seed:          0,
		tolerance:     DefaultTolerance,
		parallelism:   0, // GOMAXPROCS
		logger:        NoopLogger(),
	}
}

// Option configures a clustering run.
type Option func(*options)

// WithMaxIterations sets the iteration budget. Values <= 0 fall back
// to DefaultMaxIterations.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxIterations = n
		}
	}
}

// WithFeatureMap selects the encoding variant (angle or pairwise).
func WithFeatureMap(kind featuremap.Kind) Option {
	return func(o *options) {
		o.kind = kind
	}
}

// WithReps sets the repetition depth of the pairwise map.
// Ignored by the angle map.
func WithReps(reps int) Option {
	return func(o *options) {
		o.reps = reps
	}
}

// WithSeed seeds the random source used for initial center sampling
// and empty-cluster resampling. The same seed and inputs reproduce the
// same labels and centers.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithConvergenceTolerance sets the element-wise closeness below which
// centers are considered stable.
func WithConvergenceTolerance(tol float64) Option {
	return func(o *options) {
		if tol > 0 {
			o.tolerance = tol
		}
	}
}

// WithParallelism bounds the encode fan-out per iteration.
// Values <= 0 use GOMAXPROCS. The iteration sequence itself is always
// sequential.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// WithLogger sets the structured logger for the run.
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
