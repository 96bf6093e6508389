package distance

import (
	"errors"
	"io"
	"runtime"

	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"
)

// ErrNilMetric indicates that Build was called without a metric.
var ErrNilMetric = errors.New("distance: nil metric")

// ErrInvalidDistance indicates that the metric produced NaN, ±Inf or a
// negative value for some pair, or panicked while computing it.
var ErrInvalidDistance = errors.New("distance: metric returned invalid distance")

// ErrPool indicates that the worker pool could not be created or rejected a task.
var ErrPool = errors.New("distance: worker pool failure")

// Options configures Build. Use DefaultOptions and Option helpers.
type Options struct {
	// Workers is the pool size; values ≤ 0 mean runtime.GOMAXPROCS(0).
	Workers int

	// Pool, if set, is borrowed instead of creating a private pool.
	// Build never releases a borrowed pool and ignores Workers.
	Pool *ants.Pool

	// Logger receives debug-level progress. Nil means discard.
	Logger logrus.FieldLogger
}

// Option configures Options.
type Option func(*Options)

// WithWorkers sets the number of pool workers.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithPool makes Build submit rows to a caller-owned pool.
func WithPool(p *ants.Pool) Option {
	return func(o *Options) {
		o.Pool = p
	}
}

// WithLogger sets the progress logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns Options with one worker per usable CPU and a
// discarding logger.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Logger:  discardLogger(),
	}
}

// gatherOptions applies opts over the defaults and normalizes zero values.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.Logger == nil {
		o.Logger = discardLogger()
	}

	return o
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
