package chash

import (
	"errors"
	"fmt"

	"github.com/armon/go-metrics"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultCapacity is the bucket count used when no capacity is given.
	DefaultCapacity = 100

	// MaxCapacity bounds the bucket slice a table will allocate.
	MaxCapacity = 1 << 24
)

var (
	ErrInvalidCapacity  = errors.New("capacity must be positive")
	ErrCapacityTooLarge = fmt.Errorf("capacity exceeds %d buckets", MaxCapacity)
	ErrNilHashFunc      = errors.New("hash function is nil")
)

// Options configures a Table. The zero value is not valid; start from
// DefaultOptions or pass Option values to New.
type Options struct {
	// Capacity is the fixed number of buckets.
	Capacity int

	// HashFunc picks the bucket for a key. Defaults to Polynomial31.
	HashFunc HashFunc

	// Logger receives lifecycle events at debug level.
	Logger logrus.FieldLogger

	// Metrics, if set, receives operation counters and the live entry gauge.
	Metrics *metrics.Metrics
}

// Option mutates Options before a table is built.
type Option func(*Options)

// DefaultOptions returns the options New starts from.
func DefaultOptions() Options {
	return Options{
		Capacity: DefaultCapacity,
		HashFunc: Polynomial31,
		Logger:   logrus.StandardLogger(),
	}
}

// WithCapacity sets the bucket count.
func WithCapacity(n int) Option {
	return func(o *Options) { o.Capacity = n }
}

// WithHashFunc replaces the default Polynomial31 hash.
func WithHashFunc(fn HashFunc) Option {
	return func(o *Options) { o.HashFunc = fn }
}

// WithLogger sets the lifecycle logger. A nil logger keeps the default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics enables instrumentation through m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// Validate reports every problem with o at once.
func (o Options) Validate() error {
	var result *multierror.Error

	switch {
	case o.Capacity <= 0:
		result = multierror.Append(result, fmt.Errorf("%w: got %d", ErrInvalidCapacity, o.Capacity))
	case o.Capacity > MaxCapacity:
		result = multierror.Append(result, fmt.Errorf("%w: got %d", ErrCapacityTooLarge, o.Capacity))
	}

	if o.HashFunc == nil {
		result = multierror.Append(result, ErrNilHashFunc)
	}

	return result.ErrorOrNil()
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = logrus.StandardLogger()
	}
	return o
}
