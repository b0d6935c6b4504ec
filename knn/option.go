package knn

import (
	"github.com/viant/knn/distance"
	"golang.org/x/exp/slog"
)

type options struct {
	logger      *slog.Logger
	parallelism int
	metric      distance.Metric
}

// Option configures a Classifier.
type Option func(*options)

// WithLogger sets the logger used for debug tracing of classifications.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithParallelism splits the distance scan across up to n goroutines.
// Results are identical to the sequential scan.
func WithParallelism(n int) Option {
	return func(o *options) { o.parallelism = n }
}

// WithDefaultMetric sets the metric used when Classify or Neighbors is called
// with a nil metric. The default is distance.Euclidean.
func WithDefaultMetric(metric distance.Metric) Option {
	return func(o *options) {
		if metric != nil {
			o.metric = metric
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		logger: slog.Default(),
		metric: distance.Euclidean{},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
