package index

import "github.com/pkg/errors"

var (
	// ErrInvalidK is returned for a negative neighbor count.
	ErrInvalidK = errors.New("index: k must be non-negative")
	// ErrInconsistentDimensions is returned by Build when vectors differ in length.
	ErrInconsistentDimensions = errors.New("index: inconsistent vector dimensions")
	// ErrInvalidDistance is returned when a metric yields NaN or a negative value.
	ErrInvalidDistance = errors.New("index: metric returned an invalid distance")
	// ErrNilMetric is returned when Query is called without a metric.
	ErrNilMetric = errors.New("index: metric is nil")
)
