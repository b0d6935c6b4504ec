package knn

import (
	"github.com/viant/knn/distance"
	"github.com/viant/knn/index"
)

var (
	// ErrDimensionMismatch is returned when the query length differs from the
	// training dimensionality.
	ErrDimensionMismatch = distance.ErrDimensionMismatch
	// ErrInvalidK is returned for a negative k.
	ErrInvalidK = index.ErrInvalidK
	// ErrInconsistentDimensions is returned by New when training vectors
	// differ in length.
	ErrInconsistentDimensions = index.ErrInconsistentDimensions
	// ErrInvalidDistance is returned when a metric yields NaN or a negative
	// distance.
	ErrInvalidDistance = index.ErrInvalidDistance
)
