package distance

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

var (
	// ErrDimensionMismatch is returned when two vectors have different lengths.
	ErrDimensionMismatch = errors.New("distance: dimension mismatch")
	// ErrZeroMagnitude is returned by cosine metrics for a zero vector.
	ErrZeroMagnitude = errors.New("distance: zero-magnitude vector")
	// ErrEmptyVector is returned by metrics undefined on empty vectors.
	ErrEmptyVector = errors.New("distance: empty vectors")
	// ErrInvalidParameter is returned for an out-of-domain metric parameter.
	ErrInvalidParameter = errors.New("distance: invalid parameter")
)

// Metric computes a symmetric, non-negative dissimilarity between two vectors
// of equal length. Implementations must be pure and safe for concurrent use.
type Metric interface {
	Calculate(a, b []float64) (float64, error)
}

// Func adapts a plain function to the Metric interface.
type Func func(a, b []float64) (float64, error)

// Calculate calls f(a, b).
func (f Func) Calculate(a, b []float64) (float64, error) { return f(a, b) }

// CheckDims returns an error wrapping ErrDimensionMismatch when a and b differ
// in length. Custom metrics can use it to honor the Metric contract.
func CheckDims(a, b []float64) error {
	if len(a) != len(b) {
		return errors.Wrapf(ErrDimensionMismatch, "%d vs %d", len(a), len(b))
	}
	return nil
}

// Euclidean is the L2 distance sqrt(sum((a[i]-b[i])^2)).
type Euclidean struct{}

// Calculate returns the Euclidean distance between a and b.
func (Euclidean) Calculate(a, b []float64) (float64, error) {
	if err := CheckDims(a, b); err != nil {
		return 0, err
	}
	return floats.Distance(a, b, 2), nil
}

// SquaredEuclidean is sum((a[i]-b[i])^2). It orders neighbors exactly like
// Euclidean without the square root.
type SquaredEuclidean struct{}

// Calculate returns the squared Euclidean distance between a and b.
func (SquaredEuclidean) Calculate(a, b []float64) (float64, error) {
	if err := CheckDims(a, b); err != nil {
		return 0, err
	}
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum, nil
}

// Manhattan is the L1 distance sum(|a[i]-b[i]|).
type Manhattan struct{}

// Calculate returns the Manhattan distance between a and b.
func (Manhattan) Calculate(a, b []float64) (float64, error) {
	if err := CheckDims(a, b); err != nil {
		return 0, err
	}
	return floats.Distance(a, b, 1), nil
}

// Chebyshev is the L-infinity distance max(|a[i]-b[i]|).
type Chebyshev struct{}

// Calculate returns the Chebyshev distance between a and b.
func (Chebyshev) Calculate(a, b []float64) (float64, error) {
	if err := CheckDims(a, b); err != nil {
		return 0, err
	}
	return floats.Distance(a, b, math.Inf(1)), nil
}

// Minkowski is the Lp distance; P must be at least 1 for the result to be a
// metric.
type Minkowski struct {
	P float64
}

// Calculate returns the Minkowski distance of order m.P between a and b.
func (m Minkowski) Calculate(a, b []float64) (float64, error) {
	if math.IsNaN(m.P) || m.P < 1 {
		return 0, errors.Wrapf(ErrInvalidParameter, "minkowski order %v < 1", m.P)
	}
	if err := CheckDims(a, b); err != nil {
		return 0, err
	}
	return floats.Distance(a, b, m.P), nil
}

// Cosine is the cosine distance 1 - cos(a, b), clamped into [0, 2].
type Cosine struct{}

// Calculate returns the cosine distance between a and b. It returns an error
// for empty or zero-magnitude vectors, where the angle is undefined.
func (Cosine) Calculate(a, b []float64) (float64, error) {
	if err := CheckDims(a, b); err != nil {
		return 0, err
	}
	if len(a) == 0 {
		return 0, ErrEmptyVector
	}
	na := floats.Norm(a, 2)
	nb := floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 0, ErrZeroMagnitude
	}
	return clampCosine(1 - floats.Dot(a, b)/(na*nb)), nil
}

func clampCosine(d float64) float64 {
	switch {
	case d < 0:
		return 0
	case d > 2:
		return 2
	}
	return d
}

var (
	_ Metric = Euclidean{}
	_ Metric = SquaredEuclidean{}
	_ Metric = Manhattan{}
	_ Metric = Chebyshev{}
	_ Metric = Minkowski{}
	_ Metric = Cosine{}
	_ Metric = Func(nil)
)
