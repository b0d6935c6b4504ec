package distance

import (
	"math"

	"github.com/pkg/errors"
	"github.com/viant/vec/search"
)

// ErrOutOfRange is returned by the float32 metrics when a coordinate or the
// result does not fit in float32 (magnitudes beyond roughly 1e19 overflow
// the squared sums).
var ErrOutOfRange = errors.New("distance: value out of float32 range")

// FastEuclidean computes the Euclidean distance in float32 precision using
// viant/vec. Results agree with Euclidean up to float32 rounding, which can
// reorder neighbors whose distances differ by less than that. Inputs whose
// distance overflows float32 return ErrOutOfRange instead of +Inf.
type FastEuclidean struct{}

// Calculate returns the float32 Euclidean distance between a and b.
func (FastEuclidean) Calculate(a, b []float64) (float64, error) {
	if err := CheckDims(a, b); err != nil {
		return 0, err
	}
	if len(a) == 0 {
		return 0, nil
	}
	va, err := toFloat32(a)
	if err != nil {
		return 0, err
	}
	vb, err := toFloat32(b)
	if err != nil {
		return 0, err
	}
	d := float64(search.Float32s(va).EuclideanDistance(vb))
	if math.IsInf(d, 0) {
		return 0, errors.Wrap(ErrOutOfRange, "euclidean distance overflows float32")
	}
	return d, nil
}

// FastCosine computes the cosine distance in float32 precision using
// viant/vec. Vectors whose magnitude overflows float32 return ErrOutOfRange.
type FastCosine struct{}

// Calculate returns the float32 cosine distance between a and b.
func (FastCosine) Calculate(a, b []float64) (float64, error) {
	if err := CheckDims(a, b); err != nil {
		return 0, err
	}
	if len(a) == 0 {
		return 0, ErrEmptyVector
	}
	fa, err := toFloat32(a)
	if err != nil {
		return 0, err
	}
	fb, err := toFloat32(b)
	if err != nil {
		return 0, err
	}
	va := search.Float32s(fa)
	vb := search.Float32s(fb)
	ma := float64(va.Magnitude())
	mb := float64(vb.Magnitude())
	if ma == 0 || mb == 0 {
		return 0, ErrZeroMagnitude
	}
	if math.IsInf(ma, 0) || math.IsInf(mb, 0) {
		return 0, errors.Wrap(ErrOutOfRange, "magnitude overflows float32")
	}
	d := float64(va.CosineDistance(vb))
	if math.IsNaN(d) {
		return 0, errors.Wrap(ErrOutOfRange, "cosine distance overflows float32")
	}
	return clampCosine(d), nil
}

func toFloat32(v []float64) ([]float32, error) {
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(x)
		if math.IsInf(float64(out[i]), 0) && !math.IsInf(x, 0) {
			return nil, errors.Wrapf(ErrOutOfRange, "coordinate %d: %v", i, x)
		}
	}
	return out, nil
}

var (
	_ Metric = FastEuclidean{}
	_ Metric = FastCosine{}
)
