package distance

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Kind names a built-in metric.
type Kind string

const (
	KindEuclidean        Kind = "euclidean"
	KindSquaredEuclidean Kind = "squared_euclidean"
	KindManhattan        Kind = "manhattan"
	KindChebyshev        Kind = "chebyshev"
	KindCosine           Kind = "cosine"
	KindFastEuclidean    Kind = "fast_euclidean"
	KindFastCosine       Kind = "fast_cosine"
)

// ErrUnknownKind is returned by ParseKind for an unrecognized metric name.
var ErrUnknownKind = errors.New("distance: unknown metric")

// ParseKind resolves a metric name or one of its aliases (l2, l1, linf, cos,
// ...). Matching is case-insensitive and ignores surrounding space; '-' and
// '_' are interchangeable.
func ParseKind(name string) (Kind, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	switch key {
	case "euclidean", "l2":
		return KindEuclidean, nil
	case "squared_euclidean", "sqeuclidean", "sq_l2", "l2sq":
		return KindSquaredEuclidean, nil
	case "manhattan", "l1", "cityblock", "taxicab":
		return KindManhattan, nil
	case "chebyshev", "linf", "max":
		return KindChebyshev, nil
	case "cosine", "cos":
		return KindCosine, nil
	case "fast_euclidean", "fast_l2":
		return KindFastEuclidean, nil
	case "fast_cosine", "fast_cos":
		return KindFastCosine, nil
	}
	return "", errors.Wrapf(ErrUnknownKind, "%q", name)
}

// Metric resolves the callable metric for k, or nil for an unknown kind.
func (k Kind) Metric() Metric {
	switch k {
	case KindEuclidean:
		return Euclidean{}
	case KindSquaredEuclidean:
		return SquaredEuclidean{}
	case KindManhattan:
		return Manhattan{}
	case KindChebyshev:
		return Chebyshev{}
	case KindCosine:
		return Cosine{}
	case KindFastEuclidean:
		return FastEuclidean{}
	case KindFastCosine:
		return FastCosine{}
	default:
		return nil
	}
}

func (k Kind) String() string { return string(k) }

// UnmarshalYAML decodes a metric name through ParseKind.
func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseKind(name)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
