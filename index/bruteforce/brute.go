package bruteforce

import (
	"math"
	"sync"

	"github.com/pkg/errors"
	"github.com/viant/knn/distance"
	"github.com/viant/knn/index"
	"golang.org/x/exp/slices"
)

// Index is a brute-force neighbor index. It is safe for concurrent queries
// once built.
type Index struct {
	vecs        [][]float64
	dim         int
	parallelism int
}

// Option configures an Index.
type Option func(*Index)

// WithParallelism splits the distance scan across up to n goroutines. Values
// below 2 keep the scan sequential.
func WithParallelism(n int) Option {
	return func(i *Index) { i.parallelism = n }
}

// New creates an empty index.
func New(opts ...Option) *Index {
	i := &Index{}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Build loads vectors and checks that they share one dimensionality.
func (i *Index) Build(vectors [][]float64) error {
	if len(vectors) == 0 {
		i.vecs, i.dim = nil, 0
		return nil
	}
	dim := len(vectors[0])
	for j := range vectors {
		if len(vectors[j]) != dim {
			return errors.Wrapf(index.ErrInconsistentDimensions, "bruteforce: vector %d has dim %d, want %d", j, len(vectors[j]), dim)
		}
	}
	i.vecs = append([][]float64(nil), vectors...)
	i.dim = dim
	return nil
}

// Len returns the number of indexed vectors.
func (i *Index) Len() int { return len(i.vecs) }

// Dim returns the indexed dimensionality.
func (i *Index) Dim() int { return i.dim }

// Query returns the min(k, Len()) nearest positions by ascending distance,
// ties in build order.
func (i *Index) Query(query []float64, k int, metric distance.Metric) ([]index.Neighbor, error) {
	if k < 0 {
		return nil, errors.Wrapf(index.ErrInvalidK, "bruteforce: k=%d", k)
	}
	if metric == nil {
		return nil, index.ErrNilMetric
	}
	if len(i.vecs) == 0 {
		return nil, nil
	}
	if len(query) != i.dim {
		return nil, errors.Wrapf(distance.ErrDimensionMismatch, "bruteforce: query dim %d != index dim %d", len(query), i.dim)
	}
	if k == 0 {
		return nil, nil
	}
	scored := make([]index.Neighbor, len(i.vecs))
	if err := i.score(query, metric, scored); err != nil {
		return nil, err
	}
	slices.SortStableFunc(scored, func(a, b index.Neighbor) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		}
		return 0
	})
	if k > len(scored) {
		k = len(scored)
	}
	return scored[:k:k], nil
}

// score fills out[j] with the distance of vector j to query. When the scan
// runs in parallel each goroutine owns a contiguous range of out, and the
// error reported is the one at the lowest position, as in a sequential scan.
func (i *Index) score(query []float64, metric distance.Metric, out []index.Neighbor) error {
	workers := i.parallelism
	if workers > len(i.vecs) {
		workers = len(i.vecs)
	}
	if workers < 2 {
		return i.scoreRange(query, metric, out, 0, len(i.vecs))
	}
	perWorker := (len(i.vecs) + workers - 1) / workers
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * perWorker
		end := min(start+perWorker, len(i.vecs))
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(w, s, e int) {
			defer wg.Done()
			errs[w] = i.scoreRange(query, metric, out, s, e)
		}(w, start, end)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func (i *Index) scoreRange(query []float64, metric distance.Metric, out []index.Neighbor, start, end int) error {
	for j := start; j < end; j++ {
		d, err := metric.Calculate(i.vecs[j], query)
		if err != nil {
			return errors.Wrapf(err, "bruteforce: vector %d", j)
		}
		if math.IsNaN(d) || d < 0 {
			return errors.Wrapf(index.ErrInvalidDistance, "bruteforce: vector %d: %v", j, d)
		}
		out[j] = index.Neighbor{Position: j, Distance: d}
	}
	return nil
}

var _ index.Index = (*Index)(nil)
