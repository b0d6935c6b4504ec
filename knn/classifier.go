package knn

import (
	"github.com/pkg/errors"
	"github.com/viant/knn/distance"
	"github.com/viant/knn/index"
	"github.com/viant/knn/index/bruteforce"
	"golang.org/x/exp/slog"
)

// Classifier predicts labels by k-nearest-neighbor majority vote. It is
// read-only after New and safe for concurrent use.
type Classifier[L comparable] struct {
	points []DataPoint[L]
	index  index.Index
	metric distance.Metric
	logger *slog.Logger
}

// New creates a Classifier owning a copy of points. An empty training set is
// valid; every Classify on it yields no prediction. All feature vectors must
// have the same length.
func New[L comparable](points []DataPoint[L], opts ...Option) (*Classifier[L], error) {
	o := newOptions(opts)
	owned := make([]DataPoint[L], len(points))
	vectors := make([][]float64, len(points))
	for i, p := range points {
		owned[i] = NewDataPoint(p.Features, p.Label)
		vectors[i] = owned[i].Features
	}
	idx := bruteforce.New(bruteforce.WithParallelism(o.parallelism))
	if err := idx.Build(vectors); err != nil {
		return nil, errors.Wrap(err, "knn")
	}
	return &Classifier[L]{
		points: owned,
		index:  idx,
		metric: o.metric,
		logger: o.logger,
	}, nil
}

// Len returns the training set size.
func (c *Classifier[L]) Len() int { return len(c.points) }

// Dim returns the training dimensionality, 0 for an empty training set.
func (c *Classifier[L]) Dim() int { return c.index.Dim() }

// Points returns a copy of the training set in insertion order.
func (c *Classifier[L]) Points() []DataPoint[L] {
	out := make([]DataPoint[L], len(c.points))
	for i, p := range c.points {
		out[i] = NewDataPoint(p.Features, p.Label)
	}
	return out
}

// Neighbors returns the min(k, Len()) training points closest to query under
// metric, by ascending distance with ties in training order. A nil metric
// selects the classifier default.
func (c *Classifier[L]) Neighbors(query FeatureVector, k int, metric distance.Metric) ([]Neighbor[L], error) {
	if metric == nil {
		metric = c.metric
	}
	hits, err := c.index.Query(query, k, metric)
	if err != nil {
		return nil, errors.Wrap(err, "knn")
	}
	out := make([]Neighbor[L], len(hits))
	for i, hit := range hits {
		out[i] = Neighbor[L]{
			Index:    hit.Position,
			Distance: hit.Distance,
			Label:    c.points[hit.Position].Label,
		}
	}
	return out, nil
}

// Classify predicts the label of query by majority vote among its k nearest
// training points. ok is false when no neighbor is selected (k == 0 or an
// empty training set); the caller decides on any fallback label.
//
// Equal vote counts are won by the label whose nearest member is closest to
// query. A negative k and a query whose length differs from Dim() are errors.
func (c *Classifier[L]) Classify(query FeatureVector, k int, metric distance.Metric) (label L, ok bool, err error) {
	neighbors, err := c.Neighbors(query, k, metric)
	if err != nil {
		return label, false, err
	}
	label, ok = vote(neighbors)
	c.logger.Debug("knn classify", "points", len(c.points), "k", k, "neighbors", len(neighbors), "predicted", ok, "label", label)
	return label, ok, nil
}
