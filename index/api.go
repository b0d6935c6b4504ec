package index

import "github.com/viant/knn/distance"

// Neighbor is a query hit: the position of a training vector in build order
// and its distance to the query.
type Neighbor struct {
	Position int
	Distance float64
}

// Index defines a vector index over a fixed set of training vectors.
type Index interface {
	// Build loads the vectors. All vectors must share one dimensionality; an
	// empty set is valid. Build replaces any previously loaded vectors.
	Build(vectors [][]float64) error

	// Query returns up to k neighbors of query ordered by ascending distance;
	// equal distances keep build order. It never truncates: a query whose
	// length differs from the index dimensionality is an error.
	Query(query []float64, k int, metric distance.Metric) ([]Neighbor, error)

	// Len returns the number of indexed vectors.
	Len() int

	// Dim returns the dimensionality of the indexed vectors, 0 when empty.
	Dim() int
}
