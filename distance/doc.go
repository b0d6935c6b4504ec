// Package distance defines the Metric strategy used by the kNN classifier and
// ships the built-in metrics:
//   - Euclidean (default), SquaredEuclidean, Manhattan, Chebyshev, Minkowski
//   - Cosine distance (1 - cosine similarity)
//   - FastEuclidean and FastCosine, float32 variants backed by viant/vec
//
// Every metric rejects vectors of different lengths with an error wrapping
// ErrDimensionMismatch instead of truncating to the shorter one.
package distance
