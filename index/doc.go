// Package index defines the neighbor-search abstraction behind the kNN
// classifier: an index is built from training vectors and answers "the k
// positions closest to this query under this metric". Implementations in this
// module include a brute-force baseline.
package index
