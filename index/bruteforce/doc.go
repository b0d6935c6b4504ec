// Package bruteforce provides a neighbor index that answers kNN queries by
// scoring every vector and stable-sorting by distance. The scan can be split
// across goroutines; the result is the same as the sequential scan.
package bruteforce
