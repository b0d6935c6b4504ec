// Package knn implements a k-nearest-neighbors classifier. A Classifier owns
// an immutable set of labeled training points and predicts the label of a
// query vector by majority vote among its k closest points under a
// distance.Metric.
//
// Neighbor selection and voting are deterministic: equal distances keep
// training order, and equal vote counts go to the label whose nearest member
// is closest to the query.
package knn
