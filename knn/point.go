package knn

// FeatureVector is an ordered list of numeric attributes.
type FeatureVector []float64

// Clone returns a copy of v.
func (v FeatureVector) Clone() FeatureVector {
	if v == nil {
		return nil
	}
	return append(FeatureVector(nil), v...)
}

// DataPoint pairs a feature vector with its label. L may be an open type such
// as string or a closed enumeration of a few constants.
type DataPoint[L comparable] struct {
	Features FeatureVector
	Label    L
}

// NewDataPoint creates a DataPoint holding a copy of features.
func NewDataPoint[L comparable](features []float64, label L) DataPoint[L] {
	return DataPoint[L]{Features: FeatureVector(features).Clone(), Label: label}
}

// Neighbor is a training point selected for a query.
type Neighbor[L comparable] struct {
	// Index is the position of the point in the training set.
	Index    int
	Distance float64
	Label    L
}
