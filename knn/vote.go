package knn

// vote returns the most frequent label among neighbors, which must be in
// ascending distance order. Among labels with the same count the one seen
// first, i.e. with the closest member, wins.
func vote[L comparable](neighbors []Neighbor[L]) (L, bool) {
	var zero L
	if len(neighbors) == 0 {
		return zero, false
	}
	counts := make(map[L]int, len(neighbors))
	order := make([]L, 0, len(neighbors))
	for _, n := range neighbors {
		if _, seen := counts[n.Label]; !seen {
			order = append(order, n.Label)
		}
		counts[n.Label]++
	}
	best := order[0]
	for _, label := range order[1:] {
		if counts[label] > counts[best] {
			best = label
		}
	}
	return best, true
}
