// Package tsp — distance utilities shared by every constructor and the improver.
//
// Metric policy:
//   - All cost comparisons use the Euclidean distance TRUNCATED toward zero to
//     an integer (int64(math.Sqrt(dx²+dy²))). The truncation decides ties and
//     therefore which edges and moves are selected; it is applied uniformly to
//     Greedy, NearestNeighbor, NearestInsertion and TwoOpt so their comparisons
//     stay self-consistent.
//   - Tour lengths are sums of truncated edge lengths, so they are exact
//     integers and repeated evaluation is bit-for-bit stable.
//
// Complexity:
//   - Distance: O(1). TotalDistance / TourLength: O(len(seq)).
package tsp

import "math"

// Distance returns the Euclidean distance between p and q truncated to an integer.
func Distance(p, q City) int64 {
	return int64(euclid(p, q))
}

// euclid is the untruncated Euclidean distance.
func euclid(p, q City) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y

	return math.Sqrt(dx*dx + dy*dy)
}

// TotalDistance sums Distance over consecutive pairs of seq. The closing edge
// is included only if the caller appended the first city at the end.
// Sequences shorter than two cities have zero length.
func TotalDistance(seq []City) int64 {
	var (
		sum int64
		i   int
	)
	for i = 1; i < len(seq); i++ {
		sum += Distance(seq[i-1], seq[i])
	}

	return sum
}

// TourLength is the length of a closed tour (first city repeated at the end).
func TourLength(closed []City) int64 {
	return TotalDistance(closed)
}

// openLength is the closed length of an open sequence: the wrap-around edge
// from the last city back to the first is added without materializing it.
func openLength(open []City) int64 {
	n := len(open)
	if n < 2 {
		return 0
	}

	return TotalDistance(open) + Distance(open[n-1], open[0])
}
