package lengths

import "sort"

// Median returns the statistical median of values, using the lower of the
// two middle elements as the tie rule for an even-length input (not their
// average). values is not mutated; Median sorts a copy.
//
// Median of an empty slice is 0.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := n / 2
	if n%2 == 1 {
		return sorted[mid]
	}

	return sorted[mid-1]
}
