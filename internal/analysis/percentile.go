package analysis

import "math"

// summaryPercentiles are the percentiles reported for every numeric column.
var summaryPercentiles = []float64{0, 1, 5, 25, 50, 75, 95, 99, 100}

// percentile returns the p-th percentile (0 <= p <= 100) of sorted using
// linear interpolation between closest ranks (Hyndman & Fan type 7).
// Returns NaN for an empty slice.
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[n-1]
	}
	rank := p / 100 * float64(n-1)
	lower := int(rank)
	upper := lower + 1
	if upper >= n {
		return sorted[lower]
	}
	weight := rank - float64(lower)
	return sorted[lower] + weight*(sorted[upper]-sorted[lower])
}
