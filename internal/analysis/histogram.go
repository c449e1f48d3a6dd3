package analysis

import (
	"math"
	"sort"

	"univariate/internal/domain"
)

// edgeAdjust widens the outer edge so the minimum lands inside the first bin.
const edgeAdjust = 0.001

// Histogram groups sorted values into k equal-width, right-closed bins
// spanning [min, max]. A constant sample gets a single bin around its value.
// Returns nil when sorted is empty, k < 1, or the range is not finite.
func Histogram(sorted []float64, k int) []domain.Bin {
	if len(sorted) == 0 || k < 1 {
		return nil
	}
	lo, hi := sorted[0], sorted[len(sorted)-1]
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil
	}

	if lo == hi {
		adj := edgeAdjust * math.Abs(lo)
		if lo == 0 {
			adj = edgeAdjust
		}
		return []domain.Bin{{Lower: lo - adj, Upper: hi + adj, Count: len(sorted)}}
	}

	edges := make([]float64, k+1)
	step := (hi - lo) / float64(k)
	for i := range edges {
		edges[i] = lo + float64(i)*step
	}
	edges[k] = hi
	edges[0] -= (hi - lo) * edgeAdjust

	bins := make([]domain.Bin, k)
	for i := range bins {
		bins[i] = domain.Bin{Lower: edges[i], Upper: edges[i+1]}
	}
	upper := edges[1:]
	for _, v := range sorted {
		idx := sort.SearchFloat64s(upper, v)
		if idx >= k {
			idx = k - 1
		}
		bins[idx].Count++
	}
	return bins
}

// distinctSorted counts the distinct values of a sorted slice.
func distinctSorted(sorted []float64) int {
	if len(sorted) == 0 {
		return 0
	}
	n := 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1] {
			n++
		}
	}
	return n
}
