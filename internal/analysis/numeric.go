package analysis

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"

	"univariate/internal/domain"
)

// DefaultMaxBins caps the number of histogram bins for a numeric column.
const DefaultMaxBins = 20

// SummarizeNumeric computes descriptive statistics over the non-missing
// values of a numeric column. A column with no values yields NaN statistics
// rather than an error.
func SummarizeNumeric(col *domain.Column, maxBins int) (domain.NumericSummary, error) {
	if col.Kind != domain.Numeric {
		return domain.NumericSummary{}, fmt.Errorf("column %q is %s, not numeric", col.Name, col.Kind)
	}
	if maxBins < 1 {
		maxBins = DefaultMaxBins
	}

	present := make([]float64, 0, len(col.Numbers))
	for _, v := range col.Numbers {
		if !math.IsNaN(v) {
			present = append(present, v)
		}
	}

	sum := domain.NumericSummary{
		Count:   len(present),
		Missing: len(col.Numbers) - len(present),
	}

	sample := stats.Sample{Xs: present}
	sample.Sort()

	sum.Percentiles = make([]domain.Percentile, len(summaryPercentiles))
	for i, p := range summaryPercentiles {
		sum.Percentiles[i] = domain.Percentile{P: p, Value: percentile(sample.Xs, p)}
	}

	if sum.Count == 0 {
		nan := math.NaN()
		sum.Mean, sum.Std, sum.Min, sum.Max = nan, nan, nan, nan
		sum.P25, sum.P50, sum.P75, sum.Median, sum.Mode = nan, nan, nan, nan, nan
		return sum, nil
	}

	for _, v := range sample.Xs {
		if v == 0 {
			sum.Zeros++
		}
	}
	sum.Mean = sample.Mean()
	sum.Std = math.NaN()
	if sum.Count > 1 {
		sum.Std = sample.StdDev()
	}
	sum.Min, sum.Max = sample.Bounds()
	sum.P25 = percentile(sample.Xs, 25)
	sum.P50 = percentile(sample.Xs, 50)
	sum.P75 = percentile(sample.Xs, 75)
	sum.Median = sum.P50
	sum.Mode = modeSorted(sample.Xs)

	bins := distinctSorted(sample.Xs)
	if bins > maxBins {
		bins = maxBins
	}
	sum.Bins = Histogram(sample.Xs, bins)
	return sum, nil
}

// modeSorted returns the most frequent value of a sorted, non-empty slice.
// Ties resolve to the smallest value.
func modeSorted(sorted []float64) float64 {
	mode, best := sorted[0], 0
	run := 0
	for i, v := range sorted {
		if i > 0 && v == sorted[i-1] {
			run++
		} else {
			run = 1
		}
		if run > best {
			mode, best = v, run
		}
	}
	return mode
}
