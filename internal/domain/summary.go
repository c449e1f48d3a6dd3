package domain

import (
	"fmt"
	"strconv"
)

// Percentile is a single percentile value. P is in [0, 100].
type Percentile struct {
	P     float64
	Value float64
}

// Bin is one equal-width histogram bucket holding values v with
// Lower < v <= Upper.
type Bin struct {
	Lower float64
	Upper float64
	Count int
}

// Label renders the bin as an interval, e.g. "(10.5, 20]".
func (b Bin) Label() string {
	return fmt.Sprintf("(%s, %s]", formatEdge(b.Lower), formatEdge(b.Upper))
}

func formatEdge(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// NumericSummary holds descriptive statistics for a numeric column.
// All statistics are computed over non-missing values; when Count is zero
// every float field is NaN.
type NumericSummary struct {
	Count   int
	Missing int
	Zeros   int

	Mean   float64
	Std    float64
	Min    float64
	P25    float64
	P50    float64
	P75    float64
	Max    float64
	Median float64
	Mode   float64

	Percentiles []Percentile
	Bins        []Bin
}

// ValueCount is the frequency of one distinct categorical value.
type ValueCount struct {
	Value   string
	Count   int
	Percent float64
}

// CategoricalSummary holds value frequencies for a categorical column,
// ordered by descending count with ties in first-encountered order.
type CategoricalSummary struct {
	Counts  []ValueCount
	Missing int
}

// Distinct returns the number of distinct non-missing values.
func (s *CategoricalSummary) Distinct() int {
	return len(s.Counts)
}

// Total returns the number of non-missing values.
func (s *CategoricalSummary) Total() int {
	n := 0
	for _, vc := range s.Counts {
		n += vc.Count
	}
	return n
}

// MostFrequent returns the first value with the highest count.
func (s *CategoricalSummary) MostFrequent() (ValueCount, bool) {
	if len(s.Counts) == 0 {
		return ValueCount{}, false
	}
	return s.Counts[0], true
}

// LeastFrequent returns the first value, in frequency order, with the lowest count.
func (s *CategoricalSummary) LeastFrequent() (ValueCount, bool) {
	if len(s.Counts) == 0 {
		return ValueCount{}, false
	}
	low := s.Counts[len(s.Counts)-1].Count
	for _, vc := range s.Counts {
		if vc.Count == low {
			return vc, true
		}
	}
	return ValueCount{}, false
}
