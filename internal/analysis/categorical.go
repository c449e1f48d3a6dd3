package analysis

import (
	"fmt"
	"sort"

	"univariate/internal/domain"
)

// SummarizeCategorical counts the distinct non-missing values of a
// categorical column, most frequent first. Equally frequent values keep the
// order in which they first appear in the column.
func SummarizeCategorical(col *domain.Column) (domain.CategoricalSummary, error) {
	if col.Kind != domain.Categorical {
		return domain.CategoricalSummary{}, fmt.Errorf("column %q is %s, not categorical", col.Name, col.Kind)
	}

	var sum domain.CategoricalSummary
	index := make(map[string]int)
	total := 0
	for _, l := range col.Labels {
		if !l.Valid {
			sum.Missing++
			continue
		}
		total++
		if i, ok := index[l.Value]; ok {
			sum.Counts[i].Count++
			continue
		}
		index[l.Value] = len(sum.Counts)
		sum.Counts = append(sum.Counts, domain.ValueCount{Value: l.Value, Count: 1})
	}

	sort.SliceStable(sum.Counts, func(i, j int) bool {
		return sum.Counts[i].Count > sum.Counts[j].Count
	})
	for i := range sum.Counts {
		sum.Counts[i].Percent = float64(sum.Counts[i].Count) / float64(total) * 100
	}
	return sum, nil
}
