package engine

import (
	"sort"

	"github.com/adityapatri279312/excel-data-analyzer/domain/table"
)

// CategoryCount pairs a category label with its frequency.
type CategoryCount struct {
	Value string
	Count int
}

// ValueCounts tallies a column's non-missing values in first-encounter
// order. Callers that want frequency order use SortByCount; the stable
// sort keeps first-encounter order between equal counts.
func ValueCounts(col table.Column) []CategoryCount {
	index := make(map[string]int)
	counts := make([]CategoryCount, 0)
	for _, v := range col.Values {
		if v.IsMissing() {
			continue
		}
		label := v.Label()
		if i, seen := index[label]; seen {
			counts[i].Count++
			continue
		}
		index[label] = len(counts)
		counts = append(counts, CategoryCount{Value: label, Count: 1})
	}
	return counts
}

// SortByCount orders counts by descending frequency, stable across ties.
func SortByCount(counts []CategoryCount) {
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
}
