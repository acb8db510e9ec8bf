package engine

import (
	"math"
	"sort"

	"github.com/adityapatri279312/excel-data-analyzer/domain/analysis"
	"github.com/adityapatri279312/excel-data-analyzer/domain/table"
)

// Fixed heuristics of the insight rules. Constants, not configuration:
// the thresholds are part of each rule's meaning.
const (
	outlierFenceFactor   = 1.5
	strongCorrelation    = 0.7
	highSkew             = 1.0
	imbalanceDistinctCap = 10
	imbalanceShare       = 0.8
)

// Insights applies the four rule families in fixed order: outliers,
// correlations, skew, category imbalance. Each family appends zero or
// more findings in declared column order; none short-circuits another.
// Output is deterministic for a fixed table.
func Insights(tbl *table.Table, prof analysis.TableProfile) []analysis.Insight {
	insights := make([]analysis.Insight, 0)
	insights = append(insights, outlierInsights(tbl, prof)...)
	insights = append(insights, correlationInsights(tbl, prof)...)
	insights = append(insights, skewInsights(tbl, prof)...)
	insights = append(insights, imbalanceInsights(tbl, prof)...)
	return insights
}

// outlierInsights fences each numeric column at 1.5×IQR beyond Q1/Q3 and
// reports values strictly outside. The percentage uses the table's total
// row count, not the column's non-missing count.
func outlierInsights(tbl *table.Table, prof analysis.TableProfile) []analysis.Insight {
	var out []analysis.Insight
	for _, name := range prof.NumericColumns {
		col, ok := tbl.Column(name)
		if !ok {
			continue
		}
		values := col.Floats()
		if len(values) == 0 {
			continue
		}

		sorted := make([]float64, len(values))
		copy(sorted, values)
		sort.Float64s(sorted)

		q1 := quantile(sorted, 0.25)
		q3 := quantile(sorted, 0.75)
		iqr := q3 - q1
		lower := q1 - outlierFenceFactor*iqr
		upper := q3 + outlierFenceFactor*iqr

		count := 0
		for _, v := range values {
			if v < lower || v > upper {
				count++
			}
		}
		if count == 0 {
			continue
		}

		pct := float64(count) / float64(prof.RowCount) * 100
		out = append(out, analysis.Insight{
			Kind:    analysis.InsightOutliers,
			Columns: []string{name},
			Count:   count,
			Value:   pct,
		})
	}
	return out
}

// correlationInsights screens the strict upper triangle of the Pearson
// matrix so each pair appears at most once, reporting the signed r.
func correlationInsights(tbl *table.Table, prof analysis.TableProfile) []analysis.Insight {
	if len(prof.NumericColumns) < 2 {
		return nil
	}

	matrix := Correlations(tbl, prof.NumericColumns)
	var out []analysis.Insight
	for i := 0; i < len(matrix.Columns); i++ {
		for j := i + 1; j < len(matrix.Columns); j++ {
			r := matrix.At(i, j)
			if math.IsNaN(r) || math.Abs(r) <= strongCorrelation {
				continue
			}
			out = append(out, analysis.Insight{
				Kind:    analysis.InsightCorrelation,
				Columns: []string{matrix.Columns[i], matrix.Columns[j]},
				Value:   r,
			})
		}
	}
	return out
}

func skewInsights(tbl *table.Table, prof analysis.TableProfile) []analysis.Insight {
	var out []analysis.Insight
	for _, name := range prof.NumericColumns {
		col, ok := tbl.Column(name)
		if !ok {
			continue
		}
		sk := sampleSkewness(col.Floats())
		if !sk.Valid || math.Abs(sk.Val) <= highSkew {
			continue
		}
		out = append(out, analysis.Insight{
			Kind:    analysis.InsightSkew,
			Columns: []string{name},
			Value:   sk.Val,
		})
	}
	return out
}

// imbalanceInsights flags low-cardinality categorical columns where one
// category holds strictly more than 80% of the non-missing rows.
func imbalanceInsights(tbl *table.Table, prof analysis.TableProfile) []analysis.Insight {
	var out []analysis.Insight
	for _, name := range prof.CategoricalColumns {
		col, ok := tbl.Column(name)
		if !ok {
			continue
		}
		counts := ValueCounts(col)
		if len(counts) == 0 || len(counts) >= imbalanceDistinctCap {
			continue
		}

		total := 0
		top := counts[0]
		for _, c := range counts {
			total += c.Count
			if c.Count > top.Count {
				top = c
			}
		}

		share := float64(top.Count) / float64(total)
		if share <= imbalanceShare {
			continue
		}
		out = append(out, analysis.Insight{
			Kind:     analysis.InsightImbalance,
			Columns:  []string{name},
			Category: top.Value,
			Value:    share * 100,
		})
	}
	return out
}
