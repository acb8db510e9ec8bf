package engine

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"github.com/adityapatri279312/excel-data-analyzer/domain/analysis"
	"github.com/adityapatri279312/excel-data-analyzer/domain/table"
)

// Describe computes descriptive statistics for each numeric column with at
// least one non-missing value, in declared column order. An empty numeric
// subset yields an empty result, not an error.
func Describe(tbl *table.Table, numericColumns []string) []analysis.DescriptiveStats {
	out := make([]analysis.DescriptiveStats, 0, len(numericColumns))
	for _, name := range numericColumns {
		col, ok := tbl.Column(name)
		if !ok {
			continue
		}
		values := col.Floats()
		if len(values) == 0 {
			continue
		}
		out = append(out, describeColumn(name, values))
	}
	return out
}

func describeColumn(name string, values []float64) analysis.DescriptiveStats {
	mean, _ := stats.Mean(values)
	min, _ := stats.Min(values)
	max, _ := stats.Max(values)

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	d := analysis.DescriptiveStats{
		Column: name,
		Count:  len(values),
		Mean:   mean,
		Min:    min,
		Q25:    quantile(sorted, 0.25),
		Median: quantile(sorted, 0.50),
		Q75:    quantile(sorted, 0.75),
		Max:    max,
		Range:  max - min,
	}

	d.Std = sampleStd(values)
	d.Skewness = sampleSkewness(values)
	d.Kurtosis = sampleKurtosis(values)
	return d
}

// quantile interpolates linearly between order statistics of a sorted
// sample (the conventional default quantile definition).
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}
	h := p * float64(n-1)
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return sorted[n-1]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo])
}

// sampleStd is undefined below two samples.
func sampleStd(values []float64) analysis.Metric {
	if len(values) < 2 {
		return analysis.NotComputable()
	}
	sd, err := stats.StandardDeviationSample(values)
	if err != nil {
		return analysis.NotComputable()
	}
	return analysis.Computed(sd)
}

// sampleSkewness is the bias-corrected third standardized moment,
// undefined below three samples or for constant data.
func sampleSkewness(values []float64) analysis.Metric {
	if len(values) < 3 || isConstant(values) {
		return analysis.NotComputable()
	}
	sk := stat.Skew(values, nil)
	if math.IsNaN(sk) || math.IsInf(sk, 0) {
		return analysis.NotComputable()
	}
	return analysis.Computed(sk)
}

// sampleKurtosis is the bias-corrected excess kurtosis, undefined below
// four samples or for constant data.
func sampleKurtosis(values []float64) analysis.Metric {
	if len(values) < 4 || isConstant(values) {
		return analysis.NotComputable()
	}
	k := stat.ExKurtosis(values, nil)
	if math.IsNaN(k) || math.IsInf(k, 0) {
		return analysis.NotComputable()
	}
	return analysis.Computed(k)
}

func isConstant(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}
