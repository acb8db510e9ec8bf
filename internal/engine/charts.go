package engine

import (
	"fmt"
	"math"

	"github.com/adityapatri279312/excel-data-analyzer/domain/analysis"
	"github.com/adityapatri279312/excel-data-analyzer/domain/table"
)

// Fixed limits of the chart battery.
const (
	maxDistributionCharts = 10
	maxCategoryCharts     = 10
	maxCategoryDistinct   = 30
	maxCategoryBars       = 15
	maxScatterCharts      = 5
	maxTimeSeriesCharts   = 3

	// Scatter pairs use a looser screen than the 0.7 correlation
	// insight; the two thresholds are independent.
	scatterCorrelation = 0.5
)

// SelectCharts decides which charts to emit from the table's shape. Pure
// decision logic: specs only, rendering belongs to the plotting adapter.
// Order is fixed: distributions, category counts, heatmap, scatter pairs,
// time series.
func SelectCharts(tbl *table.Table, prof analysis.TableProfile) []analysis.ChartSpec {
	specs := make([]analysis.ChartSpec, 0)
	specs = append(specs, distributionSpecs(prof)...)
	specs = append(specs, categorySpecs(tbl, prof)...)
	specs = append(specs, heatmapSpecs(prof)...)
	specs = append(specs, scatterSpecs(tbl, prof)...)
	specs = append(specs, timeSeriesSpecs(prof)...)
	return specs
}

func distributionSpecs(prof analysis.TableProfile) []analysis.ChartSpec {
	var specs []analysis.ChartSpec
	for _, name := range prof.NumericColumns {
		if len(specs) == maxDistributionCharts {
			break
		}
		specs = append(specs, analysis.ChartSpec{
			Kind:    analysis.ChartDistribution,
			Title:   fmt.Sprintf("Distribution of %s", name),
			Columns: []string{name},
		})
	}
	return specs
}

// categorySpecs considers only the first 10 categorical columns and keeps
// those with fewer than 30 distinct values. Above 15 distinct values the
// chart is restricted to the top 15 by frequency and the title says so.
func categorySpecs(tbl *table.Table, prof analysis.TableProfile) []analysis.ChartSpec {
	var specs []analysis.ChartSpec
	for i, name := range prof.CategoricalColumns {
		if i == maxCategoryCharts {
			break
		}
		col, ok := tbl.Column(name)
		if !ok {
			continue
		}
		distinct := len(ValueCounts(col))
		if distinct == 0 || distinct >= maxCategoryDistinct {
			continue
		}

		spec := analysis.ChartSpec{
			Kind:    analysis.ChartCategoryCounts,
			Title:   fmt.Sprintf("Categories in %s", name),
			Columns: []string{name},
		}
		if distinct > maxCategoryBars {
			spec.Truncated = true
			spec.Title = fmt.Sprintf("Top %d Categories in %s", maxCategoryBars, name)
		}
		specs = append(specs, spec)
	}
	return specs
}

func heatmapSpecs(prof analysis.TableProfile) []analysis.ChartSpec {
	if len(prof.NumericColumns) < 2 {
		return nil
	}
	return []analysis.ChartSpec{{
		Kind:    analysis.ChartCorrelation,
		Title:   "Correlation Heatmap",
		Columns: append([]string(nil), prof.NumericColumns...),
	}}
}

func scatterSpecs(tbl *table.Table, prof analysis.TableProfile) []analysis.ChartSpec {
	if len(prof.NumericColumns) < 2 {
		return nil
	}

	matrix := Correlations(tbl, prof.NumericColumns)
	var specs []analysis.ChartSpec
	for i := 0; i < len(matrix.Columns) && len(specs) < maxScatterCharts; i++ {
		for j := i + 1; j < len(matrix.Columns) && len(specs) < maxScatterCharts; j++ {
			r := matrix.At(i, j)
			if math.IsNaN(r) || math.Abs(r) <= scatterCorrelation {
				continue
			}
			specs = append(specs, analysis.ChartSpec{
				Kind:    analysis.ChartScatterPair,
				Title:   fmt.Sprintf("Scatter plot: %s vs %s", matrix.Columns[i], matrix.Columns[j]),
				Columns: []string{matrix.Columns[i], matrix.Columns[j]},
			})
		}
	}
	return specs
}

// timeSeriesSpecs uses the first datetime column as the shared time axis
// no matter how many datetime columns exist.
func timeSeriesSpecs(prof analysis.TableProfile) []analysis.ChartSpec {
	if len(prof.DatetimeColumns) == 0 || len(prof.NumericColumns) == 0 {
		return nil
	}

	axis := prof.DatetimeColumns[0]
	var specs []analysis.ChartSpec
	for _, name := range prof.NumericColumns {
		if len(specs) == maxTimeSeriesCharts {
			break
		}
		specs = append(specs, analysis.ChartSpec{
			Kind:    analysis.ChartTimeSeries,
			Title:   fmt.Sprintf("Time series: %s", name),
			Columns: []string{axis, name},
		})
	}
	return specs
}
