package analysis

import (
	"fmt"

	"github.com/adityapatri279312/excel-data-analyzer/domain/core"
	"github.com/adityapatri279312/excel-data-analyzer/domain/table"
)

// Metric is a statistic that may be undefined for a given sample, e.g. the
// standard deviation of a single value. An invalid Metric is the explicit
// not-computable marker; it is never coerced to zero or NaN.
type Metric struct {
	Val   float64
	Valid bool
}

// Computed wraps a defined statistic value.
func Computed(v float64) Metric {
	return Metric{Val: v, Valid: true}
}

// NotComputable returns the undefined-statistic marker.
func NotComputable() Metric {
	return Metric{}
}

// Format renders the metric with two decimals, or "n/a" when undefined.
func (m Metric) Format() string {
	if !m.Valid {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", m.Val)
}

// ColumnProfile describes one column's declared kind and missingness.
type ColumnProfile struct {
	Name         string     `json:"name"`
	Kind         table.Kind `json:"kind"`
	MissingCount int        `json:"missing_count"`
}

// TableProfile is the schema profiler's output: table shape plus the
// ordered kind subsets the downstream engines select columns from.
type TableProfile struct {
	RowCount    int             `json:"row_count"`
	ColumnCount int             `json:"column_count"`
	ColumnNames []string        `json:"column_names"`
	Columns     []ColumnProfile `json:"columns"`

	NumericColumns     []string `json:"numeric_columns"`
	CategoricalColumns []string `json:"categorical_columns"`
	DatetimeColumns    []string `json:"datetime_columns"`
}

// DescriptiveStats holds the per-numeric-column summary statistics.
// Median duplicates the 50th percentile as its own field for report
// compatibility with the statistics table layout.
type DescriptiveStats struct {
	Column string `json:"column"`
	Count  int    `json:"count"`

	Mean   float64 `json:"mean"`
	Min    float64 `json:"min"`
	Q25    float64 `json:"q25"`
	Median float64 `json:"median"`
	Q75    float64 `json:"q75"`
	Max    float64 `json:"max"`
	Range  float64 `json:"range"`

	Std      Metric `json:"std"`
	Skewness Metric `json:"skewness"`
	Kurtosis Metric `json:"kurtosis"`
}

// InsightKind identifies which rule family produced an insight.
type InsightKind string

const (
	InsightOutliers    InsightKind = "outliers"
	InsightCorrelation InsightKind = "correlation"
	InsightSkew        InsightKind = "skew"
	InsightImbalance   InsightKind = "imbalance"
)

// Insight is a structured finding. Tests assert on the fields; the report
// uses the derived display string.
type Insight struct {
	Kind    InsightKind `json:"kind"`
	Columns []string    `json:"columns"`

	// Count is the affected row count (outlier insights only).
	Count int `json:"count,omitempty"`
	// Value carries the rule's statistic: outlier percentage, signed
	// correlation, skewness, or dominant-category percentage.
	Value float64 `json:"value"`
	// Category names the dominant value (imbalance insights only).
	Category string `json:"category,omitempty"`
}

// String derives the human-readable finding.
func (i Insight) String() string {
	switch i.Kind {
	case InsightOutliers:
		return fmt.Sprintf("Column '%s' has %d outliers (%.2f%% of data)",
			i.Columns[0], i.Count, i.Value)
	case InsightCorrelation:
		return fmt.Sprintf("Strong correlation detected between '%s' and '%s' (r = %.2f)",
			i.Columns[0], i.Columns[1], i.Value)
	case InsightSkew:
		direction := "right"
		if i.Value < 0 {
			direction = "left"
		}
		return fmt.Sprintf("Column '%s' is highly skewed to the %s (skew = %.2f)",
			i.Columns[0], direction, i.Value)
	case InsightImbalance:
		return fmt.Sprintf("Imbalanced category in '%s': '%s' represents %.1f%% of the data",
			i.Columns[0], i.Category, i.Value)
	default:
		return string(i.Kind)
	}
}

// ChartKind identifies a chart type in the fixed battery.
type ChartKind string

const (
	ChartDistribution   ChartKind = "distribution"
	ChartCategoryCounts ChartKind = "category_counts"
	ChartCorrelation    ChartKind = "correlation_heatmap"
	ChartScatterPair    ChartKind = "scatter_pair"
	ChartTimeSeries     ChartKind = "time_series"
)

// ChartSpec declares a chart to render, decoupled from the rendering
// backend. Columns lists the subject column(s): value column for
// distribution/category charts, x then y for scatter pairs, time axis
// then value column for time series.
type ChartSpec struct {
	Kind    ChartKind `json:"kind"`
	Title   string    `json:"title"`
	Columns []string  `json:"columns"`

	// Truncated marks category-count charts restricted to the most
	// frequent categories.
	Truncated bool `json:"truncated,omitempty"`
}

// ResolvedChart is a spec rendered to an image location.
type ResolvedChart struct {
	Title string `json:"title"`
	Path  string `json:"path"`
}

// Overview is the report's headline table shape.
type Overview struct {
	Rows    int `json:"rows"`
	Columns int `json:"columns"`
}

// Report bundles one run's outputs in fixed section order. Built once per
// run and never mutated after assembly.
type Report struct {
	RunID       core.RunID     `json:"run_id"`
	GeneratedAt core.Timestamp `json:"generated_at"`

	Overview Overview           `json:"overview"`
	Columns  []ColumnProfile    `json:"columns"`
	Stats    []DescriptiveStats `json:"stats,omitempty"`
	Insights []Insight          `json:"insights,omitempty"`
	Charts   []ResolvedChart    `json:"charts,omitempty"`
}

// HasStats reports whether the statistics section is present.
func (r *Report) HasStats() bool { return len(r.Stats) > 0 }

// HasInsights reports whether the insights section is present.
func (r *Report) HasInsights() bool { return len(r.Insights) > 0 }
