package engine

import (
	"github.com/adityapatri279312/excel-data-analyzer/domain/analysis"
	"github.com/adityapatri279312/excel-data-analyzer/domain/core"
)

// AssembleReport composes the five fixed sections in order: overview,
// column table, statistics, insights, chart gallery. Empty statistics or
// insights leave their section out entirely rather than rendering empty.
func AssembleReport(
	runID core.RunID,
	prof analysis.TableProfile,
	descriptive []analysis.DescriptiveStats,
	insights []analysis.Insight,
	charts []analysis.ResolvedChart,
) *analysis.Report {
	report := &analysis.Report{
		RunID:       runID,
		GeneratedAt: core.Now(),
		Overview: analysis.Overview{
			Rows:    prof.RowCount,
			Columns: prof.ColumnCount,
		},
		Columns: prof.Columns,
	}

	if len(descriptive) > 0 {
		report.Stats = descriptive
	}
	if len(insights) > 0 {
		report.Insights = insights
	}
	if len(charts) > 0 {
		report.Charts = charts
	}
	return report
}
