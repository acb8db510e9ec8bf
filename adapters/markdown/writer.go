package markdown

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adityapatri279312/excel-data-analyzer/domain/analysis"
)

// Writer serializes a report to a markdown document. Section content and
// order come from the assembled report; this adapter owns only syntax.
type Writer struct{}

// NewWriter creates a markdown report writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write renders the document at path. Chart links are relative to the
// document so the output directory can be moved as a bundle.
func (w *Writer) Write(ctx context.Context, report *analysis.Report, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("# Data Analysis Report\n\n")
	fmt.Fprintf(&b, "*Generated on: %s*\n\n", report.GeneratedAt.String())

	writeOverview(&b, report)
	writeColumnTable(&b, report)
	if report.HasStats() {
		writeStatsTable(&b, report.Stats)
	}
	if report.HasInsights() {
		writeInsights(&b, report.Insights)
	}
	if len(report.Charts) > 0 {
		writeGallery(&b, report.Charts, filepath.Dir(path))
	}

	return os.WriteFile(path, []byte(b.String()), 0o644)
}

func writeOverview(b *strings.Builder, report *analysis.Report) {
	b.WriteString("## Dataset Overview\n\n")
	fmt.Fprintf(b, "- **Rows**: %d\n", report.Overview.Rows)
	fmt.Fprintf(b, "- **Columns**: %d\n\n", report.Overview.Columns)
}

func writeColumnTable(b *strings.Builder, report *analysis.Report) {
	b.WriteString("### Column Information\n\n")
	b.WriteString("| Column | Type | Missing Values |\n")
	b.WriteString("|--------|------|---------------|\n")
	for _, col := range report.Columns {
		pct := 0.0
		if report.Overview.Rows > 0 {
			pct = float64(col.MissingCount) / float64(report.Overview.Rows) * 100
		}
		fmt.Fprintf(b, "| %s | %s | %d (%.2f%%) |\n", col.Name, col.Kind, col.MissingCount, pct)
	}
	b.WriteString("\n")
}

// writeStatsTable lays statistics out with one column per profiled
// variable and one row per metric.
func writeStatsTable(b *strings.Builder, stats []analysis.DescriptiveStats) {
	b.WriteString("## Descriptive Statistics\n\n")

	b.WriteString("| Metric |")
	for _, s := range stats {
		fmt.Fprintf(b, " %s |", s.Column)
	}
	b.WriteString("\n|--------|")
	for _, s := range stats {
		b.WriteString(strings.Repeat("-", len(s.Column)))
		b.WriteString("|")
	}
	b.WriteString("\n")

	rows := []struct {
		name string
		cell func(analysis.DescriptiveStats) string
	}{
		{"count", func(s analysis.DescriptiveStats) string { return fmt.Sprintf("%.2f", float64(s.Count)) }},
		{"mean", func(s analysis.DescriptiveStats) string { return fmt.Sprintf("%.2f", s.Mean) }},
		{"std", func(s analysis.DescriptiveStats) string { return s.Std.Format() }},
		{"min", func(s analysis.DescriptiveStats) string { return fmt.Sprintf("%.2f", s.Min) }},
		{"max", func(s analysis.DescriptiveStats) string { return fmt.Sprintf("%.2f", s.Max) }},
		{"range", func(s analysis.DescriptiveStats) string { return fmt.Sprintf("%.2f", s.Range) }},
		{"median", func(s analysis.DescriptiveStats) string { return fmt.Sprintf("%.2f", s.Median) }},
	}
	for _, row := range rows {
		fmt.Fprintf(b, "| **%s** |", row.name)
		for _, s := range stats {
			fmt.Fprintf(b, " %s |", row.cell(s))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func writeInsights(b *strings.Builder, insights []analysis.Insight) {
	b.WriteString("## Key Insights and Trends\n\n")
	for _, insight := range insights {
		fmt.Fprintf(b, "- %s\n", insight.String())
	}
	b.WriteString("\n")
}

func writeGallery(b *strings.Builder, charts []analysis.ResolvedChart, baseDir string) {
	b.WriteString("## Visualizations\n\n")
	for _, chart := range charts {
		rel, err := filepath.Rel(baseDir, chart.Path)
		if err != nil {
			rel = chart.Path
		}
		fmt.Fprintf(b, "### %s\n\n", chart.Title)
		fmt.Fprintf(b, "![%s](%s)\n\n", chart.Title, filepath.ToSlash(rel))
	}
}
