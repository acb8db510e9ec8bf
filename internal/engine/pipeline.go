package engine

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/adityapatri279312/excel-data-analyzer/domain/analysis"
	"github.com/adityapatri279312/excel-data-analyzer/domain/core"
	"github.com/adityapatri279312/excel-data-analyzer/domain/table"
	"github.com/adityapatri279312/excel-data-analyzer/ports"
)

// ReportFilename is the report document written into the output directory.
const ReportFilename = "data_analysis_report.md"

// ChartsDirname is the nested directory chart images are rendered into.
const ChartsDirname = "visualizations"

// Pipeline wires the analytic core to its collaborators: a table loader,
// a chart renderer, a report writer and an optional run ledger.
type Pipeline struct {
	loader  ports.LoaderPort
	plotter ports.PlotterPort
	writer  ports.ReportWriterPort
	ledger  ports.RunLedgerPort
	log     zerolog.Logger
}

// Result is one completed run.
type Result struct {
	Report     *analysis.Report
	ReportPath string
}

// NewPipeline builds a pipeline. The ledger may be nil when no database
// is configured.
func NewPipeline(
	loader ports.LoaderPort,
	plotter ports.PlotterPort,
	writer ports.ReportWriterPort,
	ledger ports.RunLedgerPort,
	log zerolog.Logger,
) *Pipeline {
	return &Pipeline{
		loader:  loader,
		plotter: plotter,
		writer:  writer,
		ledger:  ledger,
		log:     log,
	}
}

// Run executes one analysis: load, profile, the three independent
// analytic stages, chart rendering, assembly, serialization. A single
// chart's render failure drops that chart and continues; any other
// failure aborts the run without a report.
func (p *Pipeline) Run(ctx context.Context, source, outputDir string) (*Result, error) {
	runID := core.NewRunID()

	p.log.Info().Str("source", source).Msg("loading data")
	tbl, err := p.loader.Load(ctx, source)
	if err != nil {
		return nil, err
	}

	p.log.Info().Int("rows", tbl.RowCount()).Int("columns", tbl.ColumnCount()).
		Msg("profiling schema")
	prof := Profile(tbl)

	// The three middle stages read the same immutable snapshot and only
	// write their own results, so they can run concurrently.
	var (
		descriptive []analysis.DescriptiveStats
		insights    []analysis.Insight
		specs       []analysis.ChartSpec
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p.log.Info().Msg("calculating statistics")
		descriptive = Describe(tbl, prof.NumericColumns)
		return gctx.Err()
	})
	g.Go(func() error {
		p.log.Info().Msg("identifying trends and patterns")
		insights = Insights(tbl, prof)
		return gctx.Err()
	})
	g.Go(func() error {
		p.log.Info().Msg("selecting charts")
		specs = SelectCharts(tbl, prof)
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	chartsDir := filepath.Join(outputDir, ChartsDirname)
	charts := p.renderCharts(ctx, specs, tbl, chartsDir)

	report := AssembleReport(runID, prof, descriptive, insights, charts)

	reportPath := filepath.Join(outputDir, ReportFilename)
	p.log.Info().Str("path", reportPath).Msg("writing report")
	if err := p.writer.Write(ctx, report, reportPath); err != nil {
		return nil, err
	}

	p.recordRun(ctx, runID, source, reportPath, report)

	return &Result{Report: report, ReportPath: reportPath}, nil
}

// renderCharts resolves each spec to an image path. A failed render is
// logged and omitted from the gallery; renders already on disk stay as
// best-effort artifacts.
func (p *Pipeline) renderCharts(ctx context.Context, specs []analysis.ChartSpec, tbl *table.Table, chartsDir string) []analysis.ResolvedChart {
	charts := make([]analysis.ResolvedChart, 0, len(specs))
	for _, spec := range specs {
		path, err := p.plotter.Render(ctx, spec, tbl, chartsDir)
		if err != nil {
			p.log.Warn().Err(err).Str("chart", spec.Title).Msg("chart render failed, omitting from gallery")
			continue
		}
		charts = append(charts, analysis.ResolvedChart{Title: spec.Title, Path: path})
	}
	return charts
}

// recordRun inserts a ledger row when a ledger is configured. Ledger
// failures are logged and never fail the run.
func (p *Pipeline) recordRun(ctx context.Context, runID core.RunID, source, reportPath string, report *analysis.Report) {
	if p.ledger == nil {
		return
	}
	rec := ports.RunRecord{
		ID:           runID,
		Source:       source,
		ReportPath:   reportPath,
		RowCount:     report.Overview.Rows,
		ColumnCount:  report.Overview.Columns,
		InsightCount: len(report.Insights),
		ChartCount:   len(report.Charts),
		CreatedAt:    report.GeneratedAt,
	}
	if err := p.ledger.Record(ctx, rec); err != nil {
		p.log.Warn().Err(err).Msg("run ledger insert failed")
	}
}
