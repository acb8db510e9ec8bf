package engine

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/adityapatri279312/excel-data-analyzer/domain/analysis"
	"github.com/adityapatri279312/excel-data-analyzer/domain/table"
	"github.com/adityapatri279312/excel-data-analyzer/ports"
)

type stubLoader struct {
	tbl *table.Table
	err error
}

func (s *stubLoader) Load(context.Context, string) (*table.Table, error) {
	return s.tbl, s.err
}

// stubPlotter fails any spec whose title contains failSubstring.
type stubPlotter struct {
	failSubstring string
	rendered      []analysis.ChartSpec
}

func (s *stubPlotter) Render(_ context.Context, spec analysis.ChartSpec, _ *table.Table, outputDir string) (string, error) {
	if s.failSubstring != "" && strings.Contains(spec.Title, s.failSubstring) {
		return "", errors.New("render exploded")
	}
	s.rendered = append(s.rendered, spec)
	return filepath.Join(outputDir, "chart.png"), nil
}

type stubWriter struct {
	report *analysis.Report
	path   string
	err    error
}

func (s *stubWriter) Write(_ context.Context, report *analysis.Report, path string) error {
	s.report = report
	s.path = path
	return s.err
}

type stubLedger struct {
	records []ports.RunRecord
	err     error
}

func (s *stubLedger) EnsureSchema(context.Context) error { return nil }

func (s *stubLedger) Record(_ context.Context, rec ports.RunRecord) error {
	s.records = append(s.records, rec)
	return s.err
}

func pipelineTable(t *testing.T) *table.Table {
	t.Helper()
	return mustTable(t,
		numericColumn("price", 1, 2, 3, 4, 5, 100),
		numericColumn("cost", 2, 4, 6, 8, 10, 200),
		textColumn("region", "north", "north", "north", "north", "north", "south"),
	)
}

func TestPipeline_Run(t *testing.T) {
	loader := &stubLoader{tbl: pipelineTable(t)}
	plotter := &stubPlotter{}
	writer := &stubWriter{}
	ledger := &stubLedger{}
	p := NewPipeline(loader, plotter, writer, ledger, zerolog.Nop())

	res, err := p.Run(context.Background(), "sales.xlsx", "out")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if want := filepath.Join("out", "data_analysis_report.md"); res.ReportPath != want {
		t.Errorf("ReportPath = %q, want %q", res.ReportPath, want)
	}
	if writer.report != res.Report {
		t.Error("writer must receive the assembled report")
	}

	rep := res.Report
	if rep.RunID == "" {
		t.Error("report must carry a run id")
	}
	if rep.Overview.Rows != 6 || rep.Overview.Columns != 3 {
		t.Errorf("overview = %+v", rep.Overview)
	}
	if len(rep.Stats) != 2 {
		t.Errorf("got %d stat blocks, want 2", len(rep.Stats))
	}
	if !rep.HasInsights() {
		t.Error("fixture table must yield insights")
	}
	if len(rep.Charts) != len(plotter.rendered) {
		t.Errorf("gallery has %d charts, plotter rendered %d", len(rep.Charts), len(plotter.rendered))
	}
	for _, c := range rep.Charts {
		if dir := filepath.Dir(c.Path); dir != filepath.Join("out", "visualizations") {
			t.Errorf("chart path %q not under the charts dir", c.Path)
		}
	}

	if len(ledger.records) != 1 {
		t.Fatalf("got %d ledger records, want 1", len(ledger.records))
	}
	rec := ledger.records[0]
	if rec.ID != rep.RunID || rec.Source != "sales.xlsx" {
		t.Errorf("ledger record = %+v", rec)
	}
	if rec.InsightCount != len(rep.Insights) || rec.ChartCount != len(rep.Charts) {
		t.Errorf("ledger counts = %+v", rec)
	}
}

func TestPipeline_LoadFailureAborts(t *testing.T) {
	loadErr := errors.New("no such file")
	writer := &stubWriter{}
	p := NewPipeline(&stubLoader{err: loadErr}, &stubPlotter{}, writer, nil, zerolog.Nop())

	if _, err := p.Run(context.Background(), "missing.xlsx", "out"); !errors.Is(err, loadErr) {
		t.Fatalf("Run err = %v, want load error", err)
	}
	if writer.report != nil {
		t.Error("no report should be written after a load failure")
	}
}

func TestPipeline_ChartFailureDropsOnlyThatChart(t *testing.T) {
	plotter := &stubPlotter{failSubstring: "Heatmap"}
	writer := &stubWriter{}
	p := NewPipeline(&stubLoader{tbl: pipelineTable(t)}, plotter, writer, nil, zerolog.Nop())

	res, err := p.Run(context.Background(), "sales.xlsx", "out")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, c := range res.Report.Charts {
		if strings.Contains(c.Title, "Heatmap") {
			t.Errorf("failed chart %q must not reach the gallery", c.Title)
		}
	}
	if len(res.Report.Charts) == 0 {
		t.Error("surviving charts must stay in the gallery")
	}
}

func TestPipeline_WriterFailureAborts(t *testing.T) {
	writeErr := errors.New("disk full")
	ledger := &stubLedger{}
	p := NewPipeline(&stubLoader{tbl: pipelineTable(t)}, &stubPlotter{}, &stubWriter{err: writeErr}, ledger, zerolog.Nop())

	if _, err := p.Run(context.Background(), "sales.xlsx", "out"); !errors.Is(err, writeErr) {
		t.Fatalf("Run err = %v, want write error", err)
	}
	if len(ledger.records) != 0 {
		t.Error("failed runs must not be recorded")
	}
}

func TestPipeline_LedgerFailureIsNonFatal(t *testing.T) {
	ledger := &stubLedger{err: errors.New("connection refused")}
	p := NewPipeline(&stubLoader{tbl: pipelineTable(t)}, &stubPlotter{}, &stubWriter{}, ledger, zerolog.Nop())

	if _, err := p.Run(context.Background(), "sales.xlsx", "out"); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestPipeline_NilLedger(t *testing.T) {
	p := NewPipeline(&stubLoader{tbl: pipelineTable(t)}, &stubPlotter{}, &stubWriter{}, nil, zerolog.Nop())
	if _, err := p.Run(context.Background(), "sales.xlsx", "out"); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestAssembleReport_OmitsEmptySections(t *testing.T) {
	prof := analysis.TableProfile{RowCount: 3, ColumnCount: 1}
	rep := AssembleReport("run-1", prof, nil, nil, nil)

	if rep.HasStats() || rep.HasInsights() {
		t.Error("empty sections must stay nil")
	}
	if rep.Charts != nil {
		t.Error("empty gallery must stay nil")
	}
	if rep.GeneratedAt.IsZero() {
		t.Error("assembly stamps the generation time")
	}
}
