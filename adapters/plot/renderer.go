package plot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"

	"github.com/adityapatri279312/excel-data-analyzer/domain/analysis"
	"github.com/adityapatri279312/excel-data-analyzer/domain/core"
	"github.com/adityapatri279312/excel-data-analyzer/domain/table"
	"github.com/adityapatri279312/excel-data-analyzer/internal/engine"
)

// Renderer rasterizes chart specs to PNG files with gonum/plot.
type Renderer struct {
	style StyleConfig
}

// NewRenderer creates a renderer with the given style configuration.
func NewRenderer(style StyleConfig) *Renderer {
	return &Renderer{style: style}
}

// Render writes one chart image under outputDir and returns its path.
// Errors are local to the chart: the caller drops the chart and keeps
// going.
func (r *Renderer) Render(ctx context.Context, spec analysis.ChartSpec, tbl *table.Table, outputDir string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", core.NewRenderError(spec.Title, err)
	}

	p := plot.New()
	p.Title.Text = spec.Title

	var err error
	switch spec.Kind {
	case analysis.ChartDistribution:
		err = r.buildHistogram(p, spec, tbl)
	case analysis.ChartCategoryCounts:
		err = r.buildBars(p, spec, tbl)
	case analysis.ChartCorrelation:
		err = r.buildHeatmap(p, spec, tbl)
	case analysis.ChartScatterPair:
		err = r.buildScatter(p, spec, tbl)
	case analysis.ChartTimeSeries:
		err = r.buildTimeSeries(p, spec, tbl)
	default:
		err = fmt.Errorf("unknown chart kind %q", spec.Kind)
	}
	if err != nil {
		return "", core.NewRenderError(spec.Title, err)
	}

	path := filepath.Join(outputDir, chartFilename(spec))
	if err := p.Save(r.style.Width, r.style.Height, path); err != nil {
		return "", core.NewRenderError(spec.Title, err)
	}
	return path, nil
}

func (r *Renderer) buildHistogram(p *plot.Plot, spec analysis.ChartSpec, tbl *table.Table) error {
	col, ok := tbl.Column(spec.Columns[0])
	if !ok {
		return fmt.Errorf("%w: %s", core.ErrUnknownColumn, spec.Columns[0])
	}
	values := col.Floats()
	if len(values) == 0 {
		return fmt.Errorf("no values to plot for %s", col.Name)
	}

	hist, err := plotter.NewHist(plotter.Values(values), r.style.HistogramBins)
	if err != nil {
		return err
	}
	p.Add(hist)
	p.X.Label.Text = col.Name
	p.Y.Label.Text = "Count"
	return nil
}

// buildBars draws category frequencies in descending order, keeping the
// top categories when the spec marks truncation.
func (r *Renderer) buildBars(p *plot.Plot, spec analysis.ChartSpec, tbl *table.Table) error {
	col, ok := tbl.Column(spec.Columns[0])
	if !ok {
		return fmt.Errorf("%w: %s", core.ErrUnknownColumn, spec.Columns[0])
	}
	counts := engine.ValueCounts(col)
	if len(counts) == 0 {
		return fmt.Errorf("no categories to plot for %s", col.Name)
	}
	engine.SortByCount(counts)
	if spec.Truncated && len(counts) > maxBars {
		counts = counts[:maxBars]
	}

	values := make(plotter.Values, len(counts))
	labels := make([]string, len(counts))
	for i, c := range counts {
		values[i] = float64(c.Count)
		labels[i] = c.Value
	}

	bars, err := plotter.NewBarChart(values, r.style.BarWidth)
	if err != nil {
		return err
	}
	p.Add(bars)
	p.NominalX(labels...)
	p.Y.Label.Text = "Count"
	return nil
}

func (r *Renderer) buildHeatmap(p *plot.Plot, spec analysis.ChartSpec, tbl *table.Table) error {
	matrix := engine.Correlations(tbl, spec.Columns)
	grid := correlationGrid{matrix: matrix}

	pal := moreland.SmoothBlueRed().Palette(255)
	heat := plotter.NewHeatMap(grid, pal)
	heat.Min = -1
	heat.Max = 1
	p.Add(heat)

	ticks := columnTicks(matrix.Columns)
	p.X.Tick.Marker = ticks
	p.Y.Tick.Marker = ticks
	return nil
}

func (r *Renderer) buildScatter(p *plot.Plot, spec analysis.ChartSpec, tbl *table.Table) error {
	colX, okX := tbl.Column(spec.Columns[0])
	colY, okY := tbl.Column(spec.Columns[1])
	if !okX || !okY {
		return fmt.Errorf("%w: %s/%s", core.ErrUnknownColumn, spec.Columns[0], spec.Columns[1])
	}

	var pts plotter.XYs
	for i := range colX.Values {
		x, ok1 := colX.Values[i].Number()
		y, ok2 := colY.Values[i].Number()
		if ok1 && ok2 {
			pts = append(pts, plotter.XY{X: x, Y: y})
		}
	}
	if len(pts) == 0 {
		return fmt.Errorf("no complete pairs to plot for %s vs %s", colX.Name, colY.Name)
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	p.Add(scatter)
	p.X.Label.Text = colX.Name
	p.Y.Label.Text = colY.Name
	return nil
}

func (r *Renderer) buildTimeSeries(p *plot.Plot, spec analysis.ChartSpec, tbl *table.Table) error {
	axis, okT := tbl.Column(spec.Columns[0])
	col, okV := tbl.Column(spec.Columns[1])
	if !okT || !okV {
		return fmt.Errorf("%w: %s/%s", core.ErrUnknownColumn, spec.Columns[0], spec.Columns[1])
	}

	var pts plotter.XYs
	for i := range axis.Values {
		t, ok1 := axis.Values[i].Time()
		v, ok2 := col.Values[i].Number()
		if ok1 && ok2 {
			pts = append(pts, plotter.XY{X: float64(t.Unix()), Y: v})
		}
	}
	if len(pts) == 0 {
		return fmt.Errorf("no timestamped values to plot for %s", col.Name)
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	p.X.Label.Text = axis.Name
	p.Y.Label.Text = col.Name
	return nil
}

const maxBars = 15

// chartFilename derives a stable image name per spec.
func chartFilename(spec analysis.ChartSpec) string {
	switch spec.Kind {
	case analysis.ChartDistribution:
		return fmt.Sprintf("distribution_%s.png", slug(spec.Columns[0]))
	case analysis.ChartCategoryCounts:
		return fmt.Sprintf("categorical_%s.png", slug(spec.Columns[0]))
	case analysis.ChartCorrelation:
		return "correlation_heatmap.png"
	case analysis.ChartScatterPair:
		return fmt.Sprintf("scatter_%s_%s.png", slug(spec.Columns[0]), slug(spec.Columns[1]))
	case analysis.ChartTimeSeries:
		return fmt.Sprintf("timeseries_%s.png", slug(spec.Columns[1]))
	default:
		return fmt.Sprintf("chart_%s.png", slug(spec.Title))
	}
}

func slug(name string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, name)
	return strings.Trim(mapped, "_")
}
