package ports

import (
	"context"

	"github.com/adityapatri279312/excel-data-analyzer/domain/analysis"
	"github.com/adityapatri279312/excel-data-analyzer/domain/table"
)

// PlotterPort rasterizes one chart spec to an image file and returns the
// written location. A failed render affects only that chart; the pipeline
// drops it from the gallery and continues.
type PlotterPort interface {
	Render(ctx context.Context, spec analysis.ChartSpec, tbl *table.Table, outputDir string) (string, error)
}
