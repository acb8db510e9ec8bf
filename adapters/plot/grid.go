package plot

import (
	"math"
	"strings"

	"gonum.org/v1/plot"

	"github.com/adityapatri279312/excel-data-analyzer/internal/engine"
)

// correlationGrid adapts a correlation matrix to plotter.GridXYZ.
// NaN entries (too few complete observations) render as zero.
type correlationGrid struct {
	matrix engine.CorrMatrix
}

func (g correlationGrid) Dims() (int, int) {
	n := len(g.matrix.Columns)
	return n, n
}

func (g correlationGrid) Z(c, r int) float64 {
	v := g.matrix.At(r, c)
	if math.IsNaN(v) {
		return 0
	}
	return v
}

func (g correlationGrid) X(c int) float64 { return float64(c) }
func (g correlationGrid) Y(r int) float64 { return float64(r) }

// columnTicks labels integer grid positions with column names.
type columnTicks []string

func (t columnTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for i, name := range t {
		pos := float64(i)
		if pos < min || pos > max {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: pos, Label: shorten(name)})
	}
	return ticks
}

func shorten(name string) string {
	const maxLabel = 12
	if len(name) <= maxLabel {
		return name
	}
	return strings.TrimSpace(name[:maxLabel-1]) + "…"
}
