package engine

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/adityapatri279312/excel-data-analyzer/domain/table"
)

// CorrMatrix is a symmetric Pearson correlation matrix over numeric
// columns. Entries without enough complete observations are NaN, which no
// threshold rule matches.
type CorrMatrix struct {
	Columns []string
	Values  [][]float64
}

// At returns the correlation between columns i and j.
func (m CorrMatrix) At(i, j int) float64 {
	return m.Values[i][j]
}

// Correlations computes pairwise Pearson correlations over the rows where
// both columns are non-missing.
func Correlations(tbl *table.Table, numericColumns []string) CorrMatrix {
	n := len(numericColumns)
	m := CorrMatrix{
		Columns: append([]string(nil), numericColumns...),
		Values:  make([][]float64, n),
	}
	for i := range m.Values {
		m.Values[i] = make([]float64, n)
		m.Values[i][i] = 1
	}

	cols := make([]table.Column, n)
	for i, name := range numericColumns {
		cols[i], _ = tbl.Column(name)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r := pairwiseCorrelation(cols[i], cols[j])
			m.Values[i][j] = r
			m.Values[j][i] = r
		}
	}
	return m
}

func pairwiseCorrelation(a, b table.Column) float64 {
	n := len(a.Values)
	if len(b.Values) < n {
		n = len(b.Values)
	}

	xs := make([]float64, 0, n)
	ys := make([]float64, 0, n)
	for row := 0; row < n; row++ {
		x, okX := a.Values[row].Number()
		y, okY := b.Values[row].Number()
		if okX && okY {
			xs = append(xs, x)
			ys = append(ys, y)
		}
	}

	if len(xs) < 2 {
		return math.NaN()
	}
	return stat.Correlation(xs, ys, nil)
}
