package engine

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/adityapatri279312/excel-data-analyzer/domain/analysis"
	"github.com/adityapatri279312/excel-data-analyzer/domain/table"
)

func insightsOfKind(insights []analysis.Insight, kind analysis.InsightKind) []analysis.Insight {
	var out []analysis.Insight
	for _, i := range insights {
		if i.Kind == kind {
			out = append(out, i)
		}
	}
	return out
}

func TestOutlierRule_FenceExample(t *testing.T) {
	tbl := mustTable(t, numericColumn("v", 1, 2, 3, 4, 5, 100))
	prof := Profile(tbl)

	found := insightsOfKind(Insights(tbl, prof), analysis.InsightOutliers)
	if len(found) != 1 {
		t.Fatalf("got %d outlier insights, want 1", len(found))
	}

	in := found[0]
	if in.Count != 1 {
		t.Errorf("Count = %d, want 1", in.Count)
	}
	if math.Abs(in.Value-100.0/6.0) > 1e-9 {
		t.Errorf("Value = %v, want %v", in.Value, 100.0/6.0)
	}
	if in.Columns[0] != "v" {
		t.Errorf("Columns = %v, want [v]", in.Columns)
	}
	if want := "Column 'v' has 1 outliers (16.67% of data)"; in.String() != want {
		t.Errorf("String() = %q, want %q", in.String(), want)
	}
}

func TestOutlierRule_NoOutliersNoInsight(t *testing.T) {
	tbl := mustTable(t, numericColumn("v", 1, 2, 3, 4, 5))
	prof := Profile(tbl)
	if found := insightsOfKind(Insights(tbl, prof), analysis.InsightOutliers); len(found) != 0 {
		t.Errorf("got %d outlier insights, want 0", len(found))
	}
}

func TestOutlierRule_PercentageUsesTotalRows(t *testing.T) {
	// 100 is an outlier among the 5 observed values, but the column has
	// 10 rows; the percentage denominator is the table's row count.
	tbl := mustTable(t, table.Column{Name: "v", Values: []table.Value{
		table.Number(1), table.Number(2), table.Number(3), table.Number(4), table.Number(100),
		table.Missing(), table.Missing(), table.Missing(), table.Missing(), table.Missing(),
	}})
	prof := Profile(tbl)

	found := insightsOfKind(Insights(tbl, prof), analysis.InsightOutliers)
	if len(found) != 1 {
		t.Fatalf("got %d outlier insights, want 1", len(found))
	}
	if math.Abs(found[0].Value-10.0) > 1e-9 {
		t.Errorf("Value = %v, want 10 (1 of 10 rows)", found[0].Value)
	}
}

func TestCorrelationRule_EmitsEachPairOnce(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	doubled := make([]float64, len(x))
	for i, v := range x {
		doubled[i] = 2 * v
	}
	tbl := mustTable(t,
		numericColumn("x", x...),
		numericColumn("y", 3, 1, 2, 5, 4), // r(x,y) = 0.6
		numericColumn("z", doubled...),    // r(x,z) = 1
	)
	prof := Profile(tbl)

	found := insightsOfKind(Insights(tbl, prof), analysis.InsightCorrelation)
	if len(found) != 1 {
		t.Fatalf("got %d correlation insights, want 1 (only |r|>0.7 pairs)", len(found))
	}
	in := found[0]
	if !reflect.DeepEqual(in.Columns, []string{"x", "z"}) {
		t.Errorf("Columns = %v, want [x z]", in.Columns)
	}
	if math.Abs(in.Value-1) > 1e-9 {
		t.Errorf("Value = %v, want 1", in.Value)
	}
}

func TestCorrelationRule_SignedValue(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	negated := []float64{10, 8, 6, 4, 2}
	tbl := mustTable(t, numericColumn("up", x...), numericColumn("down", negated...))
	prof := Profile(tbl)

	found := insightsOfKind(Insights(tbl, prof), analysis.InsightCorrelation)
	if len(found) != 1 {
		t.Fatalf("got %d correlation insights, want 1", len(found))
	}
	if found[0].Value >= 0 {
		t.Errorf("Value = %v, want negative r", found[0].Value)
	}
	if !strings.Contains(found[0].String(), "r = -1.00") {
		t.Errorf("String() = %q, want signed r", found[0].String())
	}
}

func TestCorrelationRule_RequiresTwoNumericColumns(t *testing.T) {
	tbl := mustTable(t, numericColumn("only", 1, 2, 3))
	prof := Profile(tbl)
	if found := insightsOfKind(Insights(tbl, prof), analysis.InsightCorrelation); len(found) != 0 {
		t.Errorf("got %d correlation insights, want 0", len(found))
	}
}

func TestSkewRule_Direction(t *testing.T) {
	tbl := mustTable(t,
		numericColumn("right", 1, 1, 1, 1, 10),
		numericColumn("left", -10, 1, 1, 1, 1),
		numericColumn("flat", 1, 2, 3, 4, 5),
	)
	prof := Profile(tbl)

	found := insightsOfKind(Insights(tbl, prof), analysis.InsightSkew)
	if len(found) != 2 {
		t.Fatalf("got %d skew insights, want 2", len(found))
	}
	if found[0].Columns[0] != "right" || !strings.Contains(found[0].String(), "skewed to the right") {
		t.Errorf("first skew insight = %q", found[0].String())
	}
	if found[1].Columns[0] != "left" || !strings.Contains(found[1].String(), "skewed to the left") {
		t.Errorf("second skew insight = %q", found[1].String())
	}
}

func TestImbalanceRule_StrictBoundary(t *testing.T) {
	// 4 of 5 is exactly 80%: must not trigger. 5 of 6 is ~83.3%: must.
	tbl := mustTable(t,
		textColumn("even", "x", "x", "x", "x", "y", ""),
		textColumn("tilted", "x", "x", "x", "x", "x", "y"),
	)
	prof := Profile(tbl)

	found := insightsOfKind(Insights(tbl, prof), analysis.InsightImbalance)
	if len(found) != 1 {
		t.Fatalf("got %d imbalance insights, want 1", len(found))
	}
	in := found[0]
	if in.Columns[0] != "tilted" || in.Category != "x" {
		t.Errorf("insight = %+v", in)
	}
	if want := "Imbalanced category in 'tilted': 'x' represents 83.3% of the data"; in.String() != want {
		t.Errorf("String() = %q, want %q", in.String(), want)
	}
}

func TestImbalanceRule_DistinctValueCap(t *testing.T) {
	// 10 distinct values: rule does not apply even with a dominant one.
	values := make([]string, 0, 50)
	for i := 0; i < 41; i++ {
		values = append(values, "dominant")
	}
	for _, v := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"} {
		values = append(values, v)
	}
	tbl := mustTable(t, textColumn("wide", values...))
	prof := Profile(tbl)

	if found := insightsOfKind(Insights(tbl, prof), analysis.InsightImbalance); len(found) != 0 {
		t.Errorf("got %d imbalance insights, want 0 for 10 distinct values", len(found))
	}
}

func TestInsights_FamilyOrderAndDeterminism(t *testing.T) {
	tbl := mustTable(t,
		numericColumn("v", 1, 2, 3, 4, 5, 100),
		textColumn("cat", "x", "x", "x", "x", "x", "y"),
	)
	prof := Profile(tbl)

	first := Insights(tbl, prof)
	second := Insights(tbl, prof)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("insights must be deterministic for a fixed table")
	}

	// Outlier family precedes skew, which precedes imbalance.
	var kinds []analysis.InsightKind
	for _, in := range first {
		kinds = append(kinds, in.Kind)
	}
	want := []analysis.InsightKind{analysis.InsightOutliers, analysis.InsightSkew, analysis.InsightImbalance}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("kinds = %v, want %v", kinds, want)
	}
}
