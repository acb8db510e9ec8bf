package table

import (
	"testing"
	"time"
)

func TestNew_RejectsUnequalColumnLengths(t *testing.T) {
	_, err := New(
		Column{Name: "a", Values: []Value{Number(1), Number(2)}},
		Column{Name: "b", Values: []Value{Number(1)}},
	)
	if err == nil {
		t.Fatal("expected schema error for unequal column lengths")
	}
}

func TestNew_UniformColumns(t *testing.T) {
	tbl, err := New(
		Column{Name: "a", Values: []Value{Number(1), Missing()}},
		Column{Name: "b", Values: []Value{Text("x"), Text("y")}},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tbl.RowCount() != 2 {
		t.Errorf("RowCount = %d, want 2", tbl.RowCount())
	}
	if tbl.ColumnCount() != 2 {
		t.Errorf("ColumnCount = %d, want 2", tbl.ColumnCount())
	}
	if _, ok := tbl.Column("b"); !ok {
		t.Error("column b should be found")
	}
	if _, ok := tbl.Column("missing"); ok {
		t.Error("unknown column lookup should fail")
	}
}

func TestValue_Accessors(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	if v := Missing(); !v.IsMissing() {
		t.Error("Missing value should report missing")
	}

	num := Number(1.5)
	if f, ok := num.Number(); !ok || f != 1.5 {
		t.Errorf("Number() = %v, %v", f, ok)
	}
	if _, ok := num.Time(); ok {
		t.Error("numeric value should not be a time")
	}

	ts := Datetime(now)
	if got, ok := ts.Time(); !ok || !got.Equal(now) {
		t.Errorf("Time() = %v, %v", got, ok)
	}

	txt := Text("hello")
	if txt.IsMissing() {
		t.Error("text value should not be missing")
	}
}

func TestValue_Label(t *testing.T) {
	cases := []struct {
		value Value
		want  string
	}{
		{Number(3), "3"},
		{Number(2.5), "2.5"},
		{Text("blue"), "blue"},
		{Missing(), ""},
	}
	for _, tc := range cases {
		if got := tc.value.Label(); got != tc.want {
			t.Errorf("Label() = %q, want %q", got, tc.want)
		}
	}
}

func TestColumn_Helpers(t *testing.T) {
	col := Column{Name: "c", Values: []Value{
		Number(1), Missing(), Number(3), Text("x"), Missing(),
	}}

	if got := col.MissingCount(); got != 2 {
		t.Errorf("MissingCount = %d, want 2", got)
	}

	floats := col.Floats()
	if len(floats) != 2 || floats[0] != 1 || floats[1] != 3 {
		t.Errorf("Floats = %v, want [1 3]", floats)
	}

	labels := col.Labels()
	if len(labels) != 3 {
		t.Errorf("Labels = %v, want 3 entries", labels)
	}
}
