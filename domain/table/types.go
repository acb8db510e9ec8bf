package table

import (
	"strconv"
	"time"
)

// Kind classifies a column by the values it holds.
// Derived once when a table is profiled and immutable afterwards.
type Kind string

const (
	KindNumeric     Kind = "numeric"
	KindCategorical Kind = "categorical"
	KindDatetime    Kind = "datetime"
)

type valueKind uint8

const (
	valueMissing valueKind = iota
	valueNumber
	valueTime
	valueText
)

// Value is a single cell: a number, a point in time, free text, or missing.
type Value struct {
	kind valueKind
	num  float64
	ts   time.Time
	str  string
}

// Missing returns the absent-cell value.
func Missing() Value {
	return Value{kind: valueMissing}
}

// Number wraps a numeric cell value.
func Number(v float64) Value {
	return Value{kind: valueNumber, num: v}
}

// Datetime wraps a date/time cell value.
func Datetime(t time.Time) Value {
	return Value{kind: valueTime, ts: t}
}

// Text wraps a textual cell value.
func Text(s string) Value {
	return Value{kind: valueText, str: s}
}

// IsMissing reports whether the cell is absent.
func (v Value) IsMissing() bool {
	return v.kind == valueMissing
}

// Number returns the numeric value and whether the cell holds a number.
func (v Value) Number() (float64, bool) {
	return v.num, v.kind == valueNumber
}

// Time returns the time value and whether the cell holds a date/time.
func (v Value) Time() (time.Time, bool) {
	return v.ts, v.kind == valueTime
}

// Label returns a stable string identity for the cell, used when counting
// categories. Missing cells have no label.
func (v Value) Label() string {
	switch v.kind {
	case valueNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case valueTime:
		return v.ts.Format(time.RFC3339)
	case valueText:
		return v.str
	default:
		return ""
	}
}

// Column is an ordered sequence of cells under one name.
type Column struct {
	Name   string
	Values []Value
}

// MissingCount returns the number of absent cells.
func (c Column) MissingCount() int {
	n := 0
	for _, v := range c.Values {
		if v.IsMissing() {
			n++
		}
	}
	return n
}

// Floats returns the non-missing numeric values in row order.
func (c Column) Floats() []float64 {
	out := make([]float64, 0, len(c.Values))
	for _, v := range c.Values {
		if f, ok := v.Number(); ok {
			out = append(out, f)
		}
	}
	return out
}

// Labels returns the non-missing cell labels in row order.
func (c Column) Labels() []string {
	out := make([]string, 0, len(c.Values))
	for _, v := range c.Values {
		if !v.IsMissing() {
			out = append(out, v.Label())
		}
	}
	return out
}

// Table is an ordered collection of positionally aligned columns.
// Callers own the table; analysis code only reads it.
type Table struct {
	Columns []Column
}

// New builds a table from columns, rejecting unequal column lengths.
func New(columns ...Column) (*Table, error) {
	if len(columns) > 0 {
		want := len(columns[0].Values)
		for _, col := range columns[1:] {
			if len(col.Values) != want {
				return nil, errUnequalColumns(columns[0].Name, want, col.Name, len(col.Values))
			}
		}
	}
	return &Table{Columns: columns}, nil
}

// RowCount returns the uniform row count across columns.
func (t *Table) RowCount() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Values)
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int {
	return len(t.Columns)
}

// Column looks up a column by name.
func (t *Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}
