package excel

import (
	"strconv"
	"time"

	"github.com/adityapatri279312/excel-data-analyzer/domain/table"
)

// dateLayouts are tried in order when coercing a cell to a date/time.
// Covers ISO dates, common spreadsheet formats and excelize's default
// date rendering.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"01-02-06",
	"1/2/06 15:04",
}

// coerceCell types one trimmed cell: empty is missing, then number, then
// date/time, then text.
func coerceCell(cell string) table.Value {
	if cell == "" {
		return table.Missing()
	}
	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		return table.Number(f)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			return table.Datetime(t)
		}
	}
	return table.Text(cell)
}
