package engine

import (
	"github.com/adityapatri279312/excel-data-analyzer/domain/analysis"
	"github.com/adityapatri279312/excel-data-analyzer/domain/table"
)

// Profile classifies every column once and records the table's shape.
// Pure function: the table is only read, and classification never changes
// after this point.
func Profile(tbl *table.Table) analysis.TableProfile {
	prof := analysis.TableProfile{
		RowCount:    tbl.RowCount(),
		ColumnCount: tbl.ColumnCount(),
	}

	for _, col := range tbl.Columns {
		kind := classifyColumn(col)
		prof.ColumnNames = append(prof.ColumnNames, col.Name)
		prof.Columns = append(prof.Columns, analysis.ColumnProfile{
			Name:         col.Name,
			Kind:         kind,
			MissingCount: col.MissingCount(),
		})

		switch kind {
		case table.KindNumeric:
			prof.NumericColumns = append(prof.NumericColumns, col.Name)
		case table.KindDatetime:
			prof.DatetimeColumns = append(prof.DatetimeColumns, col.Name)
		default:
			prof.CategoricalColumns = append(prof.CategoricalColumns, col.Name)
		}
	}

	return prof
}

// classifyColumn derives a column's kind from its non-missing values:
// numeric when all are numbers, datetime when all are date/times,
// categorical otherwise. A column with no observed values carries no
// evidence of either and stays categorical.
func classifyColumn(col table.Column) table.Kind {
	var numbers, times, texts int
	for _, v := range col.Values {
		if v.IsMissing() {
			continue
		}
		if _, ok := v.Number(); ok {
			numbers++
		} else if _, ok := v.Time(); ok {
			times++
		} else {
			texts++
		}
	}

	switch {
	case numbers > 0 && times == 0 && texts == 0:
		return table.KindNumeric
	case times > 0 && numbers == 0 && texts == 0:
		return table.KindDatetime
	default:
		return table.KindCategorical
	}
}
