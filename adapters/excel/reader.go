package excel

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/adityapatri279312/excel-data-analyzer/domain/core"
	"github.com/adityapatri279312/excel-data-analyzer/domain/table"
)

// DataReader loads Excel and CSV files into tables.
type DataReader struct{}

// NewDataReader creates a reader handling both .xlsx and .csv sources.
func NewDataReader() *DataReader {
	return &DataReader{}
}

// Load reads the source into an immutable table snapshot. The first row
// is the header; at least one data row is required.
func (r *DataReader) Load(ctx context.Context, source string) (*table.Table, error) {
	if _, err := os.Stat(source); err != nil {
		return nil, core.NewLoadError(source, err)
	}

	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(source)) {
	case ".csv":
		rows, err = readCSVRows(source)
	default:
		rows, err = readExcelRows(source)
	}
	if err != nil {
		return nil, core.NewLoadError(source, err)
	}

	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: %s needs a header row and at least one data row", core.ErrEmptyTable, source)
	}

	return buildTable(rows)
}

// readExcelRows reads the first sheet as formatted strings.
func readExcelRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	return f.GetRows(sheets[0])
}

func readCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

// buildTable turns raw string rows into typed columns. Rows shorter than
// the header keep spreadsheet semantics: the absent trailing cells are
// missing. Rows wider than the header are a schema error.
func buildTable(rows [][]string) (*table.Table, error) {
	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	columns := make([]table.Column, len(headers))
	for i, name := range headers {
		columns[i] = table.Column{
			Name:   name,
			Values: make([]table.Value, 0, len(rows)-1),
		}
	}

	for rowIdx, row := range rows[1:] {
		if len(row) > len(headers) {
			return nil, core.NewSchemaError(fmt.Sprintf(
				"row %d has %d cells but the header declares %d columns",
				rowIdx+2, len(row), len(headers)))
		}
		for colIdx := range headers {
			cell := ""
			if colIdx < len(row) {
				cell = strings.TrimSpace(row[colIdx])
			}
			columns[colIdx].Values = append(columns[colIdx].Values, coerceCell(cell))
		}
	}

	return table.New(columns...)
}
