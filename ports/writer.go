package ports

import (
	"context"

	"github.com/adityapatri279312/excel-data-analyzer/domain/analysis"
)

// ReportWriterPort serializes an assembled report to a document at the
// given path. The writer owns markup syntax; the core owns section
// content and ordering.
type ReportWriterPort interface {
	Write(ctx context.Context, report *analysis.Report, path string) error
}
