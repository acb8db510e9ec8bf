package ports

import (
	"context"

	"github.com/adityapatri279312/excel-data-analyzer/domain/core"
)

// RunRecord summarizes one completed analysis run for the ledger.
type RunRecord struct {
	ID           core.RunID
	Source       string
	ReportPath   string
	RowCount     int
	ColumnCount  int
	InsightCount int
	ChartCount   int
	CreatedAt    core.Timestamp
}

// RunLedgerPort persists run records. Ledger failures never abort a run;
// the report on disk is the primary artifact.
type RunLedgerPort interface {
	EnsureSchema(ctx context.Context) error
	Record(ctx context.Context, rec RunRecord) error
}
