package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/adityapatri279312/excel-data-analyzer/ports"
)

// runLedger implements the RunLedgerPort interface
type runLedger struct {
	db *sqlx.DB
}

// NewRunLedger creates a ledger backed by a Postgres connection.
func NewRunLedger(db *sqlx.DB) ports.RunLedgerPort {
	return &runLedger{db: db}
}

// EnsureSchema creates the analysis_runs table when absent.
func (r *runLedger) EnsureSchema(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS analysis_runs (
		id TEXT PRIMARY KEY,
		source TEXT NOT NULL,
		report_path TEXT NOT NULL,
		row_count INTEGER NOT NULL,
		column_count INTEGER NOT NULL,
		insight_count INTEGER NOT NULL,
		chart_count INTEGER NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to ensure run ledger schema: %w", err)
	}
	return nil
}

// Record inserts one completed run.
func (r *runLedger) Record(ctx context.Context, rec ports.RunRecord) error {
	query := `INSERT INTO analysis_runs (
		id, source, report_path, row_count, column_count, insight_count, chart_count, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		rec.ID.String(), rec.Source, rec.ReportPath,
		rec.RowCount, rec.ColumnCount, rec.InsightCount, rec.ChartCount,
		time.Time(rec.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}
