package ports

import (
	"context"

	"github.com/adityapatri279312/excel-data-analyzer/domain/table"
)

// LoaderPort reads a data source into an in-memory table. The core never
// re-reads the source; a run operates on one immutable snapshot.
type LoaderPort interface {
	Load(ctx context.Context, source string) (*table.Table, error)
}
