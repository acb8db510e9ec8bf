package table

import (
	"fmt"

	"github.com/adityapatri279312/excel-data-analyzer/domain/core"
)

func errUnequalColumns(firstName string, firstLen int, name string, length int) error {
	return core.NewSchemaError(fmt.Sprintf(
		"column %q has %d rows but %q has %d", firstName, firstLen, name, length))
}
