package ledger

import (
	"context"

	"github.com/mejo-sal/new-glam/internal/sheets"
)

// countingAPI wraps a sheets.API and counts calls per operation, so tests
// can assert that failed lookups perform zero writes.
type countingAPI struct {
	sheets.API
	readCalls   int
	writeCalls  int
	appendCalls int
}

func (c *countingAPI) ReadRange(ctx context.Context, rangeSpec string) ([][]string, error) {
	c.readCalls++
	return c.API.ReadRange(ctx, rangeSpec)
}

func (c *countingAPI) WriteRange(ctx context.Context, rangeSpec string, rows [][]string) error {
	c.writeCalls++
	return c.API.WriteRange(ctx, rangeSpec, rows)
}

func (c *countingAPI) AppendRow(ctx context.Context, rangeSpec string, row []string) error {
	c.appendCalls++
	return c.API.AppendRow(ctx, rangeSpec, row)
}
