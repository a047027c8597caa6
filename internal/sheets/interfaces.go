package sheets

import "context"

// API is the narrow contract the ledger needs from the spreadsheet backend.
// Range specs use A1 notation ("Orders!A2:J"). Implementations may omit
// trailing empty cells and rows from ReadRange results.
type API interface {
	ReadRange(ctx context.Context, rangeSpec string) ([][]string, error)
	WriteRange(ctx context.Context, rangeSpec string, rows [][]string) error
	AppendRow(ctx context.Context, rangeSpec string, row []string) error
	ListSheets(ctx context.Context) ([]string, error)
	CreateSheet(ctx context.Context, title string) error
}
