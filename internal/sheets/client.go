package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	sheetsv4 "google.golang.org/api/sheets/v4"
)

// Client implements API against the Google Sheets v4 service.
type Client struct {
	svc           *sheetsv4.Service
	spreadsheetID string
}

// NewClient opens the spreadsheet backend described by cfg.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	opts := []option.ClientOption{option.WithScopes(sheetsv4.SpreadsheetsScope)}
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	svc, err := sheetsv4.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &Client{svc: svc, spreadsheetID: cfg.SpreadsheetID}, nil
}

func (c *Client) ReadRange(ctx context.Context, rangeSpec string) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rangeSpec).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read range %s: %w", rangeSpec, err)
	}
	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (c *Client) WriteRange(ctx context.Context, rangeSpec string, rows [][]string) error {
	vr := &sheetsv4.ValueRange{Values: toValues(rows)}
	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, rangeSpec, vr).
		ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("write range %s: %w", rangeSpec, err)
	}
	return nil
}

func (c *Client) AppendRow(ctx context.Context, rangeSpec string, row []string) error {
	vr := &sheetsv4.ValueRange{Values: toValues([][]string{row})}
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, rangeSpec, vr).
		ValueInputOption("RAW").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append row to %s: %w", rangeSpec, err)
	}
	return nil
}

func (c *Client) ListSheets(ctx context.Context) ([]string, error) {
	resp, err := c.svc.Spreadsheets.Get(c.spreadsheetID).
		Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("list sheets: %w", err)
	}
	titles := make([]string, 0, len(resp.Sheets))
	for _, sh := range resp.Sheets {
		if sh.Properties != nil {
			titles = append(titles, sh.Properties.Title)
		}
	}
	return titles, nil
}

func (c *Client) CreateSheet(ctx context.Context, title string) error {
	req := &sheetsv4.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsv4.Request{{
			AddSheet: &sheetsv4.AddSheetRequest{
				Properties: &sheetsv4.SheetProperties{Title: title},
			},
		}},
	}
	if _, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("create sheet %s: %w", title, err)
	}
	return nil
}

func toValues(rows [][]string) [][]interface{} {
	out := make([][]interface{}, len(rows))
	for i, row := range rows {
		vals := make([]interface{}, len(row))
		for j, cell := range row {
			vals[j] = cell
		}
		out[i] = vals
	}
	return out
}
