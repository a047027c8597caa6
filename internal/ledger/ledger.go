package ledger

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/mejo-sal/new-glam/internal/sheets"
)

// ErrNotFound reports that no row carries the requested order id. It is a
// distinct outcome from store failure; callers treat it as an empty result.
var ErrNotFound = errors.New("order not found")

// Ledger is the access layer over the order sheet. It is safe for a single
// logical caller; concurrent status transitions on the same order follow
// last-write-wins at full-row granularity (see UpdateStatus).
type Ledger struct {
	api        sheets.API
	sheet      string
	matchPhone PhoneMatcher
	nowFunc    func() time.Time
}

// New returns a Ledger over the named sheet.
func New(api sheets.API, sheetName string) *Ledger {
	return &Ledger{
		api:        api,
		sheet:      sheetName,
		matchPhone: DefaultPhoneMatch,
		nowFunc:    time.Now,
	}
}

func (l *Ledger) headerRange() string { return fmt.Sprintf("%s!A1:%s1", l.sheet, lastColumn) }
func (l *Ledger) appendRange() string { return fmt.Sprintf("%s!A:%s", l.sheet, lastColumn) }
func (l *Ledger) dataRange() string   { return fmt.Sprintf("%s!A2:%s", l.sheet, lastColumn) }
func (l *Ledger) idColumn() string    { return fmt.Sprintf("%s!A2:A", l.sheet) }
func (l *Ledger) rowRange(row int) string {
	return fmt.Sprintf("%s!A%d:%s%d", l.sheet, row, lastColumn, row)
}
func (l *Ledger) messageCell(row int) string {
	return fmt.Sprintf("%s!%s%d", l.sheet, messageColumn, row)
}

func (l *Ledger) now() string {
	return l.nowFunc().UTC().Format(time.RFC3339)
}

// EnsureSheet provisions the order sheet: it creates the tab if missing and
// writes the header row when absent or divergent. Data rows are never
// touched. Must succeed before any other operation is used.
func (l *Ledger) EnsureSheet(ctx context.Context) error {
	titles, err := l.api.ListSheets(ctx)
	if err != nil {
		return fmt.Errorf("list sheets: %w", err)
	}
	if !slices.Contains(titles, l.sheet) {
		if err := l.api.CreateSheet(ctx, l.sheet); err != nil {
			return fmt.Errorf("create sheet: %w", err)
		}
	}
	rows, err := l.api.ReadRange(ctx, l.headerRange())
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	if len(rows) > 0 && slices.Equal(rows[0], Header()) {
		return nil
	}
	if err := l.api.WriteRange(ctx, l.headerRange(), [][]string{Header()}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	return nil
}

// Append records a new order with status PENDING_CONFIRMATION and a fresh
// created_at. It does not check for an existing row with the same order id:
// a caller retrying without idempotency protection appends a second row.
func (l *Ledger) Append(ctx context.Context, o NewOrder) (Record, error) {
	rec := Record{
		OrderID:     o.OrderID,
		OrderNumber: o.OrderNumber,
		Customer:    o.Customer,
		Phone:       o.Phone,
		TotalAmount: o.TotalAmount,
		Items:       itemsSummary(o.Items),
		Status:      StatusPendingConfirmation,
		CreatedAt:   l.now(),
	}
	if err := l.api.AppendRow(ctx, l.appendRange(), rec.row()); err != nil {
		return Record{}, fmt.Errorf("append order %s: %w", o.OrderID, err)
	}
	return rec, nil
}

// FindRow scans the id column and returns the 1-based sheet row of the
// first exact match, or ErrNotFound. Linear in the number of rows; fine at
// the few-thousand-row scale this ledger is meant for.
func (l *Ledger) FindRow(ctx context.Context, orderID string) (int, error) {
	rows, err := l.api.ReadRange(ctx, l.idColumn())
	if err != nil {
		return 0, fmt.Errorf("read id column: %w", err)
	}
	for i, row := range rows {
		if len(row) > 0 && row[0] == orderID {
			return i + 2, nil
		}
	}
	return 0, ErrNotFound
}

// StatusOverride carries optional explicit values for a status transition.
type StatusOverride struct {
	// ConfirmedAt, when non-empty, is written verbatim and wins over both
	// the derived timestamp and any value already present.
	ConfirmedAt string
}

// UpdateStatus sets the order's status via read-modify-write of the full
// row. On the first transition to CONFIRMED an empty confirmed_at is set to
// now; an override value always wins. There is no version check: if two
// transitions race, the later write silently wins at row granularity.
func (l *Ledger) UpdateStatus(ctx context.Context, orderID, status string, override *StatusOverride) (Record, error) {
	row, err := l.FindRow(ctx, orderID)
	if err != nil {
		return Record{}, err
	}
	cells, err := l.api.ReadRange(ctx, l.rowRange(row))
	if err != nil {
		return Record{}, fmt.Errorf("read order %s: %w", orderID, err)
	}
	var rec Record
	if len(cells) > 0 {
		rec = recordFromRow(cells[0])
	}
	rec.Status = status
	if status == StatusConfirmed && rec.ConfirmedAt == "" {
		rec.ConfirmedAt = l.now()
	}
	if override != nil && override.ConfirmedAt != "" {
		rec.ConfirmedAt = override.ConfirmedAt
	}
	if err := l.api.WriteRange(ctx, l.rowRange(row), [][]string{rec.row()}); err != nil {
		return Record{}, fmt.Errorf("write order %s: %w", orderID, err)
	}
	return rec, nil
}

// UpdateLastMessage writes the message into the single last_customer_message
// cell. Being a one-cell write, it cannot clobber fields written by a
// concurrent full-row update.
func (l *Ledger) UpdateLastMessage(ctx context.Context, orderID, message string) error {
	row, err := l.FindRow(ctx, orderID)
	if err != nil {
		return err
	}
	if err := l.api.WriteRange(ctx, l.messageCell(row), [][]string{{message}}); err != nil {
		return fmt.Errorf("write message for %s: %w", orderID, err)
	}
	return nil
}

// FindPendingByPhone resolves the most recent PENDING_CONFIRMATION order
// whose stored phone matches the given one. Rows are scanned newest-first,
// but the created_at timestamp is the authoritative tie-break in case rows
// are not in strict chronological order. Returns (nil, nil) when no row
// qualifies.
func (l *Ledger) FindPendingByPhone(ctx context.Context, phone string) (*Record, error) {
	rows, err := l.api.ReadRange(ctx, l.dataRange())
	if err != nil {
		return nil, fmt.Errorf("read orders: %w", err)
	}
	var best *Record
	for i := len(rows) - 1; i >= 0; i-- {
		rec := recordFromRow(rows[i])
		if rec.Status != StatusPendingConfirmation {
			continue
		}
		if !l.matchPhone(rec.Phone, phone) {
			continue
		}
		// RFC 3339 strings order correctly lexicographically
		if best == nil || rec.CreatedAt > best.CreatedAt {
			r := rec
			best = &r
		}
	}
	return best, nil
}
