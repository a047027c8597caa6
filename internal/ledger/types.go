package ledger

import (
	"fmt"
	"strings"
)

// Order statuses. The ledger enforces no closed set; callers may write
// other values (e.g. CANCELLED) and the ledger stores them as given.
const (
	StatusPendingConfirmation = "PENDING_CONFIRMATION"
	StatusConfirmed           = "CONFIRMED"
)

// Column layout of an order row. The header row at position 1 carries the
// same names in the same order; everything below it is data.
const (
	colOrderID = iota
	colOrderNumber
	colCustomerName
	colPhone
	colTotalAmount
	colItemsSummary
	colStatus
	colLastMessage
	colConfirmedAt
	colCreatedAt

	numColumns
)

const (
	lastColumn    = "J" // column letter of colCreatedAt
	messageColumn = "H" // column letter of colLastMessage
)

// Header returns the schema field names in column order.
func Header() []string {
	return []string{
		"order_id",
		"order_number",
		"customer_name",
		"phone",
		"total_amount",
		"items_summary",
		"status",
		"last_customer_message",
		"confirmed_at",
		"created_at",
	}
}

// Record is one order row in the ledger. All fields are stored as text
// cells; timestamps are RFC 3339 strings, empty until set.
type Record struct {
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
	Customer    string `json:"customer_name,omitempty"`
	Phone       string `json:"phone,omitempty"`
	TotalAmount string `json:"total_amount,omitempty"`
	Items       string `json:"items_summary,omitempty"`
	Status      string `json:"status"`
	LastMessage string `json:"last_customer_message,omitempty"`
	ConfirmedAt string `json:"confirmed_at,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// row serializes the record into schema column order.
func (r Record) row() []string {
	out := make([]string, numColumns)
	out[colOrderID] = r.OrderID
	out[colOrderNumber] = r.OrderNumber
	out[colCustomerName] = r.Customer
	out[colPhone] = r.Phone
	out[colTotalAmount] = r.TotalAmount
	out[colItemsSummary] = r.Items
	out[colStatus] = r.Status
	out[colLastMessage] = r.LastMessage
	out[colConfirmedAt] = r.ConfirmedAt
	out[colCreatedAt] = r.CreatedAt
	return out
}

// recordFromRow deserializes a stored row. The store truncates rows at the
// last non-empty cell, so missing trailing cells read as empty strings.
func recordFromRow(row []string) Record {
	cell := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	return Record{
		OrderID:     cell(colOrderID),
		OrderNumber: cell(colOrderNumber),
		Customer:    cell(colCustomerName),
		Phone:       cell(colPhone),
		TotalAmount: cell(colTotalAmount),
		Items:       cell(colItemsSummary),
		Status:      cell(colStatus),
		LastMessage: cell(colLastMessage),
		ConfirmedAt: cell(colConfirmedAt),
		CreatedAt:   cell(colCreatedAt),
	}
}

// NewOrder is the upstream order shape handed to Append. Ids and serials
// are assigned by the commerce platform, not by this layer.
type NewOrder struct {
	OrderID     string
	OrderNumber string
	Customer    string
	Phone       string
	TotalAmount string
	Items       []LineItem
}

// LineItem is one purchased item with its selected options.
type LineItem struct {
	Title    string
	Quantity int
	Options  []ItemOption
}

// ItemOption is a named product option, e.g. {Name: "Size", Value: "M"}.
type ItemOption struct {
	Name  string
	Value string
}

// optionValue returns the value of the option with the given name, or "".
func (it LineItem) optionValue(name string) string {
	for _, opt := range it.Options {
		if opt.Name == name {
			return opt.Value
		}
	}
	return ""
}

// itemsSummary renders line items as `<title>[ (<size>)] x<qty>`, joined
// with ", ". The result is display text, not machine-parseable.
func itemsSummary(items []LineItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		var b strings.Builder
		b.WriteString(it.Title)
		if size := it.optionValue("Size"); size != "" {
			fmt.Fprintf(&b, " (%s)", size)
		}
		fmt.Fprintf(&b, " x%d", it.Quantity)
		parts = append(parts, b.String())
	}
	return strings.Join(parts, ", ")
}
