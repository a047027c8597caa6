package validation

// ItemOption is a named option on a line item, e.g. {"name":"Size","value":"M"}.
type ItemOption struct {
	Name  string `json:"name" validate:"required"`
	Value string `json:"value"`
}

// Item represents a single order line item as sent by the commerce platform.
type Item struct {
	Title    string       `json:"title" validate:"required"`
	Quantity int          `json:"quantity" validate:"required,min=1"`
	Options  []ItemOption `json:"options,omitempty" validate:"dive"`
}

// CreateOrderRequest is the payload for POST /orders. The order id and
// display number are assigned upstream and arrive with the request.
type CreateOrderRequest struct {
	OrderID      string `json:"order_id" validate:"required"`
	OrderNumber  string `json:"order_number" validate:"required"`
	CustomerName string `json:"customer_name,omitempty"`
	Phone        string `json:"phone,omitempty"`        // raw, mixed formatting
	TotalAmount  string `json:"total_amount,omitempty"` // preserved as given
	Items        []Item `json:"items" validate:"required,min=1,dive"`
}

// UpdateStatusRequest is the payload for PATCH /orders/:id/status.
// ConfirmedAt, when present, overrides the derived confirmation timestamp.
type UpdateStatusRequest struct {
	Status      string `json:"status" validate:"required"`
	ConfirmedAt string `json:"confirmed_at,omitempty"`
}

// UpdateMessageRequest is the payload for PUT /orders/:id/message.
type UpdateMessageRequest struct {
	Message string `json:"message" validate:"required"`
}
