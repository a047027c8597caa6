package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateOrderRequest_Valid(t *testing.T) {
	v := New()

	req := CreateOrderRequest{
		OrderID:     "o1",
		OrderNumber: "1001",
		Phone:       "+1 (555) 123-4567",
		TotalAmount: "39.90",
		Items: []Item{
			{Title: "Shirt", Quantity: 2, Options: []ItemOption{{Name: "Size", Value: "M"}}},
			{Title: "Mug", Quantity: 1},
		},
	}

	assert.NoError(t, v.Struct(req))
}

func TestCreateOrderRequest_MissingFields(t *testing.T) {
	v := New()

	req := CreateOrderRequest{
		// OrderID and OrderNumber missing
		Items: []Item{},
	}

	assert.Error(t, v.Struct(req))
}

func TestCreateOrderRequest_InvalidItem(t *testing.T) {
	v := New()

	req := CreateOrderRequest{
		OrderID:     "o1",
		OrderNumber: "1001",
		Items:       []Item{{Title: "Shirt", Quantity: 0}},
	}

	assert.Error(t, v.Struct(req), "quantity below 1 must fail")
}

func TestUpdateStatusRequest_ConfirmedAtOverride(t *testing.T) {
	v := New()

	assert.NoError(t, v.Struct(UpdateStatusRequest{Status: "CONFIRMED"}))
	assert.NoError(t, v.Struct(UpdateStatusRequest{
		Status:      "CONFIRMED",
		ConfirmedAt: "2024-05-01T10:00:00Z",
	}))
	assert.Error(t, v.Struct(UpdateStatusRequest{
		Status:      "CONFIRMED",
		ConfirmedAt: "yesterday",
	}), "override must be RFC 3339")
}
