package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckStock(t *testing.T) {
	product := &ProductSummary{
		ID:       1,
		Title:    "Mechanical Keyboard",
		Price:    decimal.RequireFromString("49.99"),
		InStock:  true,
		Quantity: 5,
	}

	tests := []struct {
		name      string
		product   *ProductSummary
		quantity  int
		wantField string
	}{
		{"within stock", product, 3, ""},
		{"exactly at stock", product, 5, ""},
		{"zero quantity", product, 0, "quantity"},
		{"negative quantity", product, -2, "quantity"},
		{"exceeds stock", product, 6, "quantity"},
		{
			"flagged out of stock",
			&ProductSummary{ID: 2, InStock: false, Quantity: 10},
			1,
			"product",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckStock(tt.product, tt.quantity)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestItemTotal(t *testing.T) {
	price := decimal.RequireFromString("10.00")
	assert.True(t, ItemTotal(price, 3).Equal(decimal.RequireFromString("30.00")))

	// decimal arithmetic must not drift the way floats do
	price = decimal.RequireFromString("0.10")
	assert.True(t, ItemTotal(price, 3).Equal(decimal.RequireFromString("0.30")))

	assert.True(t, ItemTotal(decimal.Zero, 7).IsZero())
}
