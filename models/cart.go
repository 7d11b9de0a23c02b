package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one product in a user's cart. A user holds at most one row per
// product (unique user_id + product_id); repeated adds accumulate quantity.
type CartItem struct {
	ID         int             `json:"id"`
	UserID     int             `json:"user_id"`
	ProductID  int             `json:"product_id"`
	Product    *ProductSummary `json:"product,omitempty"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
	AddedAt    time.Time       `json:"added_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

type CartSummary struct {
	ItemCount  int             `json:"item_count"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// CheckStock validates a requested cart quantity against the product as it
// stands right now. Both the in_stock flag and the available quantity are
// checked; a product flagged out of stock rejects even quantity 1.
func CheckStock(product *ProductSummary, quantity int) error {
	if quantity <= 0 {
		return &ValidationError{Field: "quantity", Message: "Quantity must be greater than zero."}
	}
	if !product.InStock {
		return &ValidationError{Field: "product", Message: "This product is not in stock."}
	}
	if quantity > product.Quantity {
		return &ValidationError{Field: "quantity", Message: fmt.Sprintf("Only %d units available.", product.Quantity)}
	}
	return nil
}

// ItemTotal is quantity times the product's current price. Totals always use
// the live price, so a price change retroactively moves cart totals.
func ItemTotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}
