package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Product struct {
	ID          int             `json:"id"`
	SellerID    int             `json:"seller_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  int             `json:"category_id"`
	ImageURL    string          `json:"image_url"`
	InStock     bool            `json:"in_stock"`
	Quantity    int             `json:"quantity"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type ProductImage struct {
	ID        int    `json:"id"`
	ProductID int    `json:"product_id"`
	ImageURL  string `json:"image_url"`
}

// ProductDetail is the retrieve view: category, seller and extra images resolved.
type ProductDetail struct {
	Product
	Category         *Category      `json:"category"`
	Seller           *SellerSummary `json:"seller"`
	AdditionalImages []ProductImage `json:"additional_images"`
}

// ProductSummary is the slim product shape nested inside cart items.
type ProductSummary struct {
	ID       int             `json:"id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"image_url"`
	InStock  bool            `json:"in_stock"`
	Quantity int             `json:"quantity"`
}
