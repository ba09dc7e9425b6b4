package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartEntry is the model for the 'cart' table.
type CartEntry struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	ProductID string    `json:"product_id" db:"product_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CartItem is a cart entry joined with the product's current data.
type CartItem struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	ImageURL  string          `json:"image_url"`
	Stock     int             `json:"stock"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// CartSummary is the subtotal and unit count shown on the cart badge.
type CartSummary struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	TotalItems int             `json:"total_items"`
}

// Cart is a user's cart entries plus their summary.
type Cart struct {
	Items []CartItem `json:"items"`
	CartSummary
}
