package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	// OrderStatusProcessing is the status of every order created by checkout.
	OrderStatusProcessing OrderStatus = "Processing"
)

// Order is the model for the 'orders' table.
type Order struct {
	ID         string          `json:"id" db:"id"`
	UserID     string          `json:"user_id" db:"user_id"`
	TotalPrice decimal.Decimal `json:"total_price" db:"total_price"`
	Status     OrderStatus     `json:"status" db:"status"`
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`
	ItemCount  int             `json:"item_count" db:"-"`
}

// OrderItem is the model for the 'order_items' table.
type OrderItem struct {
	ID        string          `json:"id" db:"id"`
	OrderID   string          `json:"order_id" db:"order_id"`
	ProductID string          `json:"product_id" db:"product_id"`
	Quantity  int             `json:"quantity" db:"quantity"`
	Price     decimal.Decimal `json:"price" db:"price"` // Price at the time of purchase
}

// OrderItemDetail extends OrderItem with product info for display.
type OrderItemDetail struct {
	OrderItem
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// OrderDetails is an order with its line items.
type OrderDetails struct {
	Order
	Items []OrderItemDetail `json:"items"`
}

// CheckoutResult is what checkout hands back to the caller.
type CheckoutResult struct {
	OrderID    string          `json:"order_id"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Status     OrderStatus     `json:"status"`
}

// AccountSummary holds the KPIs shown on the account page.
type AccountSummary struct {
	OrderCount    int             `json:"order_count"`
	TotalSpent    decimal.Decimal `json:"total_spent"`
	CartItemCount int             `json:"cart_item_count"`
}
