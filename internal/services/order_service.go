package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/01moynul/javashop-golang/internal/database"
	"github.com/01moynul/javashop-golang/internal/models"
	"github.com/shopspring/decimal"
)

// OrderService reads a user's order history.
type OrderService struct {
	db *database.DB
}

func NewOrderService(db *database.DB) *OrderService {
	return &OrderService{db: db}
}

// ListOrders returns the user's orders, newest first.
func (s *OrderService) ListOrders(ctx context.Context, userID string) ([]models.Order, error) {
	query := `
		SELECT o.id, o.user_id, o.total_price, o.status, o.created_at, COUNT(oi.id)
		FROM orders o
		LEFT JOIN order_items oi ON oi.order_id = o.id
		WHERE o.user_id = ?
		GROUP BY o.id, o.user_id, o.total_price, o.status, o.created_at
		ORDER BY o.created_at DESC, o.id DESC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.TotalPrice, &o.Status, &o.CreatedAt, &o.ItemCount); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	return orders, nil
}

// GetOrderDetails returns one of the user's orders with its items. An order
// owned by someone else is reported as not found.
func (s *OrderService) GetOrderDetails(ctx context.Context, userID, orderID string) (*models.OrderDetails, error) {
	var details models.OrderDetails
	err := s.db.QueryRowContext(ctx,
		"SELECT id, user_id, total_price, status, created_at FROM orders WHERE id = ? AND user_id = ?",
		orderID, userID).Scan(&details.ID, &details.UserID, &details.TotalPrice, &details.Status, &details.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("order %w", ErrNotFound)
		}
		return nil, fmt.Errorf("load order: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.price, p.name, p.image_url
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = ?
		ORDER BY oi.position`, orderID)
	if err != nil {
		return nil, fmt.Errorf("query order items: %w", err)
	}
	defer rows.Close()

	details.Items = []models.OrderItemDetail{}
	for rows.Next() {
		var item models.OrderItemDetail
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.Price,
			&item.Name, &item.ImageURL); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		details.Items = append(details.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order items: %w", err)
	}
	details.ItemCount = len(details.Items)

	return &details, nil
}

// AccountSummary returns the order count, lifetime spend and number of
// units currently in the user's cart.
func (s *OrderService) AccountSummary(ctx context.Context, userID string) (*models.AccountSummary, error) {
	summary := &models.AccountSummary{TotalSpent: decimal.Zero}

	// Totals are summed here rather than in SQL: SQLite adds DECIMAL columns
	// as floating point.
	rows, err := s.db.QueryContext(ctx, "SELECT total_price FROM orders WHERE user_id = ?", userID)
	if err != nil {
		return nil, fmt.Errorf("query order totals: %w", err)
	}
	for rows.Next() {
		var total decimal.Decimal
		if err := rows.Scan(&total); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan order total: %w", err)
		}
		summary.OrderCount++
		summary.TotalSpent = summary.TotalSpent.Add(total)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterate order totals: %w", err)
	}
	rows.Close()

	var cartUnits sql.NullInt64
	err = s.db.QueryRowContext(ctx, "SELECT SUM(quantity) FROM cart WHERE user_id = ?", userID).Scan(&cartUnits)
	if err != nil {
		return nil, fmt.Errorf("sum cart: %w", err)
	}
	summary.CartItemCount = int(cartUnits.Int64)

	return summary, nil
}
