package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/01moynul/javashop-golang/internal/database"
	"github.com/01moynul/javashop-golang/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutService converts a cart into an order.
type CheckoutService struct {
	db  *database.DB
	now func() time.Time
}

func NewCheckoutService(db *database.DB) *CheckoutService {
	return &CheckoutService{db: db, now: utcNow}
}

// Checkout creates an order from the user's cart in one transaction: it
// snapshots current prices into the order items, decrements stock and
// empties the cart. Either all of it happens or none of it does.
//
// An order is rejected with ErrInsufficientStock when any product has fewer
// units than the cart asks for.
func (s *CheckoutService) Checkout(ctx context.Context, userID string) (*models.CheckoutResult, error) {
	var result models.CheckoutResult

	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		items, err := loadCartItems(ctx, tx, userID, s.db.Dialect.LockClause())
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		total := decimal.Zero
		for _, item := range items {
			if item.Stock < item.Quantity {
				return fmt.Errorf("%w for %q: requested %d, available %d",
					ErrInsufficientStock, item.Name, item.Quantity, item.Stock)
			}
			total = total.Add(item.LineTotal)
		}

		orderID := uuid.NewString()
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO orders (id, user_id, total_price, status, created_at) VALUES (?, ?, ?, ?, ?)",
			orderID, userID, total, string(models.OrderStatusProcessing), s.now()); err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		for i, item := range items {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO order_items (id, order_id, product_id, position, quantity, price) VALUES (?, ?, ?, ?, ?, ?)",
				uuid.NewString(), orderID, item.ProductID, i, item.Quantity, item.Price); err != nil {
				return fmt.Errorf("insert order item: %w", err)
			}

			if err := decrementStock(ctx, tx, item); err != nil {
				return err
			}
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM cart WHERE user_id = ?", userID); err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}

		result = models.CheckoutResult{
			OrderID:    orderID,
			TotalPrice: total,
			Status:     models.OrderStatusProcessing,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// decrementStock takes item.Quantity units off the product, refusing to go
// below zero.
func decrementStock(ctx context.Context, tx *sql.Tx, item models.CartItem) error {
	res, err := tx.ExecContext(ctx,
		"UPDATE products SET stock = stock - ? WHERE id = ? AND stock >= ?",
		item.Quantity, item.ProductID, item.Quantity)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w for %q", ErrInsufficientStock, item.Name)
	}
	return nil
}
