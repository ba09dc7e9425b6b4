package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/01moynul/javashop-golang/internal/database"
	"github.com/01moynul/javashop-golang/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const cartItemsQuery = `
	SELECT c.id, c.product_id, p.name, p.price, c.quantity, p.image_url, p.stock
	FROM cart c
	JOIN products p ON p.id = c.product_id
	WHERE c.user_id = ?
	ORDER BY c.created_at, c.id`

// MaxCartQuantity is the most units one cart entry may hold.
const MaxCartQuantity = 10000

// CartService manages the per-user pending purchase list.
type CartService struct {
	db  *database.DB
	now func() time.Time
}

func NewCartService(db *database.DB) *CartService {
	return &CartService{db: db, now: utcNow}
}

// loadCartItems reads a user's cart joined with current product data.
// lock is appended to the query; pass "" outside a transaction.
func loadCartItems(ctx context.Context, q querier, userID, lock string) ([]models.CartItem, error) {
	rows, err := q.QueryContext(ctx, cartItemsQuery+lock, userID)
	if err != nil {
		return nil, fmt.Errorf("query cart: %w", err)
	}
	defer rows.Close()

	items := []models.CartItem{}
	for rows.Next() {
		var item models.CartItem
		if err := rows.Scan(&item.ID, &item.ProductID, &item.Name, &item.Price,
			&item.Quantity, &item.ImageURL, &item.Stock); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		item.LineTotal = item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cart: %w", err)
	}
	return items, nil
}

// GetCart returns the user's cart with line totals and subtotal computed
// from current product prices.
func (s *CartService) GetCart(ctx context.Context, userID string) (*models.Cart, error) {
	items, err := loadCartItems(ctx, s.db, userID, "")
	if err != nil {
		return nil, err
	}

	cart := &models.Cart{Items: items, CartSummary: models.CartSummary{Subtotal: decimal.Zero}}
	for _, item := range items {
		cart.Subtotal = cart.Subtotal.Add(item.LineTotal)
		cart.TotalItems += item.Quantity
	}
	return cart, nil
}

// AddToCart adds quantity units of a product, merging with an existing
// entry. A zero quantity means one unit.
func (s *CartService) AddToCart(ctx context.Context, userID, productID string, quantity int) (*models.CartEntry, error) {
	if productID == "" {
		return nil, fmt.Errorf("%w: product_id is required", ErrValidation)
	}
	if quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}
	if quantity > MaxCartQuantity {
		return nil, fmt.Errorf("%w: quantity must not exceed %d", ErrValidation, MaxCartQuantity)
	}
	if quantity == 0 {
		quantity = 1
	}

	var entry models.CartEntry
	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRowContext(ctx, "SELECT 1 FROM products WHERE id = ?", productID).Scan(&exists)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("product %w", ErrNotFound)
			}
			return fmt.Errorf("check product: %w", err)
		}

		if _, err := tx.ExecContext(ctx, s.upsertQuery(),
			uuid.NewString(), userID, productID, quantity, s.now()); err != nil {
			return fmt.Errorf("upsert cart entry: %w", err)
		}

		err = tx.QueryRowContext(ctx,
			"SELECT id, user_id, product_id, quantity, created_at FROM cart WHERE user_id = ? AND product_id = ?",
			userID, productID).Scan(&entry.ID, &entry.UserID, &entry.ProductID, &entry.Quantity, &entry.CreatedAt)
		if err != nil {
			return fmt.Errorf("reload cart entry: %w", err)
		}
		if entry.Quantity > MaxCartQuantity {
			return fmt.Errorf("%w: cart entry would exceed %d units", ErrValidation, MaxCartQuantity)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// upsertQuery inserts a cart entry or adds to the quantity of the existing
// (user_id, product_id) entry.
func (s *CartService) upsertQuery() string {
	if s.db.Dialect == database.DialectMySQL {
		return `INSERT INTO cart (id, user_id, product_id, quantity, created_at)
			VALUES (?, ?, ?, ?, ?)
			ON DUPLICATE KEY UPDATE quantity = quantity + VALUES(quantity)`
	}
	return `INSERT INTO cart (id, user_id, product_id, quantity, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id, product_id) DO UPDATE SET quantity = cart.quantity + excluded.quantity`
}

// UpdateCartEntry sets the quantity of one of the user's entries. A zero
// quantity removes the entry.
func (s *CartService) UpdateCartEntry(ctx context.Context, userID, entryID string, quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", ErrValidation)
	}
	if quantity > MaxCartQuantity {
		return fmt.Errorf("%w: quantity must not exceed %d", ErrValidation, MaxCartQuantity)
	}
	if quantity == 0 {
		return s.RemoveCartEntry(ctx, userID, entryID)
	}

	return withTx(ctx, s.db, func(tx *sql.Tx) error {
		// Ownership check first: MySQL reports zero affected rows for an
		// UPDATE that leaves the value unchanged.
		var owned int
		err := tx.QueryRowContext(ctx,
			"SELECT 1 FROM cart WHERE id = ? AND user_id = ?"+s.db.Dialect.LockClause(),
			entryID, userID).Scan(&owned)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("cart item %w", ErrNotFound)
			}
			return fmt.Errorf("check cart entry: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			"UPDATE cart SET quantity = ? WHERE id = ? AND user_id = ?",
			quantity, entryID, userID); err != nil {
			return fmt.Errorf("update cart entry: %w", err)
		}
		return nil
	})
}

// RemoveCartEntry deletes one of the user's entries.
func (s *CartService) RemoveCartEntry(ctx context.Context, userID, entryID string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM cart WHERE id = ? AND user_id = ?", entryID, userID)
	if err != nil {
		return fmt.Errorf("delete cart entry: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete cart entry: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("cart item %w", ErrNotFound)
	}
	return nil
}

// ClearCart deletes every entry of the user. Clearing an empty cart is not
// an error.
func (s *CartService) ClearCart(ctx context.Context, userID string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM cart WHERE user_id = ?", userID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
