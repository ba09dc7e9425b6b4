package services

import (
	"context"
	"testing"
	"time"

	"github.com/01moynul/javashop-golang/internal/config"
	"github.com/01moynul/javashop-golang/internal/database"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// newTestDB opens a private in-memory SQLite database with the schema applied.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.OpenDB(config.DatabaseConfig{
		Driver: "sqlite",
		DSN:    "file::memory:?_pragma=foreign_keys(1)",
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(context.Background(), db))
	return db
}

type productFixture struct {
	Name        string
	Description string
	Price       string
	Category    string
	Stock       int
}

func createProduct(t *testing.T, db *database.DB, p productFixture) string {
	t.Helper()
	id := uuid.NewString()
	_, err := db.Exec(
		`INSERT INTO products (id, name, description, price, category, stock, image_url, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, '', ?)`,
		id, p.Name, p.Description, decimal.RequireFromString(p.Price), p.Category, p.Stock, time.Now().UTC())
	require.NoError(t, err)
	return id
}

func productStock(t *testing.T, db *database.DB, id string) int {
	t.Helper()
	var stock int
	require.NoError(t, db.QueryRow("SELECT stock FROM products WHERE id = ?", id).Scan(&stock))
	return stock
}

func countRows(t *testing.T, db *database.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

// fixedClock returns a clock that starts at start and moves one second per call.
func fixedClock(start time.Time) func() time.Time {
	current := start.Add(-time.Second)
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type stubIssuer struct {
	err error
}

func (s stubIssuer) GenerateToken(userID, username string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "token-for-" + userID, nil
}
