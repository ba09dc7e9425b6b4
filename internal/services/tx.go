package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/01moynul/javashop-golang/internal/database"
)

// querier is implemented by both *sql.DB and *sql.Tx, so helpers can run
// in or out of a transaction.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// withTx runs fn inside one transaction and commits only if fn succeeds.
// fn must use tx for every statement: the SQLite pool has a single connection.
func withTx(ctx context.Context, db *database.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func utcNow() time.Time {
	return time.Now().UTC()
}
