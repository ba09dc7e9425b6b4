package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/01moynul/javashop-golang/internal/config"
	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

// Dialect names the SQL flavour of the open store.
type Dialect string

const (
	DialectSQLite Dialect = "sqlite"
	DialectMySQL  Dialect = "mysql"
)

// LockClause returns the row-lock suffix for reads inside a transaction.
// SQLite locks the whole database on write, so it has none.
func (d Dialect) LockClause() string {
	if d == DialectMySQL {
		return " FOR UPDATE"
	}
	return ""
}

// ContainsExpr returns a case-sensitive "column contains ?" predicate.
func (d Dialect) ContainsExpr(column string) string {
	if d == DialectMySQL {
		// LIKE and INSTR follow the column collation, which is case-insensitive by default.
		return fmt.Sprintf("INSTR(CAST(%s AS BINARY), CAST(? AS BINARY)) > 0", column)
	}
	return fmt.Sprintf("instr(%s, ?) > 0", column)
}

// DB is the connection pool plus the dialect it speaks.
type DB struct {
	*sql.DB
	Dialect Dialect
}

// OpenDB initializes and returns the connection pool described by cfg.
func OpenDB(cfg config.DatabaseConfig) (*DB, error) {
	dialect := Dialect(cfg.Driver)

	var driverName string
	switch dialect {
	case DialectSQLite:
		driverName = "sqlite"
	case DialectMySQL:
		driverName = "mysql"
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := sql.Open(driverName, cfg.DSN)
	if err != nil {
		return nil, err
	}

	if dialect == DialectSQLite {
		// One connection: writes serialize and an in-memory database survives for the pool's lifetime.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		log.Printf("Error connecting to %s database: %v", dialect, err)
		return nil, err
	}

	log.Printf("Database connection pool established successfully (%s)", dialect)
	return &DB{DB: db, Dialect: dialect}, nil
}
