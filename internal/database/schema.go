package database

import (
	"context"
	"fmt"
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         TEXT PRIMARY KEY,
		username   TEXT NOT NULL UNIQUE,
		password   TEXT NOT NULL,
		email      TEXT NOT NULL UNIQUE,
		created_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price       DECIMAL(10,2) NOT NULL CHECK (price >= 0),
		category    TEXT NOT NULL DEFAULT '',
		stock       INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
		image_url   TEXT NOT NULL DEFAULT '',
		created_at  DATETIME NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_products_category ON products (category)`,
	`CREATE TABLE IF NOT EXISTS cart (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		product_id TEXT NOT NULL REFERENCES products (id),
		quantity   INTEGER NOT NULL CHECK (quantity > 0),
		created_at DATETIME NOT NULL,
		UNIQUE (user_id, product_id)
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id          TEXT PRIMARY KEY,
		user_id     TEXT NOT NULL,
		total_price DECIMAL(12,2) NOT NULL,
		status      TEXT NOT NULL,
		created_at  DATETIME NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_user_created ON orders (user_id, created_at)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id         TEXT PRIMARY KEY,
		order_id   TEXT NOT NULL REFERENCES orders (id),
		product_id TEXT NOT NULL REFERENCES products (id),
		position   INTEGER NOT NULL,
		quantity   INTEGER NOT NULL CHECK (quantity > 0),
		price      DECIMAL(10,2) NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items (order_id)`,
}

var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         VARCHAR(36) PRIMARY KEY,
		username   VARCHAR(64) NOT NULL,
		password   VARCHAR(255) NOT NULL,
		email      VARCHAR(255) NOT NULL,
		created_at DATETIME(6) NOT NULL,
		UNIQUE KEY uq_users_username (username),
		UNIQUE KEY uq_users_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS products (
		id          VARCHAR(36) PRIMARY KEY,
		name        VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		price       DECIMAL(10,2) NOT NULL CHECK (price >= 0),
		category    VARCHAR(128) NOT NULL DEFAULT '',
		stock       INT NOT NULL DEFAULT 0 CHECK (stock >= 0),
		image_url   VARCHAR(1024) NOT NULL DEFAULT '',
		created_at  DATETIME(6) NOT NULL,
		KEY idx_products_category (category)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS cart (
		id         VARCHAR(36) PRIMARY KEY,
		user_id    VARCHAR(36) NOT NULL,
		product_id VARCHAR(36) NOT NULL,
		quantity   INT NOT NULL CHECK (quantity > 0),
		created_at DATETIME(6) NOT NULL,
		UNIQUE KEY uq_cart_user_product (user_id, product_id),
		CONSTRAINT fk_cart_product FOREIGN KEY (product_id) REFERENCES products (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS orders (
		id          VARCHAR(36) PRIMARY KEY,
		user_id     VARCHAR(36) NOT NULL,
		total_price DECIMAL(12,2) NOT NULL,
		status      VARCHAR(32) NOT NULL,
		created_at  DATETIME(6) NOT NULL,
		KEY idx_orders_user_created (user_id, created_at)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id         VARCHAR(36) PRIMARY KEY,
		order_id   VARCHAR(36) NOT NULL,
		product_id VARCHAR(36) NOT NULL,
		position   INT NOT NULL,
		quantity   INT NOT NULL CHECK (quantity > 0),
		price      DECIMAL(10,2) NOT NULL,
		KEY idx_order_items_order (order_id),
		CONSTRAINT fk_order_items_order FOREIGN KEY (order_id) REFERENCES orders (id),
		CONSTRAINT fk_order_items_product FOREIGN KEY (product_id) REFERENCES products (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// Migrate creates the five tables if they do not exist yet. It is safe to
// run on every start.
func Migrate(ctx context.Context, db *DB) error {
	statements := sqliteSchema
	if db.Dialect == DialectMySQL {
		statements = mysqlSchema
	}

	for i, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i+1, err)
		}
	}
	return nil
}
