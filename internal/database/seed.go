package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type seedProduct struct {
	name        string
	description string
	price       string
	category    string
	stock       int
	imageURL    string
}

var sampleProducts = []seedProduct{
	{"Ultimate Java IDE 2023", "Professional IDE with advanced debugging tools", "89.99", "Development Tools", 100, "https://images.unsplash.com/photo-1555066931-4365d14bab8c?ixlib=rb-4.0.3&auto=format&fit=crop&w=1770&q=80"},
	{"Mastering Java 17", "Comprehensive guide to Java 17 features", "34.99", "Books & Courses", 50, "https://images.unsplash.com/photo-1542831371-29b0f74f9713?ixlib=rb-4.0.3&auto=format&fit=crop&w=1770&q=80"},
	{"Spring Framework Pro", "Enterprise-grade Spring framework", "149.99", "Frameworks", 30, "https://images.unsplash.com/photo-1581094794329-16d1f2b6b9a5?ixlib=rb-4.0.3&auto=format&fit=crop&w=1770&q=80"},
	{"Enterprise Java Server", "High-performance server for Java applications", "249.99", "Server Solutions", 20, "https://images.unsplash.com/photo-1551650975-87deedd944c3?ixlib=rb-4.0.3&auto=format&fit=crop&w=1674&q=80"},
	{"Java Performance Toolkit", "Optimize your Java applications", "79.99", "Development Tools", 40, "https://images.unsplash.com/photo-1586769852836-bc069f19e1b6?ixlib=rb-4.0.3&auto=format&fit=crop&w=1770&q=80"},
	{"Java Security Essentials", "Learn to secure Java applications", "44.99", "Books & Courses", 60, "https://images.unsplash.com/photo-1495640388908-05fa85288e61?ixlib=rb-4.0.3&auto=format&fit=crop&w=1770&q=80"},
}

// Seed inserts the sample catalog when the products table is empty and
// reports how many rows it wrote.
func Seed(ctx context.Context, db *DB) (int, error) {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM products").Scan(&count); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO products (id, name, description, price, category, stock, image_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	now := time.Now().UTC()
	for _, p := range sampleProducts {
		_, err := tx.ExecContext(ctx, query,
			uuid.NewString(), p.name, p.description, decimal.RequireFromString(p.price),
			p.category, p.stock, p.imageURL, now)
		if err != nil {
			return 0, fmt.Errorf("seed product %q: %w", p.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	log.Printf("Seeded %d sample products", len(sampleProducts))
	return len(sampleProducts), nil
}
