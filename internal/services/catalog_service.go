package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/01moynul/javashop-golang/internal/database"
	"github.com/01moynul/javashop-golang/internal/models"
	"github.com/gosimple/slug"
)

const productColumns = "id, name, description, price, category, stock, image_url, created_at"

// CatalogService is the read-only view of the product catalog.
type CatalogService struct {
	db *database.DB
}

func NewCatalogService(db *database.DB) *CatalogService {
	return &CatalogService{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.Stock, &p.ImageURL, &p.CreatedAt)
	return p, err
}

// ListProducts returns every product, or those in category, or those whose
// name or description contains search (case-sensitive). Category wins when
// both are set; "All" means no category filter.
func (s *CatalogService) ListProducts(ctx context.Context, category, search string) ([]models.Product, error) {
	var queryBuilder strings.Builder
	var args []any

	queryBuilder.WriteString("SELECT " + productColumns + " FROM products")

	switch {
	case category != "" && !strings.EqualFold(category, "all"):
		queryBuilder.WriteString(" WHERE category = ?")
		args = append(args, category)
	case search != "":
		queryBuilder.WriteString(" WHERE (" + s.db.Dialect.ContainsExpr("name") +
			" OR " + s.db.Dialect.ContainsExpr("description") + ")")
		args = append(args, search, search)
	}

	queryBuilder.WriteString(" ORDER BY name, id")

	rows, err := s.db.QueryContext(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

// GetProduct returns one product or ErrNotFound.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+productColumns+" FROM products WHERE id = ?", id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("product %w", ErrNotFound)
		}
		return nil, fmt.Errorf("load product: %w", err)
	}
	return &p, nil
}

// ListCategories returns the distinct categories in the catalog.
func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT category, COUNT(*) FROM products WHERE category <> '' GROUP BY category ORDER BY category")
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.Name, &c.ProductCount); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		// "Books & Courses" -> "books-and-courses"
		c.Slug = slug.Make(c.Name)
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}
