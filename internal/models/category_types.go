package models

// Category is a distinct value of products.category with its URL slug.
// There is no categories table; it is derived from the catalog.
type Category struct {
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	ProductCount int    `json:"product_count"`
}
