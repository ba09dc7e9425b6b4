package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

//
// --- Catalog Handlers (Public) ---
//

// ListProducts is the handler for GET /api/products?category=&search=
func (h *Handlers) ListProducts(c *gin.Context) {
	products, err := h.CatalogService.ListProducts(c.Request.Context(), c.Query("category"), c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct is the handler for GET /api/products/:id
func (h *Handlers) GetProduct(c *gin.Context) {
	product, err := h.CatalogService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// ListCategories is the handler for GET /api/categories
func (h *Handlers) ListCategories(c *gin.Context) {
	categories, err := h.CatalogService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}
