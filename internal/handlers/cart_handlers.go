package handlers

import (
	"net/http"

	"github.com/01moynul/javashop-golang/internal/models"
	"github.com/gin-gonic/gin"
)

//
// --- Cart Handlers (Login Required) ---
//

// GetCart is the handler for GET /api/cart
// It answers the bare list of entries.
func (h *Handlers) GetCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	cart, err := h.CartService.GetCart(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart.Items)
}

// GetCartSummary is the handler for GET /api/cart/summary
func (h *Handlers) GetCartSummary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	cart, err := h.CartService.GetCart(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart.CartSummary)
}

// AddToCartInput defines the JSON for adding an item to the cart.
// A missing or zero quantity adds one unit.
type AddToCartInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"gte=0,lte=10000"`
}

type AddToCartResponse struct {
	Message string            `json:"message"`
	Item    *models.CartEntry `json:"item"`
}

// AddToCart is the handler for POST /api/cart/add
func (h *Handlers) AddToCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	entry, err := h.CartService.AddToCart(c.Request.Context(), userID, input.ProductID, input.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, AddToCartResponse{Message: "Item added to cart", Item: entry})
}

// UpdateCartInput is the body of PUT /api/cart/update/:id.
// Quantity is a pointer so that an explicit 0 passes "required".
type UpdateCartInput struct {
	Quantity *int `json:"quantity" binding:"required,gte=0,lte=10000"`
}

// UpdateCartItem is the handler for PUT /api/cart/update/:id
func (h *Handlers) UpdateCartItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input UpdateCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.CartService.UpdateCartEntry(c.Request.Context(), userID, c.Param("id"), *input.Quantity); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart updated"})
}

// RemoveCartItem is the handler for DELETE /api/cart/remove/:id
func (h *Handlers) RemoveCartItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.CartService.RemoveCartEntry(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
}

// ClearCart is the handler for DELETE /api/cart/clear
func (h *Handlers) ClearCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.CartService.ClearCart(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
