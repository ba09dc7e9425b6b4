package handlers

import (
	"net/http"

	"github.com/01moynul/javashop-golang/internal/models"
	"github.com/gin-gonic/gin"
)

//
// --- Order Handlers (Login Required) ---
//

type CheckoutResponse struct {
	Message string `json:"message"`
	models.CheckoutResult
}

// Checkout is the handler for POST /api/orders/checkout
func (h *Handlers) Checkout(c *gin.Context) {
	// 1. --- Get User ID ---
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	// 2. --- Place Order ---
	// Order, items, stock and cart change in one transaction.
	result, err := h.CheckoutService.Checkout(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	// 3. --- Send Success Response ---
	c.JSON(http.StatusOK, CheckoutResponse{
		Message:        "Order placed successfully",
		CheckoutResult: *result,
	})
}

// GetMyOrders is the handler for GET /api/orders
func (h *Handlers) GetMyOrders(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	orders, err := h.OrderService.ListOrders(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetMyOrderDetails is the handler for GET /api/orders/:id
// Another user's order answers 404.
func (h *Handlers) GetMyOrderDetails(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	details, err := h.OrderService.GetOrderDetails(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}
