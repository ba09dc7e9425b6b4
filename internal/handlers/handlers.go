package handlers

import (
	"net/http"

	"github.com/01moynul/javashop-golang/internal/middleware"
	"github.com/01moynul/javashop-golang/internal/services"
	"github.com/gin-gonic/gin"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	AuthService     *services.AuthService
	CatalogService  *services.CatalogService
	CartService     *services.CartService
	CheckoutService *services.CheckoutService
	OrderService    *services.OrderService
}

// currentUserID reads the identity set by the auth middleware, answering
// 401 itself when there is none.
func currentUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return "", false
	}
	return userID, true
}

// Ping answers the health check.
func (h *Handlers) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong!"})
}
