package middleware

import (
	"net/http"
	"strings"

	"github.com/01moynul/javashop-golang/internal/auth"
	"github.com/gin-gonic/gin"
)

// UserIDKey is the gin context key holding the caller's user id.
const UserIDKey = "userID"

// TokenValidator checks a session token and returns its claims.
type TokenValidator interface {
	ValidateToken(tokenString string) (*auth.Claims, error)
}

// AuthMiddleware creates a gin.HandlerFunc that resolves the caller's identity.
// A bearer token always wins. Without one, the X-User-ID header is accepted
// as-is when trustUserHeader is set.
func AuthMiddleware(tokens TokenValidator, trustUserHeader bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. --- Get Authorization Header ---
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			userID := strings.TrimSpace(c.GetHeader("X-User-ID"))
			if trustUserHeader && userID != "" {
				c.Set(UserIDKey, userID)
				c.Next()
				return
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format (must be Bearer)"})
			c.Abort()
			return
		}

		// 2. --- Validate Token ---
		claims, err := tokens.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		// 3. --- Success ---
		c.Set(UserIDKey, claims.Subject)
		c.Next()
	}
}

// UserID returns the identity set by AuthMiddleware.
func UserID(c *gin.Context) (string, bool) {
	userID := c.GetString(UserIDKey)
	return userID, userID != ""
}
