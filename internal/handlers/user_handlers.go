package handlers

import (
	"net/http"

	"github.com/01moynul/javashop-golang/internal/models"
	"github.com/gin-gonic/gin"
)

// --- User Registration ---

// RegisterInput is the body of POST /api/auth/register. It is separate from
// models.User because we never accept an id or hash from the client.
type RegisterInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	Email    string `json:"email" binding:"required,email"`
}

type RegisterResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}

// Register is the handler for POST /api/auth/register
func (h *Handlers) Register(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	// 2. --- Create User ---
	user, err := h.AuthService.Register(c.Request.Context(), input.Username, input.Password, input.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	// 3. --- Send Success Response ---
	// The password hash is hidden by its json:"-" tag.
	c.JSON(http.StatusCreated, RegisterResponse{
		Message: "User registered successfully",
		User:    user,
	})
}

// --- User Login ---

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login is the handler for POST /api/auth/login
func (h *Handlers) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.AuthService.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// --- Account ---

type MeResponse struct {
	User    *models.User           `json:"user"`
	Summary *models.AccountSummary `json:"summary"`
}

// Me is the handler for GET /api/auth/me
func (h *Handlers) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.AuthService.Profile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	summary, err := h.OrderService.AccountSummary(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MeResponse{User: user, Summary: summary})
}
