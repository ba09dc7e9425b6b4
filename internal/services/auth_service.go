package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/01moynul/javashop-golang/internal/database"
	"github.com/01moynul/javashop-golang/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TokenIssuer signs a session token for a logged-in user.
type TokenIssuer interface {
	GenerateToken(userID, username string) (string, error)
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// AuthService registers and verifies users.
type AuthService struct {
	db     *database.DB
	tokens TokenIssuer
	now    func() time.Time
}

func NewAuthService(db *database.DB, tokens TokenIssuer) *AuthService {
	return &AuthService{db: db, tokens: tokens, now: utcNow}
}

// Register creates a user with a bcrypt hash of password. The plaintext is
// never stored or logged.
func (s *AuthService) Register(ctx context.Context, username, password, email string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || password == "" || email == "" {
		return nil, fmt.Errorf("%w: username, password and email are required", ErrValidation)
	}

	var taken int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM users WHERE username = ? OR email = ?", username, email).Scan(&taken)
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if taken > 0 {
		return nil, fmt.Errorf("username or email %w", ErrConflict)
	}

	var pw models.Password
	if err := pw.Set(password); err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, fmt.Errorf("%w: password must be at most 72 bytes", ErrValidation)
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: pw.Hash,
		Email:        email,
		CreatedAt:    s.now(),
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO users (id, username, password, email, created_at) VALUES (?, ?, ?, ?, ?)",
		user.ID, user.Username, user.PasswordHash, user.Email, user.CreatedAt)
	if err != nil {
		// Lost a race with a concurrent registration.
		if database.IsUniqueViolation(err) {
			return nil, fmt.Errorf("username or email %w", ErrConflict)
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return user, nil
}

// Login checks the password against the stored hash and issues a session
// token on success.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: missing credentials", ErrValidation)
	}

	user, err := s.findUser(ctx, "username", username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	pw := models.Password{Hash: user.PasswordHash}
	ok, err := pw.Matches(password)
	if err != nil {
		return nil, fmt.Errorf("compare password: %w", err)
	}
	if !ok {
		return nil, ErrUnauthorized
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &LoginResult{Token: token, UserID: user.ID, Username: user.Username}, nil
}

// Profile returns the user behind an identity.
func (s *AuthService) Profile(ctx context.Context, userID string) (*models.User, error) {
	return s.findUser(ctx, "id", userID)
}

// findUser looks a user up by a trusted column name ("id" or "username").
func (s *AuthService) findUser(ctx context.Context, column, value string) (*models.User, error) {
	query := "SELECT id, username, password, email, created_at FROM users WHERE " + column + " = ?"

	var u models.User
	err := s.db.QueryRowContext(ctx, query, value).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %w", ErrNotFound)
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	return &u, nil
}
