package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dkachur-dev/weather-dashboard/internal/auth/models"
	"github.com/dkachur-dev/weather-dashboard/internal/auth/services/token"
	"github.com/dkachur-dev/weather-dashboard/internal/auth/services/users"
)

type userDirectory interface {
	Register(ctx context.Context, email, password, name string) (models.User, error)
	Authenticate(ctx context.Context, email, password string) (models.User, error)
}

type tokenCodec interface {
	Issue(email, name string) (string, error)
	Verify(tokenString string) (token.Claims, error)
}

type Handler struct {
	users  userDirectory
	tokens tokenCodec
}

func NewHandler(users userDirectory, tokens tokenCodec) *Handler {
	return &Handler{users: users, tokens: tokens}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register handles POST /auth/register.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, users.ErrUserExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "User exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered", "email": user.Email})
}

// Login handles POST /auth/login. On success it returns a signed token
// and the user's public profile.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	signed, err := h.tokens.Issue(user.Email, user.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": signed,
		"user":  gin.H{"email": user.Email, "name": user.Name},
	})
}

// Verify handles GET /auth/verify. The token comes from the
// Authorization header, with or without the Bearer prefix.
func (h *Handler) Verify(c *gin.Context) {
	raw := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if raw == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	claims, err := h.tokens.Verify(raw)
	if err != nil {
		if errors.Is(err, token.ErrTokenExpired) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true, "email": claims.Email})
}
