// auth.go handles user authentication HTTP endpoints.
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/legalease-app/legalease-api/internal/database"
	"github.com/legalease-app/legalease-api/internal/middleware"
	"github.com/legalease-app/legalease-api/internal/models"
)

// Register creates a new user account.
// POST /api/v1/auth/register
func (h *Handler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "A valid email and a password of at least 8 characters are required",
			Code:    http.StatusBadRequest,
		})
		return
	}

	// Passwords are stored as bcrypt hashes, never plaintext.
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("❌ Failed to hash password: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to create account",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	// The insert itself enforces email uniqueness — no separate lookup,
	// so two concurrent registrations can't both win.
	if err := h.DB.CreateUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, database.ErrEmailTaken) {
			c.JSON(http.StatusConflict, models.ErrorResponse{
				Error:   "email_taken",
				Message: "An account with this email already exists",
				Code:    http.StatusConflict,
			})
			return
		}
		log.Printf("❌ Failed to create user: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to create account",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	token, err := middleware.GenerateJWT(user, h.JWTSecret)
	if err != nil {
		log.Printf("❌ Failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "token_error",
			Message: "Account created but failed to generate token",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	// Registration starts an authenticated session with no mode chosen yet.
	h.Sessions.Create(user.ID)

	c.JSON(http.StatusCreated, models.AuthResponse{
		Token: token,
		User:  *user,
	})
}

// Login authenticates a user and returns a JWT token.
// POST /api/v1/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Email and password are required",
			Code:    http.StatusBadRequest,
		})
		return
	}

	// Unknown email and wrong password produce the same response — no
	// hint about which accounts exist.
	user, err := h.DB.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "invalid_credentials",
			Message: "Invalid email or password",
			Code:    http.StatusUnauthorized,
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "invalid_credentials",
			Message: "Invalid email or password",
			Code:    http.StatusUnauthorized,
		})
		return
	}

	token, err := middleware.GenerateJWT(user, h.JWTSecret)
	if err != nil {
		log.Printf("❌ Failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "token_error",
			Message: "Failed to generate token",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	// A fresh login resets any previous session state (mode, API key).
	h.Sessions.Create(user.ID)

	c.JSON(http.StatusOK, models.AuthResponse{
		Token: token,
		User:  *user,
	})
}

// Logout clears the caller's session state: selected mode and any
// session-supplied API key are dropped immediately.
// POST /api/v1/auth/logout
func (h *Handler) Logout(c *gin.Context) {
	user := middleware.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "unauthorized",
			Message: "Not authenticated",
			Code:    http.StatusUnauthorized,
		})
		return
	}

	h.Sessions.Clear(user.ID)
	c.Status(http.StatusNoContent)
}

// GetMe returns the current authenticated user.
// GET /api/v1/auth/me
func (h *Handler) GetMe(c *gin.Context) {
	user := middleware.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "unauthorized",
			Message: "Not authenticated",
			Code:    http.StatusUnauthorized,
		})
		return
	}

	c.JSON(http.StatusOK, user)
}
