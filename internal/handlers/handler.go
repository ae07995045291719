// Package handlers contains HTTP handler functions for the API.
//
// Go Pattern: Handlers in Gin receive a *gin.Context which provides
// request data, response methods, and middleware values. Related handlers
// are grouped on a struct (Handler) that holds shared dependencies.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/legalease-app/legalease-api/internal/database"
	"github.com/legalease-app/legalease-api/internal/models"
	"github.com/legalease-app/legalease-api/internal/services/simplify"
	"github.com/legalease-app/legalease-api/internal/session"
)

// Handler holds shared dependencies for all HTTP handlers.
// Go Pattern: Dependency injection via struct fields. Instead of global
// variables or service locators, we pass dependencies explicitly —
// which also makes testing easy.
type Handler struct {
	DB        *database.DB
	Sessions  *session.Manager
	JWTSecret string

	// Providers carries the operator-configured settings for the remote
	// processing strategies. A session-supplied API key overrides the
	// chat key per request.
	Providers simplify.Config

	// MaxUploadBytes caps the PDF upload size.
	MaxUploadBytes int64
}

// NewHandler creates a new handler with all dependencies.
func NewHandler(db *database.DB, sessions *session.Manager, jwtSecret string, providers simplify.Config, maxUploadBytes int64) *Handler {
	return &Handler{
		DB:             db,
		Sessions:       sessions,
		JWTSecret:      jwtSecret,
		Providers:      providers,
		MaxUploadBytes: maxUploadBytes,
	}
}

// HealthCheck returns the API health status.
// GET /api/v1/health
func (h *Handler) HealthCheck(c *gin.Context) {
	dbStatus := "healthy"
	if err := h.DB.HealthCheck(c.Request.Context()); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	c.JSON(http.StatusOK, models.HealthResponse{
		Status:   "ok",
		Version:  "1.0.0",
		Database: dbStatus,
	})
}
