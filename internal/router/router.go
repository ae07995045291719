// Package router sets up all HTTP routes for the API.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/legalease-app/legalease-api/internal/database"
	"github.com/legalease-app/legalease-api/internal/handlers"
	"github.com/legalease-app/legalease-api/internal/middleware"
	"github.com/legalease-app/legalease-api/internal/services/simplify"
	"github.com/legalease-app/legalease-api/internal/session"
)

// Setup creates and configures the Gin router with all routes.
func Setup(db *database.DB, sessions *session.Manager, providers simplify.Config, jwtSecret string, maxUploadBytes int64, rateLimit int, allowedOrigins []string) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.CORS(allowedOrigins))

	h := handlers.NewHandler(db, sessions, jwtSecret, providers, maxUploadBytes)
	rateLimiter := middleware.NewRateLimiter(rateLimit)

	// --- Public Routes (no auth required) ---
	r.GET("/api/v1/health", h.HealthCheck)

	// API Documentation
	r.GET("/api/docs", h.ServeSwaggerUI)
	r.GET("/api/docs/openapi.yaml", h.ServeOpenAPISpec)

	// --- Auth Routes — public ---
	r.POST("/api/v1/auth/register", h.Register)
	r.POST("/api/v1/auth/login", h.Login)

	// --- JWT-protected routes ---
	protected := r.Group("/api/v1")
	protected.Use(middleware.JWTAuth(db, jwtSecret))
	protected.Use(rateLimiter.RateLimit())
	{
		protected.GET("/auth/me", h.GetMe)
		protected.POST("/auth/logout", h.Logout)

		// Session mode selection
		protected.GET("/session", h.GetSession)
		protected.PUT("/session/mode", h.SetMode)

		// Document processing pipeline
		protected.POST("/documents/simplify", h.SimplifyDocument)

		// Upload history and export
		protected.GET("/uploads", h.ListUploads)
		protected.GET("/uploads/:id/export", h.ExportUpload)
	}

	return r
}
