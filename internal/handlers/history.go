// history.go handles the per-user upload history endpoints.
package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/legalease-app/legalease-api/internal/middleware"
	"github.com/legalease-app/legalease-api/internal/models"
)

// ListUploads returns the authenticated user's upload history, newest first.
// GET /api/v1/uploads
//
// A user with no uploads gets an empty list, not an error.
func (h *Handler) ListUploads(c *gin.Context) {
	user := middleware.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "unauthorized",
			Message: "Not authenticated",
			Code:    http.StatusUnauthorized,
		})
		return
	}

	uploads, err := h.DB.ListUploadsByUser(c.Request.Context(), user.Email)
	if err != nil {
		log.Printf("Failed to list uploads for %s: %v", user.Email, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to load upload history",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, uploads)
}
