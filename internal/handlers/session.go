// session.go handles processing-mode selection for the active session.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/legalease-app/legalease-api/internal/middleware"
	"github.com/legalease-app/legalease-api/internal/models"
	"github.com/legalease-app/legalease-api/internal/services/simplify"
)

// GetSession returns the caller's current session state.
// GET /api/v1/session
//
// The session API key is never echoed back — only whether one is set.
func (h *Handler) GetSession(c *gin.Context) {
	user := middleware.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "unauthorized",
			Message: "Not authenticated",
			Code:    http.StatusUnauthorized,
		})
		return
	}

	state, _ := h.Sessions.Get(user.ID)

	c.JSON(http.StatusOK, models.SessionResponse{
		Email:     user.Email,
		Mode:      string(state.Mode),
		HasAPIKey: state.APIKey != "",
	})
}

// SetMode selects the processing mode for the session.
// PUT /api/v1/session/mode
//
// For chat mode the user may supply their own API key; it lives in the
// in-memory session only and is dropped on logout.
func (h *Handler) SetMode(c *gin.Context) {
	user := middleware.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "unauthorized",
			Message: "Not authenticated",
			Code:    http.StatusUnauthorized,
		})
		return
	}

	var req models.SetModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "mode is required",
			Code:    http.StatusBadRequest,
		})
		return
	}

	mode := simplify.Mode(req.Mode)
	if !simplify.ValidMode(mode) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_mode",
			Message: "mode must be 'demo', 'chat', or 'hosted'",
			Code:    http.StatusBadRequest,
		})
		return
	}

	// An API key only makes sense for the bring-your-own-key chat mode.
	apiKey := req.APIKey
	if mode != simplify.ModeChat {
		apiKey = ""
	}

	h.Sessions.SetMode(user.ID, mode, apiKey)

	c.JSON(http.StatusOK, models.SessionResponse{
		Email:     user.Email,
		Mode:      string(mode),
		HasAPIKey: apiKey != "",
	})
}
