// export.go handles summary export in downloadable formats.
//
// Supported formats:
//   - txt — the summary, line-wrapped
//   - pdf — a single-column PDF document
//
// Go Pattern: Each export format is its own function in the export
// service. Adding a format later means one function and one switch case.
package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/legalease-app/legalease-api/internal/middleware"
	"github.com/legalease-app/legalease-api/internal/models"
	"github.com/legalease-app/legalease-api/internal/services/export"
)

// ExportUpload exports an upload's summary in the requested format.
// GET /api/v1/uploads/:id/export?format=txt|pdf
//
// Response headers are set for file download. Only the record's owner
// may export it.
func (h *Handler) ExportUpload(c *gin.Context) {
	user := middleware.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "unauthorized",
			Message: "Not authenticated",
			Code:    http.StatusUnauthorized,
		})
		return
	}

	id := c.Param("id")
	format := c.DefaultQuery("format", "txt")

	// Validate format before doing any database work
	if format != "txt" && format != "pdf" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_format",
			Message: "Supported formats: txt, pdf",
			Code:    http.StatusBadRequest,
		})
		return
	}

	up, err := h.DB.GetUpload(c.Request.Context(), id)
	if err != nil || up.OwnerEmail != user.Email {
		// A record belonging to someone else looks the same as a missing one.
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "Upload not found",
			Code:    http.StatusNotFound,
		})
		return
	}

	filename := sanitizeFilename(strings.TrimSuffix(up.Filename, ".pdf"))
	if filename == "" {
		filename = up.ID
	}

	switch format {
	case "txt":
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s-summary.txt"`, filename))
		c.Data(http.StatusOK, "text/plain; charset=utf-8", export.Text(up.Summary))
	case "pdf":
		data, err := export.PDF(up.Filename, up.Summary)
		if err != nil {
			log.Printf("PDF export failed for upload %s: %v", up.ID, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "export_error",
				Message: "Failed to generate PDF export",
				Code:    http.StatusInternalServerError,
			})
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s-summary.pdf"`, filename))
		c.Data(http.StatusOK, "application/pdf", data)
	}
}

// sanitizeFilename removes characters that aren't safe for filenames.
// This is just for the Content-Disposition header, so a simple replacer
// is enough.
func sanitizeFilename(name string) string {
	replacer := strings.NewReplacer(
		"/", "-", "\\", "-", ":", "-", "*", "-",
		"?", "-", "\"", "-", "<", "-", ">", "-",
		"|", "-", "\n", " ", "\r", "",
	)
	name = replacer.Replace(name)

	// Collapse multiple hyphens/spaces
	for strings.Contains(name, "  ") {
		name = strings.ReplaceAll(name, "  ", " ")
	}
	for strings.Contains(name, "--") {
		name = strings.ReplaceAll(name, "--", "-")
	}

	name = strings.TrimSpace(name)

	if len(name) > 100 {
		// Back up to a rune boundary so the cut never splits a
		// multi-byte character.
		cut := 100
		for cut > 0 && !utf8.RuneStart(name[cut]) {
			cut--
		}
		name = name[:cut]
	}

	return name
}
