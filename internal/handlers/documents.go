// documents.go handles the upload → extract → simplify → persist pipeline.
//
// POST /api/v1/documents/simplify — Upload a PDF and get a plain-language summary
package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/legalease-app/legalease-api/internal/middleware"
	"github.com/legalease-app/legalease-api/internal/models"
	"github.com/legalease-app/legalease-api/internal/services/pdfextract"
	"github.com/legalease-app/legalease-api/internal/services/simplify"
)

// SimplifyDocument accepts a multipart PDF upload (field name "file"),
// extracts its text, runs the session's processing mode over it, and
// persists the result to the caller's history.
//
// The whole pipeline is one synchronous request/response cycle — the only
// blocking step is the remote provider call, bounded by its client timeout.
func (h *Handler) SimplifyDocument(c *gin.Context) {
	user := middleware.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "unauthorized",
			Message: "Not authenticated",
			Code:    http.StatusUnauthorized,
		})
		return
	}

	// A processing mode must be chosen before uploading.
	state, ok := h.Sessions.Get(user.ID)
	if !ok || state.Mode == "" {
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "no_mode_selected",
			Message: "Select a processing mode via PUT /api/v1/session/mode before uploading",
			Code:    http.StatusConflict,
		})
		return
	}

	// Limit request body size before reading anything.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: fmt.Sprintf("No PDF file provided. Upload a file with the field name 'file'. Max size: %dMB.", h.MaxUploadBytes>>20),
			Code:    http.StatusBadRequest,
		})
		return
	}
	defer file.Close()

	// Validate file extension
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".pdf" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_file_type",
			Message: fmt.Sprintf("Unsupported file format '%s'. Only .pdf files are accepted.", ext),
			Code:    http.StatusBadRequest,
		})
		return
	}

	// Read the entire file into memory — the pdf library needs random access.
	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "read_error",
			Message: "Failed to read uploaded file",
			Code:    http.StatusBadRequest,
		})
		return
	}

	if !pdfextract.ValidatePDF(data) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_pdf",
			Message: "The uploaded file does not appear to be a valid PDF",
			Code:    http.StatusBadRequest,
		})
		return
	}

	// Extract the document text. A malformed PDF fails this upload with a
	// user-visible message; it never crashes the session.
	result, err := pdfextract.Extract(data)
	if err != nil {
		log.Printf("PDF extraction failed for %s: %v", header.Filename, err)
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:   "extraction_failed",
			Message: "Could not read text from this PDF: " + err.Error(),
			Code:    http.StatusUnprocessableEntity,
		})
		return
	}

	// Select the processing strategy from the session's mode. A session
	// API key (bring-your-own-key) overrides the operator chat key for
	// this request only.
	providers := h.Providers
	if state.APIKey != "" {
		providers.ChatAPIKey = state.APIKey
	}

	processor, err := simplify.New(state.Mode, providers)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	summary, err := processor.Simplify(c.Request.Context(), result.Text, header.Filename)
	if err != nil {
		h.renderProcessingError(c, header.Filename, err)
		return
	}

	up := &models.Upload{
		ID:         uuid.NewString(),
		OwnerEmail: user.Email,
		Filename:   header.Filename,
		Summary:    summary,
		Mode:       string(state.Mode),
	}

	if err := h.DB.CreateUpload(c.Request.Context(), up); err != nil {
		log.Printf("Failed to save upload record: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "Summary was generated but could not be saved to history",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, models.SimplifyResponse{
		Upload:    *up,
		PageCount: result.PageCount,
		WordCount: result.WordCount,
	})
}

// renderProcessingError maps a processing failure to an HTTP response,
// preserving the failure kind for programmatic clients.
func (h *Handler) renderProcessingError(c *gin.Context, filename string, err error) {
	log.Printf("Processing failed for %s: %v", filename, err)

	var procErr *simplify.Error
	if errors.As(err, &procErr) {
		switch procErr.Kind {
		case simplify.KindNetworkFailure:
			c.JSON(http.StatusBadGateway, models.ErrorResponse{
				Error:   "network_failure",
				Message: "Could not reach the summarization service. Try again shortly.",
				Code:    http.StatusBadGateway,
			})
		case simplify.KindRemoteError:
			c.JSON(http.StatusBadGateway, models.ErrorResponse{
				Error:   "remote_error",
				Message: fmt.Sprintf("The summarization service rejected the request (status %d)", procErr.Status),
				Code:    http.StatusBadGateway,
			})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "bad_response",
				Message: "The summarization service returned an unrecognized response",
				Code:    http.StatusInternalServerError,
			})
		}
		return
	}

	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "processing_failed",
		Message: err.Error(),
		Code:    http.StatusInternalServerError,
	})
}
