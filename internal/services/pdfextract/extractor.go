// Package pdfextract turns an uploaded PDF into plain text for the
// simplification pipeline. Extraction is tolerant by page: a page that
// yields no text (scanned images, odd encodings) is skipped rather
// than failing the whole document.
package pdfextract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Result is what the pipeline needs from a document: its text plus the
// page and word counts reported back to the user.
type Result struct {
	Text      string
	PageCount int
	WordCount int
}

// Extract pulls the text out of a PDF held in memory. Uploads arrive as
// bytes, never as files on disk, and the pdf library wants random access
// to resolve the document's cross references — bytes.Reader gives it
// both io.ReaderAt and the size.
func Extract(data []byte) (*Result, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	pageCount := r.NumPage()
	if pageCount == 0 {
		return &Result{}, nil
	}

	var text strings.Builder
	for i := 1; i <= pageCount; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// Image-only or malformed page: skip it, keep the rest.
			continue
		}

		if text.Len() > 0 {
			text.WriteString("\n")
		}
		text.WriteString(strings.TrimSpace(pageText))
	}

	extracted := strings.TrimSpace(text.String())

	return &Result{
		Text:      extracted,
		PageCount: pageCount,
		WordCount: len(strings.Fields(extracted)),
	}, nil
}

// ValidatePDF reports whether the data starts with the PDF magic bytes.
// Extension checks catch honest mistakes; this catches renamed files.
func ValidatePDF(data []byte) bool {
	return len(data) >= 5 && string(data[:5]) == "%PDF-"
}
