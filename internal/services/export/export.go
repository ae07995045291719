// Package export renders a summary as a downloadable artifact.
//
// Each format is its own function — adding a format later means adding
// one function and one switch case in the handler, nothing more.
package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// textWrapWidth is the column at which plain-text exports wrap.
const textWrapWidth = 80

// Text renders the summary as a plain-text artifact, line-wrapped for
// readability. Wrapping only moves whitespace around: the words and
// their order are preserved exactly.
func Text(summary string) []byte {
	return []byte(wrapText(summary, textWrapWidth))
}

// PDF renders the summary as a single-column PDF document with the
// original filename as its title.
func PDF(title, summary string) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle(title, true)
	doc.AddPage()

	// Core PDF fonts are cp1252; translate what we can and let the rest
	// degrade rather than fail the export.
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetFont("Helvetica", "B", 16)
	doc.MultiCell(0, 8, tr(title), "", "L", false)
	doc.Ln(4)

	doc.SetFont("Helvetica", "", 11)
	doc.MultiCell(0, 6, tr(summary), "", "L", false)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// wrapText wraps text at the given width, keeping paragraph breaks.
// Words longer than the width get a line of their own.
func wrapText(text string, width int) string {
	var out strings.Builder
	paragraphs := strings.Split(text, "\n\n")

	for pi, para := range paragraphs {
		if pi > 0 {
			out.WriteString("\n\n")
		}

		lineLen := 0
		for wi, word := range strings.Fields(para) {
			if wi == 0 {
				out.WriteString(word)
				lineLen = len(word)
				continue
			}
			if lineLen+1+len(word) > width {
				out.WriteString("\n")
				out.WriteString(word)
				lineLen = len(word)
			} else {
				out.WriteString(" ")
				out.WriteString(word)
				lineLen += 1 + len(word)
			}
		}
	}

	return out.String()
}
