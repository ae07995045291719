// demo_test.go covers filename classification and the canned summaries.
//
// Go Pattern: Table-driven tests — each case is a struct with inputs and
// expected outputs, and the runner loops through them all.
package simplify

import (
	"context"
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     Category
	}{
		{"rental lowercase", "rental-agreement.pdf", CategoryRental},
		{"rental uppercase", "RENTAL_CONTRACT.PDF", CategoryRental},
		{"rental mid-filename", "my-house-rental-2024.pdf", CategoryRental},
		{"nda lowercase", "nda.pdf", CategoryNDA},
		{"nda mixed case", "Company-NDA-final.pdf", CategoryNDA},
		{"employment", "employment_contract.pdf", CategoryEmployment},
		{"employment uppercase", "EMPLOYMENT.pdf", CategoryEmployment},
		{"no token", "last_will_and_testament.pdf", CategoryUnknown},
		{"empty filename", "", CategoryUnknown},
		{"token as substring of a word", "nonrentalisable.pdf", CategoryRental},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.filename); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

// TestClassifyTieBreak pins the tie-break rule: tokens are checked in the
// fixed order rental, nda, employment, and the first match wins.
func TestClassifyTieBreak(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     Category
	}{
		{"rental beats nda", "rental-nda.pdf", CategoryRental},
		{"rental beats nda regardless of position", "nda-then-rental.pdf", CategoryRental},
		{"rental beats employment", "employment-rental.pdf", CategoryRental},
		{"nda beats employment", "employment-nda.pdf", CategoryNDA},
		{"all three resolves to rental", "employment-nda-rental.pdf", CategoryRental},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.filename); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

func TestDemoSimplify(t *testing.T) {
	d := NewDemo()

	// Each category maps to its own fixed summary.
	seen := map[string]bool{}
	for _, filename := range []string{"rental.pdf", "nda.pdf", "employment.pdf", "other.pdf"} {
		got, err := d.Simplify(context.Background(), "ignored document text", filename)
		if err != nil {
			t.Fatalf("Simplify(%q) returned error: %v", filename, err)
		}
		if got == "" {
			t.Fatalf("Simplify(%q) returned empty summary", filename)
		}
		if seen[got] {
			t.Errorf("Simplify(%q) returned a summary already used by another category", filename)
		}
		seen[got] = true
	}

	// The document text must not influence the output.
	a, _ := d.Simplify(context.Background(), "some text", "rental.pdf")
	b, _ := d.Simplify(context.Background(), "entirely different text", "rental.pdf")
	if a != b {
		t.Error("demo summaries should depend only on the filename")
	}

	// Unknown filenames get the fallback message.
	fallback, _ := d.Simplify(context.Background(), "", "mystery.pdf")
	if !strings.Contains(fallback, "could not be matched") {
		t.Errorf("unexpected fallback summary: %q", fallback)
	}
}
