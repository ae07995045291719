package handlers

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "clean name passes through",
			input: "rental-agreement",
			want:  "rental-agreement",
		},
		{
			name:  "path separators replaced",
			input: "docs/2026\\lease",
			want:  "docs-2026-lease",
		},
		{
			name:  "shell metacharacters replaced",
			input: `what?is*this:"file"`,
			want:  "what-is-this-file-",
		},
		{
			name:  "newlines and returns stripped",
			input: "line one\nline two\r",
			want:  "line one line two",
		},
		{
			name:  "repeated separators collapsed",
			input: "a//b  c",
			want:  "a-b c",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  lease  ",
			want:  "lease",
		},
		{
			name:  "empty stays empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeFilename(tt.input); got != tt.want {
				t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeFilenameTruncates(t *testing.T) {
	long := strings.Repeat("a", 150)
	if got := sanitizeFilename(long); len(got) != 100 {
		t.Errorf("expected 100 characters, got %d", len(got))
	}
}

func TestSanitizeFilenameTruncatesOnRuneBoundary(t *testing.T) {
	// 40 three-byte runes = 120 bytes; byte 100 falls inside a rune, so
	// the cut must back up to byte 99 instead of splitting it.
	long := strings.Repeat("契", 40)
	got := sanitizeFilename(long)

	if !utf8.ValidString(got) {
		t.Error("truncation split a multi-byte rune")
	}
	if len(got) > 100 {
		t.Errorf("expected at most 100 bytes, got %d", len(got))
	}
}
