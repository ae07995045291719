// Package simplify turns extracted document text into a plain-language
// summary. Each processing mode is a strategy behind a single interface:
// a deterministic demo strategy that needs no network, and two remote
// text-generation providers with different wire envelopes.
package simplify

import (
	"context"
	"fmt"
)

// Mode selects a processing strategy.
type Mode string

const (
	ModeDemo   Mode = "demo"   // canned summaries keyed off the filename
	ModeChat   Mode = "chat"   // chat-completions endpoint (bring-your-own-key supported)
	ModeHosted Mode = "hosted" // hosted sequence-generation endpoint
)

// ValidMode reports whether m names a known processing mode.
func ValidMode(m Mode) bool {
	switch m {
	case ModeDemo, ModeChat, ModeHosted:
		return true
	}
	return false
}

// Simplifier is the single contract all processing modes implement.
// Implementations return the summary text, or an *Error describing why
// the document could not be processed.
type Simplifier interface {
	Simplify(ctx context.Context, documentText, filename string) (string, error)
}

// Config carries the provider settings a strategy may need. Demo mode
// ignores all of it.
type Config struct {
	ChatEndpoint string
	ChatAPIKey   string
	ChatModel    string

	HostedEndpoint string
	HostedAPIKey   string
}

// New selects the strategy for a mode at call time.
func New(mode Mode, cfg Config) (Simplifier, error) {
	switch mode {
	case ModeDemo:
		return NewDemo(), nil
	case ModeChat:
		return NewChatClient(cfg.ChatEndpoint, cfg.ChatAPIKey, cfg.ChatModel), nil
	case ModeHosted:
		return NewHostedClient(cfg.HostedEndpoint, cfg.HostedAPIKey), nil
	default:
		return nil, fmt.Errorf("unknown processing mode %q", mode)
	}
}
