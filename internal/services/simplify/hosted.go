package simplify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// HostedClient is the hosted-inference processing strategy (endpoint B).
// The wire envelope differs from the chat format: input goes in an
// "inputs" field with generation parameters alongside, and the response
// is an array of candidates whose first generated_text is taken.
type HostedClient struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// NewHostedClient creates a hosted-inference strategy.
func NewHostedClient(endpoint, apiKey string) *HostedClient {
	return &HostedClient{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// --- Hosted inference API types ---

type hostedRequest struct {
	Inputs     string           `json:"inputs"`
	Parameters hostedParameters `json:"parameters"`
	Options    hostedOptions    `json:"options"`
}

type hostedParameters struct {
	MaxNewTokens int `json:"max_new_tokens"`
}

type hostedOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

type hostedCandidate struct {
	GeneratedText string `json:"generated_text"`
}

// Simplify sends the document text to the hosted inference endpoint and
// returns the first candidate's generated text.
func (c *HostedClient) Simplify(ctx context.Context, documentText, _ string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("hosted API key not configured; set HOSTED_API_KEY")
	}

	reqBody := hostedRequest{
		Inputs:     systemInstruction + "\n\n" + truncateDocument(documentText),
		Parameters: hostedParameters{MaxNewTokens: 1024},
		Options:    hostedOptions{WaitForModel: true},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	body, status, err := postJSON(ctx, c.httpClient, c.endpoint, c.apiKey, jsonBody)
	if err != nil {
		return "", &Error{Kind: KindNetworkFailure, Err: err}
	}
	if status != http.StatusOK {
		return "", &Error{Kind: KindRemoteError, Status: status, Body: string(body)}
	}

	var candidates []hostedCandidate
	if err := json.Unmarshal(body, &candidates); err != nil {
		return "", &Error{Kind: KindBadResponse, Err: err}
	}
	if len(candidates) == 0 {
		return "", &Error{Kind: KindBadResponse, Err: fmt.Errorf("response contained no candidates")}
	}

	return candidates[0].GeneratedText, nil
}
