package simplify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"
)

const (
	// systemInstruction is the fixed system prompt for both remote modes.
	systemInstruction = "You are a legal document simplifier. You explain legal documents in simple language, covering every important point like you would to a regular person."

	// maxDocumentChars caps the document text sent to a remote provider.
	// Very long documents are truncated rather than rejected.
	maxDocumentChars = 15000

	requestTimeout = 60 * time.Second
)

// ChatClient is the chat-completions processing strategy (endpoint A).
// The request follows the OpenAI chat format: {model, messages}, and the
// first choice's message content is returned verbatim.
type ChatClient struct {
	endpoint   string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewChatClient creates a chat-completions strategy. The API key may be
// an operator-configured key or one supplied by the user for the session.
func NewChatClient(endpoint, apiKey, model string) *ChatClient {
	return &ChatClient{
		endpoint: endpoint,
		apiKey:   apiKey,
		model:    model,
		// Go Pattern: Always configure timeouts on HTTP clients.
		// The default http.Client has NO timeout — requests can hang forever.
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// --- Chat-completions API types ---

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Simplify sends the document text to the chat-completions endpoint and
// returns the first completion's text verbatim.
func (c *ChatClient) Simplify(ctx context.Context, documentText, _ string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("chat API key not configured; supply one for the session or set CHAT_API_KEY")
	}

	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemInstruction},
			{Role: "user", Content: truncateDocument(documentText)},
		},
		Temperature: 0.6,
		MaxTokens:   1500,
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

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", &Error{Kind: KindBadResponse, Err: err}
	}
	if len(chatResp.Choices) == 0 {
		return "", &Error{Kind: KindBadResponse, Err: fmt.Errorf("response contained no choices")}
	}

	return chatResp.Choices[0].Message.Content, nil
}

// truncateDocument caps the document text at maxDocumentChars, backing
// up to a rune boundary so a multi-byte character is never split.
func truncateDocument(text string) string {
	if len(text) <= maxDocumentChars {
		return text
	}
	cut := maxDocumentChars
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "\n\n[Document truncated due to length...]"
}

// postJSON sends a JSON POST with bearer auth and reads the full response.
// Transport failures are retried once — a transient connection error on a
// single blocking call is worth one more attempt. HTTP error statuses are
// never retried; they are returned to the caller as-is.
func postJSON(ctx context.Context, client *http.Client, endpoint, apiKey string, jsonBody []byte) ([]byte, int, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonBody))
		if err != nil {
			return nil, 0, err
		}
		req.Header.Set("Authorization", "Bearer "+apiKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			lastErr = err
			// Don't retry a cancelled or deadline-exceeded context.
			if ctx.Err() != nil {
				break
			}
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close() // Go Pattern: ALWAYS close response bodies.
		if err != nil {
			return nil, 0, err
		}
		return body, resp.StatusCode, nil
	}
	return nil, 0, lastErr
}
