package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/legalease-app/legalease-api/internal/models"
	"github.com/legalease-app/legalease-api/internal/session"
)

// newSessionTestContext builds a gin context with an authenticated user
// and a JSON request body, the shape these handlers see in production.
func newSessionTestContext(t *testing.T, method string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}
	c.Request = httptest.NewRequest(method, "/api/v1/session/mode", &buf)
	c.Request.Header.Set("Content-Type", "application/json")

	c.Set("user", &models.User{ID: "user-uuid-1", Email: "alice@example.com"})

	return c, w
}

func TestSetMode(t *testing.T) {
	h := &Handler{Sessions: session.NewManager()}

	c, w := newSessionTestContext(t, http.MethodPut, models.SetModeRequest{Mode: "demo"})
	h.SetMode(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.SessionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Mode != "demo" {
		t.Errorf("expected mode %q, got %q", "demo", resp.Mode)
	}
	if resp.HasAPIKey {
		t.Error("demo mode should not report an API key")
	}

	state, ok := h.Sessions.Get("user-uuid-1")
	if !ok || string(state.Mode) != "demo" {
		t.Errorf("session state not recorded: %+v ok=%v", state, ok)
	}
}

func TestSetModeInvalid(t *testing.T) {
	h := &Handler{Sessions: session.NewManager()}

	c, w := newSessionTestContext(t, http.MethodPut, models.SetModeRequest{Mode: "telepathy"})
	h.SetMode(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error != "invalid_mode" {
		t.Errorf("expected error %q, got %q", "invalid_mode", resp.Error)
	}
}

func TestSetModeChatKeepsKey(t *testing.T) {
	h := &Handler{Sessions: session.NewManager()}

	c, w := newSessionTestContext(t, http.MethodPut,
		models.SetModeRequest{Mode: "chat", APIKey: "sk-user-key"})
	h.SetMode(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.SessionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.HasAPIKey {
		t.Error("chat mode with a key should report HasAPIKey")
	}
	// The key itself must never appear in the response.
	if bytes.Contains(w.Body.Bytes(), []byte("sk-user-key")) {
		t.Error("response must not echo the API key")
	}

	state, _ := h.Sessions.Get("user-uuid-1")
	if state.APIKey != "sk-user-key" {
		t.Errorf("expected session to hold the key, got %q", state.APIKey)
	}
}

func TestSetModeDropsKeyForNonChatModes(t *testing.T) {
	h := &Handler{Sessions: session.NewManager()}

	// A key sent with a mode that can't use it is silently discarded.
	c, w := newSessionTestContext(t, http.MethodPut,
		models.SetModeRequest{Mode: "hosted", APIKey: "sk-user-key"})
	h.SetMode(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	state, _ := h.Sessions.Get("user-uuid-1")
	if state.APIKey != "" {
		t.Errorf("expected no key stored for hosted mode, got %q", state.APIKey)
	}
}

func TestGetSessionNeverEchoesKey(t *testing.T) {
	h := &Handler{Sessions: session.NewManager()}
	h.Sessions.SetMode("user-uuid-1", "chat", "sk-user-key")

	c, w := newSessionTestContext(t, http.MethodGet, nil)
	h.GetSession(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp models.SessionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.HasAPIKey {
		t.Error("expected HasAPIKey true")
	}
	if bytes.Contains(w.Body.Bytes(), []byte("sk-user-key")) {
		t.Error("response must not echo the API key")
	}
}

func TestSetModeMissingUser(t *testing.T) {
	h := &Handler{Sessions: session.NewManager()}

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/api/v1/session/mode", nil)

	h.SetMode(c)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
