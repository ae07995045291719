// Package models defines the data structures used throughout the application.
//
// Go Pattern: Models are plain structs with JSON tags for serialization.
// There is no ORM magic here — the database package handles persistence,
// and these structs are just data containers.
//
// JSON tags (e.g., `json:"id"`) control how struct fields are serialized
// to/from JSON. The `db` tags work with sqlx for database column mapping.
package models

import "time"

// User represents a registered account.
// The email is the unique identifier chosen at registration and is
// matched case-sensitively — "A@b.com" and "a@b.com" are different accounts.
type User struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // "-" means never serialize to JSON
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Upload represents one processed document attributed to an account:
// the original filename, the plain-language summary produced for it,
// and which processing mode generated that summary.
type Upload struct {
	ID         string    `json:"id" db:"id"`
	OwnerEmail string    `json:"owner_email" db:"owner_email"`
	Filename   string    `json:"filename" db:"filename"`
	Summary    string    `json:"summary" db:"summary"`
	Mode       string    `json:"mode" db:"mode"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// --- Request/Response DTOs (Data Transfer Objects) ---
// Go Pattern: Separate structs for API input/output vs database models.
// This keeps the API contract clean and independent of the database schema.

// RegisterRequest is the JSON body for POST /api/v1/auth/register.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the JSON body for POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned on successful registration or login.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// SetModeRequest is the JSON body for PUT /api/v1/session/mode.
// APIKey is only meaningful for the bring-your-own-key chat mode; it
// lives in the session for its lifetime and is never persisted.
type SetModeRequest struct {
	Mode   string `json:"mode" binding:"required"`
	APIKey string `json:"api_key,omitempty"`
}

// SessionResponse describes the caller's current session state.
// The session API key itself is never echoed back — only whether one is set.
type SessionResponse struct {
	Email     string `json:"email"`
	Mode      string `json:"mode,omitempty"`
	HasAPIKey bool   `json:"has_api_key"`
}

// SimplifyResponse is returned by POST /api/v1/documents/simplify.
type SimplifyResponse struct {
	Upload    Upload `json:"upload"`
	PageCount int    `json:"page_count"`
	WordCount int    `json:"word_count"`
}

// ErrorResponse is a standard error format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Database string `json:"database"`
}
