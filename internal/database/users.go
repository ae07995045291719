// users.go handles account-related database operations.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/legalease-app/legalease-api/internal/models"
)

// Sentinel errors for account operations. Handlers match on these with
// errors.Is instead of parsing message text.
var (
	ErrEmailTaken   = errors.New("an account with this email already exists")
	ErrUserNotFound = errors.New("user not found")
)

// pqUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pqUniqueViolation = "23505"

// CreateUser inserts a new account record.
//
// Uniqueness is enforced by the database's unique index on email, not by a
// separate lookup — two concurrent registrations for the same email cannot
// both succeed. A unique violation is translated to ErrEmailTaken.
func (db *DB) CreateUser(ctx context.Context, u *models.User) error {
	query := `
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		RETURNING id, created_at`

	err := db.QueryRowContext(ctx, query, u.Email, u.PasswordHash).
		Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByEmail retrieves an account by its exact email address.
// The match is case-sensitive: lookups never normalize the email.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := db.GetContext(ctx, &u, `SELECT * FROM users WHERE email = $1`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return &u, nil
}

// GetUserByID retrieves an account by ID. Used by the JWT middleware.
func (db *DB) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := db.GetContext(ctx, &u, `SELECT * FROM users WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return &u, nil
}
