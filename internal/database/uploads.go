// uploads.go handles upload-history database operations.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/legalease-app/legalease-api/internal/models"
)

// ErrUploadNotFound is returned when an upload record does not exist.
var ErrUploadNotFound = errors.New("upload not found")

// CreateUpload appends a new upload record with the database's timestamp.
// The caller supplies the record ID; owner_email carries a foreign key to
// users.email, so a record can never reference an account that doesn't exist.
func (db *DB) CreateUpload(ctx context.Context, up *models.Upload) error {
	query := `
		INSERT INTO uploads (id, owner_email, filename, summary, mode)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	err := db.QueryRowContext(ctx, query,
		up.ID, up.OwnerEmail, up.Filename, up.Summary, up.Mode,
	).Scan(&up.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create upload: %w", err)
	}
	return nil
}

// ListUploadsByUser returns all uploads for an email, newest first.
// Display ordering is descending by creation time; an email with no
// uploads yields an empty slice, never an error.
func (db *DB) ListUploadsByUser(ctx context.Context, ownerEmail string) ([]models.Upload, error) {
	var uploads []models.Upload
	err := db.SelectContext(ctx, &uploads,
		`SELECT * FROM uploads WHERE owner_email = $1 ORDER BY created_at DESC`, ownerEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list uploads: %w", err)
	}
	if uploads == nil {
		uploads = []models.Upload{}
	}
	return uploads, nil
}

// GetUpload retrieves a single upload by ID. Used by the export endpoint,
// which checks ownership against the authenticated user.
func (db *DB) GetUpload(ctx context.Context, id string) (*models.Upload, error) {
	var up models.Upload
	err := db.GetContext(ctx, &up, `SELECT * FROM uploads WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUploadNotFound
		}
		return nil, fmt.Errorf("failed to get upload: %w", err)
	}
	return &up, nil
}
