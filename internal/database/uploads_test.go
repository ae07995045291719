package database

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/legalease-app/legalease-api/internal/models"
)

func TestCreateUpload(t *testing.T) {
	db, mock := newMockDB(t)

	created := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO uploads")).
		WithArgs("upload-uuid-1", "alice@example.com", "lease.pdf", "A summary.", "demo").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	up := &models.Upload{
		ID:         "upload-uuid-1",
		OwnerEmail: "alice@example.com",
		Filename:   "lease.pdf",
		Summary:    "A summary.",
		Mode:       "demo",
	}
	if err := db.CreateUpload(context.Background(), up); err != nil {
		t.Fatalf("CreateUpload returned error: %v", err)
	}

	if !up.CreatedAt.Equal(created) {
		t.Errorf("expected CreatedAt %v, got %v", created, up.CreatedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestListUploadsByUser(t *testing.T) {
	db, mock := newMockDB(t)

	newer := time.Now()
	older := newer.Add(-time.Hour)
	rows := sqlmock.NewRows([]string{"id", "owner_email", "filename", "summary", "mode", "created_at"}).
		AddRow("upload-2", "alice@example.com", "nda.pdf", "NDA summary.", "chat", newer).
		AddRow("upload-1", "alice@example.com", "lease.pdf", "Lease summary.", "demo", older)
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM uploads WHERE owner_email = $1 ORDER BY created_at DESC")).
		WithArgs("alice@example.com").
		WillReturnRows(rows)

	uploads, err := db.ListUploadsByUser(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("ListUploadsByUser returned error: %v", err)
	}

	if len(uploads) != 2 {
		t.Fatalf("expected 2 uploads, got %d", len(uploads))
	}
	// Newest first, as the query orders them.
	if uploads[0].ID != "upload-2" || uploads[1].ID != "upload-1" {
		t.Errorf("unexpected order: %q then %q", uploads[0].ID, uploads[1].ID)
	}
}

func TestListUploadsByUserEmpty(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM uploads WHERE owner_email = $1 ORDER BY created_at DESC")).
		WithArgs("newcomer@example.com").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "owner_email", "filename", "summary", "mode", "created_at"}))

	uploads, err := db.ListUploadsByUser(context.Background(), "newcomer@example.com")
	if err != nil {
		t.Fatalf("ListUploadsByUser returned error: %v", err)
	}

	// A user with no history gets an empty list, not nil and not an error.
	if uploads == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(uploads) != 0 {
		t.Errorf("expected 0 uploads, got %d", len(uploads))
	}
}

func TestGetUpload(t *testing.T) {
	db, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "owner_email", "filename", "summary", "mode", "created_at"}).
		AddRow("upload-1", "alice@example.com", "lease.pdf", "Lease summary.", "demo", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM uploads WHERE id = $1")).
		WithArgs("upload-1").
		WillReturnRows(rows)

	up, err := db.GetUpload(context.Background(), "upload-1")
	if err != nil {
		t.Fatalf("GetUpload returned error: %v", err)
	}
	if up.OwnerEmail != "alice@example.com" || up.Filename != "lease.pdf" {
		t.Errorf("unexpected upload: %+v", up)
	}
}

func TestGetUploadNotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM uploads WHERE id = $1")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := db.GetUpload(context.Background(), "missing")
	if !errors.Is(err, ErrUploadNotFound) {
		t.Errorf("expected ErrUploadNotFound, got %v", err)
	}
}
