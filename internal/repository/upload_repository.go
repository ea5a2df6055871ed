package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/etfview/etf-analyzer-backend/internal/model"
)

// UploadRepository provides data access methods for the upload audit
// table. It records which files were loaded and when; it never holds
// the parsed data itself.
type UploadRepository struct {
	db *sql.DB
}

// NewUploadRepository creates a new UploadRepository with the provided database connection.
func NewUploadRepository(db *sql.DB) *UploadRepository {
	return &UploadRepository{db: db}
}

// Insert records a successful upload.
func (r *UploadRepository) Insert(upload model.Upload) error {
	query := `
          INSERT INTO upload (id, kind, filename, size_bytes, record_count, uploaded_at)
          VALUES (?, ?, ?, ?, ?, ?)
      `
	_, err := r.db.Exec(
		query,
		upload.ID,
		upload.Kind,
		upload.Filename,
		upload.SizeBytes,
		upload.RecordCount,
		upload.UploadedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert upload record: %w", err)
	}

	return nil
}

// List retrieves the most recent uploads, newest first.
func (r *UploadRepository) List(limit int) ([]model.Upload, error) {
	query := `
          SELECT id, kind, filename, size_bytes, record_count, uploaded_at
          FROM upload
          ORDER BY uploaded_at DESC, id
          LIMIT ?
      `
	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query upload table: %w", err)
	}
	defer rows.Close()

	uploads := []model.Upload{}

	for rows.Next() {
		var u model.Upload

		err := rows.Scan(
			&u.ID,
			&u.Kind,
			&u.Filename,
			&u.SizeBytes,
			&u.RecordCount,
			&u.UploadedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan upload table results: %w", err)
		}

		uploads = append(uploads, u)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating upload table: %w", err)
	}

	return uploads, nil
}

// DeleteOlderThan removes audit rows uploaded before the cutoff and
// returns how many were removed.
func (r *UploadRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	result, err := r.db.Exec(`DELETE FROM upload WHERE uploaded_at < ?`, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to delete upload records: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted upload records: %w", err)
	}

	return deleted, nil
}
