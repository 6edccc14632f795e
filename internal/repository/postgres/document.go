package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"autonom-backend/internal/domain"
	"autonom-backend/internal/repository"
)

type documentRepository struct {
	db *sql.DB
}

func NewDocumentRepository(db *sql.DB) repository.DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(ctx context.Context, d *domain.Document) error {
	query := `INSERT INTO documents (file_name, storage_key, file_size, mime_type, kind, reservation_id, uploaded_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, uploaded_on`
	return r.db.QueryRowContext(ctx, query,
		d.FileName, d.StorageKey, d.FileSize, d.MimeType, d.Kind, d.ReservationID, time.Now(),
	).Scan(&d.ID, &d.UploadedOn)
}

func (r *documentRepository) GetByID(ctx context.Context, id int32) (*domain.Document, error) {
	d := &domain.Document{}
	query := `SELECT id, file_name, storage_key, file_size, mime_type, kind, reservation_id, uploaded_on
	          FROM documents WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&d.ID, &d.FileName, &d.StorageKey, &d.FileSize, &d.MimeType, &d.Kind, &d.ReservationID, &d.UploadedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *documentRepository) List(ctx context.Context) ([]domain.Document, error) {
	query := `SELECT id, file_name, storage_key, file_size, mime_type, kind, reservation_id, uploaded_on
	          FROM documents ORDER BY uploaded_on DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		var d domain.Document
		if err := rows.Scan(&d.ID, &d.FileName, &d.StorageKey, &d.FileSize, &d.MimeType, &d.Kind, &d.ReservationID, &d.UploadedOn); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}
