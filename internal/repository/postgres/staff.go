package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"autonom-backend/internal/domain"
	"autonom-backend/internal/repository"
)

type staffRepository struct {
	db *sql.DB
}

func NewStaffRepository(db *sql.DB) repository.StaffRepository {
	return &staffRepository{db: db}
}

func (r *staffRepository) GetByUsername(ctx context.Context, username string) (*domain.StaffUser, error) {
	u := &domain.StaffUser{}
	query := `SELECT id, username, password_hash, full_name, created_on FROM staff_users WHERE username = $1`
	err := r.db.QueryRowContext(ctx, query, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.FullName, &u.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *staffRepository) Create(ctx context.Context, u *domain.StaffUser) error {
	query := `INSERT INTO staff_users (username, password_hash, full_name, created_on)
	          VALUES ($1, $2, $3, $4) RETURNING id, created_on`
	return r.db.QueryRowContext(ctx, query, u.Username, u.PasswordHash, u.FullName, time.Now()).Scan(&u.ID, &u.CreatedOn)
}
