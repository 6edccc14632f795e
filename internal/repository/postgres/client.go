package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"autonom-backend/internal/domain"
	"autonom-backend/internal/repository"
)

type clientRepository struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) repository.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, c *domain.Client) error {
	query := `INSERT INTO clients (full_name, cnp, id_card_number, passport_number, driver_license, phone, email, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_on`
	return r.db.QueryRowContext(ctx, query,
		c.FullName, c.CNP, c.IDCardNumber, c.PassportNumber, c.DriverLicense, c.Phone, c.Email, time.Now(),
	).Scan(&c.ID, &c.CreatedOn)
}

func (r *clientRepository) GetByID(ctx context.Context, id int32) (*domain.Client, error) {
	c := &domain.Client{}
	query := `SELECT id, full_name, cnp, id_card_number, passport_number, driver_license, phone, email, created_on
	          FROM clients WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.FullName, &c.CNP, &c.IDCardNumber, &c.PassportNumber, &c.DriverLicense, &c.Phone, &c.Email, &c.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *clientRepository) List(ctx context.Context) ([]domain.Client, error) {
	query := `SELECT id, full_name, cnp, id_card_number, passport_number, driver_license, phone, email, created_on
	          FROM clients ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ID, &c.FullName, &c.CNP, &c.IDCardNumber, &c.PassportNumber, &c.DriverLicense, &c.Phone, &c.Email, &c.CreatedOn); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (r *clientRepository) Update(ctx context.Context, c *domain.Client) error {
	query := `UPDATE clients SET full_name=$1, cnp=$2, id_card_number=$3, passport_number=$4, driver_license=$5, phone=$6, email=$7 WHERE id=$8`
	_, err := r.db.ExecContext(ctx, query, c.FullName, c.CNP, c.IDCardNumber, c.PassportNumber, c.DriverLicense, c.Phone, c.Email, c.ID)
	return err
}
