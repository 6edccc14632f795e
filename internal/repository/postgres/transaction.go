package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"autonom-backend/internal/domain"
	"autonom-backend/internal/repository"
)

type transactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, t *domain.Transaction) error {
	query := `INSERT INTO transactions (reservation_id, amount_cents, status, created_on)
	          VALUES ($1, $2, $3, $4) RETURNING id, created_on`
	return r.db.QueryRowContext(ctx, query,
		t.ReservationID, t.AmountCents, t.Status, time.Now(),
	).Scan(&t.ID, &t.CreatedOn)
}

const joinedTransactionQuery = `
	SELECT t.id, t.reservation_id, t.amount_cents, t.status, t.created_on,
	       r.client_id, r.vehicle_id, r.start_date, r.end_date, r.status,
	       c.full_name,
	       v.make, v.model, v.plate_number
	FROM transactions t
	JOIN reservations r ON t.reservation_id = r.id
	JOIN clients c ON r.client_id = c.id
	JOIN vehicles v ON r.vehicle_id = v.id`

func (r *transactionRepository) GetByID(ctx context.Context, id int32) (*domain.Transaction, error) {
	row := r.db.QueryRowContext(ctx, joinedTransactionQuery+` WHERE t.id = $1`, id)
	t, err := scanJoinedTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *transactionRepository) List(ctx context.Context) ([]domain.Transaction, error) {
	return r.queryJoined(ctx, joinedTransactionQuery+` ORDER BY t.created_on DESC`)
}

func (r *transactionRepository) ListOverdue(ctx context.Context, cutoff time.Time) ([]domain.Transaction, error) {
	query := joinedTransactionQuery + ` WHERE t.status = $1 AND t.created_on < $2 ORDER BY t.created_on ASC`
	return r.queryJoined(ctx, query, domain.TransactionStatusUnpaid, cutoff)
}

func (r *transactionRepository) queryJoined(ctx context.Context, query string, args ...interface{}) ([]domain.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		t, err := scanJoinedTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *t)
	}
	return transactions, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanJoinedTransaction(row rowScanner) (*domain.Transaction, error) {
	var t domain.Transaction
	var rv domain.Reservation
	var c domain.Client
	var v domain.Vehicle
	if err := row.Scan(
		&t.ID, &t.ReservationID, &t.AmountCents, &t.Status, &t.CreatedOn,
		&rv.ClientID, &rv.VehicleID, &rv.StartDate, &rv.EndDate, &rv.Status,
		&c.FullName,
		&v.Make, &v.Model, &v.PlateNumber,
	); err != nil {
		return nil, err
	}
	rv.ID = t.ReservationID
	c.ID = rv.ClientID
	v.ID = rv.VehicleID
	rv.Client = &c
	rv.Vehicle = &v
	t.Reservation = &rv
	return &t, nil
}

func (r *transactionRepository) UpdateStatus(ctx context.Context, id int32, status domain.TransactionStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE transactions SET status=$1 WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *transactionRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id=$1`, id)
	return err
}
