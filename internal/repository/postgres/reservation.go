package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"autonom-backend/internal/domain"
	"autonom-backend/internal/repository"
)

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Create(ctx context.Context, rv *domain.Reservation) error {
	query := `INSERT INTO reservations (client_id, vehicle_id, start_date, end_date, status, notes, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_on`
	return r.db.QueryRowContext(ctx, query,
		rv.ClientID, rv.VehicleID, rv.StartDate, rv.EndDate, rv.Status, rv.Notes, time.Now(),
	).Scan(&rv.ID, &rv.CreatedOn)
}

func (r *reservationRepository) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	rv := &domain.Reservation{}
	query := `SELECT id, client_id, vehicle_id, start_date, end_date, status, notes, created_on
	          FROM reservations WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rv.ID, &rv.ClientID, &rv.VehicleID, &rv.StartDate, &rv.EndDate, &rv.Status, &rv.Notes, &rv.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rv, nil
}

const joinedReservationQuery = `
	SELECT r.id, r.client_id, r.vehicle_id, r.start_date, r.end_date, r.status, r.notes, r.created_on,
	       c.full_name, c.phone, c.email,
	       v.make, v.model, v.plate_number, v.status
	FROM reservations r
	JOIN clients c ON r.client_id = c.id
	JOIN vehicles v ON r.vehicle_id = v.id`

func (r *reservationRepository) List(ctx context.Context) ([]domain.Reservation, error) {
	return r.queryJoined(ctx, joinedReservationQuery+` ORDER BY r.created_on DESC`)
}

func (r *reservationRepository) ListByStatus(ctx context.Context, status domain.ReservationStatus) ([]domain.Reservation, error) {
	return r.queryJoined(ctx, joinedReservationQuery+` WHERE r.status = $1 ORDER BY r.created_on DESC`, status)
}

func (r *reservationRepository) ListExpiring(ctx context.Context, cutoff time.Time) ([]domain.Reservation, error) {
	query := joinedReservationQuery + ` WHERE r.status = $1 AND r.end_date <= $2 ORDER BY r.end_date ASC`
	return r.queryJoined(ctx, query, domain.ReservationStatusActive, cutoff)
}

func (r *reservationRepository) queryJoined(ctx context.Context, query string, args ...interface{}) ([]domain.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		var rv domain.Reservation
		var c domain.Client
		var v domain.Vehicle
		if err := rows.Scan(
			&rv.ID, &rv.ClientID, &rv.VehicleID, &rv.StartDate, &rv.EndDate, &rv.Status, &rv.Notes, &rv.CreatedOn,
			&c.FullName, &c.Phone, &c.Email,
			&v.Make, &v.Model, &v.PlateNumber, &v.Status,
		); err != nil {
			return nil, err
		}
		c.ID = rv.ClientID
		v.ID = rv.VehicleID
		rv.Client = &c
		rv.Vehicle = &v
		reservations = append(reservations, rv)
	}
	return reservations, rows.Err()
}

func (r *reservationRepository) Update(ctx context.Context, rv *domain.Reservation) error {
	query := `UPDATE reservations SET status=$1, notes=$2, start_date=$3, end_date=$4 WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query, rv.Status, rv.Notes, rv.StartDate, rv.EndDate, rv.ID)
	return err
}
