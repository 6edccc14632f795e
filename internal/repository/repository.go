package repository

import (
	"context"
	"time"

	"autonom-backend/internal/domain"
)

type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id int32) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
}

type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetByID(ctx context.Context, id int32) (*domain.Vehicle, error)
	List(ctx context.Context) ([]domain.Vehicle, error)
	ListByStatus(ctx context.Context, status domain.VehicleStatus) ([]domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	UpdateStatus(ctx context.Context, id int32, status domain.VehicleStatus) error
	CountByStatus(ctx context.Context) (map[domain.VehicleStatus]int32, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id int32) (*domain.Reservation, error)
	// List returns reservations joined with their client and vehicle,
	// newest first.
	List(ctx context.Context) ([]domain.Reservation, error)
	ListByStatus(ctx context.Context, status domain.ReservationStatus) ([]domain.Reservation, error)
	// ListExpiring returns active reservations whose end date falls on or
	// before the given cutoff, joined with client and vehicle.
	ListExpiring(ctx context.Context, cutoff time.Time) ([]domain.Reservation, error)
	Update(ctx context.Context, r *domain.Reservation) error
}

type TransactionRepository interface {
	Create(ctx context.Context, t *domain.Transaction) error
	GetByID(ctx context.Context, id int32) (*domain.Transaction, error)
	// List returns transactions joined through their reservation to the
	// client and vehicle, newest first.
	List(ctx context.Context) ([]domain.Transaction, error)
	// ListOverdue returns unpaid transactions created before the cutoff.
	ListOverdue(ctx context.Context, cutoff time.Time) ([]domain.Transaction, error)
	UpdateStatus(ctx context.Context, id int32, status domain.TransactionStatus) error
	// Delete removes a transaction. Used only to unwind a partially
	// completed booking.
	Delete(ctx context.Context, id int32) error
}

type DocumentRepository interface {
	Create(ctx context.Context, d *domain.Document) error
	GetByID(ctx context.Context, id int32) (*domain.Document, error)
	List(ctx context.Context) ([]domain.Document, error)
}

type StaffRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.StaffUser, error)
	Create(ctx context.Context, u *domain.StaffUser) error
}
