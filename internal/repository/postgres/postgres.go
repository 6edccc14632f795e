package postgres

import (
	"database/sql"

	"autonom-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ClientRepository
	repository.VehicleRepository
	repository.ReservationRepository
	repository.TransactionRepository
	repository.DocumentRepository
	repository.StaffRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		ClientRepository:      NewClientRepository(db),
		VehicleRepository:     NewVehicleRepository(db),
		ReservationRepository: NewReservationRepository(db),
		TransactionRepository: NewTransactionRepository(db),
		DocumentRepository:    NewDocumentRepository(db),
		StaffRepository:       NewStaffRepository(db),
	}
}
