package service

import (
	"context"

	"autonom-backend/internal/export"
	"autonom-backend/internal/repository"
)

type exportService struct {
	clientRepo      repository.ClientRepository
	vehicleRepo     repository.VehicleRepository
	reservationRepo repository.ReservationRepository
	transactionRepo repository.TransactionRepository
}

func NewExportService(
	clientRepo repository.ClientRepository,
	vehicleRepo repository.VehicleRepository,
	reservationRepo repository.ReservationRepository,
	transactionRepo repository.TransactionRepository,
) ExportService {
	return &exportService{
		clientRepo:      clientRepo,
		vehicleRepo:     vehicleRepo,
		reservationRepo: reservationRepo,
		transactionRepo: transactionRepo,
	}
}

func (s *exportService) Clients(ctx context.Context) (string, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return "", err
	}
	return export.Clients(clients)
}

func (s *exportService) Vehicles(ctx context.Context) (string, error) {
	vehicles, err := s.vehicleRepo.List(ctx)
	if err != nil {
		return "", err
	}
	return export.Vehicles(vehicles)
}

func (s *exportService) Reservations(ctx context.Context) (string, error) {
	reservations, err := s.reservationRepo.List(ctx)
	if err != nil {
		return "", err
	}
	return export.Reservations(reservations)
}

func (s *exportService) Transactions(ctx context.Context) (string, error) {
	transactions, err := s.transactionRepo.List(ctx)
	if err != nil {
		return "", err
	}
	return export.Transactions(transactions)
}
