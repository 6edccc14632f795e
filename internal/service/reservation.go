package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"autonom-backend/internal/domain"
	"autonom-backend/internal/logger"
	"autonom-backend/internal/report"
	"autonom-backend/internal/repository"
)

type reservationService struct {
	reservationRepo repository.ReservationRepository
	transactionRepo repository.TransactionRepository
	vehicleRepo     repository.VehicleRepository
	clientRepo      repository.ClientRepository
}

func NewReservationService(
	reservationRepo repository.ReservationRepository,
	transactionRepo repository.TransactionRepository,
	vehicleRepo repository.VehicleRepository,
	clientRepo repository.ClientRepository,
) ReservationService {
	return &reservationService{
		reservationRepo: reservationRepo,
		transactionRepo: transactionRepo,
		vehicleRepo:     vehicleRepo,
		clientRepo:      clientRepo,
	}
}

// Book opens a reservation together with its unpaid transaction and marks
// the vehicle rented. The steps run in a fixed order; a failure at any
// step undoes the earlier writes so no half-booked state survives.
func (s *reservationService) Book(ctx context.Context, req BookingRequest) (*domain.Reservation, error) {
	if req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("%w: end date cannot be before start date", domain.ErrValidation)
	}
	if req.AmountCents < 0 {
		return nil, fmt.Errorf("%w: amount cannot be negative", domain.ErrValidation)
	}
	if _, err := s.clientRepo.GetByID(ctx, req.ClientID); err != nil {
		return nil, fmt.Errorf("booking failed at client lookup: %w", err)
	}

	// Step 1: the vehicle must be available right now.
	vehicle, err := s.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("booking failed at vehicle lookup: %w", err)
	}
	if vehicle.Status != domain.VehicleStatusAvailable {
		return nil, domain.ErrVehicleUnavailable
	}

	// Step 2: open the reservation.
	reservation := &domain.Reservation{
		ClientID:  req.ClientID,
		VehicleID: req.VehicleID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    domain.ReservationStatusActive,
		Notes:     req.Notes,
	}
	if err := s.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, fmt.Errorf("%w at reservation creation: %v", domain.ErrBookingFailed, err)
	}

	// Step 3: record the unpaid transaction.
	transaction := &domain.Transaction{
		ReservationID: reservation.ID,
		AmountCents:   req.AmountCents,
		Status:        domain.TransactionStatusUnpaid,
	}
	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		s.cancelReservation(ctx, reservation)
		return nil, fmt.Errorf("%w at transaction creation: %v", domain.ErrBookingFailed, err)
	}

	// Step 4: take the vehicle off the available pool.
	if err := s.vehicleRepo.UpdateStatus(ctx, req.VehicleID, domain.VehicleStatusRented); err != nil {
		if derr := s.transactionRepo.Delete(ctx, transaction.ID); derr != nil {
			logger.Error("failed to unwind transaction after booking failure", "transaction_id", transaction.ID, "error", derr)
		}
		s.cancelReservation(ctx, reservation)
		return nil, fmt.Errorf("%w at vehicle status update: %v", domain.ErrBookingFailed, err)
	}

	logger.Info("reservation booked",
		"reservation_id", reservation.ID,
		"client_id", req.ClientID,
		"vehicle_id", req.VehicleID,
		"amount_cents", req.AmountCents)
	return reservation, nil
}

func appendNote(r *domain.Reservation, label, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if r.Notes != "" {
		r.Notes += "\n"
	}
	r.Notes += label + text
}

func (s *reservationService) cancelReservation(ctx context.Context, r *domain.Reservation) {
	r.Status = domain.ReservationStatusCancelled
	if err := s.reservationRepo.Update(ctx, r); err != nil {
		logger.Error("failed to unwind reservation after booking failure", "reservation_id", r.ID, "error", err)
	}
}

func (s *reservationService) Get(ctx context.Context, id int32) (*domain.Reservation, error) {
	return s.reservationRepo.GetByID(ctx, id)
}

func (s *reservationService) List(ctx context.Context, query, status string, from, to *time.Time) ([]domain.Reservation, error) {
	reservations, err := s.reservationRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	reservations = report.Search(reservations, query, report.ReservationSearchFields)
	reservations = report.ByStatus(reservations, status, func(r domain.Reservation) string { return string(r.Status) })
	reservations = report.ByDateRange(reservations, from, to, func(r domain.Reservation) time.Time { return r.StartDate })
	return reservations, nil
}

// Return closes an active reservation, appends the condition notes and
// damage report taken at handover and puts the vehicle back in the
// available pool.
func (s *reservationService) Return(ctx context.Context, id int32, conditionNotes, damageReport string) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reservation.Status != domain.ReservationStatusActive {
		return nil, domain.ErrNotActive
	}

	reservation.Status = domain.ReservationStatusCompleted
	appendNote(reservation, "Predare: ", conditionNotes)
	appendNote(reservation, "Raport daune: ", damageReport)
	if err := s.reservationRepo.Update(ctx, reservation); err != nil {
		return nil, err
	}

	if err := s.vehicleRepo.UpdateStatus(ctx, reservation.VehicleID, domain.VehicleStatusAvailable); err != nil {
		return nil, fmt.Errorf("reservation completed but vehicle release failed: %w", err)
	}

	logger.Info("reservation returned", "reservation_id", id, "vehicle_id", reservation.VehicleID)
	return reservation, nil
}
