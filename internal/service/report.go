package service

import (
	"context"
	"time"

	"autonom-backend/internal/domain"
	"autonom-backend/internal/report"
	"autonom-backend/internal/repository"
)

type reportService struct {
	clientRepo      repository.ClientRepository
	vehicleRepo     repository.VehicleRepository
	reservationRepo repository.ReservationRepository
	transactionRepo repository.TransactionRepository
}

func NewReportService(
	clientRepo repository.ClientRepository,
	vehicleRepo repository.VehicleRepository,
	reservationRepo repository.ReservationRepository,
	transactionRepo repository.TransactionRepository,
) ReportService {
	return &reportService{
		clientRepo:      clientRepo,
		vehicleRepo:     vehicleRepo,
		reservationRepo: reservationRepo,
		transactionRepo: transactionRepo,
	}
}

// Dashboard computes the headline figures. Revenue counts paid
// transactions only; the unpaid total is reported separately.
func (s *reportService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	vehicles, err := s.vehicleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	active, err := s.reservationRepo.ListByStatus(ctx, domain.ReservationStatusActive)
	if err != nil {
		return nil, err
	}
	transactions, err := s.transactionRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalClients:       int32(len(clients)),
		TotalVehicles:      int32(len(vehicles)),
		ActiveReservations: int32(len(active)),
	}
	for _, v := range vehicles {
		switch v.Status {
		case domain.VehicleStatusAvailable:
			stats.AvailableVehicles++
		case domain.VehicleStatusRented:
			stats.RentedVehicles++
		case domain.VehicleStatusMaintenance:
			stats.MaintenanceVehicles++
		}
	}
	if stats.TotalVehicles > 0 {
		stats.OccupancyRate = float64(stats.RentedVehicles) / float64(stats.TotalVehicles)
	}

	now := time.Now()
	for _, t := range transactions {
		switch t.Status {
		case domain.TransactionStatusPaid:
			stats.TotalRevenue += t.AmountCents
			if t.CreatedOn.Year() == now.Year() && t.CreatedOn.Month() == now.Month() {
				stats.MonthRevenue += t.AmountCents
			}
		case domain.TransactionStatusUnpaid:
			stats.UnpaidAmount += t.AmountCents
		}
	}
	return stats, nil
}

func (s *reportService) MonthlyRevenue(ctx context.Context) ([]report.Bucket, error) {
	paid, err := s.paidTransactions(ctx)
	if err != nil {
		return nil, err
	}
	return report.Aggregate(paid, transactionTime, transactionAmount,
		report.GranularityMonth, time.Now(), report.DefaultMonthBuckets), nil
}

func (s *reportService) MonthlyReservations(ctx context.Context) ([]report.Bucket, error) {
	reservations, err := s.reservationRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return report.Count(reservations,
		func(r domain.Reservation) time.Time { return r.CreatedOn },
		report.GranularityMonth, time.Now(), report.DefaultMonthBuckets), nil
}

func (s *reportService) YearlyRevenue(ctx context.Context) ([]report.Bucket, error) {
	paid, err := s.paidTransactions(ctx)
	if err != nil {
		return nil, err
	}
	return report.Aggregate(paid, transactionTime, transactionAmount,
		report.GranularityYear, time.Now(), report.DefaultYearBuckets), nil
}

func (s *reportService) VehicleStatusBreakdown(ctx context.Context) ([]VehicleStatusCount, error) {
	counts, err := s.vehicleRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	// Fixed order so the chart legend is stable.
	statuses := []domain.VehicleStatus{
		domain.VehicleStatusAvailable,
		domain.VehicleStatusRented,
		domain.VehicleStatusMaintenance,
	}
	out := make([]VehicleStatusCount, 0, len(statuses))
	for _, st := range statuses {
		out = append(out, VehicleStatusCount{Status: st, Count: counts[st]})
	}
	return out, nil
}

func (s *reportService) paidTransactions(ctx context.Context) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	var paid []domain.Transaction
	for _, t := range transactions {
		if t.Status == domain.TransactionStatusPaid {
			paid = append(paid, t)
		}
	}
	return paid, nil
}

func transactionTime(t domain.Transaction) time.Time { return t.CreatedOn }
func transactionAmount(t domain.Transaction) int64   { return t.AmountCents }
