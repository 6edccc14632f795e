package service

import (
	"context"
	"fmt"
	"strings"

	"autonom-backend/internal/domain"
	"autonom-backend/internal/logger"
	"autonom-backend/internal/report"
	"autonom-backend/internal/repository"
)

type fleetService struct {
	vehicleRepo repository.VehicleRepository
}

func NewFleetService(vehicleRepo repository.VehicleRepository) FleetService {
	return &fleetService{vehicleRepo: vehicleRepo}
}

func (s *fleetService) Add(ctx context.Context, v *domain.Vehicle) error {
	if err := checkVehicle(v); err != nil {
		return err
	}
	if v.Status == "" {
		v.Status = domain.VehicleStatusAvailable
	}
	v.PlateNumber = strings.ToUpper(strings.TrimSpace(v.PlateNumber))

	if err := s.vehicleRepo.Create(ctx, v); err != nil {
		return err
	}
	logger.Info("vehicle added", "vehicle_id", v.ID, "plate_number", v.PlateNumber)
	return nil
}

func (s *fleetService) Get(ctx context.Context, id int32) (*domain.Vehicle, error) {
	return s.vehicleRepo.GetByID(ctx, id)
}

func (s *fleetService) List(ctx context.Context, query, status string) ([]domain.Vehicle, error) {
	vehicles, err := s.vehicleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	vehicles = report.Search(vehicles, query, report.VehicleSearchFields)
	vehicles = report.ByStatus(vehicles, status, func(v domain.Vehicle) string { return string(v.Status) })
	return vehicles, nil
}

func (s *fleetService) Update(ctx context.Context, v *domain.Vehicle) error {
	if err := checkVehicle(v); err != nil {
		return err
	}
	v.PlateNumber = strings.ToUpper(strings.TrimSpace(v.PlateNumber))
	return s.vehicleRepo.Update(ctx, v)
}

func (s *fleetService) SetStatus(ctx context.Context, id int32, status domain.VehicleStatus) error {
	if !domain.ValidVehicleStatus(status) {
		return fmt.Errorf("%w: unknown vehicle status %q", domain.ErrValidation, status)
	}
	return s.vehicleRepo.UpdateStatus(ctx, id, status)
}

func checkVehicle(v *domain.Vehicle) error {
	if strings.TrimSpace(v.Make) == "" || strings.TrimSpace(v.Model) == "" {
		return fmt.Errorf("%w: make and model are required", domain.ErrValidation)
	}
	if strings.TrimSpace(v.PlateNumber) == "" {
		return fmt.Errorf("%w: plate number is required", domain.ErrValidation)
	}
	if v.MileageKM < 0 {
		return fmt.Errorf("%w: mileage cannot be negative", domain.ErrValidation)
	}
	if v.Status != "" && !domain.ValidVehicleStatus(v.Status) {
		return fmt.Errorf("%w: unknown vehicle status %q", domain.ErrValidation, v.Status)
	}
	return nil
}
