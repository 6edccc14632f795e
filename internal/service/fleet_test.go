package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"autonom-backend/internal/domain"
)

func TestFleetService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults To Available And Uppercases Plate", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		vehicleRepo.On("Create", ctx, mock.AnythingOfType("*domain.Vehicle")).Return(nil)
		svc := NewFleetService(vehicleRepo)

		v := &domain.Vehicle{Make: "Dacia", Model: "Logan", PlateNumber: " nt-01-abc "}
		err := svc.Add(ctx, v)
		assert.NoError(t, err)
		assert.Equal(t, domain.VehicleStatusAvailable, v.Status)
		assert.Equal(t, "NT-01-ABC", v.PlateNumber)
	})

	t.Run("Rejects Missing Plate", func(t *testing.T) {
		svc := NewFleetService(new(MockVehicleRepo))
		err := svc.Add(ctx, &domain.Vehicle{Make: "Dacia", Model: "Logan"})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Rejects Unknown Status", func(t *testing.T) {
		svc := NewFleetService(new(MockVehicleRepo))
		err := svc.Add(ctx, &domain.Vehicle{Make: "Dacia", Model: "Logan", PlateNumber: "NT-01-ABC", Status: "parked"})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestFleetService_List(t *testing.T) {
	ctx := context.Background()
	vehicleRepo := new(MockVehicleRepo)
	svc := NewFleetService(vehicleRepo)

	vehicleRepo.On("List", ctx).Return([]domain.Vehicle{
		{ID: 1, Make: "Dacia", Model: "Logan", PlateNumber: "NT-01-ABC", Status: domain.VehicleStatusAvailable},
		{ID: 2, Make: "Dacia", Model: "Duster", PlateNumber: "NT-02-XYZ", Status: domain.VehicleStatusRented},
		{ID: 3, Make: "Skoda", Model: "Octavia", PlateNumber: "B-100-DEF", Status: domain.VehicleStatusAvailable},
	}, nil)

	t.Run("Search And Status Combined", func(t *testing.T) {
		out, err := svc.List(ctx, "dacia", "available")
		assert.NoError(t, err)
		assert.Len(t, out, 1)
		assert.Equal(t, int32(1), out[0].ID)
	})

	t.Run("All Sentinel", func(t *testing.T) {
		out, err := svc.List(ctx, "", "all")
		assert.NoError(t, err)
		assert.Len(t, out, 3)
	})
}

func TestFleetService_SetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		vehicleRepo.On("UpdateStatus", ctx, int32(1), domain.VehicleStatusMaintenance).Return(nil)
		svc := NewFleetService(vehicleRepo)
		assert.NoError(t, svc.SetStatus(ctx, 1, domain.VehicleStatusMaintenance))
	})

	t.Run("Unknown Status", func(t *testing.T) {
		svc := NewFleetService(new(MockVehicleRepo))
		assert.ErrorIs(t, svc.SetStatus(ctx, 1, "parked"), domain.ErrValidation)
	})
}
