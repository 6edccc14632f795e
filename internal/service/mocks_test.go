package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"autonom-backend/internal/domain"
)

type MockClientRepo struct{ mock.Mock }

func (m *MockClientRepo) Create(ctx context.Context, c *domain.Client) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockClientRepo) GetByID(ctx context.Context, id int32) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepo) List(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepo) Update(ctx context.Context, c *domain.Client) error {
	return m.Called(ctx, c).Error(0)
}

type MockVehicleRepo struct{ mock.Mock }

func (m *MockVehicleRepo) Create(ctx context.Context, v *domain.Vehicle) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVehicleRepo) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepo) List(ctx context.Context) ([]domain.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepo) ListByStatus(ctx context.Context, status domain.VehicleStatus) ([]domain.Vehicle, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepo) Update(ctx context.Context, v *domain.Vehicle) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVehicleRepo) UpdateStatus(ctx context.Context, id int32, status domain.VehicleStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockVehicleRepo) CountByStatus(ctx context.Context) (map[domain.VehicleStatus]int32, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.VehicleStatus]int32), args.Error(1)
}

type MockReservationRepo struct{ mock.Mock }

func (m *MockReservationRepo) Create(ctx context.Context, r *domain.Reservation) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockReservationRepo) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepo) List(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepo) ListByStatus(ctx context.Context, status domain.ReservationStatus) ([]domain.Reservation, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepo) ListExpiring(ctx context.Context, cutoff time.Time) ([]domain.Reservation, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepo) Update(ctx context.Context, r *domain.Reservation) error {
	return m.Called(ctx, r).Error(0)
}

type MockTransactionRepo struct{ mock.Mock }

func (m *MockTransactionRepo) Create(ctx context.Context, t *domain.Transaction) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTransactionRepo) GetByID(ctx context.Context, id int32) (*domain.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepo) List(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepo) ListOverdue(ctx context.Context, cutoff time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepo) UpdateStatus(ctx context.Context, id int32, status domain.TransactionStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockTransactionRepo) Delete(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}

type MockStaffRepo struct{ mock.Mock }

func (m *MockStaffRepo) GetByUsername(ctx context.Context, username string) (*domain.StaffUser, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaffUser), args.Error(1)
}

func (m *MockStaffRepo) Create(ctx context.Context, u *domain.StaffUser) error {
	return m.Called(ctx, u).Error(0)
}
