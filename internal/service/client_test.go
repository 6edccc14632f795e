package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"autonom-backend/internal/domain"
)

func TestClientService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Normalizes CNP", func(t *testing.T) {
		clientRepo := new(MockClientRepo)
		clientRepo.On("Create", ctx, mock.AnythingOfType("*domain.Client")).Return(nil)
		svc := NewClientService(clientRepo)

		c := &domain.Client{
			FullName:      "Ion Popescu",
			CNP:           "1 850101 123456",
			IDCardNumber:  "NT123456",
			DriverLicense: "B123456",
			Phone:         "0722111222",
			Email:         "ion@example.com",
		}
		err := svc.Create(ctx, c)
		assert.NoError(t, err)
		assert.Equal(t, "1850101123456", c.CNP)
	})

	t.Run("Rejects Short CNP", func(t *testing.T) {
		clientRepo := new(MockClientRepo)
		svc := NewClientService(clientRepo)

		err := svc.Create(ctx, &domain.Client{
			FullName:      "Ion Popescu",
			CNP:           "185010112345",
			IDCardNumber:  "NT123456",
			DriverLicense: "B123456",
			Phone:         "0722111222",
			Email:         "ion@example.com",
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
		clientRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Rejects Missing Email", func(t *testing.T) {
		clientRepo := new(MockClientRepo)
		svc := NewClientService(clientRepo)

		err := svc.Create(ctx, &domain.Client{
			FullName:      "Ion Popescu",
			CNP:           "1850101123456",
			IDCardNumber:  "NT123456",
			DriverLicense: "B123456",
			Phone:         "0722111222",
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
		clientRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Passport Alone Is Enough", func(t *testing.T) {
		clientRepo := new(MockClientRepo)
		clientRepo.On("Create", ctx, mock.AnythingOfType("*domain.Client")).Return(nil)
		svc := NewClientService(clientRepo)

		err := svc.Create(ctx, &domain.Client{
			FullName:       "John Smith",
			PassportNumber: "P1234567",
			DriverLicense:  "DL998877",
			Phone:          "+44 7700 900123",
			Email:          "john.smith@example.co.uk",
		})
		assert.NoError(t, err)
	})
}

func TestClientService_List_Search(t *testing.T) {
	ctx := context.Background()
	clientRepo := new(MockClientRepo)
	svc := NewClientService(clientRepo)

	clientRepo.On("List", ctx).Return([]domain.Client{
		{ID: 1, FullName: "Ion Popescu", Phone: "0722111222"},
		{ID: 2, FullName: "Maria Ionescu", Phone: "0733444555"},
	}, nil)

	t.Run("By Name Fragment", func(t *testing.T) {
		out, err := svc.List(ctx, "IONESCU")
		assert.NoError(t, err)
		assert.Len(t, out, 1)
		assert.Equal(t, int32(2), out[0].ID)
	})

	t.Run("By Phone", func(t *testing.T) {
		out, err := svc.List(ctx, "0722")
		assert.NoError(t, err)
		assert.Len(t, out, 1)
		assert.Equal(t, int32(1), out[0].ID)
	})

	t.Run("Blank Query Returns Everyone", func(t *testing.T) {
		out, err := svc.List(ctx, "")
		assert.NoError(t, err)
		assert.Len(t, out, 2)
	})
}
