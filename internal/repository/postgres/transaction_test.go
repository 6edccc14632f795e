package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"autonom-backend/internal/domain"
)

var joinedTransactionColumns = []string{
	"id", "reservation_id", "amount_cents", "status", "created_on",
	"client_id", "vehicle_id", "start_date", "end_date", "r_status",
	"full_name",
	"make", "model", "plate_number",
}

func TestTransactionRepository_ListOverdue(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewTransactionRepository(db)
	ctx := context.Background()
	cutoff := time.Date(2026, 8, 13, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(joinedTransactionColumns).
		AddRow(9, 5, 45000, "unpaid", cutoff.Add(-72*time.Hour),
			1, 2, cutoff.Add(-96*time.Hour), cutoff.Add(-24*time.Hour), "active",
			"Ion Popescu",
			"Dacia", "Logan", "NT-01-ABC")

	mock.ExpectQuery("SELECT (.+) FROM transactions t").
		WithArgs(domain.TransactionStatusUnpaid, cutoff).
		WillReturnRows(rows)

	overdue, err := repo.ListOverdue(ctx, cutoff)
	assert.NoError(t, err)
	assert.Len(t, overdue, 1)
	assert.Equal(t, int32(9), overdue[0].ID)
	assert.Equal(t, domain.TransactionStatusUnpaid, overdue[0].Status)
	assert.Equal(t, "Ion Popescu", overdue[0].Reservation.Client.FullName)
	assert.Equal(t, "NT-01-ABC", overdue[0].Reservation.Vehicle.PlateNumber)
}

func TestTransactionRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewTransactionRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE transactions SET status").
			WithArgs(domain.TransactionStatusPaid, int32(9)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(ctx, 9, domain.TransactionStatusPaid)
		assert.NoError(t, err)
	})

	t.Run("Missing Row", func(t *testing.T) {
		mock.ExpectExec("UPDATE transactions SET status").
			WithArgs(domain.TransactionStatusPaid, int32(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(ctx, 99, domain.TransactionStatusPaid)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestTransactionRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewTransactionRepository(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM transactions").
		WithArgs(int32(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(ctx, 42))
}
