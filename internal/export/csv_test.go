package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"autonom-backend/internal/domain"
)

func TestClients(t *testing.T) {
	created := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	clients := []domain.Client{
		{FullName: "Ion Popescu", CNP: "1850101123456", Phone: "0722111222", Email: "ion@example.com", CreatedOn: created},
	}

	out, err := Clients(clients)
	assert.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, `"Nume Complet","CNP","Telefon","Email","Data Creării"`, lines[0])
	assert.Equal(t, `"Ion Popescu","1850101123456","0722111222","ion@example.com","15.03.2026"`, lines[1])
}

func TestClients_Empty(t *testing.T) {
	out, err := Clients(nil)
	assert.ErrorIs(t, err, ErrNoRecords)
	assert.Empty(t, out)
}

func TestVehicles_QuotesEveryField(t *testing.T) {
	vehicles := []domain.Vehicle{
		{Make: "Dacia", Model: "Logan", PlateNumber: "NT-01-ABC", Status: domain.VehicleStatusAvailable,
			CreatedOn: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)},
	}

	out, err := Vehicles(vehicles)
	assert.NoError(t, err)
	for _, line := range strings.Split(out, "\n") {
		assert.True(t, strings.HasPrefix(line, `"`))
		assert.True(t, strings.HasSuffix(line, `"`))
	}
	assert.Contains(t, out, `"02.01.2026"`)
}

func TestReservations_JoinedNames(t *testing.T) {
	reservations := []domain.Reservation{
		{
			StartDate: time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 8, 14, 0, 0, 0, 0, time.UTC),
			Status:    domain.ReservationStatusActive,
			Client:    &domain.Client{FullName: "Maria Ionescu"},
			Vehicle:   &domain.Vehicle{Make: "Skoda", Model: "Octavia"},
		},
	}

	out, err := Reservations(reservations)
	assert.NoError(t, err)
	assert.Contains(t, out, `"Maria Ionescu","Skoda Octavia","10.08.2026","14.08.2026","active"`)
}

func TestTransactions_RoundsToWholeRON(t *testing.T) {
	transactions := []domain.Transaction{
		{
			AmountCents: 45050,
			Status:      domain.TransactionStatusUnpaid,
			CreatedOn:   time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			Reservation: &domain.Reservation{
				Client:  &domain.Client{FullName: "Ion Popescu"},
				Vehicle: &domain.Vehicle{Make: "Dacia", Model: "Duster"},
			},
		},
	}

	out, err := Transactions(transactions)
	assert.NoError(t, err)
	assert.Contains(t, out, `"451 RON"`)
}

func TestJoinRows_DoublesEmbeddedQuotes(t *testing.T) {
	out := joinRows([][]string{{`zis "Bebe"`, "x"}})
	assert.Equal(t, `"zis ""Bebe""","x"`, out)
}
