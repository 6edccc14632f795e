package report

import (
	"strconv"

	"autonom-backend/internal/domain"
)

// Designated search fields per entity, as offered by the search forms.

func ClientSearchFields(c domain.Client) []string {
	return []string{c.FullName, c.CNP, c.Phone, c.Email}
}

func VehicleSearchFields(v domain.Vehicle) []string {
	return []string{v.Make, v.Model, v.PlateNumber}
}

func ReservationSearchFields(r domain.Reservation) []string {
	fields := make([]string, 0, 3)
	if r.Client != nil {
		fields = append(fields, r.Client.FullName)
	}
	if r.Vehicle != nil {
		fields = append(fields, r.Vehicle.Make, r.Vehicle.Model)
	}
	return fields
}

func TransactionSearchFields(t domain.Transaction) []string {
	fields := []string{strconv.FormatInt(t.AmountWhole(), 10)}
	if t.Reservation == nil {
		return fields
	}
	if t.Reservation.Client != nil {
		fields = append(fields, t.Reservation.Client.FullName)
	}
	if t.Reservation.Vehicle != nil {
		fields = append(fields, t.Reservation.Vehicle.Make, t.Reservation.Vehicle.Model)
	}
	return fields
}
