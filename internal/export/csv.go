package export

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"autonom-backend/internal/domain"
)

// ErrNoRecords is returned when an export is requested over an empty
// collection; the caller shows a notice instead of producing an empty file.
var ErrNoRecords = errors.New("no records available for export")

// dateLayout is the Romanian short date format used on all exports.
const dateLayout = "02.01.2006"

// Clients renders the client list as delimited text with the canonical
// column set. Every field is individually quoted.
func Clients(clients []domain.Client) (string, error) {
	if len(clients) == 0 {
		return "", ErrNoRecords
	}
	rows := [][]string{{"Nume Complet", "CNP", "Telefon", "Email", "Data Creării"}}
	for _, c := range clients {
		rows = append(rows, []string{c.FullName, c.CNP, c.Phone, c.Email, formatDate(c.CreatedOn)})
	}
	return joinRows(rows), nil
}

func Vehicles(vehicles []domain.Vehicle) (string, error) {
	if len(vehicles) == 0 {
		return "", ErrNoRecords
	}
	rows := [][]string{{"Marca", "Model", "Număr Înmatriculare", "Status", "Data Creării"}}
	for _, v := range vehicles {
		rows = append(rows, []string{v.Make, v.Model, v.PlateNumber, string(v.Status), formatDate(v.CreatedOn)})
	}
	return joinRows(rows), nil
}

func Reservations(reservations []domain.Reservation) (string, error) {
	if len(reservations) == 0 {
		return "", ErrNoRecords
	}
	rows := [][]string{{"Client", "Vehicul", "Data Început", "Data Sfârșit", "Status"}}
	for _, r := range reservations {
		var clientName, vehicleName string
		if r.Client != nil {
			clientName = r.Client.FullName
		}
		if r.Vehicle != nil {
			vehicleName = strings.TrimSpace(r.Vehicle.Make + " " + r.Vehicle.Model)
		}
		rows = append(rows, []string{clientName, vehicleName, formatDate(r.StartDate), formatDate(r.EndDate), string(r.Status)})
	}
	return joinRows(rows), nil
}

func Transactions(transactions []domain.Transaction) (string, error) {
	if len(transactions) == 0 {
		return "", ErrNoRecords
	}
	rows := [][]string{{"Client", "Vehicul", "Sumă", "Status", "Data"}}
	for _, t := range transactions {
		var clientName, vehicleName string
		if t.Reservation != nil {
			if t.Reservation.Client != nil {
				clientName = t.Reservation.Client.FullName
			}
			if t.Reservation.Vehicle != nil {
				vehicleName = strings.TrimSpace(t.Reservation.Vehicle.Make + " " + t.Reservation.Vehicle.Model)
			}
		}
		amount := fmt.Sprintf("%d RON", t.AmountWhole())
		rows = append(rows, []string{clientName, vehicleName, amount, string(t.Status), formatDate(t.CreatedOn)})
	}
	return joinRows(rows), nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// joinRows quotes each field unconditionally, doubling embedded quotes.
// encoding/csv quotes only when necessary; the exports produced here match
// the always-quoted files the desk app emitted.
func joinRows(rows [][]string) string {
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, field := range row {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(field, `"`, `""`))
			b.WriteByte('"')
		}
	}
	return b.String()
}
