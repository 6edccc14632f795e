package domain

import "time"

type TransactionStatus string

const (
	TransactionStatusPaid   TransactionStatus = "paid"
	TransactionStatusUnpaid TransactionStatus = "unpaid"
)

// Transaction is the payment record created alongside a reservation.
// The only permitted status mutation is unpaid -> paid; a row is removed
// only to unwind a booking that failed partway.
type Transaction struct {
	ID            int32             `json:"id"`
	ReservationID int32             `json:"reservation_id"`
	AmountCents   int64             `json:"amount_cents"`
	Status        TransactionStatus `json:"status"`
	CreatedOn     time.Time         `json:"created_on"`

	// Populated on joined reads.
	Reservation *Reservation `json:"reservation,omitempty"`
}

// AmountWhole returns the amount rounded to the nearest whole currency
// unit, as rendered on exports and invoices.
func (t Transaction) AmountWhole() int64 {
	if t.AmountCents >= 0 {
		return (t.AmountCents + 50) / 100
	}
	return (t.AmountCents - 50) / 100
}
