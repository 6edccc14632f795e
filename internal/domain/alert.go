package domain

import "time"

type AlertType string

const (
	AlertTypeReservationExpiring AlertType = "reservation_expiring"
	AlertTypePaymentOverdue      AlertType = "payment_overdue"
)

// Alert is a transient operator notification. Alerts are recomputed from
// the store on every check rather than persisted.
type Alert struct {
	ID        string    `json:"id"`
	Type      AlertType `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedOn time.Time `json:"created_on"`
}
