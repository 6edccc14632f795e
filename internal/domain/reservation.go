package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusActive    ReservationStatus = "active"
	ReservationStatusCompleted ReservationStatus = "completed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

type Reservation struct {
	ID        int32             `json:"id"`
	ClientID  int32             `json:"client_id"`
	VehicleID int32             `json:"vehicle_id"`
	StartDate time.Time         `json:"start_date"`
	EndDate   time.Time         `json:"end_date"`
	Status    ReservationStatus `json:"status"`
	Notes     string            `json:"notes,omitempty"`
	CreatedOn time.Time         `json:"created_on"`

	// Populated on joined reads for list/export views.
	Client  *Client  `json:"client,omitempty"`
	Vehicle *Vehicle `json:"vehicle,omitempty"`
}
