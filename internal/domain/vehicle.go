package domain

import "time"

type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "available"
	VehicleStatusRented      VehicleStatus = "rented"
	VehicleStatusMaintenance VehicleStatus = "maintenance"
)

// ValidVehicleStatus reports whether s is one of the three fleet states.
func ValidVehicleStatus(s VehicleStatus) bool {
	switch s {
	case VehicleStatusAvailable, VehicleStatusRented, VehicleStatusMaintenance:
		return true
	}
	return false
}

type Vehicle struct {
	ID          int32         `json:"id"`
	Make        string        `json:"make"`
	Model       string        `json:"model"`
	PlateNumber string        `json:"plate_number"`
	Status      VehicleStatus `json:"status"`
	MileageKM   int32         `json:"mileage_km"`
	Notes       string        `json:"notes,omitempty"`
	LastService *time.Time    `json:"last_service_on,omitempty"`
	CreatedOn   time.Time     `json:"created_on"`
}
