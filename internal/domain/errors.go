package domain

import "errors"

var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrVehicleUnavailable = errors.New("vehicle is not available for booking")
	ErrAlreadyPaid        = errors.New("transaction is already paid")
	ErrNotActive          = errors.New("reservation is not active")
	ErrDuplicatePlate     = errors.New("plate number already registered")
	ErrValidation         = errors.New("validation failed")
	ErrBookingFailed      = errors.New("booking failed")
)
