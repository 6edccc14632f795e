package domain

import "time"

// Client is a rental customer. Identity is established either by the
// national id number (CNP) together with the id card number, or by a
// passport number.
type Client struct {
	ID             int32     `json:"id"`
	FullName       string    `json:"full_name"`
	CNP            string    `json:"cnp,omitempty"`
	IDCardNumber   string    `json:"id_card_number,omitempty"`
	PassportNumber string    `json:"passport_number,omitempty"`
	DriverLicense  string    `json:"driver_license"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	CreatedOn      time.Time `json:"created_on"`
}
