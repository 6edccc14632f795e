package domain

import "time"

// StaffUser is a back-office operator account.
type StaffUser struct {
	ID           int32     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	CreatedOn    time.Time `json:"created_on"`
}
