package entity

import "time"

// Account is the stored form of an accepted registration.
// PasswordHash holds a bcrypt hash, never the submitted password.
type Account struct {
	ID           string
	Username     string
	PhoneNumber  string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
