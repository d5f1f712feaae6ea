package model

import "time"

// User represents a registered account able to obtain bearer tokens.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Claims returns token claims describing the user.
func (u *User) Claims() Claims {
	return Claims{Email: u.Email, Name: u.Name}
}
