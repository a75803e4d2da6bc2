package domain

import "time"

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Session is the single slot holding the currently valid refresh token for
// a user. A new login overwrites it; logout removes it.
type Session struct {
	UserID       string
	RefreshToken string
	UpdatedAt    time.Time
}
