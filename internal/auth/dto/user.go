package dto

import "time"

// UserOutput is the registration response body: the stored record with the
// password hash stripped.
type UserOutput struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
