package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/Pierrechami/movies/internal/auth/domain UserRepository
//go:generate mockgen -destination=../../mocks/mock_session_repository.go -package=mocks github.com/Pierrechami/movies/internal/auth/domain SessionRepository

import "context"

// UserRepository looks up and creates identity records. Email matching is
// exact: no case folding or trimming is applied to the stored value.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
}

// SessionRepository is a keyed single-slot store: Upsert replaces whatever
// refresh token was previously held for the user.
type SessionRepository interface {
	Upsert(ctx context.Context, userID, refreshToken string) error
	GetByToken(ctx context.Context, refreshToken string) (*Session, error)
	DeleteByUserID(ctx context.Context, userID string) error
}
