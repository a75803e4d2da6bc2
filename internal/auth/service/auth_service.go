package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/Pierrechami/movies/internal/apperror"
	"github.com/Pierrechami/movies/internal/auth/domain"
	"github.com/Pierrechami/movies/internal/auth/dto"
	"github.com/Pierrechami/movies/internal/validation"
	"github.com/Pierrechami/movies/pkg/constant"
)

// AuthService orchestrates register, login, logout and refresh over the two
// stores and the token service.
type AuthService struct {
	users    domain.UserRepository
	sessions domain.SessionRepository
	tokens   TokenGenerator
	log      *slog.Logger
}

func NewAuthService(users domain.UserRepository, sessions domain.SessionRepository, tokens TokenGenerator, log *slog.Logger) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		log:      log,
	}
}

func (s *AuthService) Register(ctx context.Context, input dto.RegisterInput) (*dto.UserOutput, error) {
	if fields := validation.Struct(input); fields != nil {
		return nil, apperror.Validation("Incomplete or invalid form", fields)
	}

	existing, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.Conflict("User already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), constant.BcryptCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	user := &domain.User{
		ID:           primitive.NewObjectID().Hex(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperror.Internal(err)
	}

	s.log.Info("user registered", "user_id", user.ID)

	return &dto.UserOutput{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginResult, error) {
	if fields := validation.Struct(input); fields != nil {
		return nil, apperror.Validation("Invalid credentials", fields)
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, apperror.Unauthorized("Incorrect password")
	}

	accessToken, err := s.tokens.IssueAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	refreshToken, err := s.tokens.IssueRefreshToken(user.ID, user.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	// Replace-on-write: any refresh token issued by a prior login for this
	// user stops being redeemable once the slot holds the new one.
	if err := s.sessions.Upsert(ctx, user.ID, refreshToken); err != nil {
		return nil, apperror.Internal(err)
	}

	s.log.Info("user logged in", "user_id", user.ID)

	return &dto.LoginResult{
		AccessToken: accessToken,
		User:        dto.UserInfo{Name: user.Name, Email: user.Email},
	}, nil
}

// Logout identifies the user from the access token's claims and drops their
// session. A missing session is not an error.
func (s *AuthService) Logout(ctx context.Context, authHeader string) error {
	token, err := bearerToken(authHeader)
	if err != nil {
		return err
	}

	claims, err := s.tokens.Verify(token)
	if err != nil {
		return apperror.Unauthorized("Invalid or expired token")
	}

	if err := s.sessions.DeleteByUserID(ctx, claims.UserID); err != nil {
		return apperror.Internal(err)
	}

	s.log.Info("user logged out", "user_id", claims.UserID)

	return nil
}

// Refresh exchanges a stored refresh token for a new access token. The
// session lookup runs before signature verification: a token absent from the
// store is revoked no matter what its signature says.
func (s *AuthService) Refresh(ctx context.Context, authHeader string) (string, error) {
	token, err := bearerToken(authHeader)
	if err != nil {
		return "", err
	}

	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		return "", apperror.Internal(err)
	}
	if session == nil {
		return "", apperror.Forbidden("Invalid or expired session")
	}

	claims, err := s.tokens.Verify(token)
	if err != nil {
		return "", apperror.Unauthorized("Invalid or expired token")
	}

	accessToken, err := s.tokens.IssueAccessToken(claims.UserID, claims.Email)
	if err != nil {
		return "", apperror.Internal(err)
	}

	return accessToken, nil
}

func bearerToken(authHeader string) (string, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(authHeader, prefix) {
		return "", apperror.BadRequest("Missing or malformed token")
	}
	return strings.TrimPrefix(authHeader, prefix), nil
}
