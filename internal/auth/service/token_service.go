package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/Pierrechami/movies/internal/auth/service TokenGenerator

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type TokenGenerator interface {
	IssueAccessToken(userID, email string) (string, error)
	IssueRefreshToken(userID, email string) (string, error)
	Verify(tokenString string) (*JWTCustomClaims, error)
}

// TokenService signs and verifies both token kinds with a single secret.
// It has no side effects: output depends only on the secret, the claims and
// the clock.
type TokenService struct {
	Secret             string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

func NewTokenService(secret string, accessMinutes, refreshMinutes int) *TokenService {
	return &TokenService{
		Secret:             secret,
		AccessTokenExpiry:  time.Duration(accessMinutes) * time.Minute,
		RefreshTokenExpiry: time.Duration(refreshMinutes) * time.Minute,
	}
}

func (ts *TokenService) IssueAccessToken(userID, email string) (string, error) {
	return ts.sign(userID, email, ts.AccessTokenExpiry)
}

func (ts *TokenService) IssueRefreshToken(userID, email string) (string, error) {
	return ts.sign(userID, email, ts.RefreshTokenExpiry)
}

func (ts *TokenService) sign(userID, email string, expiry time.Duration) (string, error) {
	now := time.Now()

	claims := JWTCustomClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
}

// Verify parses the token and validates its signature and expiry.
func (ts *TokenService) Verify(tokenString string) (*JWTCustomClaims, error) {
	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
