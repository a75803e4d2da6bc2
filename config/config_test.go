package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "test-secret")

	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "sample_mflix", cfg.MongoDatabase)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, 60, cfg.AccessExpiryMin)
	assert.Equal(t, 10080, cfg.RefreshExpiryMin)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://db:27017")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "3000")
	t.Setenv("MONGODB_DB", "mflix_test")
	t.Setenv("ACCESS_TOKEN_EXPIRY", "15")
	t.Setenv("REFRESH_TOKEN_EXPIRY", "1440")

	cfg := Load()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "mflix_test", cfg.MongoDatabase)
	assert.Equal(t, 15, cfg.AccessExpiryMin)
	assert.Equal(t, 1440, cfg.RefreshExpiryMin)
}

func TestGetEnvAsIntInvalid(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_EXPIRY", "not-a-number")

	assert.Equal(t, 60, getEnvAsInt("ACCESS_TOKEN_EXPIRY", 60))
}
