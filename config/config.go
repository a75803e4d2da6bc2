package config

import (
	"log"
	"os"
	"strconv"

	"github.com/Pierrechami/movies/pkg/constant"
)

type Config struct {
	Env              string
	Port             string
	MongoURI         string
	MongoDatabase    string
	JWTSecret        string
	AccessExpiryMin  int
	RefreshExpiryMin int
}

func Load() *Config {
	return &Config{
		Env:              getEnv("ENV", "development"),
		Port:             getEnv("PORT", "8080"),
		MongoURI:         mustGetEnv("MONGODB_URI"),
		MongoDatabase:    getEnv("MONGODB_DB", constant.DefaultDatabase),
		JWTSecret:        mustGetEnv("JWT_SECRET"),
		AccessExpiryMin:  getEnvAsInt("ACCESS_TOKEN_EXPIRY", constant.DefaultAccessExpiryMin),
		RefreshExpiryMin: getEnvAsInt("REFRESH_TOKEN_EXPIRY", constant.DefaultRefreshExpiryMin),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
