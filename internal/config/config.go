package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds server configuration loaded from the environment
type Config struct {
	// Port is the HTTP listen port
	Port int
	// JWTSecret signs and verifies bearer tokens
	JWTSecret string
	// TokenTTL is the bearer token lifetime
	TokenTTL time.Duration
	// StorageType selects the storage backend ("memory" or "redis")
	StorageType string
	// RedisURL is the Redis connection URL (required for redis storage)
	RedisURL string
}

// Load reads configuration from the environment, with an optional .env file.
// Missing or unparseable values fall back to defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:        envInt("PORT", 3000),
		JWTSecret:   envStr("JWT_SECRET", "secretkey"),
		TokenTTL:    envDuration("TOKEN_TTL", 24*time.Hour),
		StorageType: envStr("STORAGE_TYPE", "memory"),
		RedisURL:    os.Getenv("REDIS_URL"),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
