package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Addr            string
	CORSOrigin      string
	Locale          string
	ShutdownTimeout time.Duration
	// Redis Configuration
	RedisURL string
}

func Load() Config {
	return Config{
		Addr:            getenv("API_ADDR", ":8788"),
		CORSOrigin:      getenv("PARLEY_CORS_ORIGIN", "*"),
		Locale:          getenv("PARLEY_LOCALE", "en"),
		ShutdownTimeout: time.Duration(getenvInt("PARLEY_SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
		// Redis - required, it is the observable store everything reads
		RedisURL: getenv("REDIS_URL", "redis://localhost:6379/0"),
	}
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
