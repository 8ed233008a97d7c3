// Package config reads client configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// BackendURL is the base URL of the QKart backend.
	BackendURL string
	// RequestTimeout bounds every backend call.
	RequestTimeout time.Duration
	// SearchDebounce is the quiet interval for the search box.
	SearchDebounce time.Duration
	// RedisAddr, when set, switches the catalog cache from in-process
	// memory to a shared Redis instance.
	RedisAddr string
	// CatalogCacheTTL applies to the Redis snapshot only.
	CatalogCacheTTL time.Duration
}

// Load reads the environment. A .env file in the working directory is
// merged in first when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		BackendURL:      getEnv("QKART_BACKEND_URL", "http://localhost:8082"),
		RequestTimeout:  durEnvMs("QKART_REQUEST_TIMEOUT_MS", 10000),
		SearchDebounce:  durEnvMs("QKART_SEARCH_DEBOUNCE_MS", 500),
		RedisAddr:       getEnv("QKART_REDIS_ADDR", ""),
		CatalogCacheTTL: durEnvMs("QKART_CATALOG_TTL_MS", 15*60*1000),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func durEnvMs(key string, defaultMs int) time.Duration {
	v := getEnv(key, "")
	if v == "" {
		return time.Duration(defaultMs) * time.Millisecond
	}
	ms, err := strconv.Atoi(v)
	if err != nil {
		return time.Duration(defaultMs) * time.Millisecond
	}
	return time.Duration(ms) * time.Millisecond
}
