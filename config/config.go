/*
config.go - Environment-backed service configuration

PURPOSE:
  Collects everything the service reads from the environment in one
  place. The calculators themselves need no configuration; everything
  here belongs to the HTTP boundary.

ENVIRONMENT VARIABLES:
  PORT            HTTP listen port (default: 8000)
  DATABASE_URL    Optional; not used for computation. Its presence is
                  reported by the /test diagnostic endpoint.
  DATABASE_NAME   Optional; same as above.

A .env file, if present, is loaded best-effort by cmd/server before
Load() runs, so local development and injected platform env vars go
through the same path.
*/
package config

import (
	"os"
	"strconv"
)

// Config holds the resolved service configuration.
type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseName string
}

// Load reads configuration from the environment, applying defaults.
func Load() *Config {
	return &Config{
		Port:         getEnvInt("PORT", 8000),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),
	}
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
