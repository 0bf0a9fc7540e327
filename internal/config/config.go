// Package config loads the service configuration from the environment
// (with .env support for local development) and owns the logger setup.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config is everything the service reads from the environment.
type Config struct {
	Port               string
	DatabaseURL        string
	KafkaBrokers       []string
	ToleranceAbs       decimal.Decimal
	ToleranceRel       decimal.Decimal
	LargeDiffThreshold decimal.Decimal
	LogLevel           string
}

// Load reads the environment, optionally seeded from a .env file.
// Missing keys fall back to working local defaults.
func Load() Config {
	// Best effort: a missing .env just means real env vars are in use.
	_ = godotenv.Load()

	cfg := Config{
		Port:               getEnv("PORT", "8080"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		ToleranceAbs:       getDecimal("TOLERANCE_ABS", "1"),
		ToleranceRel:       getDecimal("TOLERANCE_REL", "0"),
		LargeDiffThreshold: getDecimal("LARGE_DIFF_THRESHOLD", "100"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDecimal(key, fallback string) decimal.Decimal {
	raw := getEnv(key, fallback)
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.RequireFromString(fallback)
	}
	return d
}
