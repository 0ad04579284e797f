// Package config handles application configuration via environment variables.
package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds all configurable values for the app.
type Config struct {
	Env          string
	Port         string
	ResendAPIKey string
	NotifyFrom   string
	NotifyTo     string
	AuditDir     string
	RateLimit    int
	RateWindow   time.Duration
}

// Load reads environment variables and populates a Config struct.
func Load() *Config {
	rateLimit, err := strconv.Atoi(getEnv("RATE_LIMIT", "5"))
	if err != nil {
		log.Panicf("Invalid RATE_LIMIT: %v", err)
	}

	window, err := time.ParseDuration(getEnv("RATE_WINDOW", "10m"))
	if err != nil {
		log.Panicf("Invalid RATE_WINDOW: %v", err)
	}

	return &Config{
		Env:          getEnv("ENV", "development"),
		Port:         getEnv("PORT", "8080"),
		ResendAPIKey: os.Getenv("RESEND_API_KEY"),
		NotifyFrom:   getEnv("NOTIFY_FROM", "MYO Systems <onboarding@resend.dev>"),
		NotifyTo:     getEnv("NOTIFY_TO", "charlieanchetamacaraeg@gmail.com"),
		AuditDir:     getEnv("AUDIT_DIR", "logs"),
		RateLimit:    rateLimit,
		RateWindow:   window,
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
