package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultPort         = "8080"
	defaultJWTTTL       = "24h"
	defaultFrontendURL  = "http://localhost:5173"
	defaultCronSchedule = "@hourly"
	defaultCurrency     = "usd"
)

type Config struct {
	Port        string
	DatabaseURL string
	FrontendURL string

	JWTSecret string
	JWTTTL    time.Duration

	StripeSecretKey      string
	StripePublishableKey string
	Currency             string

	MailjetAPIKey    string
	MailjetSecretKey string
	MailFromEmail    string
	MailFromName     string

	CompletionSchedule string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:                 getEnv("PORT", defaultPort),
		DatabaseURL:          strings.TrimSpace(os.Getenv("DATABASE_URL")),
		FrontendURL:          getEnv("FRONTEND_URL", defaultFrontendURL),
		JWTSecret:            strings.TrimSpace(os.Getenv("JWT_SECRET")),
		StripeSecretKey:      strings.TrimSpace(os.Getenv("STRIPE_SECRET_KEY")),
		StripePublishableKey: strings.TrimSpace(os.Getenv("STRIPE_PUBLISHABLE_KEY")),
		Currency:             strings.ToLower(getEnv("CURRENCY", defaultCurrency)),
		MailjetAPIKey:        strings.TrimSpace(os.Getenv("MAILJET_API_KEY")),
		MailjetSecretKey:     strings.TrimSpace(os.Getenv("MAILJET_SECRET_KEY")),
		MailFromEmail:        getEnv("MAIL_FROM_EMAIL", "noreply@autohire.local"),
		MailFromName:         getEnv("MAIL_FROM_NAME", "AutoHire"),
		CompletionSchedule:   getEnv("COMPLETION_SCHEDULE", defaultCronSchedule),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}

	ttl, err := parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}
	cfg.JWTTTL = ttl

	return cfg, nil
}

func getEnv(name, def string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(name, def string) (time.Duration, error) {
	raw := getEnv(name, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, raw, err)
	}
	return d, nil
}
