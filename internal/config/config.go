package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPAddr    = ":8080"
	defaultJWTTTL      = "24h"
	defaultGranularity = "30"
	defaultCommission  = "40"
	defaultJWTSecret   = "change-me-jwt-secret"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	DatabaseURL string

	JWTSecret string
	JWTTTL    time.Duration

	// SlotGranularityMinutes is the width of a bookable slot.
	SlotGranularityMinutes int
	// AllowDegradedFit, when set, lets the allocation engine fall back to
	// any free table when no table meets the requested party size.
	AllowDegradedFit bool

	// CommissionFee is the fixed platform fee recorded per completed
	// reservation.
	CommissionFee float64

	// PaymentWebhookToken guards the payment-completed callback.
	PaymentWebhookToken string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:              strings.ToLower(strings.TrimSpace(getEnv("APP_ENV", "dev"))),
		HTTPAddr:            getEnv("HTTP_ADDR", defaultHTTPAddr),
		DatabaseURL:         getEnv("DATABASE_URL", "tablebook.db"),
		JWTSecret:           strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret)),
		AllowDegradedFit:    parseBoolEnv("BOOKING_ALLOW_DEGRADED_FIT", "false"),
		PaymentWebhookToken: strings.TrimSpace(os.Getenv("PAYMENT_WEBHOOK_TOKEN")),
	}

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}
	cfg.SlotGranularityMinutes, err = parseIntEnv("BOOKING_SLOT_MINUTES", defaultGranularity)
	if err != nil {
		return nil, err
	}
	cfg.CommissionFee, err = parseFloatEnv("COMMISSION_FEE", defaultCommission)
	if err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.SlotGranularityMinutes <= 0 || cfg.SlotGranularityMinutes > 24*60 {
		return fmt.Errorf("BOOKING_SLOT_MINUTES must be in (0, 1440]")
	}
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.CommissionFee < 0 {
		return fmt.Errorf("COMMISSION_FEE must be >= 0")
	}
	if isProdLike(cfg.AppEnv) && cfg.JWTSecret == defaultJWTSecret {
		return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
	}
	return nil
}

func isProdLike(env string) bool {
	return env == "prod" || env == "production" || env == "release"
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name, fallback string) (int, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func parseFloatEnv(name, fallback string) (float64, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return f, nil
}

func parseBoolEnv(name, fallback string) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(name, fallback)))
	return value == "1" || value == "true" || value == "yes" || value == "on"
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
