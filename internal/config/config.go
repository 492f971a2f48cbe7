package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds environment-driven configuration for the storefront API.
type Config struct {
	Addr        string
	DatabaseURL string
	JWTSecret   string

	// Checkout pricing knobs. Delivery fee is a flat amount, tax rate is a
	// fraction of the subtotal.
	DeliveryFee float64
	TaxRate     float64

	// ProcessingDelay is how long a checkout submission stays in the
	// processing state before completing.
	ProcessingDelay time.Duration
}

// Load reads configuration from environment variables.
func Load() Config {
	addr := os.Getenv("FLAVORRUSH_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	return Config{
		Addr:            addr,
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		DeliveryFee:     envFloat("DELIVERY_FEE", 5.00),
		TaxRate:         envFloat("TAX_RATE", 0.08),
		ProcessingDelay: envDuration("CHECKOUT_PROCESSING_DELAY", 2*time.Second),
	}
}

func envFloat(key string, fallback float64) float64 {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v >= 0 {
			return v
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if raw := os.Getenv(key); raw != "" {
		if v, err := time.ParseDuration(raw); err == nil && v >= 0 {
			return v
		}
	}
	return fallback
}
