package config

import "os"

// Config holds environment-driven configuration.
type Config struct {
	Addr        string
	DatabaseURL string
}

// Load reads configuration from environment variables.
func Load() Config {
	addr := os.Getenv("FLAVORRUSH_ADMIN_ADDR")
	if addr == "" {
		addr = ":8081"
	}

	return Config{
		Addr:        addr,
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
}
