package config

import (
	"os"
	"strconv"
)

// Config holds the HTTP service configuration. CLI conversions take their
// options from flags; only the server reads the environment.
type Config struct {
	Port string

	// Upload limits
	MaxUploadBytes int64
}

func Load() Config {
	cfg := Config{
		Port:           envOr("PORT", "8080"),
		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 16*1024*1024), // 16MB
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 16 * 1024 * 1024
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
