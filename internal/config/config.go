package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type StripeConfig struct {
	SecretKey string
}

type ServerConfig struct {
	Port      string
	StaticDir string
}

// CORSConfig defaults to a wildcard origin. Tighten via env before exposing
// the service publicly.
type CORSConfig struct {
	AllowOrigins string
	AllowHeaders string
}

// RateLimitConfig with Max == 0 leaves rate limiting off.
type RateLimitConfig struct {
	Max    int
	Window time.Duration
}

type Config struct {
	Stripe    StripeConfig
	Server    ServerConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

func (c RateLimitConfig) Enabled() bool {
	return c.Max > 0
}

// Load reads the configuration from the environment once at startup.
// The Stripe secret key is the only mandatory value.
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.Stripe.SecretKey = os.Getenv("STRIPE_SECRET_KEY")
	if cfg.Stripe.SecretKey == "" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY is not set")
	}

	cfg.Server.Port = os.Getenv("PORT")
	if cfg.Server.Port == "" {
		cfg.Server.Port = "3000"
	}

	cfg.Server.StaticDir = os.Getenv("STATIC_DIR")
	if cfg.Server.StaticDir == "" {
		cfg.Server.StaticDir = "public"
	}

	cfg.CORS.AllowOrigins = os.Getenv("CORS_ALLOW_ORIGINS")
	if cfg.CORS.AllowOrigins == "" {
		cfg.CORS.AllowOrigins = "*"
	}

	cfg.CORS.AllowHeaders = os.Getenv("CORS_ALLOW_HEADERS")
	if cfg.CORS.AllowHeaders == "" {
		cfg.CORS.AllowHeaders = "Origin, Content-Type, Accept"
	}

	if v := os.Getenv("RATE_LIMIT_MAX"); v != "" {
		max, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_MAX %q: %w", v, err)
		}
		cfg.RateLimit.Max = max
	}
	cfg.RateLimit.Window = 1 * time.Minute

	return cfg, nil
}
