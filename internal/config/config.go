package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort            = "3000"
	defaultDatabaseURL     = "database.sqlite"
	defaultRateLimitMax    = "100"
	defaultRateLimitWindow = "15m"
)

type Config struct {
	AppEnv          string
	Port            string
	DatabaseURL     string
	RateLimitMax    int
	RateLimitWindow time.Duration
	CORSOrigins     []string
}

func Load() *Config {
	cfg := &Config{
		Port:        getEnv("PORT", defaultPort),
		DatabaseURL: getEnv("DATABASE_URL", defaultDatabaseURL),
	}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	max, err := strconv.Atoi(getEnv("RATE_LIMIT_MAX", defaultRateLimitMax))
	if err != nil || max <= 0 {
		max, _ = strconv.Atoi(defaultRateLimitMax)
	}
	cfg.RateLimitMax = max

	window, err := time.ParseDuration(getEnv("RATE_LIMIT_WINDOW", defaultRateLimitWindow))
	if err != nil || window <= 0 {
		window, _ = time.ParseDuration(defaultRateLimitWindow)
	}
	cfg.RateLimitWindow = window

	if extra := os.Getenv("CORS_ALLOWED_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	return cfg
}

// IsProduction gates the endpoints that must not be reachable on the
// public-facing deployment, such as GET /api/leads.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production" || c.AppEnv == "prod"
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
