package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/cache"
)

// Config holds all configuration for the farm backend.
type Config struct {
	Port           string        // HTTP port (default: 8080)
	MongoURI       string        // MongoDB connection string
	MongoDB        string        // Database name
	Env            string        // "development" or "production"
	CacheTTL       time.Duration // Response cache TTL
	AllowedOrigins []string      // CORS allowlist
}

// LoadConfig loads environment variables into a Config struct. A local .env
// file is applied first when present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:     os.Getenv("PORT"),
		MongoURI: os.Getenv("MONGO_URI"),
		MongoDB:  os.Getenv("MONGO_DB"),
		Env:      os.Getenv("APP_ENV"),
		CacheTTL: cache.DefaultTTL,
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.MongoDB == "" {
		cfg.MongoDB = "shrimp_farm"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}

	if raw := os.Getenv("CACHE_TTL_SECONDS"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("invalid CACHE_TTL_SECONDS: %q", raw)
		}
		cfg.CacheTTL = time.Duration(secs) * time.Second
	}

	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	return cfg, nil
}
