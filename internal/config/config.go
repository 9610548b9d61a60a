package config

import (
	"errors"
	"os"
)

// DevSecret is used when JWT_SECRET is unset outside production. It is, by
// definition, public knowledge; startup logs must flag it as insecure.
const DevSecret = "dev-secret-please-change"

// ErrMissingSecret is fatal at process start: a production deployment must
// never fall back to the development signing secret.
var ErrMissingSecret = errors.New("JWT_SECRET is required when APP_ENV=production")

type Config struct {
	MongoURL      string
	MongoDatabase string
	JWTSecret     string
	Port          string
	Production    bool

	// InsecureSecret is set when the dev fallback secret is in use.
	InsecureSecret bool
}

// FromEnv reads configuration from environment variables, applying local
// development defaults where that is safe.
func FromEnv() (*Config, error) {
	cfg := &Config{
		MongoURL:      os.Getenv("MONGO_URL"),
		MongoDatabase: os.Getenv("MONGO_DATABASE"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		Port:          os.Getenv("PORT"),
		Production:    os.Getenv("APP_ENV") == "production",
	}
	if cfg.MongoURL == "" {
		cfg.MongoURL = "mongodb://localhost:27017"
	}
	if cfg.MongoDatabase == "" {
		cfg.MongoDatabase = "Magneto-Freelance"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.JWTSecret == "" {
		if cfg.Production {
			return nil, ErrMissingSecret
		}
		cfg.JWTSecret = DevSecret
		cfg.InsecureSecret = true
	}
	return cfg, nil
}
