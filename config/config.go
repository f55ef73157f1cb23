// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Port               string `env:"PORT" env-default:"8080"`
	JWTSecretKey       string `env:"JWT_SECRET_KEY" env-required:"true"`
	GoogleClientID     string `env:"GOOGLE_CLIENT_ID" env-required:"true"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET" env-required:"true"`
	GoogleCallbackURL  string `env:"GOOGLE_CALLBACK_URL" env-required:"true"`
	AuthSuccessURL     string `env:"FRONTEND_AUTH_SUCCESS_URL"`
	AuthFailureURL     string `env:"FRONTEND_AUTH_FAILURE_URL"`
	RateLimitPerMinute int    `env:"RATE_LIMIT_PER_MINUTE" env-default:"120"`
}

// MustLoad reads .env when present, then the process environment. It exits on
// missing or placeholder values so a misconfigured deploy fails at startup, not
// on the first request.
func MustLoad() *Config {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: No .env file found or failed to load") // Use only in dev
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	if err := cfg.validate(); err != nil {
		log.Fatalf("invalid config: %s", err)
	}
	return &cfg
}

func (c *Config) validate() error {
	placeholders := map[string]string{
		"JWT_SECRET_KEY":       c.JWTSecretKey,
		"GOOGLE_CLIENT_ID":     c.GoogleClientID,
		"GOOGLE_CLIENT_SECRET": c.GoogleClientSecret,
		"GOOGLE_CALLBACK_URL":  c.GoogleCallbackURL,
	}

	var bad []string
	for name, value := range placeholders {
		if strings.HasPrefix(value, "replace-with-") {
			bad = append(bad, name)
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("placeholder environment variable(s): %s", strings.Join(bad, ", "))
	}
	return nil
}
