package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRejectsPlaceholders(t *testing.T) {
	cfg := &Config{
		JWTSecretKey:       "replace-with-your-secret",
		GoogleClientID:     "real-id",
		GoogleClientSecret: "real-secret",
		GoogleCallbackURL:  "http://localhost:8080/auth/google/callback",
	}

	err := cfg.validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET_KEY")
}

func TestValidateAcceptsRealValues(t *testing.T) {
	cfg := &Config{
		JWTSecretKey:       "secret",
		GoogleClientID:     "id",
		GoogleClientSecret: "cs",
		GoogleCallbackURL:  "http://localhost:8080/auth/google/callback",
	}

	assert.NoError(t, cfg.validate())
}
