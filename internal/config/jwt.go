package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// DefaultJWTIssuer is the issuer claim used when JWT_ISSUER is unset
const DefaultJWTIssuer = "resume-analyzer"

// JWTConfig holds configuration for API token issuance and validation.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
	Issuer          string
}

// LoadJWTConfig reads JWT_SECRET, JWT_EXPIRATION_HOURS (default 24) and
// JWT_ISSUER. A nil config without error means JWT_SECRET is unset and the
// API runs without authentication.
func LoadJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, nil
	}

	expirationStr := os.Getenv("JWT_EXPIRATION_HOURS")
	if expirationStr == "" {
		expirationStr = "24"
	}
	expirationHours, err := strconv.Atoi(expirationStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %w", err)
	}

	issuer := os.Getenv("JWT_ISSUER")
	if issuer == "" {
		issuer = DefaultJWTIssuer
	}

	cfg := &JWTConfig{
		Secret:          secret,
		ExpirationHours: expirationHours,
		Issuer:          issuer,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the secret and lifetime
func (c *JWTConfig) Validate() error {
	if c.Secret == "" {
		return fmt.Errorf("JWT_SECRET cannot be empty")
	}
	if len(c.Secret) < 16 {
		return fmt.Errorf("JWT_SECRET must be at least 16 characters, got: %d", len(c.Secret))
	}
	if c.ExpirationHours < 1 {
		return fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", c.ExpirationHours)
	}
	return nil
}

// Expiration returns the token lifetime
func (c *JWTConfig) Expiration() time.Duration {
	return time.Duration(c.ExpirationHours) * time.Hour
}
