package config

import (
	"fmt"
	"slices"

	"golang.org/x/crypto/bcrypt"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
	emailTLS   = []string{"mandatory", "opportunistic", "none"}
	relations  = []string{"community_follow", "post_like"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}
	if c.Auth.OTPLength < 4 || c.Auth.OTPLength > 8 {
		return fmt.Errorf("auth.otp_length must be in [4, 8] (got %d)", c.Auth.OTPLength)
	}
	if c.Auth.OTPTTL <= 0 {
		return fmt.Errorf("auth.otp_ttl must be > 0 (got %v)", c.Auth.OTPTTL)
	}

	if !slices.Contains(logLevels, c.Log.Level) {
		return fmt.Errorf("log.level must be one of %v (got %q)", logLevels, c.Log.Level)
	}
	if !slices.Contains(logFormats, c.Log.Format) {
		return fmt.Errorf("log.format must be one of %v (got %q)", logFormats, c.Log.Format)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerMin <= 0 || c.RateLimit.AuthPerMin <= 0) {
		return fmt.Errorf("rate_limit: limits must be > 0 when enabled")
	}

	if c.Storage.Enabled() && c.Storage.MaxUploadBytes <= 0 {
		return fmt.Errorf("storage.max_upload_bytes must be > 0 (got %d)", c.Storage.MaxUploadBytes)
	}

	if err := c.Email.validate(); err != nil {
		return fmt.Errorf("email: %w", err)
	}

	for _, name := range c.Migration.RelationNames() {
		if !slices.Contains(relations, name) {
			return fmt.Errorf("migration.relations: unknown relation %q", name)
		}
	}

	return nil
}

func (e *EmailConfig) validate() error {
	if e.Disabled {
		return nil
	}
	if e.Host == "" {
		return fmt.Errorf("smtp host is required unless email is disabled")
	}
	if e.Port <= 0 || e.Port > 65535 {
		return fmt.Errorf("smtp port out of range (got %d)", e.Port)
	}
	if !slices.Contains(emailTLS, e.TLS) {
		return fmt.Errorf("tls must be one of %v (got %q)", emailTLS, e.TLS)
	}
	return nil
}
