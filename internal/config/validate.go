package config

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var codePrefixRe = regexp.MustCompile(`^[A-Z0-9]{1,8}$`)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("auth.session_ttl must be > 0 (got %s)", c.Auth.SessionTTL)
	}
	if strings.TrimSpace(c.Auth.AdminUsername) == "" {
		return fmt.Errorf("auth.admin_username is required")
	}
	if c.Auth.AdminPassword == "" && c.Auth.AdminPasswordHash == "" {
		return fmt.Errorf("auth: one of admin_password or admin_password_hash is required")
	}

	if err := c.Certificate.validate(); err != nil {
		return fmt.Errorf("certificate: %w", err)
	}

	if c.Cache.Enabled() && c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be > 0 when redis_addr is set (got %s)", c.Cache.TTL)
	}

	if c.RateLimit.RequestsPerMinute < 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be >= 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	return nil
}

func (c *CertificateConfig) validate() error {
	if !codePrefixRe.MatchString(c.CodePrefix) {
		return fmt.Errorf("code_prefix must be 1-8 uppercase letters or digits (got %q)", c.CodePrefix)
	}

	u, err := url.Parse(c.PublicBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("public_base_url must be an absolute URL (got %q)", c.PublicBaseURL)
	}
	c.PublicBaseURL = strings.TrimRight(c.PublicBaseURL, "/")

	if c.RenderTimeout <= 0 {
		return fmt.Errorf("render_timeout must be > 0 (got %s)", c.RenderTimeout)
	}

	return nil
}
