package fetcher

import (
	"fmt"
	"time"

	"texttools/pkg/config"
)

// Config controls security and performance limits for article fetching.
type Config struct {
	// Timeout is the maximum duration for a single HTTP request.
	Timeout time.Duration

	// MaxBodySize is the maximum HTTP response body size in bytes.
	// Responses exceeding this limit are rejected to prevent memory
	// exhaustion. Enforced while reading, not from Content-Length.
	MaxBodySize int64

	// MaxRedirects is the maximum number of HTTP redirects to follow.
	// Each redirect target is re-validated against the SSRF rules.
	MaxRedirects int

	// DenyPrivateIPs blocks URLs resolving to private, loopback or
	// link-local addresses. Should always be true in production.
	DenyPrivateIPs bool

	// UserAgent is sent on outbound requests.
	UserAgent string
}

// DefaultConfig returns production-ready fetch limits.
func DefaultConfig() Config {
	return Config{
		Timeout:        10 * time.Second,
		MaxBodySize:    10 * 1024 * 1024,
		MaxRedirects:   5,
		DenyPrivateIPs: true,
		UserAgent:      "texttools/1.0",
	}
}

// LoadConfigFromEnv loads fetch configuration from environment
// variables, falling back to defaults for unset values.
//
// Environment variables:
//   - ARTICLE_FETCH_TIMEOUT: duration string, e.g. "10s"
//   - ARTICLE_FETCH_MAX_BODY_SIZE: bytes
//   - ARTICLE_FETCH_MAX_REDIRECTS: integer
//   - ARTICLE_FETCH_DENY_PRIVATE_IPS: boolean
func LoadConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	cfg.Timeout = config.GetEnvDuration("ARTICLE_FETCH_TIMEOUT", cfg.Timeout)
	cfg.MaxBodySize = int64(config.GetEnvInt("ARTICLE_FETCH_MAX_BODY_SIZE", int(cfg.MaxBodySize)))
	cfg.MaxRedirects = config.GetEnvInt("ARTICLE_FETCH_MAX_REDIRECTS", cfg.MaxRedirects)
	cfg.DenyPrivateIPs = config.GetEnvBool("ARTICLE_FETCH_DENY_PRIVATE_IPS", cfg.DenyPrivateIPs)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("fetch configuration invalid: %w", err)
	}
	return cfg, nil
}

// Validate rejects limits that would be unsafe or useless.
func (c *Config) Validate() error {
	if err := config.ValidateDurationRange(c.Timeout, time.Second, 2*time.Minute); err != nil {
		return fmt.Errorf("timeout: %w", err)
	}

	minBodySize := int64(1024)
	maxBodySize := int64(100 * 1024 * 1024)
	if c.MaxBodySize < minBodySize || c.MaxBodySize > maxBodySize {
		return fmt.Errorf("max body size must be between %d and %d bytes, got %d",
			minBodySize, maxBodySize, c.MaxBodySize)
	}

	if c.MaxRedirects < 0 || c.MaxRedirects > 10 {
		return fmt.Errorf("max redirects must be between 0 and 10, got %d", c.MaxRedirects)
	}

	return nil
}
