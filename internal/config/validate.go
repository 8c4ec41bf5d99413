package config

import (
	"fmt"
	"net/url"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("auth.session_ttl must be > 0 (got %v)", c.Auth.SessionTTL)
	}

	if c.Auth.LoginRateLimit < 0 {
		return fmt.Errorf("auth.login_rate_limit must be >= 0 (got %d)", c.Auth.LoginRateLimit)
	}

	if err := c.Remote.validate(); err != nil {
		return fmt.Errorf("remote: %w", err)
	}

	if c.Local.DataDir == "" {
		return fmt.Errorf("local.data_dir must not be empty")
	}

	if c.Identity.CacheSize <= 0 {
		return fmt.Errorf("identity.cache_size must be > 0 (got %d)", c.Identity.CacheSize)
	}

	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

// validate checks pool settings always and the URL only when the remote
// store is configured. A half-configured remote is not an error: it simply
// stays disabled.
func (r *RemoteConfig) validate() error {
	if r.MaxConns <= 0 {
		return fmt.Errorf("max_conns must be > 0 (got %d)", r.MaxConns)
	}
	if r.MinConns < 0 || r.MinConns > r.MaxConns {
		return fmt.Errorf("min_conns must be between 0 and max_conns (got %d)", r.MinConns)
	}
	if r.ConnectAttempts == 0 {
		return fmt.Errorf("connect_attempts must be >= 1")
	}

	if !r.IsConfigured() {
		return nil
	}

	u, err := url.Parse(r.URL)
	if err != nil {
		return fmt.Errorf("url: %w", err)
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return fmt.Errorf("url scheme must be postgres or postgresql (got %q)", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("url host must not be empty")
	}

	return nil
}
