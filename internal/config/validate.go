package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}

	switch c.Storage.Driver {
	case StorageDriverPostgres:
		if strings.TrimSpace(c.Database.DSN) == "" {
			return fmt.Errorf("database.dsn is required when storage.driver is %q", StorageDriverPostgres)
		}
	case StorageDriverMemory:
	default:
		return fmt.Errorf("storage.driver must be %q or %q (got %q)",
			StorageDriverPostgres, StorageDriverMemory, c.Storage.Driver)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("ratelimit: %w", err)
	}

	if err := c.Questions.validate(); err != nil {
		return fmt.Errorf("questions: %w", err)
	}

	return nil
}

func (r *RateLimitConfig) validate() error {
	if !r.Enabled {
		return nil
	}
	if r.RequestsPerSecond <= 0 {
		return fmt.Errorf("requests_per_second must be > 0 (got %v)", r.RequestsPerSecond)
	}
	if r.Burst < 1 {
		return fmt.Errorf("burst must be >= 1 (got %d)", r.Burst)
	}
	return nil
}

func (q *QuestionsConfig) validate() error {
	if q.MaxPageSize < 1 {
		return fmt.Errorf("max_page_size must be >= 1 (got %d)", q.MaxPageSize)
	}
	if q.DefaultPageSize < 1 || q.DefaultPageSize > q.MaxPageSize {
		return fmt.Errorf("default_page_size must be in 1..%d (got %d)", q.MaxPageSize, q.DefaultPageSize)
	}
	return nil
}
