package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be in [4,31] (got %d)", c.Auth.PasswordHashCost)
	}

	if err := c.Study.validate(); err != nil {
		return fmt.Errorf("study: %w", err)
	}
	if err := c.Words.validate(); err != nil {
		return fmt.Errorf("words: %w", err)
	}
	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}

	return nil
}

func (s *StudyConfig) validate() error {
	if s.DefaultGoalCount < 5 || s.DefaultGoalCount > 30 {
		return fmt.Errorf("default_goal_count must be in [5,30] (got %d)", s.DefaultGoalCount)
	}
	return nil
}

func (w *WordsConfig) validate() error {
	if w.MaxPerUser <= 0 {
		return fmt.Errorf("max_per_user must be > 0 (got %d)", w.MaxPerUser)
	}
	if w.DefaultPageSize <= 0 {
		return fmt.Errorf("default_page_size must be > 0 (got %d)", w.DefaultPageSize)
	}
	if w.MaxPageSize < w.DefaultPageSize {
		return fmt.Errorf("max_page_size must be >= default_page_size (got %d < %d)", w.MaxPageSize, w.DefaultPageSize)
	}
	return nil
}

func (r *RateLimitConfig) validate() error {
	if !r.Enabled {
		return nil
	}
	if r.RequestsPerMinute <= 0 {
		return fmt.Errorf("requests_per_minute must be > 0 (got %d)", r.RequestsPerMinute)
	}
	if r.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup_interval must be > 0 (got %v)", r.CleanupInterval)
	}
	return nil
}
