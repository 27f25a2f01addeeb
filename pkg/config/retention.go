package config

import (
	"fmt"
	"time"
)

// RetentionConfig controls how long finished job rows are kept.
type RetentionConfig struct {
	// JobRetentionDays is how long completed and failed jobs stay
	// queryable through the jobs API before the sweeper removes them.
	JobRetentionDays int

	// CleanupInterval is the sweep period.
	CleanupInterval time.Duration
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		JobRetentionDays: 30,
		CleanupInterval:  1 * time.Hour,
	}
}

// LoadRetentionConfig loads retention configuration from the
// environment.
func LoadRetentionConfig() (*RetentionConfig, error) {
	cfg := DefaultRetentionConfig()

	var err error
	if cfg.JobRetentionDays, err = envInt("JOB_RETENTION_DAYS", cfg.JobRetentionDays); err != nil {
		return nil, err
	}
	if cfg.CleanupInterval, err = envDuration("CLEANUP_INTERVAL", cfg.CleanupInterval); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration.
func (c *RetentionConfig) Validate() error {
	if c.JobRetentionDays < 1 {
		return fmt.Errorf("job retention must be at least one day, got %d", c.JobRetentionDays)
	}
	if c.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup interval must be positive, got %s", c.CleanupInterval)
	}
	return nil
}
