package config

import (
	"runtime"
	"time"
)

// QueueConfig contains worker pool configuration. These values control
// how jobs are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica.
	// Each worker independently polls and claims jobs.
	WorkerCount int

	// PollInterval is the base interval for checking pending jobs.
	PollInterval time.Duration

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration

	// JobTimeout is the maximum time a single job may run.
	JobTimeout time.Duration

	// GracefulShutdownTimeout is the max time to wait for active jobs
	// to complete during shutdown.
	GracefulShutdownTimeout time.Duration

	// HeartbeatInterval is how often a worker refreshes the heartbeat
	// of its in-flight job.
	HeartbeatInterval time.Duration

	// OrphanDetectionInterval is how often to scan for orphaned jobs.
	OrphanDetectionInterval time.Duration

	// OrphanThreshold is how long a processing job can go without a
	// heartbeat before it is considered orphaned.
	OrphanThreshold time.Duration
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             runtime.NumCPU(),
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		JobTimeout:              5 * time.Minute,
		GracefulShutdownTimeout: 30 * time.Second,
		HeartbeatInterval:       15 * time.Second,
		OrphanDetectionInterval: 1 * time.Minute,
		OrphanThreshold:         2 * time.Minute,
	}
}

// LoadQueueConfig loads queue configuration from the environment.
func LoadQueueConfig() (*QueueConfig, error) {
	cfg := DefaultQueueConfig()

	var err error
	if cfg.WorkerCount, err = envInt("WORKER_COUNT", cfg.WorkerCount); err != nil {
		return nil, err
	}
	if cfg.PollInterval, err = envDuration("WORKER_POLL_INTERVAL", cfg.PollInterval); err != nil {
		return nil, err
	}
	if cfg.JobTimeout, err = envDuration("JOB_TIMEOUT", cfg.JobTimeout); err != nil {
		return nil, err
	}
	if cfg.GracefulShutdownTimeout, err = envDuration("SHUTDOWN_TIMEOUT", cfg.GracefulShutdownTimeout); err != nil {
		return nil, err
	}
	return cfg, nil
}
