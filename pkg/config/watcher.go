package config

import "time"

// WatcherConfig describes the audio input directory watcher.
type WatcherConfig struct {
	// InputDir is watched for new audio files; empty disables the
	// watcher.
	InputDir string

	// ProcessedDir receives files after successful processing.
	ProcessedDir string

	// RescanInterval is the polling fallback period; the watcher also
	// rescans at this interval in case a filesystem event was missed.
	RescanInterval time.Duration

	// SettleDelay is how long a file must stop growing before it is
	// considered fully written.
	SettleDelay time.Duration

	// DeleteAfterProcessing removes the source file instead of moving
	// it to ProcessedDir.
	DeleteAfterProcessing bool
}

// DefaultWatcherConfig returns the built-in watcher defaults.
func DefaultWatcherConfig() *WatcherConfig {
	return &WatcherConfig{
		RescanInterval: 30 * time.Second,
		SettleDelay:    2 * time.Second,
	}
}

// LoadWatcherConfig loads watcher configuration from the environment.
func LoadWatcherConfig() (*WatcherConfig, error) {
	cfg := DefaultWatcherConfig()
	cfg.InputDir = envString("AUDIO_INPUT_DIR", "")
	cfg.ProcessedDir = envString("AUDIO_PROCESSED_DIR", "")

	var err error
	if cfg.RescanInterval, err = envDuration("AUDIO_RESCAN_INTERVAL", cfg.RescanInterval); err != nil {
		return nil, err
	}
	if cfg.DeleteAfterProcessing, err = envBool("AUDIO_DELETE_AFTER_PROCESSING", false); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Enabled reports whether the watcher should run.
func (c *WatcherConfig) Enabled() bool {
	return c.InputDir != ""
}
