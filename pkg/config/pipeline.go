package config

import (
	"fmt"
	"time"
)

// PipelineConfig contains the summarization pipeline knobs: chunking
// geometry, batch triggering, retry policy, and input limits.
type PipelineConfig struct {
	// ChunkSize is the token budget per transcript chunk.
	ChunkSize int

	// OverlapRatio is the fraction of ChunkSize shared between
	// consecutive chunks.
	OverlapRatio float64

	// BatchTokens is the unsummarized-token threshold that triggers a
	// chunk-summary job.
	BatchTokens int

	// BatchTimeout is the batch monitor wake interval.
	BatchTimeout time.Duration

	// MaxRetries is the maximum number of attempts per job.
	MaxRetries int

	// BackoffBase is the exponential backoff base in seconds; retry N
	// waits BackoffBase^N seconds.
	BackoffBase float64

	// CharsPerToken drives the cheap ingest-path token estimator.
	CharsPerToken int

	// MaxInputLength is the maximum accepted segment text length in
	// characters.
	MaxInputLength int

	// MaxPromptTokens caps the estimated token size of a single prompt.
	MaxPromptTokens int
}

// DefaultPipelineConfig returns the built-in pipeline defaults.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		ChunkSize:       2000,
		OverlapRatio:    0.15,
		BatchTokens:     2000,
		BatchTimeout:    45 * time.Second,
		MaxRetries:      3,
		BackoffBase:     2,
		CharsPerToken:   4,
		MaxInputLength:  50000,
		MaxPromptTokens: 15000,
	}
}

// LoadPipelineConfig loads pipeline configuration from the environment,
// falling back to defaults.
func LoadPipelineConfig() (*PipelineConfig, error) {
	cfg := DefaultPipelineConfig()

	var err error
	if cfg.ChunkSize, err = envInt("CHUNK_SIZE", cfg.ChunkSize); err != nil {
		return nil, err
	}
	if cfg.OverlapRatio, err = envFloat("OVERLAP_RATIO", cfg.OverlapRatio); err != nil {
		return nil, err
	}
	if cfg.BatchTokens, err = envInt("BATCH_TOKENS", cfg.BatchTokens); err != nil {
		return nil, err
	}
	if cfg.BatchTimeout, err = envSeconds("BATCH_TIMEOUT", cfg.BatchTimeout); err != nil {
		return nil, err
	}
	if cfg.MaxRetries, err = envInt("MAX_RETRIES", cfg.MaxRetries); err != nil {
		return nil, err
	}
	if cfg.BackoffBase, err = envFloat("BACKOFF_BASE", cfg.BackoffBase); err != nil {
		return nil, err
	}
	if cfg.CharsPerToken, err = envInt("CHARS_PER_TOKEN", cfg.CharsPerToken); err != nil {
		return nil, err
	}
	if cfg.MaxInputLength, err = envInt("MAX_INPUT_LENGTH", cfg.MaxInputLength); err != nil {
		return nil, err
	}
	if cfg.MaxPromptTokens, err = envInt("MAX_PROMPT_TOKENS", cfg.MaxPromptTokens); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the pipeline configuration for invalid combinations.
func (c *PipelineConfig) Validate() error {
	if c.ChunkSize <= 0 {
		return fmt.Errorf("CHUNK_SIZE must be positive, got %d", c.ChunkSize)
	}
	if c.OverlapRatio < 0 || c.OverlapRatio >= 1 {
		return fmt.Errorf("OVERLAP_RATIO must be in [0, 1), got %g", c.OverlapRatio)
	}
	if c.BatchTokens <= 0 {
		return fmt.Errorf("BATCH_TOKENS must be positive, got %d", c.BatchTokens)
	}
	if c.BatchTimeout <= 0 {
		return fmt.Errorf("BATCH_TIMEOUT must be positive, got %s", c.BatchTimeout)
	}
	if c.MaxRetries < 1 {
		return fmt.Errorf("MAX_RETRIES must be at least 1, got %d", c.MaxRetries)
	}
	if c.BackoffBase < 1 {
		return fmt.Errorf("BACKOFF_BASE must be at least 1, got %g", c.BackoffBase)
	}
	if c.CharsPerToken <= 0 {
		return fmt.Errorf("CHARS_PER_TOKEN must be positive, got %d", c.CharsPerToken)
	}
	return nil
}

// OverlapTokens returns the per-chunk overlap in tokens.
func (c *PipelineConfig) OverlapTokens() int {
	return int(float64(c.ChunkSize) * c.OverlapRatio)
}
