package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPipelineConfig_Defaults(t *testing.T) {
	cfg, err := LoadPipelineConfig()
	require.NoError(t, err)

	assert.Equal(t, 2000, cfg.ChunkSize)
	assert.Equal(t, 0.15, cfg.OverlapRatio)
	assert.Equal(t, 2000, cfg.BatchTokens)
	assert.Equal(t, 45*time.Second, cfg.BatchTimeout)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, float64(2), cfg.BackoffBase)
	assert.Equal(t, 4, cfg.CharsPerToken)
}

func TestLoadPipelineConfig_EnvOverrides(t *testing.T) {
	t.Setenv("CHUNK_SIZE", "500")
	t.Setenv("OVERLAP_RATIO", "0.2")
	t.Setenv("BATCH_TOKENS", "100")
	t.Setenv("BATCH_TIMEOUT", "10")
	t.Setenv("MAX_RETRIES", "5")

	cfg, err := LoadPipelineConfig()
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.ChunkSize)
	assert.Equal(t, 0.2, cfg.OverlapRatio)
	assert.Equal(t, 100, cfg.BatchTokens)
	assert.Equal(t, 10*time.Second, cfg.BatchTimeout)
	assert.Equal(t, 5, cfg.MaxRetries)
}

func TestLoadPipelineConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"non-numeric chunk size", "CHUNK_SIZE", "lots"},
		{"zero chunk size", "CHUNK_SIZE", "0"},
		{"overlap ratio at one", "OVERLAP_RATIO", "1.0"},
		{"negative overlap ratio", "OVERLAP_RATIO", "-0.1"},
		{"zero batch tokens", "BATCH_TOKENS", "0"},
		{"zero retries", "MAX_RETRIES", "0"},
		{"backoff base below one", "BACKOFF_BASE", "0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := LoadPipelineConfig()
			assert.Error(t, err)
		})
	}
}

func TestPipelineConfig_OverlapTokens(t *testing.T) {
	cfg := DefaultPipelineConfig()
	assert.Equal(t, 300, cfg.OverlapTokens())

	cfg.ChunkSize = 100
	cfg.OverlapRatio = 0.15
	assert.Equal(t, 15, cfg.OverlapTokens())
}

func TestLoadInferenceConfig(t *testing.T) {
	t.Setenv("INFERENCE_HOST", "llm.internal")
	t.Setenv("INFERENCE_PORT", "9000")
	t.Setenv("INFERENCE_API_KEY", "sk-test")

	cfg, err := LoadInferenceConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://llm.internal:9000", cfg.BaseURL())
	assert.Equal(t, "sk-test", cfg.APIKey)
	assert.Equal(t, 1024, cfg.MaxTokens)
	assert.Equal(t, 0.3, cfg.Temperature)
	assert.Equal(t, []string{"User", "Assistant"}, cfg.Stop)
}

func TestLoadWatcherConfig_Disabled(t *testing.T) {
	cfg, err := LoadWatcherConfig()
	require.NoError(t, err)
	assert.False(t, cfg.Enabled())

	t.Setenv("AUDIO_INPUT_DIR", "/var/audio/in")
	cfg, err = LoadWatcherConfig()
	require.NoError(t, err)
	assert.True(t, cfg.Enabled())
}
