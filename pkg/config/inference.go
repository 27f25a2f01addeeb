package config

import (
	"fmt"
	"time"
)

// InferenceConfig describes the LLM completions backend.
type InferenceConfig struct {
	// Host and Port locate the OpenAI-compatible completions server.
	Host string
	Port int

	// APIKey is attached as a bearer token when non-empty.
	APIKey string

	// Model is passed through to the backend when non-empty.
	Model string

	// RequestTimeout bounds a single completion call.
	RequestTimeout time.Duration

	// MaxTokens is the completion budget per request.
	MaxTokens int

	// Temperature for sampling.
	Temperature float64

	// Stop sequences sent with every request.
	Stop []string
}

// DefaultInferenceConfig returns the built-in inference defaults.
func DefaultInferenceConfig() *InferenceConfig {
	return &InferenceConfig{
		Host:           "localhost",
		Port:           8081,
		RequestTimeout: 120 * time.Second,
		MaxTokens:      1024,
		Temperature:    0.3,
		Stop:           []string{"User", "Assistant"},
	}
}

// LoadInferenceConfig loads inference backend configuration from the
// environment.
func LoadInferenceConfig() (*InferenceConfig, error) {
	cfg := DefaultInferenceConfig()

	cfg.Host = envString("INFERENCE_HOST", cfg.Host)
	cfg.APIKey = envString("INFERENCE_API_KEY", "")
	cfg.Model = envString("INFERENCE_MODEL", "")

	var err error
	if cfg.Port, err = envInt("INFERENCE_PORT", cfg.Port); err != nil {
		return nil, err
	}
	if cfg.RequestTimeout, err = envSeconds("INFERENCE_TIMEOUT", cfg.RequestTimeout); err != nil {
		return nil, err
	}
	if cfg.MaxTokens, err = envInt("INFERENCE_MAX_TOKENS", cfg.MaxTokens); err != nil {
		return nil, err
	}
	if cfg.Temperature, err = envFloat("INFERENCE_TEMPERATURE", cfg.Temperature); err != nil {
		return nil, err
	}
	return cfg, nil
}

// BaseURL renders the backend base URL.
func (c *InferenceConfig) BaseURL() string {
	return fmt.Sprintf("http://%s:%d", c.Host, c.Port)
}
