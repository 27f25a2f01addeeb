// Package inference is the HTTP client for the LLM completions
// backend. It returns raw completion text verbatim; parsing is the
// caller's job.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/recapcrew/recap/pkg/config"
	"github.com/recapcrew/recap/pkg/version"
)

// ErrTimeout is returned when the backend does not respond within the
// configured deadline.
var ErrTimeout = errors.New("inference request timed out")

// InvalidResponseError reports a non-retryable backend rejection
// (HTTP 4xx) or a request that violates the prompt size cap.
type InvalidResponseError struct {
	StatusCode int
	Message    string
}

func (e *InvalidResponseError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("inference backend rejected request (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("invalid inference request: %s", e.Message)
}

// TransientError reports a retryable failure: HTTP 5xx or a connection
// error.
type TransientError struct {
	Message string
	Err     error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("transient inference failure: %s", e.Message)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// IsTransient reports whether err should be retried by the caller.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}

// Client calls the completions backend.
type Client struct {
	baseURL         string
	apiKey          string
	model           string
	maxTokens       int
	temperature     float64
	stop            []string
	charsPerToken   int
	maxPromptTokens int
	httpClient      *http.Client
}

// NewClient builds a client from inference and pipeline configuration.
func NewClient(infCfg *config.InferenceConfig, pipeCfg *config.PipelineConfig) *Client {
	return &Client{
		baseURL:         strings.TrimRight(infCfg.BaseURL(), "/"),
		apiKey:          infCfg.APIKey,
		model:           infCfg.Model,
		maxTokens:       infCfg.MaxTokens,
		temperature:     infCfg.Temperature,
		stop:            infCfg.Stop,
		charsPerToken:   pipeCfg.CharsPerToken,
		maxPromptTokens: pipeCfg.MaxPromptTokens,
		httpClient: &http.Client{
			Timeout: infCfg.RequestTimeout,
		},
	}
}

type completionRequest struct {
	Prompt      string   `json:"prompt"`
	MaxTokens   int      `json:"max_tokens"`
	Temperature float64  `json:"temperature"`
	Stop        []string `json:"stop,omitempty"`
	Model       string   `json:"model,omitempty"`
}

type completionResponse struct {
	Choices []struct {
		Text string `json:"text"`
	} `json:"choices"`
}

// Complete sends prompt to the backend and returns the completion text
// with surrounding whitespace trimmed.
func (c *Client) Complete(ctx context.Context, promptText string) (string, error) {
	if c.maxPromptTokens > 0 {
		estimated := utf8.RuneCountInString(promptText) / c.charsPerToken
		if estimated > c.maxPromptTokens {
			return "", &InvalidResponseError{
				Message: fmt.Sprintf("prompt too large: ~%d tokens exceeds cap of %d", estimated, c.maxPromptTokens),
			}
		}
	}

	body, err := json.Marshal(completionRequest{
		Prompt:      promptText,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
		Stop:        c.stop,
		Model:       c.model,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", version.Full())
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isClientTimeout(err) {
			return "", ErrTimeout
		}
		return "", &TransientError{Message: "connection failed", Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return "", &TransientError{Message: "failed to read response body", Err: err}
	}

	switch {
	case resp.StatusCode >= 500:
		return "", &TransientError{
			Message: fmt.Sprintf("backend returned status %d: %s", resp.StatusCode, truncate(string(respBody), 200)),
		}
	case resp.StatusCode >= 400:
		return "", &InvalidResponseError{
			StatusCode: resp.StatusCode,
			Message:    truncate(string(respBody), 200),
		}
	}

	var parsed completionResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", &InvalidResponseError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("malformed completion envelope: %v", err),
		}
	}
	if len(parsed.Choices) == 0 {
		return "", &InvalidResponseError{
			StatusCode: resp.StatusCode,
			Message:    "completion response has no choices",
		}
	}

	return strings.TrimSpace(parsed.Choices[0].Text), nil
}

// Healthz pings the backend, used by the API health endpoint.
func (c *Client) Healthz(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransientError{Message: "health check failed", Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode >= 400 {
		return &TransientError{Message: fmt.Sprintf("health check returned status %d", resp.StatusCode)}
	}
	return nil
}

func isClientTimeout(err error) bool {
	var ue interface{ Timeout() bool }
	return errors.As(err, &ue) && ue.Timeout()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
