package inference

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/recapcrew/recap/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	infCfg := config.DefaultInferenceConfig()
	infCfg.APIKey = "test-key"
	infCfg.RequestTimeout = 2 * time.Second

	c := NewClient(infCfg, config.DefaultPipelineConfig())
	c.baseURL = srv.URL
	return c
}

func TestComplete_Success(t *testing.T) {
	var gotAuth string
	var gotReq completionRequest

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]string{{"text": "  {\"summary\": \"ok\"}  \n"}},
		})
	})

	out, err := c.Complete(context.Background(), "summarize this")
	require.NoError(t, err)
	assert.Equal(t, `{"summary": "ok"}`, out, "completion text is trimmed but otherwise verbatim")
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "summarize this", gotReq.Prompt)
	assert.Equal(t, 1024, gotReq.MaxTokens)
	assert.Equal(t, 0.3, gotReq.Temperature)
	assert.Equal(t, []string{"User", "Assistant"}, gotReq.Stop)
}

func TestComplete_ServerErrorIsTransient(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	})

	_, err := c.Complete(context.Background(), "prompt")
	require.Error(t, err)
	assert.True(t, IsTransient(err))

	var te *TransientError
	require.ErrorAs(t, err, &te)
	assert.Contains(t, te.Message, "503")
}

func TestComplete_ClientErrorNotRetryable(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad prompt", http.StatusBadRequest)
	})

	_, err := c.Complete(context.Background(), "prompt")
	require.Error(t, err)
	assert.False(t, IsTransient(err))

	var ire *InvalidResponseError
	require.ErrorAs(t, err, &ire)
	assert.Equal(t, http.StatusBadRequest, ire.StatusCode)
}

func TestComplete_ConnectionErrorIsTransient(t *testing.T) {
	infCfg := config.DefaultInferenceConfig()
	infCfg.RequestTimeout = time.Second
	c := NewClient(infCfg, config.DefaultPipelineConfig())
	c.baseURL = "http://127.0.0.1:1" // nothing listens here

	_, err := c.Complete(context.Background(), "prompt")
	require.Error(t, err)
	assert.True(t, IsTransient(err))
}

func TestComplete_PromptSizeCap(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("oversized prompt must not reach the backend")
	})

	huge := strings.Repeat("word ", 100000) // ~125k estimated tokens
	_, err := c.Complete(context.Background(), huge)
	require.Error(t, err)
	assert.False(t, IsTransient(err))

	var ire *InvalidResponseError
	require.ErrorAs(t, err, &ire)
	assert.Contains(t, ire.Message, "prompt too large")
}

func TestComplete_MalformedEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	})

	_, err := c.Complete(context.Background(), "prompt")
	require.Error(t, err)
	assert.False(t, IsTransient(err))
}

func TestComplete_EmptyChoices(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	})

	_, err := c.Complete(context.Background(), "prompt")
	require.Error(t, err)

	var ire *InvalidResponseError
	require.ErrorAs(t, err, &ire)
	assert.Contains(t, ire.Message, "no choices")
}

func TestComplete_ContextCancellation(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.Complete(ctx, "prompt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTimeout) || IsTransient(err))
}

func TestHealthz(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/healthz", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})
	assert.NoError(t, c.Healthz(context.Background()))

	down := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	assert.Error(t, down.Healthz(context.Background()))
}
