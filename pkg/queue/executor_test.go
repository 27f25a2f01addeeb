package queue

import (
	"context"
	"sync"
	"testing"

	"github.com/recapcrew/recap/pkg/chunker"
	"github.com/recapcrew/recap/pkg/inference"
	"github.com/recapcrew/recap/pkg/transcribe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLLM returns canned responses in order and records the prompts it
// received.
type fakeLLM struct {
	mu        sync.Mutex
	responses []string
	err       error
	prompts   []string
}

func (f *fakeLLM) Complete(_ context.Context, promptText string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, promptText)
	if f.err != nil {
		return "", f.err
	}
	if len(f.responses) == 0 {
		return "", &inference.TransientError{Message: "no canned response"}
	}
	resp := f.responses[0]
	f.responses = f.responses[1:]
	return resp, nil
}

// fakeTranscriber returns a canned transcription and counts calls.
type fakeTranscriber struct {
	mu     sync.Mutex
	calls  int
	result *transcribe.Transcription
}

func (f *fakeTranscriber) Transcribe(_ context.Context, _ string) (*transcribe.Transcription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.result, nil
}

func (f *fakeTranscriber) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

const chunkResponse = `{
	"summary": "The team reviewed the rollout plan.",
	"decisions": [{"text": "Ship Friday", "confidence": 0.9}],
	"action_items": [{"text": "Update the runbook", "confidence": 0.8}],
	"topics": [{"name": "rollout", "confidence": 0.95}]
}`

func TestSummarizeChunk(t *testing.T) {
	t.Run("stamps source segment ids", func(t *testing.T) {
		e := &Executor{llm: &fakeLLM{responses: []string{chunkResponse}}}

		content, err := e.summarizeChunk(context.Background(), chunker.Chunk{
			Text:       "[alice @ t]: we ship friday",
			SegmentIDs: []string{"seg-1", "seg-2"},
		})
		require.NoError(t, err)

		assert.Equal(t, "The team reviewed the rollout plan.", content.Summary)
		require.Len(t, content.Decisions, 1)
		assert.Equal(t, []string{"seg-1", "seg-2"}, content.Decisions[0].SourceSegmentIDs)
		require.Len(t, content.ActionItems, 1)
		assert.Equal(t, []string{"seg-1", "seg-2"}, content.ActionItems[0].SourceSegmentIDs)
	})

	t.Run("tolerates prose around the JSON object", func(t *testing.T) {
		e := &Executor{llm: &fakeLLM{responses: []string{
			"Here is the summary you asked for:\n" + chunkResponse + "\nHope that helps!",
		}}}

		content, err := e.summarizeChunk(context.Background(), chunker.Chunk{Text: "x"})
		require.NoError(t, err)
		assert.Equal(t, "The team reviewed the rollout plan.", content.Summary)
	})

	t.Run("malformed output is non-retryable", func(t *testing.T) {
		e := &Executor{llm: &fakeLLM{responses: []string{"I could not summarize that."}}}

		_, err := e.summarizeChunk(context.Background(), chunker.Chunk{Text: "x"})
		require.Error(t, err)
		assert.True(t, IsNonRetryable(err))
		assert.Contains(t, err.Error(), "malformed model output")
	})

	t.Run("truncated JSON is non-retryable", func(t *testing.T) {
		e := &Executor{llm: &fakeLLM{responses: []string{`{"summary": "cut off`}}}

		_, err := e.summarizeChunk(context.Background(), chunker.Chunk{Text: "x"})
		require.Error(t, err)
		assert.True(t, IsNonRetryable(err))
	})

	t.Run("backend rejection is non-retryable", func(t *testing.T) {
		e := &Executor{llm: &fakeLLM{err: &inference.InvalidResponseError{StatusCode: 422, Message: "bad prompt"}}}

		_, err := e.summarizeChunk(context.Background(), chunker.Chunk{Text: "x"})
		require.Error(t, err)
		assert.True(t, IsNonRetryable(err))
	})

	t.Run("transient backend failure stays retryable", func(t *testing.T) {
		e := &Executor{llm: &fakeLLM{err: &inference.TransientError{Message: "connection refused"}}}

		_, err := e.summarizeChunk(context.Background(), chunker.Chunk{Text: "x"})
		require.Error(t, err)
		assert.False(t, IsNonRetryable(err))
	})
}

func TestAnnotateItem(t *testing.T) {
	t.Run("parses owner and due date", func(t *testing.T) {
		llm := &fakeLLM{responses: []string{`{"owner": "alice", "due_date_iso": "2026-09-01"}`}}
		e := &Executor{llm: llm}

		result, err := e.annotateItem(context.Background(), "Update the runbook")
		require.NoError(t, err)
		assert.Equal(t, "alice", result.Owner)
		assert.Equal(t, "2026-09-01", result.DueDateISO)

		require.Len(t, llm.prompts, 1)
		assert.Contains(t, llm.prompts[0], "Update the runbook")
	})

	t.Run("malformed annotation is non-retryable", func(t *testing.T) {
		e := &Executor{llm: &fakeLLM{responses: []string{"nobody owns this"}}}

		_, err := e.annotateItem(context.Background(), "x")
		require.Error(t, err)
		assert.True(t, IsNonRetryable(err))
	})
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "bare object", raw: `{"a": 1}`, want: `{"a": 1}`},
		{name: "prose wrapped", raw: `sure: {"a": 1} done`, want: `{"a": 1}`},
		{name: "nested braces", raw: `{"a": {"b": 2}}`, want: `{"a": {"b": 2}}`},
		{name: "no object", raw: "nothing here", wantErr: true},
		{name: "reversed braces", raw: "} {", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractJSON(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyModelError(t *testing.T) {
	invalid := classifyModelError(&inference.InvalidResponseError{StatusCode: 400, Message: "nope"})
	assert.True(t, IsNonRetryable(invalid))

	transient := classifyModelError(&inference.TransientError{Message: "flaky"})
	assert.False(t, IsNonRetryable(transient))

	timeout := classifyModelError(inference.ErrTimeout)
	assert.False(t, IsNonRetryable(timeout))
}
