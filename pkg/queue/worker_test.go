package queue

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/recapcrew/recap/pkg/config"
	"github.com/stretchr/testify/assert"
)

func testWorker(t *testing.T) *Worker {
	t.Helper()
	return NewWorker("pod-1-worker-0", "pod-1", nil,
		config.DefaultQueueConfig(), config.DefaultPipelineConfig(), nil, nil)
}

func TestWorker_BackoffDelay(t *testing.T) {
	w := testWorker(t)

	// BackoffBase^attempts seconds with the default base of 2.
	assert.Equal(t, 2*time.Second, w.backoffDelay(1))
	assert.Equal(t, 4*time.Second, w.backoffDelay(2))
	assert.Equal(t, 8*time.Second, w.backoffDelay(3))
}

func TestWorker_PollIntervalJitter(t *testing.T) {
	w := testWorker(t)
	base := w.queueCfg.PollInterval
	jitter := w.queueCfg.PollIntervalJitter

	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, base-jitter)
		assert.LessOrEqual(t, d, base+jitter)
	}
}

func TestWorker_PollIntervalWithoutJitter(t *testing.T) {
	w := testWorker(t)
	w.queueCfg.PollIntervalJitter = 0
	assert.Equal(t, w.queueCfg.PollInterval, w.pollInterval())
}

func TestWorker_HealthTracking(t *testing.T) {
	w := testWorker(t)

	h := w.Health()
	assert.Equal(t, WorkerStatusIdle, h.Status)
	assert.Empty(t, h.CurrentJobID)

	w.setStatus(WorkerStatusWorking, "job-1")
	h = w.Health()
	assert.Equal(t, WorkerStatusWorking, h.Status)
	assert.Equal(t, "job-1", h.CurrentJobID)
}

func TestNonRetryableError(t *testing.T) {
	err := NonRetryable("meeting %s has no segments", "m-1")
	assert.True(t, IsNonRetryable(err))
	assert.Equal(t, "meeting m-1 has no segments", err.Error())

	assert.True(t, IsNonRetryable(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsNonRetryable(errors.New("transient")))
	assert.False(t, IsNonRetryable(nil))
}

func TestWaitingError(t *testing.T) {
	err := Waiting("chunk summarization still in flight for meeting %s", "m-1")
	assert.True(t, IsWaiting(err))
	assert.False(t, IsNonRetryable(err))
	assert.Equal(t, "chunk summarization still in flight for meeting m-1", err.Error())

	assert.True(t, IsWaiting(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsWaiting(errors.New("transient")))
	assert.False(t, IsWaiting(nil))
}
