package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/recapcrew/recap/ent"
	"github.com/recapcrew/recap/ent/job"
	"github.com/recapcrew/recap/pkg/config"
	"github.com/recapcrew/recap/pkg/models"
	testdb "github.com/recapcrew/recap/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestJob creates a pending job. Meeting-less jobs are valid
// (PROCESS_AUDIO works that way), which keeps claim-mechanics tests
// free of meeting fixtures.
func createTestJob(ctx context.Context, t *testing.T, client *ent.Client, jobType string) *ent.Job {
	t.Helper()
	j, err := client.Job.Create().
		SetID(uuid.New().String()).
		SetJobType(jobType).
		Save(ctx)
	require.NoError(t, err)
	return j
}

// intTestQueueConfig returns a queue config suitable for integration tests.
func intTestQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             2,
		PollInterval:            100 * time.Millisecond,
		PollIntervalJitter:      0,
		JobTimeout:              30 * time.Second,
		GracefulShutdownTimeout: 10 * time.Second,
		HeartbeatInterval:       30 * time.Second,
		OrphanDetectionInterval: 1 * time.Second,
		OrphanThreshold:         2 * time.Second,
	}
}

func intTestPipelineConfig() *config.PipelineConfig {
	cfg := config.DefaultPipelineConfig()
	cfg.MaxRetries = 3
	cfg.BackoffBase = 2
	return cfg
}

// awaitCondition polls until condition returns true or the timeout elapses.
func awaitCondition(t *testing.T, timeout, interval time.Duration, msg string, condition func() bool) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case <-deadline:
			t.Fatalf("timed out: %s", msg)
		default:
			if condition() {
				return
			}
			time.Sleep(interval)
		}
	}
}

// TestForUpdateSkipLockedClaiming tests that a worker can atomically claim a pending job.
func TestForUpdateSkipLockedClaiming(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	created := createTestJob(ctx, t, client, models.JobTypeChunkSummary)

	w := NewWorker("test-pod-worker-0", "test-pod", client, intTestQueueConfig(), intTestPipelineConfig(), nil, nil)

	claimed, err := w.claimNextJob(ctx)
	require.NoError(t, err)
	require.NotNil(t, claimed, "worker should claim the pending job")
	assert.Equal(t, created.ID, claimed.ID)
	assert.Equal(t, job.StatusProcessing, claimed.Status)
	assert.Equal(t, 1, claimed.Attempts, "claiming increments attempts")
	require.NotNil(t, claimed.ClaimedBy)
	assert.Equal(t, "test-pod-worker-0", *claimed.ClaimedBy)
	assert.NotNil(t, claimed.LastHeartbeat)

	// Second claim should return ErrNoJobsAvailable
	claimed2, err := w.claimNextJob(ctx)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
	assert.Nil(t, claimed2, "no more pending jobs should be available")
}

// TestRunAfterGatesClaiming tests that jobs waiting out a retry backoff
// are invisible to workers until run_after passes.
func TestRunAfterGatesClaiming(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	j, err := client.Job.Create().
		SetID(uuid.New().String()).
		SetJobType(models.JobTypeChunkSummary).
		SetRunAfter(time.Now().Add(1 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	w := NewWorker("test-pod-worker-0", "test-pod", client, intTestQueueConfig(), intTestPipelineConfig(), nil, nil)

	_, err = w.claimNextJob(ctx)
	assert.ErrorIs(t, err, ErrNoJobsAvailable, "future run_after must gate the claim")

	// Pull run_after into the past; the job becomes claimable.
	err = client.Job.UpdateOneID(j.ID).
		SetRunAfter(time.Now().Add(-1 * time.Second)).
		Exec(ctx)
	require.NoError(t, err)

	claimed, err := w.claimNextJob(ctx)
	require.NoError(t, err)
	assert.Equal(t, j.ID, claimed.ID)
}

// TestClaimOrderIsFIFO tests that workers claim the oldest pending job first.
func TestClaimOrderIsFIFO(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	base := time.Now().Add(-1 * time.Minute)
	var ids []string
	for i := 0; i < 3; i++ {
		j, err := client.Job.Create().
			SetID(uuid.New().String()).
			SetJobType(models.JobTypeChunkSummary).
			SetCreatedAt(base.Add(time.Duration(i) * time.Second)).
			SetRunAfter(base).
			Save(ctx)
		require.NoError(t, err)
		ids = append(ids, j.ID)
	}

	w := NewWorker("test-pod-worker-0", "test-pod", client, intTestQueueConfig(), intTestPipelineConfig(), nil, nil)

	for _, want := range ids {
		claimed, err := w.claimNextJob(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, claimed.ID)
	}
}

// TestConcurrentClaimsDifferentJobs tests that concurrent workers claim different jobs.
func TestConcurrentClaimsDifferentJobs(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	jobIDs := make(map[string]struct{})
	for i := 0; i < 5; i++ {
		j := createTestJob(ctx, t, client, models.JobTypeChunkSummary)
		jobIDs[j.ID] = struct{}{}
	}

	cfg := intTestQueueConfig()
	pipeCfg := intTestPipelineConfig()
	var mu sync.Mutex
	claimed := make([]string, 0, 5)
	errCh := make(chan error, 5)
	var wg sync.WaitGroup

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			w := NewWorker(fmt.Sprintf("test-pod-worker-%d", workerID), "test-pod", client, cfg, pipeCfg, nil, nil)
			j, err := w.claimNextJob(ctx)
			if err != nil {
				errCh <- fmt.Errorf("worker-%d claim failed: %w", workerID, err)
				return
			}
			mu.Lock()
			claimed = append(claimed, j.ID)
			mu.Unlock()
		}(i)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	assert.Len(t, claimed, 5, "all 5 jobs should be claimed")

	seen := make(map[string]struct{})
	for _, id := range claimed {
		_, dup := seen[id]
		assert.False(t, dup, "job %s claimed by multiple workers", id)
		seen[id] = struct{}{}
		_, ok := jobIDs[id]
		assert.True(t, ok, "claimed job %s was not in original set", id)
	}
}

// TestFinishJobTransitions tests the terminal and retry state machine.
func TestFinishJobTransitions(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	w := NewWorker("test-pod-worker-0", "test-pod", client, intTestQueueConfig(), intTestPipelineConfig(), nil, nil)

	claim := func(t *testing.T) *ent.Job {
		t.Helper()
		createTestJob(ctx, t, client, models.JobTypeChunkSummary)
		claimed, err := w.claimNextJob(ctx)
		require.NoError(t, err)
		return claimed
	}

	t.Run("success completes the job", func(t *testing.T) {
		claimed := claim(t)
		require.NoError(t, w.finishJob(ctx, claimed, nil))

		updated, err := client.Job.Get(ctx, claimed.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusCompleted, updated.Status)
		assert.NotNil(t, updated.CompletedAt)
		assert.Nil(t, updated.ClaimedBy)
		assert.Nil(t, updated.LastError)
	})

	t.Run("non-retryable failure completes with last_error", func(t *testing.T) {
		claimed := claim(t)
		require.NoError(t, w.finishJob(ctx, claimed, NonRetryable("meeting has no segments")))

		updated, err := client.Job.Get(ctx, claimed.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusCompleted, updated.Status)
		require.NotNil(t, updated.LastError)
		assert.Contains(t, *updated.LastError, "no segments")
	})

	t.Run("waiting requeues without charging an attempt", func(t *testing.T) {
		claimed := claim(t)
		require.Equal(t, 1, claimed.Attempts, "the claim charged one attempt")

		before := time.Now()
		require.NoError(t, w.finishJob(ctx, claimed, Waiting("chunk summarization still in flight")))

		updated, err := client.Job.Get(ctx, claimed.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusPending, updated.Status)
		assert.Equal(t, 0, updated.Attempts, "waiting must refund the claim's attempt")
		assert.Nil(t, updated.ClaimedBy)
		assert.Nil(t, updated.LastHeartbeat)
		require.NotNil(t, updated.LastError)
		assert.Contains(t, *updated.LastError, "in flight")
		assert.True(t, updated.RunAfter.After(before),
			"run_after should delay the recheck, got %s", updated.RunAfter)

		// However many times the gate recurs, the budget never drains,
		// so a chunk job can run far longer than MaxRetries backoffs.
		for i := 0; i < 5; i++ {
			err := client.Job.UpdateOneID(claimed.ID).
				SetRunAfter(time.Now().Add(-1 * time.Second)).
				Exec(ctx)
			require.NoError(t, err)
			reclaimed, err := w.claimNextJob(ctx)
			require.NoError(t, err)
			require.Equal(t, claimed.ID, reclaimed.ID)
			require.NoError(t, w.finishJob(ctx, reclaimed, Waiting("still waiting")))
		}
		updated, err = client.Job.Get(ctx, claimed.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusPending, updated.Status,
			"a long-running upstream job must never fail the waiter")
		assert.Equal(t, 0, updated.Attempts)

		// Close the job out so later subtests claim their own.
		require.NoError(t, client.Job.UpdateOneID(claimed.ID).
			SetStatus(job.StatusCompleted).
			SetCompletedAt(time.Now()).
			Exec(ctx))
	})

	t.Run("retryable failure requeues with backoff", func(t *testing.T) {
		claimed := claim(t)
		before := time.Now()
		require.NoError(t, w.finishJob(ctx, claimed, errors.New("backend flaked")))

		updated, err := client.Job.Get(ctx, claimed.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusPending, updated.Status)
		assert.Equal(t, 1, updated.Attempts, "the burned attempt stays counted")
		assert.Nil(t, updated.ClaimedBy)
		assert.Nil(t, updated.LastHeartbeat)
		require.NotNil(t, updated.LastError)
		assert.Contains(t, *updated.LastError, "backend flaked")

		// attempts=1 with base 2 means run_after is ~2s out.
		assert.True(t, updated.RunAfter.After(before.Add(1*time.Second)),
			"run_after should be pushed out by backoff, got %s", updated.RunAfter)
	})

	t.Run("exhausted attempts fail permanently", func(t *testing.T) {
		claimed := claim(t)
		claimed, err := claimed.Update().SetAttempts(3).Save(ctx)
		require.NoError(t, err)

		require.NoError(t, w.finishJob(ctx, claimed, errors.New("still broken")))

		updated, err := client.Job.Get(ctx, claimed.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusFailed, updated.Status)
		assert.NotNil(t, updated.CompletedAt)
		require.NotNil(t, updated.LastError)
		assert.Contains(t, *updated.LastError, "still broken")
	})
}

// TestOrphanRecovery tests that orphaned jobs are detected and requeued.
func TestOrphanRecovery(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	staleBeat := time.Now().Add(-10 * time.Minute)
	orphan, err := client.Job.Create().
		SetID(uuid.New().String()).
		SetJobType(models.JobTypeChunkSummary).
		SetStatus(job.StatusProcessing).
		SetClaimedBy("crashed-pod-worker-1").
		SetAttempts(1).
		SetLastHeartbeat(staleBeat).
		Save(ctx)
	require.NoError(t, err)

	cfg := intTestQueueConfig()
	cfg.OrphanThreshold = 1 * time.Second

	pool := &WorkerPool{
		podID:    "test-pod",
		client:   client,
		queueCfg: cfg,
		pipeCfg:  intTestPipelineConfig(),
	}

	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	updated, err := client.Job.Get(ctx, orphan.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusPending, updated.Status, "orphan with attempts left is requeued")
	assert.Equal(t, 1, updated.Attempts)
	assert.Nil(t, updated.ClaimedBy)
	assert.Nil(t, updated.LastHeartbeat)
	require.NotNil(t, updated.LastError)
	assert.Contains(t, *updated.LastError, "stale heartbeat")
	assert.Contains(t, *updated.LastError, "crashed-pod-worker-1")

	pool.orphans.mu.Lock()
	assert.Equal(t, 1, pool.orphans.orphansRecovered)
	pool.orphans.mu.Unlock()
}

// TestOrphanRecoveryExhaustedAttempts tests that orphans without
// attempts left are failed instead of requeued.
func TestOrphanRecoveryExhaustedAttempts(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	orphan, err := client.Job.Create().
		SetID(uuid.New().String()).
		SetJobType(models.JobTypeComposeSummary).
		SetStatus(job.StatusProcessing).
		SetClaimedBy("crashed-pod-worker-1").
		SetAttempts(3).
		SetLastHeartbeat(time.Now().Add(-10 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	cfg := intTestQueueConfig()
	cfg.OrphanThreshold = 1 * time.Second

	pool := &WorkerPool{
		podID:    "test-pod",
		client:   client,
		queueCfg: cfg,
		pipeCfg:  intTestPipelineConfig(),
	}

	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	updated, err := client.Job.Get(ctx, orphan.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusFailed, updated.Status)
	assert.NotNil(t, updated.CompletedAt)
}

// TestStartupOrphanCleanup tests the one-time startup orphan recovery.
func TestStartupOrphanCleanup(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	podID := "startup-test-pod"

	var mine []string
	for i := 0; i < 3; i++ {
		j, err := client.Job.Create().
			SetID(uuid.New().String()).
			SetJobType(models.JobTypeChunkSummary).
			SetStatus(job.StatusProcessing).
			SetClaimedBy(fmt.Sprintf("%s-worker-%d", podID, i)).
			SetAttempts(1).
			Save(ctx)
		require.NoError(t, err)
		mine = append(mine, j.ID)
	}

	// A job claimed by a different pod must not be touched.
	other, err := client.Job.Create().
		SetID(uuid.New().String()).
		SetJobType(models.JobTypeChunkSummary).
		SetStatus(job.StatusProcessing).
		SetClaimedBy("other-pod-worker-0").
		SetAttempts(1).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, CleanupStartupOrphans(ctx, client, podID, 3))

	for _, id := range mine {
		j, err := client.Job.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, job.StatusPending, j.Status, "job %s should be requeued", id)
		require.NotNil(t, j.LastError)
		assert.Contains(t, *j.LastError, "pod restart")
	}

	untouched, err := client.Job.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusProcessing, untouched.Status, "other pod's job should be untouched")
}

// stubExecutor counts executions and tracks which jobs were processed.
type stubExecutor struct {
	processed atomic.Int64
	jobs      sync.Map // job id → struct{}
	err       error
	releaseCh chan struct{} // optional: blocks execution until closed
}

func (s *stubExecutor) Execute(ctx context.Context, j *ent.Job) error {
	s.processed.Add(1)
	if j != nil {
		s.jobs.Store(j.ID, struct{}{})
	}
	if s.releaseCh != nil {
		select {
		case <-s.releaseCh:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return s.err
}

// TestPoolEndToEndWithStubExecutor tests the full worker pool lifecycle.
func TestPoolEndToEndWithStubExecutor(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		createTestJob(ctx, t, client, models.JobTypeChunkSummary)
	}

	cfg := intTestQueueConfig()
	cfg.WorkerCount = 2
	cfg.PollInterval = 50 * time.Millisecond

	executor := &stubExecutor{}
	pool := NewWorkerPool("test-pod", client, cfg, intTestPipelineConfig(), executor)

	require.NoError(t, pool.Start(ctx))

	awaitCondition(t, 10*time.Second, 100*time.Millisecond,
		"waiting for jobs to be processed",
		func() bool { return executor.processed.Load() >= 3 })

	// Terminal status persistence trails execution slightly.
	awaitCondition(t, 5*time.Second, 50*time.Millisecond,
		"waiting for jobs to complete",
		func() bool {
			n, err := client.Job.Query().
				Where(job.StatusEQ(job.StatusCompleted)).
				Count(ctx)
			require.NoError(t, err)
			return n == 3
		})

	pool.Stop()

	health := pool.Health()
	assert.Equal(t, 2, health.TotalWorkers)
	assert.True(t, health.DBReachable)
}

// TestHeartbeatUpdates tests that a worker refreshes last_heartbeat
// while its job runs.
func TestHeartbeatUpdates(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	created := createTestJob(ctx, t, client, models.JobTypeChunkSummary)

	cfg := intTestQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 50 * time.Millisecond
	cfg.HeartbeatInterval = 100 * time.Millisecond

	releaseCh := make(chan struct{})
	executor := &stubExecutor{releaseCh: releaseCh}
	pool := NewWorkerPool("test-pod", client, cfg, intTestPipelineConfig(), executor)

	require.NoError(t, pool.Start(ctx))

	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		"waiting for job to be claimed",
		func() bool {
			j, err := client.Job.Get(ctx, created.ID)
			require.NoError(t, err)
			return j.Status == job.StatusProcessing && j.LastHeartbeat != nil
		})

	j1, err := client.Job.Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, j1.LastHeartbeat)
	initial := *j1.LastHeartbeat

	awaitCondition(t, 5*time.Second, 50*time.Millisecond,
		"waiting for a heartbeat refresh",
		func() bool {
			j2, err := client.Job.Get(ctx, created.ID)
			require.NoError(t, err)
			return j2.LastHeartbeat != nil && j2.LastHeartbeat.After(initial)
		})

	close(releaseCh)
	pool.Stop()
}

// TestRetryableFailureRequeuesThroughPool tests the retry path end to
// end: a failing executor pushes the job back to pending with backoff.
func TestRetryableFailureRequeuesThroughPool(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	created := createTestJob(ctx, t, client, models.JobTypeComposeSummary)

	cfg := intTestQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 50 * time.Millisecond
	cfg.OrphanDetectionInterval = 1 * time.Hour

	executor := &stubExecutor{err: errors.New("model backend unreachable")}
	pool := NewWorkerPool("test-pod", client, cfg, intTestPipelineConfig(), executor)

	require.NoError(t, pool.Start(ctx))

	awaitCondition(t, 5*time.Second, 50*time.Millisecond,
		"waiting for the job to be retried",
		func() bool {
			j, err := client.Job.Get(ctx, created.ID)
			require.NoError(t, err)
			return j.Status == job.StatusPending && j.Attempts >= 1 && j.LastError != nil
		})

	pool.Stop()

	j, err := client.Job.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, j.RunAfter.After(time.Now()), "run_after should sit in the future after a retry")
	assert.Contains(t, *j.LastError, "unreachable")
}

// TestCancelJob tests API-triggered cancellation of an in-flight job.
func TestCancelJob(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	created := createTestJob(ctx, t, client, models.JobTypeChunkSummary)

	cfg := intTestQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 50 * time.Millisecond

	releaseCh := make(chan struct{})
	executor := &stubExecutor{releaseCh: releaseCh}
	pool := NewWorkerPool("test-pod", client, cfg, intTestPipelineConfig(), executor)

	require.NoError(t, pool.Start(ctx))

	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		"waiting for job to be claimed",
		func() bool {
			j, err := client.Job.Get(ctx, created.ID)
			require.NoError(t, err)
			return j.Status == job.StatusProcessing
		})

	require.True(t, pool.CancelJob(created.ID), "CancelJob should find the active job")
	assert.False(t, pool.CancelJob("no-such-job"))

	// Cancellation surfaces as a retryable context error; the job goes
	// back to pending.
	awaitCondition(t, 5*time.Second, 50*time.Millisecond,
		"waiting for cancelled job to requeue",
		func() bool {
			j, err := client.Job.Get(ctx, created.ID)
			require.NoError(t, err)
			return j.Status == job.StatusPending
		})

	pool.Stop()
}
