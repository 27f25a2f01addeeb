package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/recapcrew/recap/ent"
	"github.com/recapcrew/recap/ent/job"
	"github.com/recapcrew/recap/pkg/config"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes jobs.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	queueCfg *config.QueueConfig
	pipeCfg  *config.PipelineConfig
	executor JobExecutor
	pool     JobRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentJobID  string
	jobsProcessed int
	lastActivity  time.Time
}

// JobRegistry is the subset of WorkerPool used by Worker for job registration.
type JobRegistry interface {
	RegisterJob(jobID string, cancel context.CancelFunc)
	UnregisterJob(jobID string)
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, queueCfg *config.QueueConfig, pipeCfg *config.PipelineConfig, executor JobExecutor, pool JobRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		queueCfg:     queueCfg,
		pipeCfg:      pipeCfg,
		executor:     executor,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        w.status,
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoJobsAvailable) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing job", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess claims a job and drives it to a terminal state.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	claimed, err := w.claimNextJob(ctx)
	if err != nil {
		return err
	}

	log := slog.With("job_id", claimed.ID, "job_type", claimed.JobType, "worker_id", w.id)
	log.Info("Job claimed", "attempt", claimed.Attempts)

	w.setStatus(WorkerStatusWorking, claimed.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// Job context with timeout
	jobCtx, cancelJob := context.WithTimeout(ctx, w.queueCfg.JobTimeout)
	defer cancelJob()

	// Register cancel function for API-triggered cancellation
	w.pool.RegisterJob(claimed.ID, cancelJob)
	defer w.pool.UnregisterJob(claimed.ID)

	// Heartbeat keeps orphan detection off this job while it runs
	heartbeatCtx, cancelHeartbeat := context.WithCancel(jobCtx)
	go w.runHeartbeat(heartbeatCtx, claimed.ID)

	execErr := w.executor.Execute(jobCtx, claimed)

	if errors.Is(execErr, context.DeadlineExceeded) && errors.Is(jobCtx.Err(), context.DeadlineExceeded) {
		execErr = fmt.Errorf("job timed out after %v", w.queueCfg.JobTimeout)
	}

	cancelHeartbeat()

	// Terminal update uses a background context — jobCtx may be done.
	if err := w.finishJob(context.Background(), claimed, execErr); err != nil {
		log.Error("Failed to record job outcome", "error", err)
		return err
	}

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()

	return nil
}

// claimNextJob atomically claims the oldest runnable pending job using
// FOR UPDATE SKIP LOCKED. run_after gates jobs waiting out a retry
// backoff. Claiming increments attempts.
func (w *Worker) claimNextJob(ctx context.Context) (*ent.Job, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// SELECT ... FOR UPDATE SKIP LOCKED
	// Order by created_at for FIFO processing
	claimed, err := tx.Job.Query().
		Where(
			job.StatusEQ(job.StatusPending),
			job.RunAfterLTE(time.Now()),
		).
		Order(ent.Asc(job.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoJobsAvailable
		}
		return nil, fmt.Errorf("failed to query pending job: %w", err)
	}

	claimed, err = claimed.Update().
		SetStatus(job.StatusProcessing).
		SetClaimedBy(w.id).
		AddAttempts(1).
		SetLastHeartbeat(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return claimed, nil
}

// runHeartbeat periodically refreshes last_heartbeat for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, jobID string) {
	ticker := time.NewTicker(w.queueCfg.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.Job.UpdateOneID(jobID).
				SetLastHeartbeat(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "job_id", jobID, "error", err)
			}
		}
	}
}

// finishJob records the terminal or retry state for an executed job.
//
// Outcomes:
//   - nil error: completed.
//   - NonRetryableError: completed with last_error set. These are
//     permanent conditions where a retry would reproduce the same
//     failure, so the job is closed without content.
//   - WaitingError: back to pending with the claim's attempt refunded.
//     Waiting on upstream work is not a failure and must not burn the
//     retry budget, however long the upstream job runs.
//   - any other error: back to pending with run_after pushed out by
//     exponential backoff, or failed once attempts reach MaxRetries.
func (w *Worker) finishJob(ctx context.Context, claimed *ent.Job, execErr error) error {
	log := slog.With("job_id", claimed.ID, "job_type", claimed.JobType, "worker_id", w.id)
	now := time.Now()

	switch {
	case execErr == nil:
		log.Info("Job completed")
		return w.client.Job.UpdateOneID(claimed.ID).
			SetStatus(job.StatusCompleted).
			SetCompletedAt(now).
			ClearClaimedBy().
			Exec(ctx)

	case IsNonRetryable(execErr):
		log.Warn("Job completed without content", "reason", execErr.Error())
		return w.client.Job.UpdateOneID(claimed.ID).
			SetStatus(job.StatusCompleted).
			SetCompletedAt(now).
			SetLastError(execErr.Error()).
			ClearClaimedBy().
			Exec(ctx)

	case IsWaiting(execErr):
		delay := w.backoffDelay(1)
		log.Info("Job waiting on upstream work",
			"recheck_in", delay, "reason", execErr.Error())
		return w.client.Job.UpdateOneID(claimed.ID).
			SetStatus(job.StatusPending).
			AddAttempts(-1).
			SetRunAfter(now.Add(delay)).
			SetLastError(execErr.Error()).
			ClearClaimedBy().
			ClearLastHeartbeat().
			Exec(ctx)

	case claimed.Attempts >= w.pipeCfg.MaxRetries:
		log.Error("Job failed permanently", "attempts", claimed.Attempts, "error", execErr)
		return w.client.Job.UpdateOneID(claimed.ID).
			SetStatus(job.StatusFailed).
			SetCompletedAt(now).
			SetLastError(execErr.Error()).
			ClearClaimedBy().
			Exec(ctx)

	default:
		delay := w.backoffDelay(claimed.Attempts)
		log.Warn("Job scheduled for retry",
			"attempts", claimed.Attempts, "retry_in", delay, "error", execErr)
		return w.client.Job.UpdateOneID(claimed.ID).
			SetStatus(job.StatusPending).
			SetRunAfter(now.Add(delay)).
			SetLastError(execErr.Error()).
			ClearClaimedBy().
			ClearLastHeartbeat().
			Exec(ctx)
	}
}

// backoffDelay returns BackoffBase^attempts seconds.
func (w *Worker) backoffDelay(attempts int) time.Duration {
	seconds := math.Pow(w.pipeCfg.BackoffBase, float64(attempts))
	return time.Duration(seconds * float64(time.Second))
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.queueCfg.PollInterval
	jitter := w.queueCfg.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, jobID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentJobID = jobID
	w.lastActivity = time.Now()
}
