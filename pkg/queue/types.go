// Package queue provides durable job queue management and processing
// infrastructure. Jobs live in PostgreSQL; workers on every replica
// claim them with FOR UPDATE SKIP LOCKED and drive them through the
// pending → processing → completed/failed state machine, with
// exponential backoff between retries.
package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/recapcrew/recap/ent"
)

// ErrNoJobsAvailable indicates no claimable jobs are in the queue.
var ErrNoJobsAvailable = errors.New("no jobs available")

// JobExecutor processes a claimed job. A nil return completes the job;
// a *NonRetryableError completes it with last_error set and no retry;
// a *WaitingError requeues it without charging the attempt budget;
// any other error schedules a retry until the attempt budget runs out.
type JobExecutor interface {
	Execute(ctx context.Context, job *ent.Job) error
}

// NonRetryableError marks a failure that retrying cannot fix: malformed
// model output, a meeting with nothing to summarize, an unsupported
// audio file. The job is closed as completed with the reason recorded
// in last_error.
type NonRetryableError struct {
	Reason string
}

func (e *NonRetryableError) Error() string {
	return e.Reason
}

// NonRetryable builds a NonRetryableError from a format string.
func NonRetryable(format string, args ...any) *NonRetryableError {
	return &NonRetryableError{Reason: fmt.Sprintf(format, args...)}
}

// IsNonRetryable reports whether err carries a NonRetryableError.
func IsNonRetryable(err error) bool {
	var nre *NonRetryableError
	return errors.As(err, &nre)
}

// WaitingError marks a job that cannot proceed yet because upstream
// work for the same meeting is still in flight: composition waits for
// chunk summarization, annotation waits for composition. Waiting is not
// a failure, so it must not consume the attempt budget — chunk jobs can
// run far longer than the retry window would allow. The worker refunds
// the claim's attempt and requeues with a short delay.
type WaitingError struct {
	Reason string
}

func (e *WaitingError) Error() string {
	return e.Reason
}

// Waiting builds a WaitingError from a format string.
func Waiting(format string, args ...any) *WaitingError {
	return &WaitingError{Reason: fmt.Sprintf(format, args...)}
}

// IsWaiting reports whether err carries a WaitingError.
func IsWaiting(err error) bool {
	var we *WaitingError
	return errors.As(err, &we)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveJobs       int            `json:"active_jobs"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string       `json:"id"`
	Status        WorkerStatus `json:"status"` // "idle" or "working"
	CurrentJobID  string       `json:"current_job_id,omitempty"`
	JobsProcessed int          `json:"jobs_processed"`
	LastActivity  time.Time    `json:"last_activity"`
}
