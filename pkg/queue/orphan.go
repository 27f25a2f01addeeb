package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/recapcrew/recap/ent"
	"github.com/recapcrew/recap/ent/job"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned jobs.
// All pods run this independently — operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.queueCfg.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds processing jobs with stale heartbeats
// and puts them back into the queue, or fails them when the attempt
// budget is spent.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.queueCfg.OrphanThreshold)

	orphans, err := p.client.Job.Query().
		Where(
			job.StatusEQ(job.StatusProcessing),
			job.LastHeartbeatNotNil(),
			job.LastHeartbeatLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned jobs: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned jobs", "count", len(orphans))

	recovered := 0
	for _, orphan := range orphans {
		if err := recoverOrphanedJob(ctx, orphan, p.pipeCfg.MaxRetries, "stale heartbeat"); err != nil {
			slog.Error("Failed to recover orphaned job",
				"job_id", orphan.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedJob requeues a single orphaned job for another
// attempt, or marks it failed when attempts are exhausted. The attempt
// the dead worker burned stays counted.
func recoverOrphanedJob(ctx context.Context, orphan *ent.Job, maxRetries int, cause string) error {
	log := slog.With("job_id", orphan.ID, "job_type", orphan.JobType)

	claimedBy := "unknown"
	if orphan.ClaimedBy != nil {
		claimedBy = *orphan.ClaimedBy
	}
	lastHeartbeat := "unknown"
	if orphan.LastHeartbeat != nil {
		lastHeartbeat = orphan.LastHeartbeat.Format(time.RFC3339)
	}
	reason := fmt.Sprintf("Orphaned (%s): worker %s, last heartbeat %s", cause, claimedBy, lastHeartbeat)

	if orphan.Attempts >= maxRetries {
		err := orphan.Update().
			SetStatus(job.StatusFailed).
			SetCompletedAt(time.Now()).
			SetLastError(reason).
			ClearClaimedBy().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to mark orphan as failed: %w", err)
		}
		log.Warn("Orphaned job failed permanently", "attempts", orphan.Attempts)
		return nil
	}

	err := orphan.Update().
		SetStatus(job.StatusPending).
		SetRunAfter(time.Now()).
		SetLastError(reason).
		ClearClaimedBy().
		ClearLastHeartbeat().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to requeue orphan: %w", err)
	}
	log.Warn("Orphaned job requeued", "attempts", orphan.Attempts, "last_heartbeat", lastHeartbeat)
	return nil
}

// CleanupStartupOrphans performs a one-time recovery of jobs claimed by
// this pod's workers before a previous crash. Called once during
// startup, before the worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string, maxRetries int) error {
	orphans, err := client.Job.Query().
		Where(
			job.StatusEQ(job.StatusProcessing),
			job.ClaimedByHasPrefix(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	for _, orphan := range orphans {
		if err := recoverOrphanedJob(ctx, orphan, maxRetries, "pod restart"); err != nil {
			slog.Error("Failed to recover startup orphan",
				"job_id", orphan.ID,
				"error", err)
			continue
		}
		slog.Info("Startup orphan recovered", "job_id", orphan.ID)
	}

	return nil
}
