package queue

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/recapcrew/recap/pkg/config"
	"github.com/recapcrew/recap/pkg/services"
)

// BatchMonitor is the time-based safety net behind the ingest-path
// threshold trigger. Every BatchTimeout it scans active meetings and
// enqueues a chunk-summary job for any backlog that crossed the token
// threshold, or that has been sitting unsummarized for a full interval.
// Slow meetings therefore still get incremental summaries, just later.
type BatchMonitor struct {
	meetings *services.MeetingService
	segments *services.SegmentService
	jobs     *services.JobService
	cfg      *config.PipelineConfig
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewBatchMonitor creates a batch monitor.
func NewBatchMonitor(meetings *services.MeetingService, segments *services.SegmentService, jobs *services.JobService, cfg *config.PipelineConfig) *BatchMonitor {
	return &BatchMonitor{
		meetings: meetings,
		segments: segments,
		jobs:     jobs,
		cfg:      cfg,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the scan loop in a goroutine.
func (m *BatchMonitor) Start(ctx context.Context) {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		m.run(ctx)
	}()
	slog.Info("Batch monitor started", "interval", m.cfg.BatchTimeout)
}

// Stop signals the monitor to stop and waits for it to finish.
func (m *BatchMonitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopCh) })
	m.wg.Wait()
}

func (m *BatchMonitor) run(ctx context.Context) {
	ticker := time.NewTicker(m.cfg.BatchTimeout)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-m.stopCh:
			return
		case <-ticker.C:
			if err := m.Scan(ctx); err != nil {
				slog.Error("Batch monitor scan failed", "error", err)
			}
		}
	}
}

// Scan walks all active meetings once and enqueues chunk-summary jobs
// where the backlog warrants one. Exported for tests and for a manual
// flush.
func (m *BatchMonitor) Scan(ctx context.Context) error {
	meetings, err := m.meetings.ListActiveMeetings(ctx)
	if err != nil {
		return err
	}

	for _, meeting := range meetings {
		due, err := m.backlogDue(ctx, meeting.ID)
		if err != nil {
			slog.Error("Failed to evaluate meeting backlog",
				"meeting_id", meeting.ID, "error", err)
			continue
		}
		if !due {
			continue
		}

		_, created, err := m.jobs.EnqueueChunkSummary(ctx, meeting.ID)
		if err != nil {
			slog.Error("Failed to enqueue chunk-summary job",
				"meeting_id", meeting.ID, "error", err)
			continue
		}
		if created {
			slog.Info("Batch monitor enqueued chunk summarization", "meeting_id", meeting.ID)
		}
	}
	return nil
}

// backlogDue decides whether a meeting's unsummarized backlog should be
// flushed: either the token threshold is crossed, or a nonzero backlog
// has aged past the batch timeout.
func (m *BatchMonitor) backlogDue(ctx context.Context, meetingID string) (bool, error) {
	tokens, err := m.segments.UnsummarizedTokens(ctx, meetingID)
	if err != nil {
		return false, err
	}
	if tokens <= 0 {
		return false, nil
	}
	if tokens >= m.cfg.BatchTokens {
		return true, nil
	}

	oldest, ok, err := m.segments.OldestUnsummarizedAt(ctx, meetingID)
	if err != nil {
		return false, err
	}
	return ok && time.Since(oldest) >= m.cfg.BatchTimeout, nil
}
