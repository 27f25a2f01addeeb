// Package cleanup enforces job retention: finished job rows are kept
// for a while so the jobs API can answer questions about recent runs,
// then swept.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/recapcrew/recap/pkg/config"
	"github.com/recapcrew/recap/pkg/services"
)

// Service periodically deletes completed and failed jobs past the
// retention window. Sweeps are idempotent and safe to run from
// multiple pods.
type Service struct {
	config *config.RetentionConfig
	jobs   *services.JobService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, jobs *services.JobService) *Service {
	return &Service{
		config: cfg,
		jobs:   jobs,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"job_retention_days", s.config.JobRetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.sweep(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.config.JobRetentionDays)
	count, err := s.jobs.DeleteOldJobs(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: job cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted old jobs", "count", count)
	}
}
