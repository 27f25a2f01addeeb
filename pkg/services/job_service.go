package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/recapcrew/recap/ent"
	"github.com/recapcrew/recap/ent/job"
	"github.com/recapcrew/recap/pkg/models"
)

// JobService manages durable job rows. Claiming and status transitions
// on the worker side live in the queue package; this service covers
// the enqueue and read paths.
type JobService struct {
	client *ent.Client
}

// NewJobService creates a new JobService.
func NewJobService(client *ent.Client) *JobService {
	return &JobService{client: client}
}

var knownJobTypes = map[string]bool{
	models.JobTypeChunkSummary:        true,
	models.JobTypeComposeSummary:      true,
	models.JobTypeAnnotateActionItems: true,
	models.JobTypeProcessAudio:        true,
}

// CreateJob enqueues a job as pending.
func (s *JobService) CreateJob(ctx context.Context, meetingID, jobType string, payload map[string]any) (*ent.Job, error) {
	if !knownJobTypes[jobType] {
		return nil, NewValidationError("job_type", fmt.Sprintf("unknown type %q", jobType))
	}

	builder := s.client.Job.Create().
		SetID(uuid.New().String()).
		SetJobType(jobType)
	if meetingID != "" {
		builder.SetMeetingID(meetingID)
	}
	if payload != nil {
		builder.SetPayload(payload)
	}

	j, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return j, nil
}

// HasActiveJob reports whether the meeting has a pending or processing
// job of any of the given types.
func (s *JobService) HasActiveJob(ctx context.Context, meetingID string, jobTypes ...string) (bool, error) {
	exists, err := s.client.Job.Query().
		Where(
			job.MeetingIDEQ(meetingID),
			job.JobTypeIn(jobTypes...),
			job.StatusIn(job.StatusPending, job.StatusProcessing),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check for active jobs: %w", err)
	}
	return exists, nil
}

// EnqueueChunkSummary enqueues a CHUNK_SUMMARY job for the meeting
// unless one is already pending or processing. Duplicate triggers from
// ingest and the batch monitor are therefore cheap no-ops.
func (s *JobService) EnqueueChunkSummary(ctx context.Context, meetingID string) (*ent.Job, bool, error) {
	exists, err := s.HasActiveJob(ctx, meetingID, models.JobTypeChunkSummary)
	if err != nil {
		return nil, false, err
	}
	if exists {
		return nil, false, nil
	}

	j, err := s.CreateJob(ctx, meetingID, models.JobTypeChunkSummary, nil)
	if err != nil {
		return nil, false, err
	}
	return j, true, nil
}

// GetJob retrieves a job by id.
func (s *JobService) GetJob(ctx context.Context, jobID string) (*ent.Job, error) {
	j, err := s.client.Job.Query().
		Where(job.IDEQ(jobID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return j, nil
}

// ListJobs returns the newest jobs up to limit, plus the total count.
func (s *JobService) ListJobs(ctx context.Context, limit int) ([]*ent.Job, int, error) {
	if limit <= 0 {
		limit = 20
	}

	total, err := s.client.Job.Query().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	jobs, err := s.client.Job.Query().
		Order(ent.Desc(job.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, total, nil
}

// DeleteOldJobs removes terminal jobs (completed or failed) that
// finished before cutoff. Jobs without a completion timestamp fall
// back to their creation time. Returns the number of rows deleted.
func (s *JobService) DeleteOldJobs(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.Job.Delete().
		Where(
			job.StatusIn(job.StatusCompleted, job.StatusFailed),
			job.Or(
				job.CompletedAtLT(cutoff),
				job.And(job.CompletedAtIsNil(), job.CreatedAtLT(cutoff)),
			),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old jobs: %w", err)
	}
	return n, nil
}

// JobStats summarizes the job table for the stats endpoint.
type JobStats struct {
	Total     int            `json:"total"`
	ByStatus  map[string]int `json:"by_status"`
	QueueSize int            `json:"queue_size"`
}

// Stats returns job counts grouped by status. QueueSize counts jobs
// that are still in flight (pending or processing).
func (s *JobService) Stats(ctx context.Context) (*JobStats, error) {
	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := s.client.Job.Query().
		GroupBy(job.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate job stats: %w", err)
	}

	stats := &JobStats{
		ByStatus: map[string]int{},
	}
	for _, row := range rows {
		stats.ByStatus[row.Status] = row.Count
		stats.Total += row.Count
	}
	stats.QueueSize = stats.ByStatus[models.JobStatusPending] + stats.ByStatus[models.JobStatusProcessing]
	return stats, nil
}
