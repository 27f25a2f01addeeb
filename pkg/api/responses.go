package api

import (
	"time"

	"github.com/recapcrew/recap/ent"
	"github.com/recapcrew/recap/pkg/database"
	"github.com/recapcrew/recap/pkg/queue"
	"github.com/recapcrew/recap/pkg/services"
)

// MeetingResponse is the wire shape of a meeting.
type MeetingResponse struct {
	MeetingID   string         `json:"meeting_id"`
	Title       string         `json:"title"`
	Finalized   bool           `json:"finalized"`
	FinalizedAt *time.Time     `json:"finalized_at,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

func meetingResponse(m *ent.Meeting) *MeetingResponse {
	return &MeetingResponse{
		MeetingID:   m.ID,
		Title:       m.Title,
		Finalized:   m.Finalized,
		FinalizedAt: m.FinalizedAt,
		Metadata:    m.Metadata,
		CreatedAt:   m.CreatedAt,
	}
}

// SegmentResponse is returned by POST /api/v1/ingest/segment. Status is
// always "accepted"; errors travel as HTTP status codes.
type SegmentResponse struct {
	SegmentID    string `json:"segment_id"`
	Status       string `json:"status"`
	MeetingID    string `json:"meeting_id"`
	TokenCount   int    `json:"token_count"`
	SegmentCount int    `json:"segment_count"`
	JobEnqueued  bool   `json:"job_enqueued"`
}

// FinalizeResponse is returned by POST /api/v1/meetings/:id/finalize.
type FinalizeResponse struct {
	MeetingID string `json:"meeting_id"`
	Status    string `json:"status"` // finalized or already_finalized
}

// SummaryResponse wraps the latest summary of a meeting. Summary is
// JSON null when none exists yet; clients poll or follow the stream.
type SummaryResponse struct {
	MeetingID string         `json:"meeting_id"`
	Summary   *SummaryDetail `json:"summary"`
}

// SummaryDetail is one summary row.
type SummaryDetail struct {
	SummaryID   string         `json:"summary_id"`
	SummaryType string         `json:"summary_type"`
	Content     map[string]any `json:"content"`
	CreatedAt   time.Time      `json:"created_at"`
}

// UploadResponse is returned by POST /api/v1/process-audio.
type UploadResponse struct {
	JobID    string `json:"job_id"`
	FileName string `json:"file_name"`
	Status   string `json:"status"`
}

// JobResponse is the wire shape of a job.
type JobResponse struct {
	JobID       string         `json:"job_id"`
	MeetingID   string         `json:"meeting_id,omitempty"`
	JobType     string         `json:"job_type"`
	Status      string         `json:"status"`
	Attempts    int            `json:"attempts"`
	LastError   *string        `json:"last_error,omitempty"`
	Payload     map[string]any `json:"payload,omitempty"`
	RunAfter    time.Time      `json:"run_after"`
	CreatedAt   time.Time      `json:"created_at"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
}

func jobResponse(j *ent.Job) *JobResponse {
	return &JobResponse{
		JobID:       j.ID,
		MeetingID:   j.MeetingID,
		JobType:     j.JobType,
		Status:      string(j.Status),
		Attempts:    j.Attempts,
		LastError:   j.LastError,
		Payload:     j.Payload,
		RunAfter:    j.RunAfter,
		CreatedAt:   j.CreatedAt,
		CompletedAt: j.CompletedAt,
	}
}

// JobListResponse is returned by GET /api/v1/jobs.
type JobListResponse struct {
	Jobs  []*JobResponse `json:"jobs"`
	Total int            `json:"total"`
}

// StatsResponse is returned by GET /api/v1/stats.
type StatsResponse struct {
	Jobs              *services.JobStats `json:"jobs"`
	WorkerPool        *queue.PoolHealth  `json:"worker_pool,omitempty"`
	ActiveConnections int                `json:"active_connections"`
}

// HealthCheck is one component's health inside HealthResponse.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Database  *database.HealthStatus `json:"database"`
	Checks    map[string]HealthCheck `json:"checks"`
	Timestamp time.Time              `json:"timestamp"`
}
