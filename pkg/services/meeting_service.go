package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/recapcrew/recap/ent"
	"github.com/recapcrew/recap/ent/meeting"
	"github.com/recapcrew/recap/pkg/models"
)

// MeetingService manages meeting lifecycle.
type MeetingService struct {
	client *ent.Client
}

// NewMeetingService creates a new MeetingService.
func NewMeetingService(client *ent.Client) *MeetingService {
	return &MeetingService{client: client}
}

// CreateMeeting creates a new meeting.
func (s *MeetingService) CreateMeeting(ctx context.Context, title string, metadata map[string]any) (*ent.Meeting, error) {
	if title == "" {
		return nil, NewValidationError("title", "required")
	}

	builder := s.client.Meeting.Create().
		SetID(uuid.New().String()).
		SetTitle(title)
	if metadata != nil {
		builder.SetMetadata(metadata)
	}

	m, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}
	return m, nil
}

// GetMeeting retrieves a meeting by id.
func (s *MeetingService) GetMeeting(ctx context.Context, meetingID string) (*ent.Meeting, error) {
	m, err := s.client.Meeting.Query().
		Where(meeting.IDEQ(meetingID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	return m, nil
}

// ListActiveMeetings returns all non-finalized meetings, used by the
// batch monitor.
func (s *MeetingService) ListActiveMeetings(ctx context.Context) ([]*ent.Meeting, error) {
	meetings, err := s.client.Meeting.Query().
		Where(meeting.FinalizedEQ(false)).
		Order(ent.Asc(meeting.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active meetings: %w", err)
	}
	return meetings, nil
}

// FinalizeMeeting flips the finalized flag and enqueues the
// COMPOSE_SUMMARY and ANNOTATE_ACTION_ITEMS jobs in one transaction,
// so readers never observe a finalized meeting without its
// finalization jobs. Idempotent: a second call reports
// alreadyFinalized and enqueues nothing.
func (s *MeetingService) FinalizeMeeting(ctx context.Context, meetingID string) (alreadyFinalized bool, err error) {
	writeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	m, err := tx.Meeting.Query().
		Where(meeting.IDEQ(meetingID)).
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, ErrNotFound
		}
		return false, fmt.Errorf("failed to get meeting: %w", err)
	}

	if m.Finalized {
		return true, nil
	}

	// Conditional update guards against a concurrent finalize.
	count, err := tx.Meeting.Update().
		Where(
			meeting.IDEQ(meetingID),
			meeting.FinalizedEQ(false),
		).
		SetFinalized(true).
		SetFinalizedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return false, fmt.Errorf("failed to finalize meeting: %w", err)
	}
	if count == 0 {
		return true, nil
	}

	for _, jobType := range []string{models.JobTypeComposeSummary, models.JobTypeAnnotateActionItems} {
		_, err = tx.Job.Create().
			SetID(uuid.New().String()).
			SetMeetingID(meetingID).
			SetJobType(jobType).
			Save(writeCtx)
		if err != nil {
			return false, fmt.Errorf("failed to enqueue %s job: %w", jobType, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit finalize: %w", err)
	}
	return false, nil
}

// TranscriptSegment is one transcribed utterance ready for storage.
type TranscriptSegment struct {
	Speaker    string
	TS         time.Time
	Text       string
	TokenCount int
}

// ImportTranscript creates a meeting, stores its transcript segments,
// and records the meeting id into the owning job's payload, all in one
// transaction. A retried job reads the recorded id and resumes from the
// existing meeting instead of transcribing a duplicate; a rollback
// leaves no orphan meeting behind.
func (s *MeetingService) ImportTranscript(ctx context.Context, jobID, title string, metadata map[string]any, entries []TranscriptSegment) (*ent.Meeting, []*ent.Segment, error) {
	if jobID == "" {
		return nil, nil, NewValidationError("job_id", "required")
	}
	if title == "" {
		return nil, nil, NewValidationError("title", "required")
	}
	if len(entries) == 0 {
		return nil, nil, NewValidationError("entries", "required")
	}

	writeCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	builder := tx.Meeting.Create().
		SetID(uuid.New().String()).
		SetTitle(title)
	if metadata != nil {
		builder.SetMetadata(metadata)
	}
	m, err := builder.Save(writeCtx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create meeting: %w", err)
	}

	segments := make([]*ent.Segment, 0, len(entries))
	for _, entry := range entries {
		seg, err := tx.Segment.Create().
			SetID(uuid.New().String()).
			SetMeetingID(m.ID).
			SetSpeaker(entry.Speaker).
			SetTs(entry.TS).
			SetText(entry.Text).
			SetTokenCount(entry.TokenCount).
			Save(writeCtx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create segment: %w", err)
		}
		segments = append(segments, seg)
	}

	j, err := tx.Job.Get(writeCtx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to get job: %w", err)
	}
	payload := map[string]any{}
	for k, v := range j.Payload {
		payload[k] = v
	}
	payload["meeting_id"] = m.ID
	if err := tx.Job.UpdateOneID(jobID).SetPayload(payload).Exec(writeCtx); err != nil {
		return nil, nil, fmt.Errorf("failed to record meeting on job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit transcript import: %w", err)
	}
	return m, segments, nil
}
