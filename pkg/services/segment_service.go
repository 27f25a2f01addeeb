package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/recapcrew/recap/ent"
	"github.com/recapcrew/recap/ent/meeting"
	"github.com/recapcrew/recap/ent/segment"
	"github.com/recapcrew/recap/pkg/chunker"
)

// SegmentService manages transcript segment persistence.
type SegmentService struct {
	client *ent.Client
}

// NewSegmentService creates a new SegmentService.
func NewSegmentService(client *ent.Client) *SegmentService {
	return &SegmentService{client: client}
}

// AppendSegment validates the owning meeting is not finalized and
// persists a new segment. The finalized check and the insert share a
// transaction so a concurrent finalize cannot slip a segment in.
func (s *SegmentService) AppendSegment(ctx context.Context, meetingID, speaker string, ts time.Time, text string, tokenCount int) (*ent.Segment, error) {
	if speaker == "" {
		return nil, NewValidationError("speaker", "required")
	}
	if text == "" {
		return nil, NewValidationError("text_segment", "required")
	}

	writeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	m, err := tx.Meeting.Query().
		Where(meeting.IDEQ(meetingID)).
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	if m.Finalized {
		return nil, ErrMeetingFinalized
	}

	seg, err := tx.Segment.Create().
		SetID(uuid.New().String()).
		SetMeetingID(meetingID).
		SetSpeaker(speaker).
		SetTs(ts).
		SetText(text).
		SetTokenCount(tokenCount).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to create segment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit segment: %w", err)
	}
	return seg, nil
}

// ListSegments returns all segments of a meeting ordered by speaker
// timestamp, the order the chunker consumes.
func (s *SegmentService) ListSegments(ctx context.Context, meetingID string) ([]*ent.Segment, error) {
	segments, err := s.client.Segment.Query().
		Where(segment.MeetingIDEQ(meetingID)).
		Order(ent.Asc(segment.FieldTs)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list segments: %w", err)
	}
	return segments, nil
}

// CountSegments returns the number of segments in a meeting.
func (s *SegmentService) CountSegments(ctx context.Context, meetingID string) (int, error) {
	count, err := s.client.Segment.Query().
		Where(segment.MeetingIDEQ(meetingID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count segments: %w", err)
	}
	return count, nil
}

// TotalTokens returns the sum of segment token counts for a meeting.
func (s *SegmentService) TotalTokens(ctx context.Context, meetingID string) (int, error) {
	var sums []struct {
		Sum sql.NullInt64 `json:"sum"`
	}
	err := s.client.Segment.Query().
		Where(segment.MeetingIDEQ(meetingID)).
		Aggregate(ent.Sum(segment.FieldTokenCount)).
		Scan(ctx, &sums)
	if err != nil {
		return 0, fmt.Errorf("failed to sum token counts: %w", err)
	}
	if len(sums) == 0 {
		return 0, nil
	}
	return int(sums[0].Sum.Int64), nil
}

// UnsummarizedTokens returns the token count of segments not yet
// stamped by an incremental summary. This is the value the batch
// monitor compares against the threshold.
func (s *SegmentService) UnsummarizedTokens(ctx context.Context, meetingID string) (int, error) {
	var sums []struct {
		Sum sql.NullInt64 `json:"sum"`
	}
	err := s.client.Segment.Query().
		Where(
			segment.MeetingIDEQ(meetingID),
			segment.SummarizedAtIsNil(),
		).
		Aggregate(ent.Sum(segment.FieldTokenCount)).
		Scan(ctx, &sums)
	if err != nil {
		return 0, fmt.Errorf("failed to sum unsummarized tokens: %w", err)
	}
	if len(sums) == 0 {
		return 0, nil
	}
	return int(sums[0].Sum.Int64), nil
}

// ListUnsummarizedSegments returns the segments not yet stamped by an
// incremental summary, in timestamp order. This is the window a
// chunk-summary job covers. The stamp, not creation time, defines the
// window: a segment a previous job failed to cover, or one appended
// while that job ran, stays in the window until a summary lands for it.
func (s *SegmentService) ListUnsummarizedSegments(ctx context.Context, meetingID string) ([]*ent.Segment, error) {
	segments, err := s.client.Segment.Query().
		Where(
			segment.MeetingIDEQ(meetingID),
			segment.SummarizedAtIsNil(),
		).
		Order(ent.Asc(segment.FieldTs)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list unsummarized segments: %w", err)
	}
	return segments, nil
}

// OldestUnsummarizedAt returns the creation time of the oldest segment
// not yet covered by an incremental summary. The second return is false
// when no unsummarized segment exists.
func (s *SegmentService) OldestUnsummarizedAt(ctx context.Context, meetingID string) (time.Time, bool, error) {
	oldest, err := s.client.Segment.Query().
		Where(
			segment.MeetingIDEQ(meetingID),
			segment.SummarizedAtIsNil(),
		).
		Order(ent.Asc(segment.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("failed to get oldest unsummarized segment: %w", err)
	}
	return oldest.CreatedAt, true, nil
}

// ToChunkerSegments converts ent segments into the chunker's input
// shape.
func ToChunkerSegments(segments []*ent.Segment) []chunker.Segment {
	out := make([]chunker.Segment, len(segments))
	for i, seg := range segments {
		out[i] = chunker.Segment{
			ID:      seg.ID,
			Speaker: seg.Speaker,
			TS:      seg.Ts,
			Text:    seg.Text,
		}
	}
	return out
}
