package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/recapcrew/recap/ent"
	"github.com/recapcrew/recap/ent/segment"
	"github.com/recapcrew/recap/ent/summary"
	"github.com/recapcrew/recap/pkg/models"
)

// SummaryService manages summary persistence. Summaries are
// append-only; reads take the latest by creation time.
type SummaryService struct {
	client *ent.Client
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(client *ent.Client) *SummaryService {
	return &SummaryService{client: client}
}

// CreateSummary persists one summary row. Source segment ids inside
// the content must belong to the owning meeting.
func (s *SummaryService) CreateSummary(ctx context.Context, meetingID, summaryType string, content models.SummaryContent) (*ent.Summary, error) {
	if summaryType != models.SummaryTypeIncremental && summaryType != models.SummaryTypeFinal {
		return nil, NewValidationError("summary_type", fmt.Sprintf("unknown type %q", summaryType))
	}

	if err := s.validateSourceSegments(ctx, meetingID, content); err != nil {
		return nil, err
	}

	contentMap, err := content.ToMap()
	if err != nil {
		return nil, fmt.Errorf("failed to encode summary content: %w", err)
	}

	row, err := s.client.Summary.Create().
		SetID(uuid.New().String()).
		SetMeetingID(meetingID).
		SetSummaryType(summary.SummaryType(summaryType)).
		SetContent(contentMap).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to create summary: %w", err)
	}
	return row, nil
}

// CreateIncremental persists one incremental summary row and stamps the
// segments it covers as summarized, in a single transaction. A chunk
// that persists keeps its segments out of every later window, and a
// chunk that fails leaves its segments unstamped for the retry, so no
// segment is ever silently dropped between the two.
func (s *SummaryService) CreateIncremental(ctx context.Context, meetingID string, content models.SummaryContent, segmentIDs []string) (*ent.Summary, error) {
	if len(segmentIDs) == 0 {
		return nil, NewValidationError("segment_ids", "required")
	}
	if err := s.validateSourceSegments(ctx, meetingID, content); err != nil {
		return nil, err
	}

	contentMap, err := content.ToMap()
	if err != nil {
		return nil, fmt.Errorf("failed to encode summary content: %w", err)
	}

	writeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	row, err := tx.Summary.Create().
		SetID(uuid.New().String()).
		SetMeetingID(meetingID).
		SetSummaryType(summary.SummaryTypeIncremental).
		SetContent(contentMap).
		Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to create incremental summary: %w", err)
	}

	// Overlapping chunks share segments; the nil filter makes a second
	// stamp a no-op instead of moving the timestamp.
	_, err = tx.Segment.Update().
		Where(
			segment.MeetingIDEQ(meetingID),
			segment.IDIn(segmentIDs...),
			segment.SummarizedAtIsNil(),
		).
		SetSummarizedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to stamp summarized segments: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit incremental summary: %w", err)
	}
	return row, nil
}

// validateSourceSegments checks that every referenced segment id
// exists under the same meeting.
func (s *SummaryService) validateSourceSegments(ctx context.Context, meetingID string, content models.SummaryContent) error {
	ids := map[string]bool{}
	for _, d := range content.Decisions {
		for _, id := range d.SourceSegmentIDs {
			ids[id] = true
		}
	}
	for _, a := range content.ActionItems {
		for _, id := range a.SourceSegmentIDs {
			ids[id] = true
		}
	}
	if len(ids) == 0 {
		return nil
	}

	idList := make([]string, 0, len(ids))
	for id := range ids {
		idList = append(idList, id)
	}

	count, err := s.client.Segment.Query().
		Where(
			segment.MeetingIDEQ(meetingID),
			segment.IDIn(idList...),
		).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to validate source segments: %w", err)
	}
	if count != len(idList) {
		return NewValidationError("source_segment_ids",
			fmt.Sprintf("%d of %d referenced segments do not belong to meeting %s", len(idList)-count, len(idList), meetingID))
	}
	return nil
}

// GetLatestSummary returns the newest summary of a meeting, optionally
// filtered by type. Returns ErrNotFound when none exists.
func (s *SummaryService) GetLatestSummary(ctx context.Context, meetingID, summaryType string) (*ent.Summary, error) {
	query := s.client.Summary.Query().
		Where(summary.MeetingIDEQ(meetingID))
	if summaryType != "" {
		query = query.Where(summary.SummaryTypeEQ(summary.SummaryType(summaryType)))
	}

	row, err := query.
		Order(ent.Desc(summary.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest summary: %w", err)
	}
	return row, nil
}

// ListIncrementals returns all incremental summaries of a meeting in
// creation order, the order the merger consumes.
func (s *SummaryService) ListIncrementals(ctx context.Context, meetingID string) ([]*ent.Summary, error) {
	rows, err := s.client.Summary.Query().
		Where(
			summary.MeetingIDEQ(meetingID),
			summary.SummaryTypeEQ(summary.SummaryTypeIncremental),
		).
		Order(ent.Asc(summary.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list incremental summaries: %w", err)
	}
	return rows, nil
}

// CountFinals returns the number of final summaries for a meeting.
func (s *SummaryService) CountFinals(ctx context.Context, meetingID string) (int, error) {
	count, err := s.client.Summary.Query().
		Where(
			summary.MeetingIDEQ(meetingID),
			summary.SummaryTypeEQ(summary.SummaryTypeFinal),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count final summaries: %w", err)
	}
	return count, nil
}

// ContentOf decodes a summary row's JSON column into typed content.
func ContentOf(row *ent.Summary) (models.SummaryContent, error) {
	return models.SummaryContentFromMap(row.Content)
}
