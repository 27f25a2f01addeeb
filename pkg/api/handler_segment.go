package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"
	"unicode/utf8"

	echo "github.com/labstack/echo/v5"

	"github.com/recapcrew/recap/pkg/chunker"
	"github.com/recapcrew/recap/pkg/events"
)

// ingestSegmentHandler handles POST /api/v1/ingest/segment.
// The hot path of live ingestion: validate, estimate tokens, persist,
// and trigger chunk summarization once the unsummarized backlog
// crosses the batch threshold.
func (s *Server) ingestSegmentHandler(c *echo.Context) error {
	var req IngestSegmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if req.MeetingID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "meeting_id is required")
	}
	if req.Speaker == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "speaker is required")
	}
	if req.Text == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "text_segment is required")
	}
	if utf8.RuneCountInString(req.Text) > s.pipeCfg.MaxInputLength {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge,
			fmt.Sprintf("text_segment exceeds maximum length of %d characters", s.pipeCfg.MaxInputLength))
	}

	ts, err := time.Parse(time.RFC3339, req.TimestampISO)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid timestamp_iso: must be RFC3339")
	}

	ctx := c.Request().Context()
	tokens := chunker.EstimateTokens(req.Text, s.pipeCfg.CharsPerToken)

	seg, err := s.segments.AppendSegment(ctx, req.MeetingID, req.Speaker, ts, req.Text, tokens)
	if err != nil {
		return mapServiceError(err)
	}

	count, err := s.segments.CountSegments(ctx, req.MeetingID)
	if err != nil {
		return mapServiceError(err)
	}

	// Threshold trigger. The batch monitor is the safety net for
	// meetings that never cross it.
	enqueued := false
	backlog, err := s.segments.UnsummarizedTokens(ctx, req.MeetingID)
	if err != nil {
		slog.Error("Failed to compute unsummarized backlog", "meeting_id", req.MeetingID, "error", err)
	} else if backlog >= s.pipeCfg.BatchTokens {
		if _, created, err := s.jobs.EnqueueChunkSummary(ctx, req.MeetingID); err != nil {
			slog.Error("Failed to enqueue chunk summarization", "meeting_id", req.MeetingID, "error", err)
		} else {
			enqueued = created
		}
	}

	if s.publisher != nil {
		payload := events.NewSegmentAdded(req.MeetingID, seg.ID, count)
		if err := s.publisher.PublishSegmentAdded(ctx, payload); err != nil {
			slog.Warn("Failed to publish segment added", "meeting_id", req.MeetingID, "error", err)
		}
	}

	return c.JSON(http.StatusCreated, &SegmentResponse{
		SegmentID:    seg.ID,
		Status:       "accepted",
		MeetingID:    req.MeetingID,
		TokenCount:   tokens,
		SegmentCount: count,
		JobEnqueued:  enqueued,
	})
}
