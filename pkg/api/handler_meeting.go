package api

import (
	"errors"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/recapcrew/recap/pkg/models"
	"github.com/recapcrew/recap/pkg/services"
)

// createMeetingHandler handles POST /api/v1/meetings.
func (s *Server) createMeetingHandler(c *echo.Context) error {
	var req CreateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}

	m, err := s.meetings.CreateMeeting(c.Request().Context(), req.Title, req.Metadata)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, meetingResponse(m))
}

// getMeetingHandler handles GET /api/v1/meetings/:id.
func (s *Server) getMeetingHandler(c *echo.Context) error {
	meetingID := c.Param("id")
	if meetingID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "meeting id is required")
	}

	m, err := s.meetings.GetMeeting(c.Request().Context(), meetingID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, meetingResponse(m))
}

// finalizeMeetingHandler handles POST /api/v1/meetings/:id/finalize.
// Idempotent: the first call flips the flag and enqueues the
// finalization jobs in one transaction; repeats report
// already_finalized and enqueue nothing.
func (s *Server) finalizeMeetingHandler(c *echo.Context) error {
	meetingID := c.Param("id")
	if meetingID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "meeting id is required")
	}

	already, err := s.meetings.FinalizeMeeting(c.Request().Context(), meetingID)
	if err != nil {
		return mapServiceError(err)
	}

	status := "finalized"
	if already {
		status = "already_finalized"
	}
	return c.JSON(http.StatusOK, &FinalizeResponse{
		MeetingID: meetingID,
		Status:    status,
	})
}

// getSummaryHandler handles GET /api/v1/meetings/:id/summary.
// Optional ?summary_type=incremental|final filters; summary is JSON
// null when none exists yet.
func (s *Server) getSummaryHandler(c *echo.Context) error {
	meetingID := c.Param("id")
	if meetingID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "meeting id is required")
	}

	summaryType := c.QueryParam("summary_type")
	switch summaryType {
	case "", models.SummaryTypeIncremental, models.SummaryTypeFinal:
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "invalid summary_type: must be incremental or final")
	}

	// The meeting must exist even when it has no summaries.
	if _, err := s.meetings.GetMeeting(c.Request().Context(), meetingID); err != nil {
		return mapServiceError(err)
	}

	resp := &SummaryResponse{MeetingID: meetingID}
	row, err := s.summaries.GetLatestSummary(c.Request().Context(), meetingID, summaryType)
	switch {
	case err == nil:
		resp.Summary = &SummaryDetail{
			SummaryID:   row.ID,
			SummaryType: string(row.SummaryType),
			Content:     row.Content,
			CreatedAt:   row.CreatedAt,
		}
	case errors.Is(err, services.ErrNotFound):
		// summary stays null
	default:
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, resp)
}
