package api

import (
	"net/http"

	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"
)

// streamHandler handles GET /api/v1/meetings/:id/stream.
// Upgrades to WebSocket and delegates to the ConnectionManager, which
// subscribes the connection to the meeting's event channel.
func (s *Server) streamHandler(c *echo.Context) error {
	if s.connManager == nil {
		return notImplemented("event streaming")
	}

	meetingID := c.Param("id")
	if meetingID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "meeting id is required")
	}
	if _, err := s.meetings.GetMeeting(c.Request().Context(), meetingID); err != nil {
		return mapServiceError(err)
	}

	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		return err
	}

	// Blocks until the WebSocket closes.
	s.connManager.HandleMeetingStream(c.Request().Context(), conn, meetingID)
	return nil
}
