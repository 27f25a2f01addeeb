package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"

	"github.com/recapcrew/recap/pkg/config"
)

// ingestValidationServer returns a server with just enough wiring for
// request validation; validation failures never reach the services.
func ingestValidationServer() *Server {
	return &Server{pipeCfg: config.DefaultPipelineConfig()}
}

func postJSON(t *testing.T, handler echo.HandlerFunc, target, body string) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return handler(c)
}

func TestIngestSegmentHandler_Validation(t *testing.T) {
	s := ingestValidationServer()

	tests := []struct {
		name    string
		body    string
		wantErr int
		errMsg  string
	}{
		{
			name:    "missing meeting_id",
			body:    `{"speaker": "alice", "timestamp_iso": "2026-08-25T10:00:00Z", "text_segment": "hello"}`,
			wantErr: http.StatusBadRequest,
			errMsg:  "meeting_id is required",
		},
		{
			name:    "missing speaker",
			body:    `{"meeting_id": "m-1", "timestamp_iso": "2026-08-25T10:00:00Z", "text_segment": "hello"}`,
			wantErr: http.StatusBadRequest,
			errMsg:  "speaker is required",
		},
		{
			name:    "missing text",
			body:    `{"meeting_id": "m-1", "speaker": "alice", "timestamp_iso": "2026-08-25T10:00:00Z"}`,
			wantErr: http.StatusBadRequest,
			errMsg:  "text_segment is required",
		},
		{
			name:    "bad timestamp",
			body:    `{"meeting_id": "m-1", "speaker": "alice", "timestamp_iso": "yesterday", "text_segment": "hello"}`,
			wantErr: http.StatusBadRequest,
			errMsg:  "invalid timestamp_iso",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := postJSON(t, s.ingestSegmentHandler, "/api/v1/ingest/segment", tt.body)
			if assert.Error(t, err) {
				he, ok := err.(*echo.HTTPError)
				if assert.True(t, ok, "expected echo.HTTPError") {
					assert.Equal(t, tt.wantErr, he.Code)
					assert.Contains(t, he.Error(), tt.errMsg)
				}
			}
		})
	}

	t.Run("oversized text is rejected", func(t *testing.T) {
		s := ingestValidationServer()
		s.pipeCfg.MaxInputLength = 10

		body := `{"meeting_id": "m-1", "speaker": "alice", "timestamp_iso": "2026-08-25T10:00:00Z", "text_segment": "` +
			strings.Repeat("x", 11) + `"}`
		err := postJSON(t, s.ingestSegmentHandler, "/api/v1/ingest/segment", body)
		if assert.Error(t, err) {
			he, ok := err.(*echo.HTTPError)
			if assert.True(t, ok) {
				assert.Equal(t, http.StatusRequestEntityTooLarge, he.Code)
				assert.Contains(t, he.Error(), "maximum length")
			}
		}
	})
}

func TestCreateMeetingHandler_Validation(t *testing.T) {
	s := &Server{}

	err := postJSON(t, s.createMeetingHandler, "/api/v1/meetings", `{"metadata": {"room": "4a"}}`)
	if assert.Error(t, err) {
		he, ok := err.(*echo.HTTPError)
		if assert.True(t, ok) {
			assert.Equal(t, http.StatusBadRequest, he.Code)
			assert.Contains(t, he.Error(), "title is required")
		}
	}
}

func TestGetSummaryHandler_Validation(t *testing.T) {
	// Routed through the real router so the :id path param binds; the
	// summary_type check fires before any service is touched.
	s := &Server{}
	e := s.Router()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/meetings/m-1/summary?summary_type=weekly", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid summary_type")
}

func TestListJobsHandler_Validation(t *testing.T) {
	s := &Server{}

	for _, limit := range []string{"0", "-5", "999", "abc"} {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs?limit="+limit, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := s.listJobsHandler(c)
		if assert.Error(t, err, "limit=%s", limit) {
			he, ok := err.(*echo.HTTPError)
			if assert.True(t, ok) {
				assert.Equal(t, http.StatusBadRequest, he.Code)
			}
		}
	}
}
