package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/recapcrew/recap/pkg/config"
	"github.com/recapcrew/recap/pkg/models"
	"github.com/recapcrew/recap/pkg/services"
	testdb "github.com/recapcrew/recap/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// apiTestEnv is a full HTTP server over a real database, with the
// optional collaborators (events, worker pool, inference) left out.
type apiTestEnv struct {
	server    *httptest.Server
	meetings  *services.MeetingService
	summaries *services.SummaryService
	jobs      *services.JobService
	inputDir  string
}

func setupAPITest(t *testing.T) *apiTestEnv {
	t.Helper()
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client

	meetings := services.NewMeetingService(client)
	segments := services.NewSegmentService(client)
	summaries := services.NewSummaryService(client)
	jobs := services.NewJobService(client)

	pipeCfg := config.DefaultPipelineConfig()
	pipeCfg.BatchTokens = 20

	watcherCfg := config.DefaultWatcherConfig()
	watcherCfg.InputDir = t.TempDir()

	s := NewServer(dbClient, meetings, segments, summaries, jobs,
		nil, nil, nil, nil, pipeCfg, watcherCfg)

	srv := httptest.NewServer(s.Router())
	t.Cleanup(srv.Close)

	return &apiTestEnv{
		server:    srv,
		meetings:  meetings,
		summaries: summaries,
		jobs:      jobs,
		inputDir:  watcherCfg.InputDir,
	}
}

func (env *apiTestEnv) postJSON(t *testing.T, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Post(env.server.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	return resp, decodeBody(t, resp)
}

func (env *apiTestEnv) get(t *testing.T, path string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Get(env.server.URL + path)
	require.NoError(t, err)
	return resp, decodeBody(t, resp)
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body), "body: %s", raw)
	return body
}

func (env *apiTestEnv) createMeeting(t *testing.T, title string) string {
	t.Helper()
	resp, body := env.postJSON(t, "/api/v1/meetings", fmt.Sprintf(`{"title": %q}`, title))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id, _ := body["meeting_id"].(string)
	require.NotEmpty(t, id)
	return id
}

func segmentBody(meetingID, speaker, text string) string {
	return fmt.Sprintf(`{"meeting_id": %q, "speaker": %q, "timestamp_iso": %q, "text_segment": %q}`,
		meetingID, speaker, time.Now().UTC().Format(time.RFC3339), text)
}

func TestMeetingLifecycleOverHTTP(t *testing.T) {
	env := setupAPITest(t)

	meetingID := env.createMeeting(t, "architecture sync")

	t.Run("get meeting", func(t *testing.T) {
		resp, body := env.get(t, "/api/v1/meetings/"+meetingID)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "architecture sync", body["title"])
		assert.Equal(t, false, body["finalized"])
	})

	t.Run("unknown meeting is 404", func(t *testing.T) {
		resp, _ := env.get(t, "/api/v1/meetings/no-such-meeting")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("summary is null before any summarization", func(t *testing.T) {
		resp, body := env.get(t, "/api/v1/meetings/"+meetingID+"/summary")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, meetingID, body["meeting_id"])
		assert.Nil(t, body["summary"])
	})

	t.Run("finalize is idempotent", func(t *testing.T) {
		resp, body := env.postJSON(t, "/api/v1/meetings/"+meetingID+"/finalize", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "finalized", body["status"])

		resp, body = env.postJSON(t, "/api/v1/meetings/"+meetingID+"/finalize", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "already_finalized", body["status"])
	})

	t.Run("finalize enqueued the composition jobs once", func(t *testing.T) {
		ctx := context.Background()
		compose, err := env.jobs.HasActiveJob(ctx, meetingID, models.JobTypeComposeSummary)
		require.NoError(t, err)
		annotate, err := env.jobs.HasActiveJob(ctx, meetingID, models.JobTypeAnnotateActionItems)
		require.NoError(t, err)
		assert.True(t, compose)
		assert.True(t, annotate)

		_, total, err := env.jobs.ListJobs(ctx, 50)
		require.NoError(t, err)
		assert.Equal(t, 2, total, "a second finalize must not enqueue more jobs")
	})
}

func TestSegmentIngestOverHTTP(t *testing.T) {
	env := setupAPITest(t)
	meetingID := env.createMeeting(t, "daily standup")

	t.Run("accepts a segment", func(t *testing.T) {
		resp, body := env.postJSON(t, "/api/v1/ingest/segment",
			segmentBody(meetingID, "alice", "short update"))
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.NotEmpty(t, body["segment_id"])
		assert.Equal(t, "accepted", body["status"])
		assert.Equal(t, float64(1), body["segment_count"])
		assert.Greater(t, body["token_count"], float64(0))
		assert.Equal(t, false, body["job_enqueued"], "tiny backlog stays under the threshold")
	})

	t.Run("threshold crossing enqueues chunk summarization", func(t *testing.T) {
		long := strings.Repeat("the migration plan needs another review pass ", 10)
		resp, body := env.postJSON(t, "/api/v1/ingest/segment",
			segmentBody(meetingID, "bob", long))
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, true, body["job_enqueued"])

		active, err := env.jobs.HasActiveJob(context.Background(), meetingID, models.JobTypeChunkSummary)
		require.NoError(t, err)
		assert.True(t, active)
	})

	t.Run("duplicate trigger does not enqueue again", func(t *testing.T) {
		long := strings.Repeat("still talking about the migration ", 10)
		resp, body := env.postJSON(t, "/api/v1/ingest/segment",
			segmentBody(meetingID, "carol", long))
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, false, body["job_enqueued"])
	})

	t.Run("unknown meeting is 404", func(t *testing.T) {
		resp, _ := env.postJSON(t, "/api/v1/ingest/segment",
			segmentBody("no-such-meeting", "alice", "hello"))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("finalized meeting rejects segments", func(t *testing.T) {
		resp, _ := env.postJSON(t, "/api/v1/meetings/"+meetingID+"/finalize", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp, _ = env.postJSON(t, "/api/v1/ingest/segment",
			segmentBody(meetingID, "dave", "too late"))
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})
}

func TestSummaryReadOverHTTP(t *testing.T) {
	env := setupAPITest(t)
	ctx := context.Background()
	meetingID := env.createMeeting(t, "retro")

	content := models.SummaryContent{
		Summary:     "We discussed the incident response.",
		Decisions:   []models.Decision{{Text: "Adopt the new runbook", Confidence: 0.9}},
		ActionItems: []models.ActionItem{},
		Topics:      []models.Topic{{Name: "incidents", Confidence: 0.8}},
	}
	_, err := env.summaries.CreateSummary(ctx, meetingID, models.SummaryTypeIncremental, content)
	require.NoError(t, err)

	resp, body := env.get(t, "/api/v1/meetings/"+meetingID+"/summary")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, body["summary"])

	detail := body["summary"].(map[string]any)
	assert.Equal(t, "incremental", detail["summary_type"])
	inner := detail["content"].(map[string]any)
	assert.Equal(t, "We discussed the incident response.", inner["summary"])

	t.Run("type filter misses return null", func(t *testing.T) {
		resp, body := env.get(t, "/api/v1/meetings/"+meetingID+"/summary?summary_type=final")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Nil(t, body["summary"])
	})
}

func TestJobEndpointsOverHTTP(t *testing.T) {
	env := setupAPITest(t)
	ctx := context.Background()
	meetingID := env.createMeeting(t, "all hands")

	j, err := env.jobs.CreateJob(ctx, meetingID, models.JobTypeChunkSummary, nil)
	require.NoError(t, err)

	t.Run("job detail", func(t *testing.T) {
		resp, body := env.get(t, "/api/v1/jobs/"+j.ID)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, j.ID, body["job_id"])
		assert.Equal(t, models.JobTypeChunkSummary, body["job_type"])
		assert.Equal(t, "pending", body["status"])
	})

	t.Run("unknown job is 404", func(t *testing.T) {
		resp, _ := env.get(t, "/api/v1/jobs/no-such-job")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("job list", func(t *testing.T) {
		resp, body := env.get(t, "/api/v1/jobs?limit=10")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, float64(1), body["total"])
		assert.Len(t, body["jobs"], 1)
	})

	t.Run("stats", func(t *testing.T) {
		resp, body := env.get(t, "/api/v1/stats")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		jobs := body["jobs"].(map[string]any)
		assert.Equal(t, float64(1), jobs["queue_size"])
	})
}

func TestHealthzOverHTTP(t *testing.T) {
	env := setupAPITest(t)

	resp, body := env.get(t, "/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", body["status"])

	checks := body["checks"].(map[string]any)
	db := checks["database"].(map[string]any)
	assert.Equal(t, "healthy", db["status"])
}

func TestProcessAudioOverHTTP(t *testing.T) {
	env := setupAPITest(t)

	upload := func(t *testing.T, filename string) (*http.Response, map[string]any) {
		t.Helper()
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		part, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake audio bytes"))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		resp, err := http.Post(env.server.URL+"/api/v1/process-audio", mw.FormDataContentType(), &buf)
		require.NoError(t, err)
		return resp, decodeBody(t, resp)
	}

	t.Run("accepts a supported format", func(t *testing.T) {
		resp, body := upload(t, "standup.mp3")
		assert.Equal(t, http.StatusAccepted, resp.StatusCode)
		assert.Equal(t, "queued", body["status"])
		assert.Equal(t, "standup.mp3", body["file_name"])
		require.NotEmpty(t, body["job_id"])

		// The file landed in the upload directory and the job points at it.
		j, err := env.jobs.GetJob(context.Background(), body["job_id"].(string))
		require.NoError(t, err)
		path, _ := j.Payload["path"].(string)
		require.NotEmpty(t, path)
		assert.Equal(t, filepath.Join(env.inputDir, "uploads"), filepath.Dir(path))
		_, err = os.Stat(path)
		require.NoError(t, err)
	})

	t.Run("rejects unsupported formats", func(t *testing.T) {
		resp, _ := upload(t, "notes.txt")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
