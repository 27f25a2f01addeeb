package queue

import (
	"context"
	"testing"
	"time"

	"github.com/recapcrew/recap/pkg/models"
	"github.com/recapcrew/recap/pkg/services"
	testdb "github.com/recapcrew/recap/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type monitorTestEnv struct {
	meetings *services.MeetingService
	segments *services.SegmentService
	jobs     *services.JobService
	monitor  *BatchMonitor
}

func setupMonitorTest(t *testing.T, batchTokens int, batchTimeout time.Duration) *monitorTestEnv {
	t.Helper()
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client

	meetings := services.NewMeetingService(client)
	segments := services.NewSegmentService(client)
	jobs := services.NewJobService(client)

	cfg := intTestPipelineConfig()
	cfg.BatchTokens = batchTokens
	cfg.BatchTimeout = batchTimeout

	return &monitorTestEnv{
		meetings: meetings,
		segments: segments,
		jobs:     jobs,
		monitor:  NewBatchMonitor(meetings, segments, jobs, cfg),
	}
}

func (env *monitorTestEnv) chunkJobCount(ctx context.Context, t *testing.T, meetingID string) int {
	t.Helper()
	active, err := env.jobs.HasActiveJob(ctx, meetingID, models.JobTypeChunkSummary)
	require.NoError(t, err)
	if active {
		return 1
	}
	return 0
}

func TestBatchMonitorScan(t *testing.T) {
	ctx := context.Background()

	t.Run("token threshold triggers a job", func(t *testing.T) {
		env := setupMonitorTest(t, 20, 1*time.Hour)
		meeting, err := env.meetings.CreateMeeting(ctx, "standup", nil)
		require.NoError(t, err)

		_, err = env.segments.AppendSegment(ctx, meeting.ID, "alice", time.Now(),
			"a long update that crosses the batch threshold", 25)
		require.NoError(t, err)

		require.NoError(t, env.monitor.Scan(ctx))
		assert.Equal(t, 1, env.chunkJobCount(ctx, t, meeting.ID))
	})

	t.Run("small fresh backlog waits", func(t *testing.T) {
		env := setupMonitorTest(t, 1000, 1*time.Hour)
		meeting, err := env.meetings.CreateMeeting(ctx, "standup", nil)
		require.NoError(t, err)

		_, err = env.segments.AppendSegment(ctx, meeting.ID, "alice", time.Now(), "short note", 3)
		require.NoError(t, err)

		require.NoError(t, env.monitor.Scan(ctx))
		assert.Equal(t, 0, env.chunkJobCount(ctx, t, meeting.ID),
			"a small backlog younger than the batch timeout must not flush")
	})

	t.Run("aged backlog flushes below the threshold", func(t *testing.T) {
		env := setupMonitorTest(t, 1000, 50*time.Millisecond)
		meeting, err := env.meetings.CreateMeeting(ctx, "standup", nil)
		require.NoError(t, err)

		_, err = env.segments.AppendSegment(ctx, meeting.ID, "alice", time.Now(), "short note", 3)
		require.NoError(t, err)

		time.Sleep(80 * time.Millisecond)

		require.NoError(t, env.monitor.Scan(ctx))
		assert.Equal(t, 1, env.chunkJobCount(ctx, t, meeting.ID))
	})

	t.Run("empty backlog never flushes", func(t *testing.T) {
		env := setupMonitorTest(t, 10, 1*time.Millisecond)
		meeting, err := env.meetings.CreateMeeting(ctx, "silent", nil)
		require.NoError(t, err)

		time.Sleep(5 * time.Millisecond)

		require.NoError(t, env.monitor.Scan(ctx))
		assert.Equal(t, 0, env.chunkJobCount(ctx, t, meeting.ID))
	})

	t.Run("duplicate scans enqueue once", func(t *testing.T) {
		env := setupMonitorTest(t, 10, 1*time.Hour)
		meeting, err := env.meetings.CreateMeeting(ctx, "standup", nil)
		require.NoError(t, err)

		_, err = env.segments.AppendSegment(ctx, meeting.ID, "alice", time.Now(), "big update", 50)
		require.NoError(t, err)

		require.NoError(t, env.monitor.Scan(ctx))
		require.NoError(t, env.monitor.Scan(ctx))
		assert.Equal(t, 1, env.chunkJobCount(ctx, t, meeting.ID),
			"an active chunk job deduplicates further triggers")
	})

	t.Run("finalized meetings are skipped", func(t *testing.T) {
		env := setupMonitorTest(t, 10, 1*time.Hour)
		meeting, err := env.meetings.CreateMeeting(ctx, "done", nil)
		require.NoError(t, err)
		_, err = env.segments.AppendSegment(ctx, meeting.ID, "alice", time.Now(), "big update", 50)
		require.NoError(t, err)

		_, err = env.meetings.FinalizeMeeting(ctx, meeting.ID)
		require.NoError(t, err)

		require.NoError(t, env.monitor.Scan(ctx))
		assert.Equal(t, 0, env.chunkJobCount(ctx, t, meeting.ID),
			"the batch monitor only watches active meetings")
	})
}
