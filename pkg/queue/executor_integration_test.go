package queue

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/recapcrew/recap/ent"
	"github.com/recapcrew/recap/pkg/chunker"
	"github.com/recapcrew/recap/pkg/merger"
	"github.com/recapcrew/recap/pkg/models"
	"github.com/recapcrew/recap/pkg/services"
	"github.com/recapcrew/recap/pkg/transcribe"
	testdb "github.com/recapcrew/recap/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pipelineTestEnv bundles the executor with the services it writes
// through, all backed by one test database.
type pipelineTestEnv struct {
	client    *ent.Client
	meetings  *services.MeetingService
	segments  *services.SegmentService
	summaries *services.SummaryService
	jobs      *services.JobService
	executor  *Executor
	llm       *fakeLLM
}

func setupPipelineTest(t *testing.T, llm *fakeLLM) *pipelineTestEnv {
	t.Helper()
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client

	meetings := services.NewMeetingService(client)
	segments := services.NewSegmentService(client)
	summaries := services.NewSummaryService(client)
	jobs := services.NewJobService(client)

	chk, err := chunker.New(2000, 300, chunker.NewWordTokenizer())
	require.NoError(t, err)

	executor := NewExecutor(meetings, segments, summaries, jobs, llm,
		nil, nil, chk, merger.New(0.85), intTestPipelineConfig(), nil)

	return &pipelineTestEnv{
		client:    client,
		meetings:  meetings,
		segments:  segments,
		summaries: summaries,
		jobs:      jobs,
		executor:  executor,
		llm:       llm,
	}
}

// seedMeeting creates a meeting with n transcript segments.
func (env *pipelineTestEnv) seedMeeting(ctx context.Context, t *testing.T, n int) *ent.Meeting {
	t.Helper()
	meeting, err := env.meetings.CreateMeeting(ctx, "sprint planning", nil)
	require.NoError(t, err)

	base := time.Now().Add(-time.Duration(n) * time.Minute)
	for i := 0; i < n; i++ {
		_, err := env.segments.AppendSegment(ctx, meeting.ID,
			fmt.Sprintf("speaker-%d", i%2),
			base.Add(time.Duration(i)*time.Minute),
			fmt.Sprintf("segment %d discussing the release checklist", i),
			12)
		require.NoError(t, err)
	}
	return meeting
}

func TestExecuteChunkSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("produces incremental summaries with source ids", func(t *testing.T) {
		env := setupPipelineTest(t, &fakeLLM{responses: []string{chunkResponse}})
		meeting := env.seedMeeting(ctx, t, 3)

		require.NoError(t, env.executor.executeChunkSummary(ctx, meeting.ID))

		incrementals, err := env.summaries.ListIncrementals(ctx, meeting.ID)
		require.NoError(t, err)
		require.Len(t, incrementals, 1, "3 short segments fit one chunk")

		content, err := services.ContentOf(incrementals[0])
		require.NoError(t, err)
		assert.Equal(t, "The team reviewed the rollout plan.", content.Summary)
		require.Len(t, content.Decisions, 1)
		assert.Len(t, content.Decisions[0].SourceSegmentIDs, 3,
			"decision should reference every segment in its chunk")

		// The rendered transcript reaches the model.
		require.Len(t, env.llm.prompts, 1)
		assert.Contains(t, env.llm.prompts[0], "speaker-0")
		assert.Contains(t, env.llm.prompts[0], "release checklist")
	})

	t.Run("second run is a no-op", func(t *testing.T) {
		env := setupPipelineTest(t, &fakeLLM{responses: []string{chunkResponse}})
		meeting := env.seedMeeting(ctx, t, 3)

		require.NoError(t, env.executor.executeChunkSummary(ctx, meeting.ID))
		require.NoError(t, env.executor.executeChunkSummary(ctx, meeting.ID),
			"already-covered segments must not error")

		incrementals, err := env.summaries.ListIncrementals(ctx, meeting.ID)
		require.NoError(t, err)
		assert.Len(t, incrementals, 1, "no new summary without new segments")
	})

	t.Run("only new segments are summarized", func(t *testing.T) {
		env := setupPipelineTest(t, &fakeLLM{responses: []string{chunkResponse, chunkResponse}})
		meeting := env.seedMeeting(ctx, t, 2)

		require.NoError(t, env.executor.executeChunkSummary(ctx, meeting.ID))

		_, err := env.segments.AppendSegment(ctx, meeting.ID, "speaker-9",
			time.Now(), "a late addition about budget", 8)
		require.NoError(t, err)

		require.NoError(t, env.executor.executeChunkSummary(ctx, meeting.ID))

		require.Len(t, env.llm.prompts, 2)
		assert.Contains(t, env.llm.prompts[1], "late addition")
		assert.NotContains(t, env.llm.prompts[1], "segment 0",
			"already-summarized segments must not be re-sent")
	})

	t.Run("partial chunk failure leaves the rest for the retry", func(t *testing.T) {
		// One canned response for two chunks: the second chunk's model
		// call fails after the first chunk's summary has persisted.
		env := setupPipelineTest(t, &fakeLLM{responses: []string{chunkResponse}})
		meeting := env.seedMeeting(ctx, t, 2)

		// Each seeded segment renders to nine words, so a nine-word
		// window puts exactly one segment in each chunk.
		chk, err := chunker.New(9, 0, chunker.NewWordTokenizer())
		require.NoError(t, err)
		exec := NewExecutor(env.meetings, env.segments, env.summaries, env.jobs, env.llm,
			nil, nil, chk, merger.New(0.85), intTestPipelineConfig(), nil)

		err = exec.executeChunkSummary(ctx, meeting.ID)
		require.Error(t, err)
		assert.False(t, IsNonRetryable(err), "a transient model failure must stay retryable")

		incrementals, err := env.summaries.ListIncrementals(ctx, meeting.ID)
		require.NoError(t, err)
		require.Len(t, incrementals, 1, "the first chunk's summary persisted")

		remaining, err := env.segments.ListUnsummarizedSegments(ctx, meeting.ID)
		require.NoError(t, err)
		require.Len(t, remaining, 1, "the failed chunk's segment must stay in the window")

		env.llm.mu.Lock()
		env.llm.responses = append(env.llm.responses, chunkResponse)
		env.llm.mu.Unlock()

		require.NoError(t, exec.executeChunkSummary(ctx, meeting.ID),
			"the retry covers what the first run missed")

		incrementals, err = env.summaries.ListIncrementals(ctx, meeting.ID)
		require.NoError(t, err)
		assert.Len(t, incrementals, 2)

		remaining, err = env.segments.ListUnsummarizedSegments(ctx, meeting.ID)
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})

	t.Run("backfilled segment stays in the window", func(t *testing.T) {
		env := setupPipelineTest(t, &fakeLLM{responses: []string{chunkResponse, chunkResponse}})
		meeting := env.seedMeeting(ctx, t, 2)
		require.NoError(t, env.executor.executeChunkSummary(ctx, meeting.ID))

		// Ingest can commit a segment while a chunk job writes its
		// summary, leaving created_at behind the summary row. Coverage
		// is tracked per segment, so arrival order must not hide it.
		_, err := env.client.Segment.Create().
			SetID(uuid.New().String()).
			SetMeetingID(meeting.ID).
			SetSpeaker("speaker-9").
			SetTs(time.Now()).
			SetText("a backfilled point about the budget").
			SetTokenCount(7).
			SetCreatedAt(time.Now().Add(-1 * time.Hour)).
			Save(ctx)
		require.NoError(t, err)

		remaining, err := env.segments.ListUnsummarizedSegments(ctx, meeting.ID)
		require.NoError(t, err)
		require.Len(t, remaining, 1)

		require.NoError(t, env.executor.executeChunkSummary(ctx, meeting.ID))

		require.Len(t, env.llm.prompts, 2)
		assert.Contains(t, env.llm.prompts[1], "backfilled point")

		remaining, err = env.segments.ListUnsummarizedSegments(ctx, meeting.ID)
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})

	t.Run("meeting without segments is non-retryable", func(t *testing.T) {
		env := setupPipelineTest(t, &fakeLLM{})
		meeting, err := env.meetings.CreateMeeting(ctx, "empty", nil)
		require.NoError(t, err)

		err = env.executor.executeChunkSummary(ctx, meeting.ID)
		require.Error(t, err)
		assert.True(t, IsNonRetryable(err))
		assert.Contains(t, err.Error(), "no segments")
	})
}

func TestExecuteComposeSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("merges incrementals into a final summary", func(t *testing.T) {
		env := setupPipelineTest(t, &fakeLLM{responses: []string{chunkResponse}})
		meeting := env.seedMeeting(ctx, t, 3)
		require.NoError(t, env.executor.executeChunkSummary(ctx, meeting.ID))

		require.NoError(t, env.executor.executeComposeSummary(ctx, meeting.ID))

		final, err := env.summaries.GetLatestSummary(ctx, meeting.ID, models.SummaryTypeFinal)
		require.NoError(t, err)
		content, err := services.ContentOf(final)
		require.NoError(t, err)
		assert.NotEmpty(t, content.Summary)
		assert.Len(t, content.Decisions, 1)
	})

	t.Run("waits while chunk summarization is in flight", func(t *testing.T) {
		env := setupPipelineTest(t, &fakeLLM{})
		meeting := env.seedMeeting(ctx, t, 2)

		_, created, err := env.jobs.EnqueueChunkSummary(ctx, meeting.ID)
		require.NoError(t, err)
		require.True(t, created)

		err = env.executor.executeComposeSummary(ctx, meeting.ID)
		require.Error(t, err)
		assert.True(t, IsWaiting(err), "compose must wait without burning the retry budget")
		assert.Contains(t, err.Error(), "in flight")
	})

	t.Run("no incrementals is non-retryable", func(t *testing.T) {
		env := setupPipelineTest(t, &fakeLLM{})
		meeting, err := env.meetings.CreateMeeting(ctx, "silent", nil)
		require.NoError(t, err)

		err = env.executor.executeComposeSummary(ctx, meeting.ID)
		require.Error(t, err)
		assert.True(t, IsNonRetryable(err))
		assert.Contains(t, err.Error(), "no incremental summaries")
	})
}

func TestExecuteAnnotateActionItems(t *testing.T) {
	ctx := context.Background()

	t.Run("fills owners and due dates in a new final", func(t *testing.T) {
		env := setupPipelineTest(t, &fakeLLM{responses: []string{
			chunkResponse,
			`{"owner": "alice", "due_date_iso": "2026-09-01"}`,
		}})
		meeting := env.seedMeeting(ctx, t, 3)
		require.NoError(t, env.executor.executeChunkSummary(ctx, meeting.ID))
		require.NoError(t, env.executor.executeComposeSummary(ctx, meeting.ID))

		require.NoError(t, env.executor.executeAnnotateActionItems(ctx, meeting.ID))

		// Annotation appends a new final; the composed one stays.
		finals, err := env.summaries.CountFinals(ctx, meeting.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, finals)

		latest, err := env.summaries.GetLatestSummary(ctx, meeting.ID, models.SummaryTypeFinal)
		require.NoError(t, err)
		content, err := services.ContentOf(latest)
		require.NoError(t, err)
		require.Len(t, content.ActionItems, 1)
		assert.Equal(t, "alice", content.ActionItems[0].Owner)
		assert.Equal(t, "2026-09-01", content.ActionItems[0].DueDateISO)
	})

	t.Run("unparseable annotation skips the item", func(t *testing.T) {
		env := setupPipelineTest(t, &fakeLLM{responses: []string{
			chunkResponse,
			"I have no idea who owns this.",
		}})
		meeting := env.seedMeeting(ctx, t, 3)
		require.NoError(t, env.executor.executeChunkSummary(ctx, meeting.ID))
		require.NoError(t, env.executor.executeComposeSummary(ctx, meeting.ID))

		require.NoError(t, env.executor.executeAnnotateActionItems(ctx, meeting.ID),
			"a bad annotation must not fail the job")

		latest, err := env.summaries.GetLatestSummary(ctx, meeting.ID, models.SummaryTypeFinal)
		require.NoError(t, err)
		content, err := services.ContentOf(latest)
		require.NoError(t, err)
		require.Len(t, content.ActionItems, 1)
		assert.Empty(t, content.ActionItems[0].Owner)
	})

	t.Run("waits while composition is in flight", func(t *testing.T) {
		env := setupPipelineTest(t, &fakeLLM{})
		meeting := env.seedMeeting(ctx, t, 2)

		_, err := env.jobs.CreateJob(ctx, meeting.ID, models.JobTypeComposeSummary, nil)
		require.NoError(t, err)

		err = env.executor.executeAnnotateActionItems(ctx, meeting.ID)
		require.Error(t, err)
		assert.True(t, IsWaiting(err), "annotate must wait without burning the retry budget")
		assert.Contains(t, err.Error(), "not yet composed")
	})

	t.Run("no final and nothing in flight is non-retryable", func(t *testing.T) {
		env := setupPipelineTest(t, &fakeLLM{})
		meeting, err := env.meetings.CreateMeeting(ctx, "bare", nil)
		require.NoError(t, err)

		err = env.executor.executeAnnotateActionItems(ctx, meeting.ID)
		require.Error(t, err)
		assert.True(t, IsNonRetryable(err))
		assert.Contains(t, err.Error(), "no final summary")
	})
}

func TestExecuteProcessAudio(t *testing.T) {
	ctx := context.Background()

	transcription := &transcribe.Transcription{
		Language: "en",
		Duration: 2 * time.Minute,
		Segments: []transcribe.SpeechSegment{
			{Speaker: "speaker-0", Start: 0, End: time.Minute,
				Text: "we will ship the beta on friday"},
			{Speaker: "speaker-1", Start: time.Minute, End: 2 * time.Minute,
				Text: "marketing needs the release notes first"},
		},
	}

	writeAudio := func(t *testing.T) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "standup.mp3")
		require.NoError(t, os.WriteFile(path, []byte("audio bytes"), 0o644))
		return path
	}

	setup := func(t *testing.T) (*pipelineTestEnv, *fakeTranscriber, *Executor) {
		t.Helper()
		env := setupPipelineTest(t, &fakeLLM{})
		ft := &fakeTranscriber{result: transcription}
		exec := NewExecutor(env.meetings, env.segments, env.summaries, env.jobs, env.llm,
			ft, nil, env.executor.chunker, env.executor.merger, intTestPipelineConfig(), nil)
		return env, ft, exec
	}

	t.Run("imports the transcript and checkpoints the meeting", func(t *testing.T) {
		env, _, exec := setup(t)
		path := writeAudio(t)
		j, err := env.jobs.CreateJob(ctx, "", models.JobTypeProcessAudio, map[string]any{"path": path})
		require.NoError(t, err)

		require.NoError(t, exec.executeProcessAudio(ctx, j))

		updated, err := env.jobs.GetJob(ctx, j.ID)
		require.NoError(t, err)
		meetingID, _ := updated.Payload["meeting_id"].(string)
		require.NotEmpty(t, meetingID, "the import must record the meeting on the job")

		m, err := env.meetings.GetMeeting(ctx, meetingID)
		require.NoError(t, err)
		assert.Equal(t, "standup", m.Title)
		assert.True(t, m.Finalized)

		n, err := env.segments.CountSegments(ctx, meetingID)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("retry resumes from the recorded meeting", func(t *testing.T) {
		env, ft, exec := setup(t)
		path := writeAudio(t)
		j, err := env.jobs.CreateJob(ctx, "", models.JobTypeProcessAudio, map[string]any{"path": path})
		require.NoError(t, err)

		require.NoError(t, exec.executeProcessAudio(ctx, j))
		require.Equal(t, 1, ft.callCount())

		// A transient failure after the import sends the job back through
		// the executor. The recorded meeting id must keep the retry from
		// transcribing into a duplicate meeting.
		updated, err := env.jobs.GetJob(ctx, j.ID)
		require.NoError(t, err)
		require.NoError(t, exec.executeProcessAudio(ctx, updated))

		assert.Equal(t, 1, ft.callCount(), "resumption must not transcribe again")

		meetings, err := env.client.Meeting.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, meetings, "no duplicate meeting on retry")
	})
}

// TestPipelineThroughPool runs the real executor under a worker pool:
// finalize enqueues compose and annotate, and both converge through the
// retry machinery.
func TestPipelineThroughPool(t *testing.T) {
	ctx := context.Background()
	env := setupPipelineTest(t, &fakeLLM{responses: []string{
		chunkResponse,
		`{"owner": "bob", "due_date_iso": "2026-10-01"}`,
	}})
	meeting := env.seedMeeting(ctx, t, 3)

	_, created, err := env.jobs.EnqueueChunkSummary(ctx, meeting.ID)
	require.NoError(t, err)
	require.True(t, created)

	already, err := env.meetings.FinalizeMeeting(ctx, meeting.ID)
	require.NoError(t, err)
	require.False(t, already)

	cfg := intTestQueueConfig()
	cfg.WorkerCount = 2
	cfg.PollInterval = 50 * time.Millisecond

	// Short backoff so the compose/annotate ordering gates resolve fast.
	pipeCfg := intTestPipelineConfig()
	pipeCfg.BackoffBase = 1

	pool := NewWorkerPool("test-pod", env.client, cfg, pipeCfg,
		NewExecutor(env.meetings, env.segments, env.summaries, env.jobs, env.llm,
			nil, nil, env.executor.chunker, env.executor.merger, pipeCfg, nil))

	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	awaitCondition(t, 20*time.Second, 100*time.Millisecond,
		"waiting for the annotated final summary",
		func() bool {
			n, err := env.summaries.CountFinals(ctx, meeting.ID)
			require.NoError(t, err)
			return n >= 2
		})

	latest, err := env.summaries.GetLatestSummary(ctx, meeting.ID, models.SummaryTypeFinal)
	require.NoError(t, err)
	content, err := services.ContentOf(latest)
	require.NoError(t, err)
	require.Len(t, content.ActionItems, 1)
	assert.Equal(t, "bob", content.ActionItems[0].Owner)
}
