package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/recapcrew/recap/ent"
	"github.com/recapcrew/recap/pkg/chunker"
	"github.com/recapcrew/recap/pkg/config"
	"github.com/recapcrew/recap/pkg/events"
	"github.com/recapcrew/recap/pkg/inference"
	"github.com/recapcrew/recap/pkg/merger"
	"github.com/recapcrew/recap/pkg/models"
	"github.com/recapcrew/recap/pkg/prompt"
	"github.com/recapcrew/recap/pkg/services"
	"github.com/recapcrew/recap/pkg/transcribe"
)

// CompletionClient is the language-model surface the executor needs.
// Implemented by inference.Client.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Publisher broadcasts pipeline events. Implemented by
// events.EventPublisher. May be nil (events disabled).
type Publisher interface {
	PublishSummaryUpdate(ctx context.Context, payload events.SummaryUpdatePayload) error
	PublishSegmentAdded(ctx context.Context, payload events.SegmentAddedPayload) error
}

// Executor runs the summarization pipeline's job types. One instance is
// shared by all workers; it holds no per-job state.
type Executor struct {
	meetings    *services.MeetingService
	segments    *services.SegmentService
	summaries   *services.SummaryService
	jobs        *services.JobService
	llm         CompletionClient
	transcriber transcribe.Transcriber // nil when transcription is disabled
	publisher   Publisher              // nil when events are disabled
	chunker     *chunker.Chunker
	merger      *merger.Merger
	pipeCfg     *config.PipelineConfig
	watcherCfg  *config.WatcherConfig // nil when the audio watcher is disabled
}

// NewExecutor wires the pipeline executor. transcriber, publisher, and
// watcherCfg are optional.
func NewExecutor(
	meetings *services.MeetingService,
	segments *services.SegmentService,
	summaries *services.SummaryService,
	jobs *services.JobService,
	llm CompletionClient,
	transcriber transcribe.Transcriber,
	publisher Publisher,
	chk *chunker.Chunker,
	mrg *merger.Merger,
	pipeCfg *config.PipelineConfig,
	watcherCfg *config.WatcherConfig,
) *Executor {
	return &Executor{
		meetings:    meetings,
		segments:    segments,
		summaries:   summaries,
		jobs:        jobs,
		llm:         llm,
		transcriber: transcriber,
		publisher:   publisher,
		chunker:     chk,
		merger:      mrg,
		pipeCfg:     pipeCfg,
		watcherCfg:  watcherCfg,
	}
}

// Execute dispatches a claimed job by type.
func (e *Executor) Execute(ctx context.Context, j *ent.Job) error {
	switch j.JobType {
	case models.JobTypeChunkSummary:
		return e.executeChunkSummary(ctx, j.MeetingID)
	case models.JobTypeComposeSummary:
		return e.executeComposeSummary(ctx, j.MeetingID)
	case models.JobTypeAnnotateActionItems:
		return e.executeAnnotateActionItems(ctx, j.MeetingID)
	case models.JobTypeProcessAudio:
		return e.executeProcessAudio(ctx, j)
	default:
		return NonRetryable("unknown job type %q", j.JobType)
	}
}

// executeChunkSummary summarizes the transcript segments not yet
// covered by an incremental summary. Each chunk yields one incremental
// summary row carrying the ids of the segments it was built from.
func (e *Executor) executeChunkSummary(ctx context.Context, meetingID string) error {
	if meetingID == "" {
		return NonRetryable("chunk-summary job has no meeting")
	}

	total, err := e.segments.CountSegments(ctx, meetingID)
	if err != nil {
		return err
	}
	if total == 0 {
		return NonRetryable("meeting has no segments")
	}

	segs, err := e.segments.ListUnsummarizedSegments(ctx, meetingID)
	if err != nil {
		return err
	}
	if len(segs) == 0 {
		// Everything is already covered; a duplicate trigger is a no-op.
		return nil
	}

	// Each chunk's summary and its segment stamps land in one
	// transaction, so a failure mid-loop leaves the remaining chunks'
	// segments in the window for the retry.
	chunks := e.chunker.Chunk(services.ToChunkerSegments(segs))
	for _, chunk := range chunks {
		content, err := e.summarizeChunk(ctx, chunk)
		if err != nil {
			return err
		}
		if _, err := e.summaries.CreateIncremental(ctx, meetingID, content, chunk.SegmentIDs); err != nil {
			return err
		}
	}

	slog.Info("Chunk summarization complete",
		"meeting_id", meetingID, "segments", len(segs), "chunks", len(chunks))
	e.publishSummaryUpdate(ctx, meetingID)
	return nil
}

// summarizeChunk runs one chunk through the model and parses the
// structured result. The model cannot know database ids, so source
// segment ids are stamped from the chunk geometry.
func (e *Executor) summarizeChunk(ctx context.Context, chunk chunker.Chunk) (models.SummaryContent, error) {
	raw, err := e.llm.Complete(ctx, prompt.BuildChunkPrompt(chunk.Text))
	if err != nil {
		return models.SummaryContent{}, classifyModelError(err)
	}

	content, err := parseSummaryContent(raw)
	if err != nil {
		return models.SummaryContent{}, NonRetryable("malformed model output: %v", err)
	}

	for i := range content.Decisions {
		content.Decisions[i].SourceSegmentIDs = chunk.SegmentIDs
	}
	for i := range content.ActionItems {
		content.ActionItems[i].SourceSegmentIDs = chunk.SegmentIDs
	}
	return content, nil
}

// parseSummaryContent extracts and decodes the JSON object from raw
// model output. Models occasionally wrap the object in prose; anything
// outside the outermost braces is discarded.
func parseSummaryContent(raw string) (models.SummaryContent, error) {
	jsonText, err := extractJSON(raw)
	if err != nil {
		return models.SummaryContent{}, err
	}
	var content models.SummaryContent
	if err := json.Unmarshal([]byte(jsonText), &content); err != nil {
		return models.SummaryContent{}, err
	}
	return content, nil
}

// extractJSON returns the outermost JSON object in raw.
func extractJSON(raw string) (string, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return "", fmt.Errorf("no JSON object in model output")
	}
	return raw[start : end+1], nil
}

// classifyModelError maps inference failures onto the queue's retry
// semantics. Rejected requests (4xx, oversized prompts) cannot succeed
// on retry; timeouts and transport failures can.
func classifyModelError(err error) error {
	var invalid *inference.InvalidResponseError
	if errors.As(err, &invalid) {
		return NonRetryable("model request rejected: %v", invalid)
	}
	return err
}

// publishSummaryUpdate broadcasts a summary_update event. Best-effort:
// failures are logged, never propagated into the job outcome.
func (e *Executor) publishSummaryUpdate(ctx context.Context, meetingID string) {
	if e.publisher == nil {
		return
	}
	if err := e.publisher.PublishSummaryUpdate(ctx, events.NewSummaryUpdate(meetingID)); err != nil {
		slog.Warn("Failed to publish summary update", "meeting_id", meetingID, "error", err)
	}
}

// publishSegmentAdded broadcasts a segment_added event. Best-effort.
func (e *Executor) publishSegmentAdded(ctx context.Context, meetingID, segmentID string, count int) {
	if e.publisher == nil {
		return
	}
	if err := e.publisher.PublishSegmentAdded(ctx, events.NewSegmentAdded(meetingID, segmentID, count)); err != nil {
		slog.Warn("Failed to publish segment added", "meeting_id", meetingID, "error", err)
	}
}
