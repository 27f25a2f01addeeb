package queue

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/recapcrew/recap/ent"
	"github.com/recapcrew/recap/pkg/chunker"
	"github.com/recapcrew/recap/pkg/services"
	"github.com/recapcrew/recap/pkg/transcribe"
)

// executeProcessAudio turns a dropped audio file into a finalized
// meeting: transcribe, store the transcript as segments, kick off chunk
// summarization, and finalize so composition and annotation follow.
// The payload carries the absolute file path; once the transcript is
// imported it also carries the meeting id, so a retry resumes from the
// existing meeting instead of transcribing a duplicate.
func (e *Executor) executeProcessAudio(ctx context.Context, j *ent.Job) error {
	if e.transcriber == nil {
		return NonRetryable("transcription backend not configured")
	}

	path, _ := j.Payload["path"].(string)
	if path == "" {
		return NonRetryable("process-audio job payload has no path")
	}
	if !transcribe.SupportedFormat(path) {
		return NonRetryable("unsupported audio format: %s", filepath.Ext(path))
	}

	if resumeID, _ := j.Payload["meeting_id"].(string); resumeID != "" {
		if _, err := e.meetings.GetMeeting(ctx, resumeID); err != nil {
			if errors.Is(err, services.ErrNotFound) {
				return NonRetryable("recorded meeting %s no longer exists", resumeID)
			}
			return err
		}
		slog.Info("Resuming audio job from recorded meeting",
			"job_id", j.ID, "meeting_id", resumeID)
		return e.finishAudioMeeting(ctx, resumeID, path)
	}

	result, err := e.transcriber.Transcribe(ctx, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NonRetryable("audio file missing: %s", path)
		}
		return err
	}

	speech := result.Segments
	if len(speech) == 0 {
		if strings.TrimSpace(result.Text) == "" {
			return NonRetryable("transcription produced no speech")
		}
		speech = []transcribe.SpeechSegment{{Speaker: "speaker", End: result.Duration, Text: result.Text}}
	}

	// Segment timestamps are anchored so the recording ends "now".
	start := time.Now().Add(-result.Duration)
	entries := make([]services.TranscriptSegment, 0, len(speech))
	for _, s := range speech {
		text := strings.TrimSpace(s.Text)
		if text == "" {
			continue
		}
		entries = append(entries, services.TranscriptSegment{
			Speaker:    s.Speaker,
			TS:         start.Add(s.Start),
			Text:       text,
			TokenCount: chunker.EstimateTokens(text, e.pipeCfg.CharsPerToken),
		})
	}
	if len(entries) == 0 {
		return NonRetryable("transcription produced no speech")
	}

	base := filepath.Base(path)
	title := strings.TrimSuffix(base, filepath.Ext(base))
	meeting, segs, err := e.meetings.ImportTranscript(ctx, j.ID, title, map[string]any{
		"source":           "audio",
		"file":             base,
		"language":         result.Language,
		"duration_seconds": result.Duration.Seconds(),
	}, entries)
	if err != nil {
		return err
	}
	for i, seg := range segs {
		e.publishSegmentAdded(ctx, meeting.ID, seg.ID, i+1)
	}

	slog.Info("Audio file transcribed",
		"file", base, "meeting_id", meeting.ID, "segments", len(segs), "language", result.Language)
	return e.finishAudioMeeting(ctx, meeting.ID, path)
}

// finishAudioMeeting kicks off chunk summarization for an imported
// transcript, finalizes the meeting, and archives the source file.
// Every step is idempotent, so a retried job lands here again safely.
func (e *Executor) finishAudioMeeting(ctx context.Context, meetingID, path string) error {
	if _, _, err := e.jobs.EnqueueChunkSummary(ctx, meetingID); err != nil {
		return err
	}
	if _, err := e.meetings.FinalizeMeeting(ctx, meetingID); err != nil {
		return err
	}

	e.archiveAudioFile(path)

	slog.Info("Audio file processed",
		"file", filepath.Base(path), "meeting_id", meetingID)
	return nil
}

// archiveAudioFile moves a processed file out of the input directory,
// or deletes it when configured to. Best-effort: a file left behind is
// deduplicated by the watcher, not reprocessed.
func (e *Executor) archiveAudioFile(path string) {
	if e.watcherCfg == nil {
		return
	}

	if e.watcherCfg.DeleteAfterProcessing {
		if err := os.Remove(path); err != nil {
			slog.Warn("Failed to delete processed audio file", "path", path, "error", err)
		}
		return
	}

	if e.watcherCfg.ProcessedDir == "" {
		return
	}
	if err := os.MkdirAll(e.watcherCfg.ProcessedDir, 0o755); err != nil {
		slog.Warn("Failed to create processed directory", "dir", e.watcherCfg.ProcessedDir, "error", err)
		return
	}
	dest := filepath.Join(e.watcherCfg.ProcessedDir, filepath.Base(path))
	if err := os.Rename(path, dest); err != nil {
		slog.Warn("Failed to move processed audio file", "path", path, "dest", dest, "error", err)
	}
}
