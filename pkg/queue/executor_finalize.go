package queue

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/recapcrew/recap/pkg/models"
	"github.com/recapcrew/recap/pkg/prompt"
	"github.com/recapcrew/recap/pkg/services"
)

// executeComposeSummary merges all incremental summaries of a finalized
// meeting into one final summary. It waits (via WaitingError requeue)
// for in-flight chunk summarization so the merge sees the full
// transcript.
func (e *Executor) executeComposeSummary(ctx context.Context, meetingID string) error {
	if meetingID == "" {
		return NonRetryable("compose-summary job has no meeting")
	}

	chunking, err := e.jobs.HasActiveJob(ctx, meetingID, models.JobTypeChunkSummary)
	if err != nil {
		return err
	}
	if chunking {
		return Waiting("chunk summarization still in flight for meeting %s", meetingID)
	}

	incrementals, err := e.summaries.ListIncrementals(ctx, meetingID)
	if err != nil {
		return err
	}
	if len(incrementals) == 0 {
		return NonRetryable("meeting has no incremental summaries")
	}

	partials := make([]models.SummaryContent, 0, len(incrementals))
	for _, row := range incrementals {
		content, err := services.ContentOf(row)
		if err != nil {
			return NonRetryable("stored summary %s is undecodable: %v", row.ID, err)
		}
		partials = append(partials, content)
	}

	merged := e.merger.Merge(partials)
	if _, err := e.summaries.CreateSummary(ctx, meetingID, models.SummaryTypeFinal, merged); err != nil {
		return err
	}

	slog.Info("Final summary composed",
		"meeting_id", meetingID,
		"incrementals", len(incrementals),
		"decisions", len(merged.Decisions),
		"action_items", len(merged.ActionItems))
	e.publishSummaryUpdate(ctx, meetingID)
	return nil
}

// annotationResult is the shape the annotation prompt asks for.
type annotationResult struct {
	Owner      string `json:"owner"`
	DueDateISO string `json:"due_date_iso"`
}

// executeAnnotateActionItems enriches the latest final summary's action
// items with owners and due dates, then persists the result as a new
// final summary. The previous final stays in place; readers always take
// the newest row.
func (e *Executor) executeAnnotateActionItems(ctx context.Context, meetingID string) error {
	if meetingID == "" {
		return NonRetryable("annotate job has no meeting")
	}

	latest, err := e.summaries.GetLatestSummary(ctx, meetingID, models.SummaryTypeFinal)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			composing, checkErr := e.jobs.HasActiveJob(ctx, meetingID,
				models.JobTypeComposeSummary, models.JobTypeChunkSummary)
			if checkErr != nil {
				return checkErr
			}
			if composing {
				return Waiting("final summary not yet composed for meeting %s", meetingID)
			}
			return NonRetryable("meeting has no final summary to annotate")
		}
		return err
	}

	content, err := services.ContentOf(latest)
	if err != nil {
		return NonRetryable("stored summary %s is undecodable: %v", latest.ID, err)
	}
	if len(content.ActionItems) == 0 {
		slog.Info("No action items to annotate", "meeting_id", meetingID)
		return nil
	}

	annotated := 0
	for i, item := range content.ActionItems {
		if item.Owner != "" && item.DueDateISO != "" {
			continue
		}
		result, err := e.annotateItem(ctx, item.Text)
		if err != nil {
			if IsNonRetryable(err) {
				// A single unparseable annotation skips the item; the
				// rest of the pass still lands.
				slog.Warn("Skipping unannotatable action item",
					"meeting_id", meetingID, "error", err)
				continue
			}
			return err
		}
		if item.Owner == "" {
			content.ActionItems[i].Owner = result.Owner
		}
		if item.DueDateISO == "" {
			content.ActionItems[i].DueDateISO = result.DueDateISO
		}
		annotated++
	}

	if _, err := e.summaries.CreateSummary(ctx, meetingID, models.SummaryTypeFinal, content); err != nil {
		return err
	}

	slog.Info("Action items annotated",
		"meeting_id", meetingID, "annotated", annotated, "total", len(content.ActionItems))
	e.publishSummaryUpdate(ctx, meetingID)
	return nil
}

// annotateItem asks the model for an owner and due date for one action
// item.
func (e *Executor) annotateItem(ctx context.Context, text string) (annotationResult, error) {
	raw, err := e.llm.Complete(ctx, prompt.BuildAnnotationPrompt(text))
	if err != nil {
		return annotationResult{}, classifyModelError(err)
	}

	jsonText, err := extractJSON(raw)
	if err != nil {
		return annotationResult{}, NonRetryable("malformed annotation output: %v", err)
	}
	var result annotationResult
	if err := json.Unmarshal([]byte(jsonText), &result); err != nil {
		return annotationResult{}, NonRetryable("malformed annotation output: %v", err)
	}
	return result, nil
}
