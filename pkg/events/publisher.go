package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// EventPublisher broadcasts events via PostgreSQL NOTIFY so every
// replica's listener sees them, including the publishing process's own.
// Events are not persisted: delivery is best-effort and clients
// reconcile over REST.
type EventPublisher struct {
	db *sql.DB
}

// NewEventPublisher creates a new EventPublisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db}
}

// PublishSummaryUpdate broadcasts a summary_update event for a meeting.
func (p *EventPublisher) PublishSummaryUpdate(ctx context.Context, payload SummaryUpdatePayload) error {
	if payload.Type == "" {
		payload.Type = EventTypeSummaryUpdate
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal SummaryUpdatePayload: %w", err)
	}
	return p.notify(ctx, payloadJSON)
}

// PublishSegmentAdded broadcasts a segment_added event for a meeting.
func (p *EventPublisher) PublishSegmentAdded(ctx context.Context, payload SegmentAddedPayload) error {
	if payload.Type == "" {
		payload.Type = EventTypeSegmentAdded
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal SegmentAddedPayload: %w", err)
	}
	return p.notify(ctx, payloadJSON)
}

// notify broadcasts a pre-marshaled payload on the shared NOTIFY channel.
func (p *EventPublisher) notify(ctx context.Context, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", NotifyChannel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// envelope with only the routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload keeps only the fields a client needs to route
// the event and re-fetch state over REST.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type      string `json:"type"`
		MeetingID string `json:"meeting_id"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncBytes, err := json.Marshal(map[string]any{
		"type":       routing.Type,
		"meeting_id": routing.MeetingID,
		"truncated":  true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
