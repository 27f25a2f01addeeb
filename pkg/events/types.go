// Package events provides real-time event delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-replica distribution.
//
// All replicas LISTEN on a single Postgres channel. Each NOTIFY payload
// carries the meeting id it belongs to; the listener routes it to the
// in-process meeting channel and the ConnectionManager fans it out to
// the WebSocket clients watching that meeting.
//
// Delivery is best-effort and at-most-once. Events carry no content
// beyond identifiers: a client that misses one reconciles by
// re-fetching the latest summary over REST.
package events

// Event types carried on the NOTIFY channel.
const (
	// EventTypeSummaryUpdate fires whenever a new summary row is
	// persisted for a meeting, incremental or final.
	EventTypeSummaryUpdate = "summary_update"

	// EventTypeSegmentAdded fires after a transcript segment is
	// appended to a meeting.
	EventTypeSegmentAdded = "segment_added"
)

// NotifyChannel is the single PostgreSQL NOTIFY channel all replicas
// LISTEN on. Per-meeting routing happens in-process via the meeting id
// inside the payload.
const NotifyChannel = "summary_update"

// MeetingChannel returns the in-process channel name for a meeting's
// events. Format: "meeting:{meeting_id}"
func MeetingChannel(meetingID string) string {
	return "meeting:" + meetingID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action  string `json:"action"`            // "subscribe", "unsubscribe", "ping"
	Channel string `json:"channel,omitempty"` // Channel name (e.g., "meeting:abc-123")
}
