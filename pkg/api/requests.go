package api

// CreateMeetingRequest is the HTTP request body for POST /api/v1/meetings.
type CreateMeetingRequest struct {
	Title    string         `json:"title"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// IngestSegmentRequest is the HTTP request body for POST /api/v1/ingest/segment.
// TimestampISO is RFC3339; it is the speaker timestamp, not the arrival
// time.
type IngestSegmentRequest struct {
	MeetingID    string `json:"meeting_id"`
	Speaker      string `json:"speaker"`
	TimestampISO string `json:"timestamp_iso"`
	Text         string `json:"text_segment"`
}
