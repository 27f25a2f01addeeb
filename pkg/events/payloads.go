package events

// SummaryUpdatePayload announces that a meeting has a new summary.
// Intentionally content-free: clients fetch the summary over REST.
type SummaryUpdatePayload struct {
	Type      string `json:"type"`       // EventTypeSummaryUpdate
	MeetingID string `json:"meeting_id"` // Owning meeting
}

// SegmentAddedPayload announces that a transcript segment was appended.
type SegmentAddedPayload struct {
	Type      string `json:"type"`       // EventTypeSegmentAdded
	MeetingID string `json:"meeting_id"` // Owning meeting
	SegmentID string `json:"segment_id"` // The new segment
	Count     int    `json:"count"`      // Total segments in the meeting after the append
}

// NewSummaryUpdate builds a SummaryUpdatePayload with the type field set.
func NewSummaryUpdate(meetingID string) SummaryUpdatePayload {
	return SummaryUpdatePayload{
		Type:      EventTypeSummaryUpdate,
		MeetingID: meetingID,
	}
}

// NewSegmentAdded builds a SegmentAddedPayload with the type field set.
func NewSegmentAdded(meetingID, segmentID string, count int) SegmentAddedPayload {
	return SegmentAddedPayload{
		Type:      EventTypeSegmentAdded,
		MeetingID: meetingID,
		SegmentID: segmentID,
		Count:     count,
	}
}
