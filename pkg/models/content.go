// Package models holds the value types shared across the pipeline:
// structured summary content, job types, and event payload shapes.
package models

import "encoding/json"

// Decision is a decision extracted from the transcript.
type Decision struct {
	Text             string   `json:"text"`
	Confidence       float64  `json:"confidence"`
	SourceSegmentIDs []string `json:"source_segment_ids,omitempty"`
}

// ActionItem is a task extracted from the transcript. Owner and due
// date are optional until the annotation pass fills them in.
type ActionItem struct {
	Text             string   `json:"text"`
	Owner            string   `json:"owner,omitempty"`
	DueDateISO       string   `json:"due_date_iso,omitempty"`
	Confidence       float64  `json:"confidence"`
	SourceSegmentIDs []string `json:"source_segment_ids,omitempty"`
}

// Topic is a discussion topic with extraction confidence.
type Topic struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// SummaryContent is the structured payload persisted per summary row.
type SummaryContent struct {
	Summary     string       `json:"summary"`
	Agenda      []string     `json:"agenda,omitempty"`
	Decisions   []Decision   `json:"decisions"`
	ActionItems []ActionItem `json:"action_items"`
	Topics      []Topic      `json:"topics"`
}

// ToMap converts the content to the generic map shape stored in the
// summaries JSON column.
func (c SummaryContent) ToMap() (map[string]interface{}, error) {
	raw, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// SummaryContentFromMap converts a stored JSON column value back into
// typed content.
func SummaryContentFromMap(m map[string]interface{}) (SummaryContent, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return SummaryContent{}, err
	}
	var c SummaryContent
	if err := json.Unmarshal(raw, &c); err != nil {
		return SummaryContent{}, err
	}
	return c, nil
}
