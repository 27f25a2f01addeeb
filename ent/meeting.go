// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/recapcrew/recap/ent/meeting"
)

// Meeting is the model entity for the Meeting schema.
type Meeting struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// Finalized holds the value of the "finalized" field.
	Finalized bool `json:"finalized,omitempty"`
	// Set exactly once when the meeting is finalized
	FinalizedAt *time.Time `json:"finalized_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MeetingQuery when eager-loading is set.
	Edges        MeetingEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MeetingEdges holds the relations/edges for other nodes in the graph.
type MeetingEdges struct {
	// Segments holds the value of the segments edge.
	Segments []*Segment `json:"segments,omitempty"`
	// Summaries holds the value of the summaries edge.
	Summaries []*Summary `json:"summaries,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*Job `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// SegmentsOrErr returns the Segments value or an error if the edge
// was not loaded in eager-loading.
func (e MeetingEdges) SegmentsOrErr() ([]*Segment, error) {
	if e.loadedTypes[0] {
		return e.Segments, nil
	}
	return nil, &NotLoadedError{edge: "segments"}
}

// SummariesOrErr returns the Summaries value or an error if the edge
// was not loaded in eager-loading.
func (e MeetingEdges) SummariesOrErr() ([]*Summary, error) {
	if e.loadedTypes[1] {
		return e.Summaries, nil
	}
	return nil, &NotLoadedError{edge: "summaries"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e MeetingEdges) JobsOrErr() ([]*Job, error) {
	if e.loadedTypes[2] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Meeting) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case meeting.FieldMetadata:
			values[i] = new([]byte)
		case meeting.FieldFinalized:
			values[i] = new(sql.NullBool)
		case meeting.FieldID, meeting.FieldTitle:
			values[i] = new(sql.NullString)
		case meeting.FieldFinalizedAt, meeting.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Meeting fields.
func (_m *Meeting) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case meeting.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case meeting.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case meeting.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case meeting.FieldFinalized:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field finalized", values[i])
			} else if value.Valid {
				_m.Finalized = value.Bool
			}
		case meeting.FieldFinalizedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finalized_at", values[i])
			} else if value.Valid {
				_m.FinalizedAt = new(time.Time)
				*_m.FinalizedAt = value.Time
			}
		case meeting.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Meeting.
// This includes values selected through modifiers, order, etc.
func (_m *Meeting) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySegments queries the "segments" edge of the Meeting entity.
func (_m *Meeting) QuerySegments() *SegmentQuery {
	return NewMeetingClient(_m.config).QuerySegments(_m)
}

// QuerySummaries queries the "summaries" edge of the Meeting entity.
func (_m *Meeting) QuerySummaries() *SummaryQuery {
	return NewMeetingClient(_m.config).QuerySummaries(_m)
}

// QueryJobs queries the "jobs" edge of the Meeting entity.
func (_m *Meeting) QueryJobs() *JobQuery {
	return NewMeetingClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this Meeting.
// Note that you need to call Meeting.Unwrap() before calling this method if this Meeting
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Meeting) Update() *MeetingUpdateOne {
	return NewMeetingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Meeting entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Meeting) Unwrap() *Meeting {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Meeting is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Meeting) String() string {
	var builder strings.Builder
	builder.WriteString("Meeting(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("finalized=")
	builder.WriteString(fmt.Sprintf("%v", _m.Finalized))
	builder.WriteString(", ")
	if v := _m.FinalizedAt; v != nil {
		builder.WriteString("finalized_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Meetings is a parsable slice of Meeting.
type Meetings []*Meeting
