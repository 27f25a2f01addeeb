// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/recapcrew/recap/ent/meeting"
	"github.com/recapcrew/recap/ent/segment"
)

// Segment is the model entity for the Segment schema.
type Segment struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// MeetingID holds the value of the "meeting_id" field.
	MeetingID string `json:"meeting_id,omitempty"`
	// Speaker holds the value of the "speaker" field.
	Speaker string `json:"speaker,omitempty"`
	// Speaker timestamp from the ingest payload, not arrival time
	Ts time.Time `json:"ts,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// TokenCount holds the value of the "token_count" field.
	TokenCount int `json:"token_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Set when an incremental summary covering this segment lands; NULL segments form the next chunk-summary window
	SummarizedAt *time.Time `json:"summarized_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SegmentQuery when eager-loading is set.
	Edges        SegmentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SegmentEdges holds the relations/edges for other nodes in the graph.
type SegmentEdges struct {
	// Meeting holds the value of the meeting edge.
	Meeting *Meeting `json:"meeting,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// MeetingOrErr returns the Meeting value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SegmentEdges) MeetingOrErr() (*Meeting, error) {
	if e.Meeting != nil {
		return e.Meeting, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: meeting.Label}
	}
	return nil, &NotLoadedError{edge: "meeting"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Segment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case segment.FieldTokenCount:
			values[i] = new(sql.NullInt64)
		case segment.FieldID, segment.FieldMeetingID, segment.FieldSpeaker, segment.FieldText:
			values[i] = new(sql.NullString)
		case segment.FieldTs, segment.FieldCreatedAt, segment.FieldSummarizedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Segment fields.
func (_m *Segment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case segment.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case segment.FieldMeetingID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meeting_id", values[i])
			} else if value.Valid {
				_m.MeetingID = value.String
			}
		case segment.FieldSpeaker:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field speaker", values[i])
			} else if value.Valid {
				_m.Speaker = value.String
			}
		case segment.FieldTs:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ts", values[i])
			} else if value.Valid {
				_m.Ts = value.Time
			}
		case segment.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case segment.FieldTokenCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field token_count", values[i])
			} else if value.Valid {
				_m.TokenCount = int(value.Int64)
			}
		case segment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case segment.FieldSummarizedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field summarized_at", values[i])
			} else if value.Valid {
				_m.SummarizedAt = new(time.Time)
				*_m.SummarizedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Segment.
// This includes values selected through modifiers, order, etc.
func (_m *Segment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMeeting queries the "meeting" edge of the Segment entity.
func (_m *Segment) QueryMeeting() *MeetingQuery {
	return NewSegmentClient(_m.config).QueryMeeting(_m)
}

// Update returns a builder for updating this Segment.
// Note that you need to call Segment.Unwrap() before calling this method if this Segment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Segment) Update() *SegmentUpdateOne {
	return NewSegmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Segment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Segment) Unwrap() *Segment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Segment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Segment) String() string {
	var builder strings.Builder
	builder.WriteString("Segment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("meeting_id=")
	builder.WriteString(_m.MeetingID)
	builder.WriteString(", ")
	builder.WriteString("speaker=")
	builder.WriteString(_m.Speaker)
	builder.WriteString(", ")
	builder.WriteString("ts=")
	builder.WriteString(_m.Ts.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("token_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokenCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.SummarizedAt; v != nil {
		builder.WriteString("summarized_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Segments is a parsable slice of Segment.
type Segments []*Segment
