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
	"github.com/recapcrew/recap/ent/summary"
)

// Summary is the model entity for the Summary schema.
type Summary struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// MeetingID holds the value of the "meeting_id" field.
	MeetingID string `json:"meeting_id,omitempty"`
	// SummaryType holds the value of the "summary_type" field.
	SummaryType summary.SummaryType `json:"summary_type,omitempty"`
	// models.SummaryContent serialized as JSON
	Content map[string]interface{} `json:"content,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SummaryQuery when eager-loading is set.
	Edges        SummaryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SummaryEdges holds the relations/edges for other nodes in the graph.
type SummaryEdges struct {
	// Meeting holds the value of the meeting edge.
	Meeting *Meeting `json:"meeting,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// MeetingOrErr returns the Meeting value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SummaryEdges) MeetingOrErr() (*Meeting, error) {
	if e.Meeting != nil {
		return e.Meeting, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: meeting.Label}
	}
	return nil, &NotLoadedError{edge: "meeting"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Summary) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case summary.FieldContent:
			values[i] = new([]byte)
		case summary.FieldID, summary.FieldMeetingID, summary.FieldSummaryType:
			values[i] = new(sql.NullString)
		case summary.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Summary fields.
func (_m *Summary) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case summary.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case summary.FieldMeetingID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meeting_id", values[i])
			} else if value.Valid {
				_m.MeetingID = value.String
			}
		case summary.FieldSummaryType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary_type", values[i])
			} else if value.Valid {
				_m.SummaryType = summary.SummaryType(value.String)
			}
		case summary.FieldContent:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Content); err != nil {
					return fmt.Errorf("unmarshal field content: %w", err)
				}
			}
		case summary.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Summary.
// This includes values selected through modifiers, order, etc.
func (_m *Summary) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMeeting queries the "meeting" edge of the Summary entity.
func (_m *Summary) QueryMeeting() *MeetingQuery {
	return NewSummaryClient(_m.config).QueryMeeting(_m)
}

// Update returns a builder for updating this Summary.
// Note that you need to call Summary.Unwrap() before calling this method if this Summary
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Summary) Update() *SummaryUpdateOne {
	return NewSummaryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Summary entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Summary) Unwrap() *Summary {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Summary is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Summary) String() string {
	var builder strings.Builder
	builder.WriteString("Summary(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("meeting_id=")
	builder.WriteString(_m.MeetingID)
	builder.WriteString(", ")
	builder.WriteString("summary_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.SummaryType))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(fmt.Sprintf("%v", _m.Content))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Summaries is a parsable slice of Summary.
type Summaries []*Summary
