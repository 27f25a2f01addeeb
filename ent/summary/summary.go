// Code generated by ent, DO NOT EDIT.

package summary

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the summary type in the database.
	Label = "summary"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "summary_id"
	// FieldMeetingID holds the string denoting the meeting_id field in the database.
	FieldMeetingID = "meeting_id"
	// FieldSummaryType holds the string denoting the summary_type field in the database.
	FieldSummaryType = "summary_type"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeMeeting holds the string denoting the meeting edge name in mutations.
	EdgeMeeting = "meeting"
	// MeetingFieldID holds the string denoting the ID field of the Meeting.
	MeetingFieldID = "meeting_id"
	// Table holds the table name of the summary in the database.
	Table = "summaries"
	// MeetingTable is the table that holds the meeting relation/edge.
	MeetingTable = "summaries"
	// MeetingInverseTable is the table name for the Meeting entity.
	// It exists in this package in order to avoid circular dependency with the "meeting" package.
	MeetingInverseTable = "meetings"
	// MeetingColumn is the table column denoting the meeting relation/edge.
	MeetingColumn = "meeting_id"
)

// Columns holds all SQL columns for summary fields.
var Columns = []string{
	FieldID,
	FieldMeetingID,
	FieldSummaryType,
	FieldContent,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// SummaryType defines the type for the "summary_type" enum field.
type SummaryType string

// SummaryType values.
const (
	SummaryTypeIncremental SummaryType = "incremental"
	SummaryTypeFinal       SummaryType = "final"
)

func (st SummaryType) String() string {
	return string(st)
}

// SummaryTypeValidator is a validator for the "summary_type" field enum values. It is called by the builders before save.
func SummaryTypeValidator(st SummaryType) error {
	switch st {
	case SummaryTypeIncremental, SummaryTypeFinal:
		return nil
	default:
		return fmt.Errorf("summary: invalid enum value for summary_type field: %q", st)
	}
}

// OrderOption defines the ordering options for the Summary queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMeetingID orders the results by the meeting_id field.
func ByMeetingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeetingID, opts...).ToFunc()
}

// BySummaryType orders the results by the summary_type field.
func BySummaryType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummaryType, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByMeetingField orders the results by meeting field.
func ByMeetingField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMeetingStep(), sql.OrderByField(field, opts...))
	}
}
func newMeetingStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MeetingInverseTable, MeetingFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, MeetingTable, MeetingColumn),
	)
}
