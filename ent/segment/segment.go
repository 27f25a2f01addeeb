// Code generated by ent, DO NOT EDIT.

package segment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the segment type in the database.
	Label = "segment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "segment_id"
	// FieldMeetingID holds the string denoting the meeting_id field in the database.
	FieldMeetingID = "meeting_id"
	// FieldSpeaker holds the string denoting the speaker field in the database.
	FieldSpeaker = "speaker"
	// FieldTs holds the string denoting the ts field in the database.
	FieldTs = "ts"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldTokenCount holds the string denoting the token_count field in the database.
	FieldTokenCount = "token_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldSummarizedAt holds the string denoting the summarized_at field in the database.
	FieldSummarizedAt = "summarized_at"
	// EdgeMeeting holds the string denoting the meeting edge name in mutations.
	EdgeMeeting = "meeting"
	// MeetingFieldID holds the string denoting the ID field of the Meeting.
	MeetingFieldID = "meeting_id"
	// Table holds the table name of the segment in the database.
	Table = "segments"
	// MeetingTable is the table that holds the meeting relation/edge.
	MeetingTable = "segments"
	// MeetingInverseTable is the table name for the Meeting entity.
	// It exists in this package in order to avoid circular dependency with the "meeting" package.
	MeetingInverseTable = "meetings"
	// MeetingColumn is the table column denoting the meeting relation/edge.
	MeetingColumn = "meeting_id"
)

// Columns holds all SQL columns for segment fields.
var Columns = []string{
	FieldID,
	FieldMeetingID,
	FieldSpeaker,
	FieldTs,
	FieldText,
	FieldTokenCount,
	FieldCreatedAt,
	FieldSummarizedAt,
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
	// TokenCountValidator is a validator for the "token_count" field. It is called by the builders before save.
	TokenCountValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Segment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMeetingID orders the results by the meeting_id field.
func ByMeetingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeetingID, opts...).ToFunc()
}

// BySpeaker orders the results by the speaker field.
func BySpeaker(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpeaker, opts...).ToFunc()
}

// ByTs orders the results by the ts field.
func ByTs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTs, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByTokenCount orders the results by the token_count field.
func ByTokenCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokenCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySummarizedAt orders the results by the summarized_at field.
func BySummarizedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummarizedAt, opts...).ToFunc()
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
