// Code generated by ent, DO NOT EDIT.

package meeting

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the meeting type in the database.
	Label = "meeting"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "meeting_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldFinalized holds the string denoting the finalized field in the database.
	FieldFinalized = "finalized"
	// FieldFinalizedAt holds the string denoting the finalized_at field in the database.
	FieldFinalizedAt = "finalized_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSegments holds the string denoting the segments edge name in mutations.
	EdgeSegments = "segments"
	// EdgeSummaries holds the string denoting the summaries edge name in mutations.
	EdgeSummaries = "summaries"
	// EdgeJobs holds the string denoting the jobs edge name in mutations.
	EdgeJobs = "jobs"
	// SegmentFieldID holds the string denoting the ID field of the Segment.
	SegmentFieldID = "segment_id"
	// SummaryFieldID holds the string denoting the ID field of the Summary.
	SummaryFieldID = "summary_id"
	// JobFieldID holds the string denoting the ID field of the Job.
	JobFieldID = "job_id"
	// Table holds the table name of the meeting in the database.
	Table = "meetings"
	// SegmentsTable is the table that holds the segments relation/edge.
	SegmentsTable = "segments"
	// SegmentsInverseTable is the table name for the Segment entity.
	// It exists in this package in order to avoid circular dependency with the "segment" package.
	SegmentsInverseTable = "segments"
	// SegmentsColumn is the table column denoting the segments relation/edge.
	SegmentsColumn = "meeting_id"
	// SummariesTable is the table that holds the summaries relation/edge.
	SummariesTable = "summaries"
	// SummariesInverseTable is the table name for the Summary entity.
	// It exists in this package in order to avoid circular dependency with the "summary" package.
	SummariesInverseTable = "summaries"
	// SummariesColumn is the table column denoting the summaries relation/edge.
	SummariesColumn = "meeting_id"
	// JobsTable is the table that holds the jobs relation/edge.
	JobsTable = "jobs"
	// JobsInverseTable is the table name for the Job entity.
	// It exists in this package in order to avoid circular dependency with the "job" package.
	JobsInverseTable = "jobs"
	// JobsColumn is the table column denoting the jobs relation/edge.
	JobsColumn = "meeting_id"
)

// Columns holds all SQL columns for meeting fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldMetadata,
	FieldFinalized,
	FieldFinalizedAt,
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
	// DefaultFinalized holds the default value on creation for the "finalized" field.
	DefaultFinalized bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Meeting queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByFinalized orders the results by the finalized field.
func ByFinalized(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalized, opts...).ToFunc()
}

// ByFinalizedAt orders the results by the finalized_at field.
func ByFinalizedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalizedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySegmentsCount orders the results by segments count.
func BySegmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSegmentsStep(), opts...)
	}
}

// BySegments orders the results by segments terms.
func BySegments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSegmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySummariesCount orders the results by summaries count.
func BySummariesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSummariesStep(), opts...)
	}
}

// BySummaries orders the results by summaries terms.
func BySummaries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSummariesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByJobsCount orders the results by jobs count.
func ByJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newJobsStep(), opts...)
	}
}

// ByJobs orders the results by jobs terms.
func ByJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSegmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SegmentsInverseTable, SegmentFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SegmentsTable, SegmentsColumn),
	)
}
func newSummariesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SummariesInverseTable, SummaryFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SummariesTable, SummariesColumn),
	)
}
func newJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobsInverseTable, JobFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
	)
}
