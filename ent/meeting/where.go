// Code generated by ent, DO NOT EDIT.

package meeting

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/recapcrew/recap/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContainsFold(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldTitle, v))
}

// Finalized applies equality check predicate on the "finalized" field. It's identical to FinalizedEQ.
func Finalized(v bool) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldFinalized, v))
}

// FinalizedAt applies equality check predicate on the "finalized_at" field. It's identical to FinalizedAtEQ.
func FinalizedAt(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldFinalizedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldCreatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContainsFold(FieldTitle, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldMetadata))
}

// FinalizedEQ applies the EQ predicate on the "finalized" field.
func FinalizedEQ(v bool) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldFinalized, v))
}

// FinalizedNEQ applies the NEQ predicate on the "finalized" field.
func FinalizedNEQ(v bool) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldFinalized, v))
}

// FinalizedAtEQ applies the EQ predicate on the "finalized_at" field.
func FinalizedAtEQ(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldFinalizedAt, v))
}

// FinalizedAtNEQ applies the NEQ predicate on the "finalized_at" field.
func FinalizedAtNEQ(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldFinalizedAt, v))
}

// FinalizedAtIn applies the In predicate on the "finalized_at" field.
func FinalizedAtIn(vs ...time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldFinalizedAt, vs...))
}

// FinalizedAtNotIn applies the NotIn predicate on the "finalized_at" field.
func FinalizedAtNotIn(vs ...time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldFinalizedAt, vs...))
}

// FinalizedAtGT applies the GT predicate on the "finalized_at" field.
func FinalizedAtGT(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldFinalizedAt, v))
}

// FinalizedAtGTE applies the GTE predicate on the "finalized_at" field.
func FinalizedAtGTE(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldFinalizedAt, v))
}

// FinalizedAtLT applies the LT predicate on the "finalized_at" field.
func FinalizedAtLT(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldFinalizedAt, v))
}

// FinalizedAtLTE applies the LTE predicate on the "finalized_at" field.
func FinalizedAtLTE(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldFinalizedAt, v))
}

// FinalizedAtIsNil applies the IsNil predicate on the "finalized_at" field.
func FinalizedAtIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldFinalizedAt))
}

// FinalizedAtNotNil applies the NotNil predicate on the "finalized_at" field.
func FinalizedAtNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldFinalizedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSegments applies the HasEdge predicate on the "segments" edge.
func HasSegments() predicate.Meeting {
	return predicate.Meeting(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SegmentsTable, SegmentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSegmentsWith applies the HasEdge predicate on the "segments" edge with a given conditions (other predicates).
func HasSegmentsWith(preds ...predicate.Segment) predicate.Meeting {
	return predicate.Meeting(func(s *sql.Selector) {
		step := newSegmentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSummaries applies the HasEdge predicate on the "summaries" edge.
func HasSummaries() predicate.Meeting {
	return predicate.Meeting(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SummariesTable, SummariesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSummariesWith applies the HasEdge predicate on the "summaries" edge with a given conditions (other predicates).
func HasSummariesWith(preds ...predicate.Summary) predicate.Meeting {
	return predicate.Meeting(func(s *sql.Selector) {
		step := newSummariesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.Meeting {
	return predicate.Meeting(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.Job) predicate.Meeting {
	return predicate.Meeting(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Meeting) predicate.Meeting {
	return predicate.Meeting(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Meeting) predicate.Meeting {
	return predicate.Meeting(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Meeting) predicate.Meeting {
	return predicate.Meeting(sql.NotPredicates(p))
}
