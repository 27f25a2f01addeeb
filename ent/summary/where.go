// Code generated by ent, DO NOT EDIT.

package summary

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/recapcrew/recap/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Summary {
	return predicate.Summary(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Summary {
	return predicate.Summary(sql.FieldContainsFold(FieldID, id))
}

// MeetingID applies equality check predicate on the "meeting_id" field. It's identical to MeetingIDEQ.
func MeetingID(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldMeetingID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldCreatedAt, v))
}

// MeetingIDEQ applies the EQ predicate on the "meeting_id" field.
func MeetingIDEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldMeetingID, v))
}

// MeetingIDNEQ applies the NEQ predicate on the "meeting_id" field.
func MeetingIDNEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldMeetingID, v))
}

// MeetingIDIn applies the In predicate on the "meeting_id" field.
func MeetingIDIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldMeetingID, vs...))
}

// MeetingIDNotIn applies the NotIn predicate on the "meeting_id" field.
func MeetingIDNotIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldMeetingID, vs...))
}

// MeetingIDGT applies the GT predicate on the "meeting_id" field.
func MeetingIDGT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldMeetingID, v))
}

// MeetingIDGTE applies the GTE predicate on the "meeting_id" field.
func MeetingIDGTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldMeetingID, v))
}

// MeetingIDLT applies the LT predicate on the "meeting_id" field.
func MeetingIDLT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldMeetingID, v))
}

// MeetingIDLTE applies the LTE predicate on the "meeting_id" field.
func MeetingIDLTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldMeetingID, v))
}

// MeetingIDContains applies the Contains predicate on the "meeting_id" field.
func MeetingIDContains(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContains(FieldMeetingID, v))
}

// MeetingIDHasPrefix applies the HasPrefix predicate on the "meeting_id" field.
func MeetingIDHasPrefix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasPrefix(FieldMeetingID, v))
}

// MeetingIDHasSuffix applies the HasSuffix predicate on the "meeting_id" field.
func MeetingIDHasSuffix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasSuffix(FieldMeetingID, v))
}

// MeetingIDEqualFold applies the EqualFold predicate on the "meeting_id" field.
func MeetingIDEqualFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEqualFold(FieldMeetingID, v))
}

// MeetingIDContainsFold applies the ContainsFold predicate on the "meeting_id" field.
func MeetingIDContainsFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContainsFold(FieldMeetingID, v))
}

// SummaryTypeEQ applies the EQ predicate on the "summary_type" field.
func SummaryTypeEQ(v SummaryType) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldSummaryType, v))
}

// SummaryTypeNEQ applies the NEQ predicate on the "summary_type" field.
func SummaryTypeNEQ(v SummaryType) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldSummaryType, v))
}

// SummaryTypeIn applies the In predicate on the "summary_type" field.
func SummaryTypeIn(vs ...SummaryType) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldSummaryType, vs...))
}

// SummaryTypeNotIn applies the NotIn predicate on the "summary_type" field.
func SummaryTypeNotIn(vs ...SummaryType) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldSummaryType, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldCreatedAt, v))
}

// HasMeeting applies the HasEdge predicate on the "meeting" edge.
func HasMeeting() predicate.Summary {
	return predicate.Summary(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MeetingTable, MeetingColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMeetingWith applies the HasEdge predicate on the "meeting" edge with a given conditions (other predicates).
func HasMeetingWith(preds ...predicate.Meeting) predicate.Summary {
	return predicate.Summary(func(s *sql.Selector) {
		step := newMeetingStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Summary) predicate.Summary {
	return predicate.Summary(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Summary) predicate.Summary {
	return predicate.Summary(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Summary) predicate.Summary {
	return predicate.Summary(sql.NotPredicates(p))
}
