// Code generated by ent, DO NOT EDIT.

package segment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/recapcrew/recap/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Segment {
	return predicate.Segment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Segment {
	return predicate.Segment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Segment {
	return predicate.Segment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Segment {
	return predicate.Segment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Segment {
	return predicate.Segment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Segment {
	return predicate.Segment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Segment {
	return predicate.Segment(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Segment {
	return predicate.Segment(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Segment {
	return predicate.Segment(sql.FieldContainsFold(FieldID, id))
}

// MeetingID applies equality check predicate on the "meeting_id" field. It's identical to MeetingIDEQ.
func MeetingID(v string) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldMeetingID, v))
}

// Speaker applies equality check predicate on the "speaker" field. It's identical to SpeakerEQ.
func Speaker(v string) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldSpeaker, v))
}

// Ts applies equality check predicate on the "ts" field. It's identical to TsEQ.
func Ts(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldTs, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldText, v))
}

// TokenCount applies equality check predicate on the "token_count" field. It's identical to TokenCountEQ.
func TokenCount(v int) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldTokenCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldCreatedAt, v))
}

// SummarizedAt applies equality check predicate on the "summarized_at" field. It's identical to SummarizedAtEQ.
func SummarizedAt(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldSummarizedAt, v))
}

// MeetingIDEQ applies the EQ predicate on the "meeting_id" field.
func MeetingIDEQ(v string) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldMeetingID, v))
}

// MeetingIDNEQ applies the NEQ predicate on the "meeting_id" field.
func MeetingIDNEQ(v string) predicate.Segment {
	return predicate.Segment(sql.FieldNEQ(FieldMeetingID, v))
}

// MeetingIDIn applies the In predicate on the "meeting_id" field.
func MeetingIDIn(vs ...string) predicate.Segment {
	return predicate.Segment(sql.FieldIn(FieldMeetingID, vs...))
}

// MeetingIDNotIn applies the NotIn predicate on the "meeting_id" field.
func MeetingIDNotIn(vs ...string) predicate.Segment {
	return predicate.Segment(sql.FieldNotIn(FieldMeetingID, vs...))
}

// MeetingIDGT applies the GT predicate on the "meeting_id" field.
func MeetingIDGT(v string) predicate.Segment {
	return predicate.Segment(sql.FieldGT(FieldMeetingID, v))
}

// MeetingIDGTE applies the GTE predicate on the "meeting_id" field.
func MeetingIDGTE(v string) predicate.Segment {
	return predicate.Segment(sql.FieldGTE(FieldMeetingID, v))
}

// MeetingIDLT applies the LT predicate on the "meeting_id" field.
func MeetingIDLT(v string) predicate.Segment {
	return predicate.Segment(sql.FieldLT(FieldMeetingID, v))
}

// MeetingIDLTE applies the LTE predicate on the "meeting_id" field.
func MeetingIDLTE(v string) predicate.Segment {
	return predicate.Segment(sql.FieldLTE(FieldMeetingID, v))
}

// MeetingIDContains applies the Contains predicate on the "meeting_id" field.
func MeetingIDContains(v string) predicate.Segment {
	return predicate.Segment(sql.FieldContains(FieldMeetingID, v))
}

// MeetingIDHasPrefix applies the HasPrefix predicate on the "meeting_id" field.
func MeetingIDHasPrefix(v string) predicate.Segment {
	return predicate.Segment(sql.FieldHasPrefix(FieldMeetingID, v))
}

// MeetingIDHasSuffix applies the HasSuffix predicate on the "meeting_id" field.
func MeetingIDHasSuffix(v string) predicate.Segment {
	return predicate.Segment(sql.FieldHasSuffix(FieldMeetingID, v))
}

// MeetingIDEqualFold applies the EqualFold predicate on the "meeting_id" field.
func MeetingIDEqualFold(v string) predicate.Segment {
	return predicate.Segment(sql.FieldEqualFold(FieldMeetingID, v))
}

// MeetingIDContainsFold applies the ContainsFold predicate on the "meeting_id" field.
func MeetingIDContainsFold(v string) predicate.Segment {
	return predicate.Segment(sql.FieldContainsFold(FieldMeetingID, v))
}

// SpeakerEQ applies the EQ predicate on the "speaker" field.
func SpeakerEQ(v string) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldSpeaker, v))
}

// SpeakerNEQ applies the NEQ predicate on the "speaker" field.
func SpeakerNEQ(v string) predicate.Segment {
	return predicate.Segment(sql.FieldNEQ(FieldSpeaker, v))
}

// SpeakerIn applies the In predicate on the "speaker" field.
func SpeakerIn(vs ...string) predicate.Segment {
	return predicate.Segment(sql.FieldIn(FieldSpeaker, vs...))
}

// SpeakerNotIn applies the NotIn predicate on the "speaker" field.
func SpeakerNotIn(vs ...string) predicate.Segment {
	return predicate.Segment(sql.FieldNotIn(FieldSpeaker, vs...))
}

// SpeakerGT applies the GT predicate on the "speaker" field.
func SpeakerGT(v string) predicate.Segment {
	return predicate.Segment(sql.FieldGT(FieldSpeaker, v))
}

// SpeakerGTE applies the GTE predicate on the "speaker" field.
func SpeakerGTE(v string) predicate.Segment {
	return predicate.Segment(sql.FieldGTE(FieldSpeaker, v))
}

// SpeakerLT applies the LT predicate on the "speaker" field.
func SpeakerLT(v string) predicate.Segment {
	return predicate.Segment(sql.FieldLT(FieldSpeaker, v))
}

// SpeakerLTE applies the LTE predicate on the "speaker" field.
func SpeakerLTE(v string) predicate.Segment {
	return predicate.Segment(sql.FieldLTE(FieldSpeaker, v))
}

// SpeakerContains applies the Contains predicate on the "speaker" field.
func SpeakerContains(v string) predicate.Segment {
	return predicate.Segment(sql.FieldContains(FieldSpeaker, v))
}

// SpeakerHasPrefix applies the HasPrefix predicate on the "speaker" field.
func SpeakerHasPrefix(v string) predicate.Segment {
	return predicate.Segment(sql.FieldHasPrefix(FieldSpeaker, v))
}

// SpeakerHasSuffix applies the HasSuffix predicate on the "speaker" field.
func SpeakerHasSuffix(v string) predicate.Segment {
	return predicate.Segment(sql.FieldHasSuffix(FieldSpeaker, v))
}

// SpeakerEqualFold applies the EqualFold predicate on the "speaker" field.
func SpeakerEqualFold(v string) predicate.Segment {
	return predicate.Segment(sql.FieldEqualFold(FieldSpeaker, v))
}

// SpeakerContainsFold applies the ContainsFold predicate on the "speaker" field.
func SpeakerContainsFold(v string) predicate.Segment {
	return predicate.Segment(sql.FieldContainsFold(FieldSpeaker, v))
}

// TsEQ applies the EQ predicate on the "ts" field.
func TsEQ(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldTs, v))
}

// TsNEQ applies the NEQ predicate on the "ts" field.
func TsNEQ(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldNEQ(FieldTs, v))
}

// TsIn applies the In predicate on the "ts" field.
func TsIn(vs ...time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldIn(FieldTs, vs...))
}

// TsNotIn applies the NotIn predicate on the "ts" field.
func TsNotIn(vs ...time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldNotIn(FieldTs, vs...))
}

// TsGT applies the GT predicate on the "ts" field.
func TsGT(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldGT(FieldTs, v))
}

// TsGTE applies the GTE predicate on the "ts" field.
func TsGTE(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldGTE(FieldTs, v))
}

// TsLT applies the LT predicate on the "ts" field.
func TsLT(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldLT(FieldTs, v))
}

// TsLTE applies the LTE predicate on the "ts" field.
func TsLTE(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldLTE(FieldTs, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.Segment {
	return predicate.Segment(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.Segment {
	return predicate.Segment(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.Segment {
	return predicate.Segment(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.Segment {
	return predicate.Segment(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.Segment {
	return predicate.Segment(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.Segment {
	return predicate.Segment(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.Segment {
	return predicate.Segment(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.Segment {
	return predicate.Segment(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.Segment {
	return predicate.Segment(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.Segment {
	return predicate.Segment(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.Segment {
	return predicate.Segment(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.Segment {
	return predicate.Segment(sql.FieldContainsFold(FieldText, v))
}

// TokenCountEQ applies the EQ predicate on the "token_count" field.
func TokenCountEQ(v int) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldTokenCount, v))
}

// TokenCountNEQ applies the NEQ predicate on the "token_count" field.
func TokenCountNEQ(v int) predicate.Segment {
	return predicate.Segment(sql.FieldNEQ(FieldTokenCount, v))
}

// TokenCountIn applies the In predicate on the "token_count" field.
func TokenCountIn(vs ...int) predicate.Segment {
	return predicate.Segment(sql.FieldIn(FieldTokenCount, vs...))
}

// TokenCountNotIn applies the NotIn predicate on the "token_count" field.
func TokenCountNotIn(vs ...int) predicate.Segment {
	return predicate.Segment(sql.FieldNotIn(FieldTokenCount, vs...))
}

// TokenCountGT applies the GT predicate on the "token_count" field.
func TokenCountGT(v int) predicate.Segment {
	return predicate.Segment(sql.FieldGT(FieldTokenCount, v))
}

// TokenCountGTE applies the GTE predicate on the "token_count" field.
func TokenCountGTE(v int) predicate.Segment {
	return predicate.Segment(sql.FieldGTE(FieldTokenCount, v))
}

// TokenCountLT applies the LT predicate on the "token_count" field.
func TokenCountLT(v int) predicate.Segment {
	return predicate.Segment(sql.FieldLT(FieldTokenCount, v))
}

// TokenCountLTE applies the LTE predicate on the "token_count" field.
func TokenCountLTE(v int) predicate.Segment {
	return predicate.Segment(sql.FieldLTE(FieldTokenCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldLTE(FieldCreatedAt, v))
}

// SummarizedAtEQ applies the EQ predicate on the "summarized_at" field.
func SummarizedAtEQ(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldSummarizedAt, v))
}

// SummarizedAtNEQ applies the NEQ predicate on the "summarized_at" field.
func SummarizedAtNEQ(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldNEQ(FieldSummarizedAt, v))
}

// SummarizedAtIn applies the In predicate on the "summarized_at" field.
func SummarizedAtIn(vs ...time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldIn(FieldSummarizedAt, vs...))
}

// SummarizedAtNotIn applies the NotIn predicate on the "summarized_at" field.
func SummarizedAtNotIn(vs ...time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldNotIn(FieldSummarizedAt, vs...))
}

// SummarizedAtGT applies the GT predicate on the "summarized_at" field.
func SummarizedAtGT(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldGT(FieldSummarizedAt, v))
}

// SummarizedAtGTE applies the GTE predicate on the "summarized_at" field.
func SummarizedAtGTE(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldGTE(FieldSummarizedAt, v))
}

// SummarizedAtLT applies the LT predicate on the "summarized_at" field.
func SummarizedAtLT(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldLT(FieldSummarizedAt, v))
}

// SummarizedAtLTE applies the LTE predicate on the "summarized_at" field.
func SummarizedAtLTE(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldLTE(FieldSummarizedAt, v))
}

// SummarizedAtIsNil applies the IsNil predicate on the "summarized_at" field.
func SummarizedAtIsNil() predicate.Segment {
	return predicate.Segment(sql.FieldIsNull(FieldSummarizedAt))
}

// SummarizedAtNotNil applies the NotNil predicate on the "summarized_at" field.
func SummarizedAtNotNil() predicate.Segment {
	return predicate.Segment(sql.FieldNotNull(FieldSummarizedAt))
}

// HasMeeting applies the HasEdge predicate on the "meeting" edge.
func HasMeeting() predicate.Segment {
	return predicate.Segment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MeetingTable, MeetingColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMeetingWith applies the HasEdge predicate on the "meeting" edge with a given conditions (other predicates).
func HasMeetingWith(preds ...predicate.Meeting) predicate.Segment {
	return predicate.Segment(func(s *sql.Selector) {
		step := newMeetingStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Segment) predicate.Segment {
	return predicate.Segment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Segment) predicate.Segment {
	return predicate.Segment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Segment) predicate.Segment {
	return predicate.Segment(sql.NotPredicates(p))
}
