// Code generated by ent, DO NOT EDIT.

package job

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/recapcrew/recap/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldID, id))
}

// MeetingID applies equality check predicate on the "meeting_id" field. It's identical to MeetingIDEQ.
func MeetingID(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldMeetingID, v))
}

// JobType applies equality check predicate on the "job_type" field. It's identical to JobTypeEQ.
func JobType(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldJobType, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldAttempts, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLastError, v))
}

// ClaimedBy applies equality check predicate on the "claimed_by" field. It's identical to ClaimedByEQ.
func ClaimedBy(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldClaimedBy, v))
}

// LastHeartbeat applies equality check predicate on the "last_heartbeat" field. It's identical to LastHeartbeatEQ.
func LastHeartbeat(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLastHeartbeat, v))
}

// RunAfter applies equality check predicate on the "run_after" field. It's identical to RunAfterEQ.
func RunAfter(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldRunAfter, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldUpdatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCompletedAt, v))
}

// MeetingIDEQ applies the EQ predicate on the "meeting_id" field.
func MeetingIDEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldMeetingID, v))
}

// MeetingIDNEQ applies the NEQ predicate on the "meeting_id" field.
func MeetingIDNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldMeetingID, v))
}

// MeetingIDIn applies the In predicate on the "meeting_id" field.
func MeetingIDIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldMeetingID, vs...))
}

// MeetingIDNotIn applies the NotIn predicate on the "meeting_id" field.
func MeetingIDNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldMeetingID, vs...))
}

// MeetingIDGT applies the GT predicate on the "meeting_id" field.
func MeetingIDGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldMeetingID, v))
}

// MeetingIDGTE applies the GTE predicate on the "meeting_id" field.
func MeetingIDGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldMeetingID, v))
}

// MeetingIDLT applies the LT predicate on the "meeting_id" field.
func MeetingIDLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldMeetingID, v))
}

// MeetingIDLTE applies the LTE predicate on the "meeting_id" field.
func MeetingIDLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldMeetingID, v))
}

// MeetingIDContains applies the Contains predicate on the "meeting_id" field.
func MeetingIDContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldMeetingID, v))
}

// MeetingIDHasPrefix applies the HasPrefix predicate on the "meeting_id" field.
func MeetingIDHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldMeetingID, v))
}

// MeetingIDHasSuffix applies the HasSuffix predicate on the "meeting_id" field.
func MeetingIDHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldMeetingID, v))
}

// MeetingIDIsNil applies the IsNil predicate on the "meeting_id" field.
func MeetingIDIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldMeetingID))
}

// MeetingIDNotNil applies the NotNil predicate on the "meeting_id" field.
func MeetingIDNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldMeetingID))
}

// MeetingIDEqualFold applies the EqualFold predicate on the "meeting_id" field.
func MeetingIDEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldMeetingID, v))
}

// MeetingIDContainsFold applies the ContainsFold predicate on the "meeting_id" field.
func MeetingIDContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldMeetingID, v))
}

// JobTypeEQ applies the EQ predicate on the "job_type" field.
func JobTypeEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldJobType, v))
}

// JobTypeNEQ applies the NEQ predicate on the "job_type" field.
func JobTypeNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldJobType, v))
}

// JobTypeIn applies the In predicate on the "job_type" field.
func JobTypeIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldJobType, vs...))
}

// JobTypeNotIn applies the NotIn predicate on the "job_type" field.
func JobTypeNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldJobType, vs...))
}

// JobTypeGT applies the GT predicate on the "job_type" field.
func JobTypeGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldJobType, v))
}

// JobTypeGTE applies the GTE predicate on the "job_type" field.
func JobTypeGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldJobType, v))
}

// JobTypeLT applies the LT predicate on the "job_type" field.
func JobTypeLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldJobType, v))
}

// JobTypeLTE applies the LTE predicate on the "job_type" field.
func JobTypeLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldJobType, v))
}

// JobTypeContains applies the Contains predicate on the "job_type" field.
func JobTypeContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldJobType, v))
}

// JobTypeHasPrefix applies the HasPrefix predicate on the "job_type" field.
func JobTypeHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldJobType, v))
}

// JobTypeHasSuffix applies the HasSuffix predicate on the "job_type" field.
func JobTypeHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldJobType, v))
}

// JobTypeEqualFold applies the EqualFold predicate on the "job_type" field.
func JobTypeEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldJobType, v))
}

// JobTypeContainsFold applies the ContainsFold predicate on the "job_type" field.
func JobTypeContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldJobType, v))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldPayload))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldStatus, vs...))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldAttempts, v))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldLastError, v))
}

// ClaimedByEQ applies the EQ predicate on the "claimed_by" field.
func ClaimedByEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldClaimedBy, v))
}

// ClaimedByNEQ applies the NEQ predicate on the "claimed_by" field.
func ClaimedByNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldClaimedBy, v))
}

// ClaimedByIn applies the In predicate on the "claimed_by" field.
func ClaimedByIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldClaimedBy, vs...))
}

// ClaimedByNotIn applies the NotIn predicate on the "claimed_by" field.
func ClaimedByNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldClaimedBy, vs...))
}

// ClaimedByGT applies the GT predicate on the "claimed_by" field.
func ClaimedByGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldClaimedBy, v))
}

// ClaimedByGTE applies the GTE predicate on the "claimed_by" field.
func ClaimedByGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldClaimedBy, v))
}

// ClaimedByLT applies the LT predicate on the "claimed_by" field.
func ClaimedByLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldClaimedBy, v))
}

// ClaimedByLTE applies the LTE predicate on the "claimed_by" field.
func ClaimedByLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldClaimedBy, v))
}

// ClaimedByContains applies the Contains predicate on the "claimed_by" field.
func ClaimedByContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldClaimedBy, v))
}

// ClaimedByHasPrefix applies the HasPrefix predicate on the "claimed_by" field.
func ClaimedByHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldClaimedBy, v))
}

// ClaimedByHasSuffix applies the HasSuffix predicate on the "claimed_by" field.
func ClaimedByHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldClaimedBy, v))
}

// ClaimedByIsNil applies the IsNil predicate on the "claimed_by" field.
func ClaimedByIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldClaimedBy))
}

// ClaimedByNotNil applies the NotNil predicate on the "claimed_by" field.
func ClaimedByNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldClaimedBy))
}

// ClaimedByEqualFold applies the EqualFold predicate on the "claimed_by" field.
func ClaimedByEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldClaimedBy, v))
}

// ClaimedByContainsFold applies the ContainsFold predicate on the "claimed_by" field.
func ClaimedByContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldClaimedBy, v))
}

// LastHeartbeatEQ applies the EQ predicate on the "last_heartbeat" field.
func LastHeartbeatEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLastHeartbeat, v))
}

// LastHeartbeatNEQ applies the NEQ predicate on the "last_heartbeat" field.
func LastHeartbeatNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldLastHeartbeat, v))
}

// LastHeartbeatIn applies the In predicate on the "last_heartbeat" field.
func LastHeartbeatIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldLastHeartbeat, vs...))
}

// LastHeartbeatNotIn applies the NotIn predicate on the "last_heartbeat" field.
func LastHeartbeatNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldLastHeartbeat, vs...))
}

// LastHeartbeatGT applies the GT predicate on the "last_heartbeat" field.
func LastHeartbeatGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldLastHeartbeat, v))
}

// LastHeartbeatGTE applies the GTE predicate on the "last_heartbeat" field.
func LastHeartbeatGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldLastHeartbeat, v))
}

// LastHeartbeatLT applies the LT predicate on the "last_heartbeat" field.
func LastHeartbeatLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldLastHeartbeat, v))
}

// LastHeartbeatLTE applies the LTE predicate on the "last_heartbeat" field.
func LastHeartbeatLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldLastHeartbeat, v))
}

// LastHeartbeatIsNil applies the IsNil predicate on the "last_heartbeat" field.
func LastHeartbeatIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldLastHeartbeat))
}

// LastHeartbeatNotNil applies the NotNil predicate on the "last_heartbeat" field.
func LastHeartbeatNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldLastHeartbeat))
}

// RunAfterEQ applies the EQ predicate on the "run_after" field.
func RunAfterEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldRunAfter, v))
}

// RunAfterNEQ applies the NEQ predicate on the "run_after" field.
func RunAfterNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldRunAfter, v))
}

// RunAfterIn applies the In predicate on the "run_after" field.
func RunAfterIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldRunAfter, vs...))
}

// RunAfterNotIn applies the NotIn predicate on the "run_after" field.
func RunAfterNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldRunAfter, vs...))
}

// RunAfterGT applies the GT predicate on the "run_after" field.
func RunAfterGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldRunAfter, v))
}

// RunAfterGTE applies the GTE predicate on the "run_after" field.
func RunAfterGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldRunAfter, v))
}

// RunAfterLT applies the LT predicate on the "run_after" field.
func RunAfterLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldRunAfter, v))
}

// RunAfterLTE applies the LTE predicate on the "run_after" field.
func RunAfterLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldRunAfter, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldUpdatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldCompletedAt))
}

// HasMeeting applies the HasEdge predicate on the "meeting" edge.
func HasMeeting() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MeetingTable, MeetingColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMeetingWith applies the HasEdge predicate on the "meeting" edge with a given conditions (other predicates).
func HasMeetingWith(preds ...predicate.Meeting) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newMeetingStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Job) predicate.Job {
	return predicate.Job(sql.NotPredicates(p))
}
