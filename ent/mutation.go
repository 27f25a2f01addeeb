// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/recapcrew/recap/ent/job"
	"github.com/recapcrew/recap/ent/meeting"
	"github.com/recapcrew/recap/ent/predicate"
	"github.com/recapcrew/recap/ent/segment"
	"github.com/recapcrew/recap/ent/summary"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeJob     = "Job"
	TypeMeeting = "Meeting"
	TypeSegment = "Segment"
	TypeSummary = "Summary"
)

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op             Op
	typ            string
	id             *string
	job_type       *string
	payload        *map[string]interface{}
	status         *job.Status
	attempts       *int
	addattempts    *int
	last_error     *string
	claimed_by     *string
	last_heartbeat *time.Time
	run_after      *time.Time
	created_at     *time.Time
	updated_at     *time.Time
	completed_at   *time.Time
	clearedFields  map[string]struct{}
	meeting        *string
	clearedmeeting bool
	done           bool
	oldValue       func(context.Context) (*Job, error)
	predicates     []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id string) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMeetingID sets the "meeting_id" field.
func (m *JobMutation) SetMeetingID(s string) {
	m.meeting = &s
}

// MeetingID returns the value of the "meeting_id" field in the mutation.
func (m *JobMutation) MeetingID() (r string, exists bool) {
	v := m.meeting
	if v == nil {
		return
	}
	return *v, true
}

// OldMeetingID returns the old "meeting_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldMeetingID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeetingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeetingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeetingID: %w", err)
	}
	return oldValue.MeetingID, nil
}

// ClearMeetingID clears the value of the "meeting_id" field.
func (m *JobMutation) ClearMeetingID() {
	m.meeting = nil
	m.clearedFields[job.FieldMeetingID] = struct{}{}
}

// MeetingIDCleared returns if the "meeting_id" field was cleared in this mutation.
func (m *JobMutation) MeetingIDCleared() bool {
	_, ok := m.clearedFields[job.FieldMeetingID]
	return ok
}

// ResetMeetingID resets all changes to the "meeting_id" field.
func (m *JobMutation) ResetMeetingID() {
	m.meeting = nil
	delete(m.clearedFields, job.FieldMeetingID)
}

// SetJobType sets the "job_type" field.
func (m *JobMutation) SetJobType(s string) {
	m.job_type = &s
}

// JobType returns the value of the "job_type" field in the mutation.
func (m *JobMutation) JobType() (r string, exists bool) {
	v := m.job_type
	if v == nil {
		return
	}
	return *v, true
}

// OldJobType returns the old "job_type" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldJobType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobType: %w", err)
	}
	return oldValue.JobType, nil
}

// ResetJobType resets all changes to the "job_type" field.
func (m *JobMutation) ResetJobType() {
	m.job_type = nil
}

// SetPayload sets the "payload" field.
func (m *JobMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *JobMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *JobMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[job.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *JobMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[job.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *JobMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, job.FieldPayload)
}

// SetStatus sets the "status" field.
func (m *JobMutation) SetStatus(j job.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobMutation) Status() (r job.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatus(ctx context.Context) (v job.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobMutation) ResetStatus() {
	m.status = nil
}

// SetAttempts sets the "attempts" field.
func (m *JobMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *JobMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *JobMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *JobMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *JobMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetLastError sets the "last_error" field.
func (m *JobMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *JobMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *JobMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[job.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *JobMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[job.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *JobMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, job.FieldLastError)
}

// SetClaimedBy sets the "claimed_by" field.
func (m *JobMutation) SetClaimedBy(s string) {
	m.claimed_by = &s
}

// ClaimedBy returns the value of the "claimed_by" field in the mutation.
func (m *JobMutation) ClaimedBy() (r string, exists bool) {
	v := m.claimed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedBy returns the old "claimed_by" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldClaimedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedBy: %w", err)
	}
	return oldValue.ClaimedBy, nil
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (m *JobMutation) ClearClaimedBy() {
	m.claimed_by = nil
	m.clearedFields[job.FieldClaimedBy] = struct{}{}
}

// ClaimedByCleared returns if the "claimed_by" field was cleared in this mutation.
func (m *JobMutation) ClaimedByCleared() bool {
	_, ok := m.clearedFields[job.FieldClaimedBy]
	return ok
}

// ResetClaimedBy resets all changes to the "claimed_by" field.
func (m *JobMutation) ResetClaimedBy() {
	m.claimed_by = nil
	delete(m.clearedFields, job.FieldClaimedBy)
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (m *JobMutation) SetLastHeartbeat(t time.Time) {
	m.last_heartbeat = &t
}

// LastHeartbeat returns the value of the "last_heartbeat" field in the mutation.
func (m *JobMutation) LastHeartbeat() (r time.Time, exists bool) {
	v := m.last_heartbeat
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeat returns the old "last_heartbeat" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLastHeartbeat(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeat: %w", err)
	}
	return oldValue.LastHeartbeat, nil
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (m *JobMutation) ClearLastHeartbeat() {
	m.last_heartbeat = nil
	m.clearedFields[job.FieldLastHeartbeat] = struct{}{}
}

// LastHeartbeatCleared returns if the "last_heartbeat" field was cleared in this mutation.
func (m *JobMutation) LastHeartbeatCleared() bool {
	_, ok := m.clearedFields[job.FieldLastHeartbeat]
	return ok
}

// ResetLastHeartbeat resets all changes to the "last_heartbeat" field.
func (m *JobMutation) ResetLastHeartbeat() {
	m.last_heartbeat = nil
	delete(m.clearedFields, job.FieldLastHeartbeat)
}

// SetRunAfter sets the "run_after" field.
func (m *JobMutation) SetRunAfter(t time.Time) {
	m.run_after = &t
}

// RunAfter returns the value of the "run_after" field in the mutation.
func (m *JobMutation) RunAfter() (r time.Time, exists bool) {
	v := m.run_after
	if v == nil {
		return
	}
	return *v, true
}

// OldRunAfter returns the old "run_after" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldRunAfter(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunAfter: %w", err)
	}
	return oldValue.RunAfter, nil
}

// ResetRunAfter resets all changes to the "run_after" field.
func (m *JobMutation) ResetRunAfter() {
	m.run_after = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *JobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *JobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *JobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *JobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *JobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *JobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[job.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *JobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *JobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, job.FieldCompletedAt)
}

// ClearMeeting clears the "meeting" edge to the Meeting entity.
func (m *JobMutation) ClearMeeting() {
	m.clearedmeeting = true
	m.clearedFields[job.FieldMeetingID] = struct{}{}
}

// MeetingCleared reports if the "meeting" edge to the Meeting entity was cleared.
func (m *JobMutation) MeetingCleared() bool {
	return m.MeetingIDCleared() || m.clearedmeeting
}

// MeetingIDs returns the "meeting" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MeetingID instead. It exists only for internal usage by the builders.
func (m *JobMutation) MeetingIDs() (ids []string) {
	if id := m.meeting; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMeeting resets all changes to the "meeting" edge.
func (m *JobMutation) ResetMeeting() {
	m.meeting = nil
	m.clearedmeeting = false
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.meeting != nil {
		fields = append(fields, job.FieldMeetingID)
	}
	if m.job_type != nil {
		fields = append(fields, job.FieldJobType)
	}
	if m.payload != nil {
		fields = append(fields, job.FieldPayload)
	}
	if m.status != nil {
		fields = append(fields, job.FieldStatus)
	}
	if m.attempts != nil {
		fields = append(fields, job.FieldAttempts)
	}
	if m.last_error != nil {
		fields = append(fields, job.FieldLastError)
	}
	if m.claimed_by != nil {
		fields = append(fields, job.FieldClaimedBy)
	}
	if m.last_heartbeat != nil {
		fields = append(fields, job.FieldLastHeartbeat)
	}
	if m.run_after != nil {
		fields = append(fields, job.FieldRunAfter)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, job.FieldUpdatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, job.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldMeetingID:
		return m.MeetingID()
	case job.FieldJobType:
		return m.JobType()
	case job.FieldPayload:
		return m.Payload()
	case job.FieldStatus:
		return m.Status()
	case job.FieldAttempts:
		return m.Attempts()
	case job.FieldLastError:
		return m.LastError()
	case job.FieldClaimedBy:
		return m.ClaimedBy()
	case job.FieldLastHeartbeat:
		return m.LastHeartbeat()
	case job.FieldRunAfter:
		return m.RunAfter()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldUpdatedAt:
		return m.UpdatedAt()
	case job.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldMeetingID:
		return m.OldMeetingID(ctx)
	case job.FieldJobType:
		return m.OldJobType(ctx)
	case job.FieldPayload:
		return m.OldPayload(ctx)
	case job.FieldStatus:
		return m.OldStatus(ctx)
	case job.FieldAttempts:
		return m.OldAttempts(ctx)
	case job.FieldLastError:
		return m.OldLastError(ctx)
	case job.FieldClaimedBy:
		return m.OldClaimedBy(ctx)
	case job.FieldLastHeartbeat:
		return m.OldLastHeartbeat(ctx)
	case job.FieldRunAfter:
		return m.OldRunAfter(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case job.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldMeetingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeetingID(v)
		return nil
	case job.FieldJobType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobType(v)
		return nil
	case job.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case job.FieldStatus:
		v, ok := value.(job.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case job.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case job.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case job.FieldClaimedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedBy(v)
		return nil
	case job.FieldLastHeartbeat:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeat(v)
		return nil
	case job.FieldRunAfter:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunAfter(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case job.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, job.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case job.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case job.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldMeetingID) {
		fields = append(fields, job.FieldMeetingID)
	}
	if m.FieldCleared(job.FieldPayload) {
		fields = append(fields, job.FieldPayload)
	}
	if m.FieldCleared(job.FieldLastError) {
		fields = append(fields, job.FieldLastError)
	}
	if m.FieldCleared(job.FieldClaimedBy) {
		fields = append(fields, job.FieldClaimedBy)
	}
	if m.FieldCleared(job.FieldLastHeartbeat) {
		fields = append(fields, job.FieldLastHeartbeat)
	}
	if m.FieldCleared(job.FieldCompletedAt) {
		fields = append(fields, job.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldMeetingID:
		m.ClearMeetingID()
		return nil
	case job.FieldPayload:
		m.ClearPayload()
		return nil
	case job.FieldLastError:
		m.ClearLastError()
		return nil
	case job.FieldClaimedBy:
		m.ClearClaimedBy()
		return nil
	case job.FieldLastHeartbeat:
		m.ClearLastHeartbeat()
		return nil
	case job.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldMeetingID:
		m.ResetMeetingID()
		return nil
	case job.FieldJobType:
		m.ResetJobType()
		return nil
	case job.FieldPayload:
		m.ResetPayload()
		return nil
	case job.FieldStatus:
		m.ResetStatus()
		return nil
	case job.FieldAttempts:
		m.ResetAttempts()
		return nil
	case job.FieldLastError:
		m.ResetLastError()
		return nil
	case job.FieldClaimedBy:
		m.ResetClaimedBy()
		return nil
	case job.FieldLastHeartbeat:
		m.ResetLastHeartbeat()
		return nil
	case job.FieldRunAfter:
		m.ResetRunAfter()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case job.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.meeting != nil {
		edges = append(edges, job.EdgeMeeting)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeMeeting:
		if id := m.meeting; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmeeting {
		edges = append(edges, job.EdgeMeeting)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	switch name {
	case job.EdgeMeeting:
		return m.clearedmeeting
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	switch name {
	case job.EdgeMeeting:
		m.ClearMeeting()
		return nil
	}
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	switch name {
	case job.EdgeMeeting:
		m.ResetMeeting()
		return nil
	}
	return fmt.Errorf("unknown Job edge %s", name)
}

// MeetingMutation represents an operation that mutates the Meeting nodes in the graph.
type MeetingMutation struct {
	config
	op               Op
	typ              string
	id               *string
	title            *string
	metadata         *map[string]interface{}
	finalized        *bool
	finalized_at     *time.Time
	created_at       *time.Time
	clearedFields    map[string]struct{}
	segments         map[string]struct{}
	removedsegments  map[string]struct{}
	clearedsegments  bool
	summaries        map[string]struct{}
	removedsummaries map[string]struct{}
	clearedsummaries bool
	jobs             map[string]struct{}
	removedjobs      map[string]struct{}
	clearedjobs      bool
	done             bool
	oldValue         func(context.Context) (*Meeting, error)
	predicates       []predicate.Meeting
}

var _ ent.Mutation = (*MeetingMutation)(nil)

// meetingOption allows management of the mutation configuration using functional options.
type meetingOption func(*MeetingMutation)

// newMeetingMutation creates new mutation for the Meeting entity.
func newMeetingMutation(c config, op Op, opts ...meetingOption) *MeetingMutation {
	m := &MeetingMutation{
		config:        c,
		op:            op,
		typ:           TypeMeeting,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMeetingID sets the ID field of the mutation.
func withMeetingID(id string) meetingOption {
	return func(m *MeetingMutation) {
		var (
			err   error
			once  sync.Once
			value *Meeting
		)
		m.oldValue = func(ctx context.Context) (*Meeting, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Meeting.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMeeting sets the old Meeting of the mutation.
func withMeeting(node *Meeting) meetingOption {
	return func(m *MeetingMutation) {
		m.oldValue = func(context.Context) (*Meeting, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MeetingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MeetingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Meeting entities.
func (m *MeetingMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MeetingMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MeetingMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Meeting.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *MeetingMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *MeetingMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *MeetingMutation) ResetTitle() {
	m.title = nil
}

// SetMetadata sets the "metadata" field.
func (m *MeetingMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *MeetingMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *MeetingMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[meeting.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *MeetingMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[meeting.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *MeetingMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, meeting.FieldMetadata)
}

// SetFinalized sets the "finalized" field.
func (m *MeetingMutation) SetFinalized(b bool) {
	m.finalized = &b
}

// Finalized returns the value of the "finalized" field in the mutation.
func (m *MeetingMutation) Finalized() (r bool, exists bool) {
	v := m.finalized
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalized returns the old "finalized" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldFinalized(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalized is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalized requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalized: %w", err)
	}
	return oldValue.Finalized, nil
}

// ResetFinalized resets all changes to the "finalized" field.
func (m *MeetingMutation) ResetFinalized() {
	m.finalized = nil
}

// SetFinalizedAt sets the "finalized_at" field.
func (m *MeetingMutation) SetFinalizedAt(t time.Time) {
	m.finalized_at = &t
}

// FinalizedAt returns the value of the "finalized_at" field in the mutation.
func (m *MeetingMutation) FinalizedAt() (r time.Time, exists bool) {
	v := m.finalized_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalizedAt returns the old "finalized_at" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldFinalizedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalizedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalizedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalizedAt: %w", err)
	}
	return oldValue.FinalizedAt, nil
}

// ClearFinalizedAt clears the value of the "finalized_at" field.
func (m *MeetingMutation) ClearFinalizedAt() {
	m.finalized_at = nil
	m.clearedFields[meeting.FieldFinalizedAt] = struct{}{}
}

// FinalizedAtCleared returns if the "finalized_at" field was cleared in this mutation.
func (m *MeetingMutation) FinalizedAtCleared() bool {
	_, ok := m.clearedFields[meeting.FieldFinalizedAt]
	return ok
}

// ResetFinalizedAt resets all changes to the "finalized_at" field.
func (m *MeetingMutation) ResetFinalizedAt() {
	m.finalized_at = nil
	delete(m.clearedFields, meeting.FieldFinalizedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *MeetingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MeetingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MeetingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddSegmentIDs adds the "segments" edge to the Segment entity by ids.
func (m *MeetingMutation) AddSegmentIDs(ids ...string) {
	if m.segments == nil {
		m.segments = make(map[string]struct{})
	}
	for i := range ids {
		m.segments[ids[i]] = struct{}{}
	}
}

// ClearSegments clears the "segments" edge to the Segment entity.
func (m *MeetingMutation) ClearSegments() {
	m.clearedsegments = true
}

// SegmentsCleared reports if the "segments" edge to the Segment entity was cleared.
func (m *MeetingMutation) SegmentsCleared() bool {
	return m.clearedsegments
}

// RemoveSegmentIDs removes the "segments" edge to the Segment entity by IDs.
func (m *MeetingMutation) RemoveSegmentIDs(ids ...string) {
	if m.removedsegments == nil {
		m.removedsegments = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.segments, ids[i])
		m.removedsegments[ids[i]] = struct{}{}
	}
}

// RemovedSegments returns the removed IDs of the "segments" edge to the Segment entity.
func (m *MeetingMutation) RemovedSegmentsIDs() (ids []string) {
	for id := range m.removedsegments {
		ids = append(ids, id)
	}
	return
}

// SegmentsIDs returns the "segments" edge IDs in the mutation.
func (m *MeetingMutation) SegmentsIDs() (ids []string) {
	for id := range m.segments {
		ids = append(ids, id)
	}
	return
}

// ResetSegments resets all changes to the "segments" edge.
func (m *MeetingMutation) ResetSegments() {
	m.segments = nil
	m.clearedsegments = false
	m.removedsegments = nil
}

// AddSummaryIDs adds the "summaries" edge to the Summary entity by ids.
func (m *MeetingMutation) AddSummaryIDs(ids ...string) {
	if m.summaries == nil {
		m.summaries = make(map[string]struct{})
	}
	for i := range ids {
		m.summaries[ids[i]] = struct{}{}
	}
}

// ClearSummaries clears the "summaries" edge to the Summary entity.
func (m *MeetingMutation) ClearSummaries() {
	m.clearedsummaries = true
}

// SummariesCleared reports if the "summaries" edge to the Summary entity was cleared.
func (m *MeetingMutation) SummariesCleared() bool {
	return m.clearedsummaries
}

// RemoveSummaryIDs removes the "summaries" edge to the Summary entity by IDs.
func (m *MeetingMutation) RemoveSummaryIDs(ids ...string) {
	if m.removedsummaries == nil {
		m.removedsummaries = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.summaries, ids[i])
		m.removedsummaries[ids[i]] = struct{}{}
	}
}

// RemovedSummaries returns the removed IDs of the "summaries" edge to the Summary entity.
func (m *MeetingMutation) RemovedSummariesIDs() (ids []string) {
	for id := range m.removedsummaries {
		ids = append(ids, id)
	}
	return
}

// SummariesIDs returns the "summaries" edge IDs in the mutation.
func (m *MeetingMutation) SummariesIDs() (ids []string) {
	for id := range m.summaries {
		ids = append(ids, id)
	}
	return
}

// ResetSummaries resets all changes to the "summaries" edge.
func (m *MeetingMutation) ResetSummaries() {
	m.summaries = nil
	m.clearedsummaries = false
	m.removedsummaries = nil
}

// AddJobIDs adds the "jobs" edge to the Job entity by ids.
func (m *MeetingMutation) AddJobIDs(ids ...string) {
	if m.jobs == nil {
		m.jobs = make(map[string]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the Job entity.
func (m *MeetingMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the Job entity was cleared.
func (m *MeetingMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the Job entity by IDs.
func (m *MeetingMutation) RemoveJobIDs(ids ...string) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the Job entity.
func (m *MeetingMutation) RemovedJobsIDs() (ids []string) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *MeetingMutation) JobsIDs() (ids []string) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *MeetingMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the MeetingMutation builder.
func (m *MeetingMutation) Where(ps ...predicate.Meeting) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MeetingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MeetingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Meeting, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MeetingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MeetingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Meeting).
func (m *MeetingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MeetingMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.title != nil {
		fields = append(fields, meeting.FieldTitle)
	}
	if m.metadata != nil {
		fields = append(fields, meeting.FieldMetadata)
	}
	if m.finalized != nil {
		fields = append(fields, meeting.FieldFinalized)
	}
	if m.finalized_at != nil {
		fields = append(fields, meeting.FieldFinalizedAt)
	}
	if m.created_at != nil {
		fields = append(fields, meeting.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MeetingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case meeting.FieldTitle:
		return m.Title()
	case meeting.FieldMetadata:
		return m.Metadata()
	case meeting.FieldFinalized:
		return m.Finalized()
	case meeting.FieldFinalizedAt:
		return m.FinalizedAt()
	case meeting.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MeetingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case meeting.FieldTitle:
		return m.OldTitle(ctx)
	case meeting.FieldMetadata:
		return m.OldMetadata(ctx)
	case meeting.FieldFinalized:
		return m.OldFinalized(ctx)
	case meeting.FieldFinalizedAt:
		return m.OldFinalizedAt(ctx)
	case meeting.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Meeting field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MeetingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case meeting.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case meeting.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case meeting.FieldFinalized:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalized(v)
		return nil
	case meeting.FieldFinalizedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalizedAt(v)
		return nil
	case meeting.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Meeting field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MeetingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MeetingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MeetingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Meeting numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MeetingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(meeting.FieldMetadata) {
		fields = append(fields, meeting.FieldMetadata)
	}
	if m.FieldCleared(meeting.FieldFinalizedAt) {
		fields = append(fields, meeting.FieldFinalizedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MeetingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MeetingMutation) ClearField(name string) error {
	switch name {
	case meeting.FieldMetadata:
		m.ClearMetadata()
		return nil
	case meeting.FieldFinalizedAt:
		m.ClearFinalizedAt()
		return nil
	}
	return fmt.Errorf("unknown Meeting nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MeetingMutation) ResetField(name string) error {
	switch name {
	case meeting.FieldTitle:
		m.ResetTitle()
		return nil
	case meeting.FieldMetadata:
		m.ResetMetadata()
		return nil
	case meeting.FieldFinalized:
		m.ResetFinalized()
		return nil
	case meeting.FieldFinalizedAt:
		m.ResetFinalizedAt()
		return nil
	case meeting.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Meeting field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MeetingMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.segments != nil {
		edges = append(edges, meeting.EdgeSegments)
	}
	if m.summaries != nil {
		edges = append(edges, meeting.EdgeSummaries)
	}
	if m.jobs != nil {
		edges = append(edges, meeting.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MeetingMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case meeting.EdgeSegments:
		ids := make([]ent.Value, 0, len(m.segments))
		for id := range m.segments {
			ids = append(ids, id)
		}
		return ids
	case meeting.EdgeSummaries:
		ids := make([]ent.Value, 0, len(m.summaries))
		for id := range m.summaries {
			ids = append(ids, id)
		}
		return ids
	case meeting.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MeetingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedsegments != nil {
		edges = append(edges, meeting.EdgeSegments)
	}
	if m.removedsummaries != nil {
		edges = append(edges, meeting.EdgeSummaries)
	}
	if m.removedjobs != nil {
		edges = append(edges, meeting.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MeetingMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case meeting.EdgeSegments:
		ids := make([]ent.Value, 0, len(m.removedsegments))
		for id := range m.removedsegments {
			ids = append(ids, id)
		}
		return ids
	case meeting.EdgeSummaries:
		ids := make([]ent.Value, 0, len(m.removedsummaries))
		for id := range m.removedsummaries {
			ids = append(ids, id)
		}
		return ids
	case meeting.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MeetingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedsegments {
		edges = append(edges, meeting.EdgeSegments)
	}
	if m.clearedsummaries {
		edges = append(edges, meeting.EdgeSummaries)
	}
	if m.clearedjobs {
		edges = append(edges, meeting.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MeetingMutation) EdgeCleared(name string) bool {
	switch name {
	case meeting.EdgeSegments:
		return m.clearedsegments
	case meeting.EdgeSummaries:
		return m.clearedsummaries
	case meeting.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MeetingMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Meeting unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MeetingMutation) ResetEdge(name string) error {
	switch name {
	case meeting.EdgeSegments:
		m.ResetSegments()
		return nil
	case meeting.EdgeSummaries:
		m.ResetSummaries()
		return nil
	case meeting.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Meeting edge %s", name)
}

// SegmentMutation represents an operation that mutates the Segment nodes in the graph.
type SegmentMutation struct {
	config
	op             Op
	typ            string
	id             *string
	speaker        *string
	ts             *time.Time
	text           *string
	token_count    *int
	addtoken_count *int
	created_at     *time.Time
	summarized_at  *time.Time
	clearedFields  map[string]struct{}
	meeting        *string
	clearedmeeting bool
	done           bool
	oldValue       func(context.Context) (*Segment, error)
	predicates     []predicate.Segment
}

var _ ent.Mutation = (*SegmentMutation)(nil)

// segmentOption allows management of the mutation configuration using functional options.
type segmentOption func(*SegmentMutation)

// newSegmentMutation creates new mutation for the Segment entity.
func newSegmentMutation(c config, op Op, opts ...segmentOption) *SegmentMutation {
	m := &SegmentMutation{
		config:        c,
		op:            op,
		typ:           TypeSegment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSegmentID sets the ID field of the mutation.
func withSegmentID(id string) segmentOption {
	return func(m *SegmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Segment
		)
		m.oldValue = func(ctx context.Context) (*Segment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Segment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSegment sets the old Segment of the mutation.
func withSegment(node *Segment) segmentOption {
	return func(m *SegmentMutation) {
		m.oldValue = func(context.Context) (*Segment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SegmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SegmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Segment entities.
func (m *SegmentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SegmentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SegmentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Segment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMeetingID sets the "meeting_id" field.
func (m *SegmentMutation) SetMeetingID(s string) {
	m.meeting = &s
}

// MeetingID returns the value of the "meeting_id" field in the mutation.
func (m *SegmentMutation) MeetingID() (r string, exists bool) {
	v := m.meeting
	if v == nil {
		return
	}
	return *v, true
}

// OldMeetingID returns the old "meeting_id" field's value of the Segment entity.
// If the Segment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SegmentMutation) OldMeetingID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeetingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeetingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeetingID: %w", err)
	}
	return oldValue.MeetingID, nil
}

// ResetMeetingID resets all changes to the "meeting_id" field.
func (m *SegmentMutation) ResetMeetingID() {
	m.meeting = nil
}

// SetSpeaker sets the "speaker" field.
func (m *SegmentMutation) SetSpeaker(s string) {
	m.speaker = &s
}

// Speaker returns the value of the "speaker" field in the mutation.
func (m *SegmentMutation) Speaker() (r string, exists bool) {
	v := m.speaker
	if v == nil {
		return
	}
	return *v, true
}

// OldSpeaker returns the old "speaker" field's value of the Segment entity.
// If the Segment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SegmentMutation) OldSpeaker(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpeaker is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpeaker requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpeaker: %w", err)
	}
	return oldValue.Speaker, nil
}

// ResetSpeaker resets all changes to the "speaker" field.
func (m *SegmentMutation) ResetSpeaker() {
	m.speaker = nil
}

// SetTs sets the "ts" field.
func (m *SegmentMutation) SetTs(t time.Time) {
	m.ts = &t
}

// Ts returns the value of the "ts" field in the mutation.
func (m *SegmentMutation) Ts() (r time.Time, exists bool) {
	v := m.ts
	if v == nil {
		return
	}
	return *v, true
}

// OldTs returns the old "ts" field's value of the Segment entity.
// If the Segment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SegmentMutation) OldTs(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTs: %w", err)
	}
	return oldValue.Ts, nil
}

// ResetTs resets all changes to the "ts" field.
func (m *SegmentMutation) ResetTs() {
	m.ts = nil
}

// SetText sets the "text" field.
func (m *SegmentMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *SegmentMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Segment entity.
// If the Segment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SegmentMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *SegmentMutation) ResetText() {
	m.text = nil
}

// SetTokenCount sets the "token_count" field.
func (m *SegmentMutation) SetTokenCount(i int) {
	m.token_count = &i
	m.addtoken_count = nil
}

// TokenCount returns the value of the "token_count" field in the mutation.
func (m *SegmentMutation) TokenCount() (r int, exists bool) {
	v := m.token_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenCount returns the old "token_count" field's value of the Segment entity.
// If the Segment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SegmentMutation) OldTokenCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenCount: %w", err)
	}
	return oldValue.TokenCount, nil
}

// AddTokenCount adds i to the "token_count" field.
func (m *SegmentMutation) AddTokenCount(i int) {
	if m.addtoken_count != nil {
		*m.addtoken_count += i
	} else {
		m.addtoken_count = &i
	}
}

// AddedTokenCount returns the value that was added to the "token_count" field in this mutation.
func (m *SegmentMutation) AddedTokenCount() (r int, exists bool) {
	v := m.addtoken_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokenCount resets all changes to the "token_count" field.
func (m *SegmentMutation) ResetTokenCount() {
	m.token_count = nil
	m.addtoken_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SegmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SegmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Segment entity.
// If the Segment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SegmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SegmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetSummarizedAt sets the "summarized_at" field.
func (m *SegmentMutation) SetSummarizedAt(t time.Time) {
	m.summarized_at = &t
}

// SummarizedAt returns the value of the "summarized_at" field in the mutation.
func (m *SegmentMutation) SummarizedAt() (r time.Time, exists bool) {
	v := m.summarized_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSummarizedAt returns the old "summarized_at" field's value of the Segment entity.
// If the Segment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SegmentMutation) OldSummarizedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummarizedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummarizedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummarizedAt: %w", err)
	}
	return oldValue.SummarizedAt, nil
}

// ClearSummarizedAt clears the value of the "summarized_at" field.
func (m *SegmentMutation) ClearSummarizedAt() {
	m.summarized_at = nil
	m.clearedFields[segment.FieldSummarizedAt] = struct{}{}
}

// SummarizedAtCleared returns if the "summarized_at" field was cleared in this mutation.
func (m *SegmentMutation) SummarizedAtCleared() bool {
	_, ok := m.clearedFields[segment.FieldSummarizedAt]
	return ok
}

// ResetSummarizedAt resets all changes to the "summarized_at" field.
func (m *SegmentMutation) ResetSummarizedAt() {
	m.summarized_at = nil
	delete(m.clearedFields, segment.FieldSummarizedAt)
}

// ClearMeeting clears the "meeting" edge to the Meeting entity.
func (m *SegmentMutation) ClearMeeting() {
	m.clearedmeeting = true
	m.clearedFields[segment.FieldMeetingID] = struct{}{}
}

// MeetingCleared reports if the "meeting" edge to the Meeting entity was cleared.
func (m *SegmentMutation) MeetingCleared() bool {
	return m.clearedmeeting
}

// MeetingIDs returns the "meeting" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MeetingID instead. It exists only for internal usage by the builders.
func (m *SegmentMutation) MeetingIDs() (ids []string) {
	if id := m.meeting; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMeeting resets all changes to the "meeting" edge.
func (m *SegmentMutation) ResetMeeting() {
	m.meeting = nil
	m.clearedmeeting = false
}

// Where appends a list predicates to the SegmentMutation builder.
func (m *SegmentMutation) Where(ps ...predicate.Segment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SegmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SegmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Segment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SegmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SegmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Segment).
func (m *SegmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SegmentMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.meeting != nil {
		fields = append(fields, segment.FieldMeetingID)
	}
	if m.speaker != nil {
		fields = append(fields, segment.FieldSpeaker)
	}
	if m.ts != nil {
		fields = append(fields, segment.FieldTs)
	}
	if m.text != nil {
		fields = append(fields, segment.FieldText)
	}
	if m.token_count != nil {
		fields = append(fields, segment.FieldTokenCount)
	}
	if m.created_at != nil {
		fields = append(fields, segment.FieldCreatedAt)
	}
	if m.summarized_at != nil {
		fields = append(fields, segment.FieldSummarizedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SegmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case segment.FieldMeetingID:
		return m.MeetingID()
	case segment.FieldSpeaker:
		return m.Speaker()
	case segment.FieldTs:
		return m.Ts()
	case segment.FieldText:
		return m.Text()
	case segment.FieldTokenCount:
		return m.TokenCount()
	case segment.FieldCreatedAt:
		return m.CreatedAt()
	case segment.FieldSummarizedAt:
		return m.SummarizedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SegmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case segment.FieldMeetingID:
		return m.OldMeetingID(ctx)
	case segment.FieldSpeaker:
		return m.OldSpeaker(ctx)
	case segment.FieldTs:
		return m.OldTs(ctx)
	case segment.FieldText:
		return m.OldText(ctx)
	case segment.FieldTokenCount:
		return m.OldTokenCount(ctx)
	case segment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case segment.FieldSummarizedAt:
		return m.OldSummarizedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Segment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SegmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case segment.FieldMeetingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeetingID(v)
		return nil
	case segment.FieldSpeaker:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpeaker(v)
		return nil
	case segment.FieldTs:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTs(v)
		return nil
	case segment.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case segment.FieldTokenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenCount(v)
		return nil
	case segment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case segment.FieldSummarizedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummarizedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Segment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SegmentMutation) AddedFields() []string {
	var fields []string
	if m.addtoken_count != nil {
		fields = append(fields, segment.FieldTokenCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SegmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case segment.FieldTokenCount:
		return m.AddedTokenCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SegmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case segment.FieldTokenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokenCount(v)
		return nil
	}
	return fmt.Errorf("unknown Segment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SegmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(segment.FieldSummarizedAt) {
		fields = append(fields, segment.FieldSummarizedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SegmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SegmentMutation) ClearField(name string) error {
	switch name {
	case segment.FieldSummarizedAt:
		m.ClearSummarizedAt()
		return nil
	}
	return fmt.Errorf("unknown Segment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SegmentMutation) ResetField(name string) error {
	switch name {
	case segment.FieldMeetingID:
		m.ResetMeetingID()
		return nil
	case segment.FieldSpeaker:
		m.ResetSpeaker()
		return nil
	case segment.FieldTs:
		m.ResetTs()
		return nil
	case segment.FieldText:
		m.ResetText()
		return nil
	case segment.FieldTokenCount:
		m.ResetTokenCount()
		return nil
	case segment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case segment.FieldSummarizedAt:
		m.ResetSummarizedAt()
		return nil
	}
	return fmt.Errorf("unknown Segment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SegmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.meeting != nil {
		edges = append(edges, segment.EdgeMeeting)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SegmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case segment.EdgeMeeting:
		if id := m.meeting; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SegmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SegmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SegmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmeeting {
		edges = append(edges, segment.EdgeMeeting)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SegmentMutation) EdgeCleared(name string) bool {
	switch name {
	case segment.EdgeMeeting:
		return m.clearedmeeting
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SegmentMutation) ClearEdge(name string) error {
	switch name {
	case segment.EdgeMeeting:
		m.ClearMeeting()
		return nil
	}
	return fmt.Errorf("unknown Segment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SegmentMutation) ResetEdge(name string) error {
	switch name {
	case segment.EdgeMeeting:
		m.ResetMeeting()
		return nil
	}
	return fmt.Errorf("unknown Segment edge %s", name)
}

// SummaryMutation represents an operation that mutates the Summary nodes in the graph.
type SummaryMutation struct {
	config
	op             Op
	typ            string
	id             *string
	summary_type   *summary.SummaryType
	content        *map[string]interface{}
	created_at     *time.Time
	clearedFields  map[string]struct{}
	meeting        *string
	clearedmeeting bool
	done           bool
	oldValue       func(context.Context) (*Summary, error)
	predicates     []predicate.Summary
}

var _ ent.Mutation = (*SummaryMutation)(nil)

// summaryOption allows management of the mutation configuration using functional options.
type summaryOption func(*SummaryMutation)

// newSummaryMutation creates new mutation for the Summary entity.
func newSummaryMutation(c config, op Op, opts ...summaryOption) *SummaryMutation {
	m := &SummaryMutation{
		config:        c,
		op:            op,
		typ:           TypeSummary,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSummaryID sets the ID field of the mutation.
func withSummaryID(id string) summaryOption {
	return func(m *SummaryMutation) {
		var (
			err   error
			once  sync.Once
			value *Summary
		)
		m.oldValue = func(ctx context.Context) (*Summary, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Summary.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSummary sets the old Summary of the mutation.
func withSummary(node *Summary) summaryOption {
	return func(m *SummaryMutation) {
		m.oldValue = func(context.Context) (*Summary, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SummaryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SummaryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Summary entities.
func (m *SummaryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SummaryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SummaryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Summary.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMeetingID sets the "meeting_id" field.
func (m *SummaryMutation) SetMeetingID(s string) {
	m.meeting = &s
}

// MeetingID returns the value of the "meeting_id" field in the mutation.
func (m *SummaryMutation) MeetingID() (r string, exists bool) {
	v := m.meeting
	if v == nil {
		return
	}
	return *v, true
}

// OldMeetingID returns the old "meeting_id" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldMeetingID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeetingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeetingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeetingID: %w", err)
	}
	return oldValue.MeetingID, nil
}

// ResetMeetingID resets all changes to the "meeting_id" field.
func (m *SummaryMutation) ResetMeetingID() {
	m.meeting = nil
}

// SetSummaryType sets the "summary_type" field.
func (m *SummaryMutation) SetSummaryType(st summary.SummaryType) {
	m.summary_type = &st
}

// SummaryType returns the value of the "summary_type" field in the mutation.
func (m *SummaryMutation) SummaryType() (r summary.SummaryType, exists bool) {
	v := m.summary_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSummaryType returns the old "summary_type" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldSummaryType(ctx context.Context) (v summary.SummaryType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummaryType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummaryType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummaryType: %w", err)
	}
	return oldValue.SummaryType, nil
}

// ResetSummaryType resets all changes to the "summary_type" field.
func (m *SummaryMutation) ResetSummaryType() {
	m.summary_type = nil
}

// SetContent sets the "content" field.
func (m *SummaryMutation) SetContent(value map[string]interface{}) {
	m.content = &value
}

// Content returns the value of the "content" field in the mutation.
func (m *SummaryMutation) Content() (r map[string]interface{}, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldContent(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *SummaryMutation) ResetContent() {
	m.content = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SummaryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SummaryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SummaryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearMeeting clears the "meeting" edge to the Meeting entity.
func (m *SummaryMutation) ClearMeeting() {
	m.clearedmeeting = true
	m.clearedFields[summary.FieldMeetingID] = struct{}{}
}

// MeetingCleared reports if the "meeting" edge to the Meeting entity was cleared.
func (m *SummaryMutation) MeetingCleared() bool {
	return m.clearedmeeting
}

// MeetingIDs returns the "meeting" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MeetingID instead. It exists only for internal usage by the builders.
func (m *SummaryMutation) MeetingIDs() (ids []string) {
	if id := m.meeting; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMeeting resets all changes to the "meeting" edge.
func (m *SummaryMutation) ResetMeeting() {
	m.meeting = nil
	m.clearedmeeting = false
}

// Where appends a list predicates to the SummaryMutation builder.
func (m *SummaryMutation) Where(ps ...predicate.Summary) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SummaryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SummaryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Summary, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SummaryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SummaryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Summary).
func (m *SummaryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SummaryMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.meeting != nil {
		fields = append(fields, summary.FieldMeetingID)
	}
	if m.summary_type != nil {
		fields = append(fields, summary.FieldSummaryType)
	}
	if m.content != nil {
		fields = append(fields, summary.FieldContent)
	}
	if m.created_at != nil {
		fields = append(fields, summary.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SummaryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case summary.FieldMeetingID:
		return m.MeetingID()
	case summary.FieldSummaryType:
		return m.SummaryType()
	case summary.FieldContent:
		return m.Content()
	case summary.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SummaryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case summary.FieldMeetingID:
		return m.OldMeetingID(ctx)
	case summary.FieldSummaryType:
		return m.OldSummaryType(ctx)
	case summary.FieldContent:
		return m.OldContent(ctx)
	case summary.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Summary field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SummaryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case summary.FieldMeetingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeetingID(v)
		return nil
	case summary.FieldSummaryType:
		v, ok := value.(summary.SummaryType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummaryType(v)
		return nil
	case summary.FieldContent:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case summary.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Summary field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SummaryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SummaryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SummaryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Summary numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SummaryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SummaryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SummaryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Summary nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SummaryMutation) ResetField(name string) error {
	switch name {
	case summary.FieldMeetingID:
		m.ResetMeetingID()
		return nil
	case summary.FieldSummaryType:
		m.ResetSummaryType()
		return nil
	case summary.FieldContent:
		m.ResetContent()
		return nil
	case summary.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Summary field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SummaryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.meeting != nil {
		edges = append(edges, summary.EdgeMeeting)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SummaryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case summary.EdgeMeeting:
		if id := m.meeting; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SummaryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SummaryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SummaryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmeeting {
		edges = append(edges, summary.EdgeMeeting)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SummaryMutation) EdgeCleared(name string) bool {
	switch name {
	case summary.EdgeMeeting:
		return m.clearedmeeting
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SummaryMutation) ClearEdge(name string) error {
	switch name {
	case summary.EdgeMeeting:
		m.ClearMeeting()
		return nil
	}
	return fmt.Errorf("unknown Summary unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SummaryMutation) ResetEdge(name string) error {
	switch name {
	case summary.EdgeMeeting:
		m.ResetMeeting()
		return nil
	}
	return fmt.Errorf("unknown Summary edge %s", name)
}
