// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recapcrew/recap/ent/job"
	"github.com/recapcrew/recap/ent/meeting"
	"github.com/recapcrew/recap/ent/predicate"
)

// JobUpdate is the builder for updating Job entities.
type JobUpdate struct {
	config
	hooks    []Hook
	mutation *JobMutation
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdate) Where(ps ...predicate.Job) *JobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMeetingID sets the "meeting_id" field.
func (_u *JobUpdate) SetMeetingID(v string) *JobUpdate {
	_u.mutation.SetMeetingID(v)
	return _u
}

// SetNillableMeetingID sets the "meeting_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableMeetingID(v *string) *JobUpdate {
	if v != nil {
		_u.SetMeetingID(*v)
	}
	return _u
}

// ClearMeetingID clears the value of the "meeting_id" field.
func (_u *JobUpdate) ClearMeetingID() *JobUpdate {
	_u.mutation.ClearMeetingID()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *JobUpdate) SetPayload(v map[string]interface{}) *JobUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *JobUpdate) ClearPayload() *JobUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdate) SetStatus(v job.Status) *JobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStatus(v *job.Status) *JobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *JobUpdate) SetAttempts(v int) *JobUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *JobUpdate) SetNillableAttempts(v *int) *JobUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *JobUpdate) AddAttempts(v int) *JobUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *JobUpdate) SetLastError(v string) *JobUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *JobUpdate) SetNillableLastError(v *string) *JobUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *JobUpdate) ClearLastError() *JobUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *JobUpdate) SetClaimedBy(v string) *JobUpdate {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *JobUpdate) SetNillableClaimedBy(v *string) *JobUpdate {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *JobUpdate) ClearClaimedBy() *JobUpdate {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_u *JobUpdate) SetLastHeartbeat(v time.Time) *JobUpdate {
	_u.mutation.SetLastHeartbeat(v)
	return _u
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_u *JobUpdate) SetNillableLastHeartbeat(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetLastHeartbeat(*v)
	}
	return _u
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (_u *JobUpdate) ClearLastHeartbeat() *JobUpdate {
	_u.mutation.ClearLastHeartbeat()
	return _u
}

// SetRunAfter sets the "run_after" field.
func (_u *JobUpdate) SetRunAfter(v time.Time) *JobUpdate {
	_u.mutation.SetRunAfter(v)
	return _u
}

// SetNillableRunAfter sets the "run_after" field if the given value is not nil.
func (_u *JobUpdate) SetNillableRunAfter(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetRunAfter(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobUpdate) SetUpdatedAt(v time.Time) *JobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *JobUpdate) SetCompletedAt(v time.Time) *JobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCompletedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *JobUpdate) ClearCompletedAt() *JobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetMeeting sets the "meeting" edge to the Meeting entity.
func (_u *JobUpdate) SetMeeting(v *Meeting) *JobUpdate {
	return _u.SetMeetingID(v.ID)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdate) Mutation() *JobMutation {
	return _u.mutation
}

// ClearMeeting clears the "meeting" edge to the Meeting entity.
func (_u *JobUpdate) ClearMeeting() *JobUpdate {
	_u.mutation.ClearMeeting()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := job.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Attempts(); ok {
		if err := job.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "Job.attempts": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(job.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(job.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(job.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(job.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(job.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(job.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(job.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(job.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeat(); ok {
		_spec.SetField(job.FieldLastHeartbeat, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatCleared() {
		_spec.ClearField(job.FieldLastHeartbeat, field.TypeTime)
	}
	if value, ok := _u.mutation.RunAfter(); ok {
		_spec.SetField(job.FieldRunAfter, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(job.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.MeetingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.MeetingTable,
			Columns: []string{job.MeetingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(meeting.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MeetingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.MeetingTable,
			Columns: []string{job.MeetingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(meeting.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobUpdateOne is the builder for updating a single Job entity.
type JobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobMutation
}

// SetMeetingID sets the "meeting_id" field.
func (_u *JobUpdateOne) SetMeetingID(v string) *JobUpdateOne {
	_u.mutation.SetMeetingID(v)
	return _u
}

// SetNillableMeetingID sets the "meeting_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableMeetingID(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetMeetingID(*v)
	}
	return _u
}

// ClearMeetingID clears the value of the "meeting_id" field.
func (_u *JobUpdateOne) ClearMeetingID() *JobUpdateOne {
	_u.mutation.ClearMeetingID()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *JobUpdateOne) SetPayload(v map[string]interface{}) *JobUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *JobUpdateOne) ClearPayload() *JobUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdateOne) SetStatus(v job.Status) *JobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStatus(v *job.Status) *JobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *JobUpdateOne) SetAttempts(v int) *JobUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableAttempts(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *JobUpdateOne) AddAttempts(v int) *JobUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *JobUpdateOne) SetLastError(v string) *JobUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableLastError(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *JobUpdateOne) ClearLastError() *JobUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *JobUpdateOne) SetClaimedBy(v string) *JobUpdateOne {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableClaimedBy(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *JobUpdateOne) ClearClaimedBy() *JobUpdateOne {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_u *JobUpdateOne) SetLastHeartbeat(v time.Time) *JobUpdateOne {
	_u.mutation.SetLastHeartbeat(v)
	return _u
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableLastHeartbeat(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetLastHeartbeat(*v)
	}
	return _u
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (_u *JobUpdateOne) ClearLastHeartbeat() *JobUpdateOne {
	_u.mutation.ClearLastHeartbeat()
	return _u
}

// SetRunAfter sets the "run_after" field.
func (_u *JobUpdateOne) SetRunAfter(v time.Time) *JobUpdateOne {
	_u.mutation.SetRunAfter(v)
	return _u
}

// SetNillableRunAfter sets the "run_after" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableRunAfter(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetRunAfter(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobUpdateOne) SetUpdatedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *JobUpdateOne) SetCompletedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCompletedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *JobUpdateOne) ClearCompletedAt() *JobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetMeeting sets the "meeting" edge to the Meeting entity.
func (_u *JobUpdateOne) SetMeeting(v *Meeting) *JobUpdateOne {
	return _u.SetMeetingID(v.ID)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdateOne) Mutation() *JobMutation {
	return _u.mutation
}

// ClearMeeting clears the "meeting" edge to the Meeting entity.
func (_u *JobUpdateOne) ClearMeeting() *JobUpdateOne {
	_u.mutation.ClearMeeting()
	return _u
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdateOne) Where(ps ...predicate.Job) *JobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobUpdateOne) Select(field string, fields ...string) *JobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Job entity.
func (_u *JobUpdateOne) Save(ctx context.Context) (*Job, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdateOne) SaveX(ctx context.Context) *Job {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := job.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Attempts(); ok {
		if err := job.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "Job.attempts": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdateOne) sqlSave(ctx context.Context) (_node *Job, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Job.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, job.FieldID)
		for _, f := range fields {
			if !job.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != job.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(job.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(job.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(job.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(job.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(job.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(job.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(job.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(job.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeat(); ok {
		_spec.SetField(job.FieldLastHeartbeat, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatCleared() {
		_spec.ClearField(job.FieldLastHeartbeat, field.TypeTime)
	}
	if value, ok := _u.mutation.RunAfter(); ok {
		_spec.SetField(job.FieldRunAfter, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(job.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.MeetingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.MeetingTable,
			Columns: []string{job.MeetingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(meeting.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MeetingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.MeetingTable,
			Columns: []string{job.MeetingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(meeting.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Job{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
