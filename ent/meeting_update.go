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
	"github.com/recapcrew/recap/ent/segment"
	"github.com/recapcrew/recap/ent/summary"
)

// MeetingUpdate is the builder for updating Meeting entities.
type MeetingUpdate struct {
	config
	hooks    []Hook
	mutation *MeetingMutation
}

// Where appends a list predicates to the MeetingUpdate builder.
func (_u *MeetingUpdate) Where(ps ...predicate.Meeting) *MeetingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *MeetingUpdate) SetTitle(v string) *MeetingUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *MeetingUpdate) SetNillableTitle(v *string) *MeetingUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *MeetingUpdate) SetMetadata(v map[string]interface{}) *MeetingUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *MeetingUpdate) ClearMetadata() *MeetingUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetFinalized sets the "finalized" field.
func (_u *MeetingUpdate) SetFinalized(v bool) *MeetingUpdate {
	_u.mutation.SetFinalized(v)
	return _u
}

// SetNillableFinalized sets the "finalized" field if the given value is not nil.
func (_u *MeetingUpdate) SetNillableFinalized(v *bool) *MeetingUpdate {
	if v != nil {
		_u.SetFinalized(*v)
	}
	return _u
}

// SetFinalizedAt sets the "finalized_at" field.
func (_u *MeetingUpdate) SetFinalizedAt(v time.Time) *MeetingUpdate {
	_u.mutation.SetFinalizedAt(v)
	return _u
}

// SetNillableFinalizedAt sets the "finalized_at" field if the given value is not nil.
func (_u *MeetingUpdate) SetNillableFinalizedAt(v *time.Time) *MeetingUpdate {
	if v != nil {
		_u.SetFinalizedAt(*v)
	}
	return _u
}

// ClearFinalizedAt clears the value of the "finalized_at" field.
func (_u *MeetingUpdate) ClearFinalizedAt() *MeetingUpdate {
	_u.mutation.ClearFinalizedAt()
	return _u
}

// AddSegmentIDs adds the "segments" edge to the Segment entity by IDs.
func (_u *MeetingUpdate) AddSegmentIDs(ids ...string) *MeetingUpdate {
	_u.mutation.AddSegmentIDs(ids...)
	return _u
}

// AddSegments adds the "segments" edges to the Segment entity.
func (_u *MeetingUpdate) AddSegments(v ...*Segment) *MeetingUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSegmentIDs(ids...)
}

// AddSummaryIDs adds the "summaries" edge to the Summary entity by IDs.
func (_u *MeetingUpdate) AddSummaryIDs(ids ...string) *MeetingUpdate {
	_u.mutation.AddSummaryIDs(ids...)
	return _u
}

// AddSummaries adds the "summaries" edges to the Summary entity.
func (_u *MeetingUpdate) AddSummaries(v ...*Summary) *MeetingUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSummaryIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the Job entity by IDs.
func (_u *MeetingUpdate) AddJobIDs(ids ...string) *MeetingUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the Job entity.
func (_u *MeetingUpdate) AddJobs(v ...*Job) *MeetingUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the MeetingMutation object of the builder.
func (_u *MeetingUpdate) Mutation() *MeetingMutation {
	return _u.mutation
}

// ClearSegments clears all "segments" edges to the Segment entity.
func (_u *MeetingUpdate) ClearSegments() *MeetingUpdate {
	_u.mutation.ClearSegments()
	return _u
}

// RemoveSegmentIDs removes the "segments" edge to Segment entities by IDs.
func (_u *MeetingUpdate) RemoveSegmentIDs(ids ...string) *MeetingUpdate {
	_u.mutation.RemoveSegmentIDs(ids...)
	return _u
}

// RemoveSegments removes "segments" edges to Segment entities.
func (_u *MeetingUpdate) RemoveSegments(v ...*Segment) *MeetingUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSegmentIDs(ids...)
}

// ClearSummaries clears all "summaries" edges to the Summary entity.
func (_u *MeetingUpdate) ClearSummaries() *MeetingUpdate {
	_u.mutation.ClearSummaries()
	return _u
}

// RemoveSummaryIDs removes the "summaries" edge to Summary entities by IDs.
func (_u *MeetingUpdate) RemoveSummaryIDs(ids ...string) *MeetingUpdate {
	_u.mutation.RemoveSummaryIDs(ids...)
	return _u
}

// RemoveSummaries removes "summaries" edges to Summary entities.
func (_u *MeetingUpdate) RemoveSummaries(v ...*Summary) *MeetingUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSummaryIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the Job entity.
func (_u *MeetingUpdate) ClearJobs() *MeetingUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to Job entities by IDs.
func (_u *MeetingUpdate) RemoveJobIDs(ids ...string) *MeetingUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to Job entities.
func (_u *MeetingUpdate) RemoveJobs(v ...*Job) *MeetingUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MeetingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MeetingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MeetingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MeetingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MeetingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(meeting.Table, meeting.Columns, sqlgraph.NewFieldSpec(meeting.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(meeting.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(meeting.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(meeting.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Finalized(); ok {
		_spec.SetField(meeting.FieldFinalized, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FinalizedAt(); ok {
		_spec.SetField(meeting.FieldFinalizedAt, field.TypeTime, value)
	}
	if _u.mutation.FinalizedAtCleared() {
		_spec.ClearField(meeting.FieldFinalizedAt, field.TypeTime)
	}
	if _u.mutation.SegmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   meeting.SegmentsTable,
			Columns: []string{meeting.SegmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(segment.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSegmentsIDs(); len(nodes) > 0 && !_u.mutation.SegmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   meeting.SegmentsTable,
			Columns: []string{meeting.SegmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(segment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SegmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   meeting.SegmentsTable,
			Columns: []string{meeting.SegmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(segment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SummariesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   meeting.SummariesTable,
			Columns: []string{meeting.SummariesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(summary.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSummariesIDs(); len(nodes) > 0 && !_u.mutation.SummariesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   meeting.SummariesTable,
			Columns: []string{meeting.SummariesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(summary.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SummariesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   meeting.SummariesTable,
			Columns: []string{meeting.SummariesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(summary.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   meeting.JobsTable,
			Columns: []string{meeting.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   meeting.JobsTable,
			Columns: []string{meeting.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   meeting.JobsTable,
			Columns: []string{meeting.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{meeting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MeetingUpdateOne is the builder for updating a single Meeting entity.
type MeetingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MeetingMutation
}

// SetTitle sets the "title" field.
func (_u *MeetingUpdateOne) SetTitle(v string) *MeetingUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *MeetingUpdateOne) SetNillableTitle(v *string) *MeetingUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *MeetingUpdateOne) SetMetadata(v map[string]interface{}) *MeetingUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *MeetingUpdateOne) ClearMetadata() *MeetingUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetFinalized sets the "finalized" field.
func (_u *MeetingUpdateOne) SetFinalized(v bool) *MeetingUpdateOne {
	_u.mutation.SetFinalized(v)
	return _u
}

// SetNillableFinalized sets the "finalized" field if the given value is not nil.
func (_u *MeetingUpdateOne) SetNillableFinalized(v *bool) *MeetingUpdateOne {
	if v != nil {
		_u.SetFinalized(*v)
	}
	return _u
}

// SetFinalizedAt sets the "finalized_at" field.
func (_u *MeetingUpdateOne) SetFinalizedAt(v time.Time) *MeetingUpdateOne {
	_u.mutation.SetFinalizedAt(v)
	return _u
}

// SetNillableFinalizedAt sets the "finalized_at" field if the given value is not nil.
func (_u *MeetingUpdateOne) SetNillableFinalizedAt(v *time.Time) *MeetingUpdateOne {
	if v != nil {
		_u.SetFinalizedAt(*v)
	}
	return _u
}

// ClearFinalizedAt clears the value of the "finalized_at" field.
func (_u *MeetingUpdateOne) ClearFinalizedAt() *MeetingUpdateOne {
	_u.mutation.ClearFinalizedAt()
	return _u
}

// AddSegmentIDs adds the "segments" edge to the Segment entity by IDs.
func (_u *MeetingUpdateOne) AddSegmentIDs(ids ...string) *MeetingUpdateOne {
	_u.mutation.AddSegmentIDs(ids...)
	return _u
}

// AddSegments adds the "segments" edges to the Segment entity.
func (_u *MeetingUpdateOne) AddSegments(v ...*Segment) *MeetingUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSegmentIDs(ids...)
}

// AddSummaryIDs adds the "summaries" edge to the Summary entity by IDs.
func (_u *MeetingUpdateOne) AddSummaryIDs(ids ...string) *MeetingUpdateOne {
	_u.mutation.AddSummaryIDs(ids...)
	return _u
}

// AddSummaries adds the "summaries" edges to the Summary entity.
func (_u *MeetingUpdateOne) AddSummaries(v ...*Summary) *MeetingUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSummaryIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the Job entity by IDs.
func (_u *MeetingUpdateOne) AddJobIDs(ids ...string) *MeetingUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the Job entity.
func (_u *MeetingUpdateOne) AddJobs(v ...*Job) *MeetingUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the MeetingMutation object of the builder.
func (_u *MeetingUpdateOne) Mutation() *MeetingMutation {
	return _u.mutation
}

// ClearSegments clears all "segments" edges to the Segment entity.
func (_u *MeetingUpdateOne) ClearSegments() *MeetingUpdateOne {
	_u.mutation.ClearSegments()
	return _u
}

// RemoveSegmentIDs removes the "segments" edge to Segment entities by IDs.
func (_u *MeetingUpdateOne) RemoveSegmentIDs(ids ...string) *MeetingUpdateOne {
	_u.mutation.RemoveSegmentIDs(ids...)
	return _u
}

// RemoveSegments removes "segments" edges to Segment entities.
func (_u *MeetingUpdateOne) RemoveSegments(v ...*Segment) *MeetingUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSegmentIDs(ids...)
}

// ClearSummaries clears all "summaries" edges to the Summary entity.
func (_u *MeetingUpdateOne) ClearSummaries() *MeetingUpdateOne {
	_u.mutation.ClearSummaries()
	return _u
}

// RemoveSummaryIDs removes the "summaries" edge to Summary entities by IDs.
func (_u *MeetingUpdateOne) RemoveSummaryIDs(ids ...string) *MeetingUpdateOne {
	_u.mutation.RemoveSummaryIDs(ids...)
	return _u
}

// RemoveSummaries removes "summaries" edges to Summary entities.
func (_u *MeetingUpdateOne) RemoveSummaries(v ...*Summary) *MeetingUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSummaryIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the Job entity.
func (_u *MeetingUpdateOne) ClearJobs() *MeetingUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to Job entities by IDs.
func (_u *MeetingUpdateOne) RemoveJobIDs(ids ...string) *MeetingUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to Job entities.
func (_u *MeetingUpdateOne) RemoveJobs(v ...*Job) *MeetingUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the MeetingUpdate builder.
func (_u *MeetingUpdateOne) Where(ps ...predicate.Meeting) *MeetingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MeetingUpdateOne) Select(field string, fields ...string) *MeetingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Meeting entity.
func (_u *MeetingUpdateOne) Save(ctx context.Context) (*Meeting, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MeetingUpdateOne) SaveX(ctx context.Context) *Meeting {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MeetingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MeetingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MeetingUpdateOne) sqlSave(ctx context.Context) (_node *Meeting, err error) {
	_spec := sqlgraph.NewUpdateSpec(meeting.Table, meeting.Columns, sqlgraph.NewFieldSpec(meeting.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Meeting.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, meeting.FieldID)
		for _, f := range fields {
			if !meeting.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != meeting.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(meeting.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(meeting.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(meeting.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Finalized(); ok {
		_spec.SetField(meeting.FieldFinalized, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FinalizedAt(); ok {
		_spec.SetField(meeting.FieldFinalizedAt, field.TypeTime, value)
	}
	if _u.mutation.FinalizedAtCleared() {
		_spec.ClearField(meeting.FieldFinalizedAt, field.TypeTime)
	}
	if _u.mutation.SegmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   meeting.SegmentsTable,
			Columns: []string{meeting.SegmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(segment.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSegmentsIDs(); len(nodes) > 0 && !_u.mutation.SegmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   meeting.SegmentsTable,
			Columns: []string{meeting.SegmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(segment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SegmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   meeting.SegmentsTable,
			Columns: []string{meeting.SegmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(segment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SummariesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   meeting.SummariesTable,
			Columns: []string{meeting.SummariesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(summary.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSummariesIDs(); len(nodes) > 0 && !_u.mutation.SummariesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   meeting.SummariesTable,
			Columns: []string{meeting.SummariesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(summary.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SummariesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   meeting.SummariesTable,
			Columns: []string{meeting.SummariesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(summary.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   meeting.JobsTable,
			Columns: []string{meeting.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   meeting.JobsTable,
			Columns: []string{meeting.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   meeting.JobsTable,
			Columns: []string{meeting.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Meeting{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{meeting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
