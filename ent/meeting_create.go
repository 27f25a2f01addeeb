// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recapcrew/recap/ent/job"
	"github.com/recapcrew/recap/ent/meeting"
	"github.com/recapcrew/recap/ent/segment"
	"github.com/recapcrew/recap/ent/summary"
)

// MeetingCreate is the builder for creating a Meeting entity.
type MeetingCreate struct {
	config
	mutation *MeetingMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *MeetingCreate) SetTitle(v string) *MeetingCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *MeetingCreate) SetMetadata(v map[string]interface{}) *MeetingCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetFinalized sets the "finalized" field.
func (_c *MeetingCreate) SetFinalized(v bool) *MeetingCreate {
	_c.mutation.SetFinalized(v)
	return _c
}

// SetNillableFinalized sets the "finalized" field if the given value is not nil.
func (_c *MeetingCreate) SetNillableFinalized(v *bool) *MeetingCreate {
	if v != nil {
		_c.SetFinalized(*v)
	}
	return _c
}

// SetFinalizedAt sets the "finalized_at" field.
func (_c *MeetingCreate) SetFinalizedAt(v time.Time) *MeetingCreate {
	_c.mutation.SetFinalizedAt(v)
	return _c
}

// SetNillableFinalizedAt sets the "finalized_at" field if the given value is not nil.
func (_c *MeetingCreate) SetNillableFinalizedAt(v *time.Time) *MeetingCreate {
	if v != nil {
		_c.SetFinalizedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MeetingCreate) SetCreatedAt(v time.Time) *MeetingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MeetingCreate) SetNillableCreatedAt(v *time.Time) *MeetingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MeetingCreate) SetID(v string) *MeetingCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddSegmentIDs adds the "segments" edge to the Segment entity by IDs.
func (_c *MeetingCreate) AddSegmentIDs(ids ...string) *MeetingCreate {
	_c.mutation.AddSegmentIDs(ids...)
	return _c
}

// AddSegments adds the "segments" edges to the Segment entity.
func (_c *MeetingCreate) AddSegments(v ...*Segment) *MeetingCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSegmentIDs(ids...)
}

// AddSummaryIDs adds the "summaries" edge to the Summary entity by IDs.
func (_c *MeetingCreate) AddSummaryIDs(ids ...string) *MeetingCreate {
	_c.mutation.AddSummaryIDs(ids...)
	return _c
}

// AddSummaries adds the "summaries" edges to the Summary entity.
func (_c *MeetingCreate) AddSummaries(v ...*Summary) *MeetingCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSummaryIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the Job entity by IDs.
func (_c *MeetingCreate) AddJobIDs(ids ...string) *MeetingCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the Job entity.
func (_c *MeetingCreate) AddJobs(v ...*Job) *MeetingCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the MeetingMutation object of the builder.
func (_c *MeetingCreate) Mutation() *MeetingMutation {
	return _c.mutation
}

// Save creates the Meeting in the database.
func (_c *MeetingCreate) Save(ctx context.Context) (*Meeting, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MeetingCreate) SaveX(ctx context.Context) *Meeting {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MeetingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MeetingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MeetingCreate) defaults() {
	if _, ok := _c.mutation.Finalized(); !ok {
		v := meeting.DefaultFinalized
		_c.mutation.SetFinalized(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := meeting.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MeetingCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Meeting.title"`)}
	}
	if _, ok := _c.mutation.Finalized(); !ok {
		return &ValidationError{Name: "finalized", err: errors.New(`ent: missing required field "Meeting.finalized"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Meeting.created_at"`)}
	}
	return nil
}

func (_c *MeetingCreate) sqlSave(ctx context.Context) (*Meeting, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Meeting.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MeetingCreate) createSpec() (*Meeting, *sqlgraph.CreateSpec) {
	var (
		_node = &Meeting{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(meeting.Table, sqlgraph.NewFieldSpec(meeting.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(meeting.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(meeting.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.Finalized(); ok {
		_spec.SetField(meeting.FieldFinalized, field.TypeBool, value)
		_node.Finalized = value
	}
	if value, ok := _c.mutation.FinalizedAt(); ok {
		_spec.SetField(meeting.FieldFinalizedAt, field.TypeTime, value)
		_node.FinalizedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(meeting.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SegmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SummariesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MeetingCreateBulk is the builder for creating many Meeting entities in bulk.
type MeetingCreateBulk struct {
	config
	err      error
	builders []*MeetingCreate
}

// Save creates the Meeting entities in the database.
func (_c *MeetingCreateBulk) Save(ctx context.Context) ([]*Meeting, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Meeting, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MeetingMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MeetingCreateBulk) SaveX(ctx context.Context) []*Meeting {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MeetingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MeetingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
