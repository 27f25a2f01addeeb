// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recapcrew/recap/ent/meeting"
	"github.com/recapcrew/recap/ent/summary"
)

// SummaryCreate is the builder for creating a Summary entity.
type SummaryCreate struct {
	config
	mutation *SummaryMutation
	hooks    []Hook
}

// SetMeetingID sets the "meeting_id" field.
func (_c *SummaryCreate) SetMeetingID(v string) *SummaryCreate {
	_c.mutation.SetMeetingID(v)
	return _c
}

// SetSummaryType sets the "summary_type" field.
func (_c *SummaryCreate) SetSummaryType(v summary.SummaryType) *SummaryCreate {
	_c.mutation.SetSummaryType(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *SummaryCreate) SetContent(v map[string]interface{}) *SummaryCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SummaryCreate) SetCreatedAt(v time.Time) *SummaryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SummaryCreate) SetNillableCreatedAt(v *time.Time) *SummaryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SummaryCreate) SetID(v string) *SummaryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetMeeting sets the "meeting" edge to the Meeting entity.
func (_c *SummaryCreate) SetMeeting(v *Meeting) *SummaryCreate {
	return _c.SetMeetingID(v.ID)
}

// Mutation returns the SummaryMutation object of the builder.
func (_c *SummaryCreate) Mutation() *SummaryMutation {
	return _c.mutation
}

// Save creates the Summary in the database.
func (_c *SummaryCreate) Save(ctx context.Context) (*Summary, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SummaryCreate) SaveX(ctx context.Context) *Summary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SummaryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SummaryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SummaryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := summary.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SummaryCreate) check() error {
	if _, ok := _c.mutation.MeetingID(); !ok {
		return &ValidationError{Name: "meeting_id", err: errors.New(`ent: missing required field "Summary.meeting_id"`)}
	}
	if _, ok := _c.mutation.SummaryType(); !ok {
		return &ValidationError{Name: "summary_type", err: errors.New(`ent: missing required field "Summary.summary_type"`)}
	}
	if v, ok := _c.mutation.SummaryType(); ok {
		if err := summary.SummaryTypeValidator(v); err != nil {
			return &ValidationError{Name: "summary_type", err: fmt.Errorf(`ent: validator failed for field "Summary.summary_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "Summary.content"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Summary.created_at"`)}
	}
	if len(_c.mutation.MeetingIDs()) == 0 {
		return &ValidationError{Name: "meeting", err: errors.New(`ent: missing required edge "Summary.meeting"`)}
	}
	return nil
}

func (_c *SummaryCreate) sqlSave(ctx context.Context) (*Summary, error) {
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
			return nil, fmt.Errorf("unexpected Summary.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SummaryCreate) createSpec() (*Summary, *sqlgraph.CreateSpec) {
	var (
		_node = &Summary{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(summary.Table, sqlgraph.NewFieldSpec(summary.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SummaryType(); ok {
		_spec.SetField(summary.FieldSummaryType, field.TypeEnum, value)
		_node.SummaryType = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(summary.FieldContent, field.TypeJSON, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(summary.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.MeetingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   summary.MeetingTable,
			Columns: []string{summary.MeetingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(meeting.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.MeetingID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SummaryCreateBulk is the builder for creating many Summary entities in bulk.
type SummaryCreateBulk struct {
	config
	err      error
	builders []*SummaryCreate
}

// Save creates the Summary entities in the database.
func (_c *SummaryCreateBulk) Save(ctx context.Context) ([]*Summary, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Summary, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SummaryMutation)
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
func (_c *SummaryCreateBulk) SaveX(ctx context.Context) []*Summary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SummaryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SummaryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
