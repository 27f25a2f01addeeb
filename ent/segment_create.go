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
	"github.com/recapcrew/recap/ent/segment"
)

// SegmentCreate is the builder for creating a Segment entity.
type SegmentCreate struct {
	config
	mutation *SegmentMutation
	hooks    []Hook
}

// SetMeetingID sets the "meeting_id" field.
func (_c *SegmentCreate) SetMeetingID(v string) *SegmentCreate {
	_c.mutation.SetMeetingID(v)
	return _c
}

// SetSpeaker sets the "speaker" field.
func (_c *SegmentCreate) SetSpeaker(v string) *SegmentCreate {
	_c.mutation.SetSpeaker(v)
	return _c
}

// SetTs sets the "ts" field.
func (_c *SegmentCreate) SetTs(v time.Time) *SegmentCreate {
	_c.mutation.SetTs(v)
	return _c
}

// SetText sets the "text" field.
func (_c *SegmentCreate) SetText(v string) *SegmentCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetTokenCount sets the "token_count" field.
func (_c *SegmentCreate) SetTokenCount(v int) *SegmentCreate {
	_c.mutation.SetTokenCount(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SegmentCreate) SetCreatedAt(v time.Time) *SegmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SegmentCreate) SetNillableCreatedAt(v *time.Time) *SegmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetSummarizedAt sets the "summarized_at" field.
func (_c *SegmentCreate) SetSummarizedAt(v time.Time) *SegmentCreate {
	_c.mutation.SetSummarizedAt(v)
	return _c
}

// SetNillableSummarizedAt sets the "summarized_at" field if the given value is not nil.
func (_c *SegmentCreate) SetNillableSummarizedAt(v *time.Time) *SegmentCreate {
	if v != nil {
		_c.SetSummarizedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SegmentCreate) SetID(v string) *SegmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetMeeting sets the "meeting" edge to the Meeting entity.
func (_c *SegmentCreate) SetMeeting(v *Meeting) *SegmentCreate {
	return _c.SetMeetingID(v.ID)
}

// Mutation returns the SegmentMutation object of the builder.
func (_c *SegmentCreate) Mutation() *SegmentMutation {
	return _c.mutation
}

// Save creates the Segment in the database.
func (_c *SegmentCreate) Save(ctx context.Context) (*Segment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SegmentCreate) SaveX(ctx context.Context) *Segment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SegmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SegmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SegmentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := segment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SegmentCreate) check() error {
	if _, ok := _c.mutation.MeetingID(); !ok {
		return &ValidationError{Name: "meeting_id", err: errors.New(`ent: missing required field "Segment.meeting_id"`)}
	}
	if _, ok := _c.mutation.Speaker(); !ok {
		return &ValidationError{Name: "speaker", err: errors.New(`ent: missing required field "Segment.speaker"`)}
	}
	if _, ok := _c.mutation.Ts(); !ok {
		return &ValidationError{Name: "ts", err: errors.New(`ent: missing required field "Segment.ts"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "Segment.text"`)}
	}
	if _, ok := _c.mutation.TokenCount(); !ok {
		return &ValidationError{Name: "token_count", err: errors.New(`ent: missing required field "Segment.token_count"`)}
	}
	if v, ok := _c.mutation.TokenCount(); ok {
		if err := segment.TokenCountValidator(v); err != nil {
			return &ValidationError{Name: "token_count", err: fmt.Errorf(`ent: validator failed for field "Segment.token_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Segment.created_at"`)}
	}
	if len(_c.mutation.MeetingIDs()) == 0 {
		return &ValidationError{Name: "meeting", err: errors.New(`ent: missing required edge "Segment.meeting"`)}
	}
	return nil
}

func (_c *SegmentCreate) sqlSave(ctx context.Context) (*Segment, error) {
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
			return nil, fmt.Errorf("unexpected Segment.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SegmentCreate) createSpec() (*Segment, *sqlgraph.CreateSpec) {
	var (
		_node = &Segment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(segment.Table, sqlgraph.NewFieldSpec(segment.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Speaker(); ok {
		_spec.SetField(segment.FieldSpeaker, field.TypeString, value)
		_node.Speaker = value
	}
	if value, ok := _c.mutation.Ts(); ok {
		_spec.SetField(segment.FieldTs, field.TypeTime, value)
		_node.Ts = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(segment.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.TokenCount(); ok {
		_spec.SetField(segment.FieldTokenCount, field.TypeInt, value)
		_node.TokenCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(segment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.SummarizedAt(); ok {
		_spec.SetField(segment.FieldSummarizedAt, field.TypeTime, value)
		_node.SummarizedAt = &value
	}
	if nodes := _c.mutation.MeetingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   segment.MeetingTable,
			Columns: []string{segment.MeetingColumn},
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

// SegmentCreateBulk is the builder for creating many Segment entities in bulk.
type SegmentCreateBulk struct {
	config
	err      error
	builders []*SegmentCreate
}

// Save creates the Segment entities in the database.
func (_c *SegmentCreateBulk) Save(ctx context.Context) ([]*Segment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Segment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SegmentMutation)
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
func (_c *SegmentCreateBulk) SaveX(ctx context.Context) []*Segment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SegmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SegmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
