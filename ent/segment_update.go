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
	"github.com/recapcrew/recap/ent/predicate"
	"github.com/recapcrew/recap/ent/segment"
)

// SegmentUpdate is the builder for updating Segment entities.
type SegmentUpdate struct {
	config
	hooks    []Hook
	mutation *SegmentMutation
}

// Where appends a list predicates to the SegmentUpdate builder.
func (_u *SegmentUpdate) Where(ps ...predicate.Segment) *SegmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSummarizedAt sets the "summarized_at" field.
func (_u *SegmentUpdate) SetSummarizedAt(v time.Time) *SegmentUpdate {
	_u.mutation.SetSummarizedAt(v)
	return _u
}

// SetNillableSummarizedAt sets the "summarized_at" field if the given value is not nil.
func (_u *SegmentUpdate) SetNillableSummarizedAt(v *time.Time) *SegmentUpdate {
	if v != nil {
		_u.SetSummarizedAt(*v)
	}
	return _u
}

// ClearSummarizedAt clears the value of the "summarized_at" field.
func (_u *SegmentUpdate) ClearSummarizedAt() *SegmentUpdate {
	_u.mutation.ClearSummarizedAt()
	return _u
}

// Mutation returns the SegmentMutation object of the builder.
func (_u *SegmentUpdate) Mutation() *SegmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SegmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SegmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SegmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SegmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SegmentUpdate) check() error {
	if _u.mutation.MeetingCleared() && len(_u.mutation.MeetingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Segment.meeting"`)
	}
	return nil
}

func (_u *SegmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(segment.Table, segment.Columns, sqlgraph.NewFieldSpec(segment.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SummarizedAt(); ok {
		_spec.SetField(segment.FieldSummarizedAt, field.TypeTime, value)
	}
	if _u.mutation.SummarizedAtCleared() {
		_spec.ClearField(segment.FieldSummarizedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{segment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SegmentUpdateOne is the builder for updating a single Segment entity.
type SegmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SegmentMutation
}

// SetSummarizedAt sets the "summarized_at" field.
func (_u *SegmentUpdateOne) SetSummarizedAt(v time.Time) *SegmentUpdateOne {
	_u.mutation.SetSummarizedAt(v)
	return _u
}

// SetNillableSummarizedAt sets the "summarized_at" field if the given value is not nil.
func (_u *SegmentUpdateOne) SetNillableSummarizedAt(v *time.Time) *SegmentUpdateOne {
	if v != nil {
		_u.SetSummarizedAt(*v)
	}
	return _u
}

// ClearSummarizedAt clears the value of the "summarized_at" field.
func (_u *SegmentUpdateOne) ClearSummarizedAt() *SegmentUpdateOne {
	_u.mutation.ClearSummarizedAt()
	return _u
}

// Mutation returns the SegmentMutation object of the builder.
func (_u *SegmentUpdateOne) Mutation() *SegmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the SegmentUpdate builder.
func (_u *SegmentUpdateOne) Where(ps ...predicate.Segment) *SegmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SegmentUpdateOne) Select(field string, fields ...string) *SegmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Segment entity.
func (_u *SegmentUpdateOne) Save(ctx context.Context) (*Segment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SegmentUpdateOne) SaveX(ctx context.Context) *Segment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SegmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SegmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SegmentUpdateOne) check() error {
	if _u.mutation.MeetingCleared() && len(_u.mutation.MeetingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Segment.meeting"`)
	}
	return nil
}

func (_u *SegmentUpdateOne) sqlSave(ctx context.Context) (_node *Segment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(segment.Table, segment.Columns, sqlgraph.NewFieldSpec(segment.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Segment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, segment.FieldID)
		for _, f := range fields {
			if !segment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != segment.FieldID {
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
	if value, ok := _u.mutation.SummarizedAt(); ok {
		_spec.SetField(segment.FieldSummarizedAt, field.TypeTime, value)
	}
	if _u.mutation.SummarizedAtCleared() {
		_spec.ClearField(segment.FieldSummarizedAt, field.TypeTime)
	}
	_node = &Segment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{segment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
