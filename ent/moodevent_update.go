// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/oyunsanaa/oyunsanaa/ent/moodevent"
	"github.com/oyunsanaa/oyunsanaa/ent/predicate"
)

// MoodEventUpdate is the builder for updating MoodEvent entities.
type MoodEventUpdate struct {
	config
	hooks    []Hook
	mutation *MoodEventMutation
}

// Where appends a list predicates to the MoodEventUpdate builder.
func (_u *MoodEventUpdate) Where(ps ...predicate.MoodEvent) *MoodEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the MoodEventMutation object of the builder.
func (_u *MoodEventUpdate) Mutation() *MoodEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MoodEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MoodEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MoodEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MoodEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MoodEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(moodevent.Table, moodevent.Columns, sqlgraph.NewFieldSpec(moodevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(moodevent.FieldNote, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{moodevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MoodEventUpdateOne is the builder for updating a single MoodEvent entity.
type MoodEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MoodEventMutation
}

// Mutation returns the MoodEventMutation object of the builder.
func (_u *MoodEventUpdateOne) Mutation() *MoodEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the MoodEventUpdate builder.
func (_u *MoodEventUpdateOne) Where(ps ...predicate.MoodEvent) *MoodEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MoodEventUpdateOne) Select(field string, fields ...string) *MoodEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MoodEvent entity.
func (_u *MoodEventUpdateOne) Save(ctx context.Context) (*MoodEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MoodEventUpdateOne) SaveX(ctx context.Context) *MoodEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MoodEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MoodEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MoodEventUpdateOne) sqlSave(ctx context.Context) (_node *MoodEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(moodevent.Table, moodevent.Columns, sqlgraph.NewFieldSpec(moodevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MoodEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, moodevent.FieldID)
		for _, f := range fields {
			if !moodevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != moodevent.FieldID {
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
	if _u.mutation.NoteCleared() {
		_spec.ClearField(moodevent.FieldNote, field.TypeString)
	}
	_node = &MoodEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{moodevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
