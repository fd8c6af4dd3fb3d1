// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/oyunsanaa/oyunsanaa/ent/moodevent"
)

// MoodEventCreate is the builder for creating a MoodEvent entity.
type MoodEventCreate struct {
	config
	mutation *MoodEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *MoodEventCreate) SetSequence(v int64) *MoodEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MoodEventCreate) SetCreatedAt(v time.Time) *MoodEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MoodEventCreate) SetNillableCreatedAt(v *time.Time) *MoodEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *MoodEventCreate) SetUserID(v string) *MoodEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *MoodEventCreate) SetScore(v int) *MoodEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNote sets the "note" field.
func (_c *MoodEventCreate) SetNote(v string) *MoodEventCreate {
	_c.mutation.SetNote(v)
	return _c
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_c *MoodEventCreate) SetNillableNote(v *string) *MoodEventCreate {
	if v != nil {
		_c.SetNote(*v)
	}
	return _c
}

// Mutation returns the MoodEventMutation object of the builder.
func (_c *MoodEventCreate) Mutation() *MoodEventMutation {
	return _c.mutation
}

// Save creates the MoodEvent in the database.
func (_c *MoodEventCreate) Save(ctx context.Context) (*MoodEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MoodEventCreate) SaveX(ctx context.Context) *MoodEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MoodEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MoodEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MoodEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := moodevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MoodEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "MoodEvent.sequence"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MoodEvent.created_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "MoodEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := moodevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "MoodEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "MoodEvent.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := moodevent.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "MoodEvent.score": %w`, err)}
		}
	}
	return nil
}

func (_c *MoodEventCreate) sqlSave(ctx context.Context) (*MoodEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MoodEventCreate) createSpec() (*MoodEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &MoodEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(moodevent.Table, sqlgraph.NewFieldSpec(moodevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(moodevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(moodevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(moodevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(moodevent.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Note(); ok {
		_spec.SetField(moodevent.FieldNote, field.TypeString, value)
		_node.Note = value
	}
	return _node, _spec
}

// MoodEventCreateBulk is the builder for creating many MoodEvent entities in bulk.
type MoodEventCreateBulk struct {
	config
	err      error
	builders []*MoodEventCreate
}

// Save creates the MoodEvent entities in the database.
func (_c *MoodEventCreateBulk) Save(ctx context.Context) ([]*MoodEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MoodEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MoodEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *MoodEventCreateBulk) SaveX(ctx context.Context) []*MoodEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MoodEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MoodEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
