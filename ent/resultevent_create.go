// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/oyunsanaa/oyunsanaa/ent/resultevent"
)

// ResultEventCreate is the builder for creating a ResultEvent entity.
type ResultEventCreate struct {
	config
	mutation *ResultEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ResultEventCreate) SetSequence(v int64) *ResultEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ResultEventCreate) SetCreatedAt(v time.Time) *ResultEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ResultEventCreate) SetNillableCreatedAt(v *time.Time) *ResultEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ResultEventCreate) SetUserID(v string) *ResultEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTestSlug sets the "test_slug" field.
func (_c *ResultEventCreate) SetTestSlug(v string) *ResultEventCreate {
	_c.mutation.SetTestSlug(v)
	return _c
}

// SetTestTitle sets the "test_title" field.
func (_c *ResultEventCreate) SetTestTitle(v string) *ResultEventCreate {
	_c.mutation.SetTestTitle(v)
	return _c
}

// SetScorePct sets the "score_pct" field.
func (_c *ResultEventCreate) SetScorePct(v int) *ResultEventCreate {
	_c.mutation.SetScorePct(v)
	return _c
}

// SetBandTitle sets the "band_title" field.
func (_c *ResultEventCreate) SetBandTitle(v string) *ResultEventCreate {
	_c.mutation.SetBandTitle(v)
	return _c
}

// SetBandSummary sets the "band_summary" field.
func (_c *ResultEventCreate) SetBandSummary(v string) *ResultEventCreate {
	_c.mutation.SetBandSummary(v)
	return _c
}

// SetAnswers sets the "answers" field.
func (_c *ResultEventCreate) SetAnswers(v []*int) *ResultEventCreate {
	_c.mutation.SetAnswers(v)
	return _c
}

// SetAttemptID sets the "attempt_id" field.
func (_c *ResultEventCreate) SetAttemptID(v string) *ResultEventCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// Mutation returns the ResultEventMutation object of the builder.
func (_c *ResultEventCreate) Mutation() *ResultEventMutation {
	return _c.mutation
}

// Save creates the ResultEvent in the database.
func (_c *ResultEventCreate) Save(ctx context.Context) (*ResultEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResultEventCreate) SaveX(ctx context.Context) *ResultEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResultEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResultEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResultEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := resultevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResultEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ResultEvent.sequence"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ResultEvent.created_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ResultEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := resultevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TestSlug(); !ok {
		return &ValidationError{Name: "test_slug", err: errors.New(`ent: missing required field "ResultEvent.test_slug"`)}
	}
	if v, ok := _c.mutation.TestSlug(); ok {
		if err := resultevent.TestSlugValidator(v); err != nil {
			return &ValidationError{Name: "test_slug", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.test_slug": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TestTitle(); !ok {
		return &ValidationError{Name: "test_title", err: errors.New(`ent: missing required field "ResultEvent.test_title"`)}
	}
	if v, ok := _c.mutation.TestTitle(); ok {
		if err := resultevent.TestTitleValidator(v); err != nil {
			return &ValidationError{Name: "test_title", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.test_title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScorePct(); !ok {
		return &ValidationError{Name: "score_pct", err: errors.New(`ent: missing required field "ResultEvent.score_pct"`)}
	}
	if v, ok := _c.mutation.ScorePct(); ok {
		if err := resultevent.ScorePctValidator(v); err != nil {
			return &ValidationError{Name: "score_pct", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.score_pct": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BandTitle(); !ok {
		return &ValidationError{Name: "band_title", err: errors.New(`ent: missing required field "ResultEvent.band_title"`)}
	}
	if _, ok := _c.mutation.BandSummary(); !ok {
		return &ValidationError{Name: "band_summary", err: errors.New(`ent: missing required field "ResultEvent.band_summary"`)}
	}
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "ResultEvent.attempt_id"`)}
	}
	if v, ok := _c.mutation.AttemptID(); ok {
		if err := resultevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.attempt_id": %w`, err)}
		}
	}
	return nil
}

func (_c *ResultEventCreate) sqlSave(ctx context.Context) (*ResultEvent, error) {
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

func (_c *ResultEventCreate) createSpec() (*ResultEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ResultEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(resultevent.Table, sqlgraph.NewFieldSpec(resultevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(resultevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(resultevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(resultevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.TestSlug(); ok {
		_spec.SetField(resultevent.FieldTestSlug, field.TypeString, value)
		_node.TestSlug = value
	}
	if value, ok := _c.mutation.TestTitle(); ok {
		_spec.SetField(resultevent.FieldTestTitle, field.TypeString, value)
		_node.TestTitle = value
	}
	if value, ok := _c.mutation.ScorePct(); ok {
		_spec.SetField(resultevent.FieldScorePct, field.TypeInt, value)
		_node.ScorePct = value
	}
	if value, ok := _c.mutation.BandTitle(); ok {
		_spec.SetField(resultevent.FieldBandTitle, field.TypeString, value)
		_node.BandTitle = value
	}
	if value, ok := _c.mutation.BandSummary(); ok {
		_spec.SetField(resultevent.FieldBandSummary, field.TypeString, value)
		_node.BandSummary = value
	}
	if value, ok := _c.mutation.Answers(); ok {
		_spec.SetField(resultevent.FieldAnswers, field.TypeJSON, value)
		_node.Answers = value
	}
	if value, ok := _c.mutation.AttemptID(); ok {
		_spec.SetField(resultevent.FieldAttemptID, field.TypeString, value)
		_node.AttemptID = value
	}
	return _node, _spec
}

// ResultEventCreateBulk is the builder for creating many ResultEvent entities in bulk.
type ResultEventCreateBulk struct {
	config
	err      error
	builders []*ResultEventCreate
}

// Save creates the ResultEvent entities in the database.
func (_c *ResultEventCreateBulk) Save(ctx context.Context) ([]*ResultEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ResultEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResultEventMutation)
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
func (_c *ResultEventCreateBulk) SaveX(ctx context.Context) []*ResultEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResultEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResultEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
