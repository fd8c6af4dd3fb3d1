package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MoodEvent records a single mood check-in.
type MoodEvent struct {
	ent.Schema
}

func (MoodEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (MoodEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Immutable().
			Comment("Owner, resolved from the verified session"),
		field.Int("score").
			Min(1).
			Max(5).
			Immutable().
			Comment("Mood on a 1 (low) to 5 (high) scale"),
		field.String("note").
			Optional().
			Immutable().
			Comment("Optional free-text note"),
	}
}

func (MoodEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
