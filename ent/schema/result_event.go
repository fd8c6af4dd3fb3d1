package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResultEvent is one immutable scored-result row: the durable history
// record for a completed assessment attempt. Rows are only ever
// appended, never updated or deleted.
type ResultEvent struct {
	ent.Schema
}

func (ResultEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ResultEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Immutable().
			Comment("Owner, resolved from the verified session"),
		field.String("test_slug").
			NotEmpty().
			Immutable().
			Comment("Instrument identifier"),
		field.String("test_title").
			NotEmpty().
			Immutable().
			Comment("Instrument title at scoring time"),
		field.Int("score_pct").
			Min(0).
			Max(100).
			Immutable().
			Comment("Score as an integer percentage 0-100"),
		field.String("band_title").
			Immutable().
			Comment("Resolved band title"),
		field.String("band_summary").
			Immutable().
			Comment("Resolved band summary"),
		field.JSON("answers", []*int{}).
			Optional().
			Immutable().
			Comment("Recorded weight or null per question, instrument order"),
		field.String("attempt_id").
			NotEmpty().
			Immutable().
			Comment("Attempt idempotency key"),
	}
}

func (ResultEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "test_slug"),
		// Dedupe guard: a literal double-submit of the same attempt
		// cannot create a second history row.
		index.Fields("user_id", "test_slug", "attempt_id").Unique(),
	}
}
