// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// MoodEventsColumns holds the columns for the "mood_events" table.
	MoodEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "note", Type: field.TypeString, Nullable: true},
	}
	// MoodEventsTable holds the schema information for the "mood_events" table.
	MoodEventsTable = &schema.Table{
		Name:       "mood_events",
		Columns:    MoodEventsColumns,
		PrimaryKey: []*schema.Column{MoodEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "moodevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{MoodEventsColumns[1]},
			},
			{
				Name:    "moodevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{MoodEventsColumns[2]},
			},
			{
				Name:    "moodevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{MoodEventsColumns[3]},
			},
		},
	}
	// ResultEventsColumns holds the columns for the "result_events" table.
	ResultEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "test_slug", Type: field.TypeString},
		{Name: "test_title", Type: field.TypeString},
		{Name: "score_pct", Type: field.TypeInt},
		{Name: "band_title", Type: field.TypeString},
		{Name: "band_summary", Type: field.TypeString},
		{Name: "answers", Type: field.TypeJSON, Nullable: true},
		{Name: "attempt_id", Type: field.TypeString},
	}
	// ResultEventsTable holds the schema information for the "result_events" table.
	ResultEventsTable = &schema.Table{
		Name:       "result_events",
		Columns:    ResultEventsColumns,
		PrimaryKey: []*schema.Column{ResultEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "resultevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ResultEventsColumns[1]},
			},
			{
				Name:    "resultevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{ResultEventsColumns[2]},
			},
			{
				Name:    "resultevent_user_id_test_slug",
				Unique:  false,
				Columns: []*schema.Column{ResultEventsColumns[3], ResultEventsColumns[4]},
			},
			{
				Name:    "resultevent_user_id_test_slug_attempt_id",
				Unique:  true,
				Columns: []*schema.Column{ResultEventsColumns[3], ResultEventsColumns[4], ResultEventsColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		MoodEventsTable,
		ResultEventsTable,
	}
)

func init() {
}
