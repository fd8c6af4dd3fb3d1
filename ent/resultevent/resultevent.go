// Code generated by ent, DO NOT EDIT.

package resultevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the resultevent type in the database.
	Label = "result_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTestSlug holds the string denoting the test_slug field in the database.
	FieldTestSlug = "test_slug"
	// FieldTestTitle holds the string denoting the test_title field in the database.
	FieldTestTitle = "test_title"
	// FieldScorePct holds the string denoting the score_pct field in the database.
	FieldScorePct = "score_pct"
	// FieldBandTitle holds the string denoting the band_title field in the database.
	FieldBandTitle = "band_title"
	// FieldBandSummary holds the string denoting the band_summary field in the database.
	FieldBandSummary = "band_summary"
	// FieldAnswers holds the string denoting the answers field in the database.
	FieldAnswers = "answers"
	// FieldAttemptID holds the string denoting the attempt_id field in the database.
	FieldAttemptID = "attempt_id"
	// Table holds the table name of the resultevent in the database.
	Table = "result_events"
)

// Columns holds all SQL columns for resultevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldCreatedAt,
	FieldUserID,
	FieldTestSlug,
	FieldTestTitle,
	FieldScorePct,
	FieldBandTitle,
	FieldBandSummary,
	FieldAnswers,
	FieldAttemptID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// TestSlugValidator is a validator for the "test_slug" field. It is called by the builders before save.
	TestSlugValidator func(string) error
	// TestTitleValidator is a validator for the "test_title" field. It is called by the builders before save.
	TestTitleValidator func(string) error
	// ScorePctValidator is a validator for the "score_pct" field. It is called by the builders before save.
	ScorePctValidator func(int) error
	// AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	AttemptIDValidator func(string) error
)

// OrderOption defines the ordering options for the ResultEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTestSlug orders the results by the test_slug field.
func ByTestSlug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestSlug, opts...).ToFunc()
}

// ByTestTitle orders the results by the test_title field.
func ByTestTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestTitle, opts...).ToFunc()
}

// ByScorePct orders the results by the score_pct field.
func ByScorePct(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScorePct, opts...).ToFunc()
}

// ByBandTitle orders the results by the band_title field.
func ByBandTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBandTitle, opts...).ToFunc()
}

// ByBandSummary orders the results by the band_summary field.
func ByBandSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBandSummary, opts...).ToFunc()
}

// ByAttemptID orders the results by the attempt_id field.
func ByAttemptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptID, opts...).ToFunc()
}
