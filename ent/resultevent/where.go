// Code generated by ent, DO NOT EDIT.

package resultevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/oyunsanaa/oyunsanaa/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldSequence, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldUserID, v))
}

// TestSlug applies equality check predicate on the "test_slug" field. It's identical to TestSlugEQ.
func TestSlug(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldTestSlug, v))
}

// TestTitle applies equality check predicate on the "test_title" field. It's identical to TestTitleEQ.
func TestTitle(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldTestTitle, v))
}

// ScorePct applies equality check predicate on the "score_pct" field. It's identical to ScorePctEQ.
func ScorePct(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldScorePct, v))
}

// BandTitle applies equality check predicate on the "band_title" field. It's identical to BandTitleEQ.
func BandTitle(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldBandTitle, v))
}

// BandSummary applies equality check predicate on the "band_summary" field. It's identical to BandSummaryEQ.
func BandSummary(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldBandSummary, v))
}

// AttemptID applies equality check predicate on the "attempt_id" field. It's identical to AttemptIDEQ.
func AttemptID(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldAttemptID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldSequence, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldContainsFold(FieldUserID, v))
}

// TestSlugEQ applies the EQ predicate on the "test_slug" field.
func TestSlugEQ(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldTestSlug, v))
}

// TestSlugNEQ applies the NEQ predicate on the "test_slug" field.
func TestSlugNEQ(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldTestSlug, v))
}

// TestSlugIn applies the In predicate on the "test_slug" field.
func TestSlugIn(vs ...string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldTestSlug, vs...))
}

// TestSlugNotIn applies the NotIn predicate on the "test_slug" field.
func TestSlugNotIn(vs ...string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldTestSlug, vs...))
}

// TestSlugGT applies the GT predicate on the "test_slug" field.
func TestSlugGT(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldTestSlug, v))
}

// TestSlugGTE applies the GTE predicate on the "test_slug" field.
func TestSlugGTE(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldTestSlug, v))
}

// TestSlugLT applies the LT predicate on the "test_slug" field.
func TestSlugLT(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldTestSlug, v))
}

// TestSlugLTE applies the LTE predicate on the "test_slug" field.
func TestSlugLTE(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldTestSlug, v))
}

// TestSlugContains applies the Contains predicate on the "test_slug" field.
func TestSlugContains(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldContains(FieldTestSlug, v))
}

// TestSlugHasPrefix applies the HasPrefix predicate on the "test_slug" field.
func TestSlugHasPrefix(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldHasPrefix(FieldTestSlug, v))
}

// TestSlugHasSuffix applies the HasSuffix predicate on the "test_slug" field.
func TestSlugHasSuffix(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldHasSuffix(FieldTestSlug, v))
}

// TestSlugEqualFold applies the EqualFold predicate on the "test_slug" field.
func TestSlugEqualFold(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEqualFold(FieldTestSlug, v))
}

// TestSlugContainsFold applies the ContainsFold predicate on the "test_slug" field.
func TestSlugContainsFold(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldContainsFold(FieldTestSlug, v))
}

// TestTitleEQ applies the EQ predicate on the "test_title" field.
func TestTitleEQ(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldTestTitle, v))
}

// TestTitleNEQ applies the NEQ predicate on the "test_title" field.
func TestTitleNEQ(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldTestTitle, v))
}

// TestTitleIn applies the In predicate on the "test_title" field.
func TestTitleIn(vs ...string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldTestTitle, vs...))
}

// TestTitleNotIn applies the NotIn predicate on the "test_title" field.
func TestTitleNotIn(vs ...string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldTestTitle, vs...))
}

// TestTitleGT applies the GT predicate on the "test_title" field.
func TestTitleGT(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldTestTitle, v))
}

// TestTitleGTE applies the GTE predicate on the "test_title" field.
func TestTitleGTE(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldTestTitle, v))
}

// TestTitleLT applies the LT predicate on the "test_title" field.
func TestTitleLT(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldTestTitle, v))
}

// TestTitleLTE applies the LTE predicate on the "test_title" field.
func TestTitleLTE(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldTestTitle, v))
}

// TestTitleContains applies the Contains predicate on the "test_title" field.
func TestTitleContains(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldContains(FieldTestTitle, v))
}

// TestTitleHasPrefix applies the HasPrefix predicate on the "test_title" field.
func TestTitleHasPrefix(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldHasPrefix(FieldTestTitle, v))
}

// TestTitleHasSuffix applies the HasSuffix predicate on the "test_title" field.
func TestTitleHasSuffix(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldHasSuffix(FieldTestTitle, v))
}

// TestTitleEqualFold applies the EqualFold predicate on the "test_title" field.
func TestTitleEqualFold(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEqualFold(FieldTestTitle, v))
}

// TestTitleContainsFold applies the ContainsFold predicate on the "test_title" field.
func TestTitleContainsFold(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldContainsFold(FieldTestTitle, v))
}

// ScorePctEQ applies the EQ predicate on the "score_pct" field.
func ScorePctEQ(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldScorePct, v))
}

// ScorePctNEQ applies the NEQ predicate on the "score_pct" field.
func ScorePctNEQ(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldScorePct, v))
}

// ScorePctIn applies the In predicate on the "score_pct" field.
func ScorePctIn(vs ...int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldScorePct, vs...))
}

// ScorePctNotIn applies the NotIn predicate on the "score_pct" field.
func ScorePctNotIn(vs ...int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldScorePct, vs...))
}

// ScorePctGT applies the GT predicate on the "score_pct" field.
func ScorePctGT(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldScorePct, v))
}

// ScorePctGTE applies the GTE predicate on the "score_pct" field.
func ScorePctGTE(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldScorePct, v))
}

// ScorePctLT applies the LT predicate on the "score_pct" field.
func ScorePctLT(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldScorePct, v))
}

// ScorePctLTE applies the LTE predicate on the "score_pct" field.
func ScorePctLTE(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldScorePct, v))
}

// BandTitleEQ applies the EQ predicate on the "band_title" field.
func BandTitleEQ(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldBandTitle, v))
}

// BandTitleNEQ applies the NEQ predicate on the "band_title" field.
func BandTitleNEQ(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldBandTitle, v))
}

// BandTitleIn applies the In predicate on the "band_title" field.
func BandTitleIn(vs ...string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldBandTitle, vs...))
}

// BandTitleNotIn applies the NotIn predicate on the "band_title" field.
func BandTitleNotIn(vs ...string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldBandTitle, vs...))
}

// BandTitleGT applies the GT predicate on the "band_title" field.
func BandTitleGT(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldBandTitle, v))
}

// BandTitleGTE applies the GTE predicate on the "band_title" field.
func BandTitleGTE(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldBandTitle, v))
}

// BandTitleLT applies the LT predicate on the "band_title" field.
func BandTitleLT(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldBandTitle, v))
}

// BandTitleLTE applies the LTE predicate on the "band_title" field.
func BandTitleLTE(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldBandTitle, v))
}

// BandTitleContains applies the Contains predicate on the "band_title" field.
func BandTitleContains(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldContains(FieldBandTitle, v))
}

// BandTitleHasPrefix applies the HasPrefix predicate on the "band_title" field.
func BandTitleHasPrefix(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldHasPrefix(FieldBandTitle, v))
}

// BandTitleHasSuffix applies the HasSuffix predicate on the "band_title" field.
func BandTitleHasSuffix(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldHasSuffix(FieldBandTitle, v))
}

// BandTitleEqualFold applies the EqualFold predicate on the "band_title" field.
func BandTitleEqualFold(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEqualFold(FieldBandTitle, v))
}

// BandTitleContainsFold applies the ContainsFold predicate on the "band_title" field.
func BandTitleContainsFold(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldContainsFold(FieldBandTitle, v))
}

// BandSummaryEQ applies the EQ predicate on the "band_summary" field.
func BandSummaryEQ(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldBandSummary, v))
}

// BandSummaryNEQ applies the NEQ predicate on the "band_summary" field.
func BandSummaryNEQ(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldBandSummary, v))
}

// BandSummaryIn applies the In predicate on the "band_summary" field.
func BandSummaryIn(vs ...string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldBandSummary, vs...))
}

// BandSummaryNotIn applies the NotIn predicate on the "band_summary" field.
func BandSummaryNotIn(vs ...string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldBandSummary, vs...))
}

// BandSummaryGT applies the GT predicate on the "band_summary" field.
func BandSummaryGT(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldBandSummary, v))
}

// BandSummaryGTE applies the GTE predicate on the "band_summary" field.
func BandSummaryGTE(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldBandSummary, v))
}

// BandSummaryLT applies the LT predicate on the "band_summary" field.
func BandSummaryLT(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldBandSummary, v))
}

// BandSummaryLTE applies the LTE predicate on the "band_summary" field.
func BandSummaryLTE(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldBandSummary, v))
}

// BandSummaryContains applies the Contains predicate on the "band_summary" field.
func BandSummaryContains(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldContains(FieldBandSummary, v))
}

// BandSummaryHasPrefix applies the HasPrefix predicate on the "band_summary" field.
func BandSummaryHasPrefix(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldHasPrefix(FieldBandSummary, v))
}

// BandSummaryHasSuffix applies the HasSuffix predicate on the "band_summary" field.
func BandSummaryHasSuffix(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldHasSuffix(FieldBandSummary, v))
}

// BandSummaryEqualFold applies the EqualFold predicate on the "band_summary" field.
func BandSummaryEqualFold(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEqualFold(FieldBandSummary, v))
}

// BandSummaryContainsFold applies the ContainsFold predicate on the "band_summary" field.
func BandSummaryContainsFold(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldContainsFold(FieldBandSummary, v))
}

// AnswersIsNil applies the IsNil predicate on the "answers" field.
func AnswersIsNil() predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIsNull(FieldAnswers))
}

// AnswersNotNil applies the NotNil predicate on the "answers" field.
func AnswersNotNil() predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotNull(FieldAnswers))
}

// AttemptIDEQ applies the EQ predicate on the "attempt_id" field.
func AttemptIDEQ(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldAttemptID, v))
}

// AttemptIDNEQ applies the NEQ predicate on the "attempt_id" field.
func AttemptIDNEQ(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldAttemptID, v))
}

// AttemptIDIn applies the In predicate on the "attempt_id" field.
func AttemptIDIn(vs ...string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldAttemptID, vs...))
}

// AttemptIDNotIn applies the NotIn predicate on the "attempt_id" field.
func AttemptIDNotIn(vs ...string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldAttemptID, vs...))
}

// AttemptIDGT applies the GT predicate on the "attempt_id" field.
func AttemptIDGT(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldAttemptID, v))
}

// AttemptIDGTE applies the GTE predicate on the "attempt_id" field.
func AttemptIDGTE(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldAttemptID, v))
}

// AttemptIDLT applies the LT predicate on the "attempt_id" field.
func AttemptIDLT(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldAttemptID, v))
}

// AttemptIDLTE applies the LTE predicate on the "attempt_id" field.
func AttemptIDLTE(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldAttemptID, v))
}

// AttemptIDContains applies the Contains predicate on the "attempt_id" field.
func AttemptIDContains(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldContains(FieldAttemptID, v))
}

// AttemptIDHasPrefix applies the HasPrefix predicate on the "attempt_id" field.
func AttemptIDHasPrefix(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldHasPrefix(FieldAttemptID, v))
}

// AttemptIDHasSuffix applies the HasSuffix predicate on the "attempt_id" field.
func AttemptIDHasSuffix(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldHasSuffix(FieldAttemptID, v))
}

// AttemptIDEqualFold applies the EqualFold predicate on the "attempt_id" field.
func AttemptIDEqualFold(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEqualFold(FieldAttemptID, v))
}

// AttemptIDContainsFold applies the ContainsFold predicate on the "attempt_id" field.
func AttemptIDContainsFold(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldContainsFold(FieldAttemptID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ResultEvent) predicate.ResultEvent {
	return predicate.ResultEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ResultEvent) predicate.ResultEvent {
	return predicate.ResultEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ResultEvent) predicate.ResultEvent {
	return predicate.ResultEvent(sql.NotPredicates(p))
}
