// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/oyunsanaa/oyunsanaa/ent/moodevent"
	"github.com/oyunsanaa/oyunsanaa/ent/resultevent"
	"github.com/oyunsanaa/oyunsanaa/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	moodeventMixin := schema.MoodEvent{}.Mixin()
	moodeventMixinFields0 := moodeventMixin[0].Fields()
	_ = moodeventMixinFields0
	moodeventFields := schema.MoodEvent{}.Fields()
	_ = moodeventFields
	// moodeventDescCreatedAt is the schema descriptor for created_at field.
	moodeventDescCreatedAt := moodeventMixinFields0[1].Descriptor()
	// moodevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	moodevent.DefaultCreatedAt = moodeventDescCreatedAt.Default.(func() time.Time)
	// moodeventDescUserID is the schema descriptor for user_id field.
	moodeventDescUserID := moodeventFields[0].Descriptor()
	// moodevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	moodevent.UserIDValidator = moodeventDescUserID.Validators[0].(func(string) error)
	// moodeventDescScore is the schema descriptor for score field.
	moodeventDescScore := moodeventFields[1].Descriptor()
	// moodevent.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	moodevent.ScoreValidator = func() func(int) error {
		validators := moodeventDescScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(score int) error {
			for _, fn := range fns {
				if err := fn(score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	resulteventMixin := schema.ResultEvent{}.Mixin()
	resulteventMixinFields0 := resulteventMixin[0].Fields()
	_ = resulteventMixinFields0
	resulteventFields := schema.ResultEvent{}.Fields()
	_ = resulteventFields
	// resulteventDescCreatedAt is the schema descriptor for created_at field.
	resulteventDescCreatedAt := resulteventMixinFields0[1].Descriptor()
	// resultevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	resultevent.DefaultCreatedAt = resulteventDescCreatedAt.Default.(func() time.Time)
	// resulteventDescUserID is the schema descriptor for user_id field.
	resulteventDescUserID := resulteventFields[0].Descriptor()
	// resultevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	resultevent.UserIDValidator = resulteventDescUserID.Validators[0].(func(string) error)
	// resulteventDescTestSlug is the schema descriptor for test_slug field.
	resulteventDescTestSlug := resulteventFields[1].Descriptor()
	// resultevent.TestSlugValidator is a validator for the "test_slug" field. It is called by the builders before save.
	resultevent.TestSlugValidator = resulteventDescTestSlug.Validators[0].(func(string) error)
	// resulteventDescTestTitle is the schema descriptor for test_title field.
	resulteventDescTestTitle := resulteventFields[2].Descriptor()
	// resultevent.TestTitleValidator is a validator for the "test_title" field. It is called by the builders before save.
	resultevent.TestTitleValidator = resulteventDescTestTitle.Validators[0].(func(string) error)
	// resulteventDescScorePct is the schema descriptor for score_pct field.
	resulteventDescScorePct := resulteventFields[3].Descriptor()
	// resultevent.ScorePctValidator is a validator for the "score_pct" field. It is called by the builders before save.
	resultevent.ScorePctValidator = func() func(int) error {
		validators := resulteventDescScorePct.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(score_pct int) error {
			for _, fn := range fns {
				if err := fn(score_pct); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// resulteventDescAttemptID is the schema descriptor for attempt_id field.
	resulteventDescAttemptID := resulteventFields[7].Descriptor()
	// resultevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	resultevent.AttemptIDValidator = resulteventDescAttemptID.Validators[0].(func(string) error)
}
