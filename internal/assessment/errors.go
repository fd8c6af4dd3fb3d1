package assessment

import "fmt"

// ErrNoBandDefined indicates an instrument without any bands reached the
// scorer. This is a catalog misconfiguration, not a runtime condition.
type ErrNoBandDefined struct {
	Slug string
}

func (e *ErrNoBandDefined) Error() string {
	return fmt.Sprintf("instrument %q defines no score bands", e.Slug)
}

// ErrInvalidOption indicates a recorded weight that is not one of the
// question's own option weights.
type ErrInvalidOption struct {
	QuestionID string
	Weight     int
}

func (e *ErrInvalidOption) Error() string {
	return fmt.Sprintf("weight %d is not an option of question %q", e.Weight, e.QuestionID)
}

// ErrUnknownQuestion indicates a question id that does not belong to the
// attempt's instrument.
type ErrUnknownQuestion struct {
	QuestionID string
}

func (e *ErrUnknownQuestion) Error() string {
	return fmt.Sprintf("question %q is not part of this instrument", e.QuestionID)
}
