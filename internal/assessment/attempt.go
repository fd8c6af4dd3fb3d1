package assessment

import (
	"time"

	"github.com/google/uuid"

	"github.com/oyunsanaa/oyunsanaa/internal/catalog"
)

// Status tracks where an attempt is in its lifecycle.
type Status int

const (
	StatusNotStarted Status = iota // no answers recorded yet
	StatusInProgress               // at least one answer, not all
	StatusComplete                 // every question answered
)

// Label returns the display label for an attempt status.
func (s Status) Label() string {
	switch s {
	case StatusNotStarted:
		return "Not started"
	case StatusInProgress:
		return "In progress"
	case StatusComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// Attempt accumulates one user's answers for a single instrument.
// It is owned by the interacting session; no locking is needed.
type Attempt struct {
	ID         string // uuid, doubles as the remote idempotency key
	Instrument *catalog.Instrument
	StartedAt  time.Time

	answers map[string]int // question id -> recorded weight
}

// NewAttempt starts an empty attempt for the given instrument.
func NewAttempt(in *catalog.Instrument) *Attempt {
	return &Attempt{
		ID:         uuid.New().String(),
		Instrument: in,
		StartedAt:  time.Now(),
		answers:    make(map[string]int, len(in.Questions)),
	}
}

// Record stores the chosen weight for a question, overwriting any prior
// value. Recording after completion legally reopens the attempt; scoring
// is idempotent and can be recomputed at any time.
func (a *Attempt) Record(questionID string, weight int) error {
	q, ok := a.Instrument.QuestionByID(questionID)
	if !ok {
		return &ErrUnknownQuestion{QuestionID: questionID}
	}
	if !q.HasWeight(weight) {
		return &ErrInvalidOption{QuestionID: questionID, Weight: weight}
	}
	a.answers[questionID] = weight
	return nil
}

// Answer returns the recorded weight for a question, or false when
// unanswered.
func (a *Attempt) Answer(questionID string) (int, bool) {
	w, ok := a.answers[questionID]
	return w, ok
}

// Answers returns weight-or-absent per question in instrument order.
// Absent answers are nil entries, preserving position.
func (a *Attempt) Answers() []*int {
	out := make([]*int, len(a.Instrument.Questions))
	for i, q := range a.Instrument.Questions {
		if w, ok := a.answers[q.ID]; ok {
			v := w
			out[i] = &v
		}
	}
	return out
}

// IsComplete reports whether every question has a recorded value.
func (a *Attempt) IsComplete() bool {
	for _, q := range a.Instrument.Questions {
		if _, ok := a.answers[q.ID]; !ok {
			return false
		}
	}
	return true
}

// Progress returns answered and total question counts. This is the
// count-based UI progress, distinct from the weight-based score.
func (a *Attempt) Progress() (answered, total int) {
	return len(a.answers), len(a.Instrument.Questions)
}

// Status derives the lifecycle status from the recorded answers.
func (a *Attempt) Status() Status {
	switch {
	case len(a.answers) == 0:
		return StatusNotStarted
	case a.IsComplete():
		return StatusComplete
	default:
		return StatusInProgress
	}
}
