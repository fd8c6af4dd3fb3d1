// Package results owns scored-result persistence: a best-effort local
// cache for instant re-display and a durable remote store that is the
// system of record for cross-device history.
package results

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/oyunsanaa/oyunsanaa/internal/catalog"
)

// ErrInvalidInput indicates a malformed or incomplete result payload,
// rejected before any store mutation.
var ErrInvalidInput = errors.New("invalid result payload")

// ErrStoreUnavailable wraps failures of the durable store. Callers see
// it verbatim; there is no automatic retry.
type ErrStoreUnavailable struct {
	Err error
}

func (e *ErrStoreUnavailable) Error() string {
	return fmt.Sprintf("durable store unavailable: %v", e.Err)
}

func (e *ErrStoreUnavailable) Unwrap() error { return e.Err }

// ScoredResult is the immutable outcome of one completed (or abandoned
// mid-way) attempt, ready for persistence. Ownership transfers here from
// the presentation layer once scoring finishes.
type ScoredResult struct {
	Slug       string
	Title      string
	Category   string
	Percentage float64 // fractional, 0.0 - 1.0
	Band       catalog.Band
	Answers    []*int // weight-or-absent per question, instrument order
	AttemptID  string // idempotency key for the remote write
	CreatedAt  time.Time
}

// ScorePct converts the fractional percentage to the integer 0-100
// scale used at every persistence boundary, rounded and clamped.
func (r ScoredResult) ScorePct() int {
	return ClampPct(int(math.Round(r.Percentage * 100)))
}

// ClampPct clamps an integer percentage into [0,100].
func ClampPct(pct int) int {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// Validate checks the fields the remote write contract requires.
func (r ScoredResult) Validate() error {
	if r.Slug == "" {
		return fmt.Errorf("%w: missing instrument slug", ErrInvalidInput)
	}
	if r.Title == "" {
		return fmt.Errorf("%w: missing instrument title", ErrInvalidInput)
	}
	return nil
}

// StoredResult is one immutable row of the durable store.
type StoredResult struct {
	UserID      string
	Slug        string
	Title       string
	ScorePct    int // 0-100
	BandTitle   string
	BandSummary string
	Answers     []*int
	AttemptID   string
	CreatedAt   time.Time
}
