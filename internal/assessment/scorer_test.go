package assessment

import (
	"errors"
	"math"
	"testing"

	"github.com/oyunsanaa/oyunsanaa/internal/catalog"
)

// testInstrument builds a 3-question instrument with max weight 4 and
// the standard band ladder.
func testInstrument() *catalog.Instrument {
	opts := []catalog.Option{
		{Label: "Never", Weight: 0},
		{Label: "Sometimes", Weight: 2},
		{Label: "Almost always", Weight: 4},
	}
	return &catalog.Instrument{
		Slug:      "check",
		Title:     "Check",
		Version:   "v1.0.0",
		Category:  "emotion",
		MaxWeight: 4,
		Questions: []catalog.Question{
			{ID: "q1", Domain: catalog.DomainEmotion, Text: "one", Options: opts},
			{ID: "q2", Domain: catalog.DomainEmotion, Text: "two", Options: opts},
			{ID: "q3", Domain: catalog.DomainStress, Text: "three", Options: opts},
		},
		Bands: []catalog.Band{
			{Threshold: 0.75, Title: "High", Summary: "high"},
			{Threshold: 0.5, Title: "Mid", Summary: "mid"},
			{Threshold: 0, Title: "Low", Summary: "low"},
		},
	}
}

func mustRecord(t *testing.T, a *Attempt, qid string, w int) {
	t.Helper()
	if err := a.Record(qid, w); err != nil {
		t.Fatalf("record %s=%d: %v", qid, w, err)
	}
}

func TestScoreEmptyAttemptIsZero(t *testing.T) {
	in := testInstrument()
	res, err := Score(in, NewAttempt(in))
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if res.Percentage != 0 {
		t.Errorf("percentage = %v, want 0", res.Percentage)
	}
	if res.Band.Title != "Low" {
		t.Errorf("band = %q, want Low", res.Band.Title)
	}
}

func TestScorePartialAttemptDeflates(t *testing.T) {
	// q1=4, q2=2, q3 absent: numerator 6, denominator 12, pct 0.5,
	// resolving to the highest band with threshold <= 0.5.
	in := testInstrument()
	a := NewAttempt(in)
	mustRecord(t, a, "q1", 4)
	mustRecord(t, a, "q2", 2)

	res, err := Score(in, a)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if res.Percentage != 0.5 {
		t.Errorf("percentage = %v, want 0.5", res.Percentage)
	}
	if res.Band.Title != "Mid" {
		t.Errorf("band = %q, want Mid", res.Band.Title)
	}
}

func TestScoreHalfAnsweredNeverExceedsHalf(t *testing.T) {
	// Maximum weight on half the questions caps the score at the
	// answered share of the denominator.
	opts := []catalog.Option{{Label: "No", Weight: 0}, {Label: "Yes", Weight: 4}}
	in := &catalog.Instrument{
		Slug: "even", Title: "Even", Version: "v1.0.0", Category: "emotion", MaxWeight: 4,
		Questions: []catalog.Question{
			{ID: "q1", Domain: catalog.DomainEmotion, Text: "a", Options: opts},
			{ID: "q2", Domain: catalog.DomainEmotion, Text: "b", Options: opts},
			{ID: "q3", Domain: catalog.DomainEmotion, Text: "c", Options: opts},
			{ID: "q4", Domain: catalog.DomainEmotion, Text: "d", Options: opts},
		},
		Bands: []catalog.Band{{Threshold: 0, Title: "Only", Summary: "s"}},
	}
	a := NewAttempt(in)
	mustRecord(t, a, "q1", 4)
	mustRecord(t, a, "q2", 4)

	res, err := Score(in, a)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if res.Percentage > 0.5 {
		t.Errorf("percentage = %v, want <= 0.5", res.Percentage)
	}
}

func TestScoreMonotonicAsAnswersAccumulate(t *testing.T) {
	in := testInstrument()
	a := NewAttempt(in)

	prev := -1.0
	for _, qid := range []string{"q1", "q2", "q3"} {
		mustRecord(t, a, qid, 2)
		res, err := Score(in, a)
		if err != nil {
			t.Fatalf("score after %s: %v", qid, err)
		}
		if res.Percentage < prev {
			t.Errorf("percentage decreased: %v after %v", res.Percentage, prev)
		}
		prev = res.Percentage
	}
}

func TestScoreNoBands(t *testing.T) {
	in := testInstrument()
	in.Bands = nil
	_, err := Score(in, NewAttempt(in))
	var nb *ErrNoBandDefined
	if !errors.As(err, &nb) {
		t.Fatalf("expected ErrNoBandDefined, got %v", err)
	}
}

func TestScoreZeroDenominatorGuard(t *testing.T) {
	in := testInstrument()
	in.Questions = nil
	res, err := Score(in, &Attempt{Instrument: in, answers: map[string]int{}})
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if res.Percentage != 0 {
		t.Errorf("percentage = %v, want 0", res.Percentage)
	}
}

func TestResolveBandFallbackWhenNoneQualify(t *testing.T) {
	bands := []catalog.Band{
		{Threshold: 0.8, Title: "High"},
		{Threshold: 0.4, Title: "Mid"},
	}
	// 0.1 qualifies for neither; the lowest threshold is the fallback.
	got := resolveBand(bands, 0.1)
	if got.Title != "Mid" {
		t.Errorf("fallback band = %q, want Mid", got.Title)
	}
}

func TestResolveBandTotality(t *testing.T) {
	// With a zero-threshold band present, every percentage in [0,1]
	// resolves to exactly one band.
	in := testInstrument()
	for pct := 0.0; pct <= 1.0+1e-9; pct += 0.05 {
		b := resolveBand(in.Bands, pct)
		if b.Title == "" {
			t.Fatalf("no band resolved for pct %v", pct)
		}
		switch {
		case pct >= 0.75 && b.Title != "High":
			t.Errorf("pct %v resolved to %q, want High", pct, b.Title)
		case pct >= 0.5 && pct < 0.75 && b.Title != "Mid":
			t.Errorf("pct %v resolved to %q, want Mid", pct, b.Title)
		case pct < 0.5 && b.Title != "Low" && !nearly(pct, 0.5):
			t.Errorf("pct %v resolved to %q, want Low", pct, b.Title)
		}
	}
}

func nearly(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
