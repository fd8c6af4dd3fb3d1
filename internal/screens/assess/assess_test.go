package assess

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/oyunsanaa/oyunsanaa/internal/catalog"
	"github.com/oyunsanaa/oyunsanaa/internal/identity"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testInstrument() *catalog.Instrument {
	opts := []catalog.Option{
		{Label: "Never", Weight: 0},
		{Label: "Often", Weight: 2},
	}
	return &catalog.Instrument{
		Slug:      "pulse",
		Title:     "Pulse Check",
		Version:   "v1.0.0",
		Category:  "emotion",
		MaxWeight: 2,
		Questions: []catalog.Question{
			{ID: "q1", Domain: catalog.DomainEmotion, Text: "Feeling rested?", Options: opts},
			{ID: "q2", Domain: catalog.DomainEmotion, Text: "Feeling calm?", Options: opts},
			{ID: "q3", Domain: catalog.DomainEmotion, Text: "Feeling connected?", Options: opts},
		},
		Bands: []catalog.Band{
			{Threshold: 0, Title: "Low", Summary: "A quiet stretch."},
		},
	}
}

func newTestScreen() *AssessScreen {
	return New(testInstrument(), nil, nil, identity.Identity{ID: "u1"}, nil)
}

func TestSkipHintAppearsAfterSkip(t *testing.T) {
	s := newTestScreen()

	if strings.Contains(s.View(80, 24), "skipped") {
		t.Fatal("hint shown before anything was skipped")
	}

	s.Update(keyPress('s'))
	if !strings.Contains(s.View(80, 24), "skipped") {
		t.Error("hint missing after skipping a question")
	}
}

func TestSkipHintSurvivesBackNavigation(t *testing.T) {
	s := newTestScreen()

	// Answer q1, skip q2, then walk back to q1: q2 is no longer ahead
	// of the cursor but remains skipped.
	s.Update(specialKey(tea.KeyEnter))
	s.Update(keyPress('s'))
	s.Update(specialKey(tea.KeyLeft))
	s.Update(specialKey(tea.KeyLeft))

	if s.index != 0 {
		t.Fatalf("index = %d, want 0", s.index)
	}
	if !strings.Contains(s.View(80, 24), "skipped") {
		t.Error("hint missing for a skipped question behind the cursor")
	}
}

func TestNoSkipHintWhenAllAnswered(t *testing.T) {
	s := newTestScreen()

	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyEnter))

	if s.index != 2 {
		t.Fatalf("index = %d, want 2", s.index)
	}
	if strings.Contains(s.View(80, 24), "skipped") {
		t.Error("hint shown although every visited question was answered")
	}
}

func TestCurrentQuestionIsNotCountedAsSkipped(t *testing.T) {
	s := newTestScreen()

	// The question on screen is pending, not skipped.
	s.Update(specialKey(tea.KeyEnter))
	if strings.Contains(s.View(80, 24), "skipped") {
		t.Error("pending current question reported as skipped")
	}
}
