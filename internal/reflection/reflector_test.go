package reflection

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/oyunsanaa/oyunsanaa/internal/catalog"
	"github.com/oyunsanaa/oyunsanaa/internal/results"
)

func sampleScored() results.ScoredResult {
	return results.ScoredResult{
		Slug:       "emotional-wellbeing",
		Title:      "Emotional Wellbeing Check",
		Percentage: 0.6,
		Band: catalog.Band{
			Threshold: 0.5,
			Title:     "Steady",
			Summary:   "You are holding steady.",
			Tips:      []string{"Take a short walk each day."},
		},
	}
}

func TestReflectUsesBandNotScore(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "A kind note."})
	r := NewReflector(mock)

	got, err := r.Reflect(context.Background(), sampleScored())
	if err != nil {
		t.Fatalf("reflect: %v", err)
	}
	if got != "A kind note." {
		t.Errorf("reflection = %q", got)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Calls))
	}
	prompt := mock.Calls[0].Prompt
	if !strings.Contains(prompt, "Steady") {
		t.Errorf("prompt missing band title: %q", prompt)
	}
	if !strings.Contains(prompt, "Take a short walk") {
		t.Errorf("prompt missing tip: %q", prompt)
	}
	if strings.Contains(prompt, "60") || strings.Contains(prompt, "0.6") {
		t.Errorf("prompt leaks numeric score: %q", prompt)
	}
}

func TestReflectPropagatesProviderError(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	r := NewReflector(mock)

	_, err := r.Reflect(context.Background(), sampleScored())
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestReflectRejectsBlankReply(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "   \n"})
	r := NewReflector(mock)

	_, err := r.Reflect(context.Background(), sampleScored())
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}
