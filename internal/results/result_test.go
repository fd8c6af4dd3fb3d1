package results

import (
	"context"
	"errors"
	"testing"

	"github.com/oyunsanaa/oyunsanaa/internal/identity"
)

func TestScorePctRoundsAndClamps(t *testing.T) {
	tests := []struct {
		pct  float64
		want int
	}{
		{0, 0},
		{0.5, 50},
		{0.494, 49},
		{0.495, 50},
		{1.0, 100},
		{1.2, 100},  // defensive clamp
		{-0.1, 0},   // defensive clamp
		{0.333, 33},
	}
	for _, tt := range tests {
		got := ScoredResult{Percentage: tt.pct}.ScorePct()
		if got != tt.want {
			t.Errorf("ScorePct(%v) = %d, want %d", tt.pct, got, tt.want)
		}
	}
}

func TestValidateRequiresSlugAndTitle(t *testing.T) {
	r := sampleResult("check", 0.5)
	if err := r.Validate(); err != nil {
		t.Fatalf("valid result rejected: %v", err)
	}

	r.Slug = ""
	if err := r.Validate(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("missing slug: got %v", err)
	}

	r = sampleResult("check", 0.5)
	r.Title = ""
	if err := r.Validate(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("missing title: got %v", err)
	}
}

// recordingRemote counts writes so tests can assert no mutation happened.
type recordingRemote struct {
	saves int
}

func (r *recordingRemote) Save(context.Context, identity.Identity, ScoredResult) error {
	r.saves++
	return nil
}

func (r *recordingRemote) Latest(context.Context, string, string) (*StoredResult, error) {
	return nil, nil
}

func (r *recordingRemote) History(context.Context, string, int) ([]StoredResult, error) {
	return nil, nil
}

func TestSaveRemoteRequiresIdentity(t *testing.T) {
	store := &recordingRemote{}
	err := SaveRemote(context.Background(), store, identity.Identity{}, sampleResult("check", 0.5))
	if !errors.Is(err, identity.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if store.saves != 0 {
		t.Errorf("unauthorized save mutated the store %d times", store.saves)
	}
}

func TestSaveRemoteRejectsInvalidBeforeWrite(t *testing.T) {
	store := &recordingRemote{}
	bad := sampleResult("", 0.5)
	err := SaveRemote(context.Background(), store, identity.Identity{ID: "u1"}, bad)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if store.saves != 0 {
		t.Errorf("invalid save mutated the store %d times", store.saves)
	}
}

func TestSaveRemoteHappyPath(t *testing.T) {
	store := &recordingRemote{}
	err := SaveRemote(context.Background(), store, identity.Identity{ID: "u1"}, sampleResult("check", 0.5))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if store.saves != 1 {
		t.Errorf("saves = %d, want 1", store.saves)
	}
}
