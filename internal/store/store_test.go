package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oyunsanaa/oyunsanaa/internal/catalog"
	"github.com/oyunsanaa/oyunsanaa/internal/identity"
	"github.com/oyunsanaa/oyunsanaa/internal/results"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func scoredResult(slug, attemptID string, pct float64) results.ScoredResult {
	w2, w4 := 2, 4
	return results.ScoredResult{
		Slug:       slug,
		Title:      "Sample Check",
		Category:   "emotion",
		Percentage: pct,
		Band:       catalog.Band{Threshold: 0.5, Title: "Steady", Summary: "Holding steady."},
		Answers:    []*int{&w4, &w2, nil},
		AttemptID:  attemptID,
		CreatedAt:  time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC),
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestResultSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()
	user := identity.Identity{ID: "u1"}

	// No result yet.
	row, err := repo.Latest(ctx, "u1", "check")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if row != nil {
		t.Fatal("expected nil row when none exist")
	}

	if err := repo.Save(ctx, user, scoredResult("check", "a1", 0.5)); err != nil {
		t.Fatalf("save: %v", err)
	}

	row, err = repo.Latest(ctx, "u1", "check")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if row == nil {
		t.Fatal("expected non-nil row")
	}
	if row.ScorePct != 50 {
		t.Errorf("score_pct = %d, want 50", row.ScorePct)
	}
	if row.BandTitle != "Steady" {
		t.Errorf("band_title = %q, want %q", row.BandTitle, "Steady")
	}
	if len(row.Answers) != 3 || row.Answers[2] != nil || *row.Answers[0] != 4 {
		t.Errorf("answers = %v", row.Answers)
	}
}

func TestResultLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()
	user := identity.Identity{ID: "u1"}

	for i, pct := range []float64{0.25, 0.5, 0.75} {
		res := scoredResult("check", "a"+string(rune('1'+i)), pct)
		if err := repo.Save(ctx, user, res); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	row, err := repo.Latest(ctx, "u1", "check")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if row.ScorePct != 75 {
		t.Errorf("score_pct = %d, want 75", row.ScorePct)
	}
}

func TestResultLatestScopedByUserAndSlug(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, identity.Identity{ID: "u1"}, scoredResult("check", "a1", 0.5)); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Other user sees nothing.
	row, err := repo.Latest(ctx, "u2", "check")
	if err != nil {
		t.Fatalf("latest other user: %v", err)
	}
	if row != nil {
		t.Errorf("expected nil for other user, got %+v", row)
	}

	// Other slug sees nothing.
	row, err = repo.Latest(ctx, "u1", "other")
	if err != nil {
		t.Fatalf("latest other slug: %v", err)
	}
	if row != nil {
		t.Errorf("expected nil for other slug, got %+v", row)
	}
}

func TestResultLatestEmptySlugSpansInstruments(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()
	user := identity.Identity{ID: "u1"}

	if err := repo.Save(ctx, user, scoredResult("check", "a1", 0.5)); err != nil {
		t.Fatalf("save check: %v", err)
	}
	if err := repo.Save(ctx, user, scoredResult("other", "a2", 0.75)); err != nil {
		t.Fatalf("save other: %v", err)
	}

	row, err := repo.Latest(ctx, "u1", "")
	if err != nil {
		t.Fatalf("latest any: %v", err)
	}
	if row == nil {
		t.Fatal("expected a row for empty slug")
	}
	if row.Slug != "other" {
		t.Errorf("slug = %q, want newest row %q", row.Slug, "other")
	}
}

func TestResultCreatedAtIsStoreAssigned(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	// scoredResult carries a caller-supplied timestamp; the store must
	// stamp the row itself.
	res := scoredResult("check", "a1", 0.5)
	before := time.Now().Add(-time.Minute)
	if err := repo.Save(ctx, identity.Identity{ID: "u1"}, res); err != nil {
		t.Fatalf("save: %v", err)
	}

	row, err := repo.Latest(ctx, "u1", "check")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if row.CreatedAt.Equal(res.CreatedAt) {
		t.Errorf("created_at = %v, took the caller's value", row.CreatedAt)
	}
	if row.CreatedAt.Before(before) {
		t.Errorf("created_at = %v, not assigned at save time", row.CreatedAt)
	}
}

func TestResultSaveIdempotent(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()
	user := identity.Identity{ID: "u1"}

	res := scoredResult("check", "a1", 0.5)
	if err := repo.Save(ctx, user, res); err != nil {
		t.Fatalf("first save: %v", err)
	}
	// Resubmission of the same attempt must not error or duplicate.
	if err := repo.Save(ctx, user, res); err != nil {
		t.Fatalf("resubmit: %v", err)
	}

	rows, err := repo.History(ctx, "u1", 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("rows = %d, want 1", len(rows))
	}
}

func TestResultSaveRejectsBadInput(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	err := repo.Save(ctx, identity.Identity{}, scoredResult("check", "a1", 0.5))
	if !errors.Is(err, identity.ErrUnauthorized) {
		t.Errorf("empty identity: got %v", err)
	}

	bad := scoredResult("", "a1", 0.5)
	err = repo.Save(ctx, identity.Identity{ID: "u1"}, bad)
	if !errors.Is(err, results.ErrInvalidInput) {
		t.Errorf("missing slug: got %v", err)
	}

	rows, err := repo.History(ctx, "u1", 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("rejected saves wrote %d rows", len(rows))
	}
}

func TestResultHistoryNewestFirstWithLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()
	user := identity.Identity{ID: "u1"}

	slugs := []string{"first", "second", "third"}
	for i, slug := range slugs {
		if err := repo.Save(ctx, user, scoredResult(slug, "a"+slug, float64(i)*0.25)); err != nil {
			t.Fatalf("save %s: %v", slug, err)
		}
	}

	rows, err := repo.History(ctx, "u1", 2)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].Slug != "third" || rows[1].Slug != "second" {
		t.Errorf("order = %s, %s", rows[0].Slug, rows[1].Slug)
	}
}

func TestMoodAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.MoodRepo()
	ctx := context.Background()

	for i, score := range []int{2, 3, 5} {
		note := ""
		if score == 5 {
			note = "great walk"
		}
		if err := repo.Append(ctx, "u1", score, note); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	entries, err := repo.Recent(ctx, "u1", 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].Score != 5 || entries[0].Note != "great walk" {
		t.Errorf("newest = %+v", entries[0])
	}
	if entries[1].Score != 3 {
		t.Errorf("second = %+v", entries[1])
	}
}

func TestMoodAppendValidatesScore(t *testing.T) {
	s := openTestStore(t)
	repo := s.MoodRepo()
	ctx := context.Background()

	for _, score := range []int{0, 6, -1} {
		if err := repo.Append(ctx, "u1", score, ""); err == nil {
			t.Errorf("score %d: expected error", score)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var prev int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if seq <= prev {
			t.Errorf("seq %d not increasing (prev %d)", seq, prev)
		}
		prev = seq
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"result_events", "mood_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}
