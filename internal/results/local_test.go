package results

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/oyunsanaa/oyunsanaa/internal/catalog"
)

func sampleResult(slug string, pct float64) ScoredResult {
	return ScoredResult{
		Slug:       slug,
		Title:      "Title for " + slug,
		Category:   "emotion",
		Percentage: pct,
		Band:       catalog.Band{Threshold: 0, Title: "Steady", Summary: "summary"},
		AttemptID:  "attempt-" + slug,
		CreatedAt:  time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}
}

func runLocalStoreTests(t *testing.T, newStore func(t *testing.T) LocalStore) {
	t.Run("round trip", func(t *testing.T) {
		s := newStore(t)
		s.Save(sampleResult("relationship-health", 0.5))

		e, ok := s.Latest("relationship-health")
		if !ok {
			t.Fatal("expected cached entry")
		}
		if e.ScorePct != 50 {
			t.Errorf("ScorePct = %d, want 50", e.ScorePct)
		}
		if e.BandTitle != "Steady" {
			t.Errorf("BandTitle = %q", e.BandTitle)
		}
		if e.SavedAt != "2026-08-01T10:00:00Z" {
			t.Errorf("SavedAt = %q", e.SavedAt)
		}
	})

	t.Run("same instrument replaces", func(t *testing.T) {
		s := newStore(t)
		s.Save(sampleResult("check", 0.25))
		s.Save(sampleResult("check", 0.75))

		entries := s.Category("emotion")
		if len(entries) != 1 {
			t.Fatalf("entries = %d, want 1", len(entries))
		}
		if entries[0].ScorePct != 75 {
			t.Errorf("ScorePct = %d, want the newer 75", entries[0].ScorePct)
		}
	})

	t.Run("cap evicts oldest", func(t *testing.T) {
		s := newStore(t)
		for i := 0; i < MaxCacheEntries+1; i++ {
			s.Save(sampleResult(fmt.Sprintf("inst-%d", i), 0.5))
		}

		entries := s.Category("emotion")
		if len(entries) != MaxCacheEntries {
			t.Fatalf("entries = %d, want %d", len(entries), MaxCacheEntries)
		}
		// Newest first; the very first insert fell off.
		if entries[0].Slug != fmt.Sprintf("inst-%d", MaxCacheEntries) {
			t.Errorf("front = %q", entries[0].Slug)
		}
		if _, ok := s.Latest("inst-0"); ok {
			t.Error("oldest entry should have been evicted")
		}
	})

	t.Run("absent instrument", func(t *testing.T) {
		s := newStore(t)
		if _, ok := s.Latest("never-saved"); ok {
			t.Error("expected absent entry")
		}
	})
}

func TestMemoryStore(t *testing.T) {
	runLocalStoreTests(t, func(t *testing.T) LocalStore {
		return NewMemoryStore()
	})
}

func TestFileStore(t *testing.T) {
	runLocalStoreTests(t, func(t *testing.T) LocalStore {
		return NewFileStore(filepath.Join(t.TempDir(), "results.json"))
	})
}

func TestFileStoreSurvivesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewFileStore(path)
	// Corrupt cache reads as empty and the next save must not fail.
	if _, ok := s.Latest("anything"); ok {
		t.Error("corrupt file should read as empty")
	}
	s.Save(sampleResult("check", 0.5))
	if _, ok := s.Latest("check"); !ok {
		t.Error("save after corrupt file should succeed")
	}
}

func TestFileStoreUnwritablePathIsNoop(t *testing.T) {
	// A path whose parent cannot be created degrades to a no-op.
	s := NewFileStore(string([]byte{0}) + "/nope/results.json")
	s.Save(sampleResult("check", 0.5)) // must not panic
	if _, ok := s.Latest("check"); ok {
		t.Error("expected nothing cached on unwritable path")
	}
}

func TestNopStore(t *testing.T) {
	var s NopStore
	s.Save(sampleResult("check", 0.5))
	if _, ok := s.Latest("check"); ok {
		t.Error("nop store must not retain entries")
	}
	if got := s.Category("emotion"); got != nil {
		t.Errorf("Category = %v, want nil", got)
	}
}

func TestDefaultCachePathOverride(t *testing.T) {
	t.Setenv("OYUNSANAA_CACHE", "/tmp/custom.json")
	p, err := DefaultCachePath()
	if err != nil {
		t.Fatal(err)
	}
	if p != "/tmp/custom.json" {
		t.Errorf("path = %q", p)
	}
}
