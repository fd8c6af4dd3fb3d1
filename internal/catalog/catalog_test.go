package catalog

import (
	"strings"
	"testing"
)

func TestBySlugPresent(t *testing.T) {
	in, ok := BySlug("relationship-health")
	if !ok {
		t.Fatal("expected relationship-health to exist")
	}
	if in.Title == "" {
		t.Error("expected non-empty title")
	}
	if in.MaxWeight != 4 {
		t.Errorf("MaxWeight = %d, want 4", in.MaxWeight)
	}
}

func TestBySlugAbsent(t *testing.T) {
	if _, ok := BySlug("no-such-instrument"); ok {
		t.Fatal("expected absent result for unknown slug")
	}
}

func TestAllOrderedBySlug(t *testing.T) {
	all := All()
	if len(all) < 2 {
		t.Fatalf("expected at least 2 built-in instruments, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Slug >= all[i].Slug {
			t.Errorf("instruments not ordered: %q before %q", all[i-1].Slug, all[i].Slug)
		}
	}
}

func TestBuiltinInstrumentsHaveFallbackBand(t *testing.T) {
	// Every percentage in [0,1] must resolve to exactly one band, which
	// requires a zero-threshold fallback in every instrument.
	for _, in := range All() {
		hasZero := false
		for _, b := range in.Bands {
			if b.Threshold == 0 {
				hasZero = true
			}
		}
		if !hasZero {
			t.Errorf("instrument %q has no zero-threshold band", in.Slug)
		}
	}
}

func TestQuestionWeightsWithinMax(t *testing.T) {
	for _, in := range All() {
		for _, q := range in.Questions {
			for _, w := range q.OptionWeights() {
				if w < 0 || w > in.MaxWeight {
					t.Errorf("instrument %q question %q weight %d outside [0,%d]",
						in.Slug, q.ID, w, in.MaxWeight)
				}
			}
		}
	}
}

func TestValidateInstruments(t *testing.T) {
	valid := func() *Instrument {
		return &Instrument{
			Slug:      "sleep-quality",
			Title:     "Sleep Quality",
			Version:   "v1.0.0",
			Category:  "emotion",
			MaxWeight: 4,
			Questions: []Question{
				{ID: "sq-1", Domain: DomainEmotion, Text: "I sleep through the night.", Options: likert()},
			},
			Bands: []Band{
				{Threshold: 0.5, Title: "Rested", Summary: "ok"},
				{Threshold: 0, Title: "Tired", Summary: "low"},
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Instrument)
		wantErr string
	}{
		{"valid", func(in *Instrument) {}, ""},
		{"bad version", func(in *Instrument) { in.Version = "1.0" }, "invalid version"},
		{"no questions", func(in *Instrument) { in.Questions = nil }, "no questions"},
		{"no bands", func(in *Instrument) { in.Bands = nil }, "no bands"},
		{"no fallback band", func(in *Instrument) {
			in.Bands = []Band{{Threshold: 0.5, Title: "Rested", Summary: "ok"}}
		}, "no zero-threshold fallback"},
		{"weight above max", func(in *Instrument) {
			in.Questions[0].Options = []Option{{Label: "Too much", Weight: 9}, {Label: "Fine", Weight: 1}}
		}, "outside [0,4]"},
		{"threshold above one", func(in *Instrument) {
			in.Bands[0].Threshold = 1.5
		}, "outside [0,1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid()
			tt.mutate(in)
			err := validateInstruments([]*Instrument{in})
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDuplicateSlug(t *testing.T) {
	a := &Instrument{
		Slug: "dup", Title: "A", Version: "v1.0.0", Category: "emotion", MaxWeight: 4,
		Questions: []Question{{ID: "q1", Domain: DomainEmotion, Text: "t", Options: likert()}},
		Bands:     []Band{{Threshold: 0, Title: "B", Summary: "s"}},
	}
	b := &Instrument{
		Slug: "dup", Title: "B", Version: "v1.0.0", Category: "emotion", MaxWeight: 4,
		Questions: []Question{{ID: "q1", Domain: DomainEmotion, Text: "t", Options: likert()}},
		Bands:     []Band{{Threshold: 0, Title: "B", Summary: "s"}},
	}
	err := validateInstruments([]*Instrument{a, b})
	if err == nil || !strings.Contains(err.Error(), "duplicate instrument slug") {
		t.Fatalf("expected duplicate slug error, got %v", err)
	}
}
