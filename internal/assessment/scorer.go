package assessment

import (
	"sort"

	"github.com/oyunsanaa/oyunsanaa/internal/catalog"
)

// Result is the outcome of scoring an attempt.
type Result struct {
	Percentage float64 // 0.0 - 1.0
	Band       catalog.Band
}

// Score computes the normalized score for an attempt and resolves it
// against the instrument's bands. Pure: no side effects, safe to call
// any number of times.
//
// Unanswered questions contribute 0 to the numerator but stay in the
// denominator, so a partially answered attempt is deliberately deflated:
// answering half the questions can never exceed half the maximum. That
// keeps a handful of good answers from showing a misleadingly high score.
func Score(in *catalog.Instrument, attempt *Attempt) (Result, error) {
	if len(in.Bands) == 0 {
		return Result{}, &ErrNoBandDefined{Slug: in.Slug}
	}

	numerator := 0
	for _, q := range in.Questions {
		if w, ok := attempt.Answer(q.ID); ok {
			numerator += w
		}
	}

	pct := 0.0
	if denom := in.MaxScore(); denom > 0 {
		pct = float64(numerator) / float64(denom)
	}

	return Result{
		Percentage: pct,
		Band:       resolveBand(in.Bands, pct),
	}, nil
}

// resolveBand picks the band with the highest threshold <= pct. When no
// band qualifies, the lowest-threshold band is the fallback. The band
// data is not required to be exhaustive or non-overlapping; this rule
// disambiguates deterministically regardless.
func resolveBand(bands []catalog.Band, pct float64) catalog.Band {
	sorted := make([]catalog.Band, len(bands))
	copy(sorted, bands)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Threshold > sorted[j].Threshold
	})

	for _, b := range sorted {
		if b.Threshold <= pct {
			return b
		}
	}
	return sorted[len(sorted)-1]
}
