package catalog

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/mod/semver"
)

// catalog holds the instrument set with a slug index.
type catalog struct {
	instruments []*Instrument
	bySlug      map[string]*Instrument
}

// c is the package-level catalog singleton, set by init() in seed.go.
var c *catalog

// buildCatalog constructs the catalog from a slice of instruments.
func buildCatalog(instruments []*Instrument) *catalog {
	cat := &catalog{
		instruments: instruments,
		bySlug:      make(map[string]*Instrument, len(instruments)),
	}
	for _, in := range instruments {
		cat.bySlug[in.Slug] = in
	}
	return cat
}

// BySlug returns the instrument with the given slug. It never fails in
// any other way than returning false; callers must branch on presence.
func BySlug(slug string) (*Instrument, bool) {
	in, ok := c.bySlug[slug]
	return in, ok
}

// All returns every instrument, ordered by slug.
func All() []*Instrument {
	out := make([]*Instrument, len(c.instruments))
	copy(out, c.instruments)
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out
}

// Register adds deploy-time instruments to the catalog. It is intended
// for process start only; there is no runtime registration API.
func Register(instruments ...*Instrument) error {
	if err := validateInstruments(append(c.instruments, instruments...)); err != nil {
		return err
	}
	for _, in := range instruments {
		c.instruments = append(c.instruments, in)
		c.bySlug[in.Slug] = in
	}
	return nil
}

// validateInstruments performs all structural checks on the given
// instrument set. Returns a combined error describing all problems
// found, or nil if valid.
func validateInstruments(instruments []*Instrument) error {
	var errs []string

	slugSet := make(map[string]bool, len(instruments))
	for _, in := range instruments {
		if in.Slug == "" {
			errs = append(errs, "instrument with empty slug")
			continue
		}
		if slugSet[in.Slug] {
			errs = append(errs, fmt.Sprintf("duplicate instrument slug: %q", in.Slug))
		}
		slugSet[in.Slug] = true

		if !semver.IsValid(in.Version) {
			errs = append(errs, fmt.Sprintf("instrument %q: invalid version %q", in.Slug, in.Version))
		}
		if in.MaxWeight <= 0 {
			errs = append(errs, fmt.Sprintf("instrument %q: max weight must be positive", in.Slug))
		}
		if len(in.Questions) == 0 {
			errs = append(errs, fmt.Sprintf("instrument %q: no questions", in.Slug))
		}

		qidSet := make(map[string]bool, len(in.Questions))
		for _, q := range in.Questions {
			if qidSet[q.ID] {
				errs = append(errs, fmt.Sprintf("instrument %q: duplicate question ID %q", in.Slug, q.ID))
			}
			qidSet[q.ID] = true

			if len(q.Options) == 0 {
				errs = append(errs, fmt.Sprintf("instrument %q: question %q has no options", in.Slug, q.ID))
			}
			for _, o := range q.Options {
				if o.Weight < 0 || o.Weight > in.MaxWeight {
					errs = append(errs, fmt.Sprintf(
						"instrument %q: question %q option %q weight %d outside [0,%d]",
						in.Slug, q.ID, o.Label, o.Weight, in.MaxWeight))
				}
			}
		}

		// Band resolution requires a guaranteed fallback: at least one
		// band with threshold 0.
		if len(in.Bands) == 0 {
			errs = append(errs, fmt.Sprintf("instrument %q: no bands defined", in.Slug))
		} else {
			hasZero := false
			for _, b := range in.Bands {
				if b.Threshold < 0 || b.Threshold > 1 {
					errs = append(errs, fmt.Sprintf(
						"instrument %q: band %q threshold %.2f outside [0,1]",
						in.Slug, b.Title, b.Threshold))
				}
				if b.Threshold == 0 {
					hasZero = true
				}
			}
			if !hasZero {
				errs = append(errs, fmt.Sprintf("instrument %q: no zero-threshold fallback band", in.Slug))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
