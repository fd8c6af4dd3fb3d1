package catalog

// Domain is the thematic sub-category a question belongs to.
type Domain string

const (
	DomainEmotion   Domain = "emotion"
	DomainRelations Domain = "relations"
	DomainStress    Domain = "stress"
	DomainSelfWorth Domain = "self-worth"
)

// DomainDisplayName returns a human-readable name for a domain.
func DomainDisplayName(d Domain) string {
	switch d {
	case DomainEmotion:
		return "Emotional Life"
	case DomainRelations:
		return "Relationships"
	case DomainStress:
		return "Stress & Coping"
	case DomainSelfWorth:
		return "Self-Worth"
	default:
		return string(d)
	}
}

// Option pairs a display label with the numeric weight it contributes
// to the instrument score.
type Option struct {
	Label  string
	Weight int
}

// Question is a single item within an instrument. Each question belongs
// to exactly one domain and offers an ordered set of discrete options.
type Question struct {
	ID      string
	Domain  Domain
	Text    string
	Options []Option
}

// OptionWeights returns the permissible weights for this question in
// display order.
func (q Question) OptionWeights() []int {
	ws := make([]int, len(q.Options))
	for i, o := range q.Options {
		ws[i] = o.Weight
	}
	return ws
}

// HasWeight reports whether w is one of this question's option weights.
func (q Question) HasWeight(w int) bool {
	for _, o := range q.Options {
		if o.Weight == w {
			return true
		}
	}
	return false
}

// Band maps a minimum score percentage to a qualitative reading.
// Bands are resolved from highest threshold to lowest; the first band
// whose threshold is <= the computed percentage wins, and the band with
// the lowest threshold is the fallback.
type Band struct {
	Threshold float64 // minimum percentage, 0.0 - 1.0
	Title     string
	Summary   string
	Tips      []string
}

// Instrument is a named, versioned self-assessment: an ordered question
// list plus the bands its score resolves against. Instruments are fixed
// at process start and never mutated.
type Instrument struct {
	Slug        string
	Title       string
	Version     string // semver, e.g. "v1.0.0"
	Category    string // result-cache grouping, e.g. "relationship"
	Description string
	MaxWeight   int // maximum option weight shared by every question
	Questions   []Question
	Bands       []Band
}

// QuestionByID returns the question with the given id, or false.
func (in *Instrument) QuestionByID(id string) (Question, bool) {
	for _, q := range in.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// MaxScore is the scoring denominator: question count times the
// instrument's maximum option weight.
func (in *Instrument) MaxScore() int {
	return len(in.Questions) * in.MaxWeight
}
