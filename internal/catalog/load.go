package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// instrumentFile is the on-disk JSON shape for deploy-time instruments.
type instrumentFile struct {
	Slug        string  `json:"slug"`
	Title       string  `json:"title"`
	Version     string  `json:"version"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	MaxWeight   int     `json:"max_weight"`
	Questions   []struct {
		ID      string `json:"id"`
		Domain  string `json:"domain"`
		Text    string `json:"text"`
		Options []struct {
			Label  string `json:"label"`
			Weight int    `json:"weight"`
		} `json:"options"`
	} `json:"questions"`
	Bands []struct {
		Threshold float64  `json:"threshold"`
		Title     string   `json:"title"`
		Summary   string   `json:"summary"`
		Tips      []string `json:"tips"`
	} `json:"bands"`
}

// LoadDir reads every *.json instrument file under dir, validates each
// against the instrument schema, and registers the result. It is called
// once at process start; a missing directory is not an error, but an
// invalid file is.
func LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read instrument dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	compiled, err := compiledInstrumentSchema()
	if err != nil {
		return err
	}

	for _, name := range names {
		path := filepath.Join(dir, name)
		in, err := loadFile(path, compiled)
		if err != nil {
			return fmt.Errorf("instrument file %s: %w", name, err)
		}
		if err := Register(in); err != nil {
			return fmt.Errorf("instrument file %s: %w", name, err)
		}
	}
	return nil
}

func loadFile(path string, compiled *jsonschema.Schema) (*Instrument, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// The jsonschema library validates a parsed JSON value, not raw bytes.
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var f instrumentFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode instrument: %w", err)
	}
	return f.toInstrument(), nil
}

func (f instrumentFile) toInstrument() *Instrument {
	in := &Instrument{
		Slug:        f.Slug,
		Title:       f.Title,
		Version:     f.Version,
		Category:    f.Category,
		Description: f.Description,
		MaxWeight:   f.MaxWeight,
	}
	for _, q := range f.Questions {
		question := Question{ID: q.ID, Domain: Domain(q.Domain), Text: q.Text}
		for _, o := range q.Options {
			question.Options = append(question.Options, Option{Label: o.Label, Weight: o.Weight})
		}
		in.Questions = append(in.Questions, question)
	}
	for _, b := range f.Bands {
		in.Bands = append(in.Bands, Band{
			Threshold: b.Threshold,
			Title:     b.Title,
			Summary:   b.Summary,
			Tips:      b.Tips,
		})
	}
	return in
}
