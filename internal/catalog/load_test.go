package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validInstrumentJSON = `{
  "slug": "test-focus",
  "title": "Focus Check",
  "version": "v0.1.0",
  "category": "emotion",
  "description": "Attention over the last week.",
  "max_weight": 4,
  "questions": [
    {
      "id": "fc-1",
      "domain": "emotion",
      "text": "I can hold attention on one task.",
      "options": [
        {"label": "Never", "weight": 0},
        {"label": "Often", "weight": 3},
        {"label": "Almost always", "weight": 4}
      ]
    }
  ],
  "bands": [
    {"threshold": 0.5, "title": "Focused", "summary": "Good focus.", "tips": ["Keep it up."]},
    {"threshold": 0, "title": "Scattered", "summary": "Focus is hard right now."}
  ]
}`

func writeInstrumentFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadFileValid(t *testing.T) {
	dir := t.TempDir()
	path := writeInstrumentFile(t, dir, "focus.json", validInstrumentJSON)

	compiled, err := compiledInstrumentSchema()
	if err != nil {
		t.Fatalf("compile schema: %v", err)
	}

	in, err := loadFile(path, compiled)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if in.Slug != "test-focus" {
		t.Errorf("slug = %q, want test-focus", in.Slug)
	}
	if len(in.Questions) != 1 || len(in.Questions[0].Options) != 3 {
		t.Errorf("unexpected question shape: %+v", in.Questions)
	}
	if len(in.Bands) != 2 || in.Bands[0].Threshold != 0.5 {
		t.Errorf("unexpected band shape: %+v", in.Bands)
	}
}

func TestLoadFileRejectsMissingFields(t *testing.T) {
	dir := t.TempDir()
	path := writeInstrumentFile(t, dir, "broken.json", `{"slug": "x"}`)

	compiled, err := compiledInstrumentSchema()
	if err != nil {
		t.Fatalf("compile schema: %v", err)
	}

	if _, err := loadFile(path, compiled); err == nil {
		t.Fatal("expected schema validation error")
	} else if !strings.Contains(err.Error(), "schema validation failed") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadFileRejectsMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeInstrumentFile(t, dir, "garbage.json", `{not json`)

	compiled, err := compiledInstrumentSchema()
	if err != nil {
		t.Fatalf("compile schema: %v", err)
	}

	if _, err := loadFile(path, compiled); err == nil {
		t.Fatal("expected JSON parse error")
	}
}

func TestLoadDirMissingIsNoop(t *testing.T) {
	if err := LoadDir(filepath.Join(t.TempDir(), "does-not-exist")); err != nil {
		t.Fatalf("missing dir should be a no-op, got %v", err)
	}
}

func TestLoadDirRegistersInstrument(t *testing.T) {
	dir := t.TempDir()
	writeInstrumentFile(t, dir, "focus.json", validInstrumentJSON)
	// Non-JSON files are ignored.
	writeInstrumentFile(t, dir, "README.txt", "not an instrument")

	if err := LoadDir(dir); err != nil {
		t.Fatalf("load dir: %v", err)
	}

	in, ok := BySlug("test-focus")
	if !ok {
		t.Fatal("expected loaded instrument to be registered")
	}
	if in.Title != "Focus Check" {
		t.Errorf("title = %q, want Focus Check", in.Title)
	}
}
