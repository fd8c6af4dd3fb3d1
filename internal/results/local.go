package results

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// MaxCacheEntries bounds the per-category cache: the most recent 8
// results survive, newest first.
const MaxCacheEntries = 8

// CacheEntry is the local-cache view of a scored result.
type CacheEntry struct {
	Slug      string `json:"instrumentId"`
	Title     string `json:"title"`
	ScorePct  int    `json:"percentage"` // 0-100
	BandTitle string `json:"bandTitle"`
	Summary   string `json:"summary"`
	SavedAt   string `json:"savedAtISO"`
}

// LocalStore is the ephemeral result cache. Saving is best-effort:
// implementations swallow every failure, because the cache is a
// convenience layer, never the system of record.
type LocalStore interface {
	// Save records the result in its instrument's category, replacing
	// any older entry for the same instrument.
	Save(res ScoredResult)

	// Latest returns the cached entry for an instrument, if any.
	Latest(slug string) (CacheEntry, bool)

	// Category returns the cached entries for a category, newest first.
	Category(category string) []CacheEntry
}

// entryFor converts a ScoredResult at the cache boundary.
func entryFor(res ScoredResult) CacheEntry {
	return CacheEntry{
		Slug:      res.Slug,
		Title:     res.Title,
		ScorePct:  res.ScorePct(),
		BandTitle: res.Band.Title,
		Summary:   res.Band.Summary,
		SavedAt:   res.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// insert places the entry at the front of its category list, dropping
// any older entry for the same instrument and trimming to the cap.
func insert(entries []CacheEntry, e CacheEntry) []CacheEntry {
	out := make([]CacheEntry, 0, len(entries)+1)
	out = append(out, e)
	for _, old := range entries {
		if old.Slug == e.Slug {
			continue
		}
		out = append(out, old)
	}
	if len(out) > MaxCacheEntries {
		out = out[:MaxCacheEntries]
	}
	return out
}

// MemoryStore is a mapping-backed LocalStore for tests and for contexts
// where no filesystem cache is wanted.
type MemoryStore struct {
	byCategory map[string][]CacheEntry
	category   map[string]string // slug -> category
}

// NewMemoryStore creates an empty in-memory cache.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byCategory: make(map[string][]CacheEntry),
		category:   make(map[string]string),
	}
}

func (m *MemoryStore) Save(res ScoredResult) {
	m.byCategory[res.Category] = insert(m.byCategory[res.Category], entryFor(res))
	m.category[res.Slug] = res.Category
}

func (m *MemoryStore) Latest(slug string) (CacheEntry, bool) {
	for _, e := range m.byCategory[m.category[slug]] {
		if e.Slug == slug {
			return e, true
		}
	}
	return CacheEntry{}, false
}

func (m *MemoryStore) Category(category string) []CacheEntry {
	entries := m.byCategory[category]
	out := make([]CacheEntry, len(entries))
	copy(out, entries)
	return out
}

// NopStore discards everything. Used in headless contexts where no
// local storage facility exists; degrading to a no-op, never an error,
// is the contract.
type NopStore struct{}

func (NopStore) Save(ScoredResult)                {}
func (NopStore) Latest(string) (CacheEntry, bool) { return CacheEntry{}, false }
func (NopStore) Category(string) []CacheEntry     { return nil }

// FileStore keeps the cache as a single JSON file. Every operation
// reloads from disk, so concurrent processes see each other's writes at
// entry granularity; all I/O failures are swallowed.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore at path, creating parent directories
// lazily on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultCachePath resolves the cache file path in priority order:
// 1. OYUNSANAA_CACHE environment variable
// 2. $XDG_STATE_HOME/oyunsanaa/results.json
// 3. ~/.local/state/oyunsanaa/results.json
func DefaultCachePath() (string, error) {
	if p := os.Getenv("OYUNSANAA_CACHE"); p != "" {
		return p, nil
	}
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "oyunsanaa", "results.json"), nil
}

type cacheFile struct {
	Categories map[string][]CacheEntry `json:"categories"`
}

func (f *FileStore) load() cacheFile {
	data := cacheFile{Categories: make(map[string][]CacheEntry)}
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return data
	}
	// A corrupt cache file is treated as empty.
	_ = json.Unmarshal(raw, &data)
	if data.Categories == nil {
		data.Categories = make(map[string][]CacheEntry)
	}
	return data
}

func (f *FileStore) store(data cacheFile) {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return
	}
	_ = os.WriteFile(f.path, raw, 0o644)
}

func (f *FileStore) Save(res ScoredResult) {
	data := f.load()
	data.Categories[res.Category] = insert(data.Categories[res.Category], entryFor(res))
	f.store(data)
}

func (f *FileStore) Latest(slug string) (CacheEntry, bool) {
	data := f.load()
	for _, entries := range data.Categories {
		for _, e := range entries {
			if e.Slug == slug {
				return e, true
			}
		}
	}
	return CacheEntry{}, false
}

func (f *FileStore) Category(category string) []CacheEntry {
	return f.load().Categories[category]
}
