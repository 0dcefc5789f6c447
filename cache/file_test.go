package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestFileBackend_LoadMissingFile(t *testing.T) {
	b := NewFileBackend(filepath.Join(t.TempDir(), "nope.json"))

	entries, err := b.Load()
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("missing file should yield empty map, got %d entries", len(entries))
	}
}

func TestFileBackend_LoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	b := NewFileBackend(path)
	if _, err := b.Load(); err == nil {
		t.Error("malformed file should return an error for the store to recover from")
	}
}

func TestFileBackend_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "cache.json")
	b := NewFileBackend(path)

	entries := map[string]*Entry{
		"hello|en|es": {
			OriginalText: "hello",
			Translation:  "hola",
			FromLang:     "en",
			ToLang:       "es",
			Provider:     "Google",
			CreatedAt:    1700000000,
			LastAccessed: 1700000005,
			AccessCount:  3,
		},
		"i have ## items|en|es": {
			OriginalText: "i have ## items",
			Translation:  "tengo ## cosas",
			FromLang:     "en",
			ToLang:       "es",
			Provider:     "Google",
			CreatedAt:    1700000001,
			LastAccessed: 1700000001,
			AccessCount:  1,
			IsPattern:    true,
		},
	}

	if err := b.Save(entries); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := b.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("loaded %d entries, want 2", len(loaded))
	}

	got := loaded["hello|en|es"]
	if got.Translation != "hola" || got.AccessCount != 3 || got.IsPattern {
		t.Errorf("round-tripped entry = %+v", got)
	}
	if !loaded["i have ## items|en|es"].IsPattern {
		t.Error("pattern flag lost in round trip")
	}
}

func TestFileBackend_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	b := NewFileBackend(filepath.Join(dir, "cache.json"))

	if err := b.Save(map[string]*Entry{}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || files[0].Name() != "cache.json" {
		names := make([]string, len(files))
		for i, f := range files {
			names[i] = f.Name()
		}
		t.Errorf("unexpected directory contents: %v", names)
	}
}

func TestFileBackend_ForwardReadableDefaults(t *testing.T) {
	// Entries written by older versions may omit accessCount and
	// isNumberPattern; they must default safely.
	path := filepath.Join(t.TempDir(), "cache.json")
	legacy := `{
		"hello|en|es": {
			"originalText": "hello",
			"translation": "hola",
			"fromLang": "en",
			"toLang": "es",
			"provider": "Google",
			"timestamp": 1700000000,
			"lastAccessed": 1700000000
		}
	}`
	if err := os.WriteFile(path, []byte(legacy), 0o644); err != nil {
		t.Fatal(err)
	}

	b := NewFileBackend(path)
	entries, err := b.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	entry := entries["hello|en|es"]
	if entry == nil {
		t.Fatal("legacy entry not loaded")
	}
	if entry.AccessCount != 0 {
		t.Errorf("missing accessCount should default to 0, got %d", entry.AccessCount)
	}
	if entry.IsPattern {
		t.Error("missing isNumberPattern should default to false")
	}

	// A get through the store bumps the defaulted count to 1
	s := NewStore(b)
	s.Load()
	if _, ok := s.Get("hello", "en", "es"); !ok {
		t.Fatal("expected hit on legacy entry")
	}
	if got := entriesAccessCount(s, "hello|en|es"); got != 1 {
		t.Errorf("access count after first hit = %d, want 1", got)
	}
}

func entriesAccessCount(s *Store, key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[key]; ok {
		return e.AccessCount
	}
	return -1
}

func TestEntry_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(&Entry{
		OriginalText: "a",
		Translation:  "b",
		CreatedAt:    1,
		LastAccessed: 2,
		AccessCount:  1,
		IsPattern:    true,
	})
	if err != nil {
		t.Fatal(err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{"originalText", "translation", "fromLang", "toLang", "provider", "timestamp", "lastAccessed", "accessCount", "isNumberPattern"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("serialized entry missing field %q", field)
		}
	}
}
