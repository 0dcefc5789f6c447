// Package cache provides the persistent translation cache: a bounded
// in-memory store with number-pattern matching, plus pluggable snapshot
// backends (JSON file, Redis).
package cache

// Entry is one cached translation.
type Entry struct {
	OriginalText string `json:"originalText"`
	Translation  string `json:"translation"`
	FromLang     string `json:"fromLang"`
	ToLang       string `json:"toLang"`
	Provider     string `json:"provider"`
	CreatedAt    int64  `json:"timestamp"`
	LastAccessed int64  `json:"lastAccessed"`
	AccessCount  int    `json:"accessCount"`
	IsPattern    bool   `json:"isNumberPattern,omitempty"`
}

// Stats summarizes the store contents.
type Stats struct {
	EntryCount int
	// TotalCharacterSize is the sum of len(originalText)+len(translation)
	// over all entries.
	TotalCharacterSize int
	OldestCreatedAt    int64 // Unix seconds, 0 when empty
	NewestCreatedAt    int64 // Unix seconds, 0 when empty
}

// Backend loads and saves full cache snapshots. Implementations must
// replace snapshots atomically; a partially written snapshot is worse
// than a lost one.
type Backend interface {
	// Load reads the persisted snapshot. Absent storage is not an error:
	// implementations return an empty map.
	Load() (map[string]*Entry, error)

	// Save persists the full snapshot, replacing any previous one.
	Save(entries map[string]*Entry) error
}
