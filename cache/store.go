package cache

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/LocaleKit/golingo"
)

// DefaultMaxEntries bounds the store size unless overridden.
const DefaultMaxEntries = 10000

// flushEvery triggers a persistence flush when the entry count reaches a
// positive multiple of this value after a write.
const flushEvery = 10

// Store is a bounded translation cache keyed by normalized text and
// language pair. Exact keys and number-pattern keys share one namespace.
// All methods are safe for concurrent use.
type Store struct {
	mu         sync.Mutex
	entries    map[string]*Entry
	backend    Backend
	maxEntries int
	numberSub  bool
	log        *slog.Logger
	now        func() time.Time
}

// StoreOption is a functional option for configuring the Store.
type StoreOption func(*Store)

// WithMaxEntries sets the maximum number of entries retained.
func WithMaxEntries(n int) StoreOption {
	return func(s *Store) {
		if n > 0 {
			s.maxEntries = n
		}
	}
}

// WithLogger sets the logger for recoverable storage anomalies.
func WithLogger(log *slog.Logger) StoreOption {
	return func(s *Store) {
		s.log = log
	}
}

// WithNumberSubstitution sets the initial number-substitution state.
func WithNumberSubstitution(enabled bool) StoreOption {
	return func(s *Store) {
		s.numberSub = enabled
	}
}

// withClock overrides the time source (tests only).
func withClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates a Store over the given backend. A nil backend yields a
// purely in-memory store. Number substitution starts enabled.
func NewStore(backend Backend, opts ...StoreOption) *Store {
	s := &Store{
		entries:    make(map[string]*Entry),
		backend:    backend,
		maxEntries: DefaultMaxEntries,
		numberSub:  true,
		log:        slog.Default(),
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Load replaces the store contents with the persisted snapshot. Missing
// or malformed storage leaves the store empty; it is logged, never fatal.
func (s *Store) Load() {
	if s.backend == nil {
		return
	}

	entries, err := s.backend.Load()
	if err != nil {
		s.log.Warn("cache load failed, starting empty", "error", err)
		entries = nil
	}
	if entries == nil {
		entries = make(map[string]*Entry)
	}

	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()
}

// Get returns a cached translation for the text and language pair. An
// exact-key hit returns the stored translation verbatim. On a miss, when
// number substitution is enabled and the text contains digits, the
// pattern entry is consulted and the current text's numbers are
// substituted into the cached template. Hits bump access metadata.
func (s *Store) Get(text, from, to string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.entries[golingo.Key(text, from, to)]; ok {
		s.touch(entry)
		return entry.Translation, true
	}

	if s.numberSub && golingo.ContainsNumbers(text) {
		if entry, ok := s.entries[golingo.PatternKey(text, from, to)]; ok {
			s.touch(entry)
			return golingo.SubstituteNumbers(entry.Translation, golingo.ExtractNumbers(text)), true
		}
	}

	return "", false
}

func (s *Store) touch(entry *Entry) {
	entry.LastAccessed = s.now().Unix()
	entry.AccessCount++
}

// Put stores a translation under the exact key and, when number
// substitution is enabled and the text contains digits, a templated copy
// under the pattern key. A flush is triggered when the entry count lands
// on a positive multiple of ten.
func (s *Store) Put(text, from, to, translation, provider string) {
	now := s.now().Unix()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[golingo.Key(text, from, to)] = &Entry{
		OriginalText: text,
		Translation:  translation,
		FromLang:     from,
		ToLang:       to,
		Provider:     provider,
		CreatedAt:    now,
		LastAccessed: now,
		AccessCount:  1,
	}

	if s.numberSub && golingo.ContainsNumbers(text) {
		s.entries[golingo.PatternKey(text, from, to)] = &Entry{
			OriginalText: golingo.TemplateNumbers(text),
			Translation:  golingo.TemplateNumbers(translation),
			FromLang:     from,
			ToLang:       to,
			Provider:     provider,
			CreatedAt:    now,
			LastAccessed: now,
			AccessCount:  1,
			IsPattern:    true,
		}
	}

	if n := len(s.entries); n > 0 && n%flushEvery == 0 {
		s.flushLocked()
	}
}

// Stats returns entry count, total character size and creation bounds.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	var st Stats
	st.EntryCount = len(s.entries)
	for _, e := range s.entries {
		st.TotalCharacterSize += len(e.OriginalText) + len(e.Translation)
		if st.OldestCreatedAt == 0 || e.CreatedAt < st.OldestCreatedAt {
			st.OldestCreatedAt = e.CreatedAt
		}
		if e.CreatedAt > st.NewestCreatedAt {
			st.NewestCreatedAt = e.CreatedAt
		}
	}
	return st
}

// Len returns the number of entries in the store.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Clear empties the store and persists the empty state immediately.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]*Entry)
	s.flushLocked()
}

// Flush evicts over-capacity entries and persists the full snapshot.
// Both the count trigger in Put and any external timer funnel into this
// same idempotent operation.
func (s *Store) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flushLocked()
}

// EvictIfOverCapacity trims the store down to its configured maximum
// without persisting.
func (s *Store) EvictIfOverCapacity() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictLocked()
}

func (s *Store) flushLocked() {
	s.evictLocked()

	if s.backend == nil {
		return
	}

	snapshot := make(map[string]*Entry, len(s.entries))
	for k, v := range s.entries {
		copied := *v
		snapshot[k] = &copied
	}

	if err := s.backend.Save(snapshot); err != nil {
		s.log.Warn("cache save failed", "error", err)
	}
}

// evictLocked retains only the maxEntries newest entries by creation
// time. Eviction deliberately ranks by CreatedAt, not LastAccessed:
// access bumps do not protect an entry.
func (s *Store) evictLocked() {
	if len(s.entries) <= s.maxEntries {
		return
	}

	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := s.entries[keys[i]], s.entries[keys[j]]
		if a.CreatedAt != b.CreatedAt {
			return a.CreatedAt > b.CreatedAt
		}
		return keys[i] < keys[j] // deterministic tie-break
	})

	for _, k := range keys[s.maxEntries:] {
		delete(s.entries, k)
	}
}

// SetNumberSubstitution enables or disables number-pattern caching.
func (s *Store) SetNumberSubstitution(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.numberSub = enabled
}

// NumberSubstitution reports whether number-pattern caching is enabled.
func (s *Store) NumberSubstitution() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.numberSub
}

// Verify Store implements the resolver's cache interface
var _ golingo.Cache = (*Store)(nil)
