package cache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/LocaleKit/golingo"
)

// FileBackend persists cache snapshots as a JSON object mapping cache
// keys to entries. Saves are atomic: the snapshot is written to a
// temporary file and renamed over the previous one.
type FileBackend struct {
	path string
}

// NewFileBackend creates a backend writing to the given path.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Path returns the backing file path.
func (b *FileBackend) Path() string {
	return b.path
}

// Load reads the snapshot file. A missing file yields an empty map, not
// an error; an unreadable or malformed file is a StorageError.
func (b *FileBackend) Load() (map[string]*Entry, error) {
	data, err := os.ReadFile(b.path) // #nosec G304 - path is intentionally user-provided
	if errors.Is(err, fs.ErrNotExist) {
		return make(map[string]*Entry), nil
	}
	if err != nil {
		return nil, &golingo.StorageError{Message: "reading cache file", Cause: err}
	}

	var entries map[string]*Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, &golingo.StorageError{Message: "parsing cache file", Cause: err}
	}
	if entries == nil {
		entries = make(map[string]*Entry)
	}
	return entries, nil
}

// Save writes the full snapshot atomically.
func (b *FileBackend) Save(entries map[string]*Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return &golingo.StorageError{Message: "encoding cache snapshot", Cause: err}
	}

	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &golingo.StorageError{Message: "creating cache directory", Cause: err}
	}

	tmp, err := os.CreateTemp(dir, ".golingo-cache-*")
	if err != nil {
		return &golingo.StorageError{Message: "creating temp file", Cause: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &golingo.StorageError{Message: "writing cache snapshot", Cause: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &golingo.StorageError{Message: "closing temp file", Cause: err}
	}

	if err := os.Rename(tmpName, b.path); err != nil {
		os.Remove(tmpName)
		return &golingo.StorageError{Message: "replacing cache file", Cause: err}
	}
	return nil
}

// Verify FileBackend implements Backend
var _ Backend = (*FileBackend)(nil)
