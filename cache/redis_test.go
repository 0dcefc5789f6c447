package cache

import (
	"encoding/json"
	"testing"

	"github.com/go-redis/redismock/v9"
)

func TestRedisBackend_LoadHit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	backend := NewRedisBackendFromClient(db, "test:cache")

	blob, _ := json.Marshal(map[string]*Entry{
		"hello|en|es": {OriginalText: "hello", Translation: "hola", AccessCount: 1},
	})
	mock.ExpectGet("test:cache").SetVal(string(blob))

	entries, err := backend.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if entries["hello|en|es"] == nil || entries["hello|en|es"].Translation != "hola" {
		t.Errorf("unexpected entries: %+v", entries)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRedisBackend_LoadMissingKey(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	backend := NewRedisBackendFromClient(db, "test:cache")

	mock.ExpectGet("test:cache").RedisNil()

	entries, err := backend.Load()
	if err != nil {
		t.Fatalf("absent key should not be an error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("absent key should yield empty map, got %d entries", len(entries))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRedisBackend_LoadMalformedBlob(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	backend := NewRedisBackendFromClient(db, "test:cache")

	mock.ExpectGet("test:cache").SetVal("{not json")

	if _, err := backend.Load(); err == nil {
		t.Error("malformed blob should return an error for the store to recover from")
	}
}

func TestRedisBackend_Save(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	backend := NewRedisBackendFromClient(db, "test:cache")

	entries := map[string]*Entry{
		"hello|en|es": {OriginalText: "hello", Translation: "hola", AccessCount: 1},
	}
	blob, _ := json.Marshal(entries)
	mock.ExpectSet("test:cache", blob, 0).SetVal("OK")

	if err := backend.Save(entries); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRedisBackend_DefaultKey(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	backend := NewRedisBackendFromClient(db, "")

	mock.ExpectGet("golingo:cache").RedisNil()

	if _, err := backend.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
