package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/LocaleKit/golingo"
)

// RedisBackend persists cache snapshots as a single JSON blob under one
// Redis key. Redis SET replaces the value atomically, satisfying the
// Backend contract.
type RedisBackend struct {
	client *redis.Client
	key    string
}

// RedisConfig holds configuration for the Redis backend.
type RedisConfig struct {
	URL string // Redis connection URL (e.g., "redis://localhost:6379")
	Key string // Key holding the snapshot (default: "golingo:cache")
}

// NewRedisBackend creates a Redis backend with the given configuration.
func NewRedisBackend(cfg RedisConfig) (*RedisBackend, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, &golingo.StorageError{Message: "parsing redis URL", Cause: err}
	}

	client := redis.NewClient(opts)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, &golingo.StorageError{Message: "connecting to redis", Cause: err}
	}

	return NewRedisBackendFromClient(client, cfg.Key), nil
}

// NewRedisBackendFromClient creates a RedisBackend from an existing client.
func NewRedisBackendFromClient(client *redis.Client, key string) *RedisBackend {
	if key == "" {
		key = "golingo:cache"
	}
	return &RedisBackend{client: client, key: key}
}

// Load reads the snapshot blob. An absent key yields an empty map.
func (b *RedisBackend) Load() (map[string]*Entry, error) {
	ctx := context.Background()
	data, err := b.client.Get(ctx, b.key).Bytes()
	if err == redis.Nil {
		return make(map[string]*Entry), nil
	}
	if err != nil {
		return nil, &golingo.StorageError{Message: "reading cache from redis", Cause: err}
	}

	var entries map[string]*Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, &golingo.StorageError{Message: "parsing cache blob", Cause: err}
	}
	if entries == nil {
		entries = make(map[string]*Entry)
	}
	return entries, nil
}

// Save replaces the snapshot blob.
func (b *RedisBackend) Save(entries map[string]*Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return &golingo.StorageError{Message: "encoding cache snapshot", Cause: err}
	}

	ctx := context.Background()
	if err := b.client.Set(ctx, b.key, data, 0).Err(); err != nil {
		return &golingo.StorageError{Message: "writing cache to redis", Cause: err}
	}
	return nil
}

// Close closes the Redis connection.
func (b *RedisBackend) Close() error {
	return b.client.Close()
}

// Ping tests the Redis connection.
func (b *RedisBackend) Ping() error {
	ctx := context.Background()
	return b.client.Ping(ctx).Err()
}

// Verify RedisBackend implements Backend
var _ Backend = (*RedisBackend)(nil)
